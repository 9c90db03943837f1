// This file is part of gopher264.
//
// gopher264 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gopher264 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gopher264.  If not, see <https://www.gnu.org/licenses/>.

package medialoader_test

import (
	"archive/zip"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopher264/gopher264/curated"
	"github.com/gopher264/gopher264/medialoader"
	"github.com/gopher264/gopher264/test"
)

func TestClassify(t *testing.T) {
	test.ExpectEquality(t, medialoader.Classify("game.d64"), medialoader.DiskImage)
	test.ExpectEquality(t, medialoader.Classify("GAME.D64"), medialoader.DiskImage)
	test.ExpectEquality(t, medialoader.Classify("dir/game.Prg"), medialoader.ProgramFile)
	test.ExpectEquality(t, medialoader.Classify("game.t64"), medialoader.TapeContainer)
	test.ExpectEquality(t, medialoader.Classify("game.TAP"), medialoader.TapeImage)
	test.ExpectEquality(t, medialoader.Classify("game.crt"), medialoader.Rejected)
	test.ExpectEquality(t, medialoader.Classify("game"), medialoader.Rejected)
	test.ExpectEquality(t, medialoader.Classify("prg"), medialoader.Rejected)
}

type memory map[uint16]uint8

func (m memory) Write(address uint16, data uint8) {
	m[address] = data
}

func TestPRG(t *testing.T) {
	p, err := medialoader.ParsePRG([]byte{0x01, 0x10, 0xaa, 0xbb, 0xcc})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Address, uint16(0x1001))
	test.ExpectEquality(t, len(p.Data), 3)
	test.ExpectEquality(t, p.End(), uint16(0x1004))

	mem := memory{}
	p.Install(mem)
	test.ExpectEquality(t, mem[0x1001], uint8(0xaa))
	test.ExpectEquality(t, mem[0x1003], uint8(0xcc))
	for _, ptr := range []uint16{0x2d, 0x2f, 0x31} {
		test.ExpectEquality(t, mem[ptr], uint8(0x04), ptr)
		test.ExpectEquality(t, mem[ptr+1], uint8(0x10), ptr)
	}

	_, err = medialoader.ParsePRG([]byte{0x01})
	test.ExpectSuccess(t, curated.Is(err, medialoader.BadHeader))

	_, err = medialoader.ParsePRG([]byte{0xff, 0xff, 0x00, 0x00})
	test.ExpectSuccess(t, curated.Is(err, medialoader.NotInMemory))
}

// t64 creates a T64 file with a single program.
func t64(start uint16, end uint16, payload []byte) []byte {
	d := make([]byte, 0x60)
	copy(d, "C64S tape image file")
	binary.LittleEndian.PutUint16(d[0x22:], 1)
	binary.LittleEndian.PutUint16(d[0x24:], 1)

	e := d[0x40:]
	e[0] = 1
	e[1] = 0x82
	binary.LittleEndian.PutUint16(e[2:], start)
	binary.LittleEndian.PutUint16(e[4:], end)
	binary.LittleEndian.PutUint32(e[8:], 0x60)
	copy(e[0x10:], "ELITE           ")

	return append(d, payload...)
}

func TestT64(t *testing.T) {
	p, err := medialoader.ParseT64(t64(0x0801, 0x0804, []byte{1, 2, 3}))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Name, "ELITE")
	test.ExpectEquality(t, p.Address, uint16(0x0801))
	test.ExpectEquality(t, len(p.Data), 3)
	test.ExpectEquality(t, p.Data[2], uint8(3))

	// end address beyond the end of the file is clamped
	p, err = medialoader.ParseT64(t64(0x0801, 0xc3c6, []byte{1, 2, 3, 4}))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(p.Data), 4)

	_, err = medialoader.ParseT64([]byte("not a tape"))
	test.ExpectSuccess(t, curated.Is(err, medialoader.BadHeader))

	// no used entries
	d := t64(0x0801, 0x0804, []byte{1, 2, 3})
	d[0x40] = 0
	_, err = medialoader.ParseT64(d)
	test.ExpectSuccess(t, curated.Is(err, medialoader.EmptyTape))
}

func TestLoader(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "hello.prg")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0x01, 0x10, 0x00}, 0o644))

	ld := medialoader.NewLoader(fn)
	test.ExpectEquality(t, ld.Kind, medialoader.ProgramFile)
	test.ExpectEquality(t, ld.ShortName(), "hello")
	test.ExpectFailure(t, ld.HasLoaded())

	test.DemandSuccess(t, ld.Load())
	test.ExpectSuccess(t, ld.HasLoaded())
	test.ExpectInequality(t, ld.Hash, "")

	p, err := ld.Program()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Address, uint16(0x1001))

	// disk images can't be parsed as programs
	ld = medialoader.NewLoader(filepath.Join(dir, "disk.d64"))
	_, err = ld.Program()
	test.ExpectSuccess(t, curated.Is(err, medialoader.WrongKind))

	// hash mismatch
	ld = medialoader.NewLoader(fn)
	ld.Hash = "0000"
	test.ExpectFailure(t, ld.Load())
	test.ExpectFailure(t, ld.HasLoaded())

	ld = medialoader.NewLoader(filepath.Join(dir, "missing.prg"))
	test.ExpectFailure(t, ld.Load())
}

func TestLoaderArchive(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "collection.zip")
	f, err := os.Create(fn)
	test.DemandSuccess(t, err)

	zw := zip.NewWriter(f)
	w, err := zw.Create("demos/hello.prg")
	test.DemandSuccess(t, err)
	_, err = w.Write([]byte{0x01, 0x10, 0xea})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, zw.Close())
	test.DemandSuccess(t, f.Close())

	ld := medialoader.NewLoader(filepath.Join(fn, "demos", "hello.prg"))
	test.ExpectEquality(t, ld.Kind, medialoader.ProgramFile)
	test.DemandSuccess(t, ld.Load())

	p, err := ld.Program()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Address, uint16(0x1001))
	test.ExpectEquality(t, len(p.Data), 1)
}
