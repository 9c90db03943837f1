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

package tcbm_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gopher264/gopher264/curated"
	"github.com/gopher264/gopher264/hardware/peripherals/tcbm"
	"github.com/gopher264/gopher264/test"
)

func TestRegisters(t *testing.T) {
	a := tcbm.NewAdapter()

	test.ExpectSuccess(t, a.IOWrite(0xfef1, 0x55))
	v, ok := a.IORead(0xfef1)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint8(0x55))

	// outside of the register range
	test.ExpectFailure(t, a.IOWrite(0xfec0, 0x55))
	_, ok = a.IORead(0xfef8)
	test.ExpectFailure(t, ok)

	a.Reset()
	v, _ = a.IORead(0xfef1)
	test.ExpectEquality(t, v, uint8(0))
	test.ExpectEquality(t, a.Resets(), 1)
}

func TestDirectory(t *testing.T) {
	dir := t.TempDir()
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "game.prg"), []byte{0x01, 0x10}, 0o644))
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "Demo.PRG"), []byte{0x01, 0x10}, 0o644))
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "readme.txt"), nil, 0o644))

	a := tcbm.NewAdapter()
	test.ExpectSuccess(t, a.SetDirectory(dir))
	test.ExpectEquality(t, a.Directory(), dir)

	files, err := a.Files()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(files), 2)
	test.ExpectEquality(t, files[0], "DEMO")
	test.ExpectEquality(t, files[1], "GAME")

	err = a.SetDirectory(filepath.Join(dir, "game.prg"))
	test.ExpectSuccess(t, curated.Is(err, tcbm.NotDirectory))
	test.ExpectEquality(t, a.Directory(), dir)
}

func TestMount(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "game.d64")
	test.DemandSuccess(t, os.WriteFile(fn, make([]byte, 174848), 0o644))

	a := tcbm.NewAdapter()
	test.ExpectSuccess(t, a.Mount(fn))
	test.ExpectEquality(t, a.String(), "TCBM #8 [game.d64]")

	a.Unmount()
	test.ExpectSuccess(t, a.Mounted() == nil)

	test.ExpectFailure(t, a.Mount(filepath.Join(t.TempDir(), "missing.d64")))
}
