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

package peripherals_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gopher264/gopher264/curated"
	"github.com/gopher264/gopher264/hardware/peripherals"
	"github.com/gopher264/gopher264/test"
)

// blankDisk creates a 35 track D64 file with the disk name in the directory
// header.
func blankDisk(t *testing.T, name string) string {
	t.Helper()

	d := make([]uint8, 174848)

	// track 18 starts after 17 tracks of 21 sectors
	hdr := 17 * 21 * peripherals.SectorSize
	for i := 0; i < 16; i++ {
		d[hdr+0x90+i] = 0xa0
	}
	copy(d[hdr+0x90:], name)

	fn := filepath.Join(t.TempDir(), "disk.d64")
	test.DemandSuccess(t, os.WriteFile(fn, d, 0o644))
	return fn
}

func TestDiskImage(t *testing.T) {
	fn := blankDisk(t, "GAMES")

	img, err := peripherals.LoadDiskImage(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Tracks, 35)
	test.ExpectEquality(t, img.DiskName(), "GAMES")

	s, err := img.Sector(35, 16)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(s), peripherals.SectorSize)

	_, err = img.Sector(35, 17)
	test.ExpectSuccess(t, curated.Is(err, peripherals.NoSuchSector))

	_, err = img.Sector(0, 0)
	test.ExpectFailure(t, err)
}

func TestNotDiskImage(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "notadisk.d64")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("hello"), 0o644))

	_, err := peripherals.LoadDiskImage(fn)
	test.ExpectSuccess(t, curated.Is(err, peripherals.NotDiskImage))

	_, err = peripherals.LoadDiskImage(filepath.Join(t.TempDir(), "missing.d64"))
	test.ExpectSuccess(t, curated.Is(err, peripherals.DiskImageRead))
}

func TestSectorsPerTrack(t *testing.T) {
	var total int
	for trk := 1; trk <= 35; trk++ {
		total += peripherals.SectorsPerTrack(trk)
	}
	test.ExpectEquality(t, total, 683)
}
