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

package truedrive_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gopher264/gopher264/curated"
	"github.com/gopher264/gopher264/hardware/peripherals/truedrive"
	"github.com/gopher264/gopher264/test"
)

func TestDrive(t *testing.T) {
	d := truedrive.NewDrive(8)
	test.ExpectEquality(t, d.Unit(), 8)
	test.ExpectEquality(t, d.String(), "1541 #8 [empty]")

	_, err := d.ReadSector(18, 0)
	test.ExpectSuccess(t, curated.Is(err, truedrive.NoDisk))

	fn := filepath.Join(t.TempDir(), "game.d64")
	test.DemandSuccess(t, os.WriteFile(fn, make([]byte, 174848), 0o644))
	test.ExpectSuccess(t, d.Mount(fn))

	_, err = d.ReadSector(20, 3)
	test.ExpectSuccess(t, err)
	tr, s := d.TrackSector()
	test.ExpectEquality(t, tr, 20)
	test.ExpectEquality(t, s, 3)
	test.ExpectSuccess(t, d.LED())
	test.ExpectSuccess(t, d.Motor())

	// bad sector does not move the head
	_, err = d.ReadSector(20, 19)
	test.ExpectFailure(t, err)
	tr, _ = d.TrackSector()
	test.ExpectEquality(t, tr, 20)

	d.Reset()
	tr, s = d.TrackSector()
	test.ExpectEquality(t, tr, 18)
	test.ExpectEquality(t, s, 0)
	test.ExpectFailure(t, d.Motor())
	test.ExpectEquality(t, d.Resets(), 1)

	// disk survives reset
	test.ExpectSuccess(t, d.Mounted() != nil)

	d.Eject()
	test.ExpectSuccess(t, d.Mounted() == nil)
}
