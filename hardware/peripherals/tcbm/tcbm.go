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

package tcbm

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gopher264/gopher264/curated"
	"github.com/gopher264/gopher264/hardware/peripherals"
)

// Sentinel error patterns.
const (
	NotDirectory = "tcbm: %s is not a directory"
)

// the address of the adapter's registers for unit 8
const (
	ioBase  = 0xfef0
	ioCount = 8
)

// Adapter emulates the TCBM interface between the 264 serial bus and a disk
// drive. The drive behind the adapter is unit 8 and reads files from a
// directory on the host. A disk image can be mounted instead of the host
// directory.
type Adapter struct {
	dir   string
	image *peripherals.DiskImage

	// the registers of the adapter's 6523
	regs [ioCount]uint8

	resets int
}

// NewAdapter is the preferred method of initialisation for the Adapter type.
// The host directory is the current working directory.
func NewAdapter() *Adapter {
	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}
	return &Adapter{dir: dir}
}

func (a *Adapter) String() string {
	if a.image != nil {
		return fmt.Sprintf("TCBM #8 [%s]", a.image)
	}
	return fmt.Sprintf("TCBM #8 [%s]", a.dir)
}

// Reset implements the model.Peripheral interface.
func (a *Adapter) Reset() {
	a.regs = [ioCount]uint8{}
	a.resets++
}

// Resets returns the number of times the adapter has been reset.
func (a *Adapter) Resets() int {
	return a.resets
}

// IORead implements the model.PeripheralIO interface.
func (a *Adapter) IORead(address uint16) (uint8, bool) {
	if address < ioBase || address >= ioBase+ioCount {
		return 0, false
	}
	return a.regs[address-ioBase], true
}

// IOWrite implements the model.PeripheralIO interface.
func (a *Adapter) IOWrite(address uint16, data uint8) bool {
	if address < ioBase || address >= ioBase+ioCount {
		return false
	}
	a.regs[address-ioBase] = data
	return true
}

// Directory returns the host directory used by the drive.
func (a *Adapter) Directory() string {
	return a.dir
}

// SetDirectory changes the host directory used by the drive.
func (a *Adapter) SetDirectory(dir string) error {
	fi, err := os.Stat(dir)
	if err != nil {
		return curated.Errorf("tcbm: %v", err)
	}
	if !fi.IsDir() {
		return curated.Errorf(NotDirectory, dir)
	}
	a.dir = dir
	return nil
}

// Mount a disk image. The image replaces the host directory until it is
// unmounted.
func (a *Adapter) Mount(filename string) error {
	img, err := peripherals.LoadDiskImage(filename)
	if err != nil {
		return curated.Errorf("tcbm: %v", err)
	}
	a.image = img
	return nil
}

// Unmount the disk image.
func (a *Adapter) Unmount() {
	a.image = nil
}

// Mounted returns the mounted disk image or nil.
func (a *Adapter) Mounted() *peripherals.DiskImage {
	return a.image
}

// Files lists the PRG files in the host directory. The names are upper case
// and without the file extension, as they would appear in a disk directory.
func (a *Adapter) Files() ([]string, error) {
	entries, err := os.ReadDir(a.dir)
	if err != nil {
		return nil, curated.Errorf("tcbm: %v", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if strings.EqualFold(ext, ".prg") {
			files = append(files, strings.ToUpper(strings.TrimSuffix(e.Name(), ext)))
		}
	}
	sort.Strings(files)

	return files, nil
}
