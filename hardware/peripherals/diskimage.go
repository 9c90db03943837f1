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

package peripherals

import (
	"os"
	"path/filepath"

	"github.com/gopher264/gopher264/curated"
)

// Sentinel error patterns.
const (
	NotDiskImage  = "disk image: %s is not a D64 file"
	NoSuchSector  = "disk image: no such sector (%d/%d)"
	DiskImageRead = "disk image: %v"
)

// SectorSize is the number of bytes in one sector of a D64 image.
const SectorSize = 256

// the valid sizes of a D64 file. 35 or 40 tracks, with or without the error
// information appended
var d64Sizes = map[int]int{
	174848: 35,
	175531: 35,
	196608: 40,
	197376: 40,
}

// SectorsPerTrack returns the number of sectors on a track of a 1541 disk.
// Tracks are numbered from one.
func SectorsPerTrack(track int) int {
	switch {
	case track < 1:
		return 0
	case track <= 17:
		return 21
	case track <= 24:
		return 19
	case track <= 30:
		return 18
	}
	return 17
}

// DiskImage is the contents of a D64 file.
type DiskImage struct {
	Filename string
	Tracks   int
	data     []uint8
}

// LoadDiskImage reads and validates a D64 file.
func LoadDiskImage(filename string) (*DiskImage, error) {
	d, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(DiskImageRead, err)
	}

	tracks, ok := d64Sizes[len(d)]
	if !ok {
		return nil, curated.Errorf(NotDiskImage, filepath.Base(filename))
	}

	return &DiskImage{
		Filename: filename,
		Tracks:   tracks,
		data:     d,
	}, nil
}

func (img *DiskImage) String() string {
	return filepath.Base(img.Filename)
}

// Sector returns the contents of the track and sector.
func (img *DiskImage) Sector(track int, sector int) ([]uint8, error) {
	if track < 1 || track > img.Tracks || sector < 0 || sector >= SectorsPerTrack(track) {
		return nil, curated.Errorf(NoSuchSector, track, sector)
	}

	offset := 0
	for t := 1; t < track; t++ {
		offset += SectorsPerTrack(t) * SectorSize
	}
	offset += sector * SectorSize

	return img.data[offset : offset+SectorSize], nil
}

// DiskName returns the name of the disk as stored in the directory header.
func (img *DiskImage) DiskName() string {
	hdr, err := img.Sector(18, 0)
	if err != nil {
		return ""
	}

	name := hdr[0x90 : 0x90+16]
	for i, b := range name {
		// names are padded with shifted space
		if b == 0xa0 {
			return string(name[:i])
		}
	}
	return string(name)
}
