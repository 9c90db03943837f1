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

package truedrive

import (
	"fmt"

	"github.com/gopher264/gopher264/curated"
	"github.com/gopher264/gopher264/hardware/peripherals"
)

// Sentinel error patterns.
const (
	NoDisk = "truedrive: no disk in drive #%d"
)

// the head is positioned over the directory track after a reset
const (
	directoryTrack = 18
)

// Drive is a disk drive with its own processor.
type Drive struct {
	unit  int
	image *peripherals.DiskImage

	track  int
	sector int
	led    bool
	motor  bool

	resets int
}

// NewDrive is the preferred method of initialisation for the Drive type.
func NewDrive(unit int) *Drive {
	d := &Drive{unit: unit}
	d.home()
	return d
}

func (d *Drive) String() string {
	if d.image != nil {
		return fmt.Sprintf("1541 #%d [%s]", d.unit, d.image)
	}
	return fmt.Sprintf("1541 #%d [empty]", d.unit)
}

// Unit returns the device number of the drive.
func (d *Drive) Unit() int {
	return d.unit
}

func (d *Drive) home() {
	d.track = directoryTrack
	d.sector = 0
	d.led = false
	d.motor = false
}

// Reset implements the model.Peripheral interface. The mounted disk is not
// ejected.
func (d *Drive) Reset() {
	d.home()
	d.resets++
}

// Resets returns the number of times the drive has been reset.
func (d *Drive) Resets() int {
	return d.resets
}

// Mount a disk image.
func (d *Drive) Mount(filename string) error {
	img, err := peripherals.LoadDiskImage(filename)
	if err != nil {
		return curated.Errorf("truedrive: %v", err)
	}
	d.image = img
	return nil
}

// Eject the disk. The motor stops.
func (d *Drive) Eject() {
	d.image = nil
	d.motor = false
	d.led = false
}

// Mounted returns the mounted disk image or nil.
func (d *Drive) Mounted() *peripherals.DiskImage {
	return d.image
}

// ReadSector moves the head to the track and sector and returns the data.
// The motor and LED are on while the drive is busy. Call Idle() to switch
// them off.
func (d *Drive) ReadSector(track int, sector int) ([]uint8, error) {
	if d.image == nil {
		return nil, curated.Errorf(NoDisk, d.unit)
	}

	data, err := d.image.Sector(track, sector)
	if err != nil {
		return nil, curated.Errorf("truedrive: %v", err)
	}

	d.track = track
	d.sector = sector
	d.motor = true
	d.led = true

	return data, nil
}

// Idle switches off the motor and the LED.
func (d *Drive) Idle() {
	d.motor = false
	d.led = false
}

// TrackSector returns the current position of the head.
func (d *Drive) TrackSector() (int, int) {
	return d.track, d.sector
}

// LED returns the state of the activity LED.
func (d *Drive) LED() bool {
	return d.led
}

// Motor returns the state of the drive motor.
func (d *Drive) Motor() bool {
	return d.motor
}
