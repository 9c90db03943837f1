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

package tape

import (
	"path/filepath"
	"strings"

	"github.com/gopher264/gopher264/archivefs"
	"github.com/gopher264/gopher264/curated"
	"github.com/gopher264/gopher264/logger"
	"github.com/gopher264/gopher264/notifications"
)

// Deck is the tape deck. It implements the model.Tape interface.
type Deck struct {
	// the file to be attached by Attach()
	Filename string

	notify notifications.Notify

	halves  []uint32
	pos     int
	elapsed uint32
	level   bool

	attached bool
	button   bool
	motor    bool
}

// NewDeck is the preferred method of initialisation for the Deck type. The
// notify argument can be nil.
func NewDeck(notify notifications.Notify) *Deck {
	return &Deck{notify: notify}
}

// SetNotify changes the recipient of tape notifications.
func (d *Deck) SetNotify(notify notifications.Notify) {
	d.notify = notify
}

func (d *Deck) String() string {
	if !d.attached {
		return "no tape"
	}
	return filepath.Base(d.Filename)
}

// Attach the file named by the Filename field.
func (d *Deck) Attach() error {
	var halves []uint32

	switch strings.ToLower(filepath.Ext(d.Filename)) {
	case ".tap":
		data, err := archivefs.ReadFile(d.Filename)
		if err != nil {
			return curated.Errorf("tape: %v", err)
		}
		halves, err = parseTAP(data)
		if err != nil {
			return err
		}
	default:
		p, err := loadPCM(d.Filename)
		if err != nil {
			return err
		}
		halves = p.halfWaves()
	}

	d.halves = halves
	d.attached = true
	d.Rewind()

	logger.Logf(logger.Allow, "tape", "attached %s (%d half-waves)", filepath.Base(d.Filename), len(d.halves))

	return nil
}

// Detach the tape. The play button is released.
func (d *Deck) Detach() {
	if d.attached {
		logger.Logf(logger.Allow, "tape", "detached %s", filepath.Base(d.Filename))
	}
	d.halves = nil
	d.attached = false
	d.button = false
	d.Rewind()
}

// Attached returns true if a tape has been attached.
func (d *Deck) Attached() bool {
	return d.attached
}

// Rewind to the start of the tape.
func (d *Deck) Rewind() {
	d.pos = 0
	d.elapsed = 0
	d.level = false
}

// PressButton presses the play button. Nothing happens if there is no tape.
func (d *Deck) PressButton() {
	if !d.attached || d.button {
		return
	}
	d.button = true
	if d.motor {
		d.send(notifications.NotifyTapeStarted)
	}
}

// Stop releases the play button.
func (d *Deck) Stop() {
	d.button = false
}

// Counter returns the number of half-waves played so far.
func (d *Deck) Counter() int {
	return d.pos
}

// Playing returns true if the tape is moving.
func (d *Deck) Playing() bool {
	return d.button && d.motor && d.pos < len(d.halves)
}

// Read implements the model.Tape interface.
func (d *Deck) Read() bool {
	return d.level
}

// Sense implements the model.Tape interface.
func (d *Deck) Sense() bool {
	return d.button
}

// Motor implements the model.Tape interface.
func (d *Deck) Motor(on bool) {
	if on == d.motor {
		return
	}
	d.motor = on
	if d.button {
		if on {
			d.send(notifications.NotifyTapeStarted)
		} else {
			d.send(notifications.NotifyTapeStopped)
		}
	}
}

// Advance implements the model.Tape interface.
func (d *Deck) Advance(cycles int) {
	if !d.Playing() {
		return
	}

	c := uint32(cycles)
	for c > 0 && d.pos < len(d.halves) {
		left := d.halves[d.pos] - d.elapsed
		if c < left {
			d.elapsed += c
			return
		}
		c -= left
		d.elapsed = 0
		d.pos++
		d.level = !d.level
	}

	if d.pos >= len(d.halves) {
		d.button = false
		d.send(notifications.NotifyTapeEnded)
	}
}

func (d *Deck) send(notice notifications.Notice) {
	if d.notify == nil {
		return
	}
	if err := d.notify.Notify(notice); err != nil {
		logger.Logf(logger.Allow, "tape", "%v", err)
	}
}
