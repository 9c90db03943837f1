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

package model

import (
	"github.com/gopher264/gopher264/userinput"
)

// Keys is the keyboard and joystick input of the model. Key presses are
// queued as PETSCII bytes and copied into the KERNAL keyboard buffer as space
// becomes available. Keys also implements the userinput.HandleInput
// interface.
type Keys struct {
	queue []uint8

	// host input is ignored while blocked. bytes injected with Inject() are
	// still queued
	blocked bool

	pressed map[string]bool

	// joystick state for each port. bits are set for each active
	// userinput.Direction
	joy [2]uint8
}

func newKeys() Keys {
	return Keys{
		pressed: make(map[string]bool),
	}
}

// Inject PETSCII bytes into the keyboard queue.
func (k *Keys) Inject(s string) {
	k.queue = append(k.queue, []uint8(s)...)
}

// Pending returns a copy of the bytes in the keyboard queue.
func (k *Keys) Pending() []uint8 {
	p := make([]uint8, len(k.queue))
	copy(p, k.queue)
	return p
}

// Block host input.
func (k *Keys) Block(block bool) {
	k.blocked = block
}

// Blocked returns true if host input is being ignored.
func (k *Keys) Blocked() bool {
	return k.blocked
}

// Clear the keyboard queue and release all keys and joystick directions.
func (k *Keys) Clear() {
	k.queue = k.queue[:0]
	clear(k.pressed)
	k.joy = [2]uint8{}
}

// ReleaseJoystick releases every direction of both joysticks.
func (k *Keys) ReleaseJoystick() {
	k.joy = [2]uint8{}
}

// Pressed returns true if the named key is currently held down.
func (k *Keys) Pressed(key string) bool {
	return k.pressed[key]
}

// Joystick returns the state of the joystick in the port. A bit is set for
// each active userinput.Direction.
func (k *Keys) Joystick(port int) uint8 {
	return k.joy[port&1]
}

// KeyboardEvent implements the userinput.HandleInput interface.
func (k *Keys) KeyboardEvent(key string, down bool) {
	if k.blocked {
		return
	}

	if !down {
		delete(k.pressed, key)
		return
	}

	k.pressed[key] = true
	if b, ok := petscii(key); ok {
		k.queue = append(k.queue, b)
	}
}

// JoystickEvent implements the userinput.HandleInput interface.
func (k *Keys) JoystickEvent(port int, dir userinput.Direction, down bool) {
	if k.blocked {
		return
	}

	if down {
		k.joy[port&1] |= 1 << dir
	} else {
		k.joy[port&1] &^= 1 << dir
	}
}

// next removes and returns up to n bytes from the front of the queue.
func (k *Keys) next(n int) []uint8 {
	if n > len(k.queue) {
		n = len(k.queue)
	}
	b := make([]uint8, n)
	copy(b, k.queue)
	k.queue = k.queue[n:]
	return b
}

// the PETSCII code for keys with names longer than one character
var namedKeys = map[string]uint8{
	"Return":    0x0d,
	"Space":     0x20,
	"Backspace": 0x14,
	"Delete":    0x14,
	"Home":      0x13,
	"Up":        0x91,
	"Down":      0x11,
	"Left":      0x9d,
	"Right":     0x1d,
	"Escape":    0x1b,
	"F1":        0x85,
	"F2":        0x86,
	"F3":        0x87,
	"F4":        0x88,
}

// petscii converts a key name (as returned by sdl.GetKeyName()) to PETSCII.
func petscii(key string) (uint8, bool) {
	if b, ok := namedKeys[key]; ok {
		return b, true
	}
	if len(key) != 1 {
		return 0, false
	}

	b := key[0]
	switch {
	case b >= 'a' && b <= 'z':
		return b - 'a' + 'A', true
	case b >= 0x20 && b < 0x60:
		return b, true
	}
	return 0, false
}
