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

package userinput

// Event describes any of the events that can be sent by the host.
type Event interface{}

// EventQuit is sent when the host window has been closed or the terminal
// interrupted.
type EventQuit struct{}

// KeyMod identifies the modifier keys held down during a keyboard event.
type KeyMod int

// List of valid KeyMod values.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

func (m KeyMod) String() string {
	switch m {
	case KeyModShift:
		return "shift"
	case KeyModCtrl:
		return "ctrl"
	case KeyModAlt:
		return "alt"
	}
	return ""
}

// EventKeyboard is sent on key press and release.
type EventKeyboard struct {
	Key    string
	Mod    KeyMod
	Down   bool
	Repeat bool
}

// EventJoystickButton is sent when a button on a physical joystick is pressed
// or released.
type EventJoystickButton struct {
	Button int
	Down   bool
}

// EventJoystickAxis is sent when a physical joystick is moved. Axis zero is
// horizontal and axis one is vertical.
type EventJoystickAxis struct {
	Axis  int
	Value int16
}

// EventWindowResized is sent when the host window has changed size. The
// current frame should be presented again.
type EventWindowResized struct {
	Width  int
	Height int
}
