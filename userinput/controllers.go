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

// Direction of an emulated joystick. Fire is also treated as a direction.
type Direction int

// List of valid Direction values.
const (
	Up Direction = iota
	Down
	Left
	Right
	Fire
)

// HandleInput is implemented by the keyboard and joystick ports of the hardware
// model.
type HandleInput interface {
	// KeyboardEvent presses or releases the key with the host's name for it.
	KeyboardEvent(key string, down bool)

	// JoystickEvent changes the state of the joystick in the numbered port.
	JoystickEvent(port int, dir Direction, down bool)
}

// axis values within the deadzone are treated as centred
const deadzone = 8000

// the physical joystick button used for fire. other buttons are emulator
// commands and are dealt with by the scheduler
const fireButton = 0

// Controllers keeps track of user input options.
type Controllers struct {
	// cursor keys and fire keys are directed to the joystick rather than to the
	// keyboard matrix
	JoystickEmulation bool

	// the port that receives joystick input (physical and emulated)
	Port int
}

// HandleUserInput forwards the event to the hardware model. Returns true if the
// event was consumed.
func (c *Controllers) HandleUserInput(ev Event, handle HandleInput) bool {
	switch ev := ev.(type) {
	case EventKeyboard:
		return c.keyboard(ev, handle)
	case EventJoystickButton:
		if ev.Button == fireButton {
			handle.JoystickEvent(c.Port, Fire, ev.Down)
			return true
		}
	case EventJoystickAxis:
		return c.axis(ev, handle)
	}
	return false
}

func (c *Controllers) keyboard(ev EventKeyboard, handle HandleInput) bool {
	if ev.Repeat {
		return false
	}

	if c.JoystickEmulation && ev.Mod == KeyModNone {
		switch ev.Key {
		case "Up":
			handle.JoystickEvent(c.Port, Up, ev.Down)
			return true
		case "Down":
			handle.JoystickEvent(c.Port, Down, ev.Down)
			return true
		case "Left":
			handle.JoystickEvent(c.Port, Left, ev.Down)
			return true
		case "Right":
			handle.JoystickEvent(c.Port, Right, ev.Down)
			return true
		case "Space", "Right Ctrl":
			handle.JoystickEvent(c.Port, Fire, ev.Down)
			return true
		}
	}

	handle.KeyboardEvent(ev.Key, ev.Down)
	return true
}

func (c *Controllers) axis(ev EventJoystickAxis, handle HandleInput) bool {
	var neg, pos Direction

	switch ev.Axis {
	case 0:
		neg, pos = Left, Right
	case 1:
		neg, pos = Up, Down
	default:
		return false
	}

	switch {
	case ev.Value < -deadzone:
		handle.JoystickEvent(c.Port, pos, false)
		handle.JoystickEvent(c.Port, neg, true)
	case ev.Value > deadzone:
		handle.JoystickEvent(c.Port, neg, false)
		handle.JoystickEvent(c.Port, pos, true)
	default:
		handle.JoystickEvent(c.Port, neg, false)
		handle.JoystickEvent(c.Port, pos, false)
	}

	return true
}
