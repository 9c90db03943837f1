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

package model_test

import (
	"testing"

	"github.com/gopher264/gopher264/hardware/model"
	"github.com/gopher264/gopher264/test"
	"github.com/gopher264/gopher264/userinput"
)

func TestKeys(t *testing.T) {
	m := model.New(model.Accurate, nil)
	k := m.Keys()

	k.KeyboardEvent("a", true)
	k.KeyboardEvent("Return", true)
	k.KeyboardEvent("Left Shift", true)
	test.ExpectEquality(t, string(k.Pending()), "A\r")
	test.ExpectSuccess(t, k.Pressed("Left Shift"))

	k.KeyboardEvent("Left Shift", false)
	test.ExpectFailure(t, k.Pressed("Left Shift"))

	k.Block(true)
	k.KeyboardEvent("b", true)
	test.ExpectEquality(t, string(k.Pending()), "A\r")

	// injection is not affected by blocking
	k.Inject("RUN")
	test.ExpectEquality(t, string(k.Pending()), "A\rRUN")

	k.Clear()
	test.ExpectEquality(t, len(k.Pending()), 0)
}

func TestJoystick(t *testing.T) {
	m := model.New(model.Accurate, nil)
	k := m.Keys()

	k.JoystickEvent(0, userinput.Up, true)
	k.JoystickEvent(0, userinput.Fire, true)
	test.ExpectEquality(t, k.Joystick(0), uint8(0x11))

	// select joystick 1 with the latch
	m.Write(0xff08, 0xfb)
	test.ExpectEquality(t, m.Read(0xff08), uint8(^uint8(0x41)))

	k.JoystickEvent(0, userinput.Up, false)
	test.ExpectEquality(t, m.Read(0xff08), uint8(^uint8(0x40)))

	// joystick 2 not selected
	k.JoystickEvent(1, userinput.Left, true)
	test.ExpectEquality(t, m.Read(0xff08), uint8(^uint8(0x40)))
}
