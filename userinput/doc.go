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

// Package userinput handles input from the real hardware that the user of the
// emulator is using to control the emulated machine.
//
// It is a translation layer between the host implementation and the keyboard
// matrix and joystick ports of the hardware model. The host converts its own
// events into the Event types defined here. The scheduler deals with any
// event that is an emulator command and forwards the remainder to
// Controllers.HandleUserInput().
//
// The host implementation in use during development was SDL and so there will
// be a bias towards that system. In particular, key names are those returned by
// sdl.GetKeyName().
package userinput
