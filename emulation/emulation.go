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

package emulation

import (
	"github.com/gopher264/gopher264/notifications"
)

// RunState indicates whether the scheduler is advancing simulated time.
type RunState int

// List of possible run states.
const (
	// frames are produced continuously
	Active RunState = iota

	// simulated time does not advance. the scheduler waits for host input
	Suspended

	// exactly one frame is produced after which the state reverts to
	// Suspended
	SingleStep
)

func (s RunState) String() string {
	switch s {
	case Active:
		return "active"
	case Suspended:
		return "suspended"
	case SingleStep:
		return "single step"
	}
	return "unknown"
}

// Context holds the state of the emulation that is not part of the emulated
// hardware. It is owned by the scheduler and passed to the parts of the
// emulation that need it.
type Context struct {
	State RunState

	// lock the frame rate to the refresh rate of the emulated television.
	// when false the emulation runs as fast as possible
	TimerLock bool

	// size of the window as a multiple of the visible screen
	WindowMultiplier int

	// show the frames-per-second and the debugging information
	ShowFPS   bool
	ShowDebug bool

	// present frames through the composite video path rather than through
	// the palette
	Overlay bool

	// keyboard cursor keys emulate the joystick in the active port
	JoystickEmulation bool
	ActiveJoystick    int

	// save settings when the emulation ends
	SaveOnExit bool

	// audio output is wanted. audio is only heard if TimerLock is also true
	Sound bool

	// the notification shown over the screen
	Popup notifications.Popup

	// true if logging is allowed. muted during unattended running
	mute bool

	shutdown bool
}

// NewContext is the preferred method of initialisation for the Context type.
func NewContext() *Context {
	return &Context{
		State:            Active,
		TimerLock:        true,
		WindowMultiplier: 2,
		ShowFPS:          true,
		SaveOnExit:       true,
		Sound:            true,
	}
}

// RequestShutdown signals that the scheduler should end at the next
// opportunity.
func (ctx *Context) RequestShutdown() {
	ctx.shutdown = true
}

// ShutdownRequested returns true if RequestShutdown() has been called.
func (ctx *Context) ShutdownRequested() bool {
	return ctx.shutdown
}

// Mute logging requests made with the context as the logging permission.
func (ctx *Context) Mute(mute bool) {
	ctx.mute = mute
}

// AllowLogging implements the logger.Permission interface.
func (ctx *Context) AllowLogging() bool {
	return !ctx.mute
}

// AudioWanted returns true if audio should be heard.
func (ctx *Context) AudioWanted() bool {
	return ctx.Sound && ctx.TimerLock
}

// Notify sets the popup message.
func (ctx *Context) Notify(message string) {
	ctx.Popup.Set(message)
}
