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

package scheduler

import (
	"fmt"

	"github.com/gopher264/gopher264/autostart"
	"github.com/gopher264/gopher264/emulation"
	"github.com/gopher264/gopher264/logger"
	"github.com/gopher264/gopher264/userinput"
)

// joystick buttons that are emulator commands. the button is acted upon when
// it is released
const (
	buttonRun     = 4
	buttonMenu    = 5
	buttonSwapJoy = 11
	buttonReset   = 12
	buttonMenuAlt = 14
)

func (sch *Scheduler) handleEvent(ev userinput.Event) {
	switch ev := ev.(type) {
	case nil:
		return

	case userinput.EventQuit:
		sch.ctx.RequestShutdown()
		return

	case userinput.EventWindowResized:
		if f := sch.pipeline.Frame(); !f.Empty() {
			if err := sch.host.Present(f); err != nil {
				logger.Logf(sch.ctx, "scheduler", "present: %v", err)
			}
		}
		return

	case userinput.EventKeyboard:
		if sch.keyboardCommand(ev) {
			return
		}

	case userinput.EventJoystickButton:
		if sch.joystickCommand(ev) {
			return
		}
	}

	sch.controllers.HandleUserInput(ev, sch.machine.Model.Keys())
}

// keyboardCommand returns true if the event was an emulator command.
func (sch *Scheduler) keyboardCommand(ev userinput.EventKeyboard) bool {
	if ev.Repeat {
		return false
	}

	if ev.Mod == userinput.KeyModAlt {
		if !ev.Down {
			return false
		}
		sch.pauseAudio()
		sch.altCommand(ev.Key)
		if sch.ctx.TimerLock {
			sch.resumeAudio()
		}
		return true
	}

	if !ev.Down {
		switch ev.Key {
		case "PrintScreen":
			sch.machine.CPU.ClearNMI()
		case "F11":
			sch.ctx.State = emulation.Active
			switch ev.Mod {
			case userinput.KeyModShift:
				sch.machine.HardReset()
			case userinput.KeyModCtrl:
				sch.machine.ChipReset()
			default:
				sch.machine.SoftReset()
				sch.machine.Model.ResetSound()
				if sch.audio != nil {
					sch.audio.Reset()
				}
			}
		default:
			return false
		}
		return true
	}

	switch ev.Key {
	case "Pause":
		if sch.ctx.State == emulation.Active {
			sch.ctx.Notify(" PAUSED ")
			sch.ctx.State = emulation.Suspended
		} else {
			sch.ctx.Notify(" RESUMING ")
			sch.ctx.State = emulation.Active
		}
	case "PageDown":
		sch.ctx.State = emulation.SingleStep
	case "PrintScreen":
		sch.machine.CPU.TriggerNMI()
	case "F5", "F6":
		sch.machine.Tape.PressButton()
	case "F7":
		sch.screenshot()
	case "Escape", "F8":
		sch.enterMenu()
	case "F9":
		sch.ctx.ShowDebug = !sch.ctx.ShowDebug
	case "F10":
		sch.saveSettings()
	case "F11":
		sch.ctx.State = emulation.Suspended
	case "F12":
		sch.ctx.RequestShutdown()
	default:
		return false
	}

	return true
}

// altCommand performs the command for the key pressed with the alt modifier.
// unrecognised keys are ignored.
func (sch *Scheduler) altCommand(key string) {
	switch key {
	case "1", "2", "3":
		n := int(key[0] - '0')
		sch.ctx.WindowMultiplier = n
		if err := sch.host.SetWindowMultiplier(n); err != nil {
			logger.Logf(sch.ctx, "scheduler", "%v", err)
		}
		sch.ctx.Notify(fmt.Sprintf(" WINDOW SIZE: %dx ", n))

	case "E":
		level := sch.machine.Model.Level().Next()
		sch.machine.SwapModel(level)
		sch.ctx.Notify(fmt.Sprintf(" EMULATION LEVEL: %s ", level))

	case "J":
		sch.ctx.JoystickEmulation = !sch.ctx.JoystickEmulation
		sch.machine.Model.Keys().ReleaseJoystick()
		if sch.ctx.JoystickEmulation {
			sch.ctx.Notify(" JOYSTICK EMULATION IS ON ")
		} else {
			sch.ctx.Notify(" JOYSTICK EMULATION IS OFF ")
		}
		sch.syncControllers()

	case "I":
		sch.swapJoystick()

	case "M":
		logger.Log(sch.ctx, "scheduler", "monitor is not available")

	case "P":
		sch.ctx.Overlay = !sch.ctx.Overlay
		sch.pipeline.SetOverlay(sch.ctx.Overlay)
		if sch.ctx.Overlay {
			sch.ctx.Notify(" CRT emulation ON ")
		} else {
			sch.ctx.Notify(" CRT emulation OFF ")
		}

	case "S":
		sch.ctx.ShowFPS = !sch.ctx.ShowFPS
		sch.limiter.Reset()

	case "W":
		sch.ctx.TimerLock = !sch.ctx.TimerLock
		if sch.ctx.TimerLock {
			sch.resumeAudio()
			sch.ctx.Notify(" 50 HZ TIMER IS ON ")
		} else {
			sch.pauseAudio()
			sch.ctx.Notify(" 50 HZ TIMER IS OFF ")
		}
		sch.limiter.Reset()

	case "Return":
		if err := sch.host.ToggleFullScreen(); err != nil {
			logger.Logf(sch.ctx, "scheduler", "%v", err)
		}
	}
}

// joystickCommand returns true if the event was an emulator command.
func (sch *Scheduler) joystickCommand(ev userinput.EventJoystickButton) bool {
	switch ev.Button {
	case buttonMenu, buttonMenuAlt:
		if !ev.Down {
			sch.enterMenu()
		}
	case buttonRun:
		if !ev.Down {
			sch.machine.Model.Keys().Inject(autostart.RunCommand)
		}
	case buttonSwapJoy:
		if !ev.Down {
			sch.swapJoystick()
		}
	case buttonReset:
		if !ev.Down {
			sch.machine.HardReset()
		}
	default:
		return false
	}
	return true
}

func (sch *Scheduler) swapJoystick() {
	sch.ctx.ActiveJoystick = 1 - sch.ctx.ActiveJoystick
	sch.machine.Model.Keys().ReleaseJoystick()
	sch.syncControllers()
	sch.ctx.Notify(fmt.Sprintf(" ACTIVE JOY IS : %d ", sch.ctx.ActiveJoystick))
}

func (sch *Scheduler) enterMenu() {
	if sch.menu == nil {
		return
	}
	sch.pauseAudio()
	sch.menu.Run()
	if sch.ctx.AudioWanted() {
		sch.resumeAudio()
	}

	// the menu may have changed the model
	sch.syncControllers()
	sch.limiter.Reset()
}

func (sch *Scheduler) saveSettings() {
	if sch.settings == nil {
		return
	}
	if err := sch.settings.Save(); err != nil {
		logger.Logf(sch.ctx, "scheduler", "%v", err)
		return
	}
	logger.Log(sch.ctx, "scheduler", "settings saved")
}

func (sch *Scheduler) pauseAudio() {
	if sch.audio != nil {
		sch.audio.Pause()
	}
}

func (sch *Scheduler) resumeAudio() {
	if sch.audio != nil {
		sch.audio.Resume()
	}
}
