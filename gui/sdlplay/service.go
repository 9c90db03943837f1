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

package sdlplay

import (
	"github.com/gopher264/gopher264/logger"
	"github.com/gopher264/gopher264/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

func setupService() {
	// mouse events are not used and would only fill up the event queue
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
	sdl.EventState(sdl.MOUSEWHEEL, sdl.IGNORE)
}

func (scr *SdlPlay) openJoysticks() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		j := sdl.JoystickOpen(i)
		if j == nil {
			continue
		}
		logger.Logf(logger.Allow, "sdlplay", "joystick: %s", j.Name())
		scr.joysticks = append(scr.joysticks, j)
	}
}

// PollEvent implements the scheduler.Host interface. SDL events that have no
// equivalent userinput event are dropped and the next event is returned
// instead.
func (scr *SdlPlay) PollEvent() userinput.Event {
	for {
		ev := sdl.PollEvent()
		if ev == nil {
			return nil
		}
		if uev := convert(ev); uev != nil {
			return uev
		}
	}
}

// WaitEvent implements the scheduler.Host interface.
func (scr *SdlPlay) WaitEvent() userinput.Event {
	for {
		if uev := convert(sdl.WaitEvent()); uev != nil {
			return uev
		}
	}
}

func keyMod() userinput.KeyMod {
	m := sdl.GetModState()
	if m&sdl.KMOD_LALT == sdl.KMOD_LALT || m&sdl.KMOD_RALT == sdl.KMOD_RALT {
		return userinput.KeyModAlt
	}
	if m&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || m&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
		return userinput.KeyModShift
	}
	if m&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || m&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
		return userinput.KeyModCtrl
	}
	return userinput.KeyModNone
}

func convert(ev sdl.Event) userinput.Event {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return userinput.EventQuit{}

	case *sdl.WindowEvent:
		if ev.Event == sdl.WINDOWEVENT_RESIZED || ev.Event == sdl.WINDOWEVENT_EXPOSED {
			return userinput.EventWindowResized{
				Width:  int(ev.Data1),
				Height: int(ev.Data2),
			}
		}

	case *sdl.KeyboardEvent:
		return userinput.EventKeyboard{
			Key:    sdl.GetKeyName(ev.Keysym.Sym),
			Mod:    keyMod(),
			Down:   ev.Type == sdl.KEYDOWN,
			Repeat: ev.Repeat != 0,
		}

	case *sdl.JoyButtonEvent:
		return userinput.EventJoystickButton{
			Button: int(ev.Button),
			Down:   ev.State == sdl.PRESSED,
		}

	case *sdl.JoyAxisEvent:
		return userinput.EventJoystickAxis{
			Axis:  int(ev.Axis),
			Value: ev.Value,
		}
	}

	return nil
}
