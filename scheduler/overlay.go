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

	"github.com/gopher264/gopher264/hardware/model"
)

// the top of the debugging information
const debugTop = 12

// debugInfo draws the processor registers and the state of the tape and the
// true drive onto the screen.
func (sch *Scheduler) debugInfo() {
	m := sch.machine.Model
	mc := sch.machine.CPU

	x := 112
	if m.CyclesPerRow() == 456 {
		x = 48
	}
	y := debugTop

	m.TextToScreen(x, y, fmt.Sprintf("OPCODE: %02x ", mc.Opcode()))
	y += model.LineHeight
	m.TextToScreen(x, y, "  PC  SR AC XR YR SP")
	y += model.LineHeight
	m.TextToScreen(x, y, fmt.Sprintf(";%04x %02x %02x %02x %02x %02x", mc.PC, mc.Status.Value(), mc.A, mc.X, mc.Y, mc.SP))
	y += model.LineHeight

	s := fmt.Sprintf("TAPE: %08d ", sch.machine.Tape.Counter())
	drv := sch.machine.Drive
	if drv == nil {
		m.TextToScreen(x, y, s)
		return
	}

	trk, sec := drv.TrackSector()
	s = fmt.Sprintf("%sDRIVE:  T/S:%02d/%02d", s, trk, sec)
	m.TextToScreen(x, y, s)
	x += model.TextWidth(s)
	m.ShowLED(x, y, drv.Motor())
	m.ShowLED(x+8, y, drv.LED())
}

// the vertical position of the frame rate
const fpsTop = 36

func (sch *Scheduler) showFrameRate() {
	m := sch.machine.Model
	m.TextToScreen(m.CyclesPerRow()-128, fpsTop, fmt.Sprintf(" %d FPS ", int(sch.limiter.Measured()+0.5)))
}
