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

package hardware

import (
	"github.com/gopher264/gopher264/hardware/model"
	"github.com/gopher264/gopher264/logger"
)

// SwapModel replaces the live model with a model of the specified level. Memory
// survives the swap. If the new model has the same number of cycles per row as
// the old model, the register window, the processor port and the ROM
// visibility also survive. Otherwise the processor and the new model are reset
// and the presentation is rebuilt.
//
// Returns false if the model is already at the requested level, in which case
// nothing happens. The second return value indicates whether the swap was
// timing compatible.
func (m *Machine) SwapModel(level model.Level) (swapped bool, compatible bool) {
	if level == m.Model.Level() {
		return false, false
	}

	if m.audio != nil {
		m.audio.Pause()
	}

	old := m.Model

	m.snapshot = old.Snapshot(m.snapshot)
	regs := old.RegisterWindow()
	ddr := old.Read(0x0000)
	port := old.Read(0x0001)
	romEnabled := old.ROMEnabled()
	keys := *old.Keys()

	m.unplumb()
	m.Model = model.New(level, m.cfg)
	*m.Model.Keys() = keys
	m.Plumb()

	// the new model uses the same configuration so the snapshot will always be
	// the correct size
	if err := m.Model.Restore(m.snapshot); err != nil {
		logger.Log(logger.Allow, "hotswap", err.Error())
	}
	m.Model.LoadROMs()

	compatible = old.CyclesPerRow() == m.Model.CyclesPerRow()
	if compatible {
		m.Model.SetRegisterWindow(regs)
		if romEnabled {
			m.Model.Write(model.ROMSelect, 0)
		} else {
			m.Model.Write(model.RAMSelect, 0)
		}
		m.Model.Write(0x0000, ddr)
		m.Model.Write(0x0001, port&ddr)
	} else {
		m.CPU.Reset()
		m.Model.Reset(false)
		if m.presentation != nil {
			m.presentation.Rebuild(m.Model)
		}
	}

	logger.Logf(logger.Allow, "hotswap", "%s -> %s (compatible: %v)", old.Level(), m.Model.Level(), compatible)

	if m.audio != nil {
		m.audio.Resume()
	}

	return true, compatible
}
