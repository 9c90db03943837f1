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
	"fmt"

	"github.com/gopher264/gopher264/curated"
	"github.com/gopher264/gopher264/hardware/cpu"
	"github.com/gopher264/gopher264/hardware/model"
	"github.com/gopher264/gopher264/hardware/peripherals/tape"
	"github.com/gopher264/gopher264/hardware/peripherals/tcbm"
	"github.com/gopher264/gopher264/hardware/peripherals/truedrive"
	"github.com/gopher264/gopher264/logger"
	"github.com/gopher264/gopher264/notifications"
)

// Sentinel error patterns.
const (
	NoMountableDrive = "machine: no drive can mount %s"
)

// the unit number of the true drive
const driveUnit = 8

// AudioPauser is implemented by the audio output. Audio is paused while the
// model is being swapped.
type AudioPauser interface {
	Pause()
	Resume()
}

// Presentation is implemented by the parts of the emulation that hold tables
// derived from the model's timing. Rebuild() is called after a swap to a model
// that is not timing compatible.
type Presentation interface {
	Rebuild(m model.Model)
}

// Machine is the emulated computer.
type Machine struct {
	Model model.Model
	CPU   *cpu.CPU

	// the disk adapter and the true drive are mutually exclusive. one of
	// them will be nil
	Adapter *tcbm.Adapter
	Drive   *truedrive.Drive

	Tape *tape.Deck

	cfg *model.Config

	notify       notifications.Notify
	audio        AudioPauser
	presentation Presentation

	// reused snapshot buffer for the swap
	snapshot []byte
}

// NewMachine is the preferred method of initialisation for the Machine type.
// The machine starts with the disk adapter attached to the serial bus.
func NewMachine(level model.Level, cfg *model.Config, notify notifications.Notify) *Machine {
	if cfg == nil {
		cfg = model.NewConfig()
	}

	m := &Machine{
		Model:   model.New(level, cfg),
		CPU:     cpu.NewCPU(),
		Adapter: tcbm.NewAdapter(),
		Tape:    tape.NewDeck(notify),
		cfg:     cfg,
		notify:  notify,
	}

	m.Plumb()
	m.CPU.Reset()

	return m
}

func (m *Machine) String() string {
	return fmt.Sprintf("%s: %s", m.Model.Level(), m.CPU)
}

// Config returns the model configuration shared by every model the machine
// creates.
func (m *Machine) Config() *model.Config {
	return m.cfg
}

// SetNotify changes the recipient of notifications from the machine and the
// tape deck. A nil value is allowed.
func (m *Machine) SetNotify(notify notifications.Notify) {
	m.notify = notify
	m.Tape.SetNotify(notify)
}

// SetAudio sets the audio output to be paused during a swap. A nil value is
// allowed.
func (m *Machine) SetAudio(audio AudioPauser) {
	m.audio = audio
}

// SetPresentation sets the presentation to be rebuilt after an incompatible
// swap. A nil value is allowed.
func (m *Machine) SetPresentation(p Presentation) {
	m.presentation = p
}

// Plumb binds the processor to the memory and interrupt register of the
// model and hooks the processor, the tape deck and the active bus peripheral
// onto the model.
func (m *Machine) Plumb() {
	m.CPU.Plumb(m.Model, m.Model.IRQRegister())
	m.Model.HookCPU(m.CPU)
	m.Model.HookTape(m.Tape)
	switch {
	case m.Adapter != nil:
		m.Model.HookBus(m.Adapter)
	case m.Drive != nil:
		m.Model.HookBus(m.Drive)
	default:
		m.Model.HookBus(nil)
	}
}

// unplumb removes all references between the model and the other parts of the
// machine.
func (m *Machine) unplumb() {
	m.Model.HookCPU(nil)
	m.Model.HookTape(nil)
	m.Model.HookBus(nil)
}

// DiskAdapterEnabled returns true if the disk adapter is attached to the
// serial bus rather than the true drive.
func (m *Machine) DiskAdapterEnabled() bool {
	return m.Adapter != nil
}

// EnableDiskAdapter attaches the disk adapter or the true drive to the serial
// bus. The other device is removed. The newly attached device is reset.
func (m *Machine) EnableDiskAdapter(enable bool) {
	if enable == m.DiskAdapterEnabled() {
		return
	}

	m.Model.HookBus(nil)

	if enable {
		if m.Drive != nil {
			m.Drive.Eject()
			m.Drive = nil
		}
		m.Adapter = tcbm.NewAdapter()
		m.Adapter.Reset()
		m.Model.HookBus(m.Adapter)
		logger.Log(logger.Allow, "machine", "disk adapter attached")
		return
	}

	if m.Adapter != nil {
		m.Adapter.Unmount()
		m.Adapter = nil
	}
	m.Drive = truedrive.NewDrive(driveUnit)
	m.Drive.Reset()
	m.Model.HookBus(m.Drive)
	logger.Logf(logger.Allow, "machine", "true drive attached: %s", m.Drive)
}

// MountDisk mounts a disk image on the active disk peripheral.
func (m *Machine) MountDisk(filename string) error {
	var err error
	switch {
	case m.Adapter != nil:
		err = m.Adapter.Mount(filename)
	case m.Drive != nil:
		err = m.Drive.Mount(filename)
	default:
		return curated.Errorf(NoMountableDrive, filename)
	}
	if err != nil {
		return curated.Errorf("machine: %v", err)
	}
	if m.notify != nil {
		if err := m.notify.Notify(notifications.NotifyDiskMounted); err != nil {
			logger.Logf(logger.Allow, "machine", "%v", err)
		}
	}
	return nil
}

// HardReset resets the model, clearing memory, and then the processor and the
// true drive.
func (m *Machine) HardReset() {
	m.Model.Reset(true)
	m.CPU.Reset()
	if m.Drive != nil {
		m.Drive.Reset()
	}
	logger.Log(logger.Allow, "machine", "hard reset")
}

// SoftReset resets the processor only.
func (m *Machine) SoftReset() {
	m.CPU.Reset()
	logger.Log(logger.Allow, "machine", "soft reset")
}

// ChipReset resets the video and timing state of the model. Memory is kept and
// the processor is not reset.
func (m *Machine) ChipReset() {
	m.Model.Reset(false)
	logger.Log(logger.Allow, "machine", "chip reset")
}

// Shutdown tears the machine down in reverse order of construction.
func (m *Machine) Shutdown() {
	if m.Drive != nil {
		m.Drive.Eject()
		m.Drive = nil
	}
	if m.Adapter != nil {
		m.Adapter.Unmount()
		m.Adapter = nil
	}
	m.Tape.Detach()
	m.unplumb()
	m.CPU.Plumb(nil, nil)
	logger.Log(logger.Allow, "machine", "shutdown")
}
