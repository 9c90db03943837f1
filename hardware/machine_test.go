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

package hardware_test

import (
	"bytes"
	"testing"

	"github.com/gopher264/gopher264/hardware"
	"github.com/gopher264/gopher264/hardware/model"
	"github.com/gopher264/gopher264/test"
)

func TestNewMachine(t *testing.T) {
	m := hardware.NewMachine(model.Accurate, nil, nil)
	test.ExpectSuccess(t, m.CPU.Plumbed())
	test.ExpectSuccess(t, m.DiskAdapterEnabled())
	test.ExpectEquality[model.Peripheral](t, m.Model.Bus(), m.Adapter)
	test.ExpectEquality(t, m.CPU.ResetCount, 1)

	// the processor starts at the KERNAL reset address
	test.ExpectEquality(t, m.CPU.PC, uint16(0xf800))
}

func TestEnableDiskAdapter(t *testing.T) {
	m := hardware.NewMachine(model.Accurate, nil, nil)

	m.EnableDiskAdapter(false)
	test.ExpectFailure(t, m.DiskAdapterEnabled())
	test.DemandSuccess(t, m.Drive != nil)
	test.ExpectSuccess(t, m.Adapter == nil)
	test.ExpectEquality(t, m.Drive.Unit(), 8)
	test.ExpectEquality(t, m.Drive.Resets(), 1)
	test.ExpectEquality[model.Peripheral](t, m.Model.Bus(), m.Drive)

	// enabling the true drive a second time changes nothing
	drv := m.Drive
	m.EnableDiskAdapter(false)
	test.ExpectSuccess(t, m.Drive == drv)
	test.ExpectEquality(t, m.Drive.Resets(), 1)

	m.EnableDiskAdapter(true)
	test.ExpectSuccess(t, m.DiskAdapterEnabled())
	test.ExpectSuccess(t, m.Drive == nil)
	test.DemandSuccess(t, m.Adapter != nil)
	test.ExpectEquality(t, m.Adapter.Resets(), 1)
	test.ExpectEquality[model.Peripheral](t, m.Model.Bus(), m.Adapter)
}

func TestResets(t *testing.T) {
	m := hardware.NewMachine(model.Accurate, nil, nil)
	m.EnableDiskAdapter(false)

	m.Model.Write(0x2000, 0x55)
	m.Model.Write(0xff15, 0x32)

	// soft reset touches the processor only
	m.SoftReset()
	test.ExpectEquality(t, m.CPU.ResetCount, 2)
	test.ExpectEquality(t, m.Model.Read(0x2000), uint8(0x55))
	test.ExpectEquality(t, m.Model.Read(0xff15)&0x7f, uint8(0x32))
	test.ExpectEquality(t, m.Drive.Resets(), 1)

	// chip reset reinitialises the registers but keeps memory
	m.ChipReset()
	test.ExpectEquality(t, m.CPU.ResetCount, 2)
	test.ExpectEquality(t, m.Model.Read(0x2000), uint8(0x55))
	test.ExpectInequality(t, m.Model.Read(0xff15)&0x7f, uint8(0x32))

	// hard reset clears memory and resets the processor and the drive
	m.HardReset()
	test.ExpectEquality(t, m.CPU.ResetCount, 3)
	test.ExpectEquality(t, m.Model.Read(0x2000), uint8(0x00))
	test.ExpectEquality(t, m.Drive.Resets(), 2)
}

func TestMountDisk(t *testing.T) {
	m := hardware.NewMachine(model.Accurate, nil, nil)
	test.ExpectFailure(t, m.MountDisk("does_not_exist.d64"))
}

func TestShutdown(t *testing.T) {
	m := hardware.NewMachine(model.Accurate, nil, nil)
	m.EnableDiskAdapter(false)
	m.Shutdown()
	test.ExpectSuccess(t, m.Drive == nil)
	test.ExpectSuccess(t, m.Adapter == nil)
	test.ExpectFailure(t, m.CPU.Plumbed())
	test.ExpectSuccess(t, m.Model.Bus() == nil)
}

type audio struct {
	paused  int
	resumed int
}

func (a *audio) Pause() {
	a.paused++
}

func (a *audio) Resume() {
	a.resumed++
}

type presentation struct {
	rebuilt      int
	cyclesPerRow int
}

func (p *presentation) Rebuild(m model.Model) {
	p.rebuilt++
	p.cyclesPerRow = m.CyclesPerRow()
}

// prepare puts some distinctive state into the model.
func prepare(m *hardware.Machine) {
	for i := 0x1000; i < 0x1100; i++ {
		m.Model.Write(uint16(i), uint8(i))
	}
	m.Model.Write(0xff15, 0x45)
	m.Model.Write(0xff19, 0x12)
	m.Model.Write(0xff0a, 0x80)
	m.Model.Write(0x0000, 0x0f)
	m.Model.Write(0x0001, 0x0c)
	m.Model.Write(model.RAMSelect, 0)
}

func TestSwapSameLevel(t *testing.T) {
	m := hardware.NewMachine(model.Accurate, nil, nil)
	a := &audio{}
	m.SetAudio(a)

	mdl := m.Model
	swapped, _ := m.SwapModel(model.Accurate)
	test.ExpectFailure(t, swapped)
	test.ExpectSuccess(t, m.Model == mdl)
	test.ExpectEquality(t, a.paused, 0)
}

func TestSwapCompatible(t *testing.T) {
	m := hardware.NewMachine(model.Accurate, nil, nil)
	a := &audio{}
	p := &presentation{}
	m.SetAudio(a)
	m.SetPresentation(p)
	prepare(m)

	mem := m.Model.Snapshot(nil)
	regs := m.Model.RegisterWindow()
	var window [model.RegisterCount]uint8
	for i := range window {
		window[i] = m.Model.Read(model.RegisterBase + uint16(i))
	}
	ddr := m.Model.Read(0x0000)
	port := m.Model.Read(0x0001)
	pc := m.CPU.PC

	swapped, compatible := m.SwapModel(model.Fast)
	test.ExpectSuccess(t, swapped)
	test.ExpectSuccess(t, compatible)
	test.ExpectEquality(t, m.Model.Level(), model.Fast)

	test.ExpectSuccess(t, bytes.Equal(m.Model.Snapshot(nil), mem))
	test.ExpectEquality(t, m.Model.RegisterWindow(), regs)
	for i := range window {
		test.ExpectEquality(t, m.Model.Read(model.RegisterBase+uint16(i)), window[i], i)
	}
	test.ExpectEquality(t, m.Model.Read(0x0000), ddr)
	test.ExpectEquality(t, m.Model.Read(0x0001), port)
	test.ExpectFailure(t, m.Model.ROMEnabled())

	// no reset and no rebuild
	test.ExpectEquality(t, m.CPU.ResetCount, 1)
	test.ExpectEquality(t, m.CPU.PC, pc)
	test.ExpectEquality(t, p.rebuilt, 0)

	// everything is plumbed into the new model
	test.ExpectEquality[model.Peripheral](t, m.Model.Bus(), m.Adapter)
	test.ExpectSuccess(t, m.CPU.IRQPending() == (*m.Model.IRQRegister()&0x80 == 0x80))

	test.ExpectEquality(t, a.paused, 1)
	test.ExpectEquality(t, a.resumed, 1)
}

func TestSwapIncompatible(t *testing.T) {
	m := hardware.NewMachine(model.Accurate, nil, nil)
	a := &audio{}
	p := &presentation{}
	m.SetAudio(a)
	m.SetPresentation(p)
	m.EnableDiskAdapter(false)
	prepare(m)

	mem := m.Model.Snapshot(nil)

	swapped, compatible := m.SwapModel(model.AltChip)
	test.ExpectSuccess(t, swapped)
	test.ExpectFailure(t, compatible)
	test.ExpectEquality(t, m.Model.Level(), model.AltChip)

	// memory survives but the machine has been reset
	test.ExpectSuccess(t, bytes.Equal(m.Model.Snapshot(nil), mem))
	test.ExpectEquality(t, m.CPU.ResetCount, 2)
	test.ExpectSuccess(t, m.Model.ROMEnabled())

	test.ExpectEquality(t, p.rebuilt, 1)
	test.ExpectEquality(t, p.cyclesPerRow, 504)

	test.ExpectEquality[model.Peripheral](t, m.Model.Bus(), m.Drive)

	test.ExpectEquality(t, a.paused, 1)
	test.ExpectEquality(t, a.resumed, 1)

	// and back again
	swapped, compatible = m.SwapModel(model.Accurate)
	test.ExpectSuccess(t, swapped)
	test.ExpectFailure(t, compatible)
	test.ExpectSuccess(t, bytes.Equal(m.Model.Snapshot(nil), mem))
	test.ExpectEquality(t, p.cyclesPerRow, 456)
}

func TestSwapKeepsKeyboardQueue(t *testing.T) {
	m := hardware.NewMachine(model.Accurate, nil, nil)
	m.Model.Keys().Inject("RUN:\r")
	m.SwapModel(model.AltChip)
	test.ExpectEquality(t, string(m.Model.Keys().Pending()), "RUN:\r")
}
