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

package cpu_test

import (
	"testing"

	"github.com/gopher264/gopher264/hardware/cpu"
	"github.com/gopher264/gopher264/test"
)

type mockMem [0x10000]uint8

func (m *mockMem) Read(address uint16) uint8 {
	return m[address]
}

func (m *mockMem) Write(address uint16, data uint8) {
	m[address] = data
}

func TestReset(t *testing.T) {
	mem := &mockMem{}
	mem[0xfffc] = 0x00
	mem[0xfffd] = 0x80

	mc := cpu.NewCPU()
	test.ExpectFailure(t, mc.Plumbed())
	mc.Plumb(mem, nil)
	test.ExpectSuccess(t, mc.Plumbed())

	mc.A = 0x10
	mc.Reset()
	test.ExpectEquality(t, mc.PC, uint16(0x8000))
	test.ExpectEquality(t, mc.A, uint8(0))
	test.ExpectEquality(t, mc.SP, uint8(0xff))
	test.ExpectEquality(t, mc.ResetCount, 1)
	test.ExpectSuccess(t, mc.Status.InterruptDisable)
}

func TestNMI(t *testing.T) {
	mem := &mockMem{}
	mem[0xfffa] = 0x34
	mem[0xfffb] = 0x12

	mc := cpu.NewCPU()
	mc.Plumb(mem, nil)
	mc.Reset()
	mc.PC = 0xc000

	mc.TriggerNMI()
	mc.Run(100)
	test.ExpectEquality(t, mc.PC, uint16(0x1234))
	test.ExpectEquality(t, mc.SP, uint8(0xfc))
	test.ExpectEquality(t, mem[0x01ff], uint8(0xc0))
	test.ExpectEquality(t, mem[0x01fe], uint8(0x00))

	// holding the line does not retrigger
	mc.PC = 0xc000
	mc.Run(100)
	test.ExpectEquality(t, mc.PC, uint16(0xc000))

	mc.ClearNMI()
	test.ExpectFailure(t, mc.NMI())
}

func TestIRQ(t *testing.T) {
	mem := &mockMem{}
	mem[0xfffe] = 0x00
	mem[0xffff] = 0xce

	var irq uint8

	mc := cpu.NewCPU()
	mc.Plumb(mem, &irq)
	mc.Reset()
	mc.PC = 0x1000

	irq = 0x80

	// interrupts disabled after reset
	mc.Run(100)
	test.ExpectEquality(t, mc.PC, uint16(0x1000))

	mc.Status.InterruptDisable = false
	mc.Run(100)
	test.ExpectEquality(t, mc.PC, uint16(0xce00))

	// rebinding the interrupt register
	var other uint8
	mc.Plumb(mem, &other)
	test.ExpectFailure(t, mc.IRQPending())
}

func TestStatusRegister(t *testing.T) {
	var sr cpu.StatusRegister
	sr.FromValue(0x81)
	test.ExpectEquality(t, sr.String(), "Nv-bdizC")
	test.ExpectEquality(t, sr.Value(), uint8(0xa1))
}
