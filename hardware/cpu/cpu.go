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

package cpu

import (
	"fmt"
)

// Memory is the view of the hardware model's address space required by the
// CPU.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Interrupt vectors.
const (
	NMIVector   = uint16(0xfffa)
	ResetVector = uint16(0xfffc)
	IRQVector   = uint16(0xfffe)
)

// number of cycles taken to service an interrupt
const interruptCycles = 7

// CPU implements the register file and interrupt lines of the processor.
type CPU struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	Status StatusRegister

	mem Memory

	// the interrupt register of the hardware model. bit 7 indicates a pending
	// interrupt request. it is the responsibility of the hardware model to
	// set and clear the bit
	irq *uint8

	// the non-maskable interrupt line. an interrupt is serviced on the
	// falling edge
	nmi      bool
	nmiLatch bool

	// number of cycles consumed since the last reset
	Cycles uint64

	// number of times the CPU has been reset
	ResetCount int
}

// NewCPU is the preferred method of initialisation for the CPU type. The CPU
// must be plumbed with Plumb() before it is Reset() or Run().
func NewCPU() *CPU {
	return &CPU{}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%04x SR=%s AC=%02x XR=%02x YR=%02x SP=%02x",
		mc.PC, mc.Status, mc.A, mc.X, mc.Y, mc.SP)
}

// Plumb binds the CPU to a new memory and interrupt register. The register
// file is not changed.
func (mc *CPU) Plumb(mem Memory, irq *uint8) {
	mc.mem = mem
	mc.irq = irq
}

// Plumbed returns true if the CPU has been bound to memory.
func (mc *CPU) Plumbed() bool {
	return mc.mem != nil
}

// Reset reinitialises all registers and loads the PC with the reset vector.
func (mc *CPU) Reset() {
	mc.A = 0
	mc.X = 0
	mc.Y = 0
	mc.SP = 0xff
	mc.Status.FromValue(0)
	mc.Status.InterruptDisable = true
	mc.nmi = false
	mc.nmiLatch = false
	mc.Cycles = 0
	mc.ResetCount++
	if mc.mem != nil {
		mc.PC = mc.readWord(ResetVector)
	} else {
		mc.PC = 0
	}
}

// TriggerNMI pulls the NMI line low. The interrupt is serviced on the next
// call to Run().
func (mc *CPU) TriggerNMI() {
	if !mc.nmi {
		mc.nmiLatch = true
	}
	mc.nmi = true
}

// ClearNMI releases the NMI line.
func (mc *CPU) ClearNMI() {
	mc.nmi = false
}

// NMI returns the state of the NMI line.
func (mc *CPU) NMI() bool {
	return mc.nmi
}

// IRQPending returns true if the hardware model is requesting an interrupt.
func (mc *CPU) IRQPending() bool {
	return mc.irq != nil && *mc.irq&0x80 == 0x80
}

// Opcode returns the byte at the program counter.
func (mc *CPU) Opcode() uint8 {
	if mc.mem == nil {
		return 0
	}
	return mc.mem.Read(mc.PC)
}

// Run the CPU for the number of cycles. Pending interrupts are serviced first.
func (mc *CPU) Run(cycles int) {
	if mc.mem == nil {
		return
	}

	if mc.nmiLatch {
		mc.nmiLatch = false
		mc.interrupt(NMIVector)
		cycles -= interruptCycles
	} else if mc.IRQPending() && !mc.Status.InterruptDisable {
		mc.interrupt(IRQVector)
		cycles -= interruptCycles
	}

	if cycles > 0 {
		mc.Cycles += uint64(cycles)
	}
}

func (mc *CPU) interrupt(vector uint16) {
	mc.push(uint8(mc.PC >> 8))
	mc.push(uint8(mc.PC))
	sr := mc.Status
	sr.Break = false
	mc.push(sr.Value())
	mc.Status.InterruptDisable = true
	mc.PC = mc.readWord(vector)
	mc.Cycles += interruptCycles
}

func (mc *CPU) push(v uint8) {
	mc.mem.Write(0x0100|uint16(mc.SP), v)
	mc.SP--
}

func (mc *CPU) readWord(address uint16) uint16 {
	return uint16(mc.mem.Read(address)) | uint16(mc.mem.Read(address+1))<<8
}
