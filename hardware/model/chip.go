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

package model

import (
	"image"
	"image/color"

	"github.com/gopher264/gopher264/curated"
)

// Sentinel error returned by Restore().
const SnapshotSize = "model: snapshot is %d bytes, expected %d"

// registers of note in the register window
const (
	regControl     = 0x06
	regKeyLatch    = 0x08
	regIRQFlags    = 0x09
	regIRQEnable   = 0x0a
	regRasterCmp   = 0x0b
	regROMStatus   = 0x13
	regBackground  = 0x15
	regBorder      = 0x19
	regRasterHigh  = 0x1c
	regRasterLow   = 0x1d
	regVoice1Low   = 0x0e
	regVoice2Low   = 0x0f
	regVoice2High  = 0x10
	regSoundCtrl   = 0x11
	regVoice1High  = 0x12
	irqRasterBit   = 0x02
	irqRequestBit  = 0x80
	irqSourceMask  = 0x5e
	controlDisplay = 0x10
)

// processor port bits
const (
	portTapeSense = 0x04
	portMotor     = 0x08
	portTapeRead  = 0x10
)

// the I/O area of memory
const (
	ioStart   = 0xfd00
	busStart  = 0xfec0
	busEnd    = 0xfeff
	bankStart = 0xfdd0
	bankEnd   = 0xfddf
)

// the display window, relative to the first visible pixel and the first
// visible scanline
const (
	displayLeft   = 32
	displayTop    = 44
	displayWidth  = 320
	displayHeight = 200
)

// chip implements the Model interface. The differences between the models
// are described by the variant.
type chip struct {
	variant
	cfg *Config

	ram  []uint8
	regs [RegisterCount]uint8

	// processor port data direction and output registers
	ddr  uint8
	port uint8

	romEnabled bool
	rom        [4][2][]uint8
	romBank    [2]int

	screen []uint8
	img    *image.Paletted

	keys Keys

	cpu  Processor
	bus  Peripheral
	tape Tape

	raster int
	clock  uint64
	frames uint64

	sound sound
}

func newChip(v variant, cfg *Config) *chip {
	c := &chip{
		variant: v,
		cfg:     cfg,
		keys:    newKeys(),
	}
	c.screen = make([]uint8, v.cyclesPerRow*Scanlines)
	c.img = &image.Paletted{
		Pix:     c.screen,
		Stride:  v.cyclesPerRow,
		Rect:    image.Rect(0, 0, v.cyclesPerRow, Scanlines),
		Palette: v.palette,
	}
	c.allocRAM()
	c.LoadROMs()
	c.Reset(true)
	return c
}

func (c *chip) allocRAM() {
	n := MemorySize
	if c.cfg.BigRAM {
		n = BigRAMSize
	}
	if len(c.ram) != n {
		c.ram = make([]uint8, n)
	}
}

func (c *chip) Level() Level {
	return c.level
}

func (c *chip) CyclesPerRow() int {
	return c.cyclesPerRow
}

func (c *chip) Config() *Config {
	return c.cfg
}

func (c *chip) Keys() *Keys {
	return &c.keys
}

func (c *chip) RegisterWindow() [RegisterCount]uint8 {
	return c.regs
}

func (c *chip) SetRegisterWindow(regs [RegisterCount]uint8) {
	c.regs = regs
}

func (c *chip) IRQRegister() *uint8 {
	return &c.regs[regIRQFlags]
}

func (c *chip) ROMEnabled() bool {
	return c.romEnabled
}

func (c *chip) ScreenData() []uint8 {
	return c.screen
}

func (c *chip) Palette() color.Palette {
	return c.palette
}

func (c *chip) ClockCount() uint64 {
	return c.clock
}

func (c *chip) FrameCount() uint64 {
	return c.frames
}

func (c *chip) HookCPU(cpu Processor) {
	c.cpu = cpu
}

func (c *chip) HookBus(p Peripheral) {
	c.bus = p
}

func (c *chip) Bus() Peripheral {
	return c.bus
}

func (c *chip) HookTape(t Tape) {
	c.tape = t
}

// Reset the model. A hard reset also clears RAM.
func (c *chip) Reset(hard bool) {
	c.regs = [RegisterCount]uint8{}
	c.regs[regControl] = controlDisplay | 0x0b
	c.regs[regBorder] = 0x6e & c.colourMask
	c.regs[regBackground] = 0x71 & c.colourMask
	c.raster = 0
	c.romEnabled = true
	c.romBank = [2]int{}
	c.ddr = 0x0f
	c.port = 0x08
	c.clock = 0
	clear(c.screen)
	c.sound.reset()

	if hard {
		c.allocRAM()
		clear(c.ram)
		c.keys.Clear()
	}
}

func (c *chip) ramAddress(address uint16) int {
	return int(address & c.cfg.RAMMask)
}

// Read implements the cpu.Memory interface.
func (c *chip) Read(address uint16) uint8 {
	switch {
	case address == 0x0000:
		return c.ddr
	case address == 0x0001:
		return c.readPort()
	case address >= RegisterBase && address < RegisterBase+RegisterCount:
		return c.readRegister(int(address - RegisterBase))
	case address >= busStart && address <= busEnd:
		if io, ok := c.bus.(PeripheralIO); ok {
			if v, ok := io.IORead(address); ok {
				return v
			}
		}
		return 0xff
	case address >= ioStart && address < RegisterBase:
		return 0xff
	case address >= 0x8000 && c.romEnabled:
		if address < 0xc000 {
			return c.readROM(0, address-0x8000)
		}
		return c.readROM(1, address-0xc000)
	}
	return c.ram[c.ramAddress(address)]
}

func (c *chip) readROM(half int, offset uint16) uint8 {
	r := c.rom[c.romBank[half]][half]
	if int(offset) >= len(r) {
		return 0xff
	}
	return r[offset]
}

func (c *chip) readPort() uint8 {
	var in uint8 = 0xff
	if c.tape != nil {
		if c.tape.Sense() {
			in &^= portTapeSense
		}
		if !c.tape.Read() {
			in &^= portTapeRead
		}
	}
	return (c.port & c.ddr) | (in &^ c.ddr)
}

func (c *chip) readRegister(r int) uint8 {
	switch r {
	case regKeyLatch:
		return c.readJoystick()
	case regROMStatus:
		v := c.regs[r] &^ 0x01
		if c.romEnabled {
			v |= 0x01
		}
		return v
	case regRasterHigh:
		return 0xfe | uint8(c.raster>>8)
	case regRasterLow:
		return uint8(c.raster)
	}
	return c.regs[r]
}

// readJoystick returns the state of the joysticks selected by the latch.
// joystick 1 is selected by clearing bit 2 of the latch and joystick 2 by
// clearing bit 1. all bits are active low.
func (c *chip) readJoystick() uint8 {
	var v uint8
	latch := c.regs[regKeyLatch]
	if latch&0x04 == 0 {
		v |= joystickBits(c.keys.Joystick(0), 0x40)
	}
	if latch&0x02 == 0 {
		v |= joystickBits(c.keys.Joystick(1), 0x80)
	}
	return ^v
}

func joystickBits(state uint8, fire uint8) uint8 {
	var v uint8
	if state&(1<<0) != 0 {
		v |= 0x01
	}
	if state&(1<<1) != 0 {
		v |= 0x02
	}
	if state&(1<<2) != 0 {
		v |= 0x04
	}
	if state&(1<<3) != 0 {
		v |= 0x08
	}
	if state&(1<<4) != 0 {
		v |= fire
	}
	return v
}

// Write implements the cpu.Memory interface.
func (c *chip) Write(address uint16, data uint8) {
	switch {
	case address == 0x0000:
		c.ddr = data
		c.updateMotor()
	case address == 0x0001:
		c.port = data
		c.updateMotor()
	case address == ROMSelect:
		c.romEnabled = true
	case address == RAMSelect:
		c.romEnabled = false
	case address >= RegisterBase && address < RegisterBase+RegisterCount:
		c.writeRegister(int(address-RegisterBase), data)
	case address >= bankStart && address <= bankEnd:
		c.romBank[0] = int(address & 0x03)
		c.romBank[1] = int((address >> 2) & 0x03)
	case address >= busStart && address <= busEnd:
		if io, ok := c.bus.(PeripheralIO); ok {
			io.IOWrite(address, data)
		}
	case address >= ioStart && address < RegisterBase:
	default:
		// writes to the ROM area always go to the RAM underneath
		c.ram[c.ramAddress(address)] = data
	}
}

func (c *chip) updateMotor() {
	if c.tape != nil {
		// motor is active low
		c.tape.Motor(c.ddr&portMotor != 0 && c.port&portMotor == 0)
	}
}

func (c *chip) writeRegister(r int, data uint8) {
	switch r {
	case regIRQFlags:
		// writing a one acknowledges the interrupt source
		c.regs[r] &^= data & irqSourceMask
		c.updateIRQ()
	case regIRQEnable:
		c.regs[r] = data
		c.updateIRQ()
	case regRasterHigh:
		c.raster = (c.raster & 0xff) | int(data&0x01)<<8
	case regRasterLow:
		c.raster = (c.raster &^ 0xff) | int(data)
	default:
		c.regs[r] = data
	}
}

func (c *chip) updateIRQ() {
	if c.regs[regIRQFlags]&c.regs[regIRQEnable]&irqSourceMask != 0 {
		c.regs[regIRQFlags] |= irqRequestBit
	} else {
		c.regs[regIRQFlags] &^= irqRequestBit
	}
}

func (c *chip) rasterCompare() int {
	return int(c.regs[regRasterCmp]) | int(c.regs[regIRQEnable]&0x01)<<8
}

// Snapshot implements the Model interface.
func (c *chip) Snapshot(buf []byte) []byte {
	return append(buf[:0], c.ram...)
}

// Restore implements the Model interface.
func (c *chip) Restore(buf []byte) error {
	if len(buf) != len(c.ram) {
		return curated.Errorf(SnapshotSize, len(buf), len(c.ram))
	}
	copy(c.ram, buf)
	return nil
}
