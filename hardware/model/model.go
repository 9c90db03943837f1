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
	"image/color"
)

// Memory and screen geometry common to all models.
const (
	MemorySize = 0x10000
	BigRAMSize = 0x40000

	// the register window of the video chip
	RegisterBase  = 0xff00
	RegisterCount = 0x20

	// the strobe addresses that make ROM visible (or invisible) in the upper
	// half of memory
	ROMSelect = 0xff3e
	RAMSelect = 0xff3f

	Scanlines     = 312
	VisibleWidth  = 384
	VisibleHeight = 288

	// the number of the first visible scanline
	VisibleTop = 10

	RefreshRate = 50
	SampleRate  = 44100
)

// FirstVisiblePixel returns the offset of the first visible pixel in a
// scanline for the number of cycles per row.
func FirstVisiblePixel(cyclesPerRow int) int {
	off := 8
	if cyclesPerRow == 504 {
		off = -68
	}
	return (cyclesPerRow - VisibleWidth - off) / 2
}

// Processor is the part of the CPU that the model drives.
type Processor interface {
	Run(cycles int)
}

// Peripheral is a device that can be hooked to the model's serial bus. Only
// one peripheral can be hooked at a time.
type Peripheral interface {
	Reset()
	String() string
}

// PeripheralIO is implemented by peripherals that respond to reads and
// writes in the I/O area of memory.
type PeripheralIO interface {
	IORead(address uint16) (uint8, bool)
	IOWrite(address uint16, data uint8) bool
}

// Tape is the tape deck as seen by the model.
type Tape interface {
	// the signal on the tape read line
	Read() bool

	// whether the play button is down
	Sense() bool

	// motor control from the processor port
	Motor(on bool)

	// advance the tape by the number of processor cycles
	Advance(cycles int)
}

// Model is the interface shared by all hardware model variants.
type Model interface {
	Level() Level

	// the number of clock units per scanline. models with the same number of
	// cycles per row are timing compatible
	CyclesPerRow() int

	Read(address uint16) uint8
	Write(address uint16, data uint8)

	// a hard reset reinitialises the video and timing state and clears
	// memory. a soft reset leaves memory untouched
	Reset(hard bool)

	// (re)initialise ROM from the configured ROM images
	LoadROMs()

	// Process runs the model for one frame
	Process()

	// Snapshot appends the contents of memory to buf and returns the result.
	// Restore copies a previous snapshot back into memory
	Snapshot(buf []byte) []byte
	Restore(buf []byte) error

	// the raw contents of the register window. unlike Read() and Write() there
	// are no side effects
	RegisterWindow() [RegisterCount]uint8
	SetRegisterWindow(regs [RegisterCount]uint8)

	// the interrupt register. bit 7 indicates an interrupt request
	IRQRegister() *uint8

	// whether ROM is visible in the upper half of memory
	ROMEnabled() bool

	// the raw screen buffer. one byte per pixel, CyclesPerRow() pixels per
	// row and Scanlines rows
	ScreenData() []uint8

	// Palette maps the raw screen buffer values to colours
	Palette() color.Palette

	TextToScreen(x, y int, text string)
	ShowLED(x, y int, on bool)

	Keys() *Keys

	HookCPU(cpu Processor)
	HookBus(p Peripheral)
	Bus() Peripheral
	HookTape(t Tape)

	ClockCount() uint64
	FrameCount() uint64

	// the sound samples generated during the most recent frame. samples are
	// mono and at SampleRate
	SoundSamples() []int16
	ResetSound()

	Config() *Config
}

// Config holds the user configurable options of a model. The same Config is
// shared by every model created by the machine.
type Config struct {
	// mask applied to RAM addresses. 0xffff for 64KB, 0x7fff for 32KB and
	// 0x3fff for 16KB
	RAMMask uint16

	// fit the 256KB RAM expansion
	BigRAM bool

	// paths to the ROM images for each of the four slots. an empty string
	// indicates the built-in ROM
	ROMLow  [4]string
	ROMHigh [4]string
}

// NewConfig is the preferred method of initialisation for the Config type.
func NewConfig() *Config {
	return &Config{
		RAMMask: 0xffff,
	}
}

// New creates a model of the specified level.
func New(level Level, cfg *Config) Model {
	if cfg == nil {
		cfg = NewConfig()
	}
	switch level {
	case Fast:
		return newChip(fastVariant, cfg)
	case AltChip:
		return newChip(vic2Variant, cfg)
	}
	return newChip(accurateVariant, cfg)
}
