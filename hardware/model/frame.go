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

// Process implements the Model interface.
func (c *chip) Process() {
	c.feedKeyboard()
	if c.batched {
		c.processFrame()
	} else {
		c.processScanlines()
	}
	c.sound.generate(&c.regs)
	c.frames++
}

// the number of processor cycles per scanline
func (c *chip) cpuCyclesPerRow() int {
	return c.cyclesPerRow / 8
}

func (c *chip) processScanlines() {
	cycles := c.cpuCyclesPerRow()
	for y := 0; y < Scanlines; y++ {
		c.raster = y
		c.checkRaster()
		c.step(cycles)
		c.renderScanline(y)
	}
	c.raster = 0
}

// processFrame runs the processor for the entire frame in one go and renders
// the screen afterwards. the raster interrupt is raised at the start of the
// frame.
func (c *chip) processFrame() {
	if cmp := c.rasterCompare(); cmp < Scanlines {
		c.raster = cmp
		c.checkRaster()
	}
	c.step(c.cpuCyclesPerRow() * Scanlines)
	for y := 0; y < Scanlines; y++ {
		c.renderScanline(y)
	}
	c.raster = 0
}

func (c *chip) checkRaster() {
	if c.raster == c.rasterCompare() {
		c.regs[regIRQFlags] |= irqRasterBit
		c.updateIRQ()
	}
}

func (c *chip) step(cycles int) {
	if c.cpu != nil {
		c.cpu.Run(cycles)
	}
	if c.tape != nil {
		c.tape.Advance(cycles)
	}
	c.clock += uint64(cycles)
}

func (c *chip) renderScanline(y int) {
	row := c.screen[y*c.cyclesPerRow : (y+1)*c.cyclesPerRow]

	border := c.regs[regBorder] & c.colourMask
	for i := range row {
		row[i] = border
	}

	top := VisibleTop + displayTop
	if c.regs[regControl]&controlDisplay == 0 || y < top || y >= top+displayHeight {
		return
	}

	left := FirstVisiblePixel(c.cyclesPerRow) + displayLeft
	background := c.regs[regBackground] & c.colourMask
	for i := left; i < left+displayWidth; i++ {
		row[i] = background
	}
}

// feedKeyboard copies bytes from the keyboard queue into the KERNAL keyboard
// buffer once the KERNAL has emptied it.
func (c *chip) feedKeyboard() {
	if len(c.keys.queue) == 0 {
		return
	}
	if c.ram[c.ramAddress(c.kbCount)] != 0 {
		return
	}

	b := c.keys.next(c.kbSize)
	for i, v := range b {
		c.ram[c.ramAddress(c.kbBuffer+uint16(i))] = v
	}
	c.ram[c.ramAddress(c.kbCount)] = uint8(len(b))
}
