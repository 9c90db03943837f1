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

// variant describes the differences between the hardware models.
type variant struct {
	level        Level
	cyclesPerRow int

	// render and run the processor once per frame rather than once per
	// scanline
	batched bool

	palette color.Palette

	// mask applied to colour register values to produce a palette index
	colourMask uint8

	// palette indexes used by the text plane
	textFG uint8
	textBG uint8
	ledOn  uint8
	ledOff uint8

	// location of the KERNAL keyboard buffer and its length counter
	kbBuffer uint16
	kbCount  uint16
	kbSize   int
}

var accurateVariant = variant{
	level:        Accurate,
	cyclesPerRow: 456,
	palette:      tedPalette(),
	colourMask:   0x7f,
	textFG:       0x71,
	textBG:       0x00,
	ledOn:        0x55,
	ledOff:       0x15,
	kbBuffer:     0x0527,
	kbCount:      0x00ef,
	kbSize:       10,
}

var fastVariant = func() variant {
	v := accurateVariant
	v.level = Fast
	v.batched = true
	return v
}()

var vic2Variant = variant{
	level:        AltChip,
	cyclesPerRow: 504,
	palette:      vic2Palette(),
	colourMask:   0x0f,
	textFG:       0x01,
	textBG:       0x00,
	ledOn:        0x0d,
	ledOff:       0x05,
	kbBuffer:     0x0277,
	kbCount:      0x00c6,
	kbSize:       10,
}
