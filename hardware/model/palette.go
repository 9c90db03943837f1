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
	"math"
)

// the luminance of each of the eight TED luma levels
var tedLuma = [8]float64{0.14, 0.19, 0.24, 0.31, 0.43, 0.56, 0.70, 0.90}

// the phase angle (in degrees) of TED hues 2 to 15. hue 0 is black and hue 1
// is without chroma
var tedHue = [14]float64{103, 283, 53, 241, 347, 167, 123, 148, 195, 83, 265, 323, 23, 215}

const tedSaturation = 0.12

// tedPalette returns the palette for the TED models. The palette index is
// the value of a TED colour register: luma in bits 4 to 6 and hue in bits 0
// to 3. The upper 128 entries repeat the lower 128.
func tedPalette() color.Palette {
	p := make(color.Palette, 256)
	for i := 0; i < 128; i++ {
		hue := i & 0x0f
		luma := (i >> 4) & 0x07

		var c color.RGBA
		switch hue {
		case 0:
			c = color.RGBA{A: 0xff}
		case 1:
			c = yuvToRGBA(tedLuma[luma], 0, 0)
		default:
			a := tedHue[hue-2] * math.Pi / 180
			c = yuvToRGBA(tedLuma[luma], tedSaturation*math.Cos(a), tedSaturation*math.Sin(a))
		}

		p[i] = c
		p[i+128] = c
	}
	return p
}

// colours of the VIC-II
var vic2Colours = [16]uint32{
	0x000000, 0xffffff, 0x813338, 0x75cec8,
	0x8e3c97, 0x56ac4d, 0x2e2c9b, 0xedf171,
	0x8e5029, 0x553800, 0xc46c71, 0x4a4a4a,
	0x7b7b7b, 0xa9ff9f, 0x706deb, 0xb2b2b2,
}

// vic2Palette returns the palette for the VIC-II model. The sixteen colours
// are repeated to fill the palette.
func vic2Palette() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		c := vic2Colours[i&0x0f]
		p[i] = color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xff}
	}
	return p
}

func yuvToRGBA(y, u, v float64) color.RGBA {
	r := y + 1.140*v
	g := y - 0.396*u - 0.581*v
	b := y + 2.029*u
	return color.RGBA{R: clamp(r), G: clamp(g), B: clamp(b), A: 0xff}
}

func clamp(v float64) uint8 {
	v = math.Round(v * 255)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
