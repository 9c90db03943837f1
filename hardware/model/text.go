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

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// the face used by the text plane
var face = basicfont.Face7x13

// LineHeight is the height in pixels of one line on the text plane.
const LineHeight = 13

// TextWidth returns the width in pixels of the text when drawn on the text
// plane.
func TextWidth(text string) int {
	return font.MeasureString(face, text).Ceil()
}

// TextToScreen draws the text onto the raw screen buffer with the top left
// corner of the text at x, y. The text is drawn over a solid background.
func (c *chip) TextToScreen(x, y int, text string) {
	r := image.Rect(x, y, x+TextWidth(text), y+LineHeight)
	c.fill(r, c.textBG)

	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(c.palette[c.textFG]),
		Face: face,
		Dot:  fixed.P(x, y+face.Ascent),
	}
	d.DrawString(text)
}

// ShowLED draws a small indicator at x, y. The indicator is lit if on is true.
func (c *chip) ShowLED(x, y int, on bool) {
	col := c.ledOff
	if on {
		col = c.ledOn
	}
	c.fill(image.Rect(x+1, y+4, x+7, y+9), col)
}

// fill the rectangle on the raw screen buffer with the palette index.
func (c *chip) fill(r image.Rectangle, col uint8) {
	r = r.Intersect(c.img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := c.img.Pix[c.img.PixOffset(r.Min.X, y):c.img.PixOffset(r.Max.X, y)]
		for i := range row {
			row[i] = col
		}
	}
}
