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

package television

import (
	"image"
	"image/color"
	"strings"

	"github.com/gopher264/gopher264/hardware/model"
	"github.com/gopher264/gopher264/notifications"
)

// the scanlines on which the popup is drawn. the message is drawn on the
// middle line
var popupRows = [3]int{144, 144 + model.LineHeight, 144 + model.LineHeight*2}

// PopupTab returns the horizontal position of a popup message of the given
// width in pixels.
func PopupTab(cyclesPerRow int, width int) int {
	offset := 592
	if cyclesPerRow == 456 {
		offset = 456
	}
	return offset/2 - width/2
}

type yuv struct {
	y, u, v uint8
}

// Pipeline converts the screen of a hardware model into a Frame.
type Pipeline struct {
	cyclesPerRow int
	palette      color.Palette

	// the offset of the first visible pixel in the raw screen
	origin int

	argb [256]uint32
	yuv  [256]yuv

	overlay bool

	direct []byte
	packed []byte
	frame  Frame
}

// NewPipeline is the preferred method of initialisation for the Pipeline type.
func NewPipeline(m model.Model) *Pipeline {
	p := &Pipeline{}
	p.Rebuild(m)
	return p
}

// Rebuild the conversion tables for the model. Implements the
// hardware.Presentation interface.
func (p *Pipeline) Rebuild(m model.Model) {
	p.cyclesPerRow = m.CyclesPerRow()
	p.palette = m.Palette()
	p.origin = model.FirstVisiblePixel(p.cyclesPerRow) + model.VisibleTop*p.cyclesPerRow

	for i := range p.argb {
		var c color.Color = color.Black
		if i < len(p.palette) {
			c = p.palette[i]
		}
		r, g, b, _ := c.RGBA()
		r >>= 8
		g >>= 8
		b >>= 8
		p.argb[i] = 0xff000000 | r<<16 | g<<8 | b
		p.yuv[i] = toYUV(uint8(r), uint8(g), uint8(b))
	}

	p.direct = make([]byte, p.cyclesPerRow*ARGB.BytesPerPixel()*model.VisibleHeight)
	p.packed = make([]byte, p.cyclesPerRow*UYVY.BytesPerPixel()*model.VisibleHeight*2)
	p.frame = Frame{}
}

func toYUV(r, g, b uint8) yuv {
	fr := float64(r)
	fg := float64(g)
	fb := float64(b)
	return yuv{
		y: clamp(0.299*fr + 0.587*fg + 0.114*fb),
		u: clamp(-0.169*fr - 0.331*fg + 0.5*fb + 128),
		v: clamp(0.5*fr - 0.419*fg - 0.081*fb + 128),
	}
}

func clamp(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// CyclesPerRow returns the timing of the model that the tables were built for.
func (p *Pipeline) CyclesPerRow() int {
	return p.cyclesPerRow
}

// ARGB returns the 32bit colour for the palette index.
func (p *Pipeline) ARGB(idx uint8) uint32 {
	return p.argb[idx]
}

// SetOverlay selects the UYVY format (true) or the ARGB format (false).
func (p *Pipeline) SetOverlay(overlay bool) {
	p.overlay = overlay
}

// Overlay returns true if the UYVY format is selected.
func (p *Pipeline) Overlay() bool {
	return p.overlay
}

// Frame returns the most recently presented frame. The frame will be empty if
// nothing has been presented since the tables were built.
func (p *Pipeline) Frame() Frame {
	return p.frame
}

// Present draws the popup, if there is one, and then converts the screen of
// the model. The popup countdown is decreased by one.
func (p *Pipeline) Present(m model.Model, popup *notifications.Popup) Frame {
	if popup != nil && popup.Active() {
		drawPopup(m, popup.Message)
		popup.Tick()
	}

	src := m.ScreenData()[p.origin:]
	if p.overlay {
		p.frame = p.convertUYVY(src)
	} else {
		p.frame = p.convertARGB(src)
	}

	return p.frame
}

func drawPopup(m model.Model, message string) {
	blank := strings.Repeat(" ", len(message))
	tab := PopupTab(m.CyclesPerRow(), model.TextWidth(message))
	m.TextToScreen(tab, popupRows[0], blank)
	m.TextToScreen(tab, popupRows[1], message)
	m.TextToScreen(tab, popupRows[2], blank)
}

func (p *Pipeline) convertARGB(src []uint8) Frame {
	stride := p.cyclesPerRow * ARGB.BytesPerPixel()
	for y := 0; y < model.VisibleHeight; y++ {
		row := src[y*p.cyclesPerRow : y*p.cyclesPerRow+model.VisibleWidth]
		dst := p.direct[y*stride:]
		for x, v := range row {
			c := p.argb[v]
			i := x * 4
			dst[i] = uint8(c)
			dst[i+1] = uint8(c >> 8)
			dst[i+2] = uint8(c >> 16)
			dst[i+3] = uint8(c >> 24)
		}
	}

	return Frame{
		Format: ARGB,
		Width:  model.VisibleWidth,
		Height: model.VisibleHeight,
		Stride: stride,
		Pix:    p.direct,
	}
}

func (p *Pipeline) convertUYVY(src []uint8) Frame {
	stride := p.cyclesPerRow * UYVY.BytesPerPixel()

	var prev []uint8
	for y := 0; y < model.VisibleHeight; y++ {
		row := src[y*p.cyclesPerRow : y*p.cyclesPerRow+model.VisibleWidth]
		if prev == nil {
			prev = row
		}

		even := p.packed[(y*2)*stride:]
		odd := p.packed[(y*2+1)*stride:]

		for x := 0; x < len(row); x += 2 {
			a := p.yuv[row[x]]
			b := p.yuv[row[x+1]]
			u := avg(a.u, b.u)
			v := avg(a.v, b.v)

			i := x * 2
			even[i] = u
			even[i+1] = a.y
			even[i+2] = v
			even[i+3] = b.y

			// the second row mixes the chroma with the previous source row
			pa := p.yuv[prev[x]]
			pb := p.yuv[prev[x+1]]
			odd[i] = avg(u, avg(pa.u, pb.u))
			odd[i+1] = a.y
			odd[i+2] = avg(v, avg(pa.v, pb.v))
			odd[i+3] = b.y
		}

		prev = row
	}

	return Frame{
		Format: UYVY,
		Width:  model.VisibleWidth,
		Height: model.VisibleHeight * 2,
		Stride: stride,
		Pix:    p.packed,
	}
}

func avg(a, b uint8) uint8 {
	return uint8((uint16(a) + uint16(b)) / 2)
}

// Image returns the visible area of the model's screen as an image. The image
// shares memory with the model.
func (p *Pipeline) Image(m model.Model) image.Image {
	cpr := m.CyclesPerRow()
	img := &image.Paletted{
		Pix:     m.ScreenData(),
		Stride:  cpr,
		Rect:    image.Rect(0, 0, cpr, model.Scanlines),
		Palette: m.Palette(),
	}
	x := model.FirstVisiblePixel(cpr)
	return img.SubImage(image.Rect(x, model.VisibleTop, x+model.VisibleWidth, model.VisibleTop+model.VisibleHeight))
}
