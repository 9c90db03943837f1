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

// Format of the pixel data in a Frame.
type Format int

// List of valid Format values.
const (
	// four bytes per pixel. byte order B, G, R, A. this is the ARGB8888
	// format on a little-endian host
	ARGB Format = iota

	// two bytes per pixel, in groups of two pixels. byte order U, Y0, V, Y1
	UYVY
)

func (f Format) String() string {
	switch f {
	case ARGB:
		return "ARGB"
	case UYVY:
		return "UYVY"
	}
	return "unknown"
}

// BytesPerPixel returns the number of bytes used by each pixel in the format.
func (f Format) BytesPerPixel() int {
	if f == UYVY {
		return 2
	}
	return 4
}

// Frame is the converted image ready for display. The frame is only valid
// until the next call to Pipeline.Present().
type Frame struct {
	Format Format

	// the number of visible pixels in each row and the number of rows
	Width  int
	Height int

	// the number of bytes between the start of one row and the start of the
	// next. the stride is wider than the visible width of the frame
	Stride int

	Pix []byte
}

// Empty returns true if the frame has no pixel data.
func (f Frame) Empty() bool {
	return len(f.Pix) == 0
}
