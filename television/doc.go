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

// Package television converts the raw screen buffer of the hardware model
// into a frame that can be displayed by the host.
//
// The Pipeline type maintains the tables required for the conversion. The
// tables depend on the palette and the timing of the model so they must be
// rebuilt whenever the model is replaced by a model that is not timing
// compatible. The Pipeline implements the hardware.Presentation interface for
// this purpose.
//
// Frames are produced in one of two formats. Direct frames are 32bit ARGB
// values looked up from the palette. Overlay frames are packed UYVY values at
// twice the height of the visible screen, with the chroma of alternate rows
// blended with the previous row in the manner of a PAL delay line.
//
// Any active popup notification is drawn onto the model's screen immediately
// before the conversion.
package television
