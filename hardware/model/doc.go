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

// Package model implements the interchangeable hardware models. Each model
// provides the memory, the register window, the video timing and the sound
// output of the machine. The models are:
//
//	Accurate	TED 7360/8360, rendered one scanline at a time
//	Fast		TED 7360/8360, rendered one frame at a time
//	AltChip		VIC-II, as found in the C64
//
// All models share the Model interface and only one model is live at any one
// time. The live model can be replaced while the machine is running. See the
// hardware package for how that is done.
//
// The rendering and sound of the models are simplified. Each frame the raw
// screen buffer is filled with the border colour and, inside the display
// window, the background colour. Sound is a square wave from each of the two
// TED voices. The text plane (TextToScreen() and ShowLED()) draws directly onto
// the raw screen buffer and is used for notifications and debugging output.
package model
