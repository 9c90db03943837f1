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

// Package tape implements the tape deck. Tapes can be attached from raw pulse
// images (TAP files, C16 or C64 flavour) or from sampled recordings of a real
// tape (WAV or MP3 files).
//
// Every tape, whatever the source, is converted to a list of half-waves with
// the length of each half-wave measured in processor cycles. The deck advances
// through the list when the play button is down and the processor has switched
// the motor on. The level of the signal is read by the hardware model through
// the Read() function.
package tape
