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

// Package scheduler drives the emulation. It advances the hardware model one
// frame at a time, paces the presentation of frames and reacts to host input.
//
// The scheduler is in one of three run states at any time. In the Active
// state frames are produced continuously and host input is polled once per
// frame. In the Suspended state the scheduler blocks until a host event is
// available and no simulated time passes. The SingleStep state produces one
// frame, with the keyboard blocked, and then reverts to Suspended.
//
// The scheduler is the only goroutine that touches the machine. Shutdown is
// requested through the emulation context and happens at the top of the loop
// in the reverse order of construction.
package scheduler
