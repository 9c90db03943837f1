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

// Package hardware assembles the emulated machine from its parts: the
// hardware model, the processor and the bus peripherals.
//
// The Machine type owns the parts and maintains the bindings between them.
// The processor holds references to the memory and the interrupt register of
// the live model and the live model holds references to the processor, the
// tape deck and the active bus peripheral. The bindings are reestablished by
// Plumb() whenever one of the parts is replaced.
//
// The model can be replaced while the machine is running with SwapModel(). The
// contents of memory survive the swap. If the new model is timing compatible
// with the old model the state of the video chip and the processor port also
// survive. Otherwise the machine is reset.
//
// The disk adapter and the true drive are mutually exclusive. Only one of
// them is attached to the serial bus at any one time.
package hardware
