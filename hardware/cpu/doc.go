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

// Package cpu implements the register file and interrupt lines of the 7501/8501
// processor found in the Commodore 264 family (and the 6510 of the C64).
//
// Instruction execution is not part of this package. Run() consumes the cycles
// it is given and services any pending interrupt. The processor does not own
// memory. It is bound to the memory and interrupt register of the live
// hardware model with Plumb() and is rebound whenever the hardware model is
// replaced.
package cpu
