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

// Package emulation contains the Context type which collects the state of the
// emulation that sits outside of the emulated hardware: the run state, the
// frame rate lock, the window multiplier, the popup notification and the
// shutdown request.
//
// There is one Context for the lifetime of the program. It is created by the
// main function and owned by the scheduler.
package emulation
