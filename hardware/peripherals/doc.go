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

// Package peripherals contains the types shared by the bus peripherals. The
// peripherals themselves are in the sub-packages:
//
//	tcbm		the disk adapter fronting a drive that uses the host file system
//	truedrive	a disk drive emulated as its own processor
//	tape		the tape deck
//
// The disk adapter and the true drive are hooked to the hardware model. Only
// one of them can be hooked at any one time. The tape deck is always
// connected.
package peripherals
