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

// Package settings binds the persisted configuration of the emulator to the
// emulation context and the hardware configuration. The settings file is a
// prefs.Disk with the header:
//
//	[gopher264 configuration file]
//
// Every recognised key is bound to the live value it describes, so saving
// the settings always writes the current state of the emulator.
package settings
