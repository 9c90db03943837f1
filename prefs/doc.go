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

// Package prefs facilitates the storage of preferences to disk.
//
// Preference values are added to a Disk instance with a key. The key is the
// name of the preference as it appears in the preferences file. The file is
// line oriented: the first line is a header marker, every other line is of
// the form
//
//	Key = Value
//
// Lines with unknown keys are ignored. Values that cannot be converted to the
// type of the preference are logged and ignored.
//
// Preferences are bound to their values with the Generic type. The value
// itself is owned elsewhere and is reached through a pair of set/get
// functions. The set function receives the string found in the file and the
// get function returns the value as it should be written.
//
// Values can also be overridden from the command line with the
// PushCommandLineStack() function. Overrides are applied after the disk file
// has been read by the next call to Disk.Load().
package prefs
