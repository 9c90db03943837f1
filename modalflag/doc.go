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

// Package modalflag wraps the flag package from the standard library. It adds
// program modes, with each mode having its own set of flags.
//
// Arguments are supplied with NewArgs() and then parsed with Parse(). After
// parsing, the selected mode is available with Mode() and non-flag arguments
// are available with RemainingArgs() and GetArg().
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "INFO")
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// The first sub-mode in the list is the default mode. It is selected when the
// first argument is not one of the listed modes. Mode comparison is case
// insensitive.
//
// After a mode has been selected, NewMode() prepares the Modes instance for
// the flags of that mode. Calling Parse() again will parse the remaining
// arguments.
package modalflag
