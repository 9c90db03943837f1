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

// Package medialoader identifies and reads the files that can be autostarted
// or attached to the emulated machine.
//
// Files are classified by their file extension alone:
//
//	kind := medialoader.Classify("games/elite.prg")
//
// The Loader type reads the data from a local file or over HTTP. Program
// files and T64 tape archives can be parsed into a Program, which can be
// installed directly into the memory of the emulated machine:
//
//	ld := medialoader.NewLoader("games/elite.t64")
//	if err := ld.Load(); err != nil {
//		return err
//	}
//	prg, err := ld.Program()
//	if err != nil {
//		return err
//	}
//	prg.Install(mem)
package medialoader
