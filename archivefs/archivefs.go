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

// Package archivefs allows media files to be read from inside zip archives.
// An archive is treated as a directory so a file inside an archive is named
// by continuing the path through the archive file.
//
//	games/collection.zip/demos/scroller.prg
package archivefs

import (
	"io"

	"github.com/gopher264/gopher264/curated"
)

// Sentinel error patterns.
const (
	NotFound  = "archivefs: %v"
	NotAFile  = "archivefs: %s is a directory"
	ReadError = "archivefs: %v"
)

// ReadFile returns the contents of the named file. The filename can pass
// through a zip archive.
func ReadFile(filename string) ([]byte, error) {
	var afs Path
	if err := afs.Set(filename); err != nil {
		return nil, err
	}
	defer afs.Close()

	r, err := afs.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, curated.Errorf(ReadError, err)
	}
	return data, nil
}
