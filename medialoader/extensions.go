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

package medialoader

import (
	"path/filepath"
	"strings"
)

// Kind is the type of media as indicated by the file extension.
type Kind int

// List of valid Kind values.
const (
	Rejected Kind = iota
	DiskImage
	ProgramFile
	TapeContainer
	TapeImage
)

func (k Kind) String() string {
	switch k {
	case DiskImage:
		return "disk image"
	case ProgramFile:
		return "program"
	case TapeContainer:
		return "tape container"
	case TapeImage:
		return "tape image"
	}
	return "rejected"
}

// FileExtensions maps the recognised file extensions to the Kind of media.
var FileExtensions = map[string]Kind{
	".D64": DiskImage,
	".PRG": ProgramFile,
	".T64": TapeContainer,
	".TAP": TapeImage,
}

// Classify the file by its extension. The extension is not case sensitive.
// The file is not opened.
func Classify(filename string) Kind {
	return FileExtensions[strings.ToUpper(filepath.Ext(filename))]
}
