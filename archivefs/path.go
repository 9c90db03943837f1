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

package archivefs

import (
	"archive/zip"
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gopher264/gopher264/curated"
)

// Entry is a single item in a directory listing.
type Entry struct {
	Name  string
	IsDir bool

	// archives are also directories
	IsArchive bool
}

func (e Entry) String() string {
	return e.Name
}

// Path is a location in the file system. The location may be inside an
// archive.
type Path struct {
	current string
	isDir   bool

	zf *zip.ReadCloser

	// location inside the archive. slash separated, as in the zip file itself
	inZip string
}

func (afs Path) String() string {
	return afs.current
}

// IsDir returns true if the path is a directory. The root of an archive is a
// directory.
func (afs Path) IsDir() bool {
	return afs.isDir
}

// InArchive returns true if the path is inside an archive.
func (afs Path) InArchive() bool {
	return afs.zf != nil
}

// Close any open archive and reset the path.
func (afs *Path) Close() {
	afs.current = ""
	afs.isDir = false
	afs.inZip = "."
	if afs.zf != nil {
		_ = afs.zf.Close()
		afs.zf = nil
	}
}

// Set the path. Any previous path is closed first. On error the path is left
// empty.
func (afs *Path) Set(pth string) error {
	afs.Close()

	pth = filepath.Clean(pth)
	parts := strings.Split(pth, string(filepath.Separator))

	// restore the root of an absolute path
	if parts[0] == "" {
		parts[0] = string(filepath.Separator)
	}

	var walked string

	for _, p := range parts {
		walked = filepath.Join(walked, p)

		if afs.zf != nil {
			inZip := path.Join(afs.inZip, p)
			fi, err := fs.Stat(afs.zf, inZip)
			if err != nil {
				afs.Close()
				return curated.Errorf(NotFound, err)
			}
			afs.inZip = inZip
			afs.isDir = fi.IsDir()
			continue
		}

		fi, err := os.Stat(walked)
		if err != nil {
			afs.Close()
			return curated.Errorf(NotFound, err)
		}

		afs.isDir = fi.IsDir()
		if afs.isDir {
			continue
		}

		zf, err := zip.OpenReader(walked)
		if err == nil {
			afs.zf = zf
			afs.isDir = true
			continue
		}

		if !errors.Is(err, zip.ErrFormat) {
			afs.Close()
			return curated.Errorf(NotFound, err)
		}
	}

	afs.current = walked

	return nil
}

// Open the file at the path. The caller must close the returned reader.
func (afs Path) Open() (io.ReadCloser, error) {
	if afs.isDir {
		return nil, curated.Errorf(NotAFile, afs.current)
	}

	if afs.zf != nil {
		f, err := afs.zf.Open(afs.inZip)
		if err != nil {
			return nil, curated.Errorf(ReadError, err)
		}
		return f, nil
	}

	f, err := os.Open(afs.current)
	if err != nil {
		return nil, curated.Errorf(ReadError, err)
	}
	return f, nil
}

// List returns the entries of the directory at the path. If the path is a
// file then the entries of the containing directory are returned.
//
// Directories are listed first. Entries are otherwise in alphabetical order,
// ignoring case.
func (afs Path) List() ([]Entry, error) {
	var ent []Entry

	if afs.zf != nil {
		dir := afs.inZip
		if !afs.isDir {
			dir = path.Dir(dir)
		}

		lst, err := fs.ReadDir(afs.zf, dir)
		if err != nil {
			return nil, curated.Errorf(ReadError, err)
		}
		for _, d := range lst {
			ent = append(ent, Entry{Name: d.Name(), IsDir: d.IsDir()})
		}
	} else {
		dir := afs.current
		if !afs.isDir {
			dir = filepath.Dir(dir)
		}

		lst, err := os.ReadDir(dir)
		if err != nil {
			return nil, curated.Errorf(ReadError, err)
		}

		for _, d := range lst {
			// os.Stat() follows links to directories
			fi, err := os.Stat(filepath.Join(dir, d.Name()))
			if err != nil {
				continue
			}

			e := Entry{Name: d.Name(), IsDir: fi.IsDir()}
			if !e.IsDir {
				if zf, err := zip.OpenReader(filepath.Join(dir, d.Name())); err == nil {
					_ = zf.Close()
					e.IsDir = true
					e.IsArchive = true
				}
			}
			ent = append(ent, e)
		}
	}

	sort.Slice(ent, func(i, j int) bool {
		if ent[i].IsDir != ent[j].IsDir {
			return ent[i].IsDir
		}
		return strings.ToLower(ent[i].Name) < strings.ToLower(ent[j].Name)
	})

	return ent, nil
}
