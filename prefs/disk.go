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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/gopher264/gopher264/curated"
	"github.com/gopher264/gopher264/logger"
)

// Sentinel error patterns.
const (
	NoHeader     = "prefs: %s is not a preferences file"
	DuplicateKey = "prefs: duplicate key (%s)"
)

// Separator is placed between the key and the value in the preferences file.
const Separator = " = "

type entry struct {
	key string
	p   pref
}

// Disk represents preference values as stored on disk.
type Disk struct {
	path   string
	header string

	// entries are kept in the order they were added. this is the order in
	// which they are written to the file
	entries []entry
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// header is the marker written as the first line of the file and checked
// when the file is loaded.
func NewDisk(path string, header string) *Disk {
	return &Disk{
		path:    path,
		header:  header,
		entries: make([]entry, 0),
	}
}

// Path returns the filename of the preferences file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to list of values to store/load from disk.
func (dsk *Disk) Add(key string, p pref) error {
	for _, e := range dsk.entries {
		if e.key == key {
			return curated.Errorf(DuplicateKey, key)
		}
	}
	dsk.entries = append(dsk.entries, entry{key: key, p: p})
	return nil
}

// Keys returns the keys of all the preferences added to the Disk, in the
// order they were added.
func (dsk *Disk) Keys() []string {
	k := make([]string, 0, len(dsk.entries))
	for _, e := range dsk.entries {
		k = append(k, e.key)
	}
	return k
}

// Save current preference values to disk.
func (dsk *Disk) Save() (rerr error) {
	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("prefs: %v", err)
		}
	}()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", dsk.header)
	for _, e := range dsk.entries {
		fmt.Fprintf(w, "%s%s%s\n", e.key, Separator, e.p.String())
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load preference values from disk. A missing file is an error but the
// current preference values are left untouched. Command line overrides (see
// PushCommandLineStack()) are applied after the file has been read, even if
// the file could not be read.
func (dsk *Disk) Load() error {
	err := dsk.load()
	dsk.applyCommandLine()
	return err
}

func (dsk *Disk) load() error {
	f, err := os.Open(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != dsk.header {
		return curated.Errorf(NoHeader, dsk.path)
	}

	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		for _, e := range dsk.entries {
			if e.key == key {
				if err := e.p.Set(value); err != nil {
					logger.Logf(logger.Allow, "prefs", "%s: %v", key, err)
				}
				break // for loop
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

func (dsk *Disk) applyCommandLine() {
	for _, e := range dsk.entries {
		if ok, v := GetCommandLinePref(e.key); ok {
			if err := e.p.Set(v); err != nil {
				logger.Logf(logger.Allow, "prefs", "%s: %v", e.key, err)
			}
		}
	}
}
