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

package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopher264/gopher264/curated"
)

// UniqueFilename creates a filename that (assuming a functioning clock) should
// not collide with any existing file. Note that the function does not test for
// this.
//
// Used to generate filenames for audio recordings.
//
// Format of returned string is:
//
//	prepend_name_YYYYMMDD_HHMMSS
//
// If name is empty the returned string will be of the format:
//
//	prepend_YYYYMMDD_HHMMSS
func UniqueFilename(prepend string, name string) string {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	c := strings.TrimSpace(name)
	if len(c) > 0 {
		return fmt.Sprintf("%s_%s_%s", prepend, c, timestamp)
	}
	return fmt.Sprintf("%s_%s", prepend, timestamp)
}

// the highest number tried by NextFilename()
const maxSequence = 9999

// NextFilename returns the first filename in the sequence prepend_0000.ext,
// prepend_0001.ext, etc. that does not exist in the specified directory.
func NextFilename(dir string, prepend string, ext string) (string, error) {
	ext = strings.TrimPrefix(ext, ".")
	for i := 0; i <= maxSequence; i++ {
		fn := filepath.Join(dir, fmt.Sprintf("%s_%04d.%s", prepend, i, ext))
		if _, err := os.Stat(fn); os.IsNotExist(err) {
			return fn, nil
		}
	}
	return "", curated.Errorf("paths: no free filename for %s in %s", prepend, dir)
}
