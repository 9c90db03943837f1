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

package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopher264/gopher264/paths"
	"github.com/gopher264/gopher264/test"
)

func TestPaths(t *testing.T) {
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".gopher264", 0o700))

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopher264/foo/bar/baz")

	// directory has been created
	_, err = os.Stat(".gopher264/foo/bar")
	test.ExpectSuccess(t, err)

	pth, err = paths.ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopher264/foo/bar")

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopher264/baz")

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopher264")
}

func TestNextFilename(t *testing.T) {
	dir := t.TempDir()

	fn, err := paths.NextFilename(dir, "shot", "bmp")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fn, filepath.Join(dir, "shot_0000.bmp"))

	test.DemandSuccess(t, os.WriteFile(fn, nil, 0o644))
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "shot_0001.bmp"), nil, 0o644))

	fn, err = paths.NextFilename(dir, "shot", ".bmp")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fn, filepath.Join(dir, "shot_0002.bmp"))
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("audio", "game")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "audio_game_"))

	fn = paths.UniqueFilename("audio", "  ")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "audio_2"))
}
