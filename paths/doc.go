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

// Package paths contains functions to prepare paths to gopher264 resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the path to the settings file.
//
//	pth, err := paths.ResourcePath("", "settings")
//
// If the base resource path, ".gopher264", is present in the program's
// current directory then that is the base path that will be used. If it is
// not present then the user's config directory is used, as returned by
// os.UserConfigDir(). Directories in the path are created as required.
//
// On a modern Linux system the example above will return:
//
//	/home/user/.config/gopher264/settings
package paths
