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
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/gopher264/gopher264/archivefs"
	"github.com/gopher264/gopher264/curated"
)

// Sentinel error patterns.
const (
	WrongKind = "medialoader: %s is a %s"
)

// Loader reads the data for a media file.
type Loader struct {
	// filename of the media. can be a HTTP URL
	Filename string

	// kind of media, as classified by the file extension
	Kind Kind

	// expected hash of the loaded data. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
// The Kind field is set according to the file extension.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
		Kind:     Classify(filename),
	}
}

// ShortName returns the filename without the path or extension.
func (ld Loader) ShortName() string {
	return strings.TrimSuffix(filepath.Base(ld.Filename), filepath.Ext(ld.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the media data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files. Local files can be inside a zip archive.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"

	// a single letter scheme is a windows drive letter
	u, err := url.Parse(ld.Filename)
	if err == nil && len(u.Scheme) > 1 {
		scheme = u.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf("medialoader: %v", err)
		}
		defer resp.Body.Close()

		ld.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("medialoader: %v", err)
		}

	case "file":
		ld.Data, err = archivefs.ReadFile(ld.Filename)
		if err != nil {
			return curated.Errorf("medialoader: %v", err)
		}

	default:
		return curated.Errorf("medialoader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))
	if ld.Hash != "" && ld.Hash != hash {
		ld.Data = nil
		return curated.Errorf("medialoader: %v", "unexpected hash value")
	}
	ld.Hash = hash

	return nil
}

// Program parses the loaded data as a program. Only ProgramFile and TapeContainer
// media can be parsed.
func (ld Loader) Program() (Program, error) {
	switch ld.Kind {
	case ProgramFile:
		return ParsePRG(ld.Data)
	case TapeContainer:
		return ParseT64(ld.Data)
	}
	return Program{}, curated.Errorf(WrongKind, ld.ShortName(), ld.Kind)
}
