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

package tape

import (
	"encoding/binary"

	"github.com/gopher264/gopher264/curated"
)

// Sentinel error patterns.
const (
	NotTAP = "tape: not a TAP file"
)

var tapSignatures = []string{"C16-TAPE-RAW", "C64-TAPE-RAW"}

const (
	tapVersion    = 0x0c
	tapLength     = 0x10
	tapHeaderSize = 0x14
)

// parseTAP converts the contents of a TAP file into half-waves. In version 0
// and 1 files each value is a full wave. In version 2 files each value is a
// half-wave.
func parseTAP(d []byte) ([]uint32, error) {
	if len(d) < tapHeaderSize {
		return nil, curated.Errorf(NotTAP)
	}

	var ok bool
	for _, s := range tapSignatures {
		if string(d[:len(s)]) == s {
			ok = true
			break // for loop
		}
	}
	if !ok {
		return nil, curated.Errorf(NotTAP)
	}

	version := d[tapVersion]
	data := d[tapHeaderSize:]
	if l := binary.LittleEndian.Uint32(d[tapLength:]); int(l) < len(data) {
		data = data[:l]
	}

	halves := make([]uint32, 0, len(data)*2)
	for i := 0; i < len(data); {
		v := data[i]
		i++

		var cycles uint32
		switch {
		case v != 0:
			cycles = uint32(v) * 8
		case version == 0:
			cycles = 256 * 8
		default:
			if i+3 > len(data) {
				return halves, nil
			}
			cycles = uint32(data[i]) | uint32(data[i+1])<<8 | uint32(data[i+2])<<16
			i += 3
		}

		if version == 2 {
			halves = append(halves, cycles)
		} else {
			halves = append(halves, cycles/2, cycles-cycles/2)
		}
	}

	return halves, nil
}
