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

package model

import (
	"os"

	"github.com/gopher264/gopher264/logger"
)

// the size of one half of a ROM slot
const romSize = 0x4000

// LoadROMs implements the Model interface. ROM images are loaded from the
// paths in the Config. A slot without a path, or with a path that cannot be
// read, uses the built-in ROM.
func (c *chip) LoadROMs() {
	for slot := 0; slot < len(c.rom); slot++ {
		c.rom[slot][0] = loadROM(c.cfg.ROMLow[slot], slot, false)
		c.rom[slot][1] = loadROM(c.cfg.ROMHigh[slot], slot, true)
	}
}

func loadROM(path string, slot int, high bool) []uint8 {
	if path != "" {
		d, err := os.ReadFile(path)
		if err == nil {
			if len(d) > romSize {
				d = d[:romSize]
			}
			return d
		}
		logger.Logf(logger.Allow, "model", "ROM slot %d: %v", slot, err)
	}

	if slot == 0 && high {
		return builtinKernal()
	}
	return nil
}

// builtinKernal is a minimal KERNAL. every vector points to an idle loop.
func builtinKernal() []uint8 {
	r := make([]uint8, romSize)

	const idle = 0x3800
	r[idle] = 0x4c
	r[idle+1] = 0x00
	r[idle+2] = 0xf8

	for v := 0x3ffa; v < romSize; v += 2 {
		r[v] = 0x00
		r[v+1] = 0xf8
	}

	return r
}
