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
	"encoding/binary"
	"strings"

	"github.com/gopher264/gopher264/curated"
)

// Sentinel error patterns.
const (
	BadHeader   = "medialoader: bad header: %s"
	EmptyTape   = "medialoader: tape container has no program"
	Truncated   = "medialoader: program data is truncated"
	NotInMemory = "medialoader: program does not fit in memory"
)

// the BASIC pointers to the start of variables, the start of arrays and the
// end of arrays. each of them is set to the end of a loaded program
var basicPointers = []uint16{0x2d, 0x2f, 0x31}

// Memory is the part of the emulated machine into which a program is installed.
type Memory interface {
	Write(address uint16, data uint8)
}

// Program is a block of memory to be loaded at a fixed address.
type Program struct {
	// name of the program, if known
	Name string

	Address uint16
	Data    []byte
}

// End returns the address after the last byte of the program.
func (p Program) End() uint16 {
	return p.Address + uint16(len(p.Data))
}

// Install the program into memory and point the BASIC end-of-program pointers
// at the end of the program.
func (p Program) Install(mem Memory) {
	for i, b := range p.Data {
		mem.Write(p.Address+uint16(i), b)
	}
	end := p.End()
	for _, ptr := range basicPointers {
		mem.Write(ptr, uint8(end))
		mem.Write(ptr+1, uint8(end>>8))
	}
}

// ParsePRG parses a PRG file. The first two bytes are the load address.
func ParsePRG(data []byte) (Program, error) {
	if len(data) < 2 {
		return Program{}, curated.Errorf(BadHeader, "file too short")
	}

	p := Program{
		Address: binary.LittleEndian.Uint16(data),
		Data:    data[2:],
	}
	if int(p.Address)+len(p.Data) > 0x10000 {
		return Program{}, curated.Errorf(NotInMemory)
	}

	return p, nil
}

// T64 layout
const (
	t64Signature  = "C64"
	t64HeaderSize = 0x40
	t64EntrySize  = 0x20
	t64Entries    = 0x22
	t64Used       = 0x24

	// offsets into a directory entry
	t64Type     = 0x00
	t64Start    = 0x02
	t64End      = 0x04
	t64Offset   = 0x08
	t64Filename = 0x10
)

// ParseT64 parses a T64 tape container and returns the first program in the
// directory.
func ParseT64(data []byte) (Program, error) {
	if len(data) < t64HeaderSize || !strings.HasPrefix(string(data), t64Signature) {
		return Program{}, curated.Errorf(BadHeader, "not a T64 file")
	}

	entries := int(binary.LittleEndian.Uint16(data[t64Entries:]))

	// some files have zero directory entries recorded. there is always room
	// for at least one entry
	if entries == 0 {
		entries = 1
	}

	for i := 0; i < entries; i++ {
		e := t64HeaderSize + i*t64EntrySize
		if e+t64EntrySize > len(data) {
			break
		}
		entry := data[e : e+t64EntrySize]

		if entry[t64Type] == 0 {
			continue
		}

		start := binary.LittleEndian.Uint16(entry[t64Start:])
		end := binary.LittleEndian.Uint16(entry[t64End:])
		offset := int(binary.LittleEndian.Uint32(entry[t64Offset:]))

		if offset >= len(data) {
			return Program{}, curated.Errorf(Truncated)
		}

		// end addresses in many T64 files are wrong. the program is clamped
		// to the end of the file
		size := int(end) - int(start)
		if size <= 0 || offset+size > len(data) {
			size = len(data) - offset
		}

		p := Program{
			Name:    strings.TrimRight(string(entry[t64Filename:t64EntrySize]), " \x00\xa0"),
			Address: start,
			Data:    data[offset : offset+size],
		}
		if int(p.Address)+len(p.Data) > 0x10000 {
			return Program{}, curated.Errorf(NotInMemory)
		}

		return p, nil
	}

	return Program{}, curated.Errorf(EmptyTape)
}
