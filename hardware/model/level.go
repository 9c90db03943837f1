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
	"strings"

	"github.com/gopher264/gopher264/curated"
)

// Level identifies a hardware model.
type Level int

// List of valid Level values.
const (
	Accurate Level = iota
	Fast
	AltChip
	numLevels
)

// Sentinel error returned by ParseLevel.
const UnknownLevel = "model: unknown level (%s)"

func (l Level) String() string {
	switch l {
	case Accurate:
		return "ACCURATE +4"
	case Fast:
		return "FAST +4"
	case AltChip:
		return "COMMODORE 64"
	}
	return "UNKNOWN"
}

// Next returns the level that follows in the cycle Accurate, Fast, AltChip.
func (l Level) Next() Level {
	return (l + 1) % numLevels
}

// ParseLevel converts a level name as used on the command line to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "accurate", "":
		return Accurate, nil
	case "fast":
		return Fast, nil
	case "altchip", "c64", "vic2":
		return AltChip, nil
	}
	return Accurate, curated.Errorf(UnknownLevel, s)
}
