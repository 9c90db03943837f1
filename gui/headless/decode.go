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

package headless

import (
	"strings"

	"github.com/gopher264/gopher264/gui/headless/easyterm"
	"github.com/gopher264/gopher264/userinput"
)

// final byte of cursor sequences
var cursorKeys = map[byte]string{
	easyterm.CursorUp:       "Up",
	easyterm.CursorDown:     "Down",
	easyterm.CursorForward:  "Right",
	easyterm.CursorBackward: "Left",
	easyterm.CursorHome:     "Home",
	easyterm.CursorEnd:      "End",
}

// the numeric parameter of "ESC [ n ~" sequences
var tildeKeys = map[string]string{
	"2":  "Insert",
	"3":  "Delete",
	"5":  "PageUp",
	"6":  "PageDown",
	"15": "F5",
	"17": "F6",
	"18": "F7",
	"19": "F8",
	"20": "F9",
	"21": "F10",
	"23": "F11",
	"24": "F12",
}

// final byte of "ESC O x" sequences
var ss3Keys = map[byte]string{
	'P': "F1",
	'Q': "F2",
	'R': "F3",
	'S': "F4",
}

func press(key string, mod userinput.KeyMod) []userinput.Event {
	return []userinput.Event{
		userinput.EventKeyboard{Key: key, Mod: mod, Down: true},
		userinput.EventKeyboard{Key: key, Mod: mod, Down: false},
	}
}

// decode a chunk of terminal input into events. Key names are the same as
// the names used by the SDL host.
func decode(c []byte) []userinput.Event {
	var evs []userinput.Event

	for i := 0; i < len(c); i++ {
		b := c[i]

		switch b {
		case easyterm.KeyCtrlC:
			evs = append(evs, userinput.EventQuit{})
		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			evs = append(evs, press("Return", userinput.KeyModNone)...)
		case easyterm.KeyBackspace, easyterm.KeyBackspaceAlt:
			evs = append(evs, press("Backspace", userinput.KeyModNone)...)
		case easyterm.KeyTab:
			evs = append(evs, press("Tab", userinput.KeyModNone)...)
		case easyterm.KeyCtrlP:
			evs = append(evs, press("Pause", userinput.KeyModNone)...)
		case easyterm.KeyEsc:
			key, mod, n := escape(c[i+1:])
			if key != "" {
				evs = append(evs, press(key, mod)...)
			}
			i += n
		case ' ':
			evs = append(evs, press("Space", userinput.KeyModNone)...)
		default:
			if b > ' ' && b < 0x7f {
				evs = append(evs, press(strings.ToUpper(string(b)), userinput.KeyModNone)...)
			}
		}
	}

	return evs
}

// escape decodes the bytes following an escape character. Returns the key
// name, the modifier and the number of bytes consumed.
func escape(c []byte) (string, userinput.KeyMod, int) {
	if len(c) == 0 {
		return "Escape", userinput.KeyModNone, 0
	}

	switch c[0] {
	case easyterm.EscCursor:
		if len(c) < 2 {
			return "", userinput.KeyModNone, 1
		}
		if k, ok := cursorKeys[c[1]]; ok {
			return k, userinput.KeyModNone, 2
		}

		// numbered sequence terminated by a tilde
		end := strings.IndexByte(string(c[1:]), '~')
		if end < 0 {
			return "", userinput.KeyModNone, len(c)
		}
		return tildeKeys[string(c[1:1+end])], userinput.KeyModNone, end + 2

	case easyterm.EscSS3:
		if len(c) < 2 {
			return "", userinput.KeyModNone, 1
		}
		return ss3Keys[c[1]], userinput.KeyModNone, 2

	case easyterm.KeyEsc:
		return "Escape", userinput.KeyModNone, 0
	}

	// most terminals send alt+key as escape followed by the key
	if c[0] > ' ' && c[0] < 0x7f {
		return strings.ToUpper(string(c[0])), userinput.KeyModAlt, 1
	}
	if c[0] == easyterm.KeyCarriageReturn {
		return "Return", userinput.KeyModAlt, 1
	}

	return "Escape", userinput.KeyModNone, 0
}
