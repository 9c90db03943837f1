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

// Package easyterm is a thin wrapper around the termios functions. It allows
// the terminal to be switched between canonical and cbreak modes and for
// lines to be read in canonical mode.
package easyterm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/gopher264/gopher264/curated"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Terminal wraps the input and output files of a terminal.
type Terminal struct {
	input  *os.File
	output *os.File

	// attributes for the different terminal modes
	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// whether the input is a terminal. if it is not then changing the mode
	// has no effect
	isTerm bool

	// canonical mode reader. created on first use
	reader *bufio.Reader

	mu sync.Mutex
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. An error is returned only if the files are missing. Input that is not
// a terminal is allowed.
func NewTerminal(input, output *os.File) (*Terminal, error) {
	if input == nil {
		return nil, curated.Errorf("easyterm: terminal requires an input file")
	}
	if output == nil {
		return nil, curated.Errorf("easyterm: terminal requires an output file")
	}

	pt := &Terminal{
		input:  input,
		output: output,
	}

	// prepare the attributes for the different terminal modes we'll be using.
	// cbreak mode starts from the canonical attributes
	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err == nil {
		pt.isTerm = true
		pt.cbreakAttr = pt.canAttr
		termios.Cfmakecbreak(&pt.cbreakAttr)
	}

	return pt, nil
}

// IsTerminal returns true if the input file is a terminal.
func (pt *Terminal) IsTerminal() bool {
	return pt.isTerm
}

// Input returns the input file.
func (pt *Terminal) Input() io.Reader {
	return pt.input
}

// Output returns the output file.
func (pt *Terminal) Output() io.Writer {
	return pt.output
}

// CleanUp restores the terminal to canonical mode.
func (pt *Terminal) CleanUp() {
	pt.CanonicalMode()
}

// Print a formatted string to the output file.
func (pt *Terminal) Print(s string, a ...interface{}) {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	fmt.Fprintf(pt.output, s, a...)
	_ = pt.output.Sync()
}

// CanonicalMode puts the terminal into the normal line-editing mode.
func (pt *Terminal) CanonicalMode() {
	if pt.isTerm {
		_ = termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.canAttr)
	}
}

// CBreakMode makes each key press available immediately, without echo.
func (pt *Terminal) CBreakMode() {
	if pt.isTerm {
		_ = termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.cbreakAttr)
	}
}

// Flush any pending input and output.
func (pt *Terminal) Flush() error {
	if !pt.isTerm {
		return nil
	}
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	if err := termios.Tcflush(pt.output.Fd(), termios.TCOFLUSH); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	return nil
}

// ReadLine reads one line of input in canonical mode. The line is returned
// without the line ending.
func (pt *Terminal) ReadLine() (string, error) {
	pt.CanonicalMode()
	if pt.reader == nil {
		pt.reader = bufio.NewReader(pt.input)
	}
	s, err := pt.reader.ReadString('\n')
	s = strings.TrimRight(s, "\r\n")
	if err != nil {
		if err == io.EOF && s != "" {
			return s, nil
		}
		return s, err
	}
	return s, nil
}
