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

// Package headless is a host for the scheduler that has no window and no
// audio. Keyboard input is read from a terminal in cbreak mode. Frames are
// counted but otherwise discarded.
//
// Because terminals do not report key releases, every key press results in
// a key-down event immediately followed by a key-up event.
package headless

import (
	"bytes"
	"io"

	"github.com/gopher264/gopher264/curated"
	"github.com/gopher264/gopher264/logger"
	"github.com/gopher264/gopher264/television"
	"github.com/gopher264/gopher264/userinput"
)

// Interrupted is returned by ReadLine() when the input is interrupted.
const Interrupted = "headless: interrupted"

// Headless is an implementation of the scheduler.Host interface.
type Headless struct {
	// chunks of input as read from the input reader. the channel is closed
	// when the input has been exhausted
	chunks chan []byte
	eof    bool

	// an interrupt results in a quit event at the next opportunity
	interrupt chan struct{}

	// events decoded from a chunk but not yet returned
	pending []userinput.Event

	// line read from the input is echoed to output
	output io.Writer

	presented int
	last      television.Frame
}

// NewHeadless is the preferred method of initialisation for the Headless
// type. The input can be nil, in which case there will never be any host
// events other than the quit event returned by WaitEvent().
func NewHeadless(input io.Reader, output io.Writer) *Headless {
	hl := &Headless{
		chunks:    make(chan []byte, 16),
		interrupt: make(chan struct{}, 1),
		output:    output,
	}

	if input == nil {
		close(hl.chunks)
		return hl
	}

	go func() {
		defer close(hl.chunks)
		buf := make([]byte, 256)
		for {
			n, err := input.Read(buf)
			if n > 0 {
				c := make([]byte, n)
				copy(c, buf[:n])
				hl.chunks <- c
			}
			if err != nil {
				if err != io.EOF {
					logger.Logf(logger.Allow, "headless", "%v", err)
				}
				return
			}
		}
	}()

	return hl
}

// Interrupt causes a quit event to be returned by the next call to
// PollEvent() or WaitEvent(). It is safe to call Interrupt() from any
// goroutine.
func (hl *Headless) Interrupt() {
	select {
	case hl.interrupt <- struct{}{}:
	default:
	}
}

func (hl *Headless) pop() userinput.Event {
	ev := hl.pending[0]
	hl.pending = hl.pending[1:]
	return ev
}

// PollEvent implements the scheduler.Host interface. The end of the input
// does not result in a quit event.
func (hl *Headless) PollEvent() userinput.Event {
	select {
	case <-hl.interrupt:
		return userinput.EventQuit{}
	default:
	}

	if len(hl.pending) > 0 {
		return hl.pop()
	}
	if hl.eof {
		return nil
	}

	select {
	case c, ok := <-hl.chunks:
		if !ok {
			hl.eof = true
			return nil
		}
		hl.pending = decode(c)
		if len(hl.pending) > 0 {
			return hl.pop()
		}
	default:
	}

	return nil
}

// WaitEvent implements the scheduler.Host interface. A quit event is returned
// once the input has been exhausted, otherwise a suspended emulation could
// never be resumed.
func (hl *Headless) WaitEvent() userinput.Event {
	for len(hl.pending) == 0 {
		if hl.eof {
			return userinput.EventQuit{}
		}
		select {
		case <-hl.interrupt:
			return userinput.EventQuit{}
		case c, ok := <-hl.chunks:
			if !ok {
				hl.eof = true
				continue
			}
			hl.pending = decode(c)
		}
	}
	return hl.pop()
}

// ReadLine reads input until the end of a line. Any input remaining in the
// chunk after the line ending is discarded, as are events that have been
// decoded but not yet returned.
//
// An interrupt ends the read with the Interrupted error. The interrupt
// remains pending so the next call to PollEvent() or WaitEvent() returns a
// quit event.
func (hl *Headless) ReadLine() (string, error) {
	hl.pending = hl.pending[:0]

	var line []byte
	for {
		if hl.eof {
			if len(line) > 0 {
				return string(line), nil
			}
			return "", io.EOF
		}

		var c []byte
		var ok bool
		select {
		case <-hl.interrupt:
			hl.Interrupt()
			hl.echo([]byte{'\n'})
			return "", curated.Errorf(Interrupted)
		case c, ok = <-hl.chunks:
		}
		if !ok {
			hl.eof = true
			continue
		}

		if i := bytes.IndexAny(c, "\r\n"); i >= 0 {
			line = append(line, c[:i]...)
			hl.echo(append(c[:i:i], '\n'))
			return string(line), nil
		}

		line = append(line, c...)
		hl.echo(c)
	}
}

func (hl *Headless) echo(b []byte) {
	if hl.output != nil {
		_, _ = hl.output.Write(b)
	}
}

// Present implements the scheduler.Host interface.
func (hl *Headless) Present(frame television.Frame) error {
	hl.presented++
	hl.last = frame
	return nil
}

// Presented returns the number of frames that have been presented and the
// most recent frame.
func (hl *Headless) Presented() (int, television.Frame) {
	return hl.presented, hl.last
}

// SetWindowMultiplier implements the scheduler.Host interface.
func (hl *Headless) SetWindowMultiplier(n int) error {
	return nil
}

// ToggleFullScreen implements the scheduler.Host interface.
func (hl *Headless) ToggleFullScreen() error {
	return nil
}

// Destroy implements the scheduler.Host interface.
func (hl *Headless) Destroy() {
	logger.Logf(logger.Allow, "headless", "%d frames presented", hl.presented)
}
