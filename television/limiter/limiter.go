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

// Package limiter paces the presentation of frames to the refresh rate of the
// emulated television.
//
// When the timer is locked, Pace() waits until the frame period has elapsed
// since the previous frame and then indicates that the frame should be
// presented. When the timer is not locked Pace() never waits and indicates
// that the frame should be presented only if the frame period has elapsed.
// In other words, an unlocked emulation runs as fast as possible and skips
// the presentation of the frames that would not be seen.
//
// The limiter also measures the number of frames per second being emulated.
package limiter

import (
	"time"
)

// Clock is the source of time for the limiter.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// Limiter paces the emulation.
type Limiter struct {
	clock  Clock
	period time.Duration
	last   time.Time

	// frame rate measurement
	count   int
	refTime time.Time
	actual  float32
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// A nil clock indicates the real time clock.
func NewLimiter(rate int, clock Clock) *Limiter {
	if clock == nil {
		clock = realClock{}
	}
	lmtr := &Limiter{
		clock: clock,
	}
	lmtr.SetRate(rate)
	return lmtr
}

// SetRate changes the target rate. The measurement is restarted.
func (lmtr *Limiter) SetRate(rate int) {
	if rate <= 0 {
		return
	}
	lmtr.period = time.Second / time.Duration(rate)
	lmtr.Reset()
}

// Reset the reference points for pacing and measurement.
func (lmtr *Limiter) Reset() {
	lmtr.last = lmtr.clock.Now()
	lmtr.refTime = lmtr.last
	lmtr.count = 0
	lmtr.actual = 0
}

// Pace is called once per emulated frame. Returns true if the frame should be
// presented.
func (lmtr *Limiter) Pace(locked bool) bool {
	lmtr.measure()

	now := lmtr.clock.Now()
	due := lmtr.last.Add(lmtr.period)

	if locked {
		if now.Before(due) {
			lmtr.clock.Sleep(due.Sub(now))
			lmtr.last = due
		} else {
			// running behind. don't try to catch up
			lmtr.last = now
		}
		return true
	}

	if now.Before(due) {
		return false
	}
	lmtr.last = now
	return true
}

func (lmtr *Limiter) measure() {
	lmtr.count++
	now := lmtr.clock.Now()
	if d := now.Sub(lmtr.refTime); d >= time.Second {
		lmtr.actual = float32(float64(lmtr.count) / d.Seconds())
		lmtr.count = 0
		lmtr.refTime = now
	}
}

// Measured returns the number of frames emulated per second. The value is
// updated once per second.
func (lmtr *Limiter) Measured() float32 {
	return lmtr.actual
}
