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

package limiter_test

import (
	"testing"
	"time"

	"github.com/gopher264/gopher264/television/limiter"
	"github.com/gopher264/gopher264/test"
)

type fakeClock struct {
	now   time.Time
	slept time.Duration
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.slept += d
	c.now = c.now.Add(d)
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func TestLocked(t *testing.T) {
	clk := &fakeClock{now: time.Unix(0, 0)}
	lmtr := limiter.NewLimiter(50, clk)

	// every frame is presented and the limiter waits for the remainder of the
	// frame period
	clk.advance(5 * time.Millisecond)
	test.ExpectSuccess(t, lmtr.Pace(true))
	test.ExpectEquality(t, clk.slept, 15*time.Millisecond)

	// running behind, no wait
	clk.slept = 0
	clk.advance(30 * time.Millisecond)
	test.ExpectSuccess(t, lmtr.Pace(true))
	test.ExpectEquality(t, clk.slept, time.Duration(0))
}

func TestUnlocked(t *testing.T) {
	clk := &fakeClock{now: time.Unix(0, 0)}
	lmtr := limiter.NewLimiter(50, clk)

	// frames are skipped until the period has elapsed. there is never a wait
	clk.advance(5 * time.Millisecond)
	test.ExpectFailure(t, lmtr.Pace(false))
	clk.advance(5 * time.Millisecond)
	test.ExpectFailure(t, lmtr.Pace(false))
	clk.advance(10 * time.Millisecond)
	test.ExpectSuccess(t, lmtr.Pace(false))
	clk.advance(1 * time.Millisecond)
	test.ExpectFailure(t, lmtr.Pace(false))
	test.ExpectEquality(t, clk.slept, time.Duration(0))
}

func TestMeasured(t *testing.T) {
	clk := &fakeClock{now: time.Unix(0, 0)}
	lmtr := limiter.NewLimiter(50, clk)

	for i := 0; i < 100; i++ {
		clk.advance(10 * time.Millisecond)
		lmtr.Pace(false)
	}
	test.ExpectApproximate(t, float64(lmtr.Measured()), 100.0, 0.01)
}
