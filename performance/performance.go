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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gopher264/gopher264/autostart"
	"github.com/gopher264/gopher264/curated"
	"github.com/gopher264/gopher264/hardware"
	"github.com/gopher264/gopher264/hardware/model"
)

var timedOut = errors.New("performance timed out")

// the time given to the emulation to settle down before measurement begins
const leadTime = 2 * time.Second

// Check runs the emulation for the duration and writes the frame rate that
// was achieved to output. The file is autostarted first if the filename is
// not empty.
func Check(output io.Writer, profile Profile, level model.Level, filename string, duration string) error {
	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	m := hardware.NewMachine(level, nil, nil)
	defer m.Shutdown()

	if filename != "" {
		dsp := autostart.NewDispatcher(m, nil, nil)
		if !dsp.Autostart(filename) {
			return curated.Errorf("performance: cannot autostart %s", filename)
		}
	}

	// get starting frame number
	startFrame := m.Model.FrameCount()

	// run for specified period of time
	runner := func() error {
		// signals false when the lead time has elapsed and measurement should
		// start. signals true when the duration has elapsed
		timerChan := make(chan bool, 2)

		time.AfterFunc(leadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		for {
			m.Model.Process()

			select {
			case v := <-timerChan:
				if v {
					return timedOut
				}
				startFrame = m.Model.FrameCount()
			default:
			}
		}
	}

	// launch runner directly or through the CPU profiler, depending on
	// supplied arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	// calculate performance
	numFrames := int(m.Model.FrameCount() - startFrame)
	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	fmt.Fprintf(output, "%s: %.2f fps (%d frames in %.2f seconds) %.1f%%\n", level, fps, numFrames, dur.Seconds(), accuracy)

	return nil
}

// CalcFPS returns the frames per second and the accuracy compared to the
// refresh rate of the emulated television.
func CalcFPS(numFrames int, duration float64) (fps float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	fps = float64(numFrames) / duration
	accuracy = 100 * float64(numFrames) / (duration * float64(model.RefreshRate))
	return fps, accuracy
}
