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

package scheduler

import (
	"os"

	"golang.org/x/image/bmp"

	"github.com/gopher264/gopher264/curated"
	"github.com/gopher264/gopher264/logger"
	"github.com/gopher264/gopher264/notifications"
	"github.com/gopher264/gopher264/paths"
)

const screenshotPrefix = "gopher264"

// Screenshot saves the visible screen to the first unused numbered file in
// the screenshot directory. Returns the name of the file.
func (sch *Scheduler) Screenshot() (string, error) {
	fn, err := paths.NextFilename(sch.ScreenshotDir, screenshotPrefix, "bmp")
	if err != nil {
		return "", curated.Errorf("screenshot: %v", err)
	}

	f, err := os.Create(fn)
	if err != nil {
		return "", curated.Errorf("screenshot: %v", err)
	}

	err = bmp.Encode(f, sch.pipeline.Image(sch.machine.Model))
	if err != nil {
		f.Close()
		return "", curated.Errorf("screenshot: %v", err)
	}

	if err := f.Close(); err != nil {
		return "", curated.Errorf("screenshot: %v", err)
	}

	return fn, nil
}

// screenshot is the command version of Screenshot(). errors are logged.
func (sch *Scheduler) screenshot() {
	fn, err := sch.Screenshot()
	if err != nil {
		logger.Log(sch.ctx, "scheduler", err.Error())
		return
	}
	logger.Logf(sch.ctx, "scheduler", "screenshot saved: %s", fn)
	_ = sch.Notify(notifications.NotifyScreenshot)
}
