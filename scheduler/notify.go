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
	"github.com/gopher264/gopher264/notifications"
)

// Notify implements the notifications.Notify interface.
func (sch *Scheduler) Notify(notice notifications.Notice) error {
	switch notice {
	case notifications.NotifyScreenshot:
		sch.ctx.Notify(" SCREENSHOT SAVED ")
	case notifications.NotifyTapeStarted:
		sch.ctx.Notify(" TAPE MOTOR ON ")
	case notifications.NotifyTapeStopped:
		sch.ctx.Notify(" TAPE MOTOR OFF ")
	case notifications.NotifyTapeEnded:
		sch.ctx.Notify(" END OF TAPE ")
	case notifications.NotifyDiskMounted:
		sch.ctx.Notify(" DISK MOUNTED ")
	}
	return nil
}
