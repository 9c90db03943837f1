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

package notifications

// Notice describes events that change the presentation of the emulation.
// These notifications are used to present additional information to the user.
type Notice string

// List of defined notifications.
const (
	// a screenshot has been saved
	NotifyScreenshot Notice = "NotifyScreenshot"

	// the tape deck motor has started or stopped
	NotifyTapeStarted Notice = "NotifyTapeStarted"
	NotifyTapeStopped Notice = "NotifyTapeStopped"

	// the tape has reached the end of the attached image
	NotifyTapeEnded Notice = "NotifyTapeEnded"

	// a disk image has been mounted
	NotifyDiskMounted Notice = "NotifyDiskMounted"
)

// Notify is used for direct communication between the hardware and the
// scheduler. The scheduler shows most notices as a popup.
type Notify interface {
	Notify(notice Notice) error
}
