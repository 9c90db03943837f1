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

// DefaultCountdown is the number of presented frames a popup remains visible.
const DefaultCountdown = 60

// Popup is a message shown over the emulated screen for a limited number of
// presented frames. The zero value is an inactive popup.
type Popup struct {
	Message   string
	Countdown int
}

// Set the popup message. Any existing message is replaced and the countdown
// restarts.
func (p *Popup) Set(message string) {
	p.Message = message
	p.Countdown = DefaultCountdown
}

// Active returns true if the popup should be drawn.
func (p *Popup) Active() bool {
	return p.Countdown > 0
}

// Tick is called once per presented frame. The message is removed when the
// countdown reaches zero.
func (p *Popup) Tick() {
	if p.Countdown <= 0 {
		return
	}
	p.Countdown--
	if p.Countdown == 0 {
		p.Message = ""
	}
}

// Clear removes the popup immediately.
func (p *Popup) Clear() {
	p.Message = ""
	p.Countdown = 0
}
