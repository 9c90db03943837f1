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

package scheduler_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopher264/gopher264/autostart"
	"github.com/gopher264/gopher264/emulation"
	"github.com/gopher264/gopher264/hardware"
	"github.com/gopher264/gopher264/hardware/model"
	"github.com/gopher264/gopher264/notifications"
	"github.com/gopher264/gopher264/scheduler"
	"github.com/gopher264/gopher264/television"
	"github.com/gopher264/gopher264/television/limiter"
	"github.com/gopher264/gopher264/test"
	"github.com/gopher264/gopher264/userinput"
)

// calls records the order in which collaborators are called
type calls []string

func (c *calls) add(s string) {
	*c = append(*c, s)
}

type host struct {
	order *calls

	// events returned by PollEvent() and WaitEvent(). WaitEvent() returns a
	// quit event when the queue is empty
	events []userinput.Event

	polled    int
	waited    int
	presented int
	last      television.Frame

	multiplier int
	fullscreen bool
}

func (h *host) next() userinput.Event {
	if len(h.events) == 0 {
		return nil
	}
	ev := h.events[0]
	h.events = h.events[1:]
	return ev
}

func (h *host) PollEvent() userinput.Event {
	h.polled++
	return h.next()
}

func (h *host) WaitEvent() userinput.Event {
	h.waited++
	if ev := h.next(); ev != nil {
		return ev
	}
	return userinput.EventQuit{}
}

func (h *host) Present(frame television.Frame) error {
	h.presented++
	h.last = frame
	return nil
}

func (h *host) SetWindowMultiplier(n int) error {
	h.multiplier = n
	return nil
}

func (h *host) ToggleFullScreen() error {
	h.fullscreen = !h.fullscreen
	return nil
}

func (h *host) Destroy() {
	h.order.add("host")
}

type audio struct {
	order   *calls
	paused  bool
	pauses  int
	resets  int
	samples int
}

func (a *audio) Pause() {
	a.paused = true
	a.pauses++
}

func (a *audio) Resume() {
	a.paused = false
}

func (a *audio) Reset() {
	a.resets++
}

func (a *audio) Push(samples []int16) error {
	a.samples += len(samples)
	return nil
}

func (a *audio) Destroy() {
	a.order.add("audio")
}

type settings struct {
	order *calls
	saves int
}

func (s *settings) Save() error {
	s.saves++
	s.order.add("settings")
	return nil
}

type menu struct {
	runs int
}

func (m *menu) Run() {
	m.runs++
}

// clock for the limiter. time only moves when the limiter sleeps
type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time {
	return c.now
}

func (c *clock) Sleep(d time.Duration) {
	c.now = c.now.Add(d)
}

type fixture struct {
	ctx      *emulation.Context
	machine  *hardware.Machine
	host     *host
	audio    *audio
	settings *settings
	menu     *menu
	order    *calls
	sch      *scheduler.Scheduler
}

func newFixture(events ...userinput.Event) *fixture {
	f := &fixture{order: &calls{}}
	f.ctx = emulation.NewContext()
	f.machine = hardware.NewMachine(model.Accurate, nil, nil)
	f.host = &host{order: f.order, events: events}
	f.audio = &audio{order: f.order}
	f.settings = &settings{order: f.order}
	f.menu = &menu{}
	f.sch = scheduler.NewScheduler(f.ctx, f.machine, f.host, f.audio, f.settings, f.menu)
	f.sch.SetLimiter(limiter.NewLimiter(model.RefreshRate, &clock{now: time.Unix(0, 0)}))
	return f
}

func key(k string, mod userinput.KeyMod, down bool) userinput.EventKeyboard {
	return userinput.EventKeyboard{Key: k, Mod: mod, Down: down}
}

func press(k string, mod userinput.KeyMod) []userinput.Event {
	return []userinput.Event{key(k, mod, true), key(k, mod, false)}
}

func TestFrameLimit(t *testing.T) {
	f := newFixture()
	f.sch.FrameLimit = 10
	test.ExpectSuccess(t, f.sch.Run())

	test.ExpectEquality(t, f.sch.Frames(), uint64(10))
	test.ExpectEquality(t, f.machine.Model.FrameCount(), uint64(10))
	test.ExpectEquality(t, f.host.presented, 10)
	test.ExpectEquality(t, f.host.polled, 10)
	test.ExpectEquality(t, f.audio.samples, 10*model.SampleRate/model.RefreshRate)
}

func TestUnlockedSkipsPresentation(t *testing.T) {
	f := newFixture()
	f.ctx.TimerLock = false
	f.sch.FrameLimit = 10
	test.ExpectSuccess(t, f.sch.Run())

	// the clock never advances so no frame is presented
	test.ExpectEquality(t, f.machine.Model.FrameCount(), uint64(10))
	test.ExpectEquality(t, f.host.presented, 0)
}

func TestShutdownOrder(t *testing.T) {
	f := newFixture(userinput.EventQuit{})
	test.ExpectSuccess(t, f.sch.Run())

	test.DemandEquality(t, len(*f.order), 3)
	test.ExpectEquality(t, (*f.order)[0], "audio")
	test.ExpectEquality(t, (*f.order)[1], "settings")
	test.ExpectEquality(t, (*f.order)[2], "host")
	test.ExpectFailure(t, f.machine.CPU.Plumbed())

	// settings are not saved when SaveOnExit is false
	f = newFixture(key("F12", userinput.KeyModNone, true))
	f.ctx.SaveOnExit = false
	test.ExpectSuccess(t, f.sch.Run())
	test.ExpectEquality(t, f.settings.saves, 0)
	test.ExpectEquality(t, f.machine.Model.FrameCount(), uint64(1))
}

func TestSuspended(t *testing.T) {
	f := newFixture(press("F9", userinput.KeyModNone)...)
	f.ctx.State = emulation.Suspended
	test.ExpectSuccess(t, f.sch.Run())

	// no frames while suspended and no polling. the third wait returned the
	// quit event
	test.ExpectEquality(t, f.machine.Model.FrameCount(), uint64(0))
	test.ExpectEquality(t, f.host.presented, 0)
	test.ExpectEquality(t, f.host.polled, 0)
	test.ExpectEquality(t, f.host.waited, 3)
	test.ExpectSuccess(t, f.ctx.ShowDebug)
}

func TestSingleStep(t *testing.T) {
	f := newFixture(key("PageDown", userinput.KeyModNone, true))
	f.ctx.State = emulation.Suspended
	test.ExpectSuccess(t, f.sch.Run())

	test.ExpectEquality(t, f.machine.Model.FrameCount(), uint64(1))
	test.ExpectEquality(t, f.host.presented, 1)
	test.ExpectEquality(t, f.ctx.State, emulation.Suspended)
	test.ExpectFailure(t, f.machine.Model.Keys().Blocked())
}

func TestPause(t *testing.T) {
	// pause from active, the next event resumes. the quit event is received
	// while active again
	f := newFixture(
		key("Pause", userinput.KeyModNone, true),
		key("Pause", userinput.KeyModNone, true),
		userinput.EventQuit{},
	)
	test.ExpectSuccess(t, f.sch.Run())

	test.ExpectEquality(t, f.machine.Model.FrameCount(), uint64(2))
	test.ExpectEquality(t, f.host.waited, 1)
	test.ExpectEquality(t, f.ctx.Popup.Message, " RESUMING ")
}

func TestPopupCountdown(t *testing.T) {
	f := newFixture()
	f.ctx.Notify(" PAUSED ")
	f.sch.FrameLimit = 10
	test.ExpectSuccess(t, f.sch.Run())
	test.ExpectEquality(t, f.ctx.Popup.Countdown, notifications.DefaultCountdown-10)

	// popup does not count down for frames that are not presented
	f = newFixture()
	f.ctx.TimerLock = false
	f.ctx.Notify(" PAUSED ")
	f.sch.FrameLimit = 10
	test.ExpectSuccess(t, f.sch.Run())
	test.ExpectEquality(t, f.ctx.Popup.Countdown, notifications.DefaultCountdown)
}

func TestResetKeys(t *testing.T) {
	// F11 down suspends and F11 up resumes
	f := newFixture(
		key("F11", userinput.KeyModNone, true),
		key("F11", userinput.KeyModNone, false),
		userinput.EventQuit{},
	)
	f.machine.Model.Write(0x3000, 0x55)
	test.ExpectSuccess(t, f.sch.Run())
	test.ExpectEquality(t, f.machine.CPU.ResetCount, 2)
	test.ExpectEquality(t, f.audio.resets, 1)
	test.ExpectEquality(t, f.machine.Model.Read(0x3000), uint8(0x55))
	test.ExpectEquality(t, f.machine.Model.FrameCount(), uint64(2))

	// shift for hard reset
	f = newFixture(key("F11", userinput.KeyModShift, false), userinput.EventQuit{})
	f.machine.Model.Write(0x3000, 0x55)
	test.ExpectSuccess(t, f.sch.Run())
	test.ExpectEquality(t, f.machine.CPU.ResetCount, 2)
	test.ExpectEquality(t, f.audio.resets, 0)
	test.ExpectEquality(t, f.machine.Model.Read(0x3000), uint8(0x00))

	// ctrl for chip reset
	f = newFixture(key("F11", userinput.KeyModCtrl, false), userinput.EventQuit{})
	f.machine.Model.Write(0x3000, 0x55)
	test.ExpectSuccess(t, f.sch.Run())
	test.ExpectEquality(t, f.machine.CPU.ResetCount, 1)
	test.ExpectEquality(t, f.machine.Model.Read(0x3000), uint8(0x55))
}

func TestNMI(t *testing.T) {
	f := newFixture(key("PrintScreen", userinput.KeyModNone, true))
	f.sch.FrameLimit = 1
	test.ExpectSuccess(t, f.sch.Run())
	test.ExpectSuccess(t, f.machine.CPU.NMI())

	f = newFixture(press("PrintScreen", userinput.KeyModNone)...)
	f.sch.FrameLimit = 2
	test.ExpectSuccess(t, f.sch.Run())
	test.ExpectFailure(t, f.machine.CPU.NMI())
}

func TestEmulationLevel(t *testing.T) {
	f := newFixture(key("E", userinput.KeyModAlt, true))
	f.sch.FrameLimit = 2
	test.ExpectSuccess(t, f.sch.Run())

	test.ExpectEquality(t, f.machine.Model.Level(), model.Fast)
	test.ExpectEquality(t, f.ctx.Popup.Message, " EMULATION LEVEL: FAST +4 ")

	// audio is resumed after the command because the timer is locked
	test.ExpectFailure(t, f.audio.paused)

	f = newFixture(
		key("E", userinput.KeyModAlt, true),
		key("E", userinput.KeyModAlt, true),
	)
	f.sch.FrameLimit = 3
	test.ExpectSuccess(t, f.sch.Run())
	test.ExpectEquality(t, f.machine.Model.Level(), model.AltChip)
	test.ExpectEquality(t, f.sch.Pipeline().CyclesPerRow(), 504)
	test.ExpectEquality(t, f.host.last.Stride, 504*4)
}

func TestTimerLock(t *testing.T) {
	f := newFixture(key("W", userinput.KeyModAlt, true))
	f.sch.FrameLimit = 2
	test.ExpectSuccess(t, f.sch.Run())
	test.ExpectFailure(t, f.ctx.TimerLock)
	test.ExpectSuccess(t, f.audio.paused)
	test.ExpectEquality(t, f.ctx.Popup.Message, " 50 HZ TIMER IS OFF ")
}

func TestAltCommands(t *testing.T) {
	f := newFixture(
		key("3", userinput.KeyModAlt, true),
		key("J", userinput.KeyModAlt, true),
		key("I", userinput.KeyModAlt, true),
		key("P", userinput.KeyModAlt, true),
		key("S", userinput.KeyModAlt, true),
		key("Return", userinput.KeyModAlt, true),
	)
	f.sch.FrameLimit = 7
	test.ExpectSuccess(t, f.sch.Run())

	test.ExpectEquality(t, f.ctx.WindowMultiplier, 3)
	test.ExpectEquality(t, f.host.multiplier, 3)
	test.ExpectSuccess(t, f.ctx.JoystickEmulation)
	test.ExpectEquality(t, f.ctx.ActiveJoystick, 1)
	test.ExpectSuccess(t, f.ctx.Overlay)
	test.ExpectSuccess(t, f.sch.Pipeline().Overlay())
	test.ExpectEquality(t, f.host.last.Format, television.UYVY)
	test.ExpectFailure(t, f.ctx.ShowFPS)
	test.ExpectSuccess(t, f.host.fullscreen)

	// every alt command pauses the audio
	test.ExpectEquality(t, f.audio.pauses, 6)
	test.ExpectFailure(t, f.audio.paused)
}

func TestJoystickEmulation(t *testing.T) {
	f := newFixture(
		key("J", userinput.KeyModAlt, true),
		key("Left", userinput.KeyModNone, true),
	)
	f.sch.FrameLimit = 3
	test.ExpectSuccess(t, f.sch.Run())
	test.ExpectEquality(t, f.machine.Model.Keys().Joystick(0), uint8(1<<userinput.Left))
	test.ExpectFailure(t, f.machine.Model.Keys().Pressed("Left"))
}

func TestKeyboard(t *testing.T) {
	f := newFixture(key("A", userinput.KeyModNone, true))
	f.sch.FrameLimit = 1
	test.ExpectSuccess(t, f.sch.Run())
	test.ExpectSuccess(t, f.machine.Model.Keys().Pressed("A"))
}

func TestJoystickButtons(t *testing.T) {
	f := newFixture(
		userinput.EventJoystickButton{Button: 4, Down: true},
		userinput.EventJoystickButton{Button: 4, Down: false},
		userinput.EventJoystickButton{Button: 11, Down: false},
		userinput.EventJoystickButton{Button: 14, Down: false},
		userinput.EventJoystickButton{Button: 0, Down: true},
	)
	f.sch.FrameLimit = 5
	test.ExpectSuccess(t, f.sch.Run())

	test.ExpectEquality(t, f.menu.runs, 1)
	test.ExpectEquality(t, f.ctx.ActiveJoystick, 1)

	// fire is pressed on the active joystick
	test.ExpectEquality(t, f.machine.Model.Keys().Joystick(1), uint8(1<<userinput.Fire))

	// RUN has been copied into the keyboard buffer
	test.ExpectEquality(t, len(f.machine.Model.Keys().Pending()), 0)
	test.ExpectEquality(t, f.machine.Model.Read(0x00ef), uint8(len(autostart.RunCommand)))
	test.ExpectEquality(t, f.machine.Model.Read(0x0527), uint8('R'))
}

func TestMenu(t *testing.T) {
	f := newFixture(key("Escape", userinput.KeyModNone, true), key("F8", userinput.KeyModNone, true))
	f.sch.FrameLimit = 3
	test.ExpectSuccess(t, f.sch.Run())
	test.ExpectEquality(t, f.menu.runs, 2)
	test.ExpectFailure(t, f.audio.paused)
}

func TestSaveSettings(t *testing.T) {
	f := newFixture(key("F10", userinput.KeyModNone, true))
	f.ctx.SaveOnExit = false
	f.sch.FrameLimit = 2
	test.ExpectSuccess(t, f.sch.Run())
	test.ExpectEquality(t, f.settings.saves, 1)
}

func TestWindowResized(t *testing.T) {
	f := newFixture(userinput.EventWindowResized{Width: 100, Height: 100})
	f.ctx.State = emulation.Suspended
	test.ExpectSuccess(t, f.sch.Run())

	// nothing to re-present
	test.ExpectEquality(t, f.host.presented, 0)

	f = newFixture(
		key("Pause", userinput.KeyModNone, true),
		userinput.EventWindowResized{Width: 100, Height: 100},
	)
	test.ExpectSuccess(t, f.sch.Run())
	test.ExpectEquality(t, f.host.presented, 2)
	test.ExpectEquality(t, f.machine.Model.FrameCount(), uint64(1))
}

func TestScreenshot(t *testing.T) {
	dir := t.TempDir()

	f := newFixture(key("F7", userinput.KeyModNone, true), key("F7", userinput.KeyModNone, true))
	f.sch.ScreenshotDir = dir
	f.sch.FrameLimit = 3
	test.ExpectSuccess(t, f.sch.Run())

	_, err := os.Stat(filepath.Join(dir, "gopher264_0000.bmp"))
	test.ExpectSuccess(t, err)
	_, err = os.Stat(filepath.Join(dir, "gopher264_0001.bmp"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f.ctx.Popup.Message, " SCREENSHOT SAVED ")
}

func TestTapeNotification(t *testing.T) {
	f := newFixture()
	test.ExpectSuccess(t, f.sch.Notify(notifications.NotifyTapeEnded))
	test.ExpectEquality(t, f.ctx.Popup.Message, " END OF TAPE ")
}

func TestAutostart(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "hello.prg")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0x01, 0x10, 0xea}, 0o644))

	f := newFixture()
	test.ExpectSuccess(t, f.sch.Autostart(fn))

	// warm-up frames are presented but the host is not polled
	test.ExpectEquality(t, f.host.presented, 25)
	test.ExpectEquality(t, f.host.polled, 0)
	test.ExpectEquality(t, f.machine.Model.Read(0x1001), uint8(0xea))
}
