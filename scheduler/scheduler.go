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
	"github.com/gopher264/gopher264/autostart"
	"github.com/gopher264/gopher264/emulation"
	"github.com/gopher264/gopher264/hardware"
	"github.com/gopher264/gopher264/hardware/model"
	"github.com/gopher264/gopher264/logger"
	"github.com/gopher264/gopher264/television"
	"github.com/gopher264/gopher264/television/limiter"
	"github.com/gopher264/gopher264/userinput"
)

// Host is the display and input of the host machine.
type Host interface {
	// PollEvent returns the next pending event or nil if there is no event.
	// PollEvent must not block
	PollEvent() userinput.Event

	// WaitEvent blocks until an event is available
	WaitEvent() userinput.Event

	Present(frame television.Frame) error
	SetWindowMultiplier(n int) error
	ToggleFullScreen() error
	Destroy()
}

// Audio is the audio output of the host machine.
type Audio interface {
	hardware.AudioPauser

	// Reset discards any queued samples
	Reset()

	Push(samples []int16) error
	Destroy()
}

// Recorder receives a copy of the sound samples of every frame.
type Recorder interface {
	Push(samples []int16) error
	End() error
}

// Menu is the interactive menu. Run() returns when the user leaves the menu.
type Menu interface {
	Run()
}

// Settings are saved on request and when the scheduler ends.
type Settings interface {
	Save() error
}

// Scheduler drives the emulation.
type Scheduler struct {
	ctx     *emulation.Context
	machine *hardware.Machine
	host    Host

	// the following collaborators can be nil
	audio     Audio
	menu      Menu
	settings  Settings
	recorders []Recorder

	pipeline    *television.Pipeline
	limiter     *limiter.Limiter
	dispatcher  *autostart.Dispatcher
	controllers userinput.Controllers

	// directory in which screenshots are saved
	ScreenshotDir string

	// the number of frames after which the scheduler ends. zero means no
	// limit
	FrameLimit uint64

	// the number of frames run by the scheduler
	frames uint64
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type. The audio, settings and menu arguments can be nil.
func NewScheduler(ctx *emulation.Context, machine *hardware.Machine, host Host, audio Audio, settings Settings, menu Menu) *Scheduler {
	sch := &Scheduler{
		ctx:           ctx,
		machine:       machine,
		host:          host,
		audio:         audio,
		settings:      settings,
		menu:          menu,
		pipeline:      television.NewPipeline(machine.Model),
		limiter:       limiter.NewLimiter(model.RefreshRate, nil),
		ScreenshotDir: ".",
	}

	sch.dispatcher = autostart.NewDispatcher(machine, sch, ctx)
	sch.pipeline.SetOverlay(ctx.Overlay)

	machine.SetPresentation(sch.pipeline)
	machine.SetNotify(sch)
	if audio != nil {
		machine.SetAudio(audio)
		if !ctx.AudioWanted() {
			audio.Pause()
		}
	}

	sch.syncControllers()

	return sch
}

// SetMenu sets the menu entered by the menu commands. Menus often depend on
// the Dispatcher() so cannot be created before the scheduler.
func (sch *Scheduler) SetMenu(menu Menu) {
	sch.menu = menu
}

// SetLimiter replaces the frame limiter.
func (sch *Scheduler) SetLimiter(lmtr *limiter.Limiter) {
	sch.limiter = lmtr
}

// AddRecorder adds a recipient for sound samples.
func (sch *Scheduler) AddRecorder(rec Recorder) {
	sch.recorders = append(sch.recorders, rec)
}

// Pipeline returns the frame presentation pipeline.
func (sch *Scheduler) Pipeline() *television.Pipeline {
	return sch.pipeline
}

// Autostart the media file. Should be called before Run().
func (sch *Scheduler) Autostart(filename string) bool {
	return sch.dispatcher.Autostart(filename)
}

// Dispatcher returns the autostart dispatcher used by the scheduler.
func (sch *Scheduler) Dispatcher() *autostart.Dispatcher {
	return sch.dispatcher
}

// Frames returns the number of frames run since the scheduler was created.
func (sch *Scheduler) Frames() uint64 {
	return sch.frames
}

func (sch *Scheduler) syncControllers() {
	sch.controllers.JoystickEmulation = sch.ctx.JoystickEmulation
	sch.controllers.Port = sch.ctx.ActiveJoystick
}

// Run the emulation until a shutdown is requested. Run() tears down the
// emulation before returning.
func (sch *Scheduler) Run() error {
	logger.Log(logger.Allow, "scheduler", "running")

	for !sch.ctx.ShutdownRequested() {
		switch sch.ctx.State {
		case emulation.Active:
			sch.active()
		case emulation.Suspended:
			sch.handleEvent(sch.host.WaitEvent())
		case emulation.SingleStep:
			sch.singleStep()
		}
	}

	sch.shutdown()

	return nil
}

// active runs one iteration of the Active state.
func (sch *Scheduler) active() {
	sch.runFrame()

	if ev := sch.host.PollEvent(); ev != nil {
		sch.handleEvent(ev)
	}

	if sch.ctx.ShowDebug {
		sch.debugInfo()
	}
	if sch.ctx.ShowFPS {
		sch.showFrameRate()
	}

	if sch.limiter.Pace(sch.ctx.TimerLock) {
		sch.PresentFrame()
	}
}

// singleStep runs a single frame with the keyboard blocked and then suspends
// the emulation.
func (sch *Scheduler) singleStep() {
	keys := sch.machine.Model.Keys()
	keys.Block(true)
	sch.runFrame()
	sch.PresentFrame()
	keys.Block(false)
	sch.ctx.State = emulation.Suspended
}

func (sch *Scheduler) runFrame() {
	sch.machine.Model.Process()
	sch.frames++

	samples := sch.machine.Model.SoundSamples()
	if sch.audio != nil {
		if err := sch.audio.Push(samples); err != nil {
			logger.Logf(sch.ctx, "scheduler", "audio: %v", err)
		}
	}
	for _, rec := range sch.recorders {
		if err := rec.Push(samples); err != nil {
			logger.Logf(sch.ctx, "scheduler", "recorder: %v", err)
		}
	}

	if sch.FrameLimit > 0 && sch.frames >= sch.FrameLimit {
		sch.ctx.RequestShutdown()
	}
}

// PresentFrame converts the current screen and hands it to the host. It
// implements the autostart.Presenter interface.
func (sch *Scheduler) PresentFrame() {
	frame := sch.pipeline.Present(sch.machine.Model, &sch.ctx.Popup)
	if err := sch.host.Present(frame); err != nil {
		logger.Logf(sch.ctx, "scheduler", "present: %v", err)
	}
}

// shutdown tears everything down in the reverse order of construction.
func (sch *Scheduler) shutdown() {
	logger.Log(logger.Allow, "scheduler", "shutting down")

	for _, rec := range sch.recorders {
		if err := rec.End(); err != nil {
			logger.Logf(logger.Allow, "scheduler", "recorder: %v", err)
		}
	}
	if sch.audio != nil {
		sch.audio.Destroy()
	}

	if sch.ctx.SaveOnExit && sch.settings != nil {
		if err := sch.settings.Save(); err != nil {
			logger.Logf(logger.Allow, "scheduler", "%v", err)
		}
	}

	sch.host.Destroy()
	sch.machine.Shutdown()
}
