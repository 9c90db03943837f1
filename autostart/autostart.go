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

// Package autostart loads and runs media files on the emulated machine by
// typing the keystrokes a user would type.
//
// Autostart() hard resets the machine and lets it warm up before calling
// Start(). Start() can also be used on its own with a running machine. The
// action taken depends on the kind of media as classified by the medialoader
// package:
//
//   - disk images are mounted on the active drive and the command to load and
//     run the first file is typed
//   - programs, and the first program in a tape container, are copied
//     directly into memory and RUN is typed
//   - tape images are attached to the tape deck. nothing is typed
//
// Files of any other kind are rejected.
package autostart

import (
	"github.com/gopher264/gopher264/hardware"
	"github.com/gopher264/gopher264/logger"
	"github.com/gopher264/gopher264/medialoader"
)

// The keystrokes typed to run the loaded media.
const (
	DiskCommand = "L\xcf\"*\",8,1\rRUN:\r"
	RunCommand  = "RUN:\r"
)

// Number of frames to run after a hard reset before the keyboard is used.
const (
	WarmUpFrames    = 25
	WarmUpFramesC64 = 175
)

// WarmUp returns the number of frames required after a hard reset for a
// model with the given timing.
func WarmUp(cyclesPerRow int) int {
	if cyclesPerRow == 504 {
		return WarmUpFramesC64
	}
	return WarmUpFrames
}

// Presenter shows the current state of the screen. Frames presented during
// the warm-up are not paced.
type Presenter interface {
	PresentFrame()
}

// Muter is implemented by the logging permission of the emulation.
type Muter interface {
	Mute(bool)
}

// Dispatcher starts media files on the machine.
type Dispatcher struct {
	machine *hardware.Machine
	present Presenter
	mute    Muter
}

// NewDispatcher is the preferred method of initialisation for the Dispatcher
// type. The present and mute arguments can be nil.
func NewDispatcher(machine *hardware.Machine, present Presenter, mute Muter) *Dispatcher {
	return &Dispatcher{
		machine: machine,
		present: present,
		mute:    mute,
	}
}

// Autostart hard resets the machine, runs the warm-up frames and then starts
// the media file. The keyboard is blocked during the warm-up. The reset and
// warm-up happen even if the file is rejected. Returns false if the media
// could not be started.
func (dsp *Dispatcher) Autostart(filename string) bool {
	dsp.machine.HardReset()

	frames := WarmUp(dsp.machine.Model.CyclesPerRow())
	logger.Logf(logger.Allow, "autostart", "warm-up for %d frames", frames)

	keys := dsp.machine.Model.Keys()
	keys.Block(true)
	if dsp.mute != nil {
		dsp.mute.Mute(true)
	}

	for i := 0; i < frames; i++ {
		dsp.machine.Model.Process()
		if dsp.present != nil {
			dsp.present.PresentFrame()
		}
	}

	if dsp.mute != nil {
		dsp.mute.Mute(false)
	}
	keys.Block(false)

	return dsp.Start(filename)
}

// Start the media file without resetting the machine. Returns false if the
// media could not be started.
func (dsp *Dispatcher) Start(filename string) bool {
	ld := medialoader.NewLoader(filename)

	switch ld.Kind {
	case medialoader.DiskImage:
		// the command is typed even if the mount fails. the drive will look
		// for the file in the host directory instead
		if err := dsp.machine.MountDisk(filename); err != nil {
			logger.Log(logger.Allow, "autostart", err.Error())
		}
		dsp.machine.Model.Keys().Inject(DiskCommand)

	case medialoader.ProgramFile, medialoader.TapeContainer:
		if err := ld.Load(); err != nil {
			logger.Log(logger.Allow, "autostart", err.Error())
			return false
		}
		prg, err := ld.Program()
		if err != nil {
			logger.Log(logger.Allow, "autostart", err.Error())
			return false
		}
		prg.Install(dsp.machine.Model)
		dsp.machine.Model.Keys().Inject(RunCommand)

	case medialoader.TapeImage:
		dsp.machine.Tape.Detach()
		dsp.machine.Tape.Filename = filename
		if err := dsp.machine.Tape.Attach(); err != nil {
			logger.Log(logger.Allow, "autostart", err.Error())
			return false
		}

	default:
		logger.Logf(logger.Allow, "autostart", "unrecognised file: %s", filename)
		return false
	}

	logger.Logf(logger.Allow, "autostart", "started %s (%s)", ld.ShortName(), ld.Kind)

	return true
}
