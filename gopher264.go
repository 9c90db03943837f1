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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"github.com/bradleyjkemp/memviz"
	"github.com/gopher264/gopher264/curated"
	"github.com/gopher264/gopher264/emulation"
	"github.com/gopher264/gopher264/gui/headless"
	"github.com/gopher264/gopher264/gui/headless/easyterm"
	"github.com/gopher264/gopher264/gui/sdlaudio"
	"github.com/gopher264/gopher264/gui/sdlplay"
	"github.com/gopher264/gopher264/hardware"
	"github.com/gopher264/gopher264/hardware/model"
	"github.com/gopher264/gopher264/logger"
	"github.com/gopher264/gopher264/medialoader"
	"github.com/gopher264/gopher264/menu"
	"github.com/gopher264/gopher264/modalflag"
	"github.com/gopher264/gopher264/paths"
	"github.com/gopher264/gopher264/performance"
	"github.com/gopher264/gopher264/prefs"
	"github.com/gopher264/gopher264/scheduler"
	"github.com/gopher264/gopher264/settings"
	"github.com/gopher264/gopher264/statsview"
	"github.com/gopher264/gopher264/wavwriter"
)

// TooManyArgs is returned when a mode is given more than one media file.
const TooManyArgs = "too many arguments for %s mode"

// SDL requires that window and event handling happen on the thread that
// initialised it. the scheduler runs everything on the main goroutine so
// locking that goroutine to the main thread is sufficient.
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the command line and runs the selected mode. the return value
// is the exit status of the program.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	defPrefs, err := paths.ResourcePath("", settings.Filename)
	if err != nil {
		return err
	}

	level := md.AddString("level", "accurate", "emulation level: accurate, fast, c64")
	noWindow := md.AddBool("headless", false, "run without a window. keyboard input is taken from the terminal")
	frames := md.AddInt("frames", 0, "end the emulation after the number of frames. zero means no limit")
	prefsFile := md.AddString("prefs", defPrefs, "settings file")
	override := md.AddString("set", "", "override settings for this run. for example: \"WindowMultiplier::3; CRTEmulation::1\"")
	wav := md.AddString("wav", "", "record sound to WAV file")
	record := md.AddBool("record", false, "record sound to a WAV file with a unique name. ignored if -wav is set")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	memDump := md.AddString("memviz", "", "write graphviz representation of the machine to file and exit")
	echo := md.AddBool("log", false, "echo log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return curated.Errorf(TooManyArgs, md)
	}

	if *echo {
		logger.SetEcho(os.Stderr)
	}

	lvl, err := model.ParseLevel(*level)
	if err != nil {
		return err
	}

	ctx := emulation.NewContext()
	cfg := model.NewConfig()

	st, err := settings.NewSettings(*prefsFile, ctx, cfg)
	if err != nil {
		return err
	}
	if *override != "" {
		prefs.PushCommandLineStack(*override)
	}
	if err := st.Load(); err != nil {
		logger.Log(logger.Allow, "gopher264", err.Error())
	}
	if *override != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "gopher264", "unused settings: %s", unused)
		}
	}

	machine := hardware.NewMachine(lvl, cfg, nil)
	if machine.Adapter != nil {
		st.BindDirectory(machine.Adapter)
	}

	if *memDump != "" {
		f, err := os.Create(*memDump)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, machine)
		return nil
	}

	term, err := easyterm.NewTerminal(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer term.CleanUp()

	var dev hostDevices
	defer dev.release()

	var input menu.Input

	if *noWindow {
		hl := headless.NewHeadless(term.Input(), term.Output())
		if term.IsTerminal() {
			term.CBreakMode()
			if err := term.Flush(); err != nil {
				logger.Log(logger.Allow, "gopher264", err.Error())
			}
		}

		intChan := make(chan os.Signal, 1)
		signal.Notify(intChan, os.Interrupt)
		defer signal.Stop(intChan)
		go func() {
			for range intChan {
				hl.Interrupt()
			}
		}()

		dev.host = hl
		input = hl
	} else {
		scr, err := sdlplay.NewSdlPlay(ctx.WindowMultiplier)
		if err != nil {
			return err
		}
		dev.host = scr

		// the emulation can continue without sound
		aud, err := sdlaudio.NewAudio()
		if err != nil {
			logger.Log(logger.Allow, "gopher264", err.Error())
		} else {
			dev.audio = aud
		}

		input = term
	}

	sch := scheduler.NewScheduler(ctx, machine, dev.host, dev.audio, st, nil)
	sch.SetMenu(menu.NewMenu(machine, sch.Dispatcher(), st, input, os.Stdout))
	sch.FrameLimit = uint64(*frames)

	if *wav == "" && *record {
		var name string
		if len(md.RemainingArgs()) == 1 {
			name = medialoader.NewLoader(md.GetArg(0)).ShortName()
		}
		*wav = fmt.Sprintf("%s.wav", paths.UniqueFilename("audio", name))
	}

	if *wav != "" {
		rec, err := wavwriter.New(*wav)
		if err != nil {
			return err
		}
		dev.rec = rec
		sch.AddRecorder(rec)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	if len(md.RemainingArgs()) == 1 {
		if !sch.Autostart(md.GetArg(0)) {
			ctx.Notify(fmt.Sprintf(" CANNOT START %s ", md.GetArg(0)))
		}
	}

	// the scheduler tears down the devices when Run() returns
	dev.handover()

	return sch.Run()
}

// hostDevices are the host resources created by the RUN mode. they are
// released on any return before the scheduler takes ownership of them.
type hostDevices struct {
	host  scheduler.Host
	audio scheduler.Audio
	rec   scheduler.Recorder
	owned bool
}

func (dev *hostDevices) handover() {
	dev.owned = true
}

// release the devices in the reverse order of creation. does nothing once
// handover() has been called.
func (dev *hostDevices) release() {
	if dev.owned {
		return
	}
	dev.owned = true

	if dev.rec != nil {
		if err := dev.rec.End(); err != nil {
			logger.Log(logger.Allow, "gopher264", err.Error())
		}
	}
	if dev.audio != nil {
		dev.audio.Destroy()
	}
	if dev.host != nil {
		dev.host.Destroy()
	}
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	level := md.AddString("level", "accurate", "emulation level: accurate, fast, c64")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run performance check with profiling: comma separated CPU, MEM, TRACE or ALL")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	lvl, err := model.ParseLevel(*level)
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	var filename string
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		filename = md.GetArg(0)
	default:
		return curated.Errorf(TooManyArgs, md)
	}

	return performance.Check(md.Output, prf, lvl, filename, *duration)
}
