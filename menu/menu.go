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

// Package menu implements the menu mode of the emulator. The menu is a
// simple line-oriented menu on the terminal. The emulation is stopped while
// the menu is running.
package menu

import (
	"fmt"
	"io"
	"strings"

	"github.com/gopher264/gopher264/autostart"
	"github.com/gopher264/gopher264/hardware"
	"github.com/gopher264/gopher264/logger"
	"github.com/gopher264/gopher264/settings"
)

// Input is the source of menu selections.
type Input interface {
	ReadLine() (string, error)
}

// Settings is the subset of settings.Settings used by the menu.
type Settings interface {
	Save() error
	BindDirectory(d settings.Directory)
}

// Menu is an implementation of the scheduler.Menu interface.
type Menu struct {
	machine    *hardware.Machine
	dispatcher *autostart.Dispatcher
	settings   Settings

	input  Input
	output io.Writer
}

// NewMenu is the preferred method of initialisation for the Menu type. The
// settings argument can be nil.
func NewMenu(machine *hardware.Machine, dispatcher *autostart.Dispatcher, settings Settings, input Input, output io.Writer) *Menu {
	return &Menu{
		machine:    machine,
		dispatcher: dispatcher,
		settings:   settings,
		input:      input,
		output:     output,
	}
}

type option struct {
	label  string
	action func(mnu *Menu) bool
}

// the order of the options is the order in which they are displayed. the
// action returns true if the menu should close
var options = []option{
	{label: "autostart file", action: (*Menu).autostart},
	{label: "attach tape", action: (*Menu).attachTape},
	{label: "detach tape", action: (*Menu).detachTape},
	{label: "mount disk image", action: (*Menu).mountDisk},
	{label: "", action: (*Menu).toggleDrive},
	{label: "set drive directory", action: (*Menu).setDirectory},
	{label: "hard reset", action: (*Menu).hardReset},
	{label: "save settings", action: (*Menu).saveSettings},
}

func (mnu *Menu) printf(format string, a ...interface{}) {
	fmt.Fprintf(mnu.output, format, a...)
}

func (mnu *Menu) label(i int) string {
	if options[i].label != "" {
		return options[i].label
	}
	if mnu.machine.DiskAdapterEnabled() {
		return "use true drive"
	}
	return "use disk adapter"
}

func (mnu *Menu) show() {
	mnu.printf("\n%s\n", mnu.machine)
	mnu.printf("tape: %s\n", mnu.machine.Tape)
	for i := range options {
		mnu.printf("  %d. %s\n", i+1, mnu.label(i))
	}
	mnu.printf("  0. return to emulation\n")
}

func (mnu *Menu) prompt(s string) (string, bool) {
	mnu.printf("%s: ", s)
	l, err := mnu.input.ReadLine()
	if err != nil {
		if err != io.EOF {
			logger.Logf(logger.Allow, "menu", "%v", err)
		}
		return "", false
	}
	return strings.TrimSpace(l), true
}

// Run the menu until the user chooses to return to the emulation or until an
// option closes the menu.
func (mnu *Menu) Run() {
	logger.Log(logger.Allow, "menu", "entering menu")
	defer logger.Log(logger.Allow, "menu", "leaving menu")

	for {
		mnu.show()

		sel, ok := mnu.prompt("select")
		if !ok || sel == "" || sel == "0" {
			return
		}

		var n int
		if _, err := fmt.Sscanf(sel, "%d", &n); err != nil || n < 1 || n > len(options) {
			mnu.printf("unknown option: %s\n", sel)
			continue
		}

		if options[n-1].action(mnu) {
			return
		}
	}
}

func (mnu *Menu) autostart() bool {
	fn, ok := mnu.prompt("file")
	if !ok || fn == "" {
		return false
	}
	if !mnu.dispatcher.Autostart(fn) {
		mnu.printf("cannot autostart %s\n", fn)
		return false
	}
	return true
}

func (mnu *Menu) attachTape() bool {
	fn, ok := mnu.prompt("tape file (.tap .wav .mp3)")
	if !ok || fn == "" {
		return false
	}
	mnu.machine.Tape.Detach()
	mnu.machine.Tape.Filename = fn
	if err := mnu.machine.Tape.Attach(); err != nil {
		mnu.printf("%v\n", err)
	}
	return false
}

func (mnu *Menu) detachTape() bool {
	mnu.machine.Tape.Detach()
	return false
}

func (mnu *Menu) mountDisk() bool {
	fn, ok := mnu.prompt("disk image")
	if !ok || fn == "" {
		return false
	}
	if err := mnu.machine.MountDisk(fn); err != nil {
		mnu.printf("%v\n", err)
	}
	return false
}

func (mnu *Menu) toggleDrive() bool {
	enable := !mnu.machine.DiskAdapterEnabled()

	// the directory setting follows the disk adapter
	if mnu.settings != nil {
		mnu.settings.BindDirectory(nil)
	}
	mnu.machine.EnableDiskAdapter(enable)
	if mnu.settings != nil && mnu.machine.Adapter != nil {
		mnu.settings.BindDirectory(mnu.machine.Adapter)
	}

	return false
}

func (mnu *Menu) setDirectory() bool {
	if mnu.machine.Adapter == nil {
		mnu.printf("the disk adapter is not in use\n")
		return false
	}
	mnu.printf("current directory: %s\n", mnu.machine.Adapter.Directory())
	dir, ok := mnu.prompt("directory")
	if !ok || dir == "" {
		return false
	}
	if err := mnu.machine.Adapter.SetDirectory(dir); err != nil {
		mnu.printf("%v\n", err)
	}
	return false
}

func (mnu *Menu) hardReset() bool {
	mnu.machine.HardReset()
	return true
}

func (mnu *Menu) saveSettings() bool {
	if mnu.settings == nil {
		return false
	}
	if err := mnu.settings.Save(); err != nil {
		mnu.printf("%v\n", err)
		return false
	}
	mnu.printf("settings saved\n")
	return false
}
