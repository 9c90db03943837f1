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

package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gopher264/gopher264/curated"
	"github.com/gopher264/gopher264/emulation"
	"github.com/gopher264/gopher264/hardware/model"
	"github.com/gopher264/gopher264/logger"
	"github.com/gopher264/gopher264/prefs"
)

// Header is the first line of the settings file.
const Header = "[gopher264 configuration file]"

// Filename is the default name of the settings file in the resource path.
const Filename = "gopher264.conf"

// Directory is implemented by the peripheral that serves files from a host
// directory.
type Directory interface {
	Directory() string
	SetDirectory(dir string) error
}

// Settings is the persisted configuration of the emulator.
type Settings struct {
	dsk *prefs.Disk
	ctx *emulation.Context
	cfg *model.Config

	// the current directory is held here until a Directory is bound
	dir       string
	directory Directory
}

// NewSettings is the preferred method of initialisation for the Settings
// type. The settings are not loaded until Load() is called.
func NewSettings(path string, ctx *emulation.Context, cfg *model.Config) (*Settings, error) {
	s := &Settings{
		dsk: prefs.NewDisk(path, Header),
		ctx: ctx,
		cfg: cfg,
	}

	add := func(key string, p *prefs.Generic) error {
		if err := s.dsk.Add(key, p); err != nil {
			return curated.Errorf("settings: %v", err)
		}
		return nil
	}

	err := add("DisplayFrameRate", boolean(&ctx.ShowFPS))
	if err != nil {
		return nil, err
	}
	err = add("DisplayQuickDebugInfo", boolean(&ctx.ShowDebug))
	if err != nil {
		return nil, err
	}
	err = add("50HzTimerActive", boolean(&ctx.TimerLock))
	if err != nil {
		return nil, err
	}
	err = add("JoystickEmulation", boolean(&ctx.JoystickEmulation))
	if err != nil {
		return nil, err
	}
	err = add("ActiveJoystick", prefs.NewGeneric(
		func(v prefs.Value) error {
			n, err := integer(v, 10)
			if err != nil {
				return err
			}
			ctx.ActiveJoystick = n & 1
			return nil
		},
		func() prefs.Value {
			return ctx.ActiveJoystick
		},
	))
	if err != nil {
		return nil, err
	}
	err = add("RamMask", prefs.NewGeneric(
		func(v prefs.Value) error {
			n, err := integer(v, 16)
			if err != nil {
				return err
			}
			cfg.RAMMask = uint16(n)
			return nil
		},
		func() prefs.Value {
			return fmt.Sprintf("%x", cfg.RAMMask)
		},
	))
	if err != nil {
		return nil, err
	}
	err = add("256KBRAM", boolean(&cfg.BigRAM))
	if err != nil {
		return nil, err
	}
	err = add("SaveSettingsOnExit", boolean(&ctx.SaveOnExit))
	if err != nil {
		return nil, err
	}

	for i := range cfg.ROMLow {
		err = add(fmt.Sprintf("ROMC%dLOW", i), str(&cfg.ROMLow[i]))
		if err != nil {
			return nil, err
		}
	}
	for i := range cfg.ROMHigh {
		err = add(fmt.Sprintf("ROMC%dHIGH", i), str(&cfg.ROMHigh[i]))
		if err != nil {
			return nil, err
		}
	}

	err = add("CurrentDirectory", prefs.NewGeneric(
		func(v prefs.Value) error {
			s.dir = strings.TrimSpace(fmt.Sprintf("%v", v))
			if s.directory != nil && s.dir != "" {
				return s.directory.SetDirectory(s.dir)
			}
			return nil
		},
		func() prefs.Value {
			if s.directory != nil {
				return s.directory.Directory()
			}
			return s.dir
		},
	))
	if err != nil {
		return nil, err
	}

	err = add("CRTEmulation", boolean(&ctx.Overlay))
	if err != nil {
		return nil, err
	}
	err = add("WindowMultiplier", prefs.NewGeneric(
		func(v prefs.Value) error {
			n, err := integer(v, 10)
			if err != nil {
				return err
			}
			ctx.WindowMultiplier = ClampMultiplier(n)
			return nil
		},
		func() prefs.Value {
			return ctx.WindowMultiplier
		},
	))
	if err != nil {
		return nil, err
	}

	return s, nil
}

// ClampMultiplier limits the window multiplier to the range 1 to 3.
func ClampMultiplier(n int) int {
	n &= 3
	if n == 0 {
		n = 1
	}
	return n
}

// Path returns the filename of the settings file.
func (s *Settings) Path() string {
	return s.dsk.Path()
}

// BindDirectory connects the CurrentDirectory setting to a peripheral. Any
// directory already loaded is applied to the peripheral. Binding nil
// disconnects the setting, which retains the peripheral's directory.
func (s *Settings) BindDirectory(d Directory) {
	if s.directory != nil {
		s.dir = s.directory.Directory()
	}
	s.directory = d
	if d != nil && s.dir != "" {
		if err := d.SetDirectory(s.dir); err != nil {
			logger.Logf(logger.Allow, "settings", "%v", err)
		}
	}
}

// Load the settings from disk. Values that are not in the file keep their
// current value. If the timer lock is off after loading then sound is
// disabled.
func (s *Settings) Load() error {
	err := s.dsk.Load()
	if !s.ctx.TimerLock {
		s.ctx.Sound = false
	}
	if err != nil {
		logger.Logf(logger.Allow, "settings", "%v", err)
		return curated.Errorf("settings: %v", err)
	}
	logger.Logf(logger.Allow, "settings", "loaded from %s", s.dsk.Path())
	return nil
}

// Save the current settings to disk.
func (s *Settings) Save() error {
	if err := s.dsk.Save(); err != nil {
		logger.Logf(logger.Allow, "settings", "%v", err)
		return curated.Errorf("settings: %v", err)
	}
	logger.Logf(logger.Allow, "settings", "saved to %s", s.dsk.Path())
	return nil
}

// boolean values are written as 0 or 1.
func boolean(b *bool) *prefs.Generic {
	return prefs.NewGeneric(
		func(v prefs.Value) error {
			switch v := v.(type) {
			case bool:
				*b = v
			default:
				*b = prefs.ParseBool(fmt.Sprintf("%v", v))
			}
			return nil
		},
		func() prefs.Value {
			if *b {
				return 1
			}
			return 0
		},
	)
}

func str(s *string) *prefs.Generic {
	return prefs.NewGeneric(
		func(v prefs.Value) error {
			*s = strings.TrimSpace(fmt.Sprintf("%v", v))
			return nil
		},
		func() prefs.Value {
			return *s
		},
	)
}

func integer(v prefs.Value, base int) (int, error) {
	switch v := v.(type) {
	case int:
		return v, nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), base, 32)
		if err != nil {
			return 0, curated.Errorf("settings: %v", err)
		}
		return int(n), nil
	}
	return 0, curated.Errorf("settings: cannot convert %T to an integer", v)
}
