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

package menu_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopher264/gopher264/autostart"
	"github.com/gopher264/gopher264/hardware"
	"github.com/gopher264/gopher264/hardware/model"
	"github.com/gopher264/gopher264/menu"
	"github.com/gopher264/gopher264/settings"
	"github.com/gopher264/gopher264/test"
)

type lines []string

func (l *lines) ReadLine() (string, error) {
	if len(*l) == 0 {
		return "", io.EOF
	}
	s := (*l)[0]
	*l = (*l)[1:]
	return s, nil
}

type prefs struct {
	saves int
	bound []settings.Directory
}

func (p *prefs) Save() error {
	p.saves++
	return nil
}

func (p *prefs) BindDirectory(d settings.Directory) {
	p.bound = append(p.bound, d)
}

func newMenu(input ...string) (*menu.Menu, *hardware.Machine, *prefs, *strings.Builder, *lines) {
	m := hardware.NewMachine(model.Accurate, nil, nil)
	dsp := autostart.NewDispatcher(m, nil, nil)
	p := &prefs{}
	out := &strings.Builder{}
	in := lines(input)
	return menu.NewMenu(m, dsp, p, &in, out), m, p, out, &in
}

func TestReturn(t *testing.T) {
	mnu, _, _, out, in := newMenu("0", "6")
	mnu.Run()
	test.ExpectEquality(t, len(*in), 1)
	test.ExpectSuccess(t, strings.Contains(out.String(), "1. autostart file"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "5. use true drive"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "tape: no tape"))

	// end of input closes the menu
	mnu, _, _, _, _ = newMenu()
	mnu.Run()
}

func TestUnknownOption(t *testing.T) {
	mnu, _, _, out, _ := newMenu("99", "x")
	mnu.Run()
	test.ExpectSuccess(t, strings.Contains(out.String(), "unknown option: 99"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "unknown option: x"))
}

func TestHardReset(t *testing.T) {
	mnu, m, _, _, in := newMenu("7", "0")
	m.Model.Write(0x2000, 0xaa)
	mnu.Run()

	// hard reset closes the menu
	test.ExpectEquality(t, len(*in), 1)
	test.ExpectEquality(t, m.CPU.ResetCount, 2)
	test.ExpectEquality(t, m.Model.Read(0x2000), uint8(0x00))
}

func TestToggleDrive(t *testing.T) {
	mnu, m, p, out, _ := newMenu("5", "6", "5", "0")
	mnu.Run()

	test.ExpectSuccess(t, m.DiskAdapterEnabled())
	test.ExpectSuccess(t, strings.Contains(out.String(), "5. use disk adapter"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "the disk adapter is not in use"))

	// unbound when the true drive is used and bound to the new adapter
	test.DemandEquality(t, len(p.bound), 3)
	test.ExpectEquality(t, p.bound[0], nil)
	test.ExpectEquality(t, p.bound[1], nil)
	test.ExpectEquality[settings.Directory](t, p.bound[2], m.Adapter)
}

func TestDirectory(t *testing.T) {
	dir := t.TempDir()
	mnu, m, _, out, _ := newMenu("6", dir, "6", filepath.Join(dir, "missing"), "0")
	mnu.Run()
	test.ExpectEquality(t, m.Adapter.Directory(), dir)
	test.ExpectSuccess(t, strings.Contains(out.String(), "current directory: "+dir))
}

func TestSaveSettings(t *testing.T) {
	mnu, _, p, out, _ := newMenu("8", "0")
	mnu.Run()
	test.ExpectEquality(t, p.saves, 1)
	test.ExpectSuccess(t, strings.Contains(out.String(), "settings saved"))
}

func TestTape(t *testing.T) {
	mnu, m, _, out, _ := newMenu("2", "/no/such/tape.tap", "3", "0")
	mnu.Run()
	test.ExpectFailure(t, m.Tape.Attached())
	test.ExpectSuccess(t, strings.Contains(out.String(), "tape:"))
}

func TestMountDisk(t *testing.T) {
	mnu, _, _, out, _ := newMenu("4", "/no/such/disk.d64", "0")
	mnu.Run()
	test.ExpectSuccess(t, strings.Contains(out.String(), "machine: tcbm:"))
}

func TestAutostart(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "demo.prg")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0x01, 0x10, 0x42}, 0o644))

	mnu, m, _, _, in := newMenu("1", fn, "0")
	mnu.Run()

	// a successful autostart closes the menu
	test.ExpectEquality(t, len(*in), 1)
	test.ExpectEquality(t, m.Model.Read(0x1001), uint8(0x42))

	mnu, _, _, out, _ := newMenu("1", "readme.txt", "0")
	mnu.Run()
	test.ExpectSuccess(t, strings.Contains(out.String(), "cannot autostart readme.txt"))
}
