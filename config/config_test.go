// This file is part of Joy-Stick.
//
// Joy-Stick is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Joy-Stick is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Joy-Stick.  If not, see <https://www.gnu.org/licenses/>.

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/XYfactor1/joy-stick/config"
	"github.com/XYfactor1/joy-stick/test"
)

func TestDefaults(t *testing.T) {
	cfg := config.Default()
	test.ExpectedSuccess(t, config.Validate(&cfg))

	test.Equate(t, cfg.Deadzone, 0.1)
	test.Equate(t, int(cfg.Intervals.Poll()/time.Millisecond), 60)
	test.Equate(t, int(cfg.Intervals.Command()/time.Millisecond), 100)
	test.Equate(t, int(cfg.Intervals.Report()/time.Millisecond), 10)

	// an empty path loads the defaults
	cfg, err := config.Load("")
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(cfg.Commands), 4)
}

func TestCommandTable(t *testing.T) {
	cfg := config.Default()

	// the default button to label remapping
	expected := map[int]string{0: "3", 1: "1", 2: "2", 3: "4"}
	for button, label := range expected {
		c, ok := cfg.LabelForButton(button)
		test.ExpectedSuccess(t, ok)
		test.Equate(t, c.Label, label)
	}

	// buttons outside the table have no label
	_, ok := cfg.LabelForButton(4)
	test.ExpectedFailure(t, ok)
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.Deadzone = 1.0
	test.ExpectedFailure(t, config.Validate(&cfg))

	cfg = config.Default()
	cfg.Deadzone = -0.1
	test.ExpectedFailure(t, config.Validate(&cfg))

	cfg = config.Default()
	cfg.Intervals.PollMs = 0
	test.ExpectedFailure(t, config.Validate(&cfg))

	cfg = config.Default()
	cfg.Intervals.ReportMs = -10
	test.ExpectedFailure(t, config.Validate(&cfg))

	cfg = config.Default()
	cfg.Commands = append(cfg.Commands, config.CommandLabel{Button: 0, Label: "5", Name: "LB"})
	test.ExpectedFailure(t, config.Validate(&cfg))

	cfg = config.Default()
	cfg.Commands[0].Label = ""
	test.ExpectedFailure(t, config.Validate(&cfg))

	cfg = config.Default()
	cfg.Commands[0].Button = -1
	test.ExpectedFailure(t, config.Validate(&cfg))
}

func TestLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "joystick.yaml")

	conf := []byte(`
deadzone: 0.2
intervals:
  poll_ms: 30
commands:
  - {button: 0, label: "fire", name: trigger}
`)
	if err := os.WriteFile(pth, conf, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(pth)
	test.ExpectedSuccess(t, err)

	test.Equate(t, cfg.Deadzone, 0.2)
	test.Equate(t, cfg.Intervals.PollMs, 30)

	// fields missing from the file keep their defaults
	test.Equate(t, cfg.Intervals.CommandMs, 100)
	test.Equate(t, cfg.Intervals.ReportMs, 10)

	// the command table in the file replaces the default table
	test.Equate(t, len(cfg.Commands), 1)
	c, ok := cfg.LabelForButton(0)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, c.Label, "fire")
	test.Equate(t, c.Name, "trigger")

	// a missing file is an error
	_, err = config.Load(filepath.Join(t.TempDir(), "no-such-file.yaml"))
	test.ExpectedFailure(t, err)

	// as is an unparseable file
	if err := os.WriteFile(pth, []byte(":\n-not yaml"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err = config.Load(pth)
	test.ExpectedFailure(t, err)
}
