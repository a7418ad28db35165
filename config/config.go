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

// Package config loads the optional YAML configuration file. Every field
// has a default so the program runs without a file at all.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/XYfactor1/joy-stick/curated"
)

// error patterns for the config package.
const (
	NotFound = "config: %v"
	Invalid  = "invalid config: %v"
)

// Config is the top level of the configuration file.
type Config struct {
	// axis magnitudes below this value are snapped to zero
	Deadzone float32 `yaml:"deadzone"`

	Intervals Intervals `yaml:"intervals"`

	// the button to command-label table. consulted by the monitor when a
	// button press edge is detected. buttons with no entry emit nothing
	Commands []CommandLabel `yaml:"commands"`
}

// Intervals are the sleep periods for the three loops, in milliseconds.
type Intervals struct {
	PollMs    int `yaml:"poll_ms"`
	CommandMs int `yaml:"command_ms"`
	ReportMs  int `yaml:"report_ms"`
}

// Poll returns the poller sleep period as a time.Duration.
func (in Intervals) Poll() time.Duration {
	return time.Duration(in.PollMs) * time.Millisecond
}

// Command returns the command listener sleep period as a time.Duration.
func (in Intervals) Command() time.Duration {
	return time.Duration(in.CommandMs) * time.Millisecond
}

// Report returns the monitor sleep period as a time.Duration.
func (in Intervals) Report() time.Duration {
	return time.Duration(in.ReportMs) * time.Millisecond
}

// CommandLabel maps a button index to the command label emitted when the
// button is pressed. Name is the human readable button name used in the
// emitted line.
type CommandLabel struct {
	Button int    `yaml:"button"`
	Label  string `yaml:"label"`
	Name   string `yaml:"name"`
}

// Default returns the configuration used when no file is supplied. The
// command table matches the face buttons of a typical gamepad.
func Default() Config {
	return Config{
		Deadzone: 0.1,
		Intervals: Intervals{
			PollMs:    60,
			CommandMs: 100,
			ReportMs:  10,
		},
		Commands: []CommandLabel{
			{Button: 0, Label: "3", Name: "X"},
			{Button: 1, Label: "1", Name: "A"},
			{Button: 2, Label: "2", Name: "B"},
			{Button: 3, Label: "4", Name: "Y"},
		},
	}
}

// Load reads the configuration file at path. An empty path returns the
// default configuration. Fields missing from the file keep their default
// values.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, curated.Errorf(NotFound, err)
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, curated.Errorf(Invalid, err)
	}

	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LabelForButton returns the command table entry for a button index. The
// second return value is false when the button has no entry.
func (cfg Config) LabelForButton(button int) (CommandLabel, bool) {
	for _, c := range cfg.Commands {
		if c.Button == button {
			return c, true
		}
	}
	return CommandLabel{}, false
}
