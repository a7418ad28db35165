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

package config

import (
	"fmt"

	"github.com/XYfactor1/joy-stick/curated"
)

// Validate checks configuration correctness. It performs declarative
// validation only and MUST NOT mutate the configuration.
func Validate(cfg *Config) error {
	if cfg.Deadzone < 0 || cfg.Deadzone >= 1 {
		return curated.Errorf(Invalid, fmt.Sprintf("deadzone must be in [0, 1): %f", cfg.Deadzone))
	}

	if cfg.Intervals.PollMs <= 0 {
		return curated.Errorf(Invalid, fmt.Sprintf("poll_ms must be positive: %d", cfg.Intervals.PollMs))
	}
	if cfg.Intervals.CommandMs <= 0 {
		return curated.Errorf(Invalid, fmt.Sprintf("command_ms must be positive: %d", cfg.Intervals.CommandMs))
	}
	if cfg.Intervals.ReportMs <= 0 {
		return curated.Errorf(Invalid, fmt.Sprintf("report_ms must be positive: %d", cfg.Intervals.ReportMs))
	}

	seen := make(map[int]bool)
	for _, c := range cfg.Commands {
		if c.Button < 0 {
			return curated.Errorf(Invalid, fmt.Sprintf("command button must not be negative: %d", c.Button))
		}
		if c.Label == "" {
			return curated.Errorf(Invalid, fmt.Sprintf("command label for button %d is empty", c.Button))
		}
		if seen[c.Button] {
			return curated.Errorf(Invalid, fmt.Sprintf("duplicate command entry for button %d", c.Button))
		}
		seen[c.Button] = true
	}

	return nil
}
