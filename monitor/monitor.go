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

// Package monitor is the main control loop of the program. It copies the
// shared joystick state on a fixed interval, redraws the status line and
// emits a command label whenever a mapped button goes from released to
// pressed.
package monitor

import (
	"fmt"
	"io"
	"time"

	"github.com/XYfactor1/joy-stick/config"
	"github.com/XYfactor1/joy-stick/govern"
	"github.com/XYfactor1/joy-stick/joystick"
)

// Monitor renders the joystick state to the console.
type Monitor struct {
	state    *joystick.State
	flags    *govern.Flags
	output   io.Writer
	cfg      config.Config
	interval time.Duration

	// button states from the previous iteration. resized whenever the
	// button count changes
	prev []bool
}

// NewMonitor is the preferred method of initialisation for the Monitor
// type.
func NewMonitor(state *joystick.State, flags *govern.Flags, output io.Writer, cfg config.Config) *Monitor {
	return &Monitor{
		state:    state,
		flags:    flags,
		output:   output,
		cfg:      cfg,
		interval: cfg.Intervals.Report(),
	}
}

// Run loops until the Alive flag is cleared. This is the tightest loop
// in the program and bounds how stale the rendered state can be. Runs on
// the calling goroutine.
func (mon *Monitor) Run() {
	for mon.flags.Alive.Load() {
		if mon.flags.Polling.Load() {
			mon.iterate()
		}
		time.Sleep(mon.interval)
	}
}

// iterate performs one reporting pass: redraw the status line and emit
// command labels for fresh button presses.
func (mon *Monitor) iterate() {
	snp := mon.state.Snapshot()

	// carriage return redraw. no newline so the line is overwritten on
	// the next iteration. os.Stdout is unbuffered so there is nothing to
	// flush
	fmt.Fprintf(mon.output, "%s\r", renderStatus(snp))

	mon.emitCommands(snp.Buttons)
}

// emitCommands prints a command label for every button that has gone
// from released to pressed since the previous iteration. Buttons with no
// entry in the command table emit nothing, as do releases.
func (mon *Monitor) emitCommands(buttons []bool) {
	// a change in button count means the device has been swapped since
	// the previous iteration. re-seed the edge detection buffer from the
	// current state so held buttons do not fire on reconnect
	if len(mon.prev) != len(buttons) {
		mon.prev = make([]bool, len(buttons))
		copy(mon.prev, buttons)
		return
	}

	for i, pressed := range buttons {
		if pressed && !mon.prev[i] {
			if c, ok := mon.cfg.LabelForButton(i); ok {
				fmt.Fprintf(mon.output, "\ncommand: %s (button %s)\n", c.Label, c.Name)
			}
		}
	}

	copy(mon.prev, buttons)
}
