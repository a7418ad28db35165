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

// Package govern defines the run flags shared by the polling, command
// and reporting loops. The flags are the only cancellation mechanism in
// the program: a loop notices a cleared flag at its next iteration, so
// shutdown latency is bounded by the longest loop interval.
package govern

import "sync/atomic"

// Flags are the shared run flags. Each flag is updated atomically and
// read by loops that tolerate eventually-observed changes. No ordering
// guarantee is required between the two flags.
type Flags struct {
	// Alive is cleared when the program should shut down. Read by every
	// loop in the program.
	Alive atomic.Bool

	// Polling indicates whether joystick capture is enabled. Cleared and
	// set by the operator's pause/resume command. Read by the poller and
	// the monitor.
	Polling atomic.Bool
}

// NewFlags is the preferred method of initialisation for the Flags type.
// Both flags are set on creation.
func NewFlags() *Flags {
	flgs := &Flags{}
	flgs.Alive.Store(true)
	flgs.Polling.Store(true)
	return flgs
}

// Quit clears both flags, causing every loop to wind down.
func (flgs *Flags) Quit() {
	flgs.Alive.Store(false)
	flgs.Polling.Store(false)
}
