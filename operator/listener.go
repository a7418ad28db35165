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

// Package operator translates single-character keyboard commands into run
// flag transitions. Input is read cooperatively: the listener never
// blocks on the keyboard, so a cleared Alive flag is always noticed
// within one poll interval.
package operator

import (
	"fmt"
	"io"
	"time"

	"github.com/XYfactor1/joy-stick/govern"
	"github.com/XYfactor1/joy-stick/logger"
)

// KeyReader yields pending keypresses without blocking. Implemented by
// Terminal and by scripted readers in tests.
type KeyReader interface {
	ReadKey() (byte, bool)
}

const helpText = `keyboard commands:
  s   pause/resume joystick capture
  q   quit
  r   reconnect joystick
  l   show recent log entries
`

// number of log entries written by the 'l' command.
const logTailLength = 10

// Listener reads operator commands and toggles the run flags
// accordingly.
type Listener struct {
	keys     KeyReader
	flags    *govern.Flags
	output   io.Writer
	interval time.Duration

	done chan struct{}
}

// NewListener is the preferred method of initialisation for the Listener
// type. Run() must be called for the listener to do anything.
func NewListener(keys KeyReader, flags *govern.Flags, output io.Writer, interval time.Duration) *Listener {
	return &Listener{
		keys:     keys,
		flags:    flags,
		output:   output,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Run loops until the Alive flag is cleared. Intended to be run in its
// own goroutine. Sleeps between polls only when no input is pending, so
// pasted command sequences are consumed promptly.
func (lst *Listener) Run() {
	defer close(lst.done)

	fmt.Fprint(lst.output, helpText)

	for lst.flags.Alive.Load() {
		k, ok := lst.keys.ReadKey()
		if !ok {
			time.Sleep(lst.interval)
			continue
		}
		lst.dispatch(k)
	}
}

// Wait blocks until the Run() goroutine has finished.
func (lst *Listener) Wait() {
	<-lst.done
}

func (lst *Listener) dispatch(k byte) {
	switch k {
	case 's':
		if lst.flags.Polling.Load() {
			lst.flags.Polling.Store(false)
			fmt.Fprintln(lst.output, "\rcapture paused")
		} else {
			lst.flags.Polling.Store(true)
			fmt.Fprintln(lst.output, "\rcapture resumed")
		}

	case 'q':
		lst.flags.Quit()
		fmt.Fprintln(lst.output, "\rquitting...")

	case 'r':
		// reconnection is deliberately a placeholder. a newly plugged
		// device is picked up by the poller through a device-added event
		// without any action here
		if lst.flags.Polling.Load() {
			fmt.Fprintln(lst.output, "\rcapture active; a reconnected joystick is picked up automatically")
		} else {
			fmt.Fprintln(lst.output, "\rcapture is paused; press 's' to resume")
		}

	case 'l':
		fmt.Fprint(lst.output, "\r")
		logger.Tail(lst.output, logTailLength)

	case '\n', '\r':
		// ignore

	default:
		fmt.Fprintf(lst.output, "\runknown command: %c\n", k)
		fmt.Fprintln(lst.output, "valid commands: s=pause/resume, q=quit, r=reconnect, l=log")
	}
}
