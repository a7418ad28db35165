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

package joystick

import (
	"runtime"
	"time"

	"github.com/XYfactor1/joy-stick/govern"
	"github.com/XYfactor1/joy-stick/logger"
)

// Poller drains the event source in the background and keeps a State
// current. It is the exclusive owner of the open device handle.
type Poller struct {
	src      Source
	state    *State
	flags    *govern.Flags
	interval time.Duration

	// the currently open device. nil when nothing is connected. only
	// ever touched from the Run() goroutine
	dev Device

	done chan struct{}
}

// NewPoller is the preferred method of initialisation for the Poller
// type. Run() must be called for the poller to do anything.
func NewPoller(src Source, state *State, flags *govern.Flags, interval time.Duration) *Poller {
	return &Poller{
		src:      src,
		state:    state,
		flags:    flags,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Run loops until the Alive flag is cleared. Intended to be run in its
// own goroutine. The sleep between drains is a throttle, not a timeout:
// it bounds CPU usage at the cost of up to one interval of input latency.
func (pol *Poller) Run() {
	defer close(pol.done)

	// SDL prefers its event queue to be pumped from a single thread
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	// open the first device enumerated at startup, if there is one
	if pol.src.NumDevices() > 0 {
		pol.open(0)
	}

	for pol.flags.Alive.Load() {
		if pol.flags.Polling.Load() {
			pol.drain()
		}
		time.Sleep(pol.interval)
	}

	// release the device once, after the loop has exited
	if pol.dev != nil {
		pol.dev.Close()
		pol.dev = nil
	}
}

// Wait blocks until the Run() goroutine has finished.
func (pol *Poller) Wait() {
	<-pol.done
}

// drain consumes every currently queued event before returning.
func (pol *Poller) drain() {
	for {
		ev := pol.src.Poll()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case EventAxisMotion:
			if pol.dev != nil {
				pol.state.SetAxis(ev.Axis, ev.Raw)
			}

		case EventButtonChange:
			if pol.dev != nil {
				pol.state.SetButton(ev.Button, ev.Pressed)
			}

		case EventDeviceAdded:
			if pol.dev == nil {
				pol.open(ev.Index)
			}

		case EventDeviceRemoved:
			if pol.dev != nil && ev.ID == pol.dev.ID() {
				pol.dev.Close()
				pol.dev = nil
				pol.state.Reset()
				logger.Log(logger.Allow, "joystick", "device disconnected")
			}
		}
	}
}

func (pol *Poller) open(index int) {
	dev, err := pol.src.Open(index)
	if err != nil {
		// device absence is transient. a later device-added event will
		// try again
		logger.Logf(logger.Allow, "joystick", "%v", err)
		return
	}

	pol.dev = dev
	pol.state.Resize(dev.NumAxes(), dev.NumButtons())

	logger.Logf(logger.Allow, "joystick", "connected: %s (id %d) axes=%d buttons=%d",
		dev.Name(), dev.ID(), dev.NumAxes(), dev.NumButtons())
}
