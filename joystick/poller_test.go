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
	"testing"
	"time"

	"github.com/XYfactor1/joy-stick/curated"
	"github.com/XYfactor1/joy-stick/govern"
	"github.com/XYfactor1/joy-stick/test"
)

type stubDevice struct {
	name    string
	id      DeviceID
	axes    int
	buttons int
	closed  bool
}

func (dev *stubDevice) Name() string    { return dev.name }
func (dev *stubDevice) ID() DeviceID    { return dev.id }
func (dev *stubDevice) NumAxes() int    { return dev.axes }
func (dev *stubDevice) NumButtons() int { return dev.buttons }
func (dev *stubDevice) Close()          { dev.closed = true }

type stubSource struct {
	devices []*stubDevice
	queue   []Event
}

func (src *stubSource) NumDevices() int {
	return len(src.devices)
}

func (src *stubSource) Open(index int) (Device, error) {
	if index < 0 || index >= len(src.devices) {
		return nil, curated.Errorf(OpenFailed, index)
	}
	return src.devices[index], nil
}

func (src *stubSource) Poll() Event {
	if len(src.queue) == 0 {
		return nil
	}
	ev := src.queue[0]
	src.queue = src.queue[1:]
	return ev
}

func (src *stubSource) Quit() {}

func TestDeviceAdded(t *testing.T) {
	dev := &stubDevice{name: "pad", id: 7, axes: 2, buttons: 4}
	src := &stubSource{
		devices: []*stubDevice{dev},
		queue:   []Event{EventDeviceAdded{Index: 0}},
	}

	state := NewState(0.1)
	pol := NewPoller(src, state, govern.NewFlags(), time.Millisecond)

	pol.drain()

	// the snapshot has been sized to match the device
	snp := state.Snapshot()
	test.Equate(t, len(snp.Axes), 2)
	test.Equate(t, len(snp.Buttons), 4)

	// a second device-added event is ignored while a device is open
	other := &stubDevice{name: "other", id: 8, axes: 6, buttons: 10}
	src.devices = append(src.devices, other)
	src.queue = []Event{EventDeviceAdded{Index: 1}}
	pol.drain()

	snp = state.Snapshot()
	test.Equate(t, len(snp.Axes), 2)
	test.Equate(t, len(snp.Buttons), 4)
}

func TestDeviceRemoved(t *testing.T) {
	dev := &stubDevice{name: "pad", id: 7, axes: 2, buttons: 4}
	src := &stubSource{
		devices: []*stubDevice{dev},
		queue: []Event{
			EventDeviceAdded{Index: 0},

			// removal of a device that is not the open one is a no-op
			EventDeviceRemoved{ID: 99},
		},
	}

	state := NewState(0.1)
	pol := NewPoller(src, state, govern.NewFlags(), time.Millisecond)
	pol.drain()

	test.Equate(t, dev.closed, false)
	snp := state.Snapshot()
	test.Equate(t, len(snp.Buttons), 4)

	// removal of the open device closes it and resets the state
	src.queue = []Event{EventDeviceRemoved{ID: 7}}
	pol.drain()

	test.Equate(t, dev.closed, true)
	snp = state.Snapshot()
	test.Equate(t, len(snp.Axes), 0)
	test.Equate(t, len(snp.Buttons), 0)
}

func TestEventDispatch(t *testing.T) {
	dev := &stubDevice{name: "pad", id: 7, axes: 2, buttons: 4}
	src := &stubSource{
		devices: []*stubDevice{dev},
		queue: []Event{
			EventDeviceAdded{Index: 0},
			EventAxisMotion{ID: 7, Axis: 0, Raw: 16383},
			EventAxisMotion{ID: 7, Axis: 1, Raw: 3000}, // dead-zoned
			EventButtonChange{ID: 7, Button: 1, Pressed: true},

			// out of range indices are dropped silently
			EventAxisMotion{ID: 7, Axis: 5, Raw: 32767},
			EventButtonChange{ID: 7, Button: 9, Pressed: true},
		},
	}

	state := NewState(0.1)
	pol := NewPoller(src, state, govern.NewFlags(), time.Millisecond)

	// the whole queue is consumed in a single drain
	pol.drain()
	test.Equate(t, len(src.queue), 0)

	snp := state.Snapshot()
	if snp.Axes[0] < 0.49 || snp.Axes[0] > 0.51 {
		t.Errorf("expected half deflection, got %f", snp.Axes[0])
	}
	test.Equate(t, snp.Axes[1], 0.0)
	test.Equate(t, snp.Buttons[0], false)
	test.Equate(t, snp.Buttons[1], true)
}

func TestEventsWithNoOpenDevice(t *testing.T) {
	src := &stubSource{
		queue: []Event{
			EventAxisMotion{ID: 7, Axis: 0, Raw: 32767},
			EventButtonChange{ID: 7, Button: 0, Pressed: true},
			EventDeviceRemoved{ID: 7},
		},
	}

	state := NewState(0.1)
	pol := NewPoller(src, state, govern.NewFlags(), time.Millisecond)

	// nothing to do but also nothing to go wrong
	pol.drain()

	snp := state.Snapshot()
	test.Equate(t, len(snp.Axes), 0)
	test.Equate(t, len(snp.Buttons), 0)
}

func TestRunTermination(t *testing.T) {
	dev := &stubDevice{name: "pad", id: 7, axes: 2, buttons: 4}
	src := &stubSource{devices: []*stubDevice{dev}}

	state := NewState(0.1)
	flags := govern.NewFlags()
	pol := NewPoller(src, state, flags, time.Millisecond)

	go pol.Run()

	// the device enumerated at startup is opened without waiting for a
	// device-added event
	deadline := time.Now().Add(time.Second)
	for {
		if snp := state.Snapshot(); len(snp.Buttons) == 4 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("poller did not open the startup device")
		}
		time.Sleep(time.Millisecond)
	}

	flags.Quit()
	pol.Wait()

	// the device is released after the loop exits
	test.Equate(t, dev.closed, true)
}
