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
	"sync"
)

// the maximum raw magnitude reported by the event source for an axis.
const maxRawAxis = 32767.0

// Snapshot is a full copy of the device state at one moment. Axes hold
// normalised values in the range [-1.0, 1.0] with the dead-zone already
// applied. Both slices are empty when no device is connected.
type Snapshot struct {
	Axes    []float32
	Buttons []bool
}

// State is the device state shared between the poller and the monitor.
// The lock is held only for the duration of a copy or a single field
// mutation, never across device or rendering I/O.
type State struct {
	crit     sync.Mutex
	current  Snapshot
	deadzone float32
}

// NewState is the preferred method of initialisation for the State type.
// Axis magnitudes below deadzone are stored as zero.
func NewState(deadzone float32) *State {
	return &State{
		deadzone: deadzone,
	}
}

// Snapshot returns a consistent full copy of the current state. The copy
// is never torn: a concurrent mutation is either wholly visible or not
// visible at all.
func (s *State) Snapshot() Snapshot {
	s.crit.Lock()
	defer s.crit.Unlock()

	snp := Snapshot{
		Axes:    make([]float32, len(s.current.Axes)),
		Buttons: make([]bool, len(s.current.Buttons)),
	}
	copy(snp.Axes, s.current.Axes)
	copy(snp.Buttons, s.current.Buttons)
	return snp
}

// Resize recreates the state with the axis and button counts of a newly
// connected device. All slots are zeroed.
func (s *State) Resize(numAxes int, numButtons int) {
	s.crit.Lock()
	defer s.crit.Unlock()

	s.current.Axes = make([]float32, numAxes)
	s.current.Buttons = make([]bool, numButtons)
}

// Reset discards the state when the device disconnects.
func (s *State) Reset() {
	s.crit.Lock()
	defer s.crit.Unlock()

	s.current.Axes = nil
	s.current.Buttons = nil
}

// SetAxis normalises a raw axis value and stores it. Values inside the
// dead-zone are stored as zero. An axis index outside the current bounds
// is dropped silently; devices occasionally report axes they never
// enumerated.
func (s *State) SetAxis(axis int, raw int16) {
	v := normalise(raw, s.deadzone)

	s.crit.Lock()
	defer s.crit.Unlock()

	if axis < 0 || axis >= len(s.current.Axes) {
		return
	}
	s.current.Axes[axis] = v
}

// SetButton stores a button state. An index outside the current bounds is
// dropped silently.
func (s *State) SetButton(button int, pressed bool) {
	s.crit.Lock()
	defer s.crit.Unlock()

	if button < 0 || button >= len(s.current.Buttons) {
		return
	}
	s.current.Buttons[button] = pressed
}

// normalise scales a raw axis value to [-1.0, 1.0] and applies the
// dead-zone. note that the most negative raw value overshoots the raw
// maximum by one, hence the clamp.
func normalise(raw int16, deadzone float32) float32 {
	v := float32(raw) / maxRawAxis

	if v > 1.0 {
		v = 1.0
	}
	if v < -1.0 {
		v = -1.0
	}

	if v < deadzone && v > -deadzone {
		v = 0.0
	}

	return v
}
