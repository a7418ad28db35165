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

// Source enumerates input devices and yields their events. Poll() must
// not block: it returns nil once the queue is drained.
type Source interface {
	NumDevices() int
	Open(index int) (Device, error)
	Poll() Event
	Quit()
}

// Device is an open device handle. Owned exclusively by the Poller; no
// other goroutine touches it.
type Device interface {
	Name() string
	ID() DeviceID
	NumAxes() int
	NumButtons() int
	Close()
}
