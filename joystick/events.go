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

// DeviceID identifies a connected device for the lifetime of its
// connection. Assigned by the event source at connect time.
type DeviceID int32

// Event represents a joystick event. The underlying type can be assumed
// to be one of the Event* types in this package.
type Event interface{}

// EventAxisMotion is sent when an axis moves. Raw is the unnormalised
// value as reported by the device.
type EventAxisMotion struct {
	ID   DeviceID
	Axis int
	Raw  int16
}

// EventButtonChange is sent when a button is pressed or released.
type EventButtonChange struct {
	ID      DeviceID
	Button  int
	Pressed bool
}

// EventDeviceAdded is sent when a device is plugged in. Index is the
// enumeration index to use with Source.Open().
type EventDeviceAdded struct {
	Index int
}

// EventDeviceRemoved is sent when a device is unplugged.
type EventDeviceRemoved struct {
	ID DeviceID
}
