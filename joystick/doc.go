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

// Package joystick reads a connected joystick or gamepad and maintains a
// snapshot of its most recent state.
//
// The Source interface is the device enumeration and event queue. The
// only production implementation sits on top of SDL2 but the poller never
// touches SDL directly, which keeps the event handling testable.
//
// The Poller runs in its own goroutine. It drains the Source on a fixed
// interval and writes normalised values into a State. Consumers take full
// copies of the state with the Snapshot() function and never hold the
// lock while rendering.
//
// One device at a time. A second device is ignored until the first is
// unplugged, at which point the next device-added event reopens capture.
package joystick
