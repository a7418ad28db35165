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
	"github.com/veandco/go-sdl2/sdl"

	"github.com/XYfactor1/joy-stick/curated"
)

// error patterns for the SDL source.
const (
	InitFailed = "sdl: %v"
	OpenFailed = "sdl: cannot open device %d"
)

// sdlSource implements the Source interface with the SDL2 joystick
// subsystem.
type sdlSource struct{}

// NewSource initialises the SDL joystick subsystem. A failure here is
// fatal to the program.
func NewSource() (Source, error) {
	if err := sdl.Init(sdl.INIT_JOYSTICK | sdl.INIT_EVENTS); err != nil {
		return nil, curated.Errorf(InitFailed, err)
	}

	// joystick events are delivered through the event queue rather than
	// requiring an explicit JoystickUpdate() on every poll
	sdl.JoystickEventState(sdl.ENABLE)

	return &sdlSource{}, nil
}

func (src *sdlSource) NumDevices() int {
	return sdl.NumJoysticks()
}

func (src *sdlSource) Open(index int) (Device, error) {
	joy := sdl.JoystickOpen(index)
	if joy == nil {
		return nil, curated.Errorf(OpenFailed, index)
	}
	return &sdlDevice{joy: joy}, nil
}

// Poll translates the next queued SDL joystick event. SDL events that do
// not relate to joysticks are skipped. Returns nil when the queue is
// drained.
func (src *sdlSource) Poll() Event {
	for {
		ev := sdl.PollEvent()
		if ev == nil {
			return nil
		}

		switch ev := ev.(type) {
		case *sdl.JoyAxisEvent:
			return EventAxisMotion{
				ID:   DeviceID(ev.Which),
				Axis: int(ev.Axis),
				Raw:  ev.Value,
			}
		case *sdl.JoyButtonEvent:
			return EventButtonChange{
				ID:      DeviceID(ev.Which),
				Button:  int(ev.Button),
				Pressed: ev.State == sdl.PRESSED,
			}
		case *sdl.JoyDeviceAddedEvent:
			return EventDeviceAdded{
				Index: int(ev.Which),
			}
		case *sdl.JoyDeviceRemovedEvent:
			return EventDeviceRemoved{
				ID: DeviceID(ev.Which),
			}
		}
	}
}

func (src *sdlSource) Quit() {
	sdl.Quit()
}

type sdlDevice struct {
	joy *sdl.Joystick
}

func (dev *sdlDevice) Name() string {
	return dev.joy.Name()
}

func (dev *sdlDevice) ID() DeviceID {
	return DeviceID(dev.joy.InstanceID())
}

func (dev *sdlDevice) NumAxes() int {
	return dev.joy.NumAxes()
}

func (dev *sdlDevice) NumButtons() int {
	return dev.joy.NumButtons()
}

func (dev *sdlDevice) Close() {
	dev.joy.Close()
}
