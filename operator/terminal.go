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

package operator

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/XYfactor1/joy-stick/curated"
)

// error pattern for terminal initialisation failure.
const NotATerminal = "terminal: %v"

// Terminal reads single characters from a posix terminal without line
// buffering and without blocking. A wrapper for "github.com/pkg/term/termios"
// in the manner of the debugger terminals found in full emulator projects.
type Terminal struct {
	input *os.File

	// terminal attributes as they were before NewTerminal(), restored by
	// Restore()
	canAttr unix.Termios

	// cbreak attributes with VMIN and VTIME zeroed, making read() return
	// immediately when no input is pending
	cbreakAttr unix.Termios
}

// NewTerminal puts the input file into non-blocking cbreak mode. The
// returned Terminal must be Restore()d before the program exits or the
// user's shell is left in a sorry state.
func NewTerminal(input *os.File) (*Terminal, error) {
	trm := &Terminal{input: input}

	if err := termios.Tcgetattr(input.Fd(), &trm.canAttr); err != nil {
		return nil, curated.Errorf(NotATerminal, err)
	}

	trm.cbreakAttr = trm.canAttr
	termios.Cfmakecbreak(&trm.cbreakAttr)
	trm.cbreakAttr.Cc[unix.VMIN] = 0
	trm.cbreakAttr.Cc[unix.VTIME] = 0

	if err := termios.Tcsetattr(input.Fd(), termios.TCIFLUSH, &trm.cbreakAttr); err != nil {
		return nil, curated.Errorf(NotATerminal, err)
	}

	return trm, nil
}

// ReadKey returns the next pending character. The second return value is
// false when no input is waiting. Never blocks.
func (trm *Terminal) ReadKey() (byte, bool) {
	buf := make([]byte, 1)
	n, err := unix.Read(int(trm.input.Fd()), buf)
	if err != nil || n == 0 {
		return 0, false
	}
	return buf[0], true
}

// Restore returns the input file to the attributes it had before
// NewTerminal().
func (trm *Terminal) Restore() {
	_ = termios.Tcsetattr(trm.input.Fd(), termios.TCIFLUSH, &trm.canAttr)
}
