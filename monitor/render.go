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

package monitor

import (
	"fmt"
	"strings"

	"github.com/XYfactor1/joy-stick/joystick"
)

// renderStatus builds the single status line for a snapshot. Axes are
// fixed width so the line does not jitter as the stick moves. The
// trailing pad covers the remains of longer lines printed earlier.
func renderStatus(snp joystick.Snapshot) string {
	s := strings.Builder{}

	s.WriteString("Axes: [")
	for _, a := range snp.Axes {
		s.WriteString(fmt.Sprintf("%5.2f ", a))
	}
	s.WriteString("] Buttons: [")
	for _, b := range snp.Buttons {
		if b {
			s.WriteString("1")
		} else {
			s.WriteString("0")
		}
	}
	s.WriteString("]        ")

	return s.String()
}
