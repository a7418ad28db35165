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

// Package curated is an implementation of the error interface that keeps
// hold of the pattern string the error was created with. The pattern can
// then be used to test for the presence of a specific error with the Is()
// and Has() functions.
//
// Patterns intended for testing should be defined as constants near the
// code that creates the error. For example:
//
//	const NotATerminal = "terminal: input is not a terminal (%s)"
//
//	curated.Errorf(NotATerminal, filename)
//
// Error messages created this way are also normalised such that adjacent
// duplicate message parts are removed. This keeps messages readable when
// errors are wrapped by the same pattern more than once.
package curated
