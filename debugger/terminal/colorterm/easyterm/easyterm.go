// This file is part of Gopherv32.
//
// Gopherv32 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherv32 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherv32.  If not, see <https://www.gnu.org/licenses/>.

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It
// wraps the termios calls in functions with friendlier names and
// keeps hold of the attribute sets for the terminal modes the
// debugger switches between.
package easyterm

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// special input runes the debugger reacts to.
const (
	KeyInterrupt = rune(3)  // ctrl-c
	KeyEOF       = rune(4)  // ctrl-d
	KeyReturn    = rune(13) // carriage return in raw mode
	KeyBackspace = rune(127)
)

// Terminal is the main container for posix terminals. Usually
// embedded in other structs.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

// Initialise the terminal, noting the attribute set to restore later.
func (pt *Terminal) Initialise(input *os.File, output *os.File) error {
	pt.input = input
	pt.output = output

	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return err
	}

	// cbreak mode: no line buffering or echo but signal keys intact
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	return nil
}

// CleanUp restores the terminal to the mode it was found in.
func (pt *Terminal) CleanUp() {
	pt.CanonicalMode()
}

// CanonicalMode puts the terminal into normal, everyday line mode.
func (pt *Terminal) CanonicalMode() {
	termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
}

// CBreakMode puts the terminal into character-at-a-time mode.
func (pt *Terminal) CBreakMode() {
	termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.cbreakAttr)
}

// IsTTY returns false if the input is not a terminal (a pipe, a
// redirect), in which case cbreak input is pointless.
func (pt *Terminal) IsTTY() bool {
	var attr unix.Termios
	return termios.Tcgetattr(pt.input.Fd(), &attr) == nil
}
