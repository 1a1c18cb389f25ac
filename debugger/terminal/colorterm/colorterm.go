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

// Package colorterm implements the terminal interface on a raw-mode
// posix terminal: a coloured prompt, backspace editing and ctrl-c /
// ctrl-d handling. The underlying termios plumbing is in the easyterm
// package.
package colorterm

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/gopherv32/debugger/terminal/colorterm/ansi"
	"github.com/jetsetilly/gopherv32/debugger/terminal/colorterm/easyterm"
)

// ColorTerminal implements the terminal interface for an ANSI-capable
// tty.
type ColorTerminal struct {
	easyterm.Terminal
	reader *bufio.Reader
}

// NewColorTerminal is the preferred method of initialisation for the
// ColorTerminal type.
func NewColorTerminal() *ColorTerminal {
	return &ColorTerminal{
		reader: bufio.NewReader(os.Stdin),
	}
}

// Initialise implements the terminal.Terminal interface.
func (ct *ColorTerminal) Initialise() error {
	return ct.Terminal.Initialise(os.Stdin, os.Stdout)
}

// CleanUp implements the terminal.Terminal interface.
func (ct *ColorTerminal) CleanUp() {
	ct.Terminal.CleanUp()
}

// TermRead implements the terminal.Terminal interface. Input is read
// a rune at a time in cbreak mode so that editing can be handled
// here, with echo under our control.
func (ct *ColorTerminal) TermRead(prompt string) (string, error) {
	ct.CBreakMode()
	defer ct.CanonicalMode()

	input := make([]rune, 0, 64)

	redraw := func() {
		fmt.Printf("\r%s%s%s%s%s", ansi.ClearLine, ansi.Bold, prompt, ansi.NormalMode, string(input))
	}
	redraw()

	for {
		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return "", err
		}

		switch r {
		case easyterm.KeyInterrupt:
			fmt.Println()
			return "", io.EOF

		case easyterm.KeyEOF:
			fmt.Println()
			return "", io.EOF

		case easyterm.KeyReturn, '\n':
			fmt.Println()
			return string(input), nil

		case easyterm.KeyBackspace:
			if len(input) > 0 {
				input = input[:len(input)-1]
				redraw()
			}

		default:
			if r >= 32 {
				input = append(input, r)
				redraw()
			}
		}
	}
}

// TermPrintLine implements the terminal.Terminal interface.
func (ct *ColorTerminal) TermPrintLine(s string) {
	fmt.Printf("%s%s%s\n", ansi.PenCyan, s, ansi.NormalMode)
}
