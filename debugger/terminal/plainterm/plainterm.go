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

// Package plainterm implements the terminal interface with nothing
// but buffered stdin/stdout. It works over pipes and in scripts,
// which is also what makes it the right fallback when the console is
// not a tty.
package plainterm

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// PlainTerminal is the default, featureless terminal for the
// debugger.
type PlainTerminal struct {
	input  *bufio.Scanner
	output io.Writer
}

// NewPlainTerminal is the preferred method of initialisation for the
// PlainTerminal type.
func NewPlainTerminal() *PlainTerminal {
	return &PlainTerminal{
		input:  bufio.NewScanner(os.Stdin),
		output: os.Stdout,
	}
}

// Initialise implements the terminal.Terminal interface.
func (pt *PlainTerminal) Initialise() error {
	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (pt *PlainTerminal) CleanUp() {
}

// TermRead implements the terminal.Terminal interface.
func (pt *PlainTerminal) TermRead(prompt string) (string, error) {
	fmt.Fprint(pt.output, prompt)
	if !pt.input.Scan() {
		if err := pt.input.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return pt.input.Text(), nil
}

// TermPrintLine implements the terminal.Terminal interface.
func (pt *PlainTerminal) TermPrintLine(s string) {
	fmt.Fprintln(pt.output, s)
}
