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

// Package modalflag is a wrapper for the flag package in the standard
// library. It handles command lines of the form:
//
//	program [flags] [mode] [flags] file
//
// where sub-modes select entirely different flag sets. Parsing works
// layer by layer: declare the sub-modes and flags for a layer, call
// Parse(), inspect Mode(), then declare the next layer.
package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

// Modes provides an easy way of handling sub-modes on a command line.
// The Output field should be specified before calling Parse() or help
// messages will not be seen.
type Modes struct {
	// where to print help messages. defaults to io.Discard
	Output io.Writer

	flags *flag.FlagSet

	args    []string
	argsIdx int

	subModes []string
	path     []string
}

// Mode returns the most recently parsed sub-mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns all the modes encountered during parsing.
func (md *Modes) Path() string {
	return strings.Join(md.path, "/")
}

// NewArgs initialises the Modes struct with a command line (without
// the program name).
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode begins a new layer: further arguments are considered part of
// the newly selected mode.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.flags.SetOutput(io.Discard)
}

// AddSubModes for the next call to Parse(). The first in the list is
// the default when the command line names none of them. Comparison is
// case insensitive.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, s := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(s))
	}
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with command line processing. if sub-modes were
	// declared, the Mode() function says which one was selected
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// an error has occurred and is returned as the second value
	ParseError
)

// Parse the current layer of arguments.
func (md *Modes) Parse() (ParseResult, error) {
	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			md.help()
			return ParseHelp, nil
		}
		return ParseError, err
	}

	if len(md.subModes) > 0 {
		// the default sub-mode applies when the first argument names
		// none of the declared sub-modes
		mode := md.subModes[0]

		arg := strings.ToUpper(md.flags.Arg(0))
		for _, s := range md.subModes {
			if s == arg {
				mode = arg
				md.argsIdx += md.flagCount() + 1
				break
			}
		}

		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// flagCount returns the number of command line entries consumed by
// flags in the current layer.
func (md *Modes) flagCount() int {
	return len(md.args[md.argsIdx:]) - md.flags.NArg()
}

func (md *Modes) help() {
	if md.Output == nil {
		return
	}

	if len(md.subModes) > 0 {
		fmt.Fprintf(md.Output, "available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(md.Output, "    default: %s\n", md.subModes[0])
	}

	md.flags.SetOutput(md.Output)
	md.flags.PrintDefaults()
	md.flags.SetOutput(io.Discard)
}

// RemainingArgs returns the arguments left over after Parse(): those
// that are not flags or a listed sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered leftover argument, or the empty string.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddBool flag for the next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddString flag for the next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddUint64 flag for the next call to Parse().
func (md *Modes) AddUint64(name string, value uint64, usage string) *uint64 {
	return md.flags.Uint64(name, value, usage)
}

// AddDuration flag for the next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}
