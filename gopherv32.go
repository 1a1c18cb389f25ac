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

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jetsetilly/gopherv32/debugger"
	"github.com/jetsetilly/gopherv32/debugger/terminal"
	"github.com/jetsetilly/gopherv32/debugger/terminal/colorterm"
	"github.com/jetsetilly/gopherv32/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopherv32/hardware"
	"github.com/jetsetilly/gopherv32/imageloader"
	"github.com/jetsetilly/gopherv32/logger"
	"github.com/jetsetilly/gopherv32/modalflag"
	"github.com/jetsetilly/gopherv32/performance"
	"github.com/jetsetilly/gopherv32/statsview"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "DEBUG", "PERFORMANCE")

	if r, err := md.Parse(); r != modalflag.ParseContinue {
		if err != nil {
			fmt.Fprintf(os.Stderr, "* %v\n", err)
			os.Exit(10)
		}
		return
	}

	var err error

	switch md.Mode() {
	case "RUN":
		err = play(md)
	case "DEBUG":
		err = debug(md)
	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(10)
	}
}

// attach builds a machine and loads the program named on the command
// line.
func attach(md *modalflag.Modes, origin uint32) (*hardware.RV32, error) {
	if md.GetArg(0) == "" {
		return nil, fmt.Errorf("no program file specified")
	}

	rv := hardware.NewRV32(os.Stdout)
	if err := imageloader.Load(rv, md.GetArg(0), origin); err != nil {
		return nil, err
	}

	return rv, nil
}

func play(md *modalflag.Modes) error {
	md.NewMode()
	cycles := md.AddUint64("cycles", 0, "cycle budget (0 = default)")
	origin := md.AddUint64("origin", uint64(imageloader.DefaultOrigin), "load/start address")
	haltOnBreak := md.AddBool("haltonbreak", true, "halt when an EBREAK retires")
	verbose := md.AddBool("log", false, "echo the application log")

	if r, err := md.Parse(); r != modalflag.ParseContinue || err != nil {
		return err
	}

	if *verbose {
		logger.SetEcho(os.Stderr)
	}

	rv, err := attach(md, uint32(*origin))
	if err != nil {
		return err
	}
	rv.Pipe.HaltOnBreak = *haltOnBreak

	res := rv.Run(*cycles)
	fmt.Println(res)

	return nil
}

func debug(md *modalflag.Modes) error {
	md.NewMode()
	origin := md.AddUint64("origin", uint64(imageloader.DefaultOrigin), "load/start address")
	plain := md.AddBool("plain", false, "use the plain terminal")

	if r, err := md.Parse(); r != modalflag.ParseContinue || err != nil {
		return err
	}

	rv, err := attach(md, uint32(*origin))
	if err != nil {
		return err
	}

	var term terminal.Terminal
	if *plain {
		term = plainterm.NewPlainTerminal()
	} else {
		term = colorterm.NewColorTerminal()
	}

	return debugger.NewDebugger(rv, term).Start()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()
	duration := md.AddDuration("duration", 5*time.Second, "measurement duration")
	origin := md.AddUint64("origin", uint64(imageloader.DefaultOrigin), "load/start address")
	profile := md.AddBool("profile", false, "write a CPU profile of the run")
	stats := md.AddBool("statsview", false, "launch the statsview server (requires the statsview build tag)")

	if r, err := md.Parse(); r != modalflag.ParseContinue || err != nil {
		return err
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	rv, err := attach(md, uint32(*origin))
	if err != nil {
		return err
	}

	return performance.Check(os.Stdout, rv, *duration, *profile)
}
