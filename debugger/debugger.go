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

package debugger

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/gopherv32/curated"
	"github.com/jetsetilly/gopherv32/debugger/terminal"
	"github.com/jetsetilly/gopherv32/hardware"
	"github.com/jetsetilly/gopherv32/hardware/csr"
	"github.com/jetsetilly/gopherv32/logger"
)

// Error patterns returned by the debugger.
const (
	CommandError = "debugger: %v"
)

const prompt = "[gopherv32] "

// stage labels for the PIPE command, upstream first.
var stageLabels = [4]string{"fetch/decode  ", "decode/execute", "execute/memory", "memory/wback  "}

// Debugger is the interactive front-end to a machine.
type Debugger struct {
	rv   *hardware.RV32
	term terminal.Terminal

	breakpoints map[uint32]bool
	running     bool
}

// NewDebugger is the preferred method of initialisation for the
// Debugger type. The machine should already have a program attached.
func NewDebugger(rv *hardware.RV32, term terminal.Terminal) *Debugger {
	return &Debugger{
		rv:          rv,
		term:        term,
		breakpoints: make(map[uint32]bool),
	}
}

// Start the interactive session. Returns when the user quits or input
// is exhausted.
func (dbg *Debugger) Start() error {
	if err := dbg.term.Initialise(); err != nil {
		return curated.Errorf(CommandError, err)
	}
	defer dbg.term.CleanUp()

	dbg.running = true
	for dbg.running {
		line, err := dbg.term.TermRead(prompt)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return curated.Errorf(CommandError, err)
		}

		dbg.dispatch(line)
	}

	return nil
}

func (dbg *Debugger) dispatch(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	cmd := strings.ToUpper(fields[0])
	args := fields[1:]

	switch cmd {
	case "STEP", "S":
		n := 1
		if len(args) > 0 {
			n = dbg.number(args[0], 1)
		}
		for i := 0; i < n && !dbg.rv.Pipe.Halted(); i++ {
			dbg.rv.Step()
		}
		dbg.term.TermPrintLine(dbg.rv.Pipe.String())

	case "RUN", "R":
		limit := uint64(hardware.DefaultCycleBudget)
		if len(args) > 0 {
			limit = dbg.rv.Pipe.Cycles + uint64(dbg.number(args[0], 0))
		}
		dbg.runTo(limit)
		dbg.term.TermPrintLine(dbg.rv.Pipe.String())

	case "REGS":
		dbg.term.TermPrintLine(fmt.Sprintf("PC: %s", dbg.rv.PC))
		dbg.term.TermPrintLine(dbg.rv.Regs.String())

	case "CSR":
		if len(args) > 0 {
			if addr, ok := csr.Address(strings.ToLower(args[0])); ok {
				dbg.term.TermPrintLine(fmt.Sprintf("%s: %#08x", args[0], dbg.rv.CSR.Read(addr)))
			} else {
				dbg.term.TermPrintLine(fmt.Sprintf("unknown CSR (%s)", args[0]))
			}
		} else {
			dbg.term.TermPrintLine(dbg.rv.CSR.String())
		}

	case "MEM", "M":
		if len(args) == 0 {
			dbg.term.TermPrintLine("MEM requires an address")
			return
		}
		addr := uint32(dbg.number(args[0], 0))
		length := 64
		if len(args) > 1 {
			length = dbg.number(args[1], 64)
		}
		dbg.term.TermPrintLine(dbg.rv.Mem.Dump(addr, length))

	case "PIPE", "P":
		for i, l := range dbg.rv.Pipe.Latches() {
			dbg.term.TermPrintLine(fmt.Sprintf("%s: %s", stageLabels[i], l))
		}
		dbg.term.TermPrintLine(fmt.Sprintf("cycles=%d stalls=%d flushes=%d retired=%d",
			dbg.rv.Pipe.Cycles, dbg.rv.Pipe.Stalls, dbg.rv.Pipe.Flushes, dbg.rv.Pipe.Retired))

	case "UART":
		dbg.term.TermPrintLine(string(dbg.rv.UART.Stream()))

	case "BREAK", "B":
		if len(args) == 0 {
			for addr := range dbg.breakpoints {
				dbg.term.TermPrintLine(fmt.Sprintf("break @ %#08x", addr))
			}
			return
		}
		addr := uint32(dbg.number(args[0], 0))
		dbg.breakpoints[addr] = true
		dbg.term.TermPrintLine(fmt.Sprintf("break @ %#08x", addr))

	case "CLEAR":
		dbg.breakpoints = make(map[uint32]bool)

	case "VIZ":
		filename := "gopherv32.dot"
		if len(args) > 0 {
			filename = args[0]
		}
		dbg.visualise(filename)

	case "LOG":
		logger.Tail(os.Stdout, 20)

	case "QUIT", "Q", "EXIT":
		dbg.running = false

	case "HELP", "H":
		dbg.term.TermPrintLine("STEP [n], RUN [cycles], REGS, CSR [name], MEM addr [len],")
		dbg.term.TermPrintLine("PIPE, UART, BREAK [addr], CLEAR, VIZ [file], LOG, QUIT")

	default:
		dbg.term.TermPrintLine(fmt.Sprintf("unknown command (%s). HELP lists commands", cmd))
	}
}

// runTo ticks the machine until the cycle limit, a breakpoint or a
// pipeline halt.
func (dbg *Debugger) runTo(limit uint64) {
	for !dbg.rv.Pipe.Halted() && dbg.rv.Pipe.Cycles < limit {
		dbg.rv.Step()
		if dbg.breakpoints[dbg.rv.PC.Address()] {
			dbg.term.TermPrintLine(fmt.Sprintf("break @ %s", dbg.rv.PC))
			return
		}
	}
	if dbg.rv.Pipe.Halted() {
		dbg.term.TermPrintLine(fmt.Sprintf("halted: %s", dbg.rv.Pipe.HaltReason()))
	}
}

// visualise writes a graphviz dot graph of the machine structure,
// courtesy of the memviz package.
func (dbg *Debugger) visualise(filename string) {
	f, err := os.Create(filename)
	if err != nil {
		dbg.term.TermPrintLine(fmt.Sprintf("VIZ: %v", err))
		return
	}
	defer f.Close()

	memviz.Map(f, dbg.rv)
	dbg.term.TermPrintLine(fmt.Sprintf("machine graph written to %s", filename))
}

// number parses a numeric argument, falling back to a default.
func (dbg *Debugger) number(s string, def int) int {
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		dbg.term.TermPrintLine(fmt.Sprintf("bad number (%s)", s))
		return def
	}
	return int(v)
}
