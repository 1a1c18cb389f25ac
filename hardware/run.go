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

package hardware

import (
	"github.com/jetsetilly/gopherv32/hardware/pipeline"
)

// DefaultCycleBudget bounds a Run() when the caller does not care to
// choose one. Generous for test programs while still terminating a
// runaway guest.
const DefaultCycleBudget = 10_000_000

// Step the machine by a single clock cycle.
func (rv *RV32) Step() {
	rv.Pipe.Tick()
}

// Run the machine until the pipeline halts or the cycle budget is
// spent. A budget of zero means DefaultCycleBudget. Returns the
// completion record.
func (rv *RV32) Run(budget uint64) Result {
	if budget == 0 {
		budget = DefaultCycleBudget
	}

	for !rv.Pipe.Halted() {
		if rv.Pipe.Cycles >= budget {
			rv.Pipe.Halt(pipeline.Budget)
			break
		}
		rv.Pipe.Tick()
	}

	return rv.result()
}

// result gathers the completion record from the machine state.
func (rv *RV32) result() Result {
	return Result{
		Cycles:    rv.Pipe.Cycles,
		Retired:   rv.Pipe.Retired,
		Stalls:    rv.Pipe.Stalls,
		Flushes:   rv.Pipe.Flushes,
		Halt:      rv.Pipe.HaltReason(),
		Log:       rv.Pipe.Log,
		Registers: rv.Regs.Snapshot(),
		UART:      rv.UART.Stream(),
	}
}
