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
	"fmt"

	"github.com/jetsetilly/gopherv32/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherv32/hardware/cpu/registers"
	"github.com/jetsetilly/gopherv32/hardware/pipeline"
)

// Result is the completion record returned by Run(). Memory and CSR
// contents are inspected through the live machine rather than copied
// wholesale.
type Result struct {
	Cycles  uint64
	Retired uint64
	Stalls  uint64
	Flushes uint64

	Halt pipeline.HaltReason

	// every retired record in program order, bubbles included
	Log []*instructions.Instruction

	// snapshot of the register file at halt
	Registers [registers.NumRegisters]uint32

	// the bytes the guest transmitted through the UART
	UART []byte
}

// CPI returns the cycles-per-instruction figure for the run.
func (r Result) CPI() float64 {
	if r.Retired == 0 {
		return 0
	}
	return float64(r.Cycles) / float64(r.Retired)
}

func (r Result) String() string {
	return fmt.Sprintf("cycles=%d retired=%d stalls=%d flushes=%d cpi=%.2f (%s)",
		r.Cycles, r.Retired, r.Stalls, r.Flushes, r.CPI(), r.Halt)
}
