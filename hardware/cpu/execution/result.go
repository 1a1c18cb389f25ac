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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopherv32/hardware/csr"
)

// Kind tags the shape of a Result.
type Kind int

// List of valid Kind values.
const (
	// the instruction produced nothing for the later stages (bubbles,
	// FENCE, FENCE.I). distinct from Value with a zero value
	None Kind = iota

	// an arithmetic value destined for the destination register
	Value

	// a branch that did not meet its predicate
	BranchNotTaken

	// a branch that met its predicate. Target is the redirect address
	BranchTaken

	// an unconditional jump. Target is the redirect address and Value
	// is the link value for the destination register
	Jump

	// a memory read request, completed by the memory stage
	Load

	// a memory write request, completed by the memory stage
	Store

	// a CSR read-modify-write request, completed at writeback
	CSR

	// a synchronous exception (ECALL, EBREAK, illegal instruction)
	Trap

	// an MRET. the pipeline asks the trap controller for the return
	// address
	TrapReturn
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Value:
		return "value"
	case BranchNotTaken:
		return "branch not taken"
	case BranchTaken:
		return "branch taken"
	case Jump:
		return "jump"
	case Load:
		return "load"
	case Store:
		return "store"
	case CSR:
		return "csr"
	case Trap:
		return "trap"
	case TrapReturn:
		return "trap return"
	}
	return "unknown result kind"
}

// Result is the descriptor produced by the execute stage and stashed
// in the instruction record. Which fields are meaningful depends on
// the Kind.
type Result struct {
	Kind Kind

	// arithmetic result, link value or loaded value. for loads the
	// field is filled in by the memory stage
	Value uint32

	// redirect address for taken branches and jumps
	Target uint32

	// memory request. Data is the store value, read from the register
	// file by the memory stage
	Addr   uint32
	Width  int
	Signed bool
	Data   uint32

	// CSR request. Suppress indicates the zero-operand shortcut
	CSROp      csr.AtomicOp
	CSRAddr    uint16
	CSROperand uint32
	Suppress   bool

	// trap request
	Cause uint32
	Tval  uint32
}

func (r Result) String() string {
	switch r.Kind {
	case Value:
		return fmt.Sprintf("value %#08x", r.Value)
	case BranchTaken:
		return fmt.Sprintf("branch taken -> %#08x", r.Target)
	case Jump:
		return fmt.Sprintf("jump -> %#08x (link %#08x)", r.Target, r.Value)
	case Load:
		return fmt.Sprintf("load %d bytes @ %#08x", r.Width, r.Addr)
	case Store:
		return fmt.Sprintf("store %d bytes @ %#08x", r.Width, r.Addr)
	case CSR:
		return fmt.Sprintf("csr %s %#03x", r.CSROp, r.CSRAddr)
	case Trap:
		return fmt.Sprintf("trap cause %d", r.Cause)
	}
	return r.Kind.String()
}
