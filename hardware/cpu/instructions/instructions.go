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

package instructions

import (
	"fmt"

	"github.com/jetsetilly/gopherv32/hardware/cpu/execution"
)

// NoRegister marks an absent register operand.
const NoRegister = -1

// Instruction is the decoded instruction record that travels through
// the pipeline latches. It is created at fetch, mutated at execute
// (the Result slot) and consumed at writeback.
type Instruction struct {
	Op    Operation
	Class Class

	// register operands. NoRegister when absent. Rd is NoRegister for
	// branches, stores, FENCE/FENCE.I, ECALL, EBREAK and MRET
	Rd  int
	Rs1 int
	Rs2 int

	// sign-extended immediate
	Imm int32

	// CSR operands. CSRAddr is the 12-bit CSR address; UImm the 5-bit
	// zero-extended immediate of the CSR -I variants
	CSRAddr uint16
	UImm    uint8

	// the address the instruction was fetched from
	PC uint32

	// the raw 32-bit encoding when fetched from a binary image
	Encoding uint32

	// the result slot, populated by the execute stage
	Result execution.Result
}

// New is the preferred method of initialisation for the Instruction
// type. Register operands start out absent.
func New(op Operation) *Instruction {
	return &Instruction{
		Op:    op,
		Class: ClassOf(op),
		Rd:    NoRegister,
		Rs1:   NoRegister,
		Rs2:   NoRegister,
	}
}

// NewBubble returns a fresh bubble record.
func NewBubble() *Instruction {
	return New(BUBBLE)
}

// Copy returns a fresh copy of the instruction with an empty result
// slot. Fetch returns copies so that the same program location can be
// in flight more than once.
func (ins *Instruction) Copy() *Instruction {
	n := *ins
	n.Result = execution.Result{}
	return &n
}

// IsBubble returns true if the record is a bubble.
func (ins *Instruction) IsBubble() bool {
	return ins.Class == Bubble
}

// LiveDest returns true if the instruction will write a destination
// register that later instructions can depend on. Writes to register
// zero are discarded so they never create a dependency.
func (ins *Instruction) LiveDest() bool {
	return ins.Rd > 0
}

// HazardSources returns the source registers the instruction reads at
// the execute stage. Register zero never participates in a hazard.
//
// A store's data register is absent from the list: store data is read
// at the memory stage, by which time any in-flight producer has
// retired.
func (ins *Instruction) HazardSources() []int {
	srcs := make([]int, 0, 2)
	if ins.Rs1 > 0 {
		srcs = append(srcs, ins.Rs1)
	}
	if ins.Rs2 > 0 && ins.Class != Store {
		srcs = append(srcs, ins.Rs2)
	}
	return srcs
}

func (ins *Instruction) String() string {
	switch ins.Class {
	case Bubble:
		return "BUBBLE"
	case Register:
		return fmt.Sprintf("%s R%d, R%d, R%d", ins.Op, ins.Rd, ins.Rs1, ins.Rs2)
	case Immediate:
		return fmt.Sprintf("%s R%d, R%d, %d", ins.Op, ins.Rd, ins.Rs1, ins.Imm)
	case Load:
		return fmt.Sprintf("%s R%d, %d(R%d)", ins.Op, ins.Rd, ins.Imm, ins.Rs1)
	case Store:
		return fmt.Sprintf("%s R%d, %d(R%d)", ins.Op, ins.Rs2, ins.Imm, ins.Rs1)
	case Branch:
		return fmt.Sprintf("%s R%d, R%d, %d", ins.Op, ins.Rs1, ins.Rs2, ins.Imm)
	case Jump:
		if ins.Op == JALR {
			return fmt.Sprintf("%s R%d, %d(R%d)", ins.Op, ins.Rd, ins.Imm, ins.Rs1)
		}
		return fmt.Sprintf("%s R%d, %d", ins.Op, ins.Rd, ins.Imm)
	case Upper:
		return fmt.Sprintf("%s R%d, %#x", ins.Op, ins.Rd, uint32(ins.Imm))
	case CSR:
		switch ins.Op {
		case CSRRWI, CSRRSI, CSRRCI:
			return fmt.Sprintf("%s R%d, %#03x, %d", ins.Op, ins.Rd, ins.CSRAddr, ins.UImm)
		}
		return fmt.Sprintf("%s R%d, %#03x, R%d", ins.Op, ins.Rd, ins.CSRAddr, ins.Rs1)
	}
	return ins.Op.String()
}
