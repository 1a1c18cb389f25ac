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

package cpu

import (
	"github.com/jetsetilly/gopherv32/hardware/cpu/execution"
	"github.com/jetsetilly/gopherv32/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherv32/hardware/csr"
	"github.com/jetsetilly/gopherv32/hardware/traps"
)

// loadWidth returns the access width and signedness for a load
// operation.
func loadWidth(op instructions.Operation) (int, bool) {
	switch op {
	case instructions.LB:
		return 1, true
	case instructions.LBU:
		return 1, false
	case instructions.LH:
		return 2, true
	case instructions.LHU:
		return 2, false
	}
	return 4, false
}

// storeWidth returns the access width for a store operation.
func storeWidth(op instructions.Operation) int {
	switch op {
	case instructions.SB:
		return 1
	case instructions.SH:
		return 2
	}
	return 4
}

// Execute is the execution unit: a pure function from the decoded
// instruction, its resolved source operands and the originating PC to
// a result descriptor. It has no hidden state and never touches the
// register file, memory or the CSR bank — those side effects belong to
// the memory and writeback stages.
func Execute(ins *instructions.Instruction, rs1v uint32, rs2v uint32) execution.Result {
	switch ins.Class {
	case instructions.Bubble:
		return execution.Result{Kind: execution.None}

	case instructions.Register:
		return execution.Result{Kind: execution.Value, Value: alu(ins.Op, rs1v, rs2v)}

	case instructions.Immediate:
		return execution.Result{Kind: execution.Value, Value: alu(ins.Op, rs1v, uint32(ins.Imm))}

	case instructions.Upper:
		if ins.Op == instructions.LUI {
			return execution.Result{Kind: execution.Value, Value: uint32(ins.Imm) << 12}
		}
		return execution.Result{Kind: execution.Value, Value: ins.PC + uint32(ins.Imm)<<12}

	case instructions.Load:
		width, signed := loadWidth(ins.Op)
		return execution.Result{
			Kind:   execution.Load,
			Addr:   rs1v + uint32(ins.Imm),
			Width:  width,
			Signed: signed,
		}

	case instructions.Store:
		return execution.Result{
			Kind:  execution.Store,
			Addr:  rs1v + uint32(ins.Imm),
			Width: storeWidth(ins.Op),
		}

	case instructions.Branch:
		if branchTaken(ins.Op, rs1v, rs2v) {
			return execution.Result{Kind: execution.BranchTaken, Target: ins.PC + uint32(ins.Imm)}
		}
		return execution.Result{Kind: execution.BranchNotTaken}

	case instructions.Jump:
		target := ins.PC + uint32(ins.Imm)
		if ins.Op == instructions.JALR {
			target = (rs1v + uint32(ins.Imm)) & ^uint32(1)
		}
		return execution.Result{Kind: execution.Jump, Target: target, Value: ins.PC + 4}

	case instructions.CSR:
		return executeCSR(ins, rs1v)
	}

	// system class
	switch ins.Op {
	case instructions.ECALL:
		return execution.Result{Kind: execution.Trap, Cause: traps.ECallFromM}
	case instructions.EBREAK:
		return execution.Result{Kind: execution.Trap, Cause: traps.Breakpoint}
	case instructions.MRET:
		return execution.Result{Kind: execution.TrapReturn}
	case instructions.ILLEGAL:
		return execution.Result{Kind: execution.Trap, Cause: traps.IllegalInstruction, Tval: ins.Encoding}
	}

	// FENCE and FENCE.I order nothing in a single-hart in-order core
	return execution.Result{Kind: execution.None}
}

// executeCSR builds the deferred CSR request. The read-modify-write
// itself happens at writeback so that architectural ordering is
// preserved.
func executeCSR(ins *instructions.Instruction, rs1v uint32) execution.Result {
	r := execution.Result{Kind: execution.CSR, CSRAddr: ins.CSRAddr}

	immediate := false
	switch ins.Op {
	case instructions.CSRRW:
		r.CSROp = csr.OpWrite
	case instructions.CSRRS:
		r.CSROp = csr.OpSet
	case instructions.CSRRC:
		r.CSROp = csr.OpClear
	case instructions.CSRRWI:
		r.CSROp = csr.OpWrite
		immediate = true
	case instructions.CSRRSI:
		r.CSROp = csr.OpSet
		immediate = true
	case instructions.CSRRCI:
		r.CSROp = csr.OpClear
		immediate = true
	}

	if immediate {
		r.CSROperand = uint32(ins.UImm)
	} else {
		r.CSROperand = rs1v
	}

	// the zero-operand shortcut: a set/clear with rs1=R0 (or uimm=0)
	// samples the CSR without modifying it. it does not apply to the
	// write variants, which really do write zero
	if r.CSROp != csr.OpWrite {
		if immediate {
			r.Suppress = ins.UImm == 0
		} else {
			r.Suppress = ins.Rs1 == 0
		}
	}

	return r
}
