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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopherv32/hardware/cpu"
	"github.com/jetsetilly/gopherv32/hardware/cpu/execution"
	"github.com/jetsetilly/gopherv32/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherv32/hardware/csr"
	"github.com/jetsetilly/gopherv32/test"
)

func register(op instructions.Operation) *instructions.Instruction {
	ins := instructions.New(op)
	ins.Rd = 1
	ins.Rs1 = 2
	ins.Rs2 = 3
	return ins
}

func immediate(op instructions.Operation, imm int32) *instructions.Instruction {
	ins := instructions.New(op)
	ins.Rd = 1
	ins.Rs1 = 2
	ins.Imm = imm
	return ins
}

func TestArithmetic(t *testing.T) {
	r := cpu.Execute(register(instructions.ADD), 10, 20)
	test.Equate(t, int(r.Kind), int(execution.Value))
	test.Equate(t, r.Value, 30)

	// wraparound
	r = cpu.Execute(register(instructions.ADD), 0xffffffff, 1)
	test.Equate(t, r.Value, 0)

	r = cpu.Execute(register(instructions.SUB), 10, 20)
	test.Equate(t, r.Value, 0xfffffff6)

	r = cpu.Execute(register(instructions.AND), 0xff0f, 0x0fff)
	test.Equate(t, r.Value, 0x0f0f)

	r = cpu.Execute(register(instructions.OR), 0xf000, 0x000f)
	test.Equate(t, r.Value, 0xf00f)

	r = cpu.Execute(register(instructions.XOR), 0xffff, 0x0ff0)
	test.Equate(t, r.Value, 0xf00f)
}

func TestComparisons(t *testing.T) {
	// SLT is signed: -1 < 1
	r := cpu.Execute(register(instructions.SLT), 0xffffffff, 1)
	test.Equate(t, r.Value, 1)

	// SLTU is unsigned: 0xffffffff > 1
	r = cpu.Execute(register(instructions.SLTU), 0xffffffff, 1)
	test.Equate(t, r.Value, 0)

	r = cpu.Execute(immediate(instructions.SLTI, -1), 0xfffffffe, 0)
	test.Equate(t, r.Value, 1)
}

func TestShifts(t *testing.T) {
	r := cpu.Execute(register(instructions.SLL), 1, 4)
	test.Equate(t, r.Value, 16)

	// only the low five bits of the shift amount are used
	r = cpu.Execute(register(instructions.SLL), 1, 32+4)
	test.Equate(t, r.Value, 16)

	r = cpu.Execute(register(instructions.SRL), 0x80000000, 4)
	test.Equate(t, r.Value, 0x08000000)

	// SRA preserves the sign
	r = cpu.Execute(register(instructions.SRA), 0x80000000, 4)
	test.Equate(t, r.Value, 0xf8000000)

	r = cpu.Execute(immediate(instructions.SRAI, 8), 0xffffff00, 0)
	test.Equate(t, r.Value, 0xffffffff)
}

func TestUpper(t *testing.T) {
	ins := instructions.New(instructions.LUI)
	ins.Rd = 1
	ins.Imm = 0x12345
	r := cpu.Execute(ins, 0, 0)
	test.Equate(t, r.Value, 0x12345000)

	ins = instructions.New(instructions.AUIPC)
	ins.Rd = 1
	ins.Imm = 0x1
	ins.PC = 0x100
	r = cpu.Execute(ins, 0, 0)
	test.Equate(t, r.Value, 0x1100)
}

func TestLoadsStores(t *testing.T) {
	ins := instructions.New(instructions.LH)
	ins.Rd = 1
	ins.Rs1 = 2
	ins.Imm = -4
	r := cpu.Execute(ins, 0x104, 0)
	test.Equate(t, int(r.Kind), int(execution.Load))
	test.Equate(t, r.Addr, 0x100)
	test.Equate(t, r.Width, 2)
	test.ExpectedSuccess(t, r.Signed)

	ins = instructions.New(instructions.SB)
	ins.Rs1 = 2
	ins.Rs2 = 3
	ins.Imm = 8
	r = cpu.Execute(ins, 0x100, 0xab)
	test.Equate(t, int(r.Kind), int(execution.Store))
	test.Equate(t, r.Addr, 0x108)
	test.Equate(t, r.Width, 1)
}

func TestBranches(t *testing.T) {
	ins := instructions.New(instructions.BEQ)
	ins.Rs1 = 1
	ins.Rs2 = 2
	ins.Imm = 8
	ins.PC = 0x100

	r := cpu.Execute(ins, 5, 5)
	test.Equate(t, int(r.Kind), int(execution.BranchTaken))
	test.Equate(t, r.Target, 0x108)

	r = cpu.Execute(ins, 5, 6)
	test.Equate(t, int(r.Kind), int(execution.BranchNotTaken))

	ins.Op = instructions.BLT
	r = cpu.Execute(ins, 0xffffffff, 0)
	test.Equate(t, int(r.Kind), int(execution.BranchTaken))

	ins.Op = instructions.BGEU
	r = cpu.Execute(ins, 0xffffffff, 0)
	test.Equate(t, int(r.Kind), int(execution.BranchTaken))

	// backward branch
	ins.Op = instructions.BNE
	ins.Imm = -8
	r = cpu.Execute(ins, 1, 2)
	test.Equate(t, r.Target, 0xf8)
}

func TestJumps(t *testing.T) {
	ins := instructions.New(instructions.JAL)
	ins.Rd = 1
	ins.Imm = 8
	ins.PC = 0x100
	r := cpu.Execute(ins, 0, 0)
	test.Equate(t, int(r.Kind), int(execution.Jump))
	test.Equate(t, r.Target, 0x108)
	test.Equate(t, r.Value, 0x104)

	// JALR masks bit zero of the target
	ins = instructions.New(instructions.JALR)
	ins.Rd = 1
	ins.Rs1 = 2
	ins.Imm = 3
	ins.PC = 0x100
	r = cpu.Execute(ins, 0x200, 0)
	test.Equate(t, r.Target, 0x202)
	test.Equate(t, r.Value, 0x104)
}

func TestCSRRequests(t *testing.T) {
	ins := instructions.New(instructions.CSRRW)
	ins.Rd = 1
	ins.Rs1 = 2
	ins.CSRAddr = csr.Mscratch
	r := cpu.Execute(ins, 0xff, 0)
	test.Equate(t, int(r.Kind), int(execution.CSR))
	test.Equate(t, r.CSROperand, 0xff)
	test.ExpectedFailure(t, r.Suppress)

	// CSRRS with rs1=R0 is the read-only shortcut
	ins = instructions.New(instructions.CSRRS)
	ins.Rd = 1
	ins.Rs1 = 0
	ins.CSRAddr = csr.Mscratch
	r = cpu.Execute(ins, 0, 0)
	test.ExpectedSuccess(t, r.Suppress)

	// CSRRW with rs1=R0 is not: it writes zero
	ins.Op = instructions.CSRRW
	r = cpu.Execute(ins, 0, 0)
	test.ExpectedFailure(t, r.Suppress)

	// immediate variant with uimm=0
	ins = instructions.New(instructions.CSRRCI)
	ins.Rd = 1
	ins.CSRAddr = csr.Mscratch
	ins.UImm = 0
	r = cpu.Execute(ins, 0, 0)
	test.ExpectedSuccess(t, r.Suppress)

	ins.UImm = 5
	r = cpu.Execute(ins, 0, 0)
	test.ExpectedFailure(t, r.Suppress)
	test.Equate(t, r.CSROperand, 5)
}

func TestSystem(t *testing.T) {
	r := cpu.Execute(instructions.New(instructions.ECALL), 0, 0)
	test.Equate(t, int(r.Kind), int(execution.Trap))
	test.Equate(t, r.Cause, 11)

	r = cpu.Execute(instructions.New(instructions.EBREAK), 0, 0)
	test.Equate(t, int(r.Kind), int(execution.Trap))
	test.Equate(t, r.Cause, 3)

	r = cpu.Execute(instructions.New(instructions.MRET), 0, 0)
	test.Equate(t, int(r.Kind), int(execution.TrapReturn))

	r = cpu.Execute(instructions.New(instructions.FENCE), 0, 0)
	test.Equate(t, int(r.Kind), int(execution.None))

	ill := instructions.New(instructions.ILLEGAL)
	ill.Encoding = 0xffffffff
	r = cpu.Execute(ill, 0, 0)
	test.Equate(t, int(r.Kind), int(execution.Trap))
	test.Equate(t, r.Cause, 2)
	test.Equate(t, r.Tval, 0xffffffff)
}
