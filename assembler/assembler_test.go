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

package assembler_test

import (
	"testing"

	"github.com/jetsetilly/gopherv32/assembler"
	"github.com/jetsetilly/gopherv32/curated"
	"github.com/jetsetilly/gopherv32/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherv32/test"
)

func TestRegisterForm(t *testing.T) {
	ins, err := assembler.ParseLine("ADD R1, R2, R3")
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Op.String(), "ADD")
	test.Equate(t, ins.Rd, 1)
	test.Equate(t, ins.Rs1, 2)
	test.Equate(t, ins.Rs2, 3)
}

func TestImmediateForm(t *testing.T) {
	ins, err := assembler.ParseLine("ADDI R2, R1, -5")
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Rd, 2)
	test.Equate(t, ins.Rs1, 1)
	test.Equate(t, int(ins.Imm), -5)

	ins, err = assembler.ParseLine("ANDI R2, R1, 0xff")
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(ins.Imm), 255)
}

func TestMemoryForm(t *testing.T) {
	ins, err := assembler.ParseLine("LW R1, 100(R2)")
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Rd, 1)
	test.Equate(t, ins.Rs1, 2)
	test.Equate(t, int(ins.Imm), 100)

	// stores name the data register first and have no destination
	ins, err = assembler.ParseLine("SW R1, 100(R0)")
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Rd, instructions.NoRegister)
	test.Equate(t, ins.Rs2, 1)
	test.Equate(t, ins.Rs1, 0)
	test.Equate(t, int(ins.Imm), 100)
}

func TestBranchAndJump(t *testing.T) {
	ins, err := assembler.ParseLine("BEQ R1, R2, +8")
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Rs1, 1)
	test.Equate(t, ins.Rs2, 2)
	test.Equate(t, int(ins.Imm), 8)
	test.Equate(t, ins.Rd, instructions.NoRegister)

	ins, err = assembler.ParseLine("JAL R1, -16")
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Rd, 1)
	test.Equate(t, int(ins.Imm), -16)

	ins, err = assembler.ParseLine("JALR R1, 4(R5)")
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Rs1, 5)
	test.Equate(t, int(ins.Imm), 4)
}

func TestCSRForms(t *testing.T) {
	ins, err := assembler.ParseLine("CSRRW R1, mstatus, R2")
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(ins.CSRAddr), 0x300)
	test.Equate(t, ins.Rs1, 2)

	ins, err = assembler.ParseLine("CSRRSI R1, 0x304, 5")
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(ins.CSRAddr), 0x304)
	test.Equate(t, int(ins.UImm), 5)
}

func TestAliases(t *testing.T) {
	ins, err := assembler.ParseLine("ADD a0, sp, t0")
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Rd, 10)
	test.Equate(t, ins.Rs1, 2)
	test.Equate(t, ins.Rs2, 5)
}

func TestSystemAndBubble(t *testing.T) {
	for _, m := range []string{"ECALL", "EBREAK", "MRET", "FENCE", "FENCE.I", "BUBBLE"} {
		ins, err := assembler.ParseLine(m)
		test.ExpectedSuccess(t, err)
		test.Equate(t, ins.Op.String(), m)
		test.Equate(t, ins.Rd, instructions.NoRegister)
	}
}

func TestProgram(t *testing.T) {
	program, err := assembler.Parse([]string{
		"# a comment line",
		"ADDI R1, R0, 1",
		"",
		"ADD R2, R1, R1  # trailing comment",
	})
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(program), 2)
}

func TestRejects(t *testing.T) {
	_, err := assembler.ParseLine("FROB R1, R2, R3")
	test.ExpectedSuccess(t, curated.Is(err, assembler.UnrecognisedMnemonic))

	_, err = assembler.ParseLine("ADD R1, R2")
	test.ExpectedSuccess(t, curated.Is(err, assembler.WrongOperandCount))

	_, err = assembler.ParseLine("ADD R1, R2, R99")
	test.ExpectedSuccess(t, curated.Is(err, assembler.BadOperand))

	_, err = assembler.ParseLine("LW R1, 100[R2]")
	test.ExpectedSuccess(t, curated.Is(err, assembler.BadOperand))
}
