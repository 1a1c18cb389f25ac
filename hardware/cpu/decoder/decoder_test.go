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

package decoder_test

import (
	"testing"

	"github.com/jetsetilly/gopherv32/curated"
	"github.com/jetsetilly/gopherv32/hardware/cpu/decoder"
	"github.com/jetsetilly/gopherv32/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherv32/test"
)

// encodings assembled with the reference toolchain

func TestRType(t *testing.T) {
	// add x1, x2, x3
	ins, err := decoder.Decode(0x003100b3, 0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Op.String(), "ADD")
	test.Equate(t, ins.Rd, 1)
	test.Equate(t, ins.Rs1, 2)
	test.Equate(t, ins.Rs2, 3)

	// sub x4, x5, x6
	ins, _ = decoder.Decode(0x40628233, 0)
	test.Equate(t, ins.Op.String(), "SUB")
	test.Equate(t, ins.Rd, 4)

	// sra x1, x2, x3
	ins, _ = decoder.Decode(0x403150b3, 0)
	test.Equate(t, ins.Op.String(), "SRA")
}

func TestIType(t *testing.T) {
	// addi x1, x2, -1
	ins, err := decoder.Decode(0xfff10093, 0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Op.String(), "ADDI")
	test.Equate(t, ins.Rd, 1)
	test.Equate(t, ins.Rs1, 2)
	test.Equate(t, int(ins.Imm), -1)

	// srai x1, x2, 4 (shift amount lives in the rs2 field)
	ins, _ = decoder.Decode(0x40415093, 0)
	test.Equate(t, ins.Op.String(), "SRAI")
	test.Equate(t, int(ins.Imm), 4)

	// slli x1, x2, 31
	ins, _ = decoder.Decode(0x01f11093, 0)
	test.Equate(t, ins.Op.String(), "SLLI")
	test.Equate(t, int(ins.Imm), 31)
}

func TestLoadStore(t *testing.T) {
	// lw x1, 100(x2)
	ins, err := decoder.Decode(0x06412083, 0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Op.String(), "LW")
	test.Equate(t, ins.Rd, 1)
	test.Equate(t, ins.Rs1, 2)
	test.Equate(t, int(ins.Imm), 100)

	// lbu x3, -8(x4)
	ins, _ = decoder.Decode(0xff824183, 0)
	test.Equate(t, ins.Op.String(), "LBU")
	test.Equate(t, int(ins.Imm), -8)

	// sw x1, 100(x2) - the S-type immediate is split across the word
	ins, _ = decoder.Decode(0x06112223, 0)
	test.Equate(t, ins.Op.String(), "SW")
	test.Equate(t, ins.Rs1, 2)
	test.Equate(t, ins.Rs2, 1)
	test.Equate(t, int(ins.Imm), 100)
	test.Equate(t, ins.Rd, instructions.NoRegister)
}

func TestBranch(t *testing.T) {
	// beq x1, x2, +8
	ins, err := decoder.Decode(0x00208463, 0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Op.String(), "BEQ")
	test.Equate(t, ins.Rs1, 1)
	test.Equate(t, ins.Rs2, 2)
	test.Equate(t, int(ins.Imm), 8)

	// bne x1, x2, -4
	ins, _ = decoder.Decode(0xfe209ee3, 0)
	test.Equate(t, ins.Op.String(), "BNE")
	test.Equate(t, int(ins.Imm), -4)
}

func TestUpper(t *testing.T) {
	// lui x1, 0x12345
	ins, err := decoder.Decode(0x123450b7, 0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Op.String(), "LUI")
	test.Equate(t, int(ins.Imm), 0x12345)

	// auipc x2, 0x1
	ins, _ = decoder.Decode(0x00001117, 0)
	test.Equate(t, ins.Op.String(), "AUIPC")
	test.Equate(t, int(ins.Imm), 1)
}

func TestJumps(t *testing.T) {
	// jal x1, +8
	ins, err := decoder.Decode(0x008000ef, 0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Op.String(), "JAL")
	test.Equate(t, ins.Rd, 1)
	test.Equate(t, int(ins.Imm), 8)

	// jal x0, -16 (a backwards loop)
	ins, _ = decoder.Decode(0xff1ff06f, 0)
	test.Equate(t, int(ins.Imm), -16)

	// jalr x1, 4(x5)
	ins, _ = decoder.Decode(0x004280e7, 0)
	test.Equate(t, ins.Op.String(), "JALR")
	test.Equate(t, ins.Rs1, 5)
	test.Equate(t, int(ins.Imm), 4)
}

func TestSystem(t *testing.T) {
	ins, err := decoder.Decode(0x00000073, 0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Op.String(), "ECALL")

	ins, _ = decoder.Decode(0x00100073, 0)
	test.Equate(t, ins.Op.String(), "EBREAK")

	ins, _ = decoder.Decode(0x30200073, 0)
	test.Equate(t, ins.Op.String(), "MRET")

	ins, _ = decoder.Decode(0x0000000f, 0)
	test.Equate(t, ins.Op.String(), "FENCE")
}

func TestCSR(t *testing.T) {
	// csrrw x1, mstatus, x2
	ins, err := decoder.Decode(0x300110f3, 0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ins.Op.String(), "CSRRW")
	test.Equate(t, ins.Rd, 1)
	test.Equate(t, ins.Rs1, 2)
	test.Equate(t, int(ins.CSRAddr), 0x300)

	// csrrsi x1, mie, 5
	ins, _ = decoder.Decode(0x3042e0f3, 0)
	test.Equate(t, ins.Op.String(), "CSRRSI")
	test.Equate(t, int(ins.CSRAddr), 0x304)
	test.Equate(t, int(ins.UImm), 5)
	test.Equate(t, ins.Rs1, instructions.NoRegister)
}

func TestPCStamp(t *testing.T) {
	ins, _ := decoder.Decode(0x003100b3, 0x8000)
	test.Equate(t, ins.PC, 0x8000)
	test.Equate(t, ins.Encoding, 0x003100b3)
}

func TestUnknownEncoding(t *testing.T) {
	_, err := decoder.Decode(0x00000000, 0)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, decoder.UnknownEncoding))

	_, err = decoder.Decode(0xffffffff, 0)
	test.ExpectedFailure(t, err)
}
