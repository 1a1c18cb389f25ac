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

package decoder

import (
	"github.com/jetsetilly/gopherv32/curated"
	"github.com/jetsetilly/gopherv32/hardware/cpu/instructions"
)

// UnknownEncoding is returned when a word does not decode to an RV32I
// instruction.
const UnknownEncoding = "decoder: unknown encoding (%#08x)"

// base opcodes (bits 6:0 of the encoding).
const (
	opLUI    = 0x37
	opAUIPC  = 0x17
	opJAL    = 0x6f
	opJALR   = 0x67
	opBranch = 0x63
	opLoad   = 0x03
	opStore  = 0x23
	opOpImm  = 0x13
	opOp     = 0x33
	opFence  = 0x0f
	opSystem = 0x73
)

// field extraction. names follow the ISA manual
func rd(word uint32) int     { return int(word >> 7 & 0x1f) }
func rs1(word uint32) int    { return int(word >> 15 & 0x1f) }
func rs2(word uint32) int    { return int(word >> 20 & 0x1f) }
func funct3(word uint32) int { return int(word >> 12 & 0x7) }
func funct7(word uint32) int { return int(word >> 25 & 0x7f) }

// immediate assembly per encoding format. the arithmetic shift of the
// sign bit provides the sign extension
func immI(word uint32) int32 { return int32(word) >> 20 }
func immS(word uint32) int32 { return int32(word)>>25<<5 | int32(word>>7&0x1f) }
func immB(word uint32) int32 {
	return int32(word)>>31<<12 | int32(word>>7&0x1)<<11 | int32(word>>25&0x3f)<<5 | int32(word>>8&0xf)<<1
}
func immU(word uint32) int32 { return int32(word >> 12) }
func immJ(word uint32) int32 {
	return int32(word)>>31<<20 | int32(word>>12&0xff)<<12 | int32(word>>20&0x1)<<11 | int32(word>>21&0x3ff)<<1
}

// Decode a 32-bit little-endian RV32I encoding into an instruction
// record. The pc argument stamps the record with its originating
// address.
func Decode(word uint32, pc uint32) (*instructions.Instruction, error) {
	op, err := operation(word)
	if err != nil {
		return nil, err
	}

	ins := instructions.New(op)
	ins.PC = pc
	ins.Encoding = word

	switch ins.Class {
	case instructions.Upper:
		ins.Rd = rd(word)
		ins.Imm = immU(word)

	case instructions.Jump:
		ins.Rd = rd(word)
		if op == instructions.JALR {
			ins.Rs1 = rs1(word)
			ins.Imm = immI(word)
		} else {
			ins.Imm = immJ(word)
		}

	case instructions.Branch:
		ins.Rs1 = rs1(word)
		ins.Rs2 = rs2(word)
		ins.Imm = immB(word)

	case instructions.Load:
		ins.Rd = rd(word)
		ins.Rs1 = rs1(word)
		ins.Imm = immI(word)

	case instructions.Store:
		ins.Rs1 = rs1(word)
		ins.Rs2 = rs2(word)
		ins.Imm = immS(word)

	case instructions.Immediate:
		ins.Rd = rd(word)
		ins.Rs1 = rs1(word)
		switch op {
		case instructions.SLLI, instructions.SRLI, instructions.SRAI:
			ins.Imm = int32(rs2(word))
		default:
			ins.Imm = immI(word)
		}

	case instructions.Register:
		ins.Rd = rd(word)
		ins.Rs1 = rs1(word)
		ins.Rs2 = rs2(word)

	case instructions.CSR:
		ins.Rd = rd(word)
		ins.CSRAddr = uint16(word >> 20 & 0xfff)
		switch op {
		case instructions.CSRRWI, instructions.CSRRSI, instructions.CSRRCI:
			ins.UImm = uint8(rs1(word))
		default:
			ins.Rs1 = rs1(word)
		}
	}

	return ins, nil
}

// operation identifies the Operation for an encoding, or returns the
// UnknownEncoding error.
func operation(word uint32) (instructions.Operation, error) {
	fail := func() (instructions.Operation, error) {
		return 0, curated.Errorf(UnknownEncoding, word)
	}

	switch word & 0x7f {
	case opLUI:
		return instructions.LUI, nil
	case opAUIPC:
		return instructions.AUIPC, nil
	case opJAL:
		return instructions.JAL, nil
	case opJALR:
		return instructions.JALR, nil

	case opBranch:
		switch funct3(word) {
		case 0x0:
			return instructions.BEQ, nil
		case 0x1:
			return instructions.BNE, nil
		case 0x4:
			return instructions.BLT, nil
		case 0x5:
			return instructions.BGE, nil
		case 0x6:
			return instructions.BLTU, nil
		case 0x7:
			return instructions.BGEU, nil
		}

	case opLoad:
		switch funct3(word) {
		case 0x0:
			return instructions.LB, nil
		case 0x1:
			return instructions.LH, nil
		case 0x2:
			return instructions.LW, nil
		case 0x4:
			return instructions.LBU, nil
		case 0x5:
			return instructions.LHU, nil
		}

	case opStore:
		switch funct3(word) {
		case 0x0:
			return instructions.SB, nil
		case 0x1:
			return instructions.SH, nil
		case 0x2:
			return instructions.SW, nil
		}

	case opOpImm:
		switch funct3(word) {
		case 0x0:
			return instructions.ADDI, nil
		case 0x1:
			if funct7(word) == 0x00 {
				return instructions.SLLI, nil
			}
		case 0x2:
			return instructions.SLTI, nil
		case 0x3:
			return instructions.SLTIU, nil
		case 0x4:
			return instructions.XORI, nil
		case 0x5:
			switch funct7(word) {
			case 0x00:
				return instructions.SRLI, nil
			case 0x20:
				return instructions.SRAI, nil
			}
		case 0x6:
			return instructions.ORI, nil
		case 0x7:
			return instructions.ANDI, nil
		}

	case opOp:
		switch funct7(word)<<3 | funct3(word) {
		case 0x000:
			return instructions.ADD, nil
		case 0x100:
			return instructions.SUB, nil
		case 0x001:
			return instructions.SLL, nil
		case 0x002:
			return instructions.SLT, nil
		case 0x003:
			return instructions.SLTU, nil
		case 0x004:
			return instructions.XOR, nil
		case 0x005:
			return instructions.SRL, nil
		case 0x105:
			return instructions.SRA, nil
		case 0x006:
			return instructions.OR, nil
		case 0x007:
			return instructions.AND, nil
		}

	case opFence:
		switch funct3(word) {
		case 0x0:
			return instructions.FENCE, nil
		case 0x1:
			return instructions.FENCEI, nil
		}

	case opSystem:
		switch funct3(word) {
		case 0x0:
			switch word >> 20 & 0xfff {
			case 0x000:
				if rd(word) == 0 && rs1(word) == 0 {
					return instructions.ECALL, nil
				}
			case 0x001:
				if rd(word) == 0 && rs1(word) == 0 {
					return instructions.EBREAK, nil
				}
			case 0x302:
				return instructions.MRET, nil
			}
		case 0x1:
			return instructions.CSRRW, nil
		case 0x2:
			return instructions.CSRRS, nil
		case 0x3:
			return instructions.CSRRC, nil
		case 0x5:
			return instructions.CSRRWI, nil
		case 0x6:
			return instructions.CSRRSI, nil
		case 0x7:
			return instructions.CSRRCI, nil
		}
	}

	return fail()
}
