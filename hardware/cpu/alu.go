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
	"github.com/jetsetilly/gopherv32/hardware/cpu/instructions"
)

// alu performs the arithmetic/logic computation for an operation. All
// arithmetic is 32-bit two's complement with wraparound; shifts use
// only the low five bits of the second operand; SRA preserves the sign
// bit.
func alu(op instructions.Operation, a, b uint32) uint32 {
	switch op {
	case instructions.ADD, instructions.ADDI:
		return a + b
	case instructions.SUB:
		return a - b
	case instructions.AND, instructions.ANDI:
		return a & b
	case instructions.OR, instructions.ORI:
		return a | b
	case instructions.XOR, instructions.XORI:
		return a ^ b
	case instructions.SLT, instructions.SLTI:
		if int32(a) < int32(b) {
			return 1
		}
		return 0
	case instructions.SLTU, instructions.SLTIU:
		if a < b {
			return 1
		}
		return 0
	case instructions.SLL, instructions.SLLI:
		return a << (b & 0x1f)
	case instructions.SRL, instructions.SRLI:
		return a >> (b & 0x1f)
	case instructions.SRA, instructions.SRAI:
		return uint32(int32(a) >> (b & 0x1f))
	}
	return 0
}

// branchTaken evaluates a branch predicate against the two source
// values.
func branchTaken(op instructions.Operation, a, b uint32) bool {
	switch op {
	case instructions.BEQ:
		return a == b
	case instructions.BNE:
		return a != b
	case instructions.BLT:
		return int32(a) < int32(b)
	case instructions.BGE:
		return int32(a) >= int32(b)
	case instructions.BLTU:
		return a < b
	case instructions.BGEU:
		return a >= b
	}
	return false
}
