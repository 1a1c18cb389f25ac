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

package assembler

import (
	"strconv"
	"strings"

	"github.com/jetsetilly/gopherv32/curated"
	"github.com/jetsetilly/gopherv32/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherv32/hardware/cpu/registers"
	"github.com/jetsetilly/gopherv32/hardware/csr"
)

// Error patterns returned by the assembler.
const (
	UnrecognisedMnemonic = "assembler: unrecognised mnemonic (%s)"
	WrongOperandCount    = "assembler: %s: wrong number of operands"
	BadOperand           = "assembler: %s: bad operand (%s)"
)

// Parse a program: one instruction per line. Empty lines and comments
// (everything after a '#') are skipped. Returns the instruction
// records in program order.
func Parse(lines []string) ([]*instructions.Instruction, error) {
	program := make([]*instructions.Instruction, 0, len(lines))

	for _, l := range lines {
		if i := strings.IndexRune(l, '#'); i >= 0 {
			l = l[:i]
		}
		if strings.TrimSpace(l) == "" {
			continue
		}

		ins, err := ParseLine(l)
		if err != nil {
			return nil, err
		}
		program = append(program, ins)
	}

	return program, nil
}

// ParseLine assembles a single instruction of the form
//
//	MNEMONIC [operand, ...]
//
// Register operands are written R0..R31 or with their ABI alias;
// immediates are decimal or 0x-prefixed; memory operands take the
// offset(Rn) form; CSR operands are numeric or an architectural name.
func ParseLine(line string) (*instructions.Instruction, error) {
	fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(fields) == 0 {
		return nil, curated.Errorf(UnrecognisedMnemonic, line)
	}

	mnemonic := strings.ToUpper(fields[0])
	args := fields[1:]

	op, ok := instructions.Lookup(mnemonic)
	if !ok {
		return nil, curated.Errorf(UnrecognisedMnemonic, mnemonic)
	}

	ins := instructions.New(op)
	p := &parser{ins: ins, mnemonic: mnemonic, args: args}

	switch ins.Class {
	case instructions.Register:
		// OP rd, rs1, rs2
		p.count(3)
		ins.Rd = p.register(0)
		ins.Rs1 = p.register(1)
		ins.Rs2 = p.register(2)

	case instructions.Immediate:
		// OP rd, rs1, imm
		p.count(3)
		ins.Rd = p.register(0)
		ins.Rs1 = p.register(1)
		ins.Imm = p.immediate(2)

	case instructions.Load:
		// OP rd, offset(rs1)
		p.count(2)
		ins.Rd = p.register(0)
		ins.Imm, ins.Rs1 = p.memoryOperand(1)

	case instructions.Store:
		// OP rs2, offset(rs1)
		p.count(2)
		ins.Rs2 = p.register(0)
		ins.Imm, ins.Rs1 = p.memoryOperand(1)

	case instructions.Branch:
		// OP rs1, rs2, offset
		p.count(3)
		ins.Rs1 = p.register(0)
		ins.Rs2 = p.register(1)
		ins.Imm = p.immediate(2)

	case instructions.Jump:
		if op == instructions.JALR {
			// JALR rd, offset(rs1)
			p.count(2)
			ins.Rd = p.register(0)
			ins.Imm, ins.Rs1 = p.memoryOperand(1)
		} else {
			// JAL rd, offset
			p.count(2)
			ins.Rd = p.register(0)
			ins.Imm = p.immediate(1)
		}

	case instructions.Upper:
		// OP rd, imm
		p.count(2)
		ins.Rd = p.register(0)
		ins.Imm = p.immediate(1)

	case instructions.CSR:
		// OP rd, csr, rs1|uimm
		p.count(3)
		ins.Rd = p.register(0)
		ins.CSRAddr = p.csrAddress(1)
		switch op {
		case instructions.CSRRWI, instructions.CSRRSI, instructions.CSRRCI:
			ins.UImm = uint8(p.immediate(2)) & 0x1f
		default:
			ins.Rs1 = p.register(2)
		}

	default:
		// BUBBLE and the system operations take no operands
		p.count(0)
	}

	if p.err != nil {
		return nil, p.err
	}

	return ins, nil
}

// parser accumulates the first operand error rather than threading
// error returns through every accessor.
type parser struct {
	ins      *instructions.Instruction
	mnemonic string
	args     []string
	err      error
}

func (p *parser) fail(pattern string, values ...interface{}) {
	if p.err == nil {
		p.err = curated.Errorf(pattern, values...)
	}
}

func (p *parser) count(n int) {
	if len(p.args) != n {
		p.fail(WrongOperandCount, p.mnemonic)
	}
}

func (p *parser) arg(i int) string {
	if p.err != nil || i >= len(p.args) {
		return ""
	}
	return p.args[i]
}

func (p *parser) register(i int) int {
	a := p.arg(i)
	if a == "" {
		return instructions.NoRegister
	}

	if strings.HasPrefix(strings.ToUpper(a), "R") {
		if n, err := strconv.Atoi(a[1:]); err == nil && n >= 0 && n < registers.NumRegisters {
			return n
		}
	}

	for n := 0; n < registers.NumRegisters; n++ {
		if registers.Alias(n) == strings.ToLower(a) {
			return n
		}
	}

	p.fail(BadOperand, p.mnemonic, a)
	return instructions.NoRegister
}

func (p *parser) immediate(i int) int32 {
	a := p.arg(i)
	if a == "" {
		return 0
	}

	// a leading plus sign is accepted on branch/jump offsets
	a = strings.TrimPrefix(a, "+")

	v, err := strconv.ParseInt(a, 0, 64)
	if err != nil {
		p.fail(BadOperand, p.mnemonic, a)
		return 0
	}
	return int32(v)
}

func (p *parser) memoryOperand(i int) (int32, int) {
	a := p.arg(i)
	if a == "" {
		return 0, instructions.NoRegister
	}

	open := strings.IndexRune(a, '(')
	if open < 0 || !strings.HasSuffix(a, ")") {
		p.fail(BadOperand, p.mnemonic, a)
		return 0, instructions.NoRegister
	}

	off, err := strconv.ParseInt(a[:open], 0, 64)
	if err != nil {
		p.fail(BadOperand, p.mnemonic, a)
		return 0, instructions.NoRegister
	}

	p.args = append(p.args, a[open+1:len(a)-1])
	reg := p.register(len(p.args) - 1)
	p.args = p.args[:len(p.args)-1]

	return int32(off), reg
}

func (p *parser) csrAddress(i int) uint16 {
	a := p.arg(i)
	if a == "" {
		return 0
	}

	if addr, ok := csr.Address(strings.ToLower(a)); ok {
		return addr
	}

	v, err := strconv.ParseUint(a, 0, 12)
	if err != nil {
		p.fail(BadOperand, p.mnemonic, a)
		return 0
	}
	return uint16(v)
}
