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

package pipeline

import (
	"github.com/jetsetilly/gopherv32/hardware/cpu/decoder"
	"github.com/jetsetilly/gopherv32/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherv32/hardware/memory"
)

// Source is the thin interface through which the fetch stage obtains
// instruction records. The second return value is false when the
// source has nothing at the address — how the pipeline recognises the
// end of a program.
//
// Fetch returns a fresh record for every call so that the same program
// location can be in flight more than once (a short backwards loop).
type Source interface {
	Fetch(pc uint32) (*instructions.Instruction, bool)
}

// TableSource feeds the pipeline from a table of pre-parsed
// instruction records, addressed by PC/4 relative to the origin. It is
// the ingress path for the assembler and for test programs.
type TableSource struct {
	program []*instructions.Instruction
	origin  uint32
}

// NewTableSource is the preferred method of initialisation for the
// TableSource type.
func NewTableSource(program []*instructions.Instruction, origin uint32) *TableSource {
	return &TableSource{
		program: program,
		origin:  origin,
	}
}

// Fetch implements the Source interface.
func (src *TableSource) Fetch(pc uint32) (*instructions.Instruction, bool) {
	if pc < src.origin || (pc-src.origin)%4 != 0 {
		return nil, false
	}

	idx := int((pc - src.origin) / 4)
	if idx >= len(src.program) {
		return nil, false
	}

	ins := src.program[idx].Copy()
	ins.PC = pc
	return ins, true
}

// MemorySource feeds the pipeline by reading 32-bit encodings from
// memory and decoding them. It is the ingress path for binary program
// images. A word that does not decode becomes an ILLEGAL record, which
// raises an illegal-instruction exception when it reaches the execute
// stage.
type MemorySource struct {
	mem *memory.Memory

	// the address range holding executable words. fetches outside the
	// range report source exhaustion
	origin uint32
	memtop uint32
}

// NewMemorySource is the preferred method of initialisation for the
// MemorySource type.
func NewMemorySource(mem *memory.Memory, origin uint32, memtop uint32) *MemorySource {
	return &MemorySource{
		mem:    mem,
		origin: origin,
		memtop: memtop,
	}
}

// Fetch implements the Source interface.
func (src *MemorySource) Fetch(pc uint32) (*instructions.Instruction, bool) {
	if pc < src.origin || pc >= src.memtop {
		return nil, false
	}

	word := src.mem.Load(pc, 4, false)

	ins, err := decoder.Decode(word, pc)
	if err != nil {
		ins = instructions.New(instructions.ILLEGAL)
		ins.PC = pc
		ins.Encoding = word
	}

	return ins, true
}
