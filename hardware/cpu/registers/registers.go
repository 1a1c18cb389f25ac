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

package registers

import (
	"fmt"
	"strings"
)

// NumRegisters is the number of integer registers in the RV32I base
// ISA. Register zero is hardwired to the value zero.
const NumRegisters = 32

// aliases are the standard RV32I ABI names, indexed by register number.
var aliases = [NumRegisters]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

// Alias returns the ABI name for a register index. The empty string is
// returned for indices outside the register file.
func Alias(reg int) string {
	if reg < 0 || reg >= NumRegisters {
		return ""
	}
	return aliases[reg]
}

// File is the RV32I integer register file. Reads of register zero
// always return zero and writes to it are discarded.
type File struct {
	regs [NumRegisters]uint32
}

// NewFile is the preferred method of initialisation for the File type.
func NewFile() *File {
	return &File{}
}

// Read the value of the indexed register.
func (f *File) Read(reg int) uint32 {
	if reg == 0 {
		return 0
	}
	return f.regs[reg]
}

// Write a value to the indexed register. Writes to register zero are
// silently discarded.
func (f *File) Write(reg int, value uint32) {
	if reg == 0 {
		return
	}
	f.regs[reg] = value
}

// Snapshot returns a copy of the register file contents.
func (f *File) Snapshot() [NumRegisters]uint32 {
	return f.regs
}

func (f *File) String() string {
	s := strings.Builder{}
	for i := 0; i < NumRegisters; i++ {
		if f.regs[i] != 0 {
			s.WriteString(fmt.Sprintf("R%-2d (%-4s): %10d (%#08x)\n", i, aliases[i], f.regs[i], f.regs[i]))
		}
	}
	if s.Len() == 0 {
		return "all registers are zero"
	}
	return strings.TrimSuffix(s.String(), "\n")
}

// ProgramCounter represents the PC of the simulated core. It is not
// part of the register file proper; it is advanced by the fetch stage
// and overwritten on a flush or trap.
type ProgramCounter struct {
	value uint32
}

// NewProgramCounter is the preferred method of initialisation for the
// ProgramCounter type.
func NewProgramCounter(val uint32) *ProgramCounter {
	return &ProgramCounter{value: val}
}

// Label returns an identifying string for the PC.
func (pc *ProgramCounter) Label() string {
	return "PC"
}

func (pc *ProgramCounter) String() string {
	return fmt.Sprintf("%#08x", pc.value)
}

// Address returns the current value of the PC.
func (pc *ProgramCounter) Address() uint32 {
	return pc.value
}

// Load a value into the PC.
func (pc *ProgramCounter) Load(val uint32) {
	pc.value = val
}

// Advance the PC to the next sequential instruction.
func (pc *ProgramCounter) Advance() {
	pc.value += 4
}
