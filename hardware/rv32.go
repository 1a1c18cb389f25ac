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

package hardware

import (
	"io"

	"github.com/jetsetilly/gopherv32/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherv32/hardware/cpu/registers"
	"github.com/jetsetilly/gopherv32/hardware/csr"
	"github.com/jetsetilly/gopherv32/hardware/interrupts"
	"github.com/jetsetilly/gopherv32/hardware/memory"
	"github.com/jetsetilly/gopherv32/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherv32/hardware/peripherals/clint"
	"github.com/jetsetilly/gopherv32/hardware/peripherals/uart"
	"github.com/jetsetilly/gopherv32/hardware/pipeline"
	"github.com/jetsetilly/gopherv32/hardware/traps"
)

// RV32 is the main container for the simulated machine.
type RV32 struct {
	Regs  *registers.File
	PC    *registers.ProgramCounter
	Mem   *memory.Memory
	CSR   *csr.Bank
	IC    *interrupts.Controller
	Trap  *traps.Controller
	CLINT *clint.CLINT
	UART  *uart.UART

	// the pipeline exists once a program has been attached
	Pipe *pipeline.Pipeline
}

// NewRV32 creates a new machine and everything associated with it. The
// uartOutput argument receives the guest's UART bytes as they are
// transmitted; it may be nil.
func NewRV32(uartOutput io.Writer) *RV32 {
	rv := &RV32{
		Regs: registers.NewFile(),
		PC:   registers.NewProgramCounter(0),
		Mem:  memory.NewMemory(),
		CSR:  csr.NewBank(),
	}

	rv.IC = interrupts.NewController(rv.CSR)
	rv.Trap = traps.NewController(rv.CSR, rv.IC)
	rv.CLINT = clint.NewCLINT(rv.IC)
	rv.UART = uart.NewUART(uartOutput)

	rv.Mem.Attach(memorymap.CLINT, rv.CLINT)
	rv.Mem.Attach(memorymap.UART, rv.UART)

	// the time CSR shadows the CLINT counter
	rv.CSR.TimeSource = rv.CLINT.Mtime

	return rv
}

// AttachTable readies the machine to run a table of pre-parsed
// instruction records (the assembler's output), with the first record
// at the origin address.
func (rv *RV32) AttachTable(program []*instructions.Instruction, origin uint32) {
	rv.PC.Load(origin)
	rv.Pipe = pipeline.NewPipeline(rv.Regs, rv.PC, rv.Mem, rv.CSR, rv.Trap, rv.CLINT,
		pipeline.NewTableSource(program, origin))
}

// AttachImage loads a flat binary program image into memory at the
// origin address and readies the machine to fetch and decode from it.
func (rv *RV32) AttachImage(image []byte, origin uint32) {
	rv.Mem.LoadImage(image, origin)
	rv.PC.Load(origin)
	rv.Pipe = pipeline.NewPipeline(rv.Regs, rv.PC, rv.Mem, rv.CSR, rv.Trap, rv.CLINT,
		pipeline.NewMemorySource(rv.Mem, origin, origin+uint32(len(image))))
}
