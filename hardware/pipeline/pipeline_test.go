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

package pipeline_test

import (
	"testing"

	"github.com/jetsetilly/gopherv32/assembler"
	"github.com/jetsetilly/gopherv32/hardware/cpu/registers"
	"github.com/jetsetilly/gopherv32/hardware/csr"
	"github.com/jetsetilly/gopherv32/hardware/interrupts"
	"github.com/jetsetilly/gopherv32/hardware/memory"
	"github.com/jetsetilly/gopherv32/hardware/peripherals/clint"
	"github.com/jetsetilly/gopherv32/hardware/pipeline"
	"github.com/jetsetilly/gopherv32/hardware/traps"
	"github.com/jetsetilly/gopherv32/test"
)

// rig assembles the minimum machine a pipeline needs.
type rig struct {
	regs *registers.File
	pc   *registers.ProgramCounter
	mem  *memory.Memory
	bank *csr.Bank
	ic   *interrupts.Controller
	trap *traps.Controller
	cl   *clint.CLINT
	pipe *pipeline.Pipeline
}

func newRig(t *testing.T, program []string) *rig {
	t.Helper()

	parsed, err := assembler.Parse(program)
	test.ExpectedSuccess(t, err)

	r := &rig{
		regs: registers.NewFile(),
		pc:   registers.NewProgramCounter(0),
		mem:  memory.NewMemory(),
		bank: csr.NewBank(),
	}
	r.ic = interrupts.NewController(r.bank)
	r.trap = traps.NewController(r.bank, r.ic)
	r.cl = clint.NewCLINT(r.ic)
	r.pipe = pipeline.NewPipeline(r.regs, r.pc, r.mem, r.bank, r.trap, r.cl,
		pipeline.NewTableSource(parsed, 0))

	return r
}

// run ticks until the pipeline halts, with a backstop against a test
// program that never drains.
func (r *rig) run(t *testing.T) {
	t.Helper()
	for i := 0; i < 10000 && !r.pipe.Halted(); i++ {
		r.pipe.Tick()
	}
	test.ExpectedSuccess(t, r.pipe.Halted())
}

func TestPipelineFill(t *testing.T) {
	// a single instruction takes the full depth of the pipe
	r := newRig(t, []string{"ADDI R1, R0, 1"})
	r.run(t)

	test.Equate(t, r.pipe.Cycles, uint64(5))
	test.Equate(t, r.pipe.Retired, uint64(1))
	test.Equate(t, r.pipe.Stalls, uint64(0))
	test.Equate(t, int(r.pipe.HaltReason()), int(pipeline.Exhausted))
	test.Equate(t, r.regs.Read(1), 1)
}

func TestIndependentInstructions(t *testing.T) {
	r := newRig(t, []string{
		"ADDI R1, R0, 1",
		"ADDI R2, R0, 2",
		"ADDI R3, R0, 3",
		"ADDI R4, R0, 4",
	})
	r.run(t)

	// perfect overlap: depth + (n-1)
	test.Equate(t, r.pipe.Cycles, uint64(8))
	test.Equate(t, r.pipe.Stalls, uint64(0))
	test.Equate(t, r.pipe.Retired, uint64(4))
}

func TestStallProducerInExecute(t *testing.T) {
	// the consumer first decodes while the producer executes: three
	// stall cycles
	r := newRig(t, []string{
		"ADD R1, R2, R3",
		"SUB R4, R1, R5",
	})
	r.run(t)

	test.Equate(t, r.pipe.Stalls, uint64(3))
	test.Equate(t, r.pipe.Retired, uint64(2))
}

func TestStallProducerInMemory(t *testing.T) {
	// one independent instruction between producer and consumer: the
	// producer is in the memory stage at first decode, two stalls
	r := newRig(t, []string{
		"ADD R1, R2, R3",
		"SUB R4, R5, R6",
		"OR R7, R1, R8",
	})
	r.run(t)

	test.Equate(t, r.pipe.Stalls, uint64(2))
	test.Equate(t, r.pipe.Retired, uint64(3))
}

func TestNoStallProducerInWriteback(t *testing.T) {
	// two instructions between: the producer reaches writeback before
	// the consumer decodes and no stall is needed
	r := newRig(t, []string{
		"ADD R1, R2, R3",
		"SUB R4, R5, R6",
		"OR R7, R8, R9",
		"XOR R10, R1, R11",
	})
	r.run(t)

	test.Equate(t, r.pipe.Stalls, uint64(0))
	test.Equate(t, r.pipe.Retired, uint64(4))
}

func TestBackToBackChain(t *testing.T) {
	r := newRig(t, []string{
		"ADDI R2, R1, 1",
		"ADDI R3, R2, 1",
		"ADDI R4, R3, 1",
	})
	r.regs.Write(1, 1)
	r.run(t)

	// each pair costs three stalls; 3 instructions + 4 fill + 6 stall
	test.Equate(t, r.pipe.Stalls, uint64(6))
	test.Equate(t, r.pipe.Cycles, uint64(13))
	test.Equate(t, r.pipe.Retired, uint64(3))
	test.Equate(t, r.regs.Read(4), 4)
}

func TestLoadUse(t *testing.T) {
	r := newRig(t, []string{
		"LW R1, 100(R0)",
		"ADD R3, R1, R4",
	})
	r.mem.Store(100, 4, 42)
	r.run(t)

	test.Equate(t, r.pipe.Stalls, uint64(3))
	test.Equate(t, r.regs.Read(1), 42)
	test.Equate(t, r.regs.Read(3), 42)
}

func TestBranchNotTaken(t *testing.T) {
	r := newRig(t, []string{
		"BEQ R1, R2, +8",
		"ADDI R3, R0, 99",
	})
	r.regs.Write(1, 1)
	r.regs.Write(2, 2)
	r.run(t)

	// a branch that falls through costs nothing
	test.Equate(t, r.pipe.Flushes, uint64(0))
	test.Equate(t, r.pipe.Stalls, uint64(0))
	test.Equate(t, r.regs.Read(3), 99)
}

func TestBranchTakenFlush(t *testing.T) {
	r := newRig(t, []string{
		"BEQ R1, R2, +8",
		"ADDI R3, R0, 99",
		"ADDI R4, R0, 7",
	})
	r.run(t)

	// R1 == R2 == 0: taken. exactly one flush; the skipped
	// instruction never retires
	test.Equate(t, r.pipe.Flushes, uint64(1))
	test.Equate(t, r.regs.Read(3), 0)
	test.Equate(t, r.regs.Read(4), 7)
	test.Equate(t, r.pipe.Retired, uint64(2))
}

func TestFlushLeavesBubbleInDecodeLatch(t *testing.T) {
	r := newRig(t, []string{
		"JAL R1, +8",
		"ADDI R5, R0, 99",
		"ADDI R6, R0, 7",
	})

	// the jump executes on tick 3; the latch it flushed must hold a
	// bubble going into tick 4
	for i := 0; i < 3; i++ {
		r.pipe.Tick()
	}
	test.Equate(t, r.pipe.Flushes, uint64(1))
	latches := r.pipe.Latches()
	test.ExpectedSuccess(t, latches[1].IsBubble())

	r.run(t)
	test.Equate(t, r.regs.Read(5), 0)
	test.Equate(t, r.regs.Read(6), 7)
}

func TestLatchesAlwaysValid(t *testing.T) {
	r := newRig(t, []string{
		"ADD R1, R2, R3",
		"SUB R4, R1, R5",
		"BEQ R0, R0, +8",
		"ADDI R6, R0, 1",
		"ADDI R7, R0, 2",
	})

	for i := 0; i < 10000 && !r.pipe.Halted(); i++ {
		r.pipe.Tick()
		for _, l := range r.pipe.Latches() {
			if l == nil {
				t.Fatalf("empty pipeline latch after cycle %d", r.pipe.Cycles)
			}
		}
	}
}

func TestProgramOrderRetirement(t *testing.T) {
	r := newRig(t, []string{
		"ADDI R1, R0, 1",
		"ADDI R2, R1, 1",
		"BEQ R0, R0, +8",
		"ADDI R3, R0, 99",
		"ADDI R4, R0, 7",
	})
	r.run(t)

	// non-bubble log entries appear in program order
	var pcs []uint32
	for _, ins := range r.pipe.Log {
		if !ins.IsBubble() {
			pcs = append(pcs, ins.PC)
		}
	}
	test.Equate(t, len(pcs), 4)
	for i := 1; i < len(pcs); i++ {
		test.ExpectedSuccess(t, pcs[i] > pcs[i-1])
	}
}

func TestCounters(t *testing.T) {
	r := newRig(t, []string{
		"ADD R1, R2, R3",
		"SUB R4, R1, R5",
	})
	r.run(t)

	// mcycle advances once per tick, minstret once per non-bubble
	// retirement
	test.Equate(t, uint64(r.bank.Read(csr.Mcycle)), r.pipe.Cycles)
	test.Equate(t, uint64(r.bank.Read(csr.Minstret)), r.pipe.Retired)
}

func TestHaltOnBreak(t *testing.T) {
	r := newRig(t, []string{
		"ADDI R1, R0, 1",
		"EBREAK",
		"ADDI R2, R0, 2",
	})
	r.pipe.HaltOnBreak = true
	r.run(t)

	test.Equate(t, int(r.pipe.HaltReason()), int(pipeline.Break))
	test.Equate(t, r.regs.Read(1), 1)
}

func TestHaltIdempotent(t *testing.T) {
	// an infinite loop: jump to self
	r := newRig(t, []string{"JAL R0, 0"})

	for i := 0; i < 100; i++ {
		r.pipe.Tick()
	}
	test.ExpectedFailure(t, r.pipe.Halted())

	r.pipe.Halt(pipeline.Budget)
	test.Equate(t, int(r.pipe.HaltReason()), int(pipeline.Budget))

	// a second halt does not change the reason; ticks do nothing
	r.pipe.Halt(pipeline.Exhausted)
	test.Equate(t, int(r.pipe.HaltReason()), int(pipeline.Budget))
	c := r.pipe.Cycles
	r.pipe.Tick()
	test.Equate(t, r.pipe.Cycles, c)
}

func TestRegisterZeroInvariant(t *testing.T) {
	r := newRig(t, []string{
		"ADDI R0, R0, 5",
		"ADD R1, R0, R0",
	})
	r.run(t)

	test.Equate(t, r.regs.Read(0), 0)
	test.Equate(t, r.regs.Read(1), 0)

	// the discarded write also never created a dependency
	test.Equate(t, r.pipe.Stalls, uint64(0))
}
