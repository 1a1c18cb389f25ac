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
	"fmt"

	"github.com/jetsetilly/gopherv32/hardware/cpu"
	"github.com/jetsetilly/gopherv32/hardware/cpu/execution"
	"github.com/jetsetilly/gopherv32/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherv32/hardware/cpu/registers"
	"github.com/jetsetilly/gopherv32/hardware/csr"
	"github.com/jetsetilly/gopherv32/hardware/memory"
	"github.com/jetsetilly/gopherv32/hardware/peripherals/clint"
	"github.com/jetsetilly/gopherv32/hardware/traps"
	"github.com/jetsetilly/gopherv32/logger"
)

// HaltReason says why the pipeline stopped ticking.
type HaltReason int

// List of valid HaltReason values.
const (
	// the pipeline is still running
	Running HaltReason = iota

	// the fetch source ran out and the pipe drained
	Exhausted

	// an EBREAK retired with HaltOnBreak configured
	Break

	// the driver's cycle budget was spent
	Budget
)

func (r HaltReason) String() string {
	switch r {
	case Running:
		return "running"
	case Exhausted:
		return "program exhausted"
	case Break:
		return "breakpoint"
	case Budget:
		return "cycle budget spent"
	}
	return "unknown halt reason"
}

// Pipeline drives the five stages of the simulated core. One call to
// Tick() is one clock cycle.
//
// The five stages are logically parallel: each reads its input latch
// as it was at the start of the tick and writes its output latch for
// the next tick. The implementation runs them sequentially in reverse
// order (W, M, X, D, F) over in-place latches, which is equivalent:
// each stage consumes its input latch before the upstream stage
// overwrites it. The hazard detector is the one consumer of more than
// one latch, so it works on explicit start-of-tick snapshots.
type Pipeline struct {
	regs  *registers.File
	pc    *registers.ProgramCounter
	mem   *memory.Memory
	bank  *csr.Bank
	trap  *traps.Controller
	clint *clint.CLINT
	src   Source

	// the single-slot latches between adjacent stages. a latch always
	// holds a record: a real instruction or a bubble, never nil
	lFD *instructions.Instruction
	lDX *instructions.Instruction
	lXM *instructions.Instruction
	lMW *instructions.Instruction

	// flush state. raised by the execute stage on a taken control
	// transfer; the decode stage kills the speculatively fetched slot
	// and the fetch stage redirects, all within the same tick
	flushPending bool
	flushTarget  uint32

	// a stalled decode keeps stalling until every recorded producer
	// has drained from the pipe
	waitingOn []*instructions.Instruction

	// the decode stage stalled this tick: fetch must not overwrite lFD
	stalled bool

	// the most recent fetch attempt found nothing at the PC
	exhausted bool

	// an EBREAK passed through writeback
	breakRetired bool

	// HaltOnBreak halts the pipeline when an EBREAK retires, instead
	// of only trapping to the breakpoint handler
	HaltOnBreak bool

	reason HaltReason

	// metrics
	Cycles  uint64
	Stalls  uint64
	Flushes uint64
	Retired uint64

	// every record that passed through writeback, bubbles included,
	// in program order
	Log []*instructions.Instruction
}

// NewPipeline is the preferred method of initialisation for the
// Pipeline type.
func NewPipeline(regs *registers.File, pc *registers.ProgramCounter, mem *memory.Memory,
	bank *csr.Bank, trap *traps.Controller, cl *clint.CLINT, src Source) *Pipeline {
	return &Pipeline{
		regs:  regs,
		pc:    pc,
		mem:   mem,
		bank:  bank,
		trap:  trap,
		clint: cl,
		src:   src,
		lFD:   instructions.NewBubble(),
		lDX:   instructions.NewBubble(),
		lXM:   instructions.NewBubble(),
		lMW:   instructions.NewBubble(),
	}
}

// Halted returns true once the pipeline has stopped ticking.
func (p *Pipeline) Halted() bool {
	return p.reason != Running
}

// HaltReason returns the reason the pipeline stopped. Running if it
// has not.
func (p *Pipeline) HaltReason() HaltReason {
	return p.reason
}

// Halt the pipeline from outside. Used by the run driver when the
// cycle budget is spent. Halting is idempotent: a pipeline that has
// already halted keeps its original reason.
func (p *Pipeline) Halt(reason HaltReason) {
	if p.reason == Running {
		p.reason = reason
		logger.Logf("pipeline", "halted: %s", reason)
	}
}

// Latches returns the start-of-next-tick occupancy of the four
// inter-stage latches, in pipe order (FD, DX, XM, MW). Used by the
// debugger and by tests.
func (p *Pipeline) Latches() [4]*instructions.Instruction {
	return [4]*instructions.Instruction{p.lFD, p.lDX, p.lXM, p.lMW}
}

// Tick advances the pipeline by one clock cycle. A tick on a halted
// pipeline does nothing.
func (p *Pipeline) Tick() {
	if p.reason != Running {
		return
	}

	p.Cycles++
	p.clint.Step()

	// start-of-tick occupancy for the hazard detector
	snapDX := p.lDX
	snapXM := p.lXM
	snapMW := p.lMW

	p.writeback()
	p.memoryStage()
	p.execute()
	p.decode(snapDX, snapXM, snapMW)
	p.fetch()

	p.bank.IncrementCycle()

	if p.breakRetired && p.HaltOnBreak {
		p.Halt(Break)
		return
	}

	if p.exhausted && p.lFD.IsBubble() && p.lDX.IsBubble() && p.lXM.IsBubble() && p.lMW.IsBubble() {
		p.Halt(Exhausted)
	}
}

// writeback consumes the memory/writeback latch, applying register and
// CSR side effects and retiring the record to the completed log.
func (p *Pipeline) writeback() {
	ins := p.lMW

	if !ins.IsBubble() {
		switch ins.Result.Kind {
		case execution.Value, execution.Load, execution.Jump:
			if ins.Rd >= 0 {
				p.regs.Write(ins.Rd, ins.Result.Value)
			}

		case execution.CSR:
			old, _ := p.bank.Atomic(ins.Result.CSROp, ins.Result.CSRAddr, ins.Result.CSROperand, ins.Result.Suppress)
			if ins.Rd >= 0 {
				p.regs.Write(ins.Rd, old)
			}
		}

		p.Retired++
		p.bank.IncrementInstret()

		if ins.Op == instructions.EBREAK {
			p.breakRetired = true
		}
	}

	p.Log = append(p.Log, ins)
}

// memoryStage moves the execute/memory latch along, performing any
// memory request in the record's result slot. Store data is read from
// the register file here rather than at execute: writeback has already
// run this tick so a value produced by the immediately preceding
// instruction is visible.
func (p *Pipeline) memoryStage() {
	ins := p.lXM

	if !ins.IsBubble() {
		switch ins.Result.Kind {
		case execution.Load:
			ins.Result.Value = p.mem.Load(ins.Result.Addr, ins.Result.Width, ins.Result.Signed)

		case execution.Store:
			ins.Result.Data = p.regs.Read(ins.Rs2)
			p.mem.Store(ins.Result.Addr, ins.Result.Width, ins.Result.Data)
		}
	}

	p.lMW = ins
}

// execute invokes the execution unit on the decode/execute latch and
// acts on control flow: taken branches and jumps raise the flush
// signal, traps enter the handler, MRET returns from it.
func (p *Pipeline) execute() {
	ins := p.lDX

	if !ins.IsBubble() {
		var rs1v, rs2v uint32
		if ins.Rs1 >= 0 {
			rs1v = p.regs.Read(ins.Rs1)
		}
		if ins.Rs2 >= 0 {
			rs2v = p.regs.Read(ins.Rs2)
		}

		ins.Result = cpu.Execute(ins, rs1v, rs2v)

		switch ins.Result.Kind {
		case execution.BranchTaken, execution.Jump:
			p.flush(ins.Result.Target)

		case execution.Trap:
			p.flush(p.trap.RaiseException(ins.Result.Cause, ins.PC, ins.Result.Tval))

		case execution.TrapReturn:
			p.flush(p.trap.ReturnFromTrap())
		}
	}

	p.lXM = ins
}

// flush raises the flush signal. The speculatively fetched instruction
// presented to decode this tick is killed and the fetch stage
// redirects to the target.
func (p *Pipeline) flush(target uint32) {
	p.flushPending = true
	p.flushTarget = target
	p.Flushes++
}

// decode runs the hazard detector and moves the fetch/decode latch
// along. On a stall the fetched record is not consumed — the same
// instruction is re-presented next tick — and a bubble goes
// downstream.
func (p *Pipeline) decode(snapDX, snapXM, snapMW *instructions.Instruction) {
	p.stalled = false

	if p.flushPending {
		// the flush kills only the in-flight-at-decode slot. stages
		// already past decode complete normally
		p.lFD = instructions.NewBubble()
		p.lDX = instructions.NewBubble()
		p.waitingOn = nil
		return
	}

	ins := p.lFD

	if ins.IsBubble() {
		p.lDX = ins
		return
	}

	// a decode that has stalled keeps stalling until its producers
	// have drained from the pipe
	if len(p.waitingOn) > 0 {
		for _, w := range p.waitingOn {
			if w == snapDX || w == snapXM || w == snapMW {
				p.stall()
				return
			}
		}
		p.waitingOn = nil
	}

	// a fresh check inspects only the decode/execute and
	// execute/memory latches
	if producers := hazardProducers(ins, snapDX, snapXM); len(producers) > 0 {
		p.waitingOn = producers
		p.stall()
		return
	}

	p.lDX = ins
	p.lFD = instructions.NewBubble()
}

func (p *Pipeline) stall() {
	p.stalled = true
	p.Stalls++
	p.lDX = instructions.NewBubble()
}

// fetch applies any pending redirect, polls for a deliverable
// interrupt and fetches the instruction at the PC.
func (p *Pipeline) fetch() {
	if p.flushPending {
		p.pc.Load(p.flushTarget)
		p.flushPending = false
	}

	// a stalled decode did not consume the fetch/decode latch; the
	// same record is re-presented next tick
	if p.stalled {
		return
	}

	// interrupt delivery happens between instructions: before a
	// fetch, never cancelling work already in the pipe. mepc is the
	// PC that would have been fetched
	if handler, ok := p.trap.CheckPendingInterrupt(p.pc.Address()); ok {
		p.lFD = instructions.NewBubble()
		p.pc.Load(handler)
		p.Flushes++
		return
	}

	ins, ok := p.src.Fetch(p.pc.Address())
	if !ok {
		p.exhausted = true
		p.lFD = instructions.NewBubble()
		return
	}

	p.exhausted = false
	p.lFD = ins
	p.pc.Advance()
}

func (p *Pipeline) String() string {
	return fmt.Sprintf("cycle %d: FD=[%s] DX=[%s] XM=[%s] MW=[%s]",
		p.Cycles, p.lFD, p.lDX, p.lXM, p.lMW)
}
