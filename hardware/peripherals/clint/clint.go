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

// Package clint implements the core-local interruptor: a 64-bit
// free-running counter (mtime), its compare register (mtimecmp) and
// the software-interrupt word (msip). The counter is stepped once per
// pipeline tick and advances by one every TimeScale steps. A compare match
// asserts the timer line level-style; the handler quiets it by
// writing a new compare value. Bit zero of msip drives the software
// interrupt line directly.
package clint

import (
	"fmt"

	"github.com/jetsetilly/gopherv32/hardware/interrupts"
	"github.com/jetsetilly/gopherv32/hardware/memory/memorymap"
)

// CLINT is the memory-mapped timer and software-interrupt peripheral.
type CLINT struct {
	ic *interrupts.Controller

	mtime    uint64
	mtimecmp uint64
	msip     uint32

	// mtime advances by one every TimeScale ticks. the default scale
	// of one advances it every tick
	TimeScale int

	// tick counter for the time scaling
	ticks int
}

// NewCLINT is the preferred method of initialisation for the CLINT
// type. The compare register starts at its maximum value so that no
// interrupt fires until the guest programs one.
func NewCLINT(ic *interrupts.Controller) *CLINT {
	return &CLINT{
		ic:        ic,
		mtimecmp:  ^uint64(0),
		TimeScale: 1,
	}
}

// Step advances the timer. Called once per pipeline tick.
func (cl *CLINT) Step() {
	cl.ticks++
	if cl.ticks < cl.TimeScale {
		return
	}
	cl.ticks = 0
	cl.mtime++

	// the timer line is level-triggered: re-asserted every time mtime
	// advances while the compare condition holds
	if cl.mtime >= cl.mtimecmp {
		cl.ic.SetPending(interrupts.Timer)
	}
}

// Mtime returns the full 64-bit counter value.
func (cl *CLINT) Mtime() uint64 {
	return cl.mtime
}

// Mtimecmp returns the full 64-bit compare value.
func (cl *CLINT) Mtimecmp() uint64 {
	return cl.mtimecmp
}

// SetTimer programs a timer interrupt interval ticks from now.
func (cl *CLINT) SetTimer(interval uint64) {
	cl.setMtimecmp(cl.mtime + interval)
}

// setMtimecmp writes the compare register, clearing the timer line
// only if the new compare value is beyond the current counter.
func (cl *CLINT) setMtimecmp(value uint64) {
	cl.mtimecmp = value
	if cl.mtimecmp > cl.mtime {
		cl.ic.ClearPending(interrupts.Timer)
	}
}

// setMsip writes the software-interrupt word. Only bit zero is
// meaningful.
func (cl *CLINT) setMsip(value uint32) {
	cl.msip = value & 0x1
	if cl.msip != 0 {
		cl.ic.SetPending(interrupts.Software)
	} else {
		cl.ic.ClearPending(interrupts.Software)
	}
}

// ReadRegister implements the bus.Peripheral interface.
func (cl *CLINT) ReadRegister(address uint32) uint32 {
	switch address {
	case memorymap.AddrMSIP:
		return cl.msip
	case memorymap.AddrMtimecmpLo:
		return uint32(cl.mtimecmp)
	case memorymap.AddrMtimecmpHi:
		return uint32(cl.mtimecmp >> 32)
	case memorymap.AddrMtimeLo:
		return uint32(cl.mtime)
	case memorymap.AddrMtimeHi:
		return uint32(cl.mtime >> 32)
	}
	return 0
}

// WriteRegister implements the bus.Peripheral interface.
func (cl *CLINT) WriteRegister(address uint32, data uint32) {
	switch address {
	case memorymap.AddrMSIP:
		cl.setMsip(data)
	case memorymap.AddrMtimecmpLo:
		cl.setMtimecmp(cl.mtimecmp&0xffffffff00000000 | uint64(data))
	case memorymap.AddrMtimecmpHi:
		cl.setMtimecmp(cl.mtimecmp&0x00000000ffffffff | uint64(data)<<32)
	case memorymap.AddrMtimeLo:
		cl.mtime = cl.mtime&0xffffffff00000000 | uint64(data)
	case memorymap.AddrMtimeHi:
		cl.mtime = cl.mtime&0x00000000ffffffff | uint64(data)<<32
	}
}

func (cl *CLINT) String() string {
	return fmt.Sprintf("mtime=%d mtimecmp=%d msip=%d", cl.mtime, cl.mtimecmp, cl.msip)
}
