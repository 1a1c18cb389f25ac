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

package csr

import (
	"fmt"
	"strings"
)

// AtomicOp selects the read-modify-write behaviour of the Atomic()
// function. The three values correspond to the CSRRW, CSRRS and CSRRC
// families.
type AtomicOp int

// List of valid AtomicOp values.
const (
	OpWrite AtomicOp = iota
	OpSet
	OpClear
)

func (op AtomicOp) String() string {
	switch op {
	case OpWrite:
		return "W"
	case OpSet:
		return "S"
	case OpClear:
		return "C"
	}
	panic("unknown csr atomic op")
}

// misa value identifying an RV32 core with the I base ISA.
const misaRV32I = 0x40000100

// Bank is the control-and-status register file. Storage is a dense
// 4096-entry array; only addresses in the roster are readable, which
// makes the remainder of the array the "side table" for writes to
// unimplemented CSRs.
type Bank struct {
	regs [4096]uint32

	// TimeSource supplies the value returned by reads of the time
	// shadow CSR. Attached by the machine assembly; the CLINT's mtime
	// counter is the canonical source
	TimeSource func() uint64
}

// NewBank is the preferred method of initialisation for the Bank type.
func NewBank() *Bank {
	bnk := &Bank{}
	bnk.regs[Misa] = misaRV32I
	return bnk
}

// readOnly returns true if the address is in the architecturally
// read-only block (top nibble 0xf).
func readOnly(addr uint16) bool {
	return addr&0xf00 == 0xf00
}

// rostered returns true if the address is implemented by the bank.
func rostered(addr uint16) bool {
	_, ok := names[addr]
	return ok
}

// Read the CSR at the given 12-bit address. The counter shadows read
// through to their machine-mode counterparts; addresses outside the
// roster read as zero.
func (bnk *Bank) Read(addr uint16) uint32 {
	addr &= 0xfff

	switch addr {
	case Cycle:
		return bnk.regs[Mcycle]
	case Instret:
		return bnk.regs[Minstret]
	case Time:
		if bnk.TimeSource != nil {
			return uint32(bnk.TimeSource())
		}
		return 0
	}

	if !rostered(addr) {
		return 0
	}

	return bnk.regs[addr]
}

// Write a value to the CSR at the given 12-bit address. Returns false
// if the address is read-only, in which case storage is unchanged. The
// write never faults.
func (bnk *Bank) Write(addr uint16, value uint32) bool {
	addr &= 0xfff

	if readOnly(addr) {
		return false
	}

	bnk.regs[addr] = value
	return true
}

// Atomic performs the read-modify-write at the heart of the CSR
// instructions, returning the old and new values of the CSR. The
// suppress argument implements the RV32I zero-operand shortcut: the
// read still occurs but the write phase is skipped. Per the ISA the
// shortcut applies only to the set and clear operations; the pipeline
// never asks for a suppressed OpWrite.
func (bnk *Bank) Atomic(op AtomicOp, addr uint16, operand uint32, suppress bool) (uint32, uint32) {
	addr &= 0xfff

	old := bnk.Read(addr)

	if suppress {
		return old, old
	}

	var value uint32
	switch op {
	case OpWrite:
		value = operand
	case OpSet:
		value = old | operand
	case OpClear:
		value = old & ^operand
	}

	if !bnk.Write(addr, value) {
		return old, old
	}

	return old, value
}

// SetBits in the CSR at the given address. A convenience for the trap
// and interrupt machinery, which manipulates individual bits of
// mstatus, mie and mip.
func (bnk *Bank) SetBits(addr uint16, mask uint32) {
	bnk.Write(addr, bnk.Read(addr)|mask)
}

// ClearBits in the CSR at the given address.
func (bnk *Bank) ClearBits(addr uint16, mask uint32) {
	bnk.Write(addr, bnk.Read(addr) & ^mask)
}

// IncrementCycle advances the mcycle counter. Called by the pipeline
// once per tick.
func (bnk *Bank) IncrementCycle() {
	bnk.regs[Mcycle]++
}

// IncrementInstret advances the retired-instruction counter. Called by
// the pipeline for every non-bubble retirement.
func (bnk *Bank) IncrementInstret() {
	bnk.regs[Minstret]++
}

func (bnk *Bank) String() string {
	s := strings.Builder{}
	for _, addr := range []uint16{Mstatus, Misa, Mie, Mtvec, Mscratch, Mepc, Mcause, Mtval, Mip, Mcycle, Minstret} {
		s.WriteString(fmt.Sprintf("%-8s (%#03x): %#08x\n", names[addr], addr, bnk.Read(addr)))
	}
	return strings.TrimSuffix(s.String(), "\n")
}
