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

package traps

import (
	"github.com/jetsetilly/gopherv32/hardware/csr"
	"github.com/jetsetilly/gopherv32/hardware/interrupts"
	"github.com/jetsetilly/gopherv32/logger"
)

// Synchronous exception cause codes (mcause values with bit 31 clear).
const (
	InstructionMisaligned = 0
	InstructionAccess     = 1
	IllegalInstruction    = 2
	Breakpoint            = 3
	LoadMisaligned        = 4
	LoadAccess            = 5
	StoreMisaligned       = 6
	StoreAccess           = 7
	ECallFromU            = 8
	ECallFromM            = 11
)

// Controller performs machine-mode trap entry and exit. It owns the
// CSR protocol; the question of whether an interrupt is deliverable is
// delegated to the interrupt controller.
type Controller struct {
	bank *csr.Bank
	ic   *interrupts.Controller
}

// NewController is the preferred method of initialisation for the
// Controller type.
func NewController(bank *csr.Bank, ic *interrupts.Controller) *Controller {
	return &Controller{
		bank: bank,
		ic:   ic,
	}
}

// IC returns the interrupt controller the trap controller delegates
// to.
func (tc *Controller) IC() *interrupts.Controller {
	return tc.ic
}

// enter performs the save-and-redirect sequence common to exceptions
// and interrupts, returning the handler PC.
func (tc *Controller) enter(cause uint32, epc uint32, tval uint32) uint32 {
	tc.bank.Write(csr.Mepc, epc)
	tc.bank.Write(csr.Mcause, cause)
	tc.bank.Write(csr.Mtval, tval)

	// push the interrupt-enable stack: MPIE takes the old MIE, MIE is
	// cleared, MPP records machine mode
	tc.bank.SetMPIE(tc.bank.MIE())
	tc.bank.SetMIE(false)
	tc.bank.SetMPP(csr.PrivMachine)

	base := tc.bank.MtvecBase()
	if tc.bank.MtvecMode() == csr.MtvecVectored && cause&interrupts.InterruptBit != 0 {
		return base + 4*(cause & ^uint32(interrupts.InterruptBit))
	}
	return base
}

// RaiseException enters the handler for a synchronous exception. The
// epc argument is the PC of the faulting instruction. Returns the
// handler PC.
func (tc *Controller) RaiseException(cause uint32, epc uint32, tval uint32) uint32 {
	logger.Logf("trap", "exception %d at %#08x", cause, epc)
	return tc.enter(cause&^uint32(interrupts.InterruptBit), epc, tval)
}

// CheckPendingInterrupt consults the interrupt controller and, if an
// interrupt is deliverable, performs trap entry using the next
// sequential PC as the return address. The second return value is
// false when nothing was delivered.
//
// The pending bit of a delivered level-triggered interrupt is not
// cleared here: the handler is expected to quiet the source (write
// mtimecmp, clear msip). Edge-triggered interrupts are acknowledged
// automatically.
func (tc *Controller) CheckPendingInterrupt(nextPC uint32) (uint32, bool) {
	bit, ok := tc.ic.Deliverable()
	if !ok {
		return 0, false
	}

	logger.Logf("trap", "interrupt %d delivered before fetch of %#08x", bit, nextPC)

	handler := tc.enter(interrupts.Code(bit), nextPC, 0)
	tc.ic.Acknowledge(bit)
	return handler, true
}

// ReturnFromTrap implements MRET: the interrupt-enable stack is
// popped and the saved mepc is returned as the resumption PC.
func (tc *Controller) ReturnFromTrap() uint32 {
	tc.bank.SetMIE(tc.bank.MPIE())
	tc.bank.SetMPIE(true)
	tc.bank.SetMPP(csr.PrivUser)
	return tc.bank.Read(csr.Mepc)
}
