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

package interrupts

import (
	"fmt"

	"github.com/jetsetilly/gopherv32/hardware/csr"
)

// Interrupt bit positions in the mie and mip CSRs.
const (
	Software = 3
	Timer    = 7
	External = 11
)

// InterruptBit marks an mcause value as an interrupt rather than an
// exception.
const InterruptBit = 0x80000000

// Code converts an interrupt bit position to the corresponding mcause
// value.
func Code(bit int) uint32 {
	return InterruptBit | uint32(bit)
}

// delivery priority. external before software before timer
var priority = []int{External, Software, Timer}

// Controller models the pending/enable/priority logic for the three
// standard machine interrupts. State lives in the mip, mie and mstatus
// CSRs; the controller itself only adds the edge/level configuration.
type Controller struct {
	bank *csr.Bank

	// interrupts default to level-triggered. an edge-triggered bit is
	// cleared automatically on Acknowledge()
	edgeTriggered map[int]bool
}

// NewController is the preferred method of initialisation for the
// Controller type.
func NewController(bank *csr.Bank) *Controller {
	return &Controller{
		bank:          bank,
		edgeTriggered: make(map[int]bool),
	}
}

func valid(bit int) bool {
	return bit == Software || bit == Timer || bit == External
}

// SetPending asserts the interrupt's pending bit in mip.
func (ic *Controller) SetPending(bit int) {
	if !valid(bit) {
		return
	}
	ic.bank.SetBits(csr.Mip, 1<<bit)
}

// ClearPending deasserts the interrupt's pending bit in mip.
func (ic *Controller) ClearPending(bit int) {
	if !valid(bit) {
		return
	}
	ic.bank.ClearBits(csr.Mip, 1<<bit)
}

// IsPending returns the state of the interrupt's pending bit in mip.
func (ic *Controller) IsPending(bit int) bool {
	return ic.bank.Read(csr.Mip)&(1<<bit) != 0
}

// Enable the interrupt in mie.
func (ic *Controller) Enable(bit int) {
	if !valid(bit) {
		return
	}
	ic.bank.SetBits(csr.Mie, 1<<bit)
}

// Disable the interrupt in mie.
func (ic *Controller) Disable(bit int) {
	if !valid(bit) {
		return
	}
	ic.bank.ClearBits(csr.Mie, 1<<bit)
}

// IsEnabled returns the state of the interrupt's enable bit in mie.
func (ic *Controller) IsEnabled(bit int) bool {
	return ic.bank.Read(csr.Mie)&(1<<bit) != 0
}

// SetGlobalEnable manipulates mstatus.MIE.
func (ic *Controller) SetGlobalEnable(enable bool) {
	ic.bank.SetMIE(enable)
}

// Deliverable returns the highest-priority interrupt that is pending
// in mip, enabled in mie and allowed by mstatus.MIE. The second return
// value is false when nothing qualifies.
func (ic *Controller) Deliverable() (int, bool) {
	if !ic.bank.MIE() {
		return 0, false
	}

	mask := ic.bank.Read(csr.Mip) & ic.bank.Read(csr.Mie)
	for _, bit := range priority {
		if mask&(1<<bit) != 0 {
			return bit, true
		}
	}

	return 0, false
}

// SetEdgeTriggered configures the interrupt as edge-triggered. An
// edge-triggered interrupt's pending bit is cleared on Acknowledge()
// and does not re-assert until the source produces a new edge.
func (ic *Controller) SetEdgeTriggered(bit int) {
	if valid(bit) {
		ic.edgeTriggered[bit] = true
	}
}

// SetLevelTriggered configures the interrupt as level-triggered (the
// default). A level-triggered pending bit stays asserted as long as
// the source is asserted; the handler must quiet the source.
func (ic *Controller) SetLevelTriggered(bit int) {
	delete(ic.edgeTriggered, bit)
}

// IsEdgeTriggered returns the triggering discipline for the interrupt.
func (ic *Controller) IsEdgeTriggered(bit int) bool {
	return ic.edgeTriggered[bit]
}

// Acknowledge an interrupt after delivery. Only edge-triggered
// interrupts are affected; a level-triggered pending bit remains set
// until its source is quieted.
func (ic *Controller) Acknowledge(bit int) {
	if ic.edgeTriggered[bit] {
		ic.ClearPending(bit)
	}
}

func (ic *Controller) String() string {
	return fmt.Sprintf("global=%v pending: sw=%v t=%v e=%v enabled: sw=%v t=%v e=%v",
		ic.bank.MIE(),
		ic.IsPending(Software), ic.IsPending(Timer), ic.IsPending(External),
		ic.IsEnabled(Software), ic.IsEnabled(Timer), ic.IsEnabled(External),
	)
}
