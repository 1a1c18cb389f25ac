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

// mstatus field positions used by the trap machinery.
const (
	MstatusMIEBit   = 3
	MstatusMPIEBit  = 7
	MstatusMPPShift = 11
	MstatusMPPMask  = 0x3
)

// machine privilege level as encoded in mstatus.MPP.
const (
	PrivUser    = 0
	PrivMachine = 3
)

// MIE returns the state of the global interrupt-enable bit in mstatus.
func (bnk *Bank) MIE() bool {
	return bnk.Read(Mstatus)&(1<<MstatusMIEBit) != 0
}

// SetMIE sets or clears the global interrupt-enable bit in mstatus.
func (bnk *Bank) SetMIE(enable bool) {
	if enable {
		bnk.SetBits(Mstatus, 1<<MstatusMIEBit)
	} else {
		bnk.ClearBits(Mstatus, 1<<MstatusMIEBit)
	}
}

// MPIE returns the state of the previous-interrupt-enable bit in
// mstatus.
func (bnk *Bank) MPIE() bool {
	return bnk.Read(Mstatus)&(1<<MstatusMPIEBit) != 0
}

// SetMPIE sets or clears the previous-interrupt-enable bit in mstatus.
func (bnk *Bank) SetMPIE(enable bool) {
	if enable {
		bnk.SetBits(Mstatus, 1<<MstatusMPIEBit)
	} else {
		bnk.ClearBits(Mstatus, 1<<MstatusMPIEBit)
	}
}

// MPP returns the previous-privilege field of mstatus.
func (bnk *Bank) MPP() uint32 {
	return (bnk.Read(Mstatus) >> MstatusMPPShift) & MstatusMPPMask
}

// SetMPP writes the previous-privilege field of mstatus.
func (bnk *Bank) SetMPP(priv uint32) {
	v := bnk.Read(Mstatus)
	v &= ^uint32(MstatusMPPMask << MstatusMPPShift)
	v |= (priv & MstatusMPPMask) << MstatusMPPShift
	bnk.Write(Mstatus, v)
}

// mtvec mode values. bits 1:0 of the mtvec CSR.
const (
	MtvecDirect   = 0
	MtvecVectored = 1
)

// MtvecBase returns the handler base address in mtvec (low two bits
// cleared).
func (bnk *Bank) MtvecBase() uint32 {
	return bnk.Read(Mtvec) & ^uint32(0x3)
}

// MtvecMode returns the vectoring mode in mtvec.
func (bnk *Bank) MtvecMode() uint32 {
	return bnk.Read(Mtvec) & 0x3
}
