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

// Package csr implements the machine-mode control-and-status register
// bank of the simulated core.
//
// Storage is a dense array of 4096 words. Addresses with a top nibble
// of 0xf are read-only: writes leave storage unchanged, without
// faulting; Write() reports false and Atomic() returns the old value. Addresses outside the implemented
// roster accept writes into the backing array but always read as zero.
//
// The execute stage never touches the backing array directly. CSR
// instructions go through Atomic(), which implements the CSRRW/S/C
// read-modify-write including the zero-operand shortcut for the set
// and clear variants. Field-level accessors (mstatus.MIE and friends)
// are small mask-and-shift helpers used by the trap controller and
// interrupt controller.
package csr
