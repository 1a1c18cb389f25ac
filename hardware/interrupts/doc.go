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

// Package interrupts models the pending/enable/priority logic for the
// three standard machine interrupts (software, timer, external)
// against the mip, mie and mstatus CSRs. It answers one question for
// the trap controller: is there anything to deliver? The delivery
// itself — the CSR protocol of a trap entry — belongs to the traps
// package.
package interrupts
