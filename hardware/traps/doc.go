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

// Package traps implements machine-mode trap entry and exit: saving
// the PC to mepc, recording mcause/mtval, pushing the interrupt-enable
// stack in mstatus and computing the handler address from mtvec
// (direct or vectored). The pipeline talks only to this package;
// interrupt priority and edge/level logic live in the interrupts
// package.
package traps
