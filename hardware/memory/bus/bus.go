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

// Package bus defines the interfaces between the memory system and
// the devices mapped into it.
package bus

// Peripheral is implemented by devices that occupy an aperture in the
// address space (the UART and the CLINT). Addresses passed to the
// functions are full physical addresses, not offsets. Reads of
// unrecognised addresses inside an aperture return zero; writes to
// them are ignored. Peripheral accesses never fault.
type Peripheral interface {
	ReadRegister(address uint32) uint32
	WriteRegister(address uint32, data uint32)
}

// DebuggerBus defines the meta-operations on memory used by the
// debugger. Peek and Poke bypass the peripheral dispatch and work on
// the underlying byte store only.
type DebuggerBus interface {
	Peek(address uint32) uint8
	Poke(address uint32, data uint8)
}
