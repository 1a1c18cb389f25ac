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

// Package memory implements the byte-addressable store of the machine.
// Accesses falling inside a peripheral aperture (see the memorymap
// package) are dispatched to the attached peripheral and never touch
// the byte store. Everything else resolves byte-by-byte: uninitialised
// bytes read as zero, any address is legal and alignment is not
// enforced — a misaligned access simply composes byte operations.
package memory
