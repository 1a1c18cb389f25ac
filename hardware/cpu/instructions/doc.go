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

// Package instructions defines the decoded instruction record and the
// operation/class enumerations. Records reach the pipeline through one
// of two feeders: the assembler package (textual mnemonics) or the
// decoder package (32-bit encodings fetched from memory). Both produce
// the same record type.
//
// The BUBBLE record deserves a note: it has the same lifecycle as any
// other record, travelling through the latches and being appended to
// the completed-instruction log, but it never writes architectural
// state. Stalls and flushes are expressed entirely in terms of
// bubbles.
package instructions
