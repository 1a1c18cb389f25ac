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

// Package curated is a helper package for the plain Go language error
// type. Curated errors are created with the Errorf() function, which is
// similar to Errorf() in the fmt package except that the format string
// also serves as the identity of the error:
//
//	e := curated.Errorf("assembler: unknown mnemonic: %s", m)
//
//	if curated.Is(e, "assembler: unknown mnemonic: %s") {
//		...
//	}
//
// The Has() function is similar to Is() but checks the whole error
// chain rather than just the outermost error. The Error() function
// normalises the message chain by removing duplicate adjacent parts,
// which alleviates the problem of when and how to wrap errors.
package curated
