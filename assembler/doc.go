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

// Package assembler is the textual ingress path of the simulator: it
// turns mnemonic strings into the instruction records the pipeline
// consumes. It is deliberately simple — one instruction per line, no
// labels, no macros, numeric branch offsets — because its job is to
// feed test programs and small experiments, not to replace a real
// toolchain. Programs built from a compiler arrive through the binary
// image path instead.
//
// Malformed input is rejected before pipeline entry with a curated
// error; the pipeline itself never sees a structural error.
package assembler
