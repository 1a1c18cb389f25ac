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

// Package cpu implements the execution unit of the simulated RV32I
// core. Execute() is a pure function: given an instruction record, the
// values of its source registers and nothing else, it produces the
// result descriptor that the later pipeline stages act on. Keeping it
// pure makes the pipeline's hazard behaviour the only source of
// operand-timing effects, which is the point of the simulation.
package cpu
