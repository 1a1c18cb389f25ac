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

// Package debugger is the interactive front-end to the simulator:
// single-stepping, breakpoints, and inspection of registers, CSRs,
// memory, the UART stream and the pipeline latches. The VIZ command
// writes a graphviz graph of the live machine structure for when a
// hex dump is not enough.
//
// The debugger drives a terminal.Terminal; the choice between the
// colour and plain implementations belongs to the caller.
package debugger
