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

// Package pipeline implements the five-stage in-order pipe of the
// simulated core: fetch, decode, execute, memory, writeback, with a
// single-slot latch between each adjacent pair.
//
// There is no forwarding and no branch prediction. A read-after-write
// dependency stalls the consumer at decode until the producer has
// drained through writeback; a taken control transfer flushes the
// speculatively fetched slot and redirects the fetch stage. Both
// mechanisms are expressed as bubbles flowing down the pipe.
//
// Interrupts are polled before each fetch and delivered between
// instructions; work already past decode is never cancelled. The
// CLINT is stepped once per tick, so timer progression is exactly
// cycle-aligned.
package pipeline
