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

package pipeline

import (
	"github.com/jetsetilly/gopherv32/hardware/cpu/instructions"
)

// hazardProducers is the RAW hazard detector: a pure function from the
// candidate decode record and the start-of-tick occupancy of the
// decode/execute and execute/memory latches to the list of in-flight
// producers the candidate depends on. An empty list means the decode
// can proceed.
//
// There is no forwarding in this core, so a dependency is resolved
// only by stalling until the producer has retired through writeback. A
// producer already in the memory/writeback latch at the first check is
// not a hazard: its register write completes before the candidate can
// reach the execute stage.
func hazardProducers(candidate *instructions.Instruction, dx *instructions.Instruction, xm *instructions.Instruction) []*instructions.Instruction {
	var producers []*instructions.Instruction

	for _, src := range candidate.HazardSources() {
		if dx.LiveDest() && dx.Rd == src {
			producers = append(producers, dx)
		}
		if xm.LiveDest() && xm.Rd == src {
			producers = append(producers, xm)
		}
	}

	return producers
}
