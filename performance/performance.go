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

// Package performance measures the simulation rate of the machine:
// how many simulated cycles the host gets through per second. With
// profiling enabled, a pprof CPU profile of the run is written for
// later inspection; the statsview package (when built in) covers the
// live-view case.
package performance

import (
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"time"

	"github.com/jetsetilly/gopherv32/curated"
	"github.com/jetsetilly/gopherv32/hardware"
)

// Error patterns returned by the performance functions.
const (
	ProfilingError = "performance: profiling: %v"
)

// the file the CPU profile is written to when profiling is enabled.
const profileFilename = "performance_cpu.profile"

// Check runs the attached program for the given duration (or until
// the pipeline halts) and reports the simulation rate. The guest
// program is expected to loop; a program that halts early simply ends
// the measurement.
func Check(output io.Writer, rv *hardware.RV32, duration time.Duration, profile bool) error {
	if profile {
		f, err := os.Create(profileFilename)
		if err != nil {
			return curated.Errorf(ProfilingError, err)
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			return curated.Errorf(ProfilingError, err)
		}
		defer pprof.StopCPUProfile()
	}

	startCycles := rv.Pipe.Cycles
	start := time.Now()
	deadline := start.Add(duration)

	// check the clock in batches. the tick itself is far too cheap to
	// pay for a time.Now() on every iteration
	const batch = 16384

	for !rv.Pipe.Halted() && time.Now().Before(deadline) {
		for i := 0; i < batch && !rv.Pipe.Halted(); i++ {
			rv.Step()
		}
	}

	cycles := rv.Pipe.Cycles - startCycles
	seconds := time.Since(start).Seconds()
	fmt.Fprintf(output, "%d cycles in %.2fs (%.0f cycles/sec)\n", cycles, seconds, float64(cycles)/seconds)

	if profile {
		fmt.Fprintf(output, "CPU profile written to %s\n", profileFilename)
	}

	return nil
}
