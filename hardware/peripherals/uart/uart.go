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

// Package uart implements the write-only byte sink of the machine.
// Stores to the data register emit the low byte to the attached output
// stream; loads from the status register always report the
// transmitter as ready. Guest programs use it for printf-style output.
package uart

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopherv32/hardware/memory/memorymap"
)

// status register bit 0: transmitter ready. the simulated transmitter
// is always ready
const statusTXReady = 0x01

// UART is the memory-mapped byte-output device.
type UART struct {
	output io.Writer

	// every transmitted byte is also captured here for inspection at
	// the end of a run
	stream []byte
}

// NewUART is the preferred method of initialisation for the UART type.
// The output argument may be nil, in which case bytes are only
// captured internally.
func NewUART(output io.Writer) *UART {
	return &UART{output: output}
}

// ReadRegister implements the bus.Peripheral interface.
func (u *UART) ReadRegister(address uint32) uint32 {
	if address == memorymap.AddrUARTStatus {
		return statusTXReady
	}
	return 0
}

// WriteRegister implements the bus.Peripheral interface. Only the data
// register accepts writes; anything else in the aperture is ignored.
func (u *UART) WriteRegister(address uint32, data uint32) {
	if address != memorymap.AddrUARTData {
		return
	}

	b := byte(data)
	u.stream = append(u.stream, b)
	if u.output != nil {
		u.output.Write([]byte{b})
	}
}

// Stream returns the bytes transmitted so far.
func (u *UART) Stream() []byte {
	return u.stream
}

func (u *UART) String() string {
	return fmt.Sprintf("%d bytes transmitted", len(u.stream))
}
