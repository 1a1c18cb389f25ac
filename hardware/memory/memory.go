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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherv32/hardware/memory/bus"
	"github.com/jetsetilly/gopherv32/hardware/memory/memorymap"
)

// Memory is the flat byte-addressable store of the machine, with
// aperture dispatch to the memory-mapped peripherals. Uninitialised
// bytes read as zero and any byte address is legal, so the backing
// store is a sparse map rather than a fixed array.
type Memory struct {
	ram map[uint32]uint8

	// dispatch targets for the peripheral apertures. attached by the
	// machine assembly
	peripherals map[memorymap.Area]bus.Peripheral
}

// NewMemory is the preferred method of initialisation for the Memory
// type.
func NewMemory() *Memory {
	return &Memory{
		ram:         make(map[uint32]uint8),
		peripherals: make(map[memorymap.Area]bus.Peripheral),
	}
}

// Attach a peripheral to an aperture.
func (mem *Memory) Attach(area memorymap.Area, p bus.Peripheral) {
	mem.peripherals[area] = p
}

// signExtend the low width bytes of a value to 32 bits.
func signExtend(value uint32, width int) uint32 {
	switch width {
	case 1:
		if value&0x80 != 0 {
			return value | 0xffffff00
		}
	case 2:
		if value&0x8000 != 0 {
			return value | 0xffff0000
		}
	}
	return value
}

// Load a value of the given width (1, 2 or 4 bytes) from the address.
// Narrow loads are sign-extended when signed is true and zero-extended
// otherwise. Multi-byte accesses compose little-endian from
// consecutive byte addresses; alignment is not enforced.
func (mem *Memory) Load(address uint32, width int, signed bool) uint32 {
	area := memorymap.MapAddress(address)
	if p, ok := mem.peripherals[area]; ok {
		v := p.ReadRegister(address)
		switch width {
		case 1:
			v &= 0xff
		case 2:
			v &= 0xffff
		}
		if signed {
			return signExtend(v, width)
		}
		return v
	}

	var v uint32
	for i := 0; i < width; i++ {
		v |= uint32(mem.ram[address+uint32(i)]) << (8 * i)
	}

	if signed {
		return signExtend(v, width)
	}
	return v
}

// Store the low width bytes of a value to the address, little-endian.
func (mem *Memory) Store(address uint32, width int, value uint32) {
	area := memorymap.MapAddress(address)
	if p, ok := mem.peripherals[area]; ok {
		switch width {
		case 1:
			value &= 0xff
		case 2:
			value &= 0xffff
		}
		p.WriteRegister(address, value)
		return
	}

	for i := 0; i < width; i++ {
		mem.ram[address+uint32(i)] = uint8(value >> (8 * i))
	}
}

// Peek the byte store directly, bypassing peripheral dispatch.
// Implements bus.DebuggerBus.
func (mem *Memory) Peek(address uint32) uint8 {
	return mem.ram[address]
}

// Poke the byte store directly, bypassing peripheral dispatch.
// Implements bus.DebuggerBus.
func (mem *Memory) Poke(address uint32, data uint8) {
	mem.ram[address] = data
}

// LoadImage copies a byte slice into the byte store at the given
// origin. Used to seed memory with a program image.
func (mem *Memory) LoadImage(image []byte, origin uint32) {
	for i, b := range image {
		mem.ram[origin+uint32(i)] = b
	}
}

// Dump returns a hex/ASCII formatted view of length bytes starting at
// the given address. Sixteen bytes per line.
func (mem *Memory) Dump(address uint32, length int) string {
	s := strings.Builder{}
	for i := 0; i < length; i += 16 {
		s.WriteString(fmt.Sprintf("%#08x: ", address+uint32(i)))
		for j := 0; j < 16 && i+j < length; j++ {
			s.WriteString(fmt.Sprintf("%02x ", mem.ram[address+uint32(i+j)]))
		}
		s.WriteString(" |")
		for j := 0; j < 16 && i+j < length; j++ {
			b := mem.ram[address+uint32(i+j)]
			if b >= 32 && b < 127 {
				s.WriteByte(b)
			} else {
				s.WriteByte('.')
			}
		}
		s.WriteString("|\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}

func (mem *Memory) String() string {
	return fmt.Sprintf("%d bytes touched", len(mem.ram))
}
