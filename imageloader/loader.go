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

// Package imageloader loads program files from disk. Two formats are
// understood: flat binary images of little-endian RV32I encodings,
// loaded verbatim at an origin address, and assembly listings (.s or
// .asm), which go through the assembler package. A real ELF loader is
// out of scope; linkers can produce flat images with objcopy.
package imageloader

import (
	"os"
	"strings"

	"github.com/jetsetilly/gopherv32/assembler"
	"github.com/jetsetilly/gopherv32/curated"
	"github.com/jetsetilly/gopherv32/hardware"
)

// Error patterns returned by the loader.
const (
	FileError = "imageloader: %v"
	EmptyFile = "imageloader: empty program (%s)"
)

// DefaultOrigin is where an image lands when the caller does not
// choose an address.
const DefaultOrigin = uint32(0x00000000)

// Load reads the named program file and attaches it to the machine.
// Files ending .s or .asm are treated as assembly listings; anything
// else is a flat binary image loaded at the origin.
func Load(rv *hardware.RV32, filename string, origin uint32) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return curated.Errorf(FileError, err)
	}
	if len(data) == 0 {
		return curated.Errorf(EmptyFile, filename)
	}

	lower := strings.ToLower(filename)
	if strings.HasSuffix(lower, ".s") || strings.HasSuffix(lower, ".asm") {
		program, err := assembler.Parse(strings.Split(string(data), "\n"))
		if err != nil {
			return curated.Errorf(FileError, err)
		}
		if len(program) == 0 {
			return curated.Errorf(EmptyFile, filename)
		}
		rv.AttachTable(program, origin)
		return nil
	}

	rv.AttachImage(data, origin)
	return nil
}
