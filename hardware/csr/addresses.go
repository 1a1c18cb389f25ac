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

package csr

// Machine-mode CSR addresses implemented by the bank. Addresses not in
// this roster read as zero (writes are retained but unreadable).
const (
	Mstatus  = 0x300
	Misa     = 0x301
	Mie      = 0x304
	Mtvec    = 0x305
	Mscratch = 0x340
	Mepc     = 0x341
	Mcause   = 0x342
	Mtval    = 0x343
	Mip      = 0x344
	Mcycle   = 0xb00
	Minstret = 0xb02

	// read-only user-mode shadows of the machine counters
	Cycle   = 0xc00
	Time    = 0xc01
	Instret = 0xc02

	// machine information registers. in the read-only block
	Mvendorid = 0xf11
	Marchid   = 0xf12
	Mimpid    = 0xf13
	Mhartid   = 0xf14
)

// names of the rostered CSRs, for disassembly and debugger output.
var names = map[uint16]string{
	Mstatus:   "mstatus",
	Misa:      "misa",
	Mie:       "mie",
	Mtvec:     "mtvec",
	Mscratch:  "mscratch",
	Mepc:      "mepc",
	Mcause:    "mcause",
	Mtval:     "mtval",
	Mip:       "mip",
	Mcycle:    "mcycle",
	Minstret:  "minstret",
	Cycle:     "cycle",
	Time:      "time",
	Instret:   "instret",
	Mvendorid: "mvendorid",
	Marchid:   "marchid",
	Mimpid:    "mimpid",
	Mhartid:   "mhartid",
}

// Name returns the architectural name of a CSR address, or the empty
// string for addresses outside the roster.
func Name(addr uint16) string {
	if n, ok := names[addr&0xfff]; ok {
		return n
	}
	return ""
}

// Address returns the CSR address for an architectural name. The
// second return value is false if the name is not in the roster.
func Address(name string) (uint16, bool) {
	for a, n := range names {
		if n == name {
			return a, true
		}
	}
	return 0, false
}
