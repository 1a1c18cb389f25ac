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

package clint_test

import (
	"testing"

	"github.com/jetsetilly/gopherv32/hardware/csr"
	"github.com/jetsetilly/gopherv32/hardware/interrupts"
	"github.com/jetsetilly/gopherv32/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherv32/hardware/peripherals/clint"
	"github.com/jetsetilly/gopherv32/test"
)

func newCLINT() (*interrupts.Controller, *clint.CLINT) {
	ic := interrupts.NewController(csr.NewBank())
	return ic, clint.NewCLINT(ic)
}

func TestTick(t *testing.T) {
	_, cl := newCLINT()

	for i := 0; i < 10; i++ {
		cl.Step()
	}
	test.Equate(t, cl.Mtime(), uint64(10))
}

func TestTimeScale(t *testing.T) {
	_, cl := newCLINT()
	cl.TimeScale = 4

	for i := 0; i < 10; i++ {
		cl.Step()
	}
	test.Equate(t, cl.Mtime(), uint64(2))
}

func TestCompareMatch(t *testing.T) {
	ic, cl := newCLINT()

	cl.WriteRegister(memorymap.AddrMtimecmpLo, 5)
	cl.WriteRegister(memorymap.AddrMtimecmpHi, 0)

	for i := 0; i < 4; i++ {
		cl.Step()
	}
	test.ExpectedFailure(t, ic.IsPending(interrupts.Timer))

	cl.Step()
	test.ExpectedSuccess(t, ic.IsPending(interrupts.Timer))

	// writing a compare value beyond mtime quiets the line
	cl.WriteRegister(memorymap.AddrMtimecmpLo, 100)
	test.ExpectedFailure(t, ic.IsPending(interrupts.Timer))

	// writing a compare value at or below mtime does not
	cl.Step()
	test.ExpectedFailure(t, ic.IsPending(interrupts.Timer))
	cl.WriteRegister(memorymap.AddrMtimecmpLo, 1)
	cl.Step()
	test.ExpectedSuccess(t, ic.IsPending(interrupts.Timer))
}

func TestRegisterMap(t *testing.T) {
	_, cl := newCLINT()

	cl.WriteRegister(memorymap.AddrMtimeLo, 0xdddddddd)
	cl.WriteRegister(memorymap.AddrMtimeHi, 0xaaaaaaaa)
	test.Equate(t, cl.Mtime(), uint64(0xaaaaaaaadddddddd))
	test.Equate(t, cl.ReadRegister(memorymap.AddrMtimeLo), 0xdddddddd)
	test.Equate(t, cl.ReadRegister(memorymap.AddrMtimeHi), 0xaaaaaaaa)

	cl.WriteRegister(memorymap.AddrMtimecmpLo, 0x11111111)
	cl.WriteRegister(memorymap.AddrMtimecmpHi, 0x22222222)
	test.Equate(t, cl.ReadRegister(memorymap.AddrMtimecmpLo), 0x11111111)
	test.Equate(t, cl.ReadRegister(memorymap.AddrMtimecmpHi), 0x22222222)

	// unrecognised offsets inside the aperture read as zero
	test.Equate(t, cl.ReadRegister(memorymap.OriginCLINT+0x100), 0)
}

func TestSoftwareInterrupt(t *testing.T) {
	ic, cl := newCLINT()

	cl.WriteRegister(memorymap.AddrMSIP, 1)
	test.ExpectedSuccess(t, ic.IsPending(interrupts.Software))
	test.Equate(t, cl.ReadRegister(memorymap.AddrMSIP), 1)

	// only bit zero is meaningful
	cl.WriteRegister(memorymap.AddrMSIP, 0xfffffffe)
	test.ExpectedFailure(t, ic.IsPending(interrupts.Software))
	test.Equate(t, cl.ReadRegister(memorymap.AddrMSIP), 0)
}

func TestSetTimer(t *testing.T) {
	ic, cl := newCLINT()

	for i := 0; i < 10; i++ {
		cl.Step()
	}
	cl.SetTimer(5)
	test.Equate(t, cl.Mtimecmp(), uint64(15))
	test.ExpectedFailure(t, ic.IsPending(interrupts.Timer))

	for i := 0; i < 5; i++ {
		cl.Step()
	}
	test.ExpectedSuccess(t, ic.IsPending(interrupts.Timer))
}
