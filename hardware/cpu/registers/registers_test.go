// This file is part of m6502.
//
// m6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// m6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with m6502.  If not, see <https://www.gnu.org/licenses/>.

package registers_test

import (
	"testing"

	"github.com/jetsetilly/m6502/hardware/cpu/registers"
	"github.com/jetsetilly/m6502/test"
)

func TestRegister(t *testing.T) {
	// initialisation
	r8 := registers.NewRegister(0, "A")
	test.ExpectEquality(t, r8.IsZero(), true)
	test.ExpectEquality(t, r8.IsNegative(), false)
	test.ExpectEquality(t, r8.Label(), "A")
	test.ExpectEquality(t, r8.String(), "A=00")

	// loading
	r8.Load(127)
	test.ExpectEquality(t, r8.Value(), uint8(127))
	test.ExpectEquality(t, r8.IsZero(), false)
	test.ExpectEquality(t, r8.IsNegative(), false)

	r8.Load(0x80)
	test.ExpectEquality(t, r8.IsNegative(), true)
	test.ExpectEquality(t, r8.Address(), uint16(0x0080))
	test.ExpectEquality(t, r8.String(), "A=80")

	r8.Load(0xff)
	test.ExpectEquality(t, r8.IsNegative(), true)
	test.ExpectEquality(t, r8.IsZero(), false)
}

func TestProgramCounter(t *testing.T) {
	// initialisation
	pc := registers.NewProgramCounter(0)
	test.ExpectEquality(t, pc.Address(), uint16(0))

	// loading & addition
	pc.Load(127)
	test.ExpectEquality(t, pc.Address(), uint16(127))
	test.ExpectEquality(t, pc.Add(2), false)
	test.ExpectEquality(t, pc.Address(), uint16(129))
	test.ExpectEquality(t, pc.String(), "0081")

	// wraparound
	pc.Load(0xffff)
	test.ExpectEquality(t, pc.Add(1), true)
	test.ExpectEquality(t, pc.Address(), uint16(0x0000))
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(0xff)
	test.ExpectEquality(t, sp.Address(), uint16(0x01ff))

	sp.Subtract(2)
	test.ExpectEquality(t, sp.Value(), uint8(0xfd))
	test.ExpectEquality(t, sp.Address(), uint16(0x01fd))

	sp.Add(2)
	test.ExpectEquality(t, sp.Address(), uint16(0x01ff))

	// the stack pointer never leaves the stack page
	sp.Add(1)
	test.ExpectEquality(t, sp.Value(), uint8(0x00))
	test.ExpectEquality(t, sp.Address(), uint16(0x0100))
	sp.Subtract(1)
	test.ExpectEquality(t, sp.Address(), uint16(0x01ff))
}

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()
	test.ExpectEquality(t, sr.String(), "sv-bdizc")

	// the unused bit is always set in the 8bit form
	test.ExpectEquality(t, sr.Value(), uint8(0x20))

	sr.Sign = true
	sr.Zero = true
	test.ExpectEquality(t, sr.String(), "Sv-bdiZc")
	test.ExpectEquality(t, sr.Value(), uint8(0xa2))

	sr.Load(0xff)
	test.ExpectEquality(t, sr.String(), "SV-BDIZC")
	test.ExpectEquality(t, sr.Value(), uint8(0xff))

	sr.Load(0x41)
	test.ExpectEquality(t, sr.String(), "sV-bdizC")

	sr.Reset()
	test.ExpectEquality(t, sr, registers.NewStatusRegister())

	// every value survives the round trip except for the unused bit
	for v := range 256 {
		sr.Load(uint8(v))
		test.ExpectEquality(t, sr.Value(), uint8(v)|0x20, v)
	}
}
