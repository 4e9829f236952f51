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

package memory_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/m6502/hardware/memory"
	"github.com/jetsetilly/m6502/hardware/memory/cpubus"
	"github.com/jetsetilly/m6502/test"
)

func TestImplementsCPUBus(t *testing.T) {
	var mem cpubus.Memory
	test.DemandImplements(t, memory.NewRAM(), mem)
}

func TestReadWrite(t *testing.T) {
	mem := memory.NewRAM()

	test.ExpectEquality(t, mem.Read(0x0000), uint8(0x00))
	test.ExpectEquality(t, mem.Read(0xffff), uint8(0x00))

	mem.Write(0x0000, 0x01)
	mem.Write(0x4402, 0x37)
	mem.Write(0xffff, 0xff)
	test.ExpectEquality(t, mem.Read(0x0000), uint8(0x01))
	test.ExpectEquality(t, mem.Read(0x4402), uint8(0x37))
	test.ExpectEquality(t, mem.Read(0xffff), uint8(0xff))

	// neighbouring addresses are untouched
	test.ExpectEquality(t, mem.Read(0x4401), uint8(0x00))
	test.ExpectEquality(t, mem.Read(0x4403), uint8(0x00))
}

func TestAddressWraparound(t *testing.T) {
	mem := memory.NewRAM()

	var address uint16 = 0xffff
	address++
	mem.Write(address, 0x42)
	test.ExpectEquality(t, mem.Read(0x0000), uint8(0x42))
}

func TestClear(t *testing.T) {
	mem := memory.NewRAM()
	for i := 0; i < memory.Size; i += 0x101 {
		mem.Write(uint16(i), 0xaa)
	}
	mem.Clear()
	for i := 0; i < memory.Size; i++ {
		if mem.Read(uint16(i)) != 0x00 {
			t.Fatalf("memory not cleared at %#04x", i)
		}
	}
}

func TestLoad(t *testing.T) {
	mem := memory.NewRAM()

	end := mem.Load(0x0200, []uint8{0xa9, 0x42, 0x85, 0x10})
	test.ExpectEquality(t, end, uint16(0x0204))
	test.ExpectEquality(t, mem.Read(0x0200), uint8(0xa9))
	test.ExpectEquality(t, mem.Read(0x0203), uint8(0x10))

	// loading past the top of memory continues from address zero
	end = mem.Load(0xfffe, []uint8{0x01, 0x02, 0x03})
	test.ExpectEquality(t, end, uint16(0x0001))
	test.ExpectEquality(t, mem.Read(0xfffe), uint8(0x01))
	test.ExpectEquality(t, mem.Read(0xffff), uint8(0x02))
	test.ExpectEquality(t, mem.Read(0x0000), uint8(0x03))
}

func TestDump(t *testing.T) {
	mem := memory.NewRAM()
	mem.Write(0x0011, 0xab)

	s := mem.Dump(0x0010, 16)
	lines := strings.Split(s, "\n")
	test.DemandEquality(t, len(lines), 3)
	test.ExpectEquality(t, strings.HasPrefix(lines[2], "0010 |  00 ab"), true)

	// the String() function dumps the zero page
	test.ExpectEquality(t, len(strings.Split(mem.String(), "\n")), 18)
}
