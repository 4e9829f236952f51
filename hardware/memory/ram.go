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

package memory

import (
	"fmt"
	"strings"
)

// Size is the number of bytes addressable by the 16bit address bus.
const Size = 0x10000

// RAM is a flat, writable, 64k memory area. There are no mirrors, no read-only
// areas and no memory mapped registers.
//
// RAM implements the cpubus.Memory interface.
type RAM struct {
	memory [Size]uint8
}

// NewRAM is the preferred method of initialisation for the RAM type. Memory
// is zeroed.
func NewRAM() *RAM {
	return &RAM{}
}

// String returns a hex dump of the zero page.
func (ram *RAM) String() string {
	return ram.Dump(0x0000, 256)
}

// Dump returns a hex dump of length bytes starting at origin. Dumps that run
// past the top of memory continue from address zero.
func (ram *RAM) Dump(origin uint16, length int) string {
	s := strings.Builder{}
	s.WriteString("        -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("      ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")

	address := origin &^ 0x000f
	end := int(origin) + length
	for a := int(address); a < end; a += 16 {
		s.WriteString(fmt.Sprintf("%04X | ", address))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", ram.memory[address]))
			address++
		}
		s.WriteString("\n")
	}

	return strings.Trim(s.String(), "\n")
}

// Read is an implementation of cpubus.Memory.
func (ram *RAM) Read(address uint16) uint8 {
	return ram.memory[address]
}

// Write is an implementation of cpubus.Memory.
func (ram *RAM) Write(address uint16, data uint8) {
	ram.memory[address] = data
}

// Clear is an implementation of cpubus.Memory.
func (ram *RAM) Clear() {
	for i := range ram.memory {
		ram.memory[i] = 0
	}
}

// Load copies data into memory starting at origin. Data that would run past
// the top of memory is written from address zero onwards. Returns the address
// following the last byte written.
func (ram *RAM) Load(origin uint16, data []uint8) uint16 {
	address := origin
	for _, d := range data {
		ram.memory[address] = d
		address++
	}
	return address
}
