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

package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. The CPU does not keep a reference to an implementation of this
// interface. Instead, an instance is lent to the CPU for the duration of each
// call to Reset() or Execute().
//
// There is no failure mode for any of the functions. The 16bit address type
// cannot represent an address outside of the 64k address space and so there
// is nothing that can go wrong. Any address arithmetic that overflows simply
// wraps around.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)

	// Clear sets every address to zero
	Clear()
}

// StackOrigin is the address of the first byte of the stack page. The stack
// pointer is only ever an 8bit value and is combined with this address to
// create the effective address.
const StackOrigin = uint16(0x0100)

// ZeroPageMask is used to restrict an address to the zero page.
const ZeroPageMask = uint16(0x00ff)
