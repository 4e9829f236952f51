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

package cpu

import (
	"github.com/jetsetilly/m6502/hardware/memory/cpubus"
)

// the addressing mode resolvers in this file return the effective address for
// the instruction being executed. they assume that the PC points to the first
// byte of the operand. none of the resolvers access the data at the effective
// address; that is the job of the instruction.
//
// the "5" and "6" variants are for instructions that write to the effective
// address. these always take the cycle for the index addition, whether or not
// a page is crossed.

// pageCrossed is true if the high bytes of the two addresses differ.
func pageCrossed(base uint16, address uint16) bool {
	return base&0xff00 != address&0xff00
}

// AddrZeroPage returns the single byte operand as an address in the zero page.
func (mc *CPU) AddrZeroPage(cycles *int32, mem cpubus.Memory) uint16 {
	zp := mc.FetchByte(cycles, mem)
	mc.LastResult.InstructionData = uint16(zp)
	return uint16(zp)
}

// the index addition for zero page indexed addressing wraps around within
// the zero page and always takes one cycle.
func (mc *CPU) addrZeroPageIndexed(cycles *int32, index uint8, mem cpubus.Memory) uint16 {
	zp := mc.FetchByte(cycles, mem)
	mc.LastResult.InstructionData = uint16(zp)
	zp += index
	*cycles--
	return uint16(zp)
}

// AddrZeroPageX returns the operand plus the X register. The result is always
// in the zero page.
func (mc *CPU) AddrZeroPageX(cycles *int32, mem cpubus.Memory) uint16 {
	return mc.addrZeroPageIndexed(cycles, mc.X.Value(), mem)
}

// AddrZeroPageY returns the operand plus the Y register. The result is always
// in the zero page.
func (mc *CPU) AddrZeroPageY(cycles *int32, mem cpubus.Memory) uint16 {
	return mc.addrZeroPageIndexed(cycles, mc.Y.Value(), mem)
}

// AddrAbsolute returns the two byte operand.
func (mc *CPU) AddrAbsolute(cycles *int32, mem cpubus.Memory) uint16 {
	address := mc.FetchWord(cycles, mem)
	mc.LastResult.InstructionData = address
	return address
}

func (mc *CPU) addrAbsoluteIndexed(cycles *int32, index uint8, write bool, mem cpubus.Memory) uint16 {
	base := mc.FetchWord(cycles, mem)
	mc.LastResult.InstructionData = base
	address := base + uint16(index)
	if write {
		*cycles--
	} else if pageCrossed(base, address) {
		*cycles--
		mc.LastResult.PageFault = true
	}
	return address
}

// AddrAbsoluteX returns the operand plus the X register. One additional cycle
// is taken if the addition crosses a page boundary.
func (mc *CPU) AddrAbsoluteX(cycles *int32, mem cpubus.Memory) uint16 {
	return mc.addrAbsoluteIndexed(cycles, mc.X.Value(), false, mem)
}

// AddrAbsoluteY returns the operand plus the Y register. One additional cycle
// is taken if the addition crosses a page boundary.
func (mc *CPU) AddrAbsoluteY(cycles *int32, mem cpubus.Memory) uint16 {
	return mc.addrAbsoluteIndexed(cycles, mc.Y.Value(), false, mem)
}

// AddrAbsoluteX5 returns the operand plus the X register. The additional
// cycle is always taken.
func (mc *CPU) AddrAbsoluteX5(cycles *int32, mem cpubus.Memory) uint16 {
	return mc.addrAbsoluteIndexed(cycles, mc.X.Value(), true, mem)
}

// AddrAbsoluteY5 returns the operand plus the Y register. The additional
// cycle is always taken.
func (mc *CPU) AddrAbsoluteY5(cycles *int32, mem cpubus.Memory) uint16 {
	return mc.addrAbsoluteIndexed(cycles, mc.Y.Value(), true, mem)
}

// AddrIndirectX adds the X register to the zero page operand and returns the
// word stored at that zero page address.
func (mc *CPU) AddrIndirectX(cycles *int32, mem cpubus.Memory) uint16 {
	zp := mc.FetchByte(cycles, mem)
	mc.LastResult.InstructionData = uint16(zp)
	zp += mc.X.Value()
	*cycles--
	return mc.readZeroPageWord(cycles, zp, mem)
}

func (mc *CPU) addrIndirectIndexed(cycles *int32, write bool, mem cpubus.Memory) uint16 {
	zp := mc.FetchByte(cycles, mem)
	mc.LastResult.InstructionData = uint16(zp)
	base := mc.readZeroPageWord(cycles, zp, mem)
	address := base + mc.Y.Address()
	if write {
		*cycles--
	} else if pageCrossed(base, address) {
		*cycles--
		mc.LastResult.PageFault = true
	}
	return address
}

// AddrIndirectY reads the word stored at the zero page operand and adds the Y
// register to it. One additional cycle is taken if the addition crosses a page
// boundary.
func (mc *CPU) AddrIndirectY(cycles *int32, mem cpubus.Memory) uint16 {
	return mc.addrIndirectIndexed(cycles, false, mem)
}

// AddrIndirectY6 reads the word stored at the zero page operand and adds the
// Y register to it. The additional cycle is always taken.
func (mc *CPU) AddrIndirectY6(cycles *int32, mem cpubus.Memory) uint16 {
	return mc.addrIndirectIndexed(cycles, true, mem)
}
