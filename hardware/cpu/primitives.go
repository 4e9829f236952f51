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

// the primitive functions in this file are the only functions that consume
// cycles by reading from or writing to memory. in each case the cycles
// argument is decremented by one for every byte accessed.

// FetchByte reads the byte pointed to by the PC and advances the PC by one.
func (mc *CPU) FetchByte(cycles *int32, mem cpubus.Memory) uint8 {
	v := mem.Read(mc.PC.Address())
	mc.PC.Add(1)
	*cycles--
	mc.LastResult.ByteCount++
	return v
}

// FetchWord reads the little-endian word pointed to by the PC and advances
// the PC by two.
func (mc *CPU) FetchWord(cycles *int32, mem cpubus.Memory) uint16 {
	lo := mc.FetchByte(cycles, mem)
	hi := mc.FetchByte(cycles, mem)
	return (uint16(hi) << 8) | uint16(lo)
}

// ReadByte reads the byte at address. The PC is not changed.
func (mc *CPU) ReadByte(cycles *int32, address uint16, mem cpubus.Memory) uint8 {
	*cycles--
	return mem.Read(address)
}

// ReadWord reads the little-endian word at address. The high byte is read
// from address+1, wrapping at the top of memory. The PC is not changed.
func (mc *CPU) ReadWord(cycles *int32, address uint16, mem cpubus.Memory) uint16 {
	lo := mc.ReadByte(cycles, address, mem)
	hi := mc.ReadByte(cycles, address+1, mem)
	return (uint16(hi) << 8) | uint16(lo)
}

// readZeroPageWord is like ReadWord except that the high byte is read from
// the zero page even when address is 0x00ff.
func (mc *CPU) readZeroPageWord(cycles *int32, address uint8, mem cpubus.Memory) uint16 {
	lo := mc.ReadByte(cycles, uint16(address), mem)
	hi := mc.ReadByte(cycles, uint16(address+1), mem)
	return (uint16(hi) << 8) | uint16(lo)
}

// WriteByte writes value to address.
func (mc *CPU) WriteByte(cycles *int32, value uint8, address uint16, mem cpubus.Memory) {
	*cycles--
	mem.Write(address, value)
}

// WriteWord writes value to address in little-endian order. The low byte is
// written to address and the high byte to address+1.
func (mc *CPU) WriteWord(cycles *int32, value uint16, address uint16, mem cpubus.Memory) {
	mc.WriteByte(cycles, uint8(value), address, mem)
	mc.WriteByte(cycles, uint8(value>>8), address+1, mem)
}

// StackAddress returns the effective address of the stack pointer.
func (mc *CPU) StackAddress() uint16 {
	return mc.SP.Address()
}

// PushPCToStack writes PC-1 to the two bytes below the stack address and
// moves the stack pointer down by two. The value is one less than the return
// address. RTS adds the one back.
func (mc *CPU) PushPCToStack(cycles *int32, mem cpubus.Memory) {
	mc.WriteWord(cycles, mc.PC.Address()-1, mc.StackAddress()-1, mem)
	mc.SP.Subtract(2)
}

// PopWordFromStack reads the word above the stack address and moves the
// stack pointer up by two. Popping costs one internal cycle in addition to
// the two cycles taken by the read.
func (mc *CPU) PopWordFromStack(cycles *int32, mem cpubus.Memory) uint16 {
	v := mc.ReadWord(cycles, mc.StackAddress()+1, mem)
	mc.SP.Add(2)
	*cycles--
	return v
}

// PushByteToStack writes value to the stack address and moves the stack
// pointer down by one.
func (mc *CPU) PushByteToStack(cycles *int32, value uint8, mem cpubus.Memory) {
	mc.WriteByte(cycles, value, mc.StackAddress(), mem)
	mc.SP.Subtract(1)
}

// PopByteFromStack moves the stack pointer up by one and reads the byte at
// the new stack address. Moving the stack pointer costs one cycle.
func (mc *CPU) PopByteFromStack(cycles *int32, mem cpubus.Memory) uint8 {
	mc.SP.Add(1)
	*cycles--
	return mc.ReadByte(cycles, mc.StackAddress(), mem)
}
