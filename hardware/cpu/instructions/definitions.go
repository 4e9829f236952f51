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

package instructions

// the list of implemented instructions. the position in the list is not
// important because GetDefinitions() arranges them by opcode.
var definitions = []Definition{
	{OpCode: 0x08, Operator: Php, Target: NoTarget, Bytes: 1, Cycles: 3, AddressingMode: Implied, PageSensitive: false, Effect: Write},
	{OpCode: 0x20, Operator: Jsr, Target: NoTarget, Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: Subroutine},
	{OpCode: 0x28, Operator: Plp, Target: NoTarget, Bytes: 1, Cycles: 4, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0x48, Operator: Pha, Target: TargetA, Bytes: 1, Cycles: 3, AddressingMode: Implied, PageSensitive: false, Effect: Write},
	{OpCode: 0x4c, Operator: Jmp, Target: NoTarget, Bytes: 3, Cycles: 3, AddressingMode: Absolute, PageSensitive: false, Effect: Flow},
	{OpCode: 0x60, Operator: Rts, Target: NoTarget, Bytes: 1, Cycles: 6, AddressingMode: Implied, PageSensitive: false, Effect: Subroutine},
	{OpCode: 0x68, Operator: Pla, Target: TargetA, Bytes: 1, Cycles: 4, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0x6c, Operator: Jmp, Target: NoTarget, Bytes: 3, Cycles: 5, AddressingMode: Indirect, PageSensitive: false, Effect: Flow},
	{OpCode: 0x81, Operator: Sta, Target: TargetA, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Write},
	{OpCode: 0x84, Operator: Sty, Target: TargetY, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write},
	{OpCode: 0x85, Operator: Sta, Target: TargetA, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write},
	{OpCode: 0x86, Operator: Stx, Target: TargetX, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write},
	{OpCode: 0x8a, Operator: Txa, Target: TargetA, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0x8c, Operator: Sty, Target: TargetY, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write},
	{OpCode: 0x8d, Operator: Sta, Target: TargetA, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write},
	{OpCode: 0x8e, Operator: Stx, Target: TargetX, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write},
	{OpCode: 0x91, Operator: Sta, Target: TargetA, Bytes: 2, Cycles: 6, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: Write},
	{OpCode: 0x94, Operator: Sty, Target: TargetY, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Write},
	{OpCode: 0x95, Operator: Sta, Target: TargetA, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Write},
	{OpCode: 0x96, Operator: Stx, Target: TargetX, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, PageSensitive: false, Effect: Write},
	{OpCode: 0x98, Operator: Tya, Target: TargetA, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0x99, Operator: Sta, Target: TargetA, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: Write},
	{OpCode: 0x9a, Operator: Txs, Target: NoTarget, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0x9d, Operator: Sta, Target: TargetA, Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: Write},
	{OpCode: 0xa0, Operator: Ldy, Target: TargetY, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0xa1, Operator: Lda, Target: TargetA, Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
	{OpCode: 0xa2, Operator: Ldx, Target: TargetX, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0xa4, Operator: Ldy, Target: TargetY, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	{OpCode: 0xa5, Operator: Lda, Target: TargetA, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	{OpCode: 0xa6, Operator: Ldx, Target: TargetX, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	{OpCode: 0xa8, Operator: Tay, Target: TargetY, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0xa9, Operator: Lda, Target: TargetA, Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	{OpCode: 0xaa, Operator: Tax, Target: TargetX, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0xac, Operator: Ldy, Target: TargetY, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	{OpCode: 0xad, Operator: Lda, Target: TargetA, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	{OpCode: 0xae, Operator: Ldx, Target: TargetX, Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	{OpCode: 0xb1, Operator: Lda, Target: TargetA, Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	{OpCode: 0xb4, Operator: Ldy, Target: TargetY, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	{OpCode: 0xb5, Operator: Lda, Target: TargetA, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	{OpCode: 0xb6, Operator: Ldx, Target: TargetX, Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, PageSensitive: false, Effect: Read},
	{OpCode: 0xb9, Operator: Lda, Target: TargetA, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	{OpCode: 0xba, Operator: Tsx, Target: TargetX, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	{OpCode: 0xbc, Operator: Ldy, Target: TargetY, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	{OpCode: 0xbd, Operator: Lda, Target: TargetA, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	{OpCode: 0xbe, Operator: Ldx, Target: TargetX, Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	{OpCode: 0xea, Operator: Nop, Target: NoTarget, Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
}

// table is indexed by opcode. undefined opcodes are nil.
var table [256]*Definition

func init() {
	for i := range definitions {
		table[definitions[i].OpCode] = &definitions[i]
	}
}

// GetDefinitions returns the table of instruction definitions for the 6502.
// The table has exactly 256 entries, indexed by opcode. Opcodes that are not
// implemented have a nil entry.
func GetDefinitions() []*Definition {
	defns := make([]*Definition, len(table))
	copy(defns, table[:])
	return defns
}

// Lookup returns the definition for the opcode. The boolean return value is
// false if the opcode is not implemented.
func Lookup(opcode uint8) (*Definition, bool) {
	defn := table[opcode]
	return defn, defn != nil
}
