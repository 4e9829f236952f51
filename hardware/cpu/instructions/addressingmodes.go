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

import "fmt"

// AddressingMode describes the method data for the instruction should be received.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Immediate

	Absolute // abs
	ZeroPage // zpg
	Indirect // ind

	IndexedIndirect // (ind,X)
	IndirectIndexed // (ind), Y

	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y

	ZeroPageIndexedX // zpg,X
	ZeroPageIndexedY // zpg,Y
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Immediate:
		return "Immediate"
	case Absolute:
		return "Absolute"
	case ZeroPage:
		return "ZeroPage"
	case Indirect:
		return "Indirect"
	case IndexedIndirect:
		return "IndexedIndirect"
	case IndirectIndexed:
		return "IndirectIndexed"
	case AbsoluteIndexedX:
		return "AbsoluteIndexedX"
	case AbsoluteIndexedY:
		return "AbsoluteIndexedY"
	case ZeroPageIndexedX:
		return "ZeroPageIndexedX"
	case ZeroPageIndexedY:
		return "ZeroPageIndexedY"
	}
	return "unknown addressing mode"
}

// Bytes returns the number of bytes, including the opcode, used by an
// instruction with the addressing mode.
func (m AddressingMode) Bytes() int {
	switch m {
	case Implied:
		return 1
	case Absolute, Indirect, AbsoluteIndexedX, AbsoluteIndexedY:
		return 3
	}
	return 2
}

// Operand formats the operand of an instruction with the addressing mode. The
// number of bytes is the length of the instruction including the opcode.
// Implied mode instructions have an empty operand.
func (m AddressingMode) Operand(bytes int, data uint16) string {
	var s string
	switch bytes {
	case 2:
		s = fmt.Sprintf("$%02x", data)
	case 3:
		s = fmt.Sprintf("$%04x", data)
	default:
		return ""
	}

	switch m {
	case Immediate:
		s = fmt.Sprintf("#%s", s)
	case Indirect:
		s = fmt.Sprintf("(%s)", s)
	case IndexedIndirect:
		s = fmt.Sprintf("(%s,X)", s)
	case IndirectIndexed:
		s = fmt.Sprintf("(%s),Y", s)
	case AbsoluteIndexedX, ZeroPageIndexedX:
		s = fmt.Sprintf("%s,X", s)
	case AbsoluteIndexedY, ZeroPageIndexedY:
		s = fmt.Sprintf("%s,Y", s)
	}

	return s
}
