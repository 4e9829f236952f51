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

package disassembly

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/m6502/hardware/cpu/instructions"
	"github.com/jetsetilly/m6502/hardware/memory/cpubus"
)

// Entry is a single disassembled instruction.
type Entry struct {
	Address uint16

	// the raw bytes of the instruction, including the opcode
	Bytes []uint8

	// nil if the opcode is not implemented
	Defn *instructions.Definition

	// operand formatted according to the addressing mode
	Operand string
}

// String returns a single line listing of the entry. For example:
//
//	0200  bd 02 44  LDA $4402,X
func (e Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%04x ", e.Address))
	for i := 0; i < 3; i++ {
		if i < len(e.Bytes) {
			s.WriteString(fmt.Sprintf(" %02x", e.Bytes[i]))
		} else {
			s.WriteString("   ")
		}
	}
	s.WriteString("  ")

	if e.Defn == nil {
		s.WriteString(fmt.Sprintf(".byte $%02x", e.Bytes[0]))
		return s.String()
	}

	s.WriteString(e.Defn.Operator.String())
	if e.Operand != "" {
		s.WriteString(" ")
		s.WriteString(e.Operand)
	}

	return s.String()
}

// Decode the instruction at address. Operand bytes that would be found past
// the top of memory are read from address zero onwards.
func Decode(mem cpubus.Memory, address uint16) Entry {
	opcode := mem.Read(address)
	e := Entry{
		Address: address,
		Bytes:   []uint8{opcode},
	}

	defn, ok := instructions.Lookup(opcode)
	if !ok {
		return e
	}
	e.Defn = defn

	var data uint16
	for i := 1; i < defn.Bytes; i++ {
		v := mem.Read(address + uint16(i))
		e.Bytes = append(e.Bytes, v)
		data |= uint16(v) << (8 * (i - 1))
	}
	e.Operand = defn.AddressingMode.Operand(defn.Bytes, data)

	return e
}

// Disassemble length bytes of memory starting at origin. The final entry may
// extend past the requested length if an instruction straddles the end.
func Disassemble(mem cpubus.Memory, origin uint16, length int) []Entry {
	var entries []Entry

	address := origin
	for n := 0; n < length; {
		e := Decode(mem, address)
		entries = append(entries, e)
		address += uint16(len(e.Bytes))
		n += len(e.Bytes)
	}

	return entries
}

// Next decodes count instructions starting at address.
func Next(mem cpubus.Memory, address uint16, count int) []Entry {
	entries := make([]Entry, 0, count)
	for i := 0; i < count; i++ {
		e := Decode(mem, address)
		entries = append(entries, e)
		address += uint16(len(e.Bytes))
	}
	return entries
}

// Write the entries to io.Writer, one per line.
func Write(output io.Writer, entries []Entry) {
	for _, e := range entries {
		io.WriteString(output, e.String())
		io.WriteString(output, "\n")
	}
}
