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

package disassembly_test

import (
	"testing"

	"github.com/jetsetilly/m6502/disassembly"
	"github.com/jetsetilly/m6502/hardware/memory"
	"github.com/jetsetilly/m6502/test"
)

func TestDecode(t *testing.T) {
	mem := memory.NewRAM()
	mem.Load(0x0200, []uint8{0xbd, 0x02, 0x44})

	e := disassembly.Decode(mem, 0x0200)
	test.DemandSuccess(t, e.Defn != nil)
	test.ExpectEquality(t, len(e.Bytes), 3)
	test.ExpectEquality(t, e.Operand, "$4402,X")
	test.ExpectEquality(t, e.String(), "0200  bd 02 44  LDA $4402,X")
}

func TestUnimplemented(t *testing.T) {
	mem := memory.NewRAM()
	mem.Load(0x0200, []uint8{0x02})

	e := disassembly.Decode(mem, 0x0200)
	test.ExpectSuccess(t, e.Defn == nil)
	test.ExpectEquality(t, e.String(), "0200  02        .byte $02")
}

func TestDecodeWrap(t *testing.T) {
	mem := memory.NewRAM()
	mem.Load(0xfffe, []uint8{0x20, 0x34, 0x12})

	e := disassembly.Decode(mem, 0xfffe)
	test.ExpectEquality(t, e.Operand, "$1234")
}

func TestDisassemble(t *testing.T) {
	mem := memory.NewRAM()

	// LDA #$42; STA ($20),Y; NOP; JMP ($0300); RTS
	mem.Load(0x0200, []uint8{0xa9, 0x42, 0x91, 0x20, 0xea, 0x6c, 0x00, 0x03, 0x60})

	entries := disassembly.Disassemble(mem, 0x0200, 9)
	test.DemandEquality(t, len(entries), 5)

	tw := &test.CompareWriter{}
	disassembly.Write(tw, entries)
	test.ExpectSuccess(t, tw.Compare(
		"0200  a9 42     LDA #$42\n"+
			"0202  91 20     STA ($20),Y\n"+
			"0204  ea        NOP\n"+
			"0205  6c 00 03  JMP ($0300)\n"+
			"0208  60        RTS\n"))

	// an instruction straddling the requested length is completed
	entries = disassembly.Disassemble(mem, 0x0200, 3)
	test.ExpectEquality(t, len(entries), 2)
}

func TestNext(t *testing.T) {
	mem := memory.NewRAM()
	mem.Load(0x0200, []uint8{0xa2, 0x01, 0xaa, 0x02})

	entries := disassembly.Next(mem, 0x0200, 3)
	test.DemandEquality(t, len(entries), 3)
	test.ExpectEquality(t, entries[1].Address, uint16(0x0202))
	test.ExpectEquality(t, entries[2].Address, uint16(0x0203))
	test.ExpectSuccess(t, entries[2].Defn == nil)
}
