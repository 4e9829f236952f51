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

// Operator defines which operation is performed by an instruction. Many
// opcodes share the same operator and differ only in addressing mode.
type Operator int

// List of implemented operators.
const (
	Nop Operator = iota
	Lda
	Ldx
	Ldy
	Sta
	Stx
	Sty
	Jmp
	Jsr
	Rts
	Tax
	Tay
	Txa
	Tya
	Tsx
	Txs
	Pha
	Php
	Pla
	Plp
)

var operatorMnemonics = [...]string{
	Nop: "NOP",
	Lda: "LDA",
	Ldx: "LDX",
	Ldy: "LDY",
	Sta: "STA",
	Stx: "STX",
	Sty: "STY",
	Jmp: "JMP",
	Jsr: "JSR",
	Rts: "RTS",
	Tax: "TAX",
	Tay: "TAY",
	Txa: "TXA",
	Tya: "TYA",
	Tsx: "TSX",
	Txs: "TXS",
	Pha: "PHA",
	Php: "PHP",
	Pla: "PLA",
	Plp: "PLP",
}

// String returns the mnemonic for the operator.
func (o Operator) String() string {
	if o < 0 || int(o) >= len(operatorMnemonics) {
		return "???"
	}
	return operatorMnemonics[o]
}

// Target names the register that is loaded from or stored to by an
// instruction.
type Target int

// List of targets. NoTarget is used for instructions that do not load or
// store a register.
const (
	NoTarget Target = iota
	TargetA
	TargetX
	TargetY
)

func (t Target) String() string {
	switch t {
	case TargetA:
		return "A"
	case TargetX:
		return "X"
	case TargetY:
		return "Y"
	}
	return ""
}
