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

// Package instructions defines the table of instruction definitions for the
// 6502. Each Definition describes an opcode: the operator, the register it
// targets, the addressing mode, the number of bytes and the minimum number of
// cycles the instruction takes.
//
// Instructions that are sensitive to page crossing take one additional cycle
// when the effective address is on a different page to the base address.
// These instructions have the PageSensitive field set.
//
// The table is deliberately incomplete. Opcodes not in the table have no
// definition and the CPU will refuse to execute them.
package instructions
