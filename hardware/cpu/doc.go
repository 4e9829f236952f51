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

// Package cpu emulates the MOS 6502 microprocessor. Like all 8-bit processors
// of the era, the 6502 executes instructions according to the single byte
// value read from an address pointed to by the program counter. This single
// byte is the opcode and is looked up in the instruction table. The
// instruction definition for that opcode is then used to move execution of
// the program forward.
//
// The CPU does not own any memory. Instead, an implementation of the
// cpubus.Memory interface is passed to each function that needs it. The
// RAM type in the memory package is the usual implementation.
//
// The CPU must be reset before use. Reset() clears memory so the program
// should be loaded afterwards.
//
//	mem := memory.NewRAM()
//	mc := cpu.NewCPU()
//	mc.Reset(0x0200, mem)
//	mem.Load(0x0200, program)
//
//	cycles, err := mc.Execute(1000, mem)
//
// Execute() runs instructions until the budget of cycles has been used up.
// An instruction is never split and so the number of cycles returned can be
// more than the budget. The ExecuteInstruction() function runs exactly one
// instruction.
//
// An opcode that has no definition causes a DecodeError to be returned. The
// DecodeError will match the UnimplementedInstruction error with errors.Is().
//
// The LastResult field can be probed for information about the last
// instruction executed. See the execution package for more information.
//
// Only the load, store, transfer, stack, jump and subroutine instructions are
// implemented. There is no interrupt handling and no decimal mode.
package cpu
