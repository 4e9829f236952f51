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

// Package monitor is an interactive front end for stepping through a program
// one instruction at a time. Keys are read from the terminal in cbreak mode so
// that each key press takes effect immediately.
//
// The keys recognised by the monitor are:
//
//	space, s, enter  execute one instruction
//	r                print the registers
//	z                print the zero page
//	k                print the stack page
//	l                print the most recent log entries
//	d                disassemble the next eight instructions
//	q                quit
//
// The command handling is separate from the terminal handling. The Command()
// function can be used with any io.Writer.
package monitor
