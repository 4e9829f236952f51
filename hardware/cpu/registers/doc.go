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

// Package registers implements the registers found in the 6502. The program counter,
// the stack pointer, the status register and the 8bit type used for the A, X
// and Y registers.
//
// The 8bit Register type defines the load operation and the tests required for
// status updates. Whether the value is zero and whether the value is negative.
//
// The status register is implemented as a series of flags. Setting of flags
// is done directly. For instance, in the CPU, we might have this sequence of
// function calls:
//
//	a.Load(0)
//	sr.Zero = a.IsZero()
//	sr.Sign = a.IsNegative()
//
// In this case, the zero flag in the status register will be true and the
// sign flag will be false.
//
// The stack pointer is an 8bit value that is only ever used in conjunction
// with the stack page. The Address() function returns the effective address.
package registers
