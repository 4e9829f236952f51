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

// Package memory implements the memory seen by the CPU. The 6502 has a 16bit
// address bus giving an address space of 64k. Unlike a real system there is
// no distinction between ROM and RAM and there are no memory mapped
// registers. Every address is readable and writable:
//
//	    CPU ---- cpu bus ---- RAM
//
// The cpu bus is defined by the Memory interface in the cpubus sub-package.
// The RAM type in this package is the only implementation of that interface
// outside of test code.
//
// RAM is never owned by the CPU. Callers create the RAM, lend it to the CPU
// for every call to Reset() and Execute(), and are free to inspect or alter it
// between those calls.
package memory
