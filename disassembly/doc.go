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

// Package disassembly decodes the contents of memory into a list of
// instructions. Disassembly is linear: every byte is assumed to begin an
// instruction or to be the operand of the preceeding instruction. Bytes that
// do not decode to an implemented instruction are listed as data.
package disassembly
