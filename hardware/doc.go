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

// Package hardware contains the emulated machine: the CPU in the cpu
// sub-package and the flat address space in the memory sub-package.
//
// There is no system type tying the two together. A memory implementation is
// lent to the CPU for the duration of each call and so the caller decides
// what memory the CPU sees.
package hardware
