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

// Package loader reads program images from disk. The image is placed in
// memory by the Place() function, usually after the CPU has been reset.
//
// Two file formats are supported. Files with the .hex extension are text
// files of hexadecimal byte values separated by white space. The # character
// begins a comment that runs to the end of the line. For example:
//
//	# LDA #$42 ; STA $0300
//	a9 42
//	8d 00 03
//
// Files with any other extension are treated as raw binary images.
package loader
