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

package loader

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jetsetilly/m6502/curated"
	"github.com/jetsetilly/m6502/hardware/memory"
	"github.com/jetsetilly/m6502/hardware/memory/cpubus"
)

// Sentinel error patterns.
const (
	FileError        = "loader: %v"
	FileEmpty        = "loader: file is empty"
	ProgramTooLarge  = "loader: program too large (%d bytes)"
	UnrecognisedByte = "loader: unrecognised byte (%s) on line %d"
)

// HexExtension is the file extension that indicates the hex text format.
const HexExtension = ".hex"

// Program is a program image read from a file.
type Program struct {
	Filename string
	Data     []uint8
}

func (p Program) String() string {
	return filepath.Base(p.Filename)
}

// Load reads the named file. The format of the file is decided by the file
// extension.
func Load(filename string) (Program, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Program{}, curated.Errorf(FileError, err)
	}
	defer f.Close()

	var data []uint8
	if strings.EqualFold(filepath.Ext(filename), HexExtension) {
		data, err = ParseHex(f)
	} else {
		data, err = io.ReadAll(f)
	}
	if err != nil {
		return Program{}, curated.Errorf(FileError, err)
	}

	if len(data) == 0 {
		return Program{}, curated.Errorf(FileEmpty)
	}
	if len(data) > memory.Size {
		return Program{}, curated.Errorf(ProgramTooLarge, len(data))
	}

	return Program{
		Filename: filename,
		Data:     data,
	}, nil
}

// ParseHex reads hexadecimal byte values from the reader. Each value must be
// exactly two digits long.
func ParseHex(r io.Reader) ([]uint8, error) {
	var data []uint8

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++

		s, _, _ := strings.Cut(scanner.Text(), "#")
		for _, f := range strings.Fields(s) {
			if len(f) != 2 {
				return nil, curated.Errorf(UnrecognisedByte, f, line)
			}
			v, err := strconv.ParseUint(f, 16, 8)
			if err != nil {
				return nil, curated.Errorf(UnrecognisedByte, f, line)
			}
			data = append(data, uint8(v))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(FileError, err)
	}

	return data, nil
}

// Place writes the program to memory starting at origin. Programs that run
// past the top of memory continue from address zero. Returns the address
// following the last byte written.
func (p Program) Place(origin uint16, mem cpubus.Memory) uint16 {
	address := origin
	for _, d := range p.Data {
		mem.Write(address, d)
		address++
	}
	return address
}
