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

package cpu

import (
	"errors"
	"fmt"
)

// UnimplementedInstruction is matched by every DecodeError. Use errors.Is()
// to check for it.
var UnimplementedInstruction = errors.New("cpu: unimplemented instruction")

// DecodeError is returned by Execute() and ExecuteInstruction() when the
// opcode at the PC has no definition. Execution cannot continue after a
// DecodeError and the CPU should be Reset().
type DecodeError struct {
	Opcode  uint8
	Address uint16
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v (%#02x) at (%#04x)", UnimplementedInstruction, e.Opcode, e.Address)
}

// Is implements the interface used by errors.Is().
func (e *DecodeError) Is(target error) bool {
	return target == UnimplementedInstruction
}
