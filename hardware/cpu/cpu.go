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
	"fmt"

	"github.com/jetsetilly/m6502/hardware/cpu/execution"
	"github.com/jetsetilly/m6502/hardware/cpu/instructions"
	"github.com/jetsetilly/m6502/hardware/cpu/registers"
	"github.com/jetsetilly/m6502/hardware/memory/cpubus"
)

// CPU implements the MOS 6502. Register logic is implemented by the types in
// the registers sub-package.
//
// The CPU does not keep a reference to memory. An implementation of the
// cpubus.Memory interface is lent to the CPU for the duration of each call to
// Reset(), Execute() or ExecuteInstruction().
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// last result. the Final field is false if the most recent instruction
	// did not complete. for example, because the opcode was not recognised
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure. Note
// that the CPU is not in a defined state until Reset() has been called.
func NewCPU() *CPU {
	return &CPU{
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewStackPointer(0),
		Status: registers.NewStatusRegister(),
	}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s %s %s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A, mc.X, mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers and clears memory. PC is loaded with the
// entry address.
func (mc *CPU) Reset(entry uint16, mem cpubus.Memory) {
	mc.LastResult.Reset()
	mc.PC.Load(entry)
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xff)
	mc.Status.Reset()
	mem.Clear()
}

// HasReset checks whether the CPU has been reset and not yet executed an
// instruction.
func (mc *CPU) HasReset() bool {
	return mc.LastResult.Defn == nil && !mc.LastResult.Final && mc.LastResult.ByteCount == 0
}

// Register returns the register named by the target. Returns nil for
// instructions.NoTarget.
func (mc *CPU) Register(target instructions.Target) *registers.Register {
	switch target {
	case instructions.TargetA:
		return &mc.A
	case instructions.TargetX:
		return &mc.X
	case instructions.TargetY:
		return &mc.Y
	}
	return nil
}

// LoadRegisterSetStatus loads value into the register and sets the Zero and
// Sign flags according to the new value. No other flag is affected.
func (mc *CPU) LoadRegisterSetStatus(reg *registers.Register, value uint8) {
	reg.Load(value)
	mc.Status.Zero = reg.IsZero()
	mc.Status.Sign = reg.IsNegative()
}
