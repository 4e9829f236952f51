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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/m6502/hardware/cpu"
	"github.com/jetsetilly/m6502/hardware/memory"
	"github.com/jetsetilly/m6502/test"
)

// all test programs are loaded at origin
const origin = uint16(0x0200)

func newTestCPU() (*cpu.CPU, *memory.RAM) {
	mem := memory.NewRAM()
	mc := cpu.NewCPU()
	mc.Reset(origin, mem)
	return mc, mem
}

// step executes one instruction and checks that the result is consistent
// with the instruction definition.
func step(t *testing.T, mc *cpu.CPU, mem *memory.RAM, tags ...any) int32 {
	t.Helper()
	cycles, err := mc.ExecuteInstruction(mem)
	test.DemandSuccess(t, err, tags...)
	test.ExpectSuccess(t, mc.LastResult.IsValid(), tags...)
	test.ExpectEquality(t, int32(mc.LastResult.Cycles), cycles, tags...)
	return cycles
}

// the setup functions used by the addressing tests

type setupFunc func(mc *cpu.CPU, mem *memory.RAM)

func setX(v uint8) setupFunc {
	return func(mc *cpu.CPU, _ *memory.RAM) {
		mc.X.Load(v)
	}
}

func setY(v uint8) setupFunc {
	return func(mc *cpu.CPU, _ *memory.RAM) {
		mc.Y.Load(v)
	}
}

func pointer(zp uint8, address uint16) setupFunc {
	return func(_ *cpu.CPU, mem *memory.RAM) {
		mem.Write(uint16(zp), uint8(address))
		mem.Write(uint16(zp+1), uint8(address>>8))
	}
}

func setup(fs ...setupFunc) setupFunc {
	return func(mc *cpu.CPU, mem *memory.RAM) {
		for _, f := range fs {
			f(mc, mem)
		}
	}
}
