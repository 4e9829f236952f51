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
	"github.com/jetsetilly/m6502/hardware/memory/cpubus"
	"github.com/jetsetilly/m6502/logger"
)

// Execute runs instructions until at least budget cycles have been consumed.
// An instruction is never interrupted and so the number of cycles returned may
// be more than the budget. Nothing is executed if the budget is zero or less.
//
// If an error is returned then the cycles consumed up to that point are also
// returned.
func (mc *CPU) Execute(budget int32, mem cpubus.Memory) (int32, error) {
	if budget <= 0 {
		return 0, nil
	}

	remaining := budget
	for remaining > 0 {
		if err := mc.step(&remaining, mem); err != nil {
			return budget - remaining, err
		}
	}

	return budget - remaining, nil
}

// ExecuteInstruction runs exactly one instruction and returns the number of
// cycles it took.
func (mc *CPU) ExecuteInstruction(mem cpubus.Memory) (int32, error) {
	var cycles int32
	err := mc.step(&cycles, mem)
	return -cycles, err
}

// step decodes and executes the instruction at the PC. the cycles argument is
// decremented by the number of cycles taken.
func (mc *CPU) step(cycles *int32, mem cpubus.Memory) error {
	start := *cycles

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	opcode := mc.FetchByte(cycles, mem)
	defn, ok := instructions.Lookup(opcode)
	if !ok {
		err := &DecodeError{Opcode: opcode, Address: mc.LastResult.Address}
		logger.Log(logger.Allow, "CPU", err)
		return err
	}
	mc.LastResult.Defn = defn

	switch defn.Operator {
	case instructions.Lda, instructions.Ldx, instructions.Ldy:
		var value uint8
		if defn.AddressingMode == instructions.Immediate {
			value = mc.FetchByte(cycles, mem)
			mc.LastResult.InstructionData = uint16(value)
		} else {
			address, err := mc.resolve(cycles, defn, mem)
			if err != nil {
				return err
			}
			value = mc.ReadByte(cycles, address, mem)
		}
		mc.LoadRegisterSetStatus(mc.Register(defn.Target), value)

	case instructions.Sta, instructions.Stx, instructions.Sty:
		address, err := mc.resolve(cycles, defn, mem)
		if err != nil {
			return err
		}
		mc.WriteByte(cycles, mc.Register(defn.Target).Value(), address, mem)

	case instructions.Jmp:
		address := mc.AddrAbsolute(cycles, mem)
		if defn.AddressingMode == instructions.Indirect {
			// the real chip reads the high byte of the pointer from the start
			// of the same page. that is not emulated
			if address&0x00ff == 0x00ff {
				mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
			}
			address = mc.ReadWord(cycles, address, mem)
		}
		mc.PC.Load(address)

	case instructions.Jsr:
		address := mc.AddrAbsolute(cycles, mem)
		mc.PushPCToStack(cycles, mem)
		*cycles--
		mc.PC.Load(address)

	case instructions.Rts:
		address := mc.PopWordFromStack(cycles, mem)
		mc.PC.Load(address)
		mc.PC.Add(1)
		*cycles -= 2

	case instructions.Tax:
		*cycles--
		mc.LoadRegisterSetStatus(&mc.X, mc.A.Value())

	case instructions.Tay:
		*cycles--
		mc.LoadRegisterSetStatus(&mc.Y, mc.A.Value())

	case instructions.Txa:
		*cycles--
		mc.LoadRegisterSetStatus(&mc.A, mc.X.Value())

	case instructions.Tya:
		*cycles--
		mc.LoadRegisterSetStatus(&mc.A, mc.Y.Value())

	case instructions.Tsx:
		*cycles--
		mc.LoadRegisterSetStatus(&mc.X, mc.SP.Value())

	case instructions.Txs:
		// does not affect status register
		*cycles--
		mc.SP.Load(mc.X.Value())

	case instructions.Pha:
		*cycles--
		mc.PushByteToStack(cycles, mc.A.Value(), mem)

	case instructions.Php:
		*cycles--
		mc.PushByteToStack(cycles, mc.Status.Value(), mem)

	case instructions.Pla:
		*cycles--
		mc.LoadRegisterSetStatus(&mc.A, mc.PopByteFromStack(cycles, mem))

	case instructions.Plp:
		*cycles--
		mc.Status.Load(mc.PopByteFromStack(cycles, mem))

	case instructions.Nop:
		*cycles--

	default:
		return fmt.Errorf("cpu: unknown operator (%s)", defn.Operator)
	}

	mc.LastResult.Cycles = int(start - *cycles)
	mc.LastResult.Final = true

	return nil
}

// resolve the effective address for load and store instructions.
func (mc *CPU) resolve(cycles *int32, defn *instructions.Definition, mem cpubus.Memory) (uint16, error) {
	write := defn.Effect == instructions.Write

	switch defn.AddressingMode {
	case instructions.ZeroPage:
		return mc.AddrZeroPage(cycles, mem), nil
	case instructions.ZeroPageIndexedX:
		return mc.AddrZeroPageX(cycles, mem), nil
	case instructions.ZeroPageIndexedY:
		return mc.AddrZeroPageY(cycles, mem), nil
	case instructions.Absolute:
		return mc.AddrAbsolute(cycles, mem), nil
	case instructions.AbsoluteIndexedX:
		if write {
			return mc.AddrAbsoluteX5(cycles, mem), nil
		}
		return mc.AddrAbsoluteX(cycles, mem), nil
	case instructions.AbsoluteIndexedY:
		if write {
			return mc.AddrAbsoluteY5(cycles, mem), nil
		}
		return mc.AddrAbsoluteY(cycles, mem), nil
	case instructions.IndexedIndirect:
		return mc.AddrIndirectX(cycles, mem), nil
	case instructions.IndirectIndexed:
		if write {
			return mc.AddrIndirectY6(cycles, mem), nil
		}
		return mc.AddrIndirectY(cycles, mem), nil
	}

	return 0, fmt.Errorf("cpu: cannot resolve address for addressing mode (%s)", defn.AddressingMode)
}
