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

package monitor

import (
	"errors"
	"fmt"
	"io"

	"github.com/jetsetilly/m6502/curated"
	"github.com/jetsetilly/m6502/disassembly"
	"github.com/jetsetilly/m6502/hardware/cpu"
	"github.com/jetsetilly/m6502/hardware/memory"
	"github.com/jetsetilly/m6502/hardware/memory/cpubus"
	"github.com/jetsetilly/m6502/logger"
)

// Halted is the error pattern used when the monitor is asked to step after
// the CPU has failed to decode an instruction.
const Halted = "monitor: cpu halted: %v"

// Monitor steps a CPU one instruction at a time.
type Monitor struct {
	mc  *cpu.CPU
	mem *memory.RAM

	// total number of cycles executed since the monitor was created
	cycles int64

	// the error that halted the CPU. the CPU must be reset before it can
	// continue
	halted error

	// maximum line width of output. zero means no limit
	width int
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(mc *cpu.CPU, mem *memory.RAM) *Monitor {
	return &Monitor{
		mc:  mc,
		mem: mem,
	}
}

// Cycles returns the total number of cycles executed by the monitor.
func (mon *Monitor) Cycles() int64 {
	return mon.cycles
}

// State returns a single line summary of the CPU state and the most recent
// instruction.
func (mon *Monitor) State() string {
	s := fmt.Sprintf("%s  cyc=%d  %s", mon.mc, mon.cycles, mon.mc.LastResult.String())
	if mon.width > 0 && len(s) > mon.width {
		s = s[:mon.width]
	}
	return s
}

// Step executes one instruction.
func (mon *Monitor) Step() error {
	if mon.halted != nil {
		return curated.Errorf(Halted, mon.halted)
	}

	n, err := mon.mc.ExecuteInstruction(mon.mem)
	mon.cycles += int64(n)
	if err != nil {
		if errors.Is(err, cpu.UnimplementedInstruction) {
			mon.halted = err
		}
		return curated.Errorf(Halted, err)
	}

	return nil
}

// Command performs the action for the key, writing any output to w. Returns
// true if the key was the quit key.
func (mon *Monitor) Command(key byte, w io.Writer) (bool, error) {
	switch key {
	case 'q', 'Q':
		return true, nil

	case ' ', 's', 'S', '\n', '\r':
		if err := mon.Step(); err != nil {
			return false, err
		}
		fmt.Fprintln(w, mon.State())

	case 'r', 'R':
		fmt.Fprintln(w, mon.mc)

	case 'z', 'Z':
		fmt.Fprintln(w, mon.mem.Dump(0x0000, 256))

	case 'k', 'K':
		fmt.Fprintln(w, mon.mem.Dump(cpubus.StackOrigin, 256))

	case 'l', 'L':
		logger.Tail(w, 10)

	case 'd', 'D':
		disassembly.Write(w, disassembly.Next(mon.mem, mon.mc.PC.Address(), 8))

	default:
		fmt.Fprintf(w, "unrecognised key (%q)\n", key)
	}

	return false, nil
}

// Run reads keys from the terminal until the quit key is pressed. The
// terminal is put into cbreak mode for the duration.
func (mon *Monitor) Run(pt *Terminal) error {
	if err := pt.CBreakMode(); err != nil {
		return curated.Errorf("monitor: %v", err)
	}
	defer pt.CanonicalMode()

	mon.width = pt.Width()

	fmt.Fprintln(pt, mon.State())

	for {
		key, err := pt.ReadKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return curated.Errorf("monitor: %v", err)
		}

		quit, err := mon.Command(key, pt)
		if err != nil {
			// a halted CPU is reported but doesn't end the session
			if curated.Is(err, Halted) {
				fmt.Fprintln(pt, err)
				_ = pt.Flush()
				continue
			}
			return err
		}
		if quit {
			return nil
		}
	}
}
