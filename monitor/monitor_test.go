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

package monitor_test

import (
	"os"
	"strings"
	"testing"

	"github.com/jetsetilly/m6502/curated"
	"github.com/jetsetilly/m6502/hardware/cpu"
	"github.com/jetsetilly/m6502/hardware/memory"
	"github.com/jetsetilly/m6502/monitor"
	"github.com/jetsetilly/m6502/test"
)

func newMonitor(program ...uint8) *monitor.Monitor {
	mem := memory.NewRAM()
	mc := cpu.NewCPU()
	mc.Reset(0x0200, mem)
	mem.Load(0x0200, program)
	return monitor.NewMonitor(mc, mem)
}

func TestStep(t *testing.T) {
	mon := newMonitor(0xa9, 0x42, 0x85, 0x10)
	tw := &test.CompareWriter{}

	quit, err := mon.Command(' ', tw)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, quit, false)
	test.ExpectEquality(t, tw.String(), "PC=0202 A=42 X=00 Y=00 SP=ff SR=sv-bdizc  cyc=2  0200 LDA #$42 [2]\n")

	tw.Clear()
	_, err = mon.Command('s', tw)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, mon.Cycles(), int64(5))
	test.ExpectEquality(t, strings.HasSuffix(tw.String(), "0202 STA $10 [3]\n"), true)
}

func TestHalted(t *testing.T) {
	mon := newMonitor(0xea, 0x02)
	tw := &test.CompareWriter{}

	_, err := mon.Command('\n', tw)
	test.ExpectSuccess(t, err)

	_, err = mon.Command('\n', tw)
	test.ExpectEquality(t, curated.Is(err, monitor.Halted), true)

	// the monitor refuses to continue and no more cycles are consumed
	cycles := mon.Cycles()
	_, err = mon.Command('\n', tw)
	test.ExpectEquality(t, curated.Is(err, monitor.Halted), true)
	test.ExpectEquality(t, mon.Cycles(), cycles)
}

func TestCommands(t *testing.T) {
	mon := newMonitor(0xea)
	tw := &test.CompareWriter{}

	_, err := mon.Command('r', tw)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tw.String(), "PC=0200 A=00 X=00 Y=00 SP=ff SR=sv-bdizc\n")

	tw.Clear()
	_, err = mon.Command('z', tw)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.Contains(tw.String(), "0000 | "), true)

	tw.Clear()
	_, err = mon.Command('k', tw)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.Contains(tw.String(), "01F0 | "), true)

	tw.Clear()
	_, err = mon.Command('d', tw)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.HasPrefix(tw.String(), "0200  ea        NOP\n0201  "), true)
	test.ExpectEquality(t, strings.Count(tw.String(), "\n"), 8)

	tw.Clear()
	_, err = mon.Command('x', tw)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tw.String(), "unrecognised key ('x')\n")

	quit, err := mon.Command('q', tw)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, quit, true)
}

func TestNotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "input")
	test.DemandSuccess(t, err)
	defer f.Close()

	_, err = monitor.NewTerminal(f, f)
	test.ExpectFailure(t, err)

	_, err = monitor.NewTerminal(nil, nil)
	test.ExpectFailure(t, err)
}
