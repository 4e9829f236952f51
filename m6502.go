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

package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/m6502/curated"
	"github.com/jetsetilly/m6502/disassembly"
	"github.com/jetsetilly/m6502/hardware/cpu"
	"github.com/jetsetilly/m6502/hardware/memory"
	"github.com/jetsetilly/m6502/loader"
	"github.com/jetsetilly/m6502/logger"
	"github.com/jetsetilly/m6502/modalflag"
	"github.com/jetsetilly/m6502/monitor"
	"github.com/jetsetilly/m6502/statsview"
	"github.com/jetsetilly/m6502/version"
)

// the default load and entry address. the zero page and the stack page are
// below this address
const defaultOrigin = 0x0200

const defaultBudget = 1000

// error patterns used by the command line
const (
	programRequired = "%s: program file required"
	tooManyArgs     = "%s: too many arguments"
	budgetRange     = "%s: cycle budget out of range (%d)"
	memvizError     = "memviz: %v"
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. the return value
// is suitable for os.Exit()
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "STEP", "DISASM", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "STEP":
		err = step(md)

	case "DISASM":
		err = disasm(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// prepare a new CPU and memory with the program named on the command line
// loaded at origin.
func prepare(md *modalflag.Modes, origin uint16, entry uint16) (*cpu.CPU, *memory.RAM, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, nil, curated.Errorf(programRequired, md)
	case 1:
	default:
		return nil, nil, curated.Errorf(tooManyArgs, md)
	}

	prog, err := loader.Load(md.GetArg(0))
	if err != nil {
		return nil, nil, err
	}

	mem := memory.NewRAM()
	mc := cpu.NewCPU()

	// reset clears memory so the program must be placed afterwards
	mc.Reset(entry, mem)
	prog.Place(origin, mem)

	logger.Logf(logger.Allow, "m6502", "loaded %s (%d bytes) at %#04x", prog, len(prog.Data), origin)

	return mc, mem, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddAddress("origin", defaultOrigin, "address at which the program is loaded")
	entry := md.AddAddress("entry", defaultOrigin, "address at which execution begins (defaults to origin)")
	budget := md.AddInt("cycles", defaultBudget, "number of cycles to execute")
	log := md.AddBool("log", false, "echo log to stderr")
	mv := md.AddString("memviz", "", "write graphviz rendering of the CPU to file after execution")
	stats := md.AddBool("statsview", false, "launch runtime statistics server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stderr, true)
	} else {
		logger.SetEcho(nil, false)
	}

	if !md.IsSet("entry") {
		*entry = *origin
	}

	if *budget < 0 || *budget > math.MaxInt32 {
		return curated.Errorf(budgetRange, md, *budget)
	}

	mc, mem, err := prepare(md, *origin, *entry)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	cycles, runErr := mc.Execute(int32(*budget), mem)

	fmt.Fprintf(md.Output, "%d cycles\n", cycles)
	fmt.Fprintln(md.Output, mc)
	fmt.Fprintln(md.Output, mc.LastResult)

	if *mv != "" {
		if err := writeMemviz(*mv, mc); err != nil {
			return err
		}
	}

	if runErr != nil {
		return curated.Errorf("run: %v", runErr)
	}

	// keep the process alive so that the statistics can be viewed
	if *stats && statsview.Available() {
		fmt.Fprintln(md.Output, "press ctrl-c to end")
		intChan := make(chan os.Signal, 1)
		signal.Notify(intChan, os.Interrupt)
		<-intChan
	}

	return nil
}

func writeMemviz(filename string, mc *cpu.CPU) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(memvizError, err)
	}
	defer f.Close()

	memviz.Map(f, mc)

	return nil
}

func step(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddAddress("origin", defaultOrigin, "address at which the program is loaded")
	entry := md.AddAddress("entry", defaultOrigin, "address at which execution begins (defaults to origin)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if !md.IsSet("entry") {
		*entry = *origin
	}

	mc, mem, err := prepare(md, *origin, *entry)
	if err != nil {
		return err
	}

	pt, err := monitor.NewTerminal(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Fprintln(md.Output, "space to step, q to quit")

	return monitor.NewMonitor(mc, mem).Run(pt)
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddAddress("origin", defaultOrigin, "address at which the program is loaded")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf(programRequired, md)
	case 1:
	default:
		return curated.Errorf(tooManyArgs, md)
	}

	prog, err := loader.Load(md.GetArg(0))
	if err != nil {
		return err
	}

	mem := memory.NewRAM()
	prog.Place(*origin, mem)
	disassembly.Write(md.Output, disassembly.Disassemble(mem, *origin, len(prog.Data)))

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintln(md.Output, version.Summary())

	return nil
}
