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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "STEP", "VERSION")
//	_, _ = md.Parse()
//
// A mode is a special command line argument that puts the program into a
// different mode of operation, each with its own set of flags. The first
// sub-mode in the list is the default. All sub-mode comparisons are case
// insensitive.
//
// Once the mode has been decided, NewMode() prepares for the flags of that
// mode and Parse() is called again:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		origin := md.AddAddress("origin", 0x0200, "load address of program")
//		cycles := md.AddInt("cycles", 1000, "number of cycles to execute")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseError:
//			return err
//		case modalflag.ParseHelp:
//			return nil
//		}
//		return run(*origin, *cycles, md.RemainingArgs())
//	}
//
// The AddAddress() function is specific to this package. It accepts 16bit
// values in any of the bases accepted by strconv.ParseUint() with a base of
// zero and so addresses can be given in the more natural hexadecimal form:
//
//	m6502 RUN -origin 0xc000 program.bin
//
// Help messages are handled automatically. The ParseHelp return value
// indicates that help has been printed to the Output io.Writer.
package modalflag
