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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are used by the tooling
// around the emulator (the program loader, the monitor and the command line).
// The CPU itself returns plain Go errors.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created by
// Errorf() with a specific pattern. For example:
//
//	e := curated.Errorf(loader.UnrecognisedByte, "zz", 3)
//
//	if curated.Is(e, loader.UnrecognisedByte) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("run: %v", e)
//
//	if curated.Has(f, loader.UnrecognisedByte) {
//		fmt.Println("true")
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). Put another way, it returns true if the error is expected
// and false if it is unexpected.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not begin with
// duplicate adjacent parts. For example, if a loader error is wrapped in
// another loader error:
//
//	curated.Errorf("loader: %v", curated.Errorf("loader: file is empty"))
//
// the message is:
//
//	loader: file is empty
//
// and not:
//
//	loader: loader: file is empty
//
// Chains are thought of as parts separated by the sub-string ": ".
//
// Sentinel patterns should be stored as a const string, suitably named and
// commented, in the package that creates the error.
package curated
