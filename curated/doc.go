// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Packages declare their patterns as exported constants so
// that callers can test for them:
//
//	const UnsupportedOpcode = "jit: unsupported opcode %04x at %04x"
//
//	err := curated.Errorf(UnsupportedOpcode, word, addr)
//	if curated.Is(err, jit.UnsupportedOpcode) {
//		// fall back to interpretation
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("savestate: %v", err)
//	curated.Has(f, jit.UnsupportedOpcode) // true
//	curated.Is(f, jit.UnsupportedOpcode)  // false
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For the purposes of this package we think of chains
// as being composed of parts separated by the sub-string ": ". For example:
//
//	part 1: part 2: part 3
//
// Wrapping "dsp: %v" around an error that already reads "dsp: bad slot" will
// print "dsp: bad slot" and not "dsp: dsp: bad slot".
package curated
