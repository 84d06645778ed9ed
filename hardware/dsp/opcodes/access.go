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

package opcodes

// Condition returns the condition code of a conditional instruction word.
func Condition(word uint16) uint16 {
	return word & 0x000f
}

// ConditionNames are the suffixes used by the conditional mnemonics, indexed
// by condition code.
var ConditionNames = [16]string{
	"GE", "L", "G", "LE", "NZ", "Z", "NC", "C",
	"X8", "X9", "XA", "XB", "LNZ", "LZ", "O", "",
}

// ReadsData returns true if the class reads data or instruction memory.
func (c Class) ReadsData() bool {
	switch c {
	case Lr, Lrr, Lrrd, Lrri, Lrrn, Lrs, Ilrr, Ilrrd, Ilrri, Ilrrn:
		return true
	}
	return false
}

// WritesData returns true if the class writes data memory. Writes to the DMA
// registers can write instruction memory.
func (c Class) WritesData() bool {
	switch c {
	case Sr, Si, Srr, Srrd, Srri, Srrn, Srs, Srsh:
		return true
	}
	return false
}

// IsCall returns true if the class pushes onto the call stack.
func (c Class) IsCall() bool {
	switch c {
	case Call, Callr, Loop, Bloop, Loopi, Bloopi:
		return true
	}
	return false
}

// IsReturn returns true if the class pops from the call stack.
func (c Class) IsReturn() bool {
	return c == Ret || c == Rti
}

// IsLoop returns true for the hardware loop classes.
func (c Class) IsLoop() bool {
	switch c {
	case Loop, Bloop, Loopi, Bloopi:
		return true
	}
	return false
}

// IsBlockLoop returns true for the loop classes that take the end of the loop
// from the second instruction word.
func (c Class) IsBlockLoop() bool {
	return c == Bloop || c == Bloopi
}

// ReadsData returns true if the extended class reads data memory.
func (c ExtClass) ReadsData() bool {
	switch c {
	case ExtXxx, ExtDr, ExtIr, ExtNr, ExtMv, ExtS, ExtSn:
		return false
	}
	return true
}

// WritesData returns true if the extended class writes data memory.
func (c ExtClass) WritesData() bool {
	switch c {
	case ExtS, ExtSn, ExtLs, ExtSl, ExtLsn, ExtSln, ExtLsm, ExtSlm, ExtLsnm, ExtSlnm:
		return true
	}
	return false
}
