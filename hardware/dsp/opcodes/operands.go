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

// DestinationRegister returns the register written by the instruction word
// when the register is selected by an operand field. Returns false for
// instructions with no such operand.
func DestinationRegister(word uint16) (uint16, bool) {
	op, ok := Lookup(word)
	if !ok {
		return 0, false
	}
	switch op.Class {
	case Lri, Lr, Lrr, Lrrd, Lrri, Lrrn:
		return word & 0x1f, true
	case Mrr:
		return (word >> 5) & 0x1f, true
	case Lrs:
		return 0x18 + (word>>8)&0x07, true
	case Lris:
		return 0x18 + (word>>8)&0x07, true
	case Ilrr, Ilrrd, Ilrri, Ilrrn:
		return 0x1e + (word>>8)&0x01, true
	}
	return 0, false
}

// SourceRegister returns the register read by the instruction word when the
// register is selected by an operand field. Returns false for instructions
// with no such operand.
func SourceRegister(word uint16) (uint16, bool) {
	op, ok := Lookup(word)
	if !ok {
		return 0, false
	}
	switch op.Class {
	case Sr, Srr, Srrd, Srri, Srrn, Mrr:
		return word & 0x1f, true
	case Srs:
		return 0x1c + (word>>8)&0x03, true
	case Srsh:
		return 0x10 + (word>>8)&0x01, true
	case Loop, Bloop:
		return word & 0x1f, true
	}
	return 0, false
}
