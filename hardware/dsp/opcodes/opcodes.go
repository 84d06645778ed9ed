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

import "fmt"

// Flags describe the side effects of an opcode.
type Flags uint8

// List of opcode flags.
const (
	// the opcode can be combined with an extended opcode held in the low
	// bits of the instruction word
	Extendable Flags = 1 << iota

	// the opcode may change the flow of the program
	Branch

	// the branch is always taken. conditional branches have the Branch flag
	// but not the Unconditional flag
	Unconditional

	// the opcode reads the program counter
	ReadsPC

	// the opcode changes the arithmetic bits of the status register
	UpdatesSR
)

// Opcode describes a single entry in the instruction table. Entries are
// immutable after package initialisation.
type Opcode struct {
	Name   string
	Opcode uint16
	Mask   uint16
	Size   uint16
	Class  Class
	Flags  Flags
}

// Is returns true if all the flags in f are set for the opcode.
func (op *Opcode) Is(f Flags) bool {
	return op.Flags&f == f
}

// IsConditional returns true if the opcode is a branch with a condition.
func (op *Opcode) IsConditional() bool {
	return op.Is(Branch) && !op.Is(Unconditional)
}

func (op *Opcode) String() string {
	return fmt.Sprintf("%s (%04x/%04x) %d word(s)", op.Name, op.Opcode, op.Mask, op.Size)
}

// ExtOpcode describes an entry in the extended instruction table.
type ExtOpcode struct {
	Name   string
	Opcode uint16
	Mask   uint16
	Class  ExtClass
}

func (op *ExtOpcode) String() string {
	return fmt.Sprintf("%s (%02x/%02x)", op.Name, op.Opcode, op.Mask)
}

// decoding tables are indexed by the instruction word (or the low byte of the
// word in the case of the extended opcodes)
var lookup [0x10000]*Opcode
var extLookup [0x100]*ExtOpcode

func init() {
	for i := range lookup {
		for j := range table {
			if uint16(i)&table[j].Mask == table[j].Opcode {
				lookup[i] = &table[j]
				break
			}
		}
	}

	for i := range extLookup {
		for j := range extTable {
			if uint16(i)&extTable[j].Mask == extTable[j].Opcode {
				extLookup[i] = &extTable[j]
				break
			}
		}
	}
}

// Lookup returns the opcode for the instruction word. Words that do not
// decode to an opcode return false.
func Lookup(word uint16) (*Opcode, bool) {
	op := lookup[word]
	return op, op != nil
}

// ExtIndex returns the index of the extended opcode in the instruction word.
// Group 3 instructions use seven bits for the extension. All other
// extendable instructions use eight bits.
func ExtIndex(word uint16) uint16 {
	if word>>12 == 3 {
		return word & 0x7f
	}
	return word & 0xff
}

// LookupExt returns the extended opcode for the instruction word. Words that
// are not extendable return false.
func LookupExt(word uint16) (*ExtOpcode, bool) {
	op, ok := Lookup(word)
	if !ok || !op.Is(Extendable) {
		return nil, false
	}
	return extLookup[ExtIndex(word)], true
}

// Size returns the size in words of the instruction word. Unknown words have
// a size of one.
func Size(word uint16) uint16 {
	if op, ok := Lookup(word); ok {
		return op.Size
	}
	return 1
}

// FindByName returns the first table entry with the mnemonic. The search is
// case sensitive.
func FindByName(name string) (*Opcode, bool) {
	for i := range table {
		if table[i].Name == name {
			return &table[i], true
		}
	}
	return nil, false
}

// FindExtByName returns the extended opcode with the mnemonic.
func FindExtByName(name string) (*ExtOpcode, bool) {
	for i := range extTable {
		if extTable[i].Name == name {
			return &extTable[i], true
		}
	}
	return nil, false
}

// Table returns a copy of the main opcode table in decoding order.
func Table() []Opcode {
	t := make([]Opcode, len(table))
	copy(t, table)
	return t
}
