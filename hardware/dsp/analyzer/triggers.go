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

package analyzer

import (
	"slices"

	"github.com/jetsetilly/dspcore/hardware/dsp/opcodes"
	"github.com/jetsetilly/dspcore/hardware/dsp/registers"
)

// Triggers classify the instructions after which pending exceptions are
// checked. The classification is a heuristic and is kept as data so that
// alternatives can be selected.
type Triggers struct {
	Name string

	// main opcode classes
	Classes []opcodes.Class

	// extended opcode classes
	ExtClasses []opcodes.ExtClass

	// every instruction that carries an extended opcode, whatever the class
	AllExtended bool

	// instructions that read or write one of these registers through an
	// operand field
	Registers []uint16

	// SBSET and SBCLR instructions that change any of these status bits
	StatusBits uint16
}

// DefaultTriggers covers every access of data memory (main and extended
// opcodes), pushes to and pops from the call stack, explicit access of the
// stack and status registers, and changes to the interrupt enable bits.
var DefaultTriggers = Triggers{
	Name: "default",
	Classes: []opcodes.Class{
		opcodes.Lr, opcodes.Lrr, opcodes.Lrrd, opcodes.Lrri, opcodes.Lrrn, opcodes.Lrs,
		opcodes.Ilrr, opcodes.Ilrrd, opcodes.Ilrri, opcodes.Ilrrn,
		opcodes.Sr, opcodes.Si, opcodes.Srr, opcodes.Srrd, opcodes.Srri, opcodes.Srrn,
		opcodes.Srs, opcodes.Srsh,
		opcodes.Call, opcodes.Callr, opcodes.Loop, opcodes.Loopi, opcodes.Bloop, opcodes.Bloopi,
		opcodes.Ret, opcodes.Rti,
	},
	ExtClasses: []opcodes.ExtClass{
		opcodes.ExtS, opcodes.ExtSn, opcodes.ExtL, opcodes.ExtLn,
		opcodes.ExtLs, opcodes.ExtSl, opcodes.ExtLsn, opcodes.ExtSln,
		opcodes.ExtLsm, opcodes.ExtSlm, opcodes.ExtLsnm, opcodes.ExtSlnm,
		opcodes.ExtLdax, opcodes.ExtLdaxn, opcodes.ExtLdaxm, opcodes.ExtLdaxnm,
		opcodes.ExtLd, opcodes.ExtLdn, opcodes.ExtLdm, opcodes.ExtLdnm,
	},
	Registers: []uint16{
		registers.ST0, registers.ST1, registers.ST2, registers.ST3, registers.SR,
	},
	StatusBits: registers.SRIntEnable | registers.SRExtIntEnable,
}

// LegacyTriggers is the narrower classification used by older versions of
// the emulator: the LR, LRR and LRS families and every instruction with an
// extended opcode.
var LegacyTriggers = Triggers{
	Name: "legacy",
	Classes: []opcodes.Class{
		opcodes.Lr, opcodes.Lrr, opcodes.Lrrd, opcodes.Lrri, opcodes.Lrrn, opcodes.Lrs,
	},
	AllExtended: true,
}

// TriggersByName returns the named classification.
func TriggersByName(name string) (*Triggers, bool) {
	switch name {
	case "", DefaultTriggers.Name:
		return &DefaultTriggers, true
	case LegacyTriggers.Name:
		return &LegacyTriggers, true
	}
	return nil, false
}

// Triggered returns true if an exception check should follow the
// instruction.
func (t *Triggers) Triggered(word uint16, op *opcodes.Opcode) bool {
	if slices.Contains(t.Classes, op.Class) {
		return true
	}

	if op.Is(opcodes.Extendable) {
		if t.AllExtended {
			return true
		}
		if ext, ok := opcodes.LookupExt(word); ok && slices.Contains(t.ExtClasses, ext.Class) {
			return true
		}
	}

	if op.Class == opcodes.Sbset || op.Class == opcodes.Sbclr {
		bit := uint16(1) << (word&0x07 + registers.SRBitOffset)
		if bit&t.StatusBits != 0 {
			return true
		}
	}

	if len(t.Registers) > 0 {
		if r, ok := opcodes.DestinationRegister(word); ok && slices.Contains(t.Registers, r) {
			return true
		}
		if r, ok := opcodes.SourceRegister(word); ok && slices.Contains(t.Registers, r) {
			return true
		}
	}

	return false
}
