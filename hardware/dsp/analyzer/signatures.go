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
	"github.com/jetsetilly/dspcore/hardware/dsp/memory"
)

// signature words with this value match any instruction word.
const AnyWord = 0xffff

// the maximum number of words in a signature.
const MaxSignatureLen = 6

// Poll describes how the address polled by an idle loop is found.
type Poll int

// List of valid Poll values.
const (
	// the address is formed from the CR register and the low byte of the
	// first word of the signature (the LRS instruction)
	PollShort Poll = iota

	// the address is the second word of the signature (the LR instruction)
	PollDirect
)

// Wait describes the condition that keeps an idle loop spinning.
type Wait int

// List of valid Wait values.
const (
	WaitWhileSet Wait = iota
	WaitWhileClear
	WaitWhileZero
)

// Signature is a short sequence of instruction words that is known to poll
// a memory location in a tight loop.
type Signature struct {
	Name  string
	Words []uint16

	Poll Poll
	Mask uint16
	Wait Wait

	// index of the word holding the target of the loop's branch
	Target int
}

// DefaultSignatures are the idle loops found in the common microcodes. The
// AX microcode spins waiting for the CPU to read the DSP mailbox or to write
// the CPU mailbox. The Zelda microcode spins on the CPU mailbox and on a flag
// in data memory.
var DefaultSignatures = []Signature{
	{
		// LRS $ACM0, @DMBH; ANDCF $ACM0, #0x8000; JLZ
		Name:   "AX DMBH ac0",
		Words:  []uint16{0x26fc, 0x02c0, 0x8000, 0x029d, AnyWord},
		Poll:   PollShort,
		Mask:   0x8000,
		Wait:   WaitWhileSet,
		Target: 4,
	},
	{
		// LRS $ACM1, @DMBH; ANDCF $ACM1, #0x8000; JLZ
		Name:   "AX DMBH ac1",
		Words:  []uint16{0x27fc, 0x03c0, 0x8000, 0x029d, AnyWord},
		Poll:   PollShort,
		Mask:   0x8000,
		Wait:   WaitWhileSet,
		Target: 4,
	},
	{
		// LRS $ACM0, @CMBH; ANDCF $ACM0, #0x8000; JLNZ
		Name:   "AX CMBH ac0",
		Words:  []uint16{0x26fe, 0x02c0, 0x8000, 0x029c, AnyWord},
		Poll:   PollShort,
		Mask:   0x8000,
		Wait:   WaitWhileClear,
		Target: 4,
	},
	{
		// LRS $ACM1, @CMBH; ANDCF $ACM1, #0x8000; JLNZ
		Name:   "AX CMBH ac1",
		Words:  []uint16{0x27fe, 0x03c0, 0x8000, 0x029c, AnyWord},
		Poll:   PollShort,
		Mask:   0x8000,
		Wait:   WaitWhileClear,
		Target: 4,
	},
	{
		// LR $ACM0, @CMBH; ANDCF $ACM0, #0x8000; JLNZ
		Name:   "Zelda CMBH",
		Words:  []uint16{0x00de, 0xfffe, 0x02c0, 0x8000, 0x029c, AnyWord},
		Poll:   PollDirect,
		Mask:   0x8000,
		Wait:   WaitWhileClear,
		Target: 5,
	},
	{
		// LR $AXH0, @0x0352; TSTAXH $AXH0; JZ
		Name:   "Zelda sync flag",
		Words:  []uint16{0x00da, 0x0352, 0x8600, 0x0295, AnyWord},
		Poll:   PollDirect,
		Mask:   0xffff,
		Wait:   WaitWhileZero,
		Target: 4,
	},
}

// Match returns true if the signature matches the instruction memory at the
// address.
func (sig *Signature) Match(mem *memory.Memory, addr uint16) bool {
	for i, w := range sig.Words {
		if w == AnyWord {
			continue
		}
		if mem.PeekInstruction(addr+uint16(i)) != w {
			return false
		}
	}
	return true
}

// Spins returns true if the branch at the end of the signature matched at
// the address jumps back to the address.
func (sig *Signature) Spins(mem *memory.Memory, addr uint16) bool {
	return mem.PeekInstruction(addr+uint16(sig.Target)) == addr
}

// PollAddress returns the data memory address polled by the signature
// matched at the address.
func (sig *Signature) PollAddress(mem *memory.Memory, addr uint16, cr uint16) uint16 {
	switch sig.Poll {
	case PollShort:
		return cr<<8 | mem.PeekInstruction(addr)&0x00ff
	case PollDirect:
		return mem.PeekInstruction(addr + 1)
	}
	return 0
}

// Waiting returns true if the polled value keeps the loop spinning.
func (sig *Signature) Waiting(v uint16) bool {
	switch sig.Wait {
	case WaitWhileSet:
		return v&sig.Mask != 0
	case WaitWhileClear:
		return v&sig.Mask == 0
	case WaitWhileZero:
		return v&sig.Mask == 0
	}
	return false
}
