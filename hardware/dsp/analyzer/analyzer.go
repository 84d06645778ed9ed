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
	"github.com/jetsetilly/dspcore/hardware/dsp/opcodes"
	"github.com/jetsetilly/dspcore/logger"
)

// Region is a range of instruction memory. The end address is exclusive.
type Region struct {
	Start uint16
	End   uint16
}

// Regions are the instruction memory regions analysed by Refresh().
var Regions = []Region{
	{Start: memory.IRAMOrigin, End: memory.IRAMOrigin + memory.IRAMSize},
	{Start: memory.IROMOrigin, End: memory.IROMOrigin + memory.IROMSize},
}

// Analyzer maintains the side table of per-address flags for instruction
// memory.
//
// The table is marked stale by Invalidate() and is recomputed in full the
// next time Flags() is called. The analyzer is not safe for concurrent use.
type Analyzer struct {
	mem *memory.Memory

	triggers   *Triggers
	signatures []Signature

	flags []Flags
	prev  []Flags

	// index+1 of the first signature that matches at an address
	sigs []uint8

	stale bool

	// called after a refresh with the addresses whose flags have changed
	OnChange func(changed []uint16)

	Permission logger.Permission
}

// NewAnalyzer is the preferred method of initialisation for the Analyzer
// type. A nil triggers value selects DefaultTriggers and a nil signatures
// value selects DefaultSignatures. The table is stale until the first call
// to Flags() or Refresh().
func NewAnalyzer(mem *memory.Memory, triggers *Triggers, signatures []Signature) *Analyzer {
	if triggers == nil {
		triggers = &DefaultTriggers
	}
	if signatures == nil {
		signatures = DefaultSignatures
	}
	return &Analyzer{
		mem:        mem,
		triggers:   triggers,
		signatures: signatures,
		flags:      make([]Flags, 0x10000),
		prev:       make([]Flags, 0x10000),
		sigs:       make([]uint8, 0x10000),
		stale:      true,
		Permission: logger.Allow,
	}
}

// Plumb a new memory into the analyzer. The table is marked stale.
func (a *Analyzer) Plumb(mem *memory.Memory) {
	a.mem = mem
	a.stale = true
}

// Triggers returns the exception trigger classification in use.
func (a *Analyzer) Triggers() *Triggers {
	return a.triggers
}

// SetTriggers changes the exception trigger classification. The table is
// marked stale.
func (a *Analyzer) SetTriggers(triggers *Triggers) {
	if triggers == nil {
		triggers = &DefaultTriggers
	}
	a.triggers = triggers
	a.stale = true
}

// Reset clears the whole side table.
func (a *Analyzer) Reset() {
	clear(a.flags)
	clear(a.sigs)
}

// Analyze the instruction memory between the start address (inclusive) and
// the end address (exclusive). The flags for the range are overwritten. Flags
// that refer to addresses outside the range (the end of a loop, the address
// after the last instruction) are added to whatever is already there.
func (a *Analyzer) Analyze(start uint16, end uint16) {
	for addr := uint32(start); addr < uint32(end); addr++ {
		a.flags[addr] = 0
		a.sigs[addr] = 0
	}

	// the most recent instruction to change the arithmetic bits of SR
	lastUpdate := start

	for addr := uint32(start); addr < uint32(end); {
		a16 := uint16(addr)
		word := a.mem.PeekInstruction(a16)
		op, ok := opcodes.Lookup(word)
		if !ok {
			addr++
			continue
		}

		a.flags[a16] |= StartOfInstruction
		if op.Size == 2 {
			a.flags[a16+1] |= Immediate
		}

		// loop pairs
		switch {
		case op.Class.IsBlockLoop():
			a.flags[a16] |= BlockLoopStart
			a.flags[a.mem.PeekInstruction(a16+1)] |= BlockLoopEnd
		case op.Class.IsLoop():
			a.flags[a16] |= LoopStart
			a.flags[a16+1] |= LoopEnd
		}

		// status update before a conditional branch
		if op.Is(opcodes.UpdatesSR) {
			lastUpdate = a16
		}
		if op.IsConditional() {
			a.flags[lastUpdate] |= UpdateStatusBeforeBranch
		}

		// exception checks
		if a.triggers.Triggered(word, op) {
			a.flags[a16+op.Size] |= CheckExceptionAfter
		}

		addr += uint32(op.Size)
	}

	// idle loops. signatures are tested at every address in the range
	for addr := uint32(start); addr < uint32(end); addr++ {
		a16 := uint16(addr)
		for i := range a.signatures {
			if a.signatures[i].Match(a.mem, a16) {
				a.flags[a16] |= IdleSkipCandidate
				if a.sigs[a16] == 0 {
					a.sigs[a16] = uint8(i + 1)
				}
				logger.Logf(a.Permission, "analyzer", "idle skip candidate at %04x (%s)", a16, a.signatures[i].Name)
			}
		}
	}
}

// Refresh resets the side table and analyses every region of instruction
// memory. The OnChange function is called with the addresses whose flags
// differ from the previous table.
func (a *Analyzer) Refresh() {
	a.flags, a.prev = a.prev, a.flags
	a.Reset()
	for _, r := range Regions {
		a.Analyze(r.Start, r.End)
	}
	a.stale = false

	if a.OnChange == nil {
		return
	}

	var changed []uint16
	for i := range a.flags {
		if a.flags[i] != a.prev[i] {
			changed = append(changed, uint16(i))
		}
	}
	if len(changed) > 0 {
		a.OnChange(changed)
	}
}

// Invalidate marks the side table as stale. The table is recomputed by the
// next call to Flags().
func (a *Analyzer) Invalidate(start uint16, end uint16) {
	a.stale = true
}

// InvalidateInstructions implements the memory.Invalidator interface.
func (a *Analyzer) InvalidateInstructions(start uint16, end uint16) {
	a.Invalidate(start, end)
}

// Stale returns true if the side table needs to be recomputed.
func (a *Analyzer) Stale() bool {
	return a.stale
}

// Flags returns the analysis flags for the address. The side table is
// refreshed first if it is stale.
func (a *Analyzer) Flags(addr uint16) Flags {
	if a.stale {
		a.Refresh()
	}
	return a.flags[addr]
}

// Signature returns the first idle loop signature that matches at the
// address.
func (a *Analyzer) Signature(addr uint16) (*Signature, bool) {
	if a.stale {
		a.Refresh()
	}
	i := a.sigs[addr]
	if i == 0 {
		return nil, false
	}
	return &a.signatures[i-1], true
}

// Table returns a copy of the side table. The side table is refreshed first
// if it is stale.
func (a *Analyzer) Table() []Flags {
	if a.stale {
		a.Refresh()
	}
	t := make([]Flags, len(a.flags))
	copy(t, a.flags)
	return t
}
