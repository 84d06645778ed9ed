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

package jit

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/dspcore/hardware/dsp/opcodes"
	"github.com/jetsetilly/dspcore/hardware/dsp/state"
)

// Exit is a static exit from a block. The Link field is set by the block
// cache when a block starting at the Target address is resident.
type Exit struct {
	Target uint16
	Link   *Block
}

// Reason describes why a block stopped running.
type Reason int

// List of valid Reason values.
const (
	// the last instruction in the block completed without changing the flow
	// of the program
	Fallthrough Reason = iota

	// the block left through a taken branch. the branch may be an early exit
	// from the middle of the block
	Branched

	// an exception was serviced
	Vectored

	// the instruction raised a signal in the state's StopOn set
	Signalled

	// instruction memory was written while the block was running
	CodeModified

	// the processor executed a HALT instruction
	Halted
)

func (r Reason) String() string {
	switch r {
	case Fallthrough:
		return "fallthrough"
	case Branched:
		return "branched"
	case Vectored:
		return "vectored"
	case Signalled:
		return "signalled"
	case CodeModified:
		return "code modified"
	case Halted:
		return "halted"
	}
	return "unknown"
}

// Result of running a block.
type Result struct {
	// number of instructions executed, including the instruction that
	// caused an early exit
	Instructions int

	Reason Reason

	// the static exit taken by the block. nil if the block left by a dynamic
	// route (returns, register jumps, exceptions, etc.)
	Exit *Exit
}

// Block is a run of instructions compiled into a list of closures.
type Block struct {
	// the address of the first instruction and the address after the last
	// instruction
	Entry uint16
	End   uint32

	// number of instructions in the block
	Length int

	// early exits from conditional branches in the middle of the block
	Fixups []*Exit

	// static exits from the end of the block
	Successors []*Exit

	// value of the memory code generation when the block was compiled
	Generation uint64

	steps []step
}

// Contains returns true if the address is inside the span of the block.
func (b *Block) Contains(addr uint16) bool {
	return addr >= b.Entry && uint32(addr) < b.End
}

// Intersects returns true if the span of the block overlaps the range
// between start (inclusive) and end (exclusive).
func (b *Block) Intersects(start uint32, end uint32) bool {
	return uint32(b.Entry) < end && uint32(b.End) > start
}

// Exits returns all static exits of the block. Fixups first.
func (b *Block) Exits() []*Exit {
	e := make([]*Exit, 0, len(b.Fixups)+len(b.Successors))
	e = append(e, b.Fixups...)
	return append(e, b.Successors...)
}

// Unresolved returns the number of static exits that are not linked.
func (b *Block) Unresolved() int {
	var n int
	for _, e := range b.Exits() {
		if e.Link == nil {
			n++
		}
	}
	return n
}

func (b *Block) String() string {
	return fmt.Sprintf("block %04x-%04x (%d instructions)", b.Entry, b.End-1, b.Length)
}

// Disasm returns the listing of the instructions in the block.
func (b *Block) Disasm() string {
	var s strings.Builder
	s.WriteString(b.String())
	for i := range b.steps {
		stp := &b.steps[i]
		var next uint16
		if stp.op.Size == 2 {
			next = stp.imm
		}
		fmt.Fprintf(&s, "\n%04x: %s", stp.addr, opcodes.Disasm(stp.word, next))
		if stp.fixup != nil {
			fmt.Fprintf(&s, "  -> %04x", stp.fixup.Target)
		}
	}
	return s.String()
}

// Run the block. The state's PC must equal the entry address of the block.
//
// Status flag updates are deferred for the duration of the block and are
// materialised before Run() returns.
func (b *Block) Run(st *state.State) Result {
	gen := st.Mem.CodeGeneration()
	signals := st.Signals

	st.DeferFlags(true)

	for i := range b.steps {
		s := &b.steps[i]
		vectored := s.run(st)

		if vectored {
			return b.exit(st, i, Vectored, nil)
		}
		if (st.Signals&^signals)&st.StopOn != 0 {
			return b.exit(st, i, Signalled, nil)
		}
		if s.writes && st.Mem.CodeGeneration() != gen {
			return b.exit(st, i, CodeModified, nil)
		}
		if s.setsPC && st.PC != s.next {
			if st.Halted() {
				return b.exit(st, i, Halted, nil)
			}
			if s.fixup != nil && st.PC == s.fixup.Target {
				return b.exit(st, i, Branched, s.fixup)
			}
			return b.exit(st, i, Branched, b.successor(st.PC))
		}
	}

	last := len(b.steps) - 1
	if !b.steps[last].setsPC {
		st.PC = b.steps[last].next
	}
	return b.exit(st, last, Fallthrough, b.successor(st.PC))
}

func (b *Block) successor(pc uint16) *Exit {
	for _, e := range b.Successors {
		if e.Target == pc {
			return e
		}
	}
	return nil
}

// exit from the block after the step at index i.
func (b *Block) exit(st *state.State, i int, reason Reason, exit *Exit) Result {
	if !b.steps[i].setsPC {
		st.PC = b.steps[i].next
	}
	st.DeferFlags(false)
	return Result{
		Instructions: i + 1,
		Reason:       reason,
		Exit:         exit,
	}
}
