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

package state

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/dspcore/hardware/dsp/memory"
	"github.com/jetsetilly/dspcore/hardware/dsp/registers"
	"github.com/jetsetilly/dspcore/logger"
)

// Accumulator is one of the two 40 bit accumulators. The high part is stored
// sign extended from eight bits.
type Accumulator struct {
	H uint16
	M uint16
	L uint16
}

// AuxAccumulator is one of the two 32 bit AX registers.
type AuxAccumulator struct {
	H uint16
	L uint16
}

// Product is the multiplier result register. The long value of the product is
// the sum of the two middle parts.
type Product struct {
	L  uint16
	M  uint16
	H  uint16
	M2 uint16
}

// Bits in the control register. The control register is not part of the
// register file. It is written by the surrounding system.
const (
	ControlReset       uint16 = 0x0001
	ControlExternalInt uint16 = 0x0002
	ControlHalt        uint16 = 0x0004
)

// Config is the configuration of a State that cannot change while the
// processor is running.
type Config struct {
	CallStack  int
	DataStack  int
	LoopStack  int
	Vectoring  bool
	Permission logger.Permission
}

// DefaultConfig is the configuration used by NewState() when a zero Config
// is given.
var DefaultConfig = Config{
	CallStack:  8,
	DataStack:  4,
	LoopStack:  4,
	Vectoring:  true,
	Permission: logger.Allow,
}

// State is the architected state of the DSP and the memories it owns. It is
// not safe for concurrent use.
type State struct {
	PC uint16

	AR [4]uint16
	IX [4]uint16
	WR [4]uint16
	AC [2]Accumulator
	AX [2]AuxAccumulator

	Prod Product

	// the page register for LRS and SRS
	CR uint16

	// the status register must be read and written with GetSR() and SetSR()
	// while a compiled block is running. outside of a block the field is
	// always up to date
	SR uint16

	Stacks [registers.NumStacks]Stack

	Control uint16

	// pending exceptions. one bit per exception vector
	Exceptions uint8

	// signals raised since the last call to ClearSignals()
	Signals Signals

	// a compiled block exits after any instruction that raises a signal in
	// this set
	StopOn Signals

	// pending exceptions are serviced at exception check points
	Vectoring bool

	Mem *memory.Memory

	Permission logger.Permission

	backlog backlog
	flags   deferredFlags
}

// NewState is the preferred method of initialisation for the State type. The
// state is plumbed into the memory as the memory's Raiser.
func NewState(mem *memory.Memory, cfg Config) *State {
	if cfg.CallStack == 0 {
		cfg.CallStack = DefaultConfig.CallStack
	}
	if cfg.DataStack == 0 {
		cfg.DataStack = DefaultConfig.DataStack
	}
	if cfg.LoopStack == 0 {
		cfg.LoopStack = DefaultConfig.LoopStack
	}
	if cfg.Permission == nil {
		cfg.Permission = DefaultConfig.Permission
	}

	st := &State{
		Mem:        mem,
		Vectoring:  cfg.Vectoring,
		Permission: cfg.Permission,
	}
	st.Stacks[registers.StackCall].Capacity = cfg.CallStack
	st.Stacks[registers.StackData].Capacity = cfg.DataStack
	st.Stacks[registers.StackLoopAddress].Capacity = cfg.LoopStack
	st.Stacks[registers.StackLoopCounter].Capacity = cfg.LoopStack

	mem.Plumb(nil, st)
	st.Reset()

	return st
}

// Reset the processor. Execution begins at the start of instruction ROM.
// Memory is not changed.
func (st *State) Reset() {
	st.PC = memory.IROMOrigin
	st.AR = [4]uint16{}
	st.IX = [4]uint16{}
	st.AC = [2]Accumulator{}
	st.AX = [2]AuxAccumulator{}
	st.Prod = Product{}
	st.SR = 0
	st.CR = 0x00ff
	st.Control = 0
	st.Exceptions = 0
	st.Signals = 0

	// the wrap registers are set to no wrapping
	st.WR = [4]uint16{0xffff, 0xffff, 0xffff, 0xffff}

	for i := range st.Stacks {
		st.Stacks[i].Entries = st.Stacks[i].Entries[:0]
	}

	st.backlog.n = 0
	st.flags = deferredFlags{}
}

// Snapshot creates a deep copy of the state, including memory. The copy
// must be plumbed before use.
func (st *State) Snapshot() *State {
	n := *st
	for i := range st.Stacks {
		n.Stacks[i].Entries = make([]uint16, len(st.Stacks[i].Entries), st.Stacks[i].Capacity)
		copy(n.Stacks[i].Entries, st.Stacks[i].Entries)
	}
	if st.Mem != nil {
		n.Mem = st.Mem.Snapshot()
	}
	return &n
}

// Plumb reattaches a state to memory. The state is the memory's Raiser. The
// invalidator is given to the memory unchanged.
func (st *State) Plumb(mem *memory.Memory, inv memory.Invalidator) {
	st.Mem = mem
	mem.Plumb(inv, st)
}

// Halted returns true if the processor has been halted.
func (st *State) Halted() bool {
	return st.Control&ControlHalt == ControlHalt
}

func (st *State) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=%04x SR=%s ", st.PC, registers.StatusString(st.SR)))
	s.WriteString(fmt.Sprintf("AC0=%02x:%04x:%04x AC1=%02x:%04x:%04x ",
		st.AC[0].H&0xff, st.AC[0].M, st.AC[0].L, st.AC[1].H&0xff, st.AC[1].M, st.AC[1].L))
	s.WriteString(fmt.Sprintf("AX0=%04x:%04x AX1=%04x:%04x ", st.AX[0].H, st.AX[0].L, st.AX[1].H, st.AX[1].L))
	s.WriteString(fmt.Sprintf("PROD=%02x:%04x:%04x:%04x ", st.Prod.H&0xff, st.Prod.M, st.Prod.M2, st.Prod.L))
	s.WriteString(fmt.Sprintf("AR=%04x,%04x,%04x,%04x ", st.AR[0], st.AR[1], st.AR[2], st.AR[3]))
	s.WriteString(fmt.Sprintf("IX=%04x,%04x,%04x,%04x ", st.IX[0], st.IX[1], st.IX[2], st.IX[3]))
	s.WriteString(fmt.Sprintf("WR=%04x,%04x,%04x,%04x", st.WR[0], st.WR[1], st.WR[2], st.WR[3]))
	return s.String()
}
