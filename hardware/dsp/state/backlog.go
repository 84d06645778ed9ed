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
	"github.com/jetsetilly/dspcore/hardware/dsp/registers"
)

// register writes made by an extended opcode are held until the main
// instruction has completed. there are never more than four writes per
// instruction
type backlogWrite struct {
	reg registers.Index
	val uint16

	// the write is to the middle of an accumulator in 40 bit mode and the
	// whole accumulator is written
	extend bool
}

type backlog struct {
	n int
	w [4]backlogWrite
}

// QueueWrite adds a register write to the backlog.
func (st *State) QueueWrite(reg registers.Index, val uint16) {
	st.queue(backlogWrite{reg: reg, val: val})
}

// QueueLoad adds a register write to the backlog that behaves like a load.
// In 40 bit mode a load into the middle of an accumulator sign extends the
// value into the high part and clears the low part.
func (st *State) QueueLoad(reg registers.Index, val uint16) {
	extend := (reg == registers.ACM0 || reg == registers.ACM1) && st.IsSRFlagSet(registers.SR40Mode)
	st.queue(backlogWrite{reg: reg, val: val, extend: extend})
}

func (st *State) queue(w backlogWrite) {
	if st.backlog.n >= len(st.backlog.w) {
		panic("state: extended opcode backlog overflow")
	}
	st.backlog.w[st.backlog.n] = w
	st.backlog.n++
}

// BacklogLen returns the number of queued writes.
func (st *State) BacklogLen() int {
	return st.backlog.n
}

// ApplyBacklog makes the queued register writes in the order they were
// queued and empties the backlog.
func (st *State) ApplyBacklog() {
	for i := 0; i < st.backlog.n; i++ {
		w := st.backlog.w[i]
		if w.extend {
			ac := &st.AC[w.reg-registers.ACM0]
			ac.M = w.val
			ac.L = 0
			if w.val&0x8000 == 0x8000 {
				ac.H = 0xffff
			} else {
				ac.H = 0
			}
			continue
		}
		st.WriteRegister(w.reg, w.val)
	}
	st.backlog.n = 0
}
