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

// Stack is one of the four bounded hardware stacks. The most recently pushed
// value is the last entry.
type Stack struct {
	Entries  []uint16
	Capacity int
}

// Top returns the most recently pushed value without popping it. An empty
// stack has a top value of zero.
func (s *Stack) Top() uint16 {
	if len(s.Entries) == 0 {
		return 0
	}
	return s.Entries[len(s.Entries)-1]
}

// Depth returns the number of values on the stack.
func (s *Stack) Depth() int {
	return len(s.Entries)
}

// PushStack pushes the value onto the stack. A push onto a full stack raises
// the StackOverflow signal and the stack exception and the value is
// discarded.
func (st *State) PushStack(stk registers.Stack, v uint16) {
	s := &st.Stacks[stk]
	if len(s.Entries) >= s.Capacity {
		st.raise(StackOverflow, ExceptionStack)
		return
	}
	s.Entries = append(s.Entries, v)
}

// PopStack pops the most recently pushed value from the stack. Popping an
// empty stack raises the StackUnderflow signal and the stack exception and
// returns zero.
func (st *State) PopStack(stk registers.Stack) uint16 {
	s := &st.Stacks[stk]
	if len(s.Entries) == 0 {
		st.raise(StackUnderflow, ExceptionStack)
		return 0
	}
	v := s.Entries[len(s.Entries)-1]
	s.Entries = s.Entries[:len(s.Entries)-1]
	return v
}

// PeekStack returns the top of the stack without popping.
func (st *State) PeekStack(stk registers.Stack) uint16 {
	return st.Stacks[stk].Top()
}

// SetStackTop replaces the top of the stack. Used by hardware loop
// handling to decrement the loop counter in place. An empty stack is not
// changed.
func (st *State) SetStackTop(stk registers.Stack, v uint16) {
	s := &st.Stacks[stk]
	if len(s.Entries) == 0 {
		return
	}
	s.Entries[len(s.Entries)-1] = v
}
