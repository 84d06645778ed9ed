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

// Exception vectors. The processor jumps to twice the vector number when an
// exception is serviced.
const (
	ExceptionStack       = 1
	ExceptionAccelerator = 5
	ExceptionExternal    = 7
)

// raise the signal and set the exception vector pending.
func (st *State) raise(sig Signals, vector int) {
	st.Signals |= sig
	st.Exceptions |= 1 << vector
}

// SetException makes the exception vector pending.
func (st *State) SetException(vector int) {
	st.Exceptions |= 1 << vector
}

// ClearSignals returns the accumulated signals and clears them.
func (st *State) ClearSignals() Signals {
	s := st.Signals
	st.Signals = NoSignals
	return s
}

// AcceleratorOverflow implements the memory.Raiser interface.
func (st *State) AcceleratorOverflow() {
	st.raise(AddressOverflow, ExceptionAccelerator)
}

// RequestInterrupt sets the external interrupt request bit in the control
// register. The request is taken by CheckExternalInterrupt().
func (st *State) RequestInterrupt() {
	st.Control |= ControlExternalInt
}

// CheckExternalInterrupt converts a request for an external interrupt into
// a pending exception. The request is left in place if external interrupts
// are disabled.
func (st *State) CheckExternalInterrupt() {
	if !st.IsSRFlagSet(registers.SRExtIntEnable) {
		return
	}
	if st.Control&ControlExternalInt != ControlExternalInt {
		return
	}
	st.Control &^= ControlExternalInt
	st.raise(InterruptPending, ExceptionExternal)
}

// CheckExceptions services the highest pending exception that is eligible.
// The external interrupt is always eligible once pending. Other exceptions
// require the interrupt enable bit. Returns true if the processor was
// vectored.
//
// Does nothing if vectoring is disabled.
func (st *State) CheckExceptions() bool {
	if !st.Vectoring || st.Exceptions == 0 {
		return false
	}

	for i := 7; i > 0; i-- {
		if st.Exceptions&(1<<i) == 0 {
			continue
		}
		if i != ExceptionExternal && !st.IsSRFlagSet(registers.SRIntEnable) {
			continue
		}

		st.PushStack(registers.StackCall, st.PC)
		st.PushStack(registers.StackData, st.GetSR())
		st.PC = uint16(i * 2)
		st.Exceptions &^= 1 << i

		if i == ExceptionExternal {
			st.SR &^= registers.SRExtIntEnable
		} else {
			st.SR &^= registers.SRIntEnable
		}
		return true
	}

	return false
}
