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

// address register arithmetic. the address register wraps inside a buffer
// whose size is given by the matching wrap register. a wrap register of
// 0xffff is no wrapping. calculations are made with 32 bit values and the
// result is truncated

// IncrementAddress returns ar+1 wrapped by wr.
func IncrementAddress(ar uint16, wr uint16) uint16 {
	a := uint32(ar)
	w := uint32(wr)
	nar := a + 1
	if nar^a > (w|1)<<1 {
		nar -= w + 1
	}
	return uint16(nar)
}

// DecrementAddress returns ar-1 wrapped by wr.
func DecrementAddress(ar uint16, wr uint16) uint16 {
	a := uint32(ar)
	w := uint32(wr)
	nar := a + w
	if (nar^a)&((w|1)<<1) > w {
		nar -= w + 1
	}
	return uint16(nar)
}

// IncreaseAddress returns ar+ix wrapped by wr.
func IncreaseAddress(ar uint16, wr uint16, ix int16) uint16 {
	a := uint32(ar)
	w := uint32(wr)
	x := uint32(int32(ix))
	mx := (w | 1) << 1
	nar := a + x
	dar := (nar ^ a ^ x) & mx

	if ix >= 0 {
		if dar > w {
			nar -= w + 1
		}
	} else if ((nar+w+1)^nar)&dar <= w {
		nar += w + 1
	}
	return uint16(nar)
}

// DecreaseAddress returns ar-ix wrapped by wr.
func DecreaseAddress(ar uint16, wr uint16, ix int16) uint16 {
	a := uint32(ar)
	w := uint32(wr)
	x := uint32(int32(ix))
	mx := (w | 1) << 1
	nar := a - x
	dar := (nar ^ a ^ ^x) & mx

	if x > 0xffff8000 {
		if dar > w {
			nar -= w + 1
		}
	} else if ((nar+w+1)^nar)&dar <= w {
		nar += w + 1
	}
	return uint16(nar)
}

// IncrementAR increments the address register in place.
func (st *State) IncrementAR(reg int) {
	st.AR[reg] = IncrementAddress(st.AR[reg], st.WR[reg])
}

// DecrementAR decrements the address register in place.
func (st *State) DecrementAR(reg int) {
	st.AR[reg] = DecrementAddress(st.AR[reg], st.WR[reg])
}

// IncreaseAR adds the matching index register to the address register in
// place.
func (st *State) IncreaseAR(reg int) {
	st.AR[reg] = IncreaseAddress(st.AR[reg], st.WR[reg], int16(st.IX[reg]))
}

// DecreaseAR subtracts the matching index register from the address
// register in place.
func (st *State) DecreaseAR(reg int) {
	st.AR[reg] = DecreaseAddress(st.AR[reg], st.WR[reg], int16(st.IX[reg]))
}
