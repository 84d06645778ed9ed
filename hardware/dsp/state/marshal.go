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
	"bytes"
	"encoding/binary"
	"io"

	"github.com/jetsetilly/dspcore/curated"
	"github.com/jetsetilly/dspcore/hardware/dsp/registers"
)

// UnmarshalError is returned by UnmarshalBinary() for malformed data.
const UnmarshalError = "state: unmarshal: %v"

// the first byte of the binary form
const marshalVersion = 1

// registers in a fixed layout for encoding/binary
type marshalRegisters struct {
	PC         uint16
	AR         [4]uint16
	IX         [4]uint16
	WR         [4]uint16
	AC         [2]Accumulator
	AX         [2]AuxAccumulator
	Prod       Product
	CR         uint16
	SR         uint16
	Control    uint16
	Exceptions uint8
	Signals    Signals
	Vectoring  bool
}

// MarshalBinary implements the encoding.BinaryMarshaler interface. The
// binary form includes memory. The extended opcode backlog is always empty
// between instructions and is not included.
func (st *State) MarshalBinary() ([]byte, error) {
	var b bytes.Buffer
	if err := st.Encode(&b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Encode writes the binary form of the state to w.
func (st *State) Encode(w io.Writer) error {
	r := marshalRegisters{
		PC:         st.PC,
		AR:         st.AR,
		IX:         st.IX,
		WR:         st.WR,
		AC:         st.AC,
		AX:         st.AX,
		Prod:       st.Prod,
		CR:         st.CR,
		SR:         st.GetSR(),
		Control:    st.Control,
		Exceptions: st.Exceptions,
		Signals:    st.Signals,
		Vectoring:  st.Vectoring,
	}

	if err := binary.Write(w, binary.BigEndian, uint8(marshalVersion)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, r); err != nil {
		return err
	}
	for i := range st.Stacks {
		s := &st.Stacks[i]
		if err := binary.Write(w, binary.BigEndian, uint8(len(s.Entries))); err != nil {
			return err
		}
		if err := binary.Write(w, binary.BigEndian, s.Entries); err != nil {
			return err
		}
	}

	return st.Mem.Encode(w)
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface. The
// stack capacities of the receiving state are kept. Memory is decoded into
// the state's existing memory.
func (st *State) UnmarshalBinary(data []byte) error {
	return st.Decode(bytes.NewReader(data))
}

// Decode reads the binary form of the state from r.
func (st *State) Decode(rd io.Reader) error {
	var version uint8
	if err := binary.Read(rd, binary.BigEndian, &version); err != nil {
		return curated.Errorf(UnmarshalError, err)
	}
	if version != marshalVersion {
		return curated.Errorf(UnmarshalError, "unsupported version")
	}

	var r marshalRegisters
	if err := binary.Read(rd, binary.BigEndian, &r); err != nil {
		return curated.Errorf(UnmarshalError, err)
	}

	var stacks [registers.NumStacks][]uint16
	for i := range stacks {
		var n uint8
		if err := binary.Read(rd, binary.BigEndian, &n); err != nil {
			return curated.Errorf(UnmarshalError, err)
		}
		if int(n) > st.Stacks[i].Capacity {
			return curated.Errorf(UnmarshalError, "stack depth exceeds capacity")
		}
		stacks[i] = make([]uint16, n, st.Stacks[i].Capacity)
		if err := binary.Read(rd, binary.BigEndian, stacks[i]); err != nil {
			return curated.Errorf(UnmarshalError, err)
		}
	}

	if err := st.Mem.Decode(rd); err != nil {
		return curated.Errorf(UnmarshalError, err)
	}

	st.PC = r.PC
	st.AR = r.AR
	st.IX = r.IX
	st.WR = r.WR
	st.AC = r.AC
	st.AX = r.AX
	st.Prod = r.Prod
	st.CR = r.CR
	st.Control = r.Control
	st.Exceptions = r.Exceptions
	st.Signals = r.Signals
	st.Vectoring = r.Vectoring
	for i := range stacks {
		st.Stacks[i].Entries = stacks[i]
	}
	st.backlog.n = 0
	st.flags = deferredFlags{}
	st.SR = r.SR

	return nil
}
