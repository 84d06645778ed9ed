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

package memory

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/jetsetilly/dspcore/curated"
)

// UnmarshalError is returned by UnmarshalBinary() for malformed data.
const UnmarshalError = "memory: unmarshal: %v"

// MarshalBinary implements the encoding.BinaryMarshaler interface. All
// memories, the hardware registers and the mailboxes are included.
func (mem *Memory) MarshalBinary() ([]byte, error) {
	var b bytes.Buffer
	if err := mem.Encode(&b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Encode writes the binary form of the memory to w.
func (mem *Memory) Encode(w io.Writer) error {
	fixed := []interface{}{
		mem.IRAM, mem.IROM, mem.DRAM, mem.COEF, mem.HW, mem.Mailbox, mem.CPUInterrupt,
		uint32(len(mem.RAM)), uint32(len(mem.ARAM)),
	}
	for _, f := range fixed {
		if err := binary.Write(w, binary.BigEndian, f); err != nil {
			return err
		}
	}
	if _, err := w.Write(mem.RAM); err != nil {
		return err
	}
	if _, err := w.Write(mem.ARAM); err != nil {
		return err
	}
	return nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface. The
// Invalidator is called for the whole of instruction memory.
func (mem *Memory) UnmarshalBinary(data []byte) error {
	return mem.Decode(bytes.NewReader(data))
}

// Decode reads the binary form of the memory from r.
func (mem *Memory) Decode(r io.Reader) error {
	var ramLen, aramLen uint32
	fixed := []interface{}{
		&mem.IRAM, &mem.IROM, &mem.DRAM, &mem.COEF, &mem.HW, &mem.Mailbox, &mem.CPUInterrupt,
		&ramLen, &aramLen,
	}
	for _, f := range fixed {
		if err := binary.Read(r, binary.BigEndian, f); err != nil {
			return curated.Errorf(UnmarshalError, err)
		}
	}

	// the sizes of the external memories are limited to 16MB
	const maxExternal = 0x1000000
	if ramLen > maxExternal || aramLen > maxExternal {
		return curated.Errorf(UnmarshalError, "external memory too large")
	}

	mem.RAM = make([]byte, ramLen)
	if _, err := io.ReadFull(r, mem.RAM); err != nil {
		return curated.Errorf(UnmarshalError, err)
	}
	mem.ARAM = make([]byte, aramLen)
	if _, err := io.ReadFull(r, mem.ARAM); err != nil {
		return curated.Errorf(UnmarshalError, err)
	}

	mem.invalidate(IRAMOrigin, IRAMOrigin+IRAMSize)
	mem.invalidate(IROMOrigin, IROMOrigin+IROMSize)

	return nil
}
