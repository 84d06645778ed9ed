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

package dsp

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/jetsetilly/dspcore/curated"
	"github.com/jetsetilly/dspcore/hardware/dsp/jit"
	"github.com/jetsetilly/dspcore/logger"
)

// UnmarshalError is returned by UnmarshalBinary() for malformed data.
const UnmarshalError = "dsp: unmarshal: %v"

// the first bytes of the binary form
var marshalMagic = [4]byte{'D', 'S', 'P', 'C'}

const marshalVersion = 1

// MarshalBinary implements the encoding.BinaryMarshaler interface. The
// binary form is the processor state (including memory) followed by the entry
// addresses of the resident blocks.
func (dsp *DSP) MarshalBinary() ([]byte, error) {
	var b bytes.Buffer
	if err := dsp.Encode(&b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Encode writes the binary form of the DSP to w.
func (dsp *DSP) Encode(w io.Writer) error {
	if _, err := w.Write(marshalMagic[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, uint8(marshalVersion)); err != nil {
		return err
	}
	if err := dsp.State.Encode(w); err != nil {
		return err
	}
	entries := dsp.Cache.Entries()
	if err := binary.Write(w, binary.BigEndian, uint16(len(entries))); err != nil {
		return err
	}
	return binary.Write(w, binary.BigEndian, entries)
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface. Every
// compiled block is removed and analysis is refreshed. If the jit.prewarm
// preference is set the blocks that were resident when the data was created
// are compiled again.
func (dsp *DSP) UnmarshalBinary(data []byte) error {
	return dsp.Decode(bytes.NewReader(data))
}

// Decode reads the binary form of the DSP from r.
func (dsp *DSP) Decode(r io.Reader) error {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return curated.Errorf(UnmarshalError, err)
	}
	if magic != marshalMagic {
		return curated.Errorf(UnmarshalError, "not DSP data")
	}

	var version uint8
	if err := binary.Read(r, binary.BigEndian, &version); err != nil {
		return curated.Errorf(UnmarshalError, err)
	}
	if version != marshalVersion {
		return curated.Errorf(UnmarshalError, "unsupported version")
	}

	if err := dsp.State.Decode(r); err != nil {
		return err
	}

	var n uint16
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return curated.Errorf(UnmarshalError, err)
	}
	entries := make([]uint16, n)
	if err := binary.Read(r, binary.BigEndian, entries); err != nil {
		return curated.Errorf(UnmarshalError, err)
	}

	dsp.Cache.Clear()
	dsp.Analyzer.Refresh()

	if dsp.Prefs.Prewarm.Get().(bool) && dsp.Prefs.JITEnabled.Get().(bool) {
		dsp.Prewarm(entries)
	}

	return nil
}

// Prewarm compiles blocks at each of the entry addresses. Addresses that
// cannot be compiled are skipped.
func (dsp *DSP) Prewarm(entries []uint16) {
	var n int
	for _, e := range entries {
		if _, err := dsp.Cache.GetOrCompile(e); err != nil {
			if !curated.Is(err, jit.Unsupported) {
				logger.Log(logger.Allow, "dsp", err)
			}
			continue
		}
		n++
	}
	if n > 0 {
		logger.Logf(logger.Allow, "dsp", "prewarmed %d of %d blocks", n, len(entries))
	}
}
