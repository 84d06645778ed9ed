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

package digest

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// the length of the buffer is arbitrary. the first part of the buffer is
// reserved for the previous digest so that the digest is a chain
const traceBufferLength = 4096
const traceBufferStart = blake2b.Size256

// Trace is a running digest of an execution trace. Each retired instruction
// contributes its address and the values given to it. Two traces have the
// same hash only if the same sequence of values was added.
type Trace struct {
	digest   [blake2b.Size256]byte
	buffer   []byte
	bufferCt int
}

// NewTrace is the preferred method of initialisation for the Trace type.
func NewTrace() *Trace {
	dig := &Trace{
		buffer:   make([]byte, traceBufferLength),
		bufferCt: traceBufferStart,
	}
	return dig
}

// Hash implements the Digest interface. Any buffered data is included in the
// hash.
func (dig *Trace) Hash() string {
	dig.flush()
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Trace) ResetDigest() {
	clear(dig.digest[:])
	clear(dig.buffer)
	dig.bufferCt = traceBufferStart
}

// Add values to the trace.
func (dig *Trace) Add(values ...uint16) {
	for _, v := range values {
		if dig.bufferCt+2 > traceBufferLength {
			dig.flush()
		}
		binary.BigEndian.PutUint16(dig.buffer[dig.bufferCt:], v)
		dig.bufferCt += 2
	}
}

func (dig *Trace) flush() {
	if dig.bufferCt == traceBufferStart {
		return
	}
	copy(dig.buffer, dig.digest[:])
	dig.digest = blake2b.Sum256(dig.buffer[:dig.bufferCt])
	dig.bufferCt = traceBufferStart
}
