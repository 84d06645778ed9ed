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

// UCode returns the hash of a microcode image. Words are hashed big-endian,
// which is the order they are stored in on the host.
func UCode(words []uint16) string {
	b := make([]byte, len(words)*2)
	for i, w := range words {
		binary.BigEndian.PutUint16(b[i*2:], w)
	}
	return fmt.Sprintf("%x", blake2b.Sum256(b))
}

// Short returns the first eight hex digits of the hash. Good for use in
// filenames and log messages.
func Short(hash string) string {
	if len(hash) < 8 {
		return hash
	}
	return hash[:8]
}
