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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/dspcore/digest"
	"github.com/jetsetilly/dspcore/test"
)

func TestUCode(t *testing.T) {
	a := digest.UCode([]uint16{0x0000, 0x0021, 0x0081})
	b := digest.UCode([]uint16{0x0000, 0x0021, 0x0081})
	c := digest.UCode([]uint16{0x0000, 0x0081, 0x0021})
	test.ExpectEquality(t, a, b)
	test.ExpectInequality(t, a, c)
	test.ExpectEquality(t, len(a), 64)
	test.ExpectEquality(t, digest.Short(a), a[:8])
}

func TestTrace(t *testing.T) {
	var _ digest.Digest = digest.NewTrace()

	a := digest.NewTrace()
	b := digest.NewTrace()

	// enough values to cause more than one flush
	for i := range 5000 {
		a.Add(uint16(i), 0x8000)
		b.Add(uint16(i), 0x8000)
	}
	test.ExpectEquality(t, a.Hash(), b.Hash())

	b.Add(1)
	test.ExpectInequality(t, a.Hash(), b.Hash())

	a.ResetDigest()
	b.ResetDigest()
	test.ExpectEquality(t, a.Hash(), b.Hash())
}
