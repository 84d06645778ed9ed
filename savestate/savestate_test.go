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

package savestate

import (
	"bytes"
	"testing"

	"github.com/cockroachdb/pebble"
	"github.com/jetsetilly/dspcore/curated"
	"github.com/jetsetilly/dspcore/logger"
	"github.com/jetsetilly/dspcore/test"
)

func open(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	test.DemandSuccess(t, err)
	s.Permission = logger.Deny
	return s
}

func TestSaveAndLoad(t *testing.T) {
	s := open(t)
	defer s.Close()

	blob := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	test.DemandSuccess(t, s.Save("first", blob))

	b, err := s.Load("first")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, bytes.Equal(b, blob), true)

	// replacing the contents of a slot
	test.DemandSuccess(t, s.Save("first", blob[:2]))
	b, err = s.Load("first")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(b), 2)

	_, err = s.Load("second")
	test.ExpectEquality(t, curated.Is(err, NoSlot), true)
}

func TestList(t *testing.T) {
	s := open(t)
	defer s.Close()

	for _, slot := range []string{"c", "a", "b"} {
		test.DemandSuccess(t, s.Save(slot, []byte(slot)))
	}

	l, err := s.List()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(l), 3)
	test.ExpectEquality(t, l[0].Slot, "a")
	test.ExpectEquality(t, l[1].Slot, "b")
	test.ExpectEquality(t, l[2].Slot, "c")
	test.ExpectEquality(t, l[0].Size, 1)

	test.DemandSuccess(t, s.Delete("b"))
	l, err = s.List()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(l), 2)

	test.ExpectEquality(t, curated.Is(s.Delete("b"), NoSlot), true)
}

func TestInvalidSlot(t *testing.T) {
	s := open(t)
	defer s.Close()

	test.ExpectEquality(t, curated.Is(s.Save("", nil), InvalidSlot), true)
	test.ExpectEquality(t, curated.Is(s.Save("a/b", nil), InvalidSlot), true)
}

func TestCorrupted(t *testing.T) {
	s := open(t)
	defer s.Close()

	test.DemandSuccess(t, s.Save("slot", []byte{0xaa, 0xbb, 0xcc}))

	// flip a bit in the stored blob
	k, _ := key("slot")
	v, closer, err := s.db.Get(k)
	test.DemandSuccess(t, err)
	c := bytes.Clone(v)
	closer.Close()
	c[len(c)-1] ^= 0x01
	test.DemandSuccess(t, s.db.Set(k, c, pebble.Sync))

	_, err = s.Load("slot")
	test.ExpectEquality(t, curated.Is(err, Corrupted), true)

	// a value too short to hold the header
	test.DemandSuccess(t, s.db.Set(k, []byte{0x00}, pebble.Sync))
	_, err = s.Load("slot")
	test.ExpectEquality(t, curated.Is(err, Corrupted), true)
}

func TestReopen(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, s.Save("persist", []byte("dsp")))
	test.DemandSuccess(t, s.Close())
	test.ExpectFailure(t, s.Close())

	s, err = Open(dir)
	test.DemandSuccess(t, err)
	defer s.Close()
	b, err := s.Load("persist")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), "dsp")
}
