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

package test_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/dspcore/test"
)

func TestExpectations(t *testing.T) {
	test.ExpectSuccess(t, nil)
	test.ExpectSuccess(t, true)
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("fail"))
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, 10, 10)
	test.ExpectInequality(t, uint16(10), 11)
	test.DemandEquality(t, "a", "a")
}

type state struct {
	A int
	B []uint16
}

func TestExpectEqualState(t *testing.T) {
	a := state{A: 1, B: []uint16{1, 2, 3}}
	b := state{A: 1, B: []uint16{1, 2, 3}}
	test.ExpectEqualState(t, a, b)
}

func TestCompareWriter(t *testing.T) {
	w := &test.CompareWriter{}
	w.Write([]byte("hello "))
	w.Write([]byte("world"))
	test.ExpectSuccess(t, w.Compare("hello world"))
	w.Clear()
	test.ExpectEquality(t, w.String(), "")
}
