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

package assert_test

import (
	"testing"

	"github.com/jetsetilly/dspcore/assert"
	"github.com/jetsetilly/dspcore/test"
)

func TestOwner(t *testing.T) {
	var o assert.Owner
	o.Check()
	o.Check()

	panicked := make(chan bool)
	go func() {
		defer func() {
			panicked <- recover() != nil
		}()
		o.Check()
	}()
	test.ExpectSuccess(t, <-panicked)

	o.Release()
	go func() {
		defer func() {
			panicked <- recover() != nil
		}()
		o.Check()
	}()
	test.ExpectFailure(t, <-panicked)
}

func TestGoRoutineID(t *testing.T) {
	id := assert.GetGoRoutineID()
	test.ExpectInequality(t, id, 0)
	test.ExpectEquality(t, assert.GetGoRoutineID(), id)
}
