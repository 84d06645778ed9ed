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

package assert

import (
	"fmt"
	"sync/atomic"
)

// Owner records the goroutine that first claims it. Subsequent checks from a
// different goroutine panic. The processor state is not safe for concurrent
// use and Owner is used in debug builds to catch violations early.
//
// The zero value is unclaimed.
type Owner struct {
	id atomic.Uint64
}

// Check claims the owner for the current goroutine if it is unclaimed. If the
// owner has already been claimed by a different goroutine then Check panics.
func (o *Owner) Check() {
	id := GetGoRoutineID()
	if o.id.CompareAndSwap(0, id) {
		return
	}
	if o.id.Load() != id {
		panic(fmt.Sprintf("assert: owned by goroutine %d but accessed from goroutine %d", o.id.Load(), id))
	}
}

// Release the owner so that another goroutine can claim it. Used when a
// processor is handed from one goroutine to another.
func (o *Owner) Release() {
	o.id.Store(0)
}
