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

package comparison

import (
	"bytes"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jetsetilly/dspcore/hardware/dsp/memory"
	"github.com/jetsetilly/dspcore/hardware/dsp/state"
)

var stateOpts = cmp.Options{
	cmpopts.IgnoreUnexported(state.State{}),
	cmpopts.IgnoreFields(state.State{}, "Mem", "Permission"),
	cmpopts.EquateEmpty(),
}

var memoryOpts = cmp.Options{
	cmpopts.IgnoreUnexported(memory.Memory{}),
	cmpopts.IgnoreFields(memory.Memory{}, "Permission", "RAM", "ARAM"),
}

// Diff returns the difference between the two states. The empty string is
// returned if the states are the same.
//
// The status register of both states should be up to date. ie. neither
// state should be in the middle of a compiled block.
func Diff(expected *state.State, got *state.State) string {
	var s strings.Builder

	s.WriteString(cmp.Diff(expected, got, stateOpts))

	if expected.Mem != nil && got.Mem != nil {
		s.WriteString(cmp.Diff(expected.Mem, got.Mem, memoryOpts))
		if !bytes.Equal(expected.Mem.RAM, got.Mem.RAM) {
			s.WriteString("main RAM differs\n")
		}
		if !bytes.Equal(expected.Mem.ARAM, got.Mem.ARAM) {
			s.WriteString("auxiliary RAM differs\n")
		}
	}

	return s.String()
}
