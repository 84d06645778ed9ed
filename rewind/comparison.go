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

package rewind

import (
	"github.com/jetsetilly/dspcore/comparison"
	"github.com/jetsetilly/dspcore/curated"
)

// SetComparison points the comparison to the current entry.
func (r *Rewind) SetComparison() error {
	e := r.Current()
	if e == nil {
		return curated.Errorf(Empty)
	}
	r.comparison = e
	return nil
}

// GetComparison returns the comparison point. Returns nil if there is none.
func (r *Rewind) GetComparison() *Entry {
	return r.comparison
}

// Compare returns the differences between the comparison point and the
// current state of the DSP. The empty string is returned if there are no
// differences.
func (r *Rewind) Compare() (string, error) {
	if r.comparison == nil {
		return "", curated.Errorf(NoCompare)
	}
	return comparison.Diff(r.comparison.State, r.dsp.State), nil
}
