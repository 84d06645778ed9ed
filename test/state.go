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

package test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ExpectEqualState compares two values of the same type field by field. The
// test fails with a readable diff if they differ. Options are passed through
// to cmp.Diff() and can be used to ignore fields that are not meaningful to
// the comparison.
func ExpectEqualState[T any](t *testing.T, v T, expectedValue T, opts ...cmp.Option) bool {
	t.Helper()
	if diff := cmp.Diff(expectedValue, v, opts...); diff != "" {
		t.Errorf("state mismatch (-expected +got):\n%s", diff)
		return false
	}
	return true
}
