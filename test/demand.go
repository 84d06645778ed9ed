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

// The Demand functions are the same as the equivalent Expect functions except
// that a failure stops the test. They should be used when later parts of the
// test depend on the value. For example, the error returned when creating a
// DSP or the length of a list that is about to be indexed.

// DemandEquality stops the test if the values are not equal.
func DemandEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) {
	t.Helper()
	if !ExpectEquality(t, v, expectedValue, tags...) {
		t.FailNow()
	}
}

// DemandSuccess stops the test if the value does not indicate success.
func DemandSuccess(t *testing.T, v any, tags ...any) {
	t.Helper()
	if !ExpectSuccess(t, v, tags...) {
		t.FailNow()
	}
}

// DemandFailure stops the test if the value does not indicate failure.
func DemandFailure(t *testing.T, v any, tags ...any) {
	t.Helper()
	if !ExpectFailure(t, v, tags...) {
		t.FailNow()
	}
}

// DemandEqualState stops the test if the two values differ. See
// ExpectEqualState().
func DemandEqualState[T any](t *testing.T, v T, expectedValue T, opts ...cmp.Option) {
	t.Helper()
	if !ExpectEqualState(t, v, expectedValue, opts...) {
		t.FailNow()
	}
}
