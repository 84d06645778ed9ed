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

// Package test bundles helper functions useful for testing, particularly in
// conjunction with the standard go test harness.
//
// The Expect*() functions report a failure and allow the test to continue.
// The Demand*() functions are fatal and should be used when later parts of
// the test depend on the value being correct.
//
// It is worth describing how success and failure are interpreted because it
// is not obvious. A nil value is considered a success. This is because of how
// errors usually work (nil to indicate no error). A bool is a success if it is
// true and an error is a failure if it is not nil.
//
// ExpectEqualState() compares two arbitrary structures, typically two
// processor snapshots, and reports the difference between them in a readable
// form.
package test
