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

package curated

import (
	"errors"
	"fmt"
	"strings"
)

// curated is an implementation of the go language error interface. the
// message is not formatted until Error() is called
type curated struct {
	pattern string
	values  []interface{}
}

// Errorf creates a new curated error.
//
// Note that unlike the Errorf() function in the fmt package the first argument
// is named "pattern" not "format". The pattern string is what the Is() and
// Has() functions match against.
func Errorf(pattern string, values ...interface{}) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error implements the go language error interface. Adjacent duplicate parts
// of the message are removed.
func (er curated) Error() string {
	parts := strings.Split(fmt.Sprintf(er.pattern, er.values...), ": ")

	n := parts[:1]
	for _, p := range parts[1:] {
		if p != n[len(n)-1] {
			n = append(n, p)
		}
	}

	return strings.Join(n, ": ")
}

// Unwrap returns every error value used to create the curated error. The
// errors.Is() and errors.As() functions from the standard library see through
// curated errors to any wrapped error (eg. fs.ErrNotExist or
// pebble.ErrNotFound).
func (er curated) Unwrap() []error {
	var w []error
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			w = append(w, e)
		}
	}
	return w
}

// IsAny checks if the error is a curated error.
func IsAny(err error) bool {
	_, ok := err.(curated)
	return ok
}

// Is checks if error is a curated error with a specific pattern.
func Is(err error, pattern string) bool {
	er, ok := err.(curated)
	return ok && er.pattern == pattern
}

// Has checks if error is a curated error with a specific pattern somewhere in
// the error tree. Non-curated errors in the tree are traversed with their
// Unwrap() method.
func Has(err error, pattern string) bool {
	if err == nil {
		return false
	}
	if Is(err, pattern) {
		return true
	}

	if w, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range w.Unwrap() {
			if Has(e, pattern) {
				return true
			}
		}
		return false
	}

	return Has(errors.Unwrap(err), pattern)
}

// Pattern returns the pattern of a curated error. The empty string is
// returned for other errors.
func Pattern(err error) string {
	if er, ok := err.(curated); ok {
		return er.pattern
	}
	return ""
}
