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

package curated_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/jetsetilly/dspcore/curated"
	"github.com/jetsetilly/dspcore/test"
)

const (
	unsupported = "jit: unsupported opcode %04x at %04x"
	wrapper     = "dsp: %v"
	slot        = "savestate: %s: %v"
)

func TestIs(t *testing.T) {
	err := curated.Errorf(unsupported, 0x1234, 0x10)
	test.ExpectEquality(t, err.Error(), "jit: unsupported opcode 1234 at 0010")
	test.ExpectSuccess(t, curated.Is(err, unsupported))
	test.ExpectSuccess(t, curated.IsAny(err))
	test.ExpectEquality(t, curated.Pattern(err), unsupported)

	test.ExpectFailure(t, curated.Is(nil, unsupported))
	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectEquality(t, curated.Pattern(errors.New("plain")), "")
}

func TestHas(t *testing.T) {
	inner := curated.Errorf(unsupported, 0x1234, 0x10)
	outer := curated.Errorf(wrapper, inner)
	test.ExpectFailure(t, curated.Is(outer, unsupported))
	test.ExpectSuccess(t, curated.Has(outer, unsupported))

	// through a non-curated error
	std := fmt.Errorf("run: %w", outer)
	test.ExpectSuccess(t, curated.Has(std, unsupported))
	test.ExpectFailure(t, curated.Has(std, slot))
	test.ExpectFailure(t, curated.Has(nil, slot))
}

func TestUnwrap(t *testing.T) {
	err := curated.Errorf(slot, "a", fs.ErrNotExist)
	test.ExpectSuccess(t, errors.Is(err, fs.ErrNotExist))
	test.ExpectFailure(t, errors.Is(err, fs.ErrExist))
}

func TestNormalise(t *testing.T) {
	inner := curated.Errorf("dsp: bad slot")
	err := curated.Errorf(wrapper, inner)
	test.ExpectEquality(t, err.Error(), "dsp: bad slot")

	// only adjacent duplicates are removed
	err = curated.Errorf("a: b: %v", curated.Errorf("a: c"))
	test.ExpectEquality(t, err.Error(), "a: b: a: c")
}
