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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/dspcore/prefs"
	"github.com/jetsetilly/dspcore/test"
)

func TestCommandLineStackValues(t *testing.T) {
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	test.ExpectSuccess(t, prefs.PushCommandLineStack("foo::bar"))
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// surrounding space and case of the key
	test.ExpectSuccess(t, prefs.PushCommandLineStack("   FOO:: bar "))
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// unused values are returned sorted
	test.ExpectSuccess(t, prefs.PushCommandLineStack("foo::bar; baz::qux;"))
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux; foo::bar")

	// malformed entries are reported but the rest of the group is pushed
	test.ExpectFailure(t, prefs.PushCommandLineStack("foo_bar"))
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	test.ExpectFailure(t, prefs.PushCommandLineStack("foo_bar;baz::qux; ::x"))
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")

	test.ExpectFailure(t, prefs.PushCommandLineStack("foo::bar;baz_qux"))
	ok, _ := prefs.GetCommandLinePref("baz")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
}

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	test.ExpectSuccess(t, prefs.PushCommandLineStack("foo::bar"))
	test.ExpectSuccess(t, prefs.PushCommandLineStack("baz::qux"))

	// only the most recent group is consulted
	ok, _ := prefs.GetCommandLinePref("foo")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
}

func TestCommandLinePrefConsumed(t *testing.T) {
	test.DemandSuccess(t, prefs.PushCommandLineStack("jit.maxblock::16; dsp.idleskip::false"))
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)

	ok, v := prefs.GetCommandLinePref("JIT.MaxBlock")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, prefs.Value("16"))

	// the value is consumed once
	ok, _ = prefs.GetCommandLinePref("jit.maxblock")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "dsp.idleskip::false")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
