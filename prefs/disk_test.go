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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/dspcore/prefs"
	"github.com/jetsetilly/dspcore/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.Get(), prefs.Value(false))
	test.ExpectSuccess(t, v.Set("TRUE"))
	test.ExpectEquality(t, v.String(), "true")
	test.ExpectSuccess(t, v.Set(false))
	test.ExpectEquality(t, v.Get(), prefs.Value(false))
	test.ExpectFailure(t, v.Set(10))
	test.ExpectFailure(t, v.Set("maybe"))
	test.ExpectEquality(t, v.Get(), prefs.Value(false))
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectSuccess(t, v.Set("0x40"))
	test.ExpectEquality(t, v.Get(), prefs.Value(64))
	test.ExpectFailure(t, v.Set("sixty four"))

	// yaml and json decoders can produce floats
	test.ExpectSuccess(t, v.Set(32.0))
	test.ExpectEquality(t, v.Get(), prefs.Value(32))
	test.ExpectFailure(t, v.Set(1.5))

	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.String(), "0")
}

func TestStringList(t *testing.T) {
	var v prefs.String
	test.ExpectSuccess(t, v.Set([]interface{}{"LRRI", "SRRN"}))
	test.ExpectEquality(t, v.String(), "LRRI,SRRN")
	test.ExpectEquality(t, len(v.List()), 2)
	test.ExpectSuccess(t, v.Set(""))
	test.ExpectEquality(t, len(v.List()), 0)
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int
	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 0 {
			return os.ErrInvalid
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})
	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, post, 10)
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get(), prefs.Value(10))
}

func TestDisk(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs.yaml")

	var callstack prefs.Int
	var idleskip prefs.Bool
	var exclude prefs.String

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dsk.Add("dsp.callstack", &callstack))
	test.DemandSuccess(t, dsk.Add("dsp.idleskip", &idleskip))
	test.DemandSuccess(t, dsk.Add("jit.exclude", &exclude))
	test.ExpectFailure(t, dsk.Add("dsp.callstack", &callstack))

	// loading a missing file is fine
	test.ExpectSuccess(t, dsk.Load())

	callstack.Set(8)
	idleskip.Set(true)
	exclude.Set("LRRI")
	test.DemandSuccess(t, dsk.Save())

	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(b), "callstack: 8"))

	test.DemandSuccess(t, dsk.Reset())
	test.ExpectEquality(t, callstack.Get(), prefs.Value(0))

	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, callstack.Get(), prefs.Value(8))
	test.ExpectEquality(t, idleskip.Get(), prefs.Value(true))
	test.ExpectEquality(t, exclude.String(), "LRRI")
}

func TestDiskCommandLine(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs.yaml")

	test.DemandSuccess(t, prefs.PushCommandLineStack("jit.maxblock::16"))
	defer prefs.PopCommandLineStack()

	var maxblock prefs.Int
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dsk.Add("jit.maxblock", &maxblock))
	test.ExpectEquality(t, maxblock.Get(), prefs.Value(16))
}

func TestDiskDefunct(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs.yaml")
	old := "jit:\n  blocksize: 32\n  linkthreshold: 4\n"
	test.DemandSuccess(t, os.WriteFile(fn, []byte(old), 0o600))

	var maxblock prefs.Int
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, dsk.Add("jit.linkthreshold", &maxblock))
	test.DemandSuccess(t, dsk.Add("jit.maxblock", &maxblock))

	// the value of the renamed key is used
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, maxblock.Get(), prefs.Value(32))

	// and is written back under the new key only
	test.DemandSuccess(t, dsk.Save())
	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.Contains(string(b), "maxblock: 32"), true)
	test.ExpectEquality(t, strings.Contains(string(b), "blocksize"), false)
	test.ExpectEquality(t, strings.Contains(string(b), "linkthreshold"), false)
}
