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

//go:build !release

package paths_test

import (
	"os"
	"strings"
	"testing"

	"github.com/jetsetilly/dspcore/paths"
	"github.com/jetsetilly/dspcore/test"
)

func TestPaths(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	t.Cleanup(func() { os.Chdir(wd) })
	test.DemandSuccess(t, os.Chdir(t.TempDir()))

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".dspcore/foo/bar/baz")

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".dspcore/baz")

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".dspcore")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("capture", "zelda", ".wav")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "capture_zelda_"))
	test.ExpectSuccess(t, strings.HasSuffix(fn, ".wav"))

	fn = paths.UniqueFilename("capture", " ", "")
	test.ExpectEquality(t, len(fn), len("capture_20060102_150405"))

	fn = paths.UniqueFilename("trace", "a b/c", ".log")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "trace_a_b_c_"))
}
