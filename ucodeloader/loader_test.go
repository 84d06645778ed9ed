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

package ucodeloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/dspcore/curated"
	"github.com/jetsetilly/dspcore/digest"
	"github.com/jetsetilly/dspcore/test"
	"github.com/jetsetilly/dspcore/ucodeloader"
)

func write(t *testing.T, name string, data []byte) string {
	t.Helper()
	pth := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(pth, data, 0o644))
	return pth
}

func TestBinary(t *testing.T) {
	pth := write(t, "spin.bin", []byte{0x76, 0x00, 0x02, 0x9f, 0x00, 0x00})
	l, err := ucodeloader.NewLoader(pth, "")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, l.Format, ucodeloader.FormatBinary)
	test.ExpectEquality(t, l.ShortName(), "spin")

	test.DemandSuccess(t, l.Load())
	test.ExpectEqualState(t, l.Words, []uint16{0x7600, 0x029f, 0x0000})
	test.ExpectEquality(t, l.Hash, digest.UCode(l.Words))

	pth = write(t, "odd.bin", []byte{0x76})
	l, _ = ucodeloader.NewLoader(pth, "auto")
	test.ExpectEquality(t, curated.Is(l.Load(), ucodeloader.OddLength), true)
}

func TestText(t *testing.T) {
	pth := write(t, "spin.hex", []byte("# spin\n7600 0x029f\n0000 # jump target\n"))
	l, err := ucodeloader.NewLoader(pth, "")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, l.Format, ucodeloader.FormatText)

	test.DemandSuccess(t, l.Load())
	test.ExpectEqualState(t, l.Words, []uint16{0x7600, 0x029f, 0x0000})

	pth = write(t, "bad.txt", []byte("7600\nxyz\n"))
	l, _ = ucodeloader.NewLoader(pth, "")
	test.ExpectEquality(t, curated.Is(l.Load(), ucodeloader.FormatError), true)
}

func TestHash(t *testing.T) {
	pth := write(t, "spin.bin", []byte{0x76, 0x00})
	l, _ := ucodeloader.NewLoader(pth, "bin")
	l.Hash = "0123"
	test.ExpectEquality(t, curated.Is(l.Load(), ucodeloader.HashMismatch), true)
	test.ExpectEquality(t, l.HasLoaded(), false)

	_, err := ucodeloader.NewLoader(pth, "elf")
	test.ExpectEquality(t, curated.Is(err, ucodeloader.UnknownType), true)
}
