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

package logger_test

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/dspcore/logger"
	"github.com/jetsetilly/dspcore/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &test.CompareWriter{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "dsp", "halted")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "dsp: halted\n")
	w.Clear()

	log.Log(logger.Allow, "jit", "block compiled")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "dsp: halted\njit: block compiled\n")

	// asking for too many entries in a Tail() should be okay
	w.Clear()
	log.Tail(w, 100)
	test.ExpectEquality(t, len(w.Lines()), 2)

	w.Clear()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "jit: block compiled\n")

	w.Clear()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(100)
	w := &test.CompareWriter{}

	log.Log(logger.Allow, "memory", "unmapped read")
	log.Log(logger.Allow, "memory", "unmapped read")
	log.Log(logger.Allow, "memory", "unmapped read")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "memory: unmapped read (repeat x3)\n")
}

func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &test.CompareWriter{}

	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")
	log.Log(logger.Allow, "c", "3")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "b: 2\nc: 3\n")
}

func TestWriteRecent(t *testing.T) {
	log := logger.NewLogger(100)
	w := &test.CompareWriter{}

	log.Log(logger.Allow, "a", "1")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "a: 1\n")

	w.Clear()
	log.Log(logger.Allow, "b", "2")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "b: 2\n")

	w.Clear()
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	w := &test.CompareWriter{}

	log.SetEcho(w, false)
	log.Log(logger.Allow, "a", "1")
	test.ExpectEquality(t, w.String(), "a: 1\n")

	log.SetEcho(nil, false)
	log.Log(logger.Allow, "b", "2")
	test.ExpectEquality(t, w.String(), "a: 1\n")
}

// test permissions by randomising whether logging is allowed or not
type prohibitLogging struct {
	allow int
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow > 50
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &test.CompareWriter{}

	var p prohibitLogging

	for range 100 {
		p.allow = rand.IntN(100)
		log.Clear()
		w.Clear()
		log.Log(p, "tag", "detail")
		log.Write(w)
		if p.AllowLogging() {
			test.ExpectEquality(t, w.String(), "tag: detail\n")
		} else {
			test.ExpectEquality(t, w.String(), "")
		}
	}

	log.Clear()
	w.Clear()
	log.Log(logger.Deny, "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")
}

type stringerTest struct{}

func (_ stringerTest) String() string {
	return "stringer test"
}

func TestDetailTypes(t *testing.T) {
	log := logger.NewLogger(100)
	w := &test.CompareWriter{}

	err := errors.New("test error")
	log.Log(logger.Allow, "tag", err)
	log.Logf(logger.Allow, "tag", "wrapped: %v", err)
	log.Log(logger.Allow, "tag", stringerTest{})
	log.Log(logger.Allow, "tag", 100)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\ntag: wrapped: test error\ntag: stringer test\ntag: 100\n")
}

func TestFileSink(t *testing.T) {
	log := logger.NewLogger(100)
	fn := filepath.Join(t.TempDir(), "dspcore.log")

	test.DemandSuccess(t, log.SetFileSink(fn, 1, 1))
	log.Log(logger.Allow, "sink", "written to file")
	test.DemandSuccess(t, log.SetFileSink("", 0, 0))

	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasSuffix(string(b), "sink: written to file\n"))
}
