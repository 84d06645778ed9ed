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

package pcm_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/dspcore/curated"
	"github.com/jetsetilly/dspcore/hardware/dsp/memory"
	"github.com/jetsetilly/dspcore/logger"
	"github.com/jetsetilly/dspcore/pcm"
	"github.com/jetsetilly/dspcore/test"
)

func newMemory() *memory.Memory {
	mem := memory.NewMemory()
	mem.Permission = logger.Deny
	return mem
}

func TestCaptureWAV(t *testing.T) {
	mem := newMemory()
	samples := []uint16{0x0000, 0x7fff, 0x8000, 0xffff, 0x1234}
	for i, s := range samples {
		mem.WriteData(0x0100+uint16(i), s)
	}

	pth := filepath.Join(t.TempDir(), "capture.wav")
	f, err := os.Create(pth)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, pcm.CaptureWAV(f, mem, 0x0100, len(samples), 32000))
	test.DemandSuccess(t, f.Close())

	p, err := pcm.Load(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.SampleRate, 32000)
	test.DemandEquality(t, len(p.Samples), len(samples))
	for i, s := range samples {
		test.ExpectEquality(t, p.Samples[i], int16(s), i)
	}
}

func TestInvalidCapture(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "capture.wav"))
	test.DemandSuccess(t, err)
	defer f.Close()

	err = pcm.CaptureWAV(f, newMemory(), 0, 0, 32000)
	test.ExpectEquality(t, curated.Is(err, pcm.InvalidCapture), true)
}

func TestWriteToAux(t *testing.T) {
	mem := newMemory()
	p := pcm.PCM{Samples: []int16{0x0102, -2}}

	test.DemandSuccess(t, p.WriteToAux(mem, 0x10))
	test.ExpectEquality(t, mem.ARAM[0x20], byte(0x01))
	test.ExpectEquality(t, mem.ARAM[0x21], byte(0x02))
	test.ExpectEquality(t, mem.ARAM[0x22], byte(0xff))
	test.ExpectEquality(t, mem.ARAM[0x23], byte(0xfe))

	err := p.WriteToAux(mem, uint32(len(mem.ARAM)/2-1))
	test.ExpectEquality(t, curated.Is(err, pcm.OutOfRange), true)
}

func TestWriteToData(t *testing.T) {
	mem := newMemory()
	p := pcm.PCM{Samples: []int16{100, -100}}

	test.DemandSuccess(t, p.WriteToData(mem, 0x0200))
	test.ExpectEquality(t, mem.DRAM[0x0200], uint16(100))
	test.ExpectEquality(t, mem.DRAM[0x0201], uint16(0xff9c))

	test.ExpectFailure(t, p.WriteToData(mem, memory.DRAMSize-1))
}

func TestBadFiles(t *testing.T) {
	_, err := pcm.LoadWAV(bytes.NewReader([]byte("not a wav file")))
	test.ExpectEquality(t, curated.Is(err, pcm.DecodeError), true)

	_, err = pcm.LoadMP3(bytes.NewReader(nil))
	test.ExpectFailure(t, err)

	pth := filepath.Join(t.TempDir(), "samples.ogg")
	test.DemandSuccess(t, os.WriteFile(pth, []byte{0}, 0o644))
	_, err = pcm.Load(pth)
	test.ExpectEquality(t, curated.Is(err, pcm.UnknownFormat), true)
}
