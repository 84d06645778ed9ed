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

package pcm

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/dspcore/curated"
	"github.com/jetsetilly/dspcore/hardware/dsp/memory"
	"github.com/jetsetilly/dspcore/logger"
)

// Sentinel error patterns.
const (
	DecodeError    = "pcm: %s: %v"
	UnknownFormat  = "pcm: unknown file format (%s)"
	OutOfRange     = "pcm: %d samples at %04x do not fit in %s"
	EncodeError    = "pcm: wav: %v"
	InvalidCapture = "pcm: invalid capture (%d samples at %dHz)"
)

// PCM is mono signed 16-bit sample data.
type PCM struct {
	SampleRate int
	Samples    []int16
}

func (p PCM) String() string {
	if p.SampleRate == 0 {
		return fmt.Sprintf("%d samples", len(p.Samples))
	}
	return fmt.Sprintf("%d samples at %dHz (%.02fs)", len(p.Samples), p.SampleRate,
		float64(len(p.Samples))/float64(p.SampleRate))
}

// Load a WAV or MP3 file. The format is decided by the file extension.
func Load(filename string) (PCM, error) {
	f, err := os.Open(filename)
	if err != nil {
		return PCM{}, curated.Errorf(DecodeError, filepath.Base(filename), err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		return LoadWAV(f)
	case ".mp3":
		return LoadMP3(f)
	}
	return PCM{}, curated.Errorf(UnknownFormat, filepath.Ext(filename))
}

// LoadWAV decodes WAV data. Only the first channel of a multi-channel file is
// used.
func LoadWAV(r io.ReadSeeker) (PCM, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return PCM{}, curated.Errorf(DecodeError, "wav", "not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return PCM{}, curated.Errorf(DecodeError, "wav", err)
	}

	chans := int(dec.NumChans)
	if chans < 1 {
		chans = 1
	}

	p := PCM{
		SampleRate: int(dec.SampleRate),
		Samples:    make([]int16, 0, len(buf.Data)/chans),
	}
	for i := 0; i < len(buf.Data); i += chans {
		p.Samples = append(p.Samples, toInt16(buf.Data[i], int(dec.BitDepth)))
	}

	logger.Logf(logger.Allow, "pcm", "wav: %s", p)
	return p, nil
}

// convert a sample of the bit depth to signed 16-bit. 8-bit WAV data is
// unsigned
func toInt16(v int, depth int) int16 {
	switch {
	case depth == 8:
		return int16((v - 128) << 8)
	case depth > 16:
		return int16(v >> (depth - 16))
	}
	return int16(v)
}

// LoadMP3 decodes MP3 data. The decoder always produces two channels of
// 16-bit little-endian samples. Only the left channel is used.
func LoadMP3(r io.Reader) (PCM, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return PCM{}, curated.Errorf(DecodeError, "mp3", err)
	}

	p := PCM{SampleRate: dec.SampleRate()}

	chunk := make([]byte, 4096)
	for {
		n, err := io.ReadFull(dec, chunk)
		for i := 0; i+1 < n; i += 4 {
			p.Samples = append(p.Samples, int16(uint16(chunk[i])|uint16(chunk[i+1])<<8))
		}
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return PCM{}, curated.Errorf(DecodeError, "mp3", err)
		}
	}

	logger.Logf(logger.Allow, "pcm", "mp3: %s", p)
	return p, nil
}

// WriteToAux writes the samples to auxiliary RAM, starting at the word
// address, in the 16-bit format read by the accelerator.
func (p PCM) WriteToAux(mem *memory.Memory, addr uint32) error {
	a := int(addr) * 2
	if a+len(p.Samples)*2 > len(mem.ARAM) {
		return curated.Errorf(OutOfRange, len(p.Samples), addr, "auxiliary RAM")
	}
	for _, s := range p.Samples {
		mem.ARAM[a] = byte(uint16(s) >> 8)
		mem.ARAM[a+1] = byte(s)
		a += 2
	}
	return nil
}

// WriteToData writes the samples to data RAM starting at the address.
func (p PCM) WriteToData(mem *memory.Memory, addr uint16) error {
	if int(addr)+len(p.Samples) > memory.DRAMSize {
		return curated.Errorf(OutOfRange, len(p.Samples), addr, "data RAM")
	}
	for i, s := range p.Samples {
		mem.WriteData(addr+uint16(i), uint16(s))
	}
	return nil
}

// Capture returns count words of data memory, starting at the address, as
// sample data. Reading is free of side effects.
func Capture(mem *memory.Memory, addr uint16, count int, rate int) PCM {
	p := PCM{
		SampleRate: rate,
		Samples:    make([]int16, count),
	}
	for i := range p.Samples {
		p.Samples[i] = int16(mem.Peek(addr + uint16(i)))
	}
	return p
}

// CaptureWAV writes count words of data memory, starting at the address, to
// w as a mono 16-bit WAV at the sample rate.
func CaptureWAV(w io.WriteSeeker, mem *memory.Memory, addr uint16, count int, rate int) error {
	if count <= 0 || rate <= 0 {
		return curated.Errorf(InvalidCapture, count, rate)
	}
	return Capture(mem, addr, count, rate).WriteWAV(w)
}

// WriteWAV encodes the samples as a mono 16-bit WAV.
func (p PCM) WriteWAV(w io.WriteSeeker) error {
	enc := wav.NewEncoder(w, p.SampleRate, 16, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  p.SampleRate,
		},
		Data:           make([]int, len(p.Samples)),
		SourceBitDepth: 16,
	}
	for i, s := range p.Samples {
		buf.Data[i] = int(s)
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf(EncodeError, err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf(EncodeError, err)
	}

	logger.Logf(logger.Allow, "pcm", "captured %s", p)
	return nil
}
