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

package ucodeloader

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jetsetilly/dspcore/curated"
	"github.com/jetsetilly/dspcore/digest"
)

// Sentinel error patterns.
const (
	LoadError    = "ucodeloader: %v"
	FormatError  = "ucodeloader: %s: line %d: %v"
	OddLength    = "ucodeloader: %s: binary image has an odd number of bytes"
	HashMismatch = "ucodeloader: %s: unexpected hash (%s)"
	UnknownType  = "ucodeloader: unknown format (%s)"
)

// List of formats.
const (
	FormatAuto   = "AUTO"
	FormatBinary = "BIN"
	FormatText   = "HEX"
)

// Loader is used to specify the microcode to load into the DSP.
type Loader struct {
	// filename of the microcode image
	Filename string

	// one of the Format values. FormatAuto selects the format from the file
	// extension
	Format string

	// expected hash of the loaded words. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded words
	Hash string

	// the loaded image
	Words []uint16
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string, format string) (Loader, error) {
	l := Loader{
		Filename: filename,
		Format:   strings.TrimSpace(strings.ToUpper(format)),
	}

	switch l.Format {
	case "", FormatAuto:
		switch strings.ToLower(filepath.Ext(filename)) {
		case ".hex", ".txt":
			l.Format = FormatText
		default:
			l.Format = FormatBinary
		}
	case FormatBinary, FormatText:
	default:
		return Loader{}, curated.Errorf(UnknownType, format)
	}

	return l, nil
}

// ShortName returns the filename without the path or extension.
func (l Loader) ShortName() string {
	n := filepath.Base(l.Filename)
	return strings.TrimSuffix(n, filepath.Ext(n))
}

// HasLoaded returns true if Load() has been successfully called.
func (l Loader) HasLoaded() bool {
	return len(l.Words) > 0
}

// Load the image from disk. The image is loaded again on every call so that a
// changed file can be reloaded.
func (l *Loader) Load() error {
	data, err := os.ReadFile(l.Filename)
	if err != nil {
		return curated.Errorf(LoadError, err)
	}

	var words []uint16
	switch l.Format {
	case FormatText:
		words, err = l.parseText(data)
	default:
		words, err = l.parseBinary(data)
	}
	if err != nil {
		return err
	}

	hash := digest.UCode(words)
	if l.Hash != "" && l.Hash != hash {
		return curated.Errorf(HashMismatch, l.ShortName(), digest.Short(hash))
	}

	l.Hash = hash
	l.Words = words
	return nil
}

func (l *Loader) parseBinary(data []byte) ([]uint16, error) {
	if len(data)%2 != 0 {
		return nil, curated.Errorf(OddLength, l.ShortName())
	}
	words := make([]uint16, len(data)/2)
	for i := range words {
		words[i] = uint16(data[i*2])<<8 | uint16(data[i*2+1])
	}
	return words, nil
}

func (l *Loader) parseText(data []byte) ([]uint16, error) {
	var words []uint16
	scanner := bufio.NewScanner(bytes.NewReader(data))
	var line int
	for scanner.Scan() {
		line++
		s := scanner.Text()
		if i := strings.Index(s, "#"); i >= 0 {
			s = s[:i]
		}
		for _, f := range strings.Fields(s) {
			f = strings.TrimPrefix(strings.ToLower(f), "0x")
			w, err := strconv.ParseUint(f, 16, 16)
			if err != nil {
				return nil, curated.Errorf(FormatError, l.ShortName(), line, err)
			}
			words = append(words, uint16(w))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(LoadError, err)
	}
	return words, nil
}
