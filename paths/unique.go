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

package paths

import (
	"fmt"
	"strings"
	"time"
)

// UniqueFilename creates a filename that (assuming a functioning clock) should
// not collide with any existing file. The function does not check.
//
// The ucode argument is the short name of the loaded microcode and can be
// empty. Spaces and path separators in the name are replaced. The ext
// argument should include the leading dot.
//
//	capture_zelda_20060102_150405.wav
func UniqueFilename(prepend string, ucode string, ext string) string {
	timestamp := time.Now().Format("20060102_150405")

	c := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\', ':':
			return '_'
		}
		return r
	}, strings.TrimSpace(ucode))

	if c == "" {
		return fmt.Sprintf("%s_%s%s", prepend, timestamp, ext)
	}
	return fmt.Sprintf("%s_%s_%s%s", prepend, c, timestamp, ext)
}
