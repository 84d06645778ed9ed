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

package logger

import (
	"io"
)

// the central logger is used by every package in the module. the monitor
// shows its entries with the LOG command and the command line tools can echo
// it or mirror it to a file
var central = NewLogger(256)

// Log adds an entry to the central logger.
func Log(perm Permission, tag string, detail interface{}) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(perm Permission, tag string, pattern string, args ...interface{}) {
	central.Logf(perm, tag, pattern, args...)
}

// Clear all entries from the central logger.
func Clear() {
	central.Clear()
}

// Tail writes the last number of entries in the central logger to output.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho prints new entries in the central logger to output. A nil output
// stops the echo.
func SetEcho(output io.Writer, writeRecent bool) {
	central.SetEcho(output, writeRecent)
}

// SetFileSink mirrors the central logger to a rotating log file.
func SetFileSink(filename string, maxSizeMB int, maxBackups int) error {
	return central.SetFileSink(filename, maxSizeMB, maxBackups)
}
