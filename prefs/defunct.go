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

package prefs

// keys that are no longer used. a key that was renamed maps to its new name
// and a key that was removed maps to the empty string.
//
// the value of a renamed key is used when the new key is not in the file.
// defunct keys are never written back on save.
var defunct = map[string]string{
	"jit.linkthreshold":    "",
	"dsp.legacyexceptions": "",
	"jit.blocksize":        "jit.maxblock",
	"dsp.vectoring":        "dsp.vectorexceptions",
}

func isDefunct(key string) bool {
	_, ok := defunct[key]
	return ok
}

// returns the defunct key that was renamed to key
func renamedFrom(key string) (string, bool) {
	for old, n := range defunct {
		if n == key {
			return old, true
		}
	}
	return "", false
}
