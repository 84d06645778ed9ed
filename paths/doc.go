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

// Package paths contains functions to prepare paths to dspcore resources:
// the prefs file, the snapshot store and log files.
//
// The ResourcePath() function prepends the supplied resource with the
// appropriate config directory. For development builds this is ".dspcore" in
// the current directory. For builds with the "release" tag the user's config
// directory is used, as returned by os.UserConfigDir(). On a modern Linux
// system:
//
//	/home/user/.config/dspcore/snapshots
package paths
