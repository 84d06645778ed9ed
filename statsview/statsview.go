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

//go:build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jetsetilly/dspcore/logger"
)

// DefaultAddress of the statsview server.
const DefaultAddress = "localhost:12601"

const path = "/debug/statsview"

// Launch the statsview server in a new goroutine. An empty address means
// DefaultAddress. The returned function stops the server.
func Launch(output io.Writer, address string) func() {
	if address == "" {
		address = DefaultAddress
	}

	viewer.SetConfiguration(
		viewer.WithAddr(address),
		viewer.WithTheme(viewer.ThemeWesteros),
		viewer.WithTimeFormat("15:04:05"),
	)
	mgr := statsview.New()

	go func() {
		mgr.Start()
		logger.Logf(logger.Allow, "statsview", "server at %s stopped", address)
	}()

	fmt.Fprintf(output, "stats server available at %s%s\n", address, path)

	return mgr.Stop
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
