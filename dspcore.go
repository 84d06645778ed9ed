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

package main

import (
	"fmt"
	"os"

	"github.com/jetsetilly/dspcore/hardware/dsp"
	"github.com/jetsetilly/dspcore/hardware/preferences"
	"github.com/jetsetilly/dspcore/logger"
	"github.com/jetsetilly/dspcore/paths"
	"github.com/jetsetilly/dspcore/prefs"
	"github.com/jetsetilly/dspcore/savestate"
	"github.com/jetsetilly/dspcore/ucodeloader"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(10)
	}
}

// values of the persistent flags
type globals struct {
	prefs     string
	prefsFile string
	store     string
	log       string
	echo      bool

	pushed bool
}

func newRootCommand() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:           "dspcore",
		Short:         "DSP instruction analysis, interpretation and block compilation",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return g.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			g.teardown()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.prefs, "prefs", "", "preference overrides (key::value; key::value)")
	pf.StringVar(&g.prefsFile, "prefsfile", "", "preferences file (default is in the resource directory)")
	pf.StringVar(&g.store, "store", "", "save state directory (default is in the resource directory)")
	pf.StringVar(&g.log, "log", "", "mirror the log to a rotating file")
	pf.BoolVar(&g.echo, "echo", false, "echo the log to stderr")

	root.AddCommand(
		newRunCommand(g),
		newAnalyzeCommand(g),
		newTraceCommand(g),
		newMonitorCommand(g),
		newDumpCommand(g),
		newFuzzCommand(g),
		newSaveStateCommand(g),
	)

	return root
}

func (g *globals) setup() error {
	if g.prefs != "" {
		if err := prefs.PushCommandLineStack(g.prefs); err != nil {
			prefs.PopCommandLineStack()
			return err
		}
		g.pushed = true
	}
	if g.log != "" {
		if err := logger.SetFileSink(g.log, 10, 3); err != nil {
			return err
		}
	}
	if g.echo {
		logger.SetEcho(os.Stderr, false)
	}
	return nil
}

func (g *globals) teardown() {
	g.popPrefs()
}

// command line preferences are used when the preferences are created. any
// that remain were not recognised
func (g *globals) popPrefs() {
	if g.pushed {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
		}
		g.pushed = false
	}
}

func (g *globals) preferences() (*preferences.Preferences, error) {
	defer g.popPrefs()
	if g.prefsFile != "" {
		return preferences.NewPreferencesFromFile(g.prefsFile)
	}
	return preferences.NewPreferences()
}

func (g *globals) newDSP() (*dsp.DSP, error) {
	p, err := g.preferences()
	if err != nil {
		return nil, err
	}
	return dsp.NewDSP(p)
}

func (g *globals) openStore() (*savestate.Store, error) {
	dir := g.store
	if dir == "" {
		var err error
		dir, err = paths.ResourcePath("savestates", "")
		if err != nil {
			return nil, err
		}
	}
	return savestate.Open(dir)
}

// ucode describes where a microcode image is loaded
type ucode struct {
	format string
	origin uint16
	rom    bool
}

func (u *ucode) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&u.format, "format", ucodeloader.FormatAuto, "image format (AUTO, BIN or HEX)")
	fs.Uint16Var(&u.origin, "origin", 0, "IRAM load address")
	fs.BoolVar(&u.rom, "rom", false, "load the image into IROM")
}

// load the image into the DSP. Execution starts at the load address
func (u *ucode) load(d *dsp.DSP, filename string) (ucodeloader.Loader, error) {
	l, err := ucodeloader.NewLoader(filename, u.format)
	if err != nil {
		return l, err
	}
	if err := l.Load(); err != nil {
		return l, err
	}
	u.install(d, l)
	return l, nil
}

func (u *ucode) install(d *dsp.DSP, l ucodeloader.Loader) {
	if u.rom {
		d.LoadIROM(l.Words)
		d.Reset()
		return
	}
	d.LoadIRAM(u.origin, l.Words)
	d.State.PC = u.origin
}
