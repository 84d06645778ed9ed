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
	"os/signal"
	"strconv"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jetsetilly/dspcore/curated"
	"github.com/jetsetilly/dspcore/hardware/dsp"
	"github.com/jetsetilly/dspcore/logger"
	"github.com/jetsetilly/dspcore/paths"
	"github.com/jetsetilly/dspcore/pcm"
	"github.com/jetsetilly/dspcore/statsview"
	"github.com/jetsetilly/dspcore/ucodeloader"
	"github.com/spf13/cobra"
)

type runOptions struct {
	ucode ucode

	slices int
	budget int
	mail   []string

	watch         bool
	statsview     bool
	statsviewAddr string

	samples     string
	samplesAddr uint32

	capture      string
	captureAddr  uint16
	captureCount int
	captureRate  int
}

// value of the --capture flag that chooses a filename automatically
const captureAuto = "AUTO"

func newRunCommand(g *globals) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run UCODE",
		Short: "load a microcode image and run it in slices",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, g, args[0])
		},
	}

	fs := cmd.Flags()
	opts.ucode.addFlags(fs)
	fs.IntVar(&opts.slices, "slices", 100, "number of slices to run")
	fs.IntVar(&opts.budget, "budget", 1024, "cycles per slice")
	fs.StringSliceVar(&opts.mail, "mail", nil, "mails pushed to the DSP, one before each slice")
	fs.BoolVar(&opts.watch, "watch", false, "reload the image when the file changes and keep running")
	fs.BoolVar(&opts.statsview, "statsview", false, "launch the runtime statistics server")
	fs.StringVar(&opts.statsviewAddr, "statsview-addr", statsview.DefaultAddress, "address of the runtime statistics server")
	fs.StringVar(&opts.samples, "samples", "", "WAV or MP3 file loaded into auxiliary RAM")
	fs.Uint32Var(&opts.samplesAddr, "samples-addr", 0, "auxiliary RAM word address of the samples")
	fs.StringVar(&opts.capture, "capture", "", "write a region of data memory to a WAV file after running (AUTO for a file in the resource directory)")
	fs.Uint16Var(&opts.captureAddr, "capture-addr", 0, "start of the captured region")
	fs.IntVar(&opts.captureCount, "capture-count", 0x100, "number of words captured")
	fs.IntVar(&opts.captureRate, "capture-rate", 32000, "sample rate of the captured WAV")

	return cmd
}

func (opts *runOptions) run(cmd *cobra.Command, g *globals, filename string) error {
	out := cmd.OutOrStdout()

	d, err := g.newDSP()
	if err != nil {
		return err
	}

	mail := make([]uint32, len(opts.mail))
	for i, m := range opts.mail {
		v, err := strconv.ParseUint(m, 0, 32)
		if err != nil {
			return curated.Errorf("run: bad mail value (%s)", m)
		}
		mail[i] = uint32(v)
	}

	l, err := opts.ucode.load(d, filename)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: %d words (%s)\n", l.ShortName(), len(l.Words), l.Hash[:8])

	if opts.samples != "" {
		p, err := pcm.Load(opts.samples)
		if err != nil {
			return err
		}
		if err := p.WriteToAux(d.Mem, opts.samplesAddr); err != nil {
			return err
		}
		fmt.Fprintf(out, "samples: %s\n", p)
	}

	if opts.statsview {
		stop := statsview.Launch(out, opts.statsviewAddr)
		defer stop()
	}

	if opts.watch {
		if err := opts.runWatched(cmd, d, l); err != nil {
			return err
		}
	} else {
		opts.runSlices(cmd, d, mail)
	}

	fmt.Fprintln(out, d.Stats())

	if opts.capture != "" {
		if opts.capture == captureAuto {
			opts.capture, err = paths.ResourcePath("captures", paths.UniqueFilename("capture", l.ShortName(), ".wav"))
			if err != nil {
				return err
			}
		}
		f, err := os.Create(opts.capture)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pcm.CaptureWAV(f, d.Mem, opts.captureAddr, opts.captureCount, opts.captureRate); err != nil {
			return err
		}
		fmt.Fprintf(out, "captured %d words at %04x to %s\n", opts.captureCount, opts.captureAddr, opts.capture)
	}

	return nil
}

func (opts *runOptions) runSlices(cmd *cobra.Command, d *dsp.DSP, mail []uint32) {
	for i := 0; i < opts.slices; i++ {
		if i < len(mail) {
			d.PushMail(mail[i])
		}
		r := d.RunSlice(opts.budget)
		for {
			m, ok := d.ReadMail()
			if !ok {
				break
			}
			fmt.Fprintf(cmd.OutOrStdout(), "slice %d: mail %08x\n", i, m)
		}
		if d.State.Halted() {
			fmt.Fprintf(cmd.OutOrStdout(), "slice %d: %s\n", i, r)
			break
		}
	}
}

// run slices until interrupted. the image is reloaded through the invalidating
// write path whenever the file is written
func (opts *runOptions) runWatched(cmd *cobra.Command, d *dsp.DSP, l ucodeloader.Loader) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(l.Filename); err != nil {
		return err
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	fmt.Fprintf(cmd.OutOrStdout(), "watching %s\n", l.Filename)

	for {
		select {
		case <-intChan:
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			l.Hash = ""
			if err := l.Load(); err != nil {
				logger.Log(logger.Allow, "run", err)
				continue
			}
			opts.ucode.install(d, l)
			fmt.Fprintf(cmd.OutOrStdout(), "reloaded %s (%s)\n", l.ShortName(), l.Hash[:8])

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Log(logger.Allow, "run", err)

		default:
			if d.State.Halted() {
				time.Sleep(10 * time.Millisecond)
				continue
			}
			d.RunSlice(opts.budget)
		}
	}
}
