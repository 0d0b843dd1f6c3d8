// SPDX-License-Identifier: GPL-2.0-or-later

// Package app puts the sound system, the scenarios and the optional
// control panel together.
package app

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/pkg/errors"

	"soundstage/cbuf"
	"soundstage/clock"
	"soundstage/cmd"
	cmdl "soundstage/commandline"
	"soundstage/conlog"
	"soundstage/cvar"
	"soundstage/cvars"
	"soundstage/demo"
	"soundstage/filesystem"
	"soundstage/history"
	"soundstage/snd"
	"soundstage/snd/speaker"
)

const (
	historyFilename = "soundstage.history"
	toneFrequency   = 440
	toneDuration    = 2 * time.Second
)

type options struct {
	basedir   string
	config    string
	sample    string
	makeTone  string
	scenarios []string

	list        bool
	sound       bool
	interactive bool
	gui         bool
	guiRate     int

	clock clock.Clock
	stdin io.Reader
}

func flagOptions() options {
	return options{
		basedir:     cmdl.BaseDirectory(),
		config:      cmdl.Config(),
		sample:      cmdl.Sample(),
		makeTone:    cmdl.MakeTone(),
		scenarios:   cmdl.Scenarios(),
		list:        cmdl.List(),
		sound:       cmdl.Sound(),
		interactive: cmdl.Interactive(),
		gui:         cmdl.GUI(),
		guiRate:     cmdl.GUIRate(),
		clock:       clock.Real{},
		stdin:       os.Stdin,
	}
}

// Run executes the program as described by the command line flags and
// returns the process exit code. The flags need to be parsed.
func Run(ctx context.Context) int {
	return run(ctx, flagOptions())
}

func newCommandBuffer() *cbuf.CommandBuffer {
	cb := &cbuf.CommandBuffer{}
	cb.SetCommandExecutors([]cbuf.Efunc{
		cmd.Execute,
		cvar.Execute,
	})
	return cb
}

func run(ctx context.Context, o options) int {
	filesystem.UseDirs(o.basedir)
	cb := newCommandBuffer()
	if err := execConfig(cb, o.config); err != nil {
		log.Printf("Config error: %v", err)
		return 1
	}

	if o.list {
		for _, s := range demo.All() {
			conlog.Printf("%-12s %s\n", s.Name, s.Description)
		}
		return 0
	}
	if o.makeTone != "" {
		if err := writeTone(o.makeTone); err != nil {
			log.Printf("%v", err)
			return 1
		}
		return 0
	}

	scenarios, err := demo.Lookup(o.scenarios...)
	if err != nil {
		log.Printf("%v", err)
		return 1
	}

	out, err := openOutput(o.sound)
	if err != nil {
		log.Printf("Sound engine init failed: %v", err)
		return 1
	}
	s, err := snd.Init(out, int(cvars.SoundQuality.Value()))
	if err != nil {
		log.Printf("Sound engine init failed: %v", err)
		if cerr := out.Close(); cerr != nil {
			log.Printf("%v", cerr)
		}
		return 1
	}
	defer func() {
		if err := s.Shutdown(); err != nil {
			log.Printf("Sound shutdown: %v", err)
		}
	}()
	followVolume(s)
	defer followVolume(nil)

	name := o.sample
	if name == "" {
		name = cvars.Sample.String()
	}
	smp, err := s.LoadSample(name)
	if err != nil {
		log.Printf("Sample load failed: %v", err)
		return 1
	}

	if o.gui {
		err = runGUI(ctx, s, smp, o.guiRate)
	} else {
		err = runScenarios(ctx, o, cb, s, smp, scenarios)
	}
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		conlog.Printf("\ninterrupted\n")
		return 0
	default:
		log.Printf("%v", err)
		return 1
	}
}

var (
	volumeOnce sync.Once
	volumeMu   sync.Mutex
	volumeSys  *snd.SndSys
)

// followVolume makes s the sound system the volume cvar applies to. The
// cvar callback is registered only once, nil detaches it.
func followVolume(s *snd.SndSys) {
	volumeOnce.Do(func() {
		cvars.Volume.AddCallback(func(cv *cvar.Cvar) {
			volumeMu.Lock()
			defer volumeMu.Unlock()
			volumeSys.SetVolume(cv.Value())
		})
	})
	volumeMu.Lock()
	volumeSys = s
	volumeMu.Unlock()
	s.SetVolume(cvars.Volume.Value())
}

// execConfig runs the config file. The default config is optional, an
// explicitly requested one has to exist.
func execConfig(cb *cbuf.CommandBuffer, name string) error {
	if name == "" {
		return nil
	}
	if _, err := filesystem.Stat(name); err != nil {
		if name == cmdl.DefaultConfig {
			return nil
		}
		return errors.Wrapf(err, "could not find %s", name)
	}
	cb.AddText("exec " + name + "\n")
	return cb.ExecuteAll()
}

func openOutput(sound bool) (snd.Output, error) {
	rate := beep.SampleRate(int(cvars.SoundRate.Value()))
	if !sound {
		return snd.NewNullOutput(rate), nil
	}
	buf := time.Duration(cvars.SoundBufferMs.Value()) * time.Millisecond
	return speaker.New(rate, buf)
}

func writeTone(name string) error {
	rate := beep.SampleRate(int(cvars.SoundRate.Value()))
	t := snd.Tone(filepath.Base(name), rate, toneFrequency, toneDuration)
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "could not create tone file")
	}
	if err := snd.WriteWAV(f, t); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "could not write tone file")
	}
	conlog.Printf("wrote %s\n", name)
	return nil
}

func historyFile(basedir string) string {
	if basedir == "" {
		basedir = "."
	}
	return filepath.Join(basedir, historyFilename)
}

func runScenarios(ctx context.Context, o options, cb *cbuf.CommandBuffer, s *snd.SndSys, smp *snd.Sample, scenarios []demo.Scenario) error {
	r := &demo.Runner{
		Engine: s,
		Sample: smp,
		Clock:  o.clock,
	}
	readCvars := func() {
		r.Volume = cvars.DemoVolume.Value()
		r.DurationScale = float64(cvars.DemoDurationScale.Value())
	}
	readCvars()
	if !o.interactive {
		return r.Run(ctx, scenarios)
	}

	hist := &history.History{}
	hf := historyFile(o.basedir)
	if err := hist.Load(hf); err != nil {
		log.Printf("%v", err)
	}
	defer func() {
		if err := hist.Save(hf); err != nil {
			log.Printf("%v", err)
		}
	}()
	p := demo.NewLinePrompt(o.stdin, func(line string) {
		hist.Add(line)
		cb.AddText(line + "\n")
		if err := cb.ExecuteAll(); err != nil {
			conlog.Printf("%v\n", err)
		}
		readCvars()
	})
	r.Prompt = p.Prompt
	return r.Run(ctx, scenarios)
}
