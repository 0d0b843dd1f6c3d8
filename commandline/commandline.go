// SPDX-License-Identifier: GPL-2.0-or-later

package commandline

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

// DefaultConfig is executed at startup if it exists.
const DefaultConfig = "soundstage.cfg"

var (
	interactive bool
	list        bool
	noSound     bool

	// -gui alone updates the source every frame, -gui=30 at 30Hz
	gui = boolInt{false, 0}

	basedir   string
	cfg       string
	makeTone  string
	sample    string
	scenarios string
)

type boolInt struct {
	set bool
	num int
}

func (b *boolInt) IsBoolFlag() bool {
	// We can not support both "-flag" and "-flag 10"
	// This allows "-flag", and "-flag=10"
	// and also "-flag=true" and "-flag=false"
	// but not "-flag 10"
	return true
}

func (b *boolInt) Set(s string) error {
	v, err := strconv.ParseInt(s, 0, strconv.IntSize)
	if err != nil {
		v, err := strconv.ParseBool(s)
		b.set = v
		return err
	}
	b.set = true
	b.num = int(v)
	return nil
}

func (b *boolInt) String() string {
	return fmt.Sprintf("Set: %v, Num: %v", b.set, b.num)
}

func init() {
	flag.BoolVar(&interactive, "interactive", false, "wait for Enter between scenarios")
	flag.BoolVar(&list, "list", false, "list the scenarios and exit")
	flag.BoolVar(&noSound, "nosound", false, "Disable sound output")

	flag.Var(&gui, "gui", "open the control panel, optional source update rate in Hz")

	flag.StringVar(&basedir, "basedir", "", "additional directory searched for samples and configs")
	flag.StringVar(&cfg, "cfg", DefaultConfig, "config file executed at startup")
	flag.StringVar(&makeTone, "maketone", "", "write a test tone wave file and exit")
	flag.StringVar(&sample, "sample", "", "sound file to play, overrides the sample cvar")
	flag.StringVar(&scenarios, "scenarios", "", "comma separated scenarios to run, default all")
}

func BaseDirectory() string {
	return basedir
}

func Config() string {
	return cfg
}

func MakeTone() string {
	return makeTone
}

func Sample() string {
	return sample
}

// Scenarios returns the requested scenario names, nil means all.
func Scenarios() []string {
	if scenarios == "" {
		return nil
	}
	var r []string
	for _, s := range strings.Split(scenarios, ",") {
		if s = strings.TrimSpace(s); s != "" {
			r = append(r, s)
		}
	}
	return r
}

func GUI() bool {
	return gui.set
}

// GUIRate is the source update rate of the control panel, 0 if unset.
func GUIRate() int {
	return gui.num
}

func Interactive() bool {
	return interactive
}

func List() bool {
	return list
}

func Sound() bool {
	return !noSound
}
