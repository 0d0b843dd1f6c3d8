// SPDX-License-Identifier: GPL-2.0-or-later

package demo

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"soundstage/math/vec"
	"soundstage/snd"
	"soundstage/trajectory"
)

var ErrUnknownScenario = errors.New("unknown scenario")

// Scenario is one scripted movement of the source or the listener.
type Scenario struct {
	Name        string
	Description string
	Path        trajectory.Path
	Steps       int
	Duration    time.Duration
	Volume      float32
	Looping     bool
	Attenuation snd.Attenuation
	// Source is the fixed source position for paths which move the listener.
	Source vec.Vec3
}

var scenarios = []Scenario{
	{
		Name:        "circle",
		Description: "source circles the listener at a fixed distance",
		Path:        trajectory.Circle{Radius: 5},
		Steps:       72,
		Duration:    8 * time.Second,
		Volume:      1,
		Attenuation: snd.DefaultAttenuation,
	},
	{
		Name:        "spiral",
		Description: "source spirals outwards and upwards with a speed wobble",
		Path: trajectory.Spiral{
			MaxRadius: 20,
			MinHeight: -5,
			MaxHeight: 5,
			Turns:     3,
			Doppler:   true,
		},
		Steps:       180,
		Duration:    12 * time.Second,
		Volume:      1,
		Attenuation: snd.Attenuation{Model: snd.Inverse, Min: 1, Max: 50, Rolloff: 1},
	},
	{
		Name:        "orbit",
		Description: "listener orbits the source, always facing it",
		Path:        trajectory.Orbit{Radius: 6, Height: 2},
		Steps:       72,
		Duration:    8 * time.Second,
		Volume:      1,
		Attenuation: snd.Attenuation{Model: snd.Inverse, Min: 1, Max: 50, Rolloff: 1},
	},
	{
		Name:        "linear",
		Description: "source moves away with linear attenuation",
		Path:        trajectory.Line{From: vec.Vec3{X: 1, Z: -1}, To: vec.Vec3{X: 1, Z: -40}},
		Steps:       80,
		Duration:    8 * time.Second,
		Volume:      1,
		Attenuation: snd.Attenuation{Model: snd.Linear, Min: 1, Max: 30, Rolloff: 1},
	},
	{
		Name:        "exponential",
		Description: "source moves away with exponential attenuation",
		Path:        trajectory.Line{From: vec.Vec3{X: 1, Z: -1}, To: vec.Vec3{X: 1, Z: -40}},
		Steps:       80,
		Duration:    8 * time.Second,
		Volume:      1,
		Attenuation: snd.Attenuation{Model: snd.Exponential, Min: 1, Max: 30, Rolloff: 1},
	},
	{
		Name:        "inverse",
		Description: "source moves away with inverse distance attenuation",
		Path:        trajectory.Line{From: vec.Vec3{X: 1, Z: -1}, To: vec.Vec3{X: 1, Z: -40}},
		Steps:       80,
		Duration:    8 * time.Second,
		Volume:      1,
		Attenuation: snd.Attenuation{Model: snd.Inverse, Min: 1, Max: 30, Rolloff: 1},
	},
	{
		Name:        "looping",
		Description: "looping source circles close to the listener",
		Path:        trajectory.Circle{Radius: 3},
		Steps:       36,
		Duration:    8 * time.Second,
		Volume:      0.8,
		Looping:     true,
		Attenuation: snd.DefaultAttenuation,
	},
}

// All returns every scenario in playing order.
func All() []Scenario {
	return append([]Scenario(nil), scenarios...)
}

func Names() []string {
	n := make([]string, 0, len(scenarios))
	for _, s := range scenarios {
		n = append(n, s.Name)
	}
	return n
}

// Lookup returns the named scenarios in the given order. No names
// selects all of them.
func Lookup(names ...string) ([]Scenario, error) {
	if len(names) == 0 {
		return All(), nil
	}
	r := make([]Scenario, 0, len(names))
	for _, n := range names {
		s, ok := find(n)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownScenario, "%q, known are %s", n, strings.Join(Names(), ", "))
		}
		r = append(r, s)
	}
	return r, nil
}

func find(name string) (Scenario, bool) {
	for _, s := range scenarios {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Scenario{}, false
}
