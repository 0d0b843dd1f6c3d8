// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
)

// Tone builds a pulsing sine sample. The pulse makes a moving source easier
// to follow by ear than a steady tone.
func Tone(name string, rate beep.SampleRate, freq float64, d time.Duration) *Sample {
	n := rate.N(d)
	frames := make([][2]float64, n)
	const (
		pulse  = 4.0 // Hz
		volume = 0.5
	)
	for i := range frames {
		t := float64(i) / float64(rate)
		env := 0.5 + 0.5*math.Cos(2*math.Pi*pulse*t)
		v := volume * env * math.Sin(2*math.Pi*freq*t)
		frames[i] = [2]float64{v, v}
	}
	return NewSample(name, rate, frames)
}
