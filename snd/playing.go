// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"soundstage/math"
	"soundstage/math/vec"

	"github.com/gopxl/beep/v2"
)

type playingSound struct {
	handle     Handle
	sample     *Sample
	pcm        *pcmStream
	resampler  *beep.Resampler
	baseRatio  float64 // sample rate / output rate
	speed      float64
	positional bool // false: played at the listener
	origin     vec.Vec3
	volume     float64
	right      float64
	left       float64
	stopped    bool
	done       bool // drained, it must no longer be updated
}

func (s *playingSound) spatialize(l Listener) {
	if !s.positional {
		s.right = 1
		s.left = 1
		return
	}
	v := vec.Sub(s.origin, l.Origin)
	gain := s.sample.attenuation.Gain(v.Length())
	v = v.Normalize()
	dot := vec.Dot(l.right, v)
	lscale := (1.0 - dot) * gain
	rscale := (1.0 + dot) * gain
	s.left = math.Clamp(0, float64(lscale), 1)
	s.right = math.Clamp(0, float64(rscale), 1)
}

func (s *playingSound) setSpeed(speed float64) {
	s.speed = speed
	s.resampler.SetRatio(s.baseRatio * speed)
}

func (s *playingSound) Stream(samples [][2]float64) (int, bool) {
	if s.stopped || s.done {
		return 0, false
	}
	n, ok := s.resampler.Stream(samples)
	for i := range samples[:n] {
		samples[i][0] *= s.left * s.volume
		samples[i][1] *= s.right * s.volume
	}
	if !ok || n < len(samples) {
		s.done = true
	}
	return n, ok
}

func (s *playingSound) Err() error {
	return s.resampler.Err()
}
