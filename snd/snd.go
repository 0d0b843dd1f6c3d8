// SPDX-License-Identifier: GPL-2.0-or-later

// Package snd is a small positional sound system. Mixing and resampling are
// done by beep, snd only places voices relative to a listener.
package snd

import (
	"log"
	stdmath "math"

	"soundstage/filesystem"
	"soundstage/math/vec"

	"github.com/gopxl/beep/v2"
	"github.com/pkg/errors"
)

const (
	DefaultQuality = 4
)

type Listener struct {
	Origin  vec.Vec3
	Forward vec.Vec3
	Up      vec.Vec3
	right   vec.Vec3
}

var DefaultListener = Listener{
	Forward: vec.Forward,
	Up:      vec.Up,
}

// normalize returns the listener with unit forward and up vectors. A missing
// forward becomes the default one, an up parallel to forward is replaced.
func (l Listener) normalize() Listener {
	l.Forward = l.Forward.NormalizeOr(vec.Forward)
	l.Up = l.Up.NormalizeOr(vec.Up)
	if vec.Parallel(l.Forward, l.Up) {
		log.Printf("listener forward %v and up %v are parallel", l.Forward, l.Up)
		l.Up = vec.Up
		if vec.Parallel(l.Forward, l.Up) {
			l.Up = vec.Vec3{Z: 1}
		}
	}
	l.right = vec.Cross(l.Forward, l.Up).NormalizeOr(vec.Vec3{X: 1})
	return l
}

// Right returns the unit vector pointing to the listeners right ear.
func (l Listener) Right() vec.Vec3 {
	return l.normalize().right
}

type SndSys struct {
	out      Output
	quality  int
	cache    cache
	active   *aSounds
	listener Listener
}

// Init creates the sound system on top of an output. quality is the beep
// resampling quality, values outside [1,64] use DefaultQuality.
func Init(out Output, quality int) (*SndSys, error) {
	if out == nil {
		return nil, errors.Wrap(ErrEngineInit, "no output")
	}
	if out.SampleRate() <= 0 {
		return nil, errors.Wrapf(ErrEngineInit, "invalid output sample rate %d", out.SampleRate())
	}
	if quality < 1 || quality > 64 {
		quality = DefaultQuality
	}
	return &SndSys{
		out:      out,
		quality:  quality,
		active:   newASounds(),
		listener: DefaultListener.normalize(),
	}, nil
}

func (s *SndSys) loadSample(name string) (*Sample, error) {
	if i, ok := s.cache.Has(name); ok {
		return s.cache.Get(i), nil
	}
	f, err := filesystem.Open(name)
	if err != nil {
		return nil, &loadError{name, err}
	}
	defer f.Close()
	smp, err := decode(name, f)
	if err != nil {
		return nil, &loadError{name, err}
	}
	log.Printf("loaded %s: %d frames at %d Hz (%v)", name, smp.Len(), smp.rate, smp.Duration())
	s.cache.Add(smp)
	return smp, nil
}

func (s *SndSys) play(smp *Sample, positional bool, origin vec.Vec3, volume float32) Handle {
	ratio := float64(smp.rate) / float64(s.out.SampleRate())
	pcm := &pcmStream{frames: smp.frames}
	ps := &playingSound{
		handle:     newHandle(),
		sample:     smp,
		pcm:        pcm,
		resampler:  beep.ResampleRatio(s.quality, ratio, pcm),
		baseRatio:  ratio,
		speed:      1,
		positional: positional,
		origin:     origin,
		volume:     float64(volume),
	}
	s.out.Lock()
	ps.spatialize(s.listener)
	s.active.add(ps)
	s.out.Unlock()

	s.out.Play(ps)
	return ps.handle
}

// with runs f with the voice for h while the output is locked. f is not
// called if h does not refer to a playing voice.
func (s *SndSys) with(h Handle, f func(p *playingSound)) {
	s.out.Lock()
	defer s.out.Unlock()
	if p := s.active.get(h); p != nil {
		f(p)
	}
}

func (s *SndSys) setSpeed(h Handle, speed float32) {
	v := float64(speed)
	if v <= 0 || stdmath.IsNaN(v) || stdmath.IsInf(v, 0) {
		log.Printf("ignoring playback speed %v for %v", speed, h)
		return
	}
	s.with(h, func(p *playingSound) {
		p.setSpeed(v)
	})
}

func (s *SndSys) setListener(l Listener) {
	s.out.Lock()
	defer s.out.Unlock()
	s.listener = l.normalize()
	s.active.update(s.listener)
}

func (s *SndSys) setAttenuation(smp *Sample, a Attenuation) error {
	if err := a.Validate(); err != nil {
		return errors.Wrapf(err, "attenuation for %s", smp.name)
	}
	s.out.Lock()
	defer s.out.Unlock()
	smp.attenuation = a
	s.active.updateSample(smp, s.listener)
	return nil
}

func (s *SndSys) stopAll() {
	s.out.Lock()
	s.active.stopAll()
	s.out.Unlock()
	s.out.Clear()
}

func (s *SndSys) shutdown() error {
	s.stopAll()
	s.cache.Clear()
	if err := s.out.Close(); err != nil {
		return errors.Wrap(err, "failed to close sound output")
	}
	return nil
}

// The API. All methods are safe to call on a nil *SndSys, which is a sound
// system without any output.

// LoadSample decodes a sound file found through the filesystem search path.
// Loading the same name twice returns the cached sample.
func (s *SndSys) LoadSample(name string) (*Sample, error) {
	if s == nil {
		return nil, &loadError{name, errors.New("no sound system")}
	}
	return s.loadSample(name)
}

// Play starts smp at the listener, without any positional effect.
func (s *SndSys) Play(smp *Sample, volume float32) Handle {
	if s == nil || smp == nil {
		return Handle{}
	}
	return s.play(smp, false, vec.Vec3{}, volume)
}

// PlayPositional starts smp as a source at pos.
func (s *SndSys) PlayPositional(smp *Sample, pos vec.Vec3, volume float32) Handle {
	if s == nil || smp == nil {
		return Handle{}
	}
	return s.play(smp, true, pos, volume)
}

func (s *SndSys) Stop(h Handle) {
	if s == nil {
		return
	}
	s.out.Lock()
	s.active.stop(h)
	s.out.Unlock()
}

func (s *SndSys) StopAll() {
	if s == nil {
		return
	}
	s.stopAll()
}

// Valid reports whether h still refers to a playing voice. It turns false
// after Stop and once a non looping voice has played all its frames.
func (s *SndSys) Valid(h Handle) bool {
	if s == nil {
		return false
	}
	s.out.Lock()
	defer s.out.Unlock()
	return s.active.get(h) != nil
}

// Playing returns the number of voices still playing.
func (s *SndSys) Playing() int {
	if s == nil {
		return 0
	}
	s.out.Lock()
	defer s.out.Unlock()
	s.active.update(s.listener)
	return s.active.len()
}

func (s *SndSys) SetListener(l Listener) {
	if s == nil {
		return
	}
	s.setListener(l)
}

func (s *SndSys) Listener() Listener {
	if s == nil {
		return DefaultListener
	}
	s.out.Lock()
	defer s.out.Unlock()
	return s.listener
}

func (s *SndSys) SetSourcePosition(h Handle, pos vec.Vec3) {
	if s == nil {
		return
	}
	s.with(h, func(p *playingSound) {
		p.positional = true
		p.origin = pos
		p.spatialize(s.listener)
	})
}

// SetSpeed changes the relative playback speed of a voice, 1 is normal.
// Speeds which are not positive are ignored.
func (s *SndSys) SetSpeed(h Handle, speed float32) {
	if s == nil {
		return
	}
	s.setSpeed(h, speed)
}

func (s *SndSys) SetLooping(h Handle, loop bool) {
	if s == nil {
		return
	}
	s.with(h, func(p *playingSound) {
		p.pcm.loop = loop
	})
}

func (s *SndSys) SetVoiceVolume(h Handle, volume float32) {
	if s == nil {
		return
	}
	s.with(h, func(p *playingSound) {
		p.volume = float64(volume)
	})
}

// SetAttenuation changes the distance configuration of a sample. Voices
// already playing the sample pick it up at once.
func (s *SndSys) SetAttenuation(smp *Sample, a Attenuation) error {
	if s == nil || smp == nil {
		return nil
	}
	return s.setAttenuation(smp, a)
}

// SetVolume sets the master volume.
func (s *SndSys) SetVolume(v float32) {
	if s == nil {
		return
	}
	s.out.SetVolume(float64(v))
}

// gets called when window looses focus
func (s *SndSys) Block() {
	if s == nil {
		return
	}
	if err := s.out.Suspend(); err != nil {
		log.Printf("failed to suspend sound: %v", err)
	}
}

// gets called when window gains focus
func (s *SndSys) Unblock() {
	if s == nil {
		return
	}
	if err := s.out.Resume(); err != nil {
		log.Printf("failed to resume sound: %v", err)
	}
}

// Shutdown stops all voices and closes the output.
func (s *SndSys) Shutdown() error {
	if s == nil {
		return nil
	}
	return s.shutdown()
}
