// SPDX-License-Identifier: GPL-2.0-or-later

// Package speaker plays a beep mixer on the default audio device.
package speaker

import (
	"encoding/binary"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/gopxl/beep/v2"
	"github.com/pkg/errors"
)

const (
	channelCount   = 2
	bytesPerSample = 4 // float32
	bytesPerFrame  = channelCount * bytesPerSample
)

// Speaker owns the oto context. Only one may exist per process.
type Speaker struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	mixer  beep.Mixer
	volume float64
	buf    [][2]float64

	ctx    *oto.Context
	player *oto.Player
}

// New opens the audio device. bufferSize is the amount of audio queued
// in the device, it trades latency against the risk of underruns.
func New(rate beep.SampleRate, bufferSize time.Duration) (*Speaker, error) {
	if rate <= 0 {
		return nil, errors.Errorf("invalid sample rate %d", rate)
	}
	s := &Speaker{
		rate:   rate,
		volume: 1,
	}
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   int(rate),
		ChannelCount: channelCount,
		Format:       oto.FormatFloat32LE,
		BufferSize:   bufferSize,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize audio device")
	}
	<-ready
	s.ctx = ctx
	s.player = ctx.NewPlayer(s)
	s.player.Play()
	return s, nil
}

// Read fills p with the mixed audio, it is called by oto from its own
// goroutine.
func (s *Speaker) Read(p []byte) (int, error) {
	n := len(p) / bytesPerFrame
	if n == 0 {
		return 0, nil
	}
	if cap(s.buf) < n {
		s.buf = make([][2]float64, n)
	}
	buf := s.buf[:n]

	s.mu.Lock()
	m, _ := s.mixer.Stream(buf)
	vol := s.volume
	s.mu.Unlock()
	clear(buf[m:])

	for i, f := range buf {
		o := i * bytesPerFrame
		binary.LittleEndian.PutUint32(p[o:], math.Float32bits(float32(f[0]*vol)))
		binary.LittleEndian.PutUint32(p[o+bytesPerSample:], math.Float32bits(float32(f[1]*vol)))
	}
	return n * bytesPerFrame, nil
}

func (s *Speaker) SampleRate() beep.SampleRate {
	return s.rate
}

func (s *Speaker) Play(st ...beep.Streamer) {
	s.mu.Lock()
	s.mixer.Add(st...)
	s.mu.Unlock()
}

func (s *Speaker) Clear() {
	s.mu.Lock()
	s.mixer.Clear()
	s.mu.Unlock()
}

func (s *Speaker) Lock() {
	s.mu.Lock()
}

func (s *Speaker) Unlock() {
	s.mu.Unlock()
}

func (s *Speaker) SetVolume(v float64) {
	s.mu.Lock()
	s.volume = v
	s.mu.Unlock()
}

func (s *Speaker) Suspend() error {
	return errors.Wrap(s.ctx.Suspend(), "failed to suspend audio device")
}

func (s *Speaker) Resume() error {
	return errors.Wrap(s.ctx.Resume(), "failed to resume audio device")
}

// Close stops playback. The oto context stays alive until the process
// exits, oto cannot create a second one.
func (s *Speaker) Close() error {
	s.Clear()
	if s.player == nil {
		return nil
	}
	err := s.player.Close()
	s.player = nil
	return errors.Wrap(err, "failed to close audio player")
}
