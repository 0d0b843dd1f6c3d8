// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soundstage/math/vec"
)

const testRate = beep.SampleRate(22050)

func newTestSys(t *testing.T) (*SndSys, *NullOutput) {
	t.Helper()
	out := NewNullOutput(testRate)
	s, err := Init(out, DefaultQuality)
	require.NoError(t, err)
	t.Cleanup(func() { s.Shutdown() })
	return s, out
}

func constSample(frames int) *Sample {
	f := make([][2]float64, frames)
	for i := range f {
		f[i] = [2]float64{0.5, 0.5}
	}
	return NewSample("const", testRate, f)
}

func voice(t *testing.T, s *SndSys, h Handle) *playingSound {
	t.Helper()
	s.out.Lock()
	defer s.out.Unlock()
	p := s.active.get(h)
	require.NotNil(t, p, "voice %v is not playing", h)
	return p
}

func TestInitWithoutOutput(t *testing.T) {
	_, err := Init(nil, DefaultQuality)
	assert.True(t, errors.Is(err, ErrEngineInit))
}

func TestNilSystem(t *testing.T) {
	var s *SndSys
	h := s.Play(constSample(10), 1)
	assert.True(t, h.IsZero())
	assert.False(t, s.Valid(h))
	s.Stop(h)
	s.StopAll()
	s.SetSpeed(h, 2)
	s.SetLooping(h, true)
	s.SetListener(DefaultListener)
	s.SetSourcePosition(h, vec.Vec3{X: 1})
	s.SetVolume(0.5)
	s.Block()
	s.Unblock()
	assert.NoError(t, s.Shutdown())
	_, err := s.LoadSample("x.wav")
	assert.True(t, errors.Is(err, ErrSampleLoad))
}

func TestListenerRight(t *testing.T) {
	r := DefaultListener.Right()
	assert.True(t, vec.Equal(r, vec.Vec3{X: 1}), "right = %v", r)

	// forward along +Y with the default up
	l := Listener{Forward: vec.Vec3{Y: 1}, Up: vec.Vec3{Y: 1}}
	r = l.Right()
	assert.InDelta(t, 1, r.Length(), 1e-5)
	assert.InDelta(t, 0, vec.Dot(r, vec.Vec3{Y: 1}), 1e-5)

	// zero vectors fall back to the defaults
	r = Listener{}.Right()
	assert.True(t, vec.Equal(r, vec.Vec3{X: 1}), "right = %v", r)
}

func TestListenerPose(t *testing.T) {
	s, _ := newTestSys(t)
	assert.Equal(t, vec.Forward, s.Listener().Forward)

	s.SetListener(Listener{
		Origin:  vec.Vec3{X: 2, Y: 1},
		Forward: vec.Vec3{Z: -4},
		Up:      vec.Vec3{Y: 2},
	})
	l := s.Listener()
	assert.Equal(t, vec.Vec3{X: 2, Y: 1}, l.Origin)
	assert.Equal(t, vec.Vec3{Z: -1}, l.Forward)
	assert.Equal(t, vec.Vec3{Y: 1}, l.Up)

	var none *SndSys
	assert.Equal(t, DefaultListener, none.Listener())
}

func TestPanning(t *testing.T) {
	s, _ := newTestSys(t)
	smp := constSample(1000)

	tests := []struct {
		name        string
		pos         vec.Vec3
		left, right float64
	}{
		{"right", vec.Vec3{X: 5}, 0, 1},
		{"left", vec.Vec3{X: -5}, 1, 0},
		{"front", vec.Vec3{Z: -5}, 1, 1},
		{"behind", vec.Vec3{Z: 5}, 1, 1},
	}
	for _, tc := range tests {
		h := s.PlayPositional(smp, tc.pos, 1)
		p := voice(t, s, h)
		assert.InDelta(t, tc.left, p.left, 1e-6, tc.name)
		assert.InDelta(t, tc.right, p.right, 1e-6, tc.name)
		s.Stop(h)
	}
}

func TestPanningFollowsListener(t *testing.T) {
	s, _ := newTestSys(t)
	h := s.PlayPositional(constSample(1000), vec.Vec3{X: 5}, 1)
	require.InDelta(t, 0, voice(t, s, h).left, 1e-6)

	// turning around swaps the ears
	s.SetListener(Listener{Forward: vec.Vec3{Z: 1}, Up: vec.Up})
	p := voice(t, s, h)
	assert.InDelta(t, 1, p.left, 1e-6)
	assert.InDelta(t, 0, p.right, 1e-6)

	s.SetSourcePosition(h, vec.Vec3{X: -5})
	p = voice(t, s, h)
	assert.InDelta(t, 0, p.left, 1e-6)
	assert.InDelta(t, 1, p.right, 1e-6)
}

func TestAttenuationAppliesToPlaying(t *testing.T) {
	s, _ := newTestSys(t)
	smp := constSample(1000)
	h := s.PlayPositional(smp, vec.Vec3{Z: -2}, 1)
	require.InDelta(t, 1, voice(t, s, h).left, 1e-6)

	require.NoError(t, s.SetAttenuation(smp, Attenuation{Inverse, 1, 10, 1}))
	p := voice(t, s, h)
	assert.InDelta(t, 0.5, p.left, 1e-6)
	assert.InDelta(t, 0.5, p.right, 1e-6)

	assert.Error(t, s.SetAttenuation(smp, Attenuation{Inverse, 0, 10, 1}))
	assert.InDelta(t, 0.5, voice(t, s, h).left, 1e-6)
}

func TestNonPositional(t *testing.T) {
	s, _ := newTestSys(t)
	h := s.Play(constSample(1000), 1)
	s.SetListener(Listener{Origin: vec.Vec3{X: 100}, Forward: vec.Forward, Up: vec.Up})
	p := voice(t, s, h)
	assert.Equal(t, 1.0, p.left)
	assert.Equal(t, 1.0, p.right)
}

func TestStop(t *testing.T) {
	s, out := newTestSys(t)
	h1 := s.Play(constSample(1000), 1)
	h2 := s.Play(constSample(1000), 1)
	assert.NotEqual(t, h1, h2)
	assert.True(t, s.Valid(h1))
	assert.Equal(t, 2, out.Streaming())

	s.Stop(h1)
	assert.False(t, s.Valid(h1))
	assert.True(t, s.Valid(h2))
	// stopping twice is harmless
	s.Stop(h1)
	s.Stop(Handle{})

	out.Pull(100)
	assert.Equal(t, 1, out.Streaming())

	s.StopAll()
	assert.False(t, s.Valid(h2))
	assert.Equal(t, 0, out.Streaming())
}

func TestDrained(t *testing.T) {
	s, out := newTestSys(t)
	h := s.Play(constSample(500), 1)
	require.True(t, s.Valid(h))
	for range 4 {
		out.Pull(int(testRate))
	}
	assert.False(t, s.Valid(h))
	assert.Equal(t, 0, s.Playing())
	// calls on a finished voice are ignored
	s.SetSpeed(h, 2)
	s.SetSourcePosition(h, vec.Vec3{X: 1})
}

func TestLooping(t *testing.T) {
	s, out := newTestSys(t)
	h := s.Play(constSample(500), 1)
	s.SetLooping(h, true)
	for range 4 {
		buf := out.Pull(int(testRate))
		assert.InDelta(t, 0.5, buf[len(buf)-1][0], 1e-3)
	}
	assert.True(t, s.Valid(h))

	s.SetLooping(h, false)
	for range 4 {
		out.Pull(int(testRate))
	}
	assert.False(t, s.Valid(h))
}

func TestSpeed(t *testing.T) {
	s, _ := newTestSys(t)
	smp := NewSample("half", testRate/2, make([][2]float64, 1000))
	h := s.Play(smp, 1)
	p := voice(t, s, h)
	assert.InDelta(t, 0.5, p.resampler.Ratio(), 1e-9)

	s.SetSpeed(h, 2)
	assert.InDelta(t, 1.0, p.resampler.Ratio(), 1e-9)

	s.SetSpeed(h, 0)
	s.SetSpeed(h, -1)
	assert.InDelta(t, 2.0, p.speed, 1e-9)
}

func TestVolume(t *testing.T) {
	s, out := newTestSys(t)
	h := s.Play(constSample(int(testRate)), 1)
	s.SetLooping(h, true)
	out.Pull(1000)

	s.SetVolume(0.5)
	buf := out.Pull(1000)
	assert.InDelta(t, 0.25, buf[999][0], 1e-3)

	s.SetVoiceVolume(h, 0)
	buf = out.Pull(1000)
	assert.InDelta(t, 0, buf[999][1], 1e-9)
}

func TestShutdown(t *testing.T) {
	out := NewNullOutput(testRate)
	s, err := Init(out, DefaultQuality)
	require.NoError(t, err)
	h := s.Play(constSample(100), 1)
	require.NoError(t, s.Shutdown())
	assert.True(t, out.Closed())
	assert.False(t, s.Valid(h))
}

func TestToneDuration(t *testing.T) {
	smp := Tone("tone", testRate, 440, 2*time.Second)
	assert.Equal(t, int(testRate)*2, smp.Len())
	assert.Equal(t, 2*time.Second, smp.Duration())
}
