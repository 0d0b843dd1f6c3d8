// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"sync"

	"github.com/gopxl/beep/v2"
)

// Output is the device end of the sound system. It owns the mixer and
// streams it from its own goroutine while holding its lock.
type Output interface {
	SampleRate() beep.SampleRate
	// Play adds streamers to the mixer.
	Play(s ...beep.Streamer)
	// Clear removes all streamers from the mixer.
	Clear()
	// Lock stops the output from streaming until Unlock.
	Lock()
	Unlock()
	SetVolume(v float64)
	Suspend() error
	Resume() error
	Close() error
}

// NullOutput never reaches a device. Samples only advance when Pull is
// called, which makes it usable for -nosound and for tests.
type NullOutput struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	mixer  beep.Mixer
	volume float64
	closed bool
}

func NewNullOutput(rate beep.SampleRate) *NullOutput {
	return &NullOutput{
		rate:   rate,
		volume: 1,
	}
}

func (o *NullOutput) SampleRate() beep.SampleRate {
	return o.rate
}

func (o *NullOutput) Play(s ...beep.Streamer) {
	o.mu.Lock()
	o.mixer.Add(s...)
	o.mu.Unlock()
}

func (o *NullOutput) Clear() {
	o.mu.Lock()
	o.mixer.Clear()
	o.mu.Unlock()
}

func (o *NullOutput) Lock() {
	o.mu.Lock()
}

func (o *NullOutput) Unlock() {
	o.mu.Unlock()
}

func (o *NullOutput) SetVolume(v float64) {
	o.mu.Lock()
	o.volume = v
	o.mu.Unlock()
}

func (o *NullOutput) Suspend() error {
	return nil
}

func (o *NullOutput) Resume() error {
	return nil
}

func (o *NullOutput) Close() error {
	o.mu.Lock()
	o.closed = true
	o.mixer.Clear()
	o.mu.Unlock()
	return nil
}

func (o *NullOutput) Volume() float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.volume
}

// Closed reports whether Close was called.
func (o *NullOutput) Closed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.closed
}

// Streaming returns the number of streamers in the mixer.
func (o *NullOutput) Streaming() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.mixer.Len()
}

// Pull mixes n frames the way a device callback would.
func (o *NullOutput) Pull(n int) [][2]float64 {
	buf := make([][2]float64, n)
	o.mu.Lock()
	defer o.mu.Unlock()
	m, _ := o.mixer.Stream(buf)
	clear(buf[m:])
	for i := range buf {
		buf[i][0] *= o.volume
		buf[i][1] *= o.volume
	}
	return buf
}
