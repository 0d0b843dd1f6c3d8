// SPDX-License-Identifier: GPL-2.0-or-later

// Package panel is the control panel which places the source with three
// sliders. It only talks to an abstract widget set, see imui for the
// real one.
package panel

import (
	"context"
	"sync"
	"time"

	"soundstage/clock"
	"soundstage/math/vec"
)

type Widgets interface {
	// Begin starts a window. Widgets must only be added if it returns true,
	// End has to be called in any case.
	Begin(title string) bool
	SliderFloat(label string, v *float32, min, max float32) bool
	Text(format string, args ...any)
	Button(label string) bool
	End()
}

type Panel struct {
	mu    sync.Mutex
	pos   vec.Vec3
	dirty bool

	rng    float32
	rate   float64
	push   func(vec.Vec3)
	status func() string
}

// New creates a panel whose sliders span [-rng,rng]. rate is the number of
// source updates per second, with 0 the source is updated on every frame.
func New(push func(vec.Vec3), rng float32, rate float64) *Panel {
	if rng <= 0 {
		rng = 10
	}
	return &Panel{
		rng:   rng,
		rate:  max(rate, 0),
		push:  push,
		dirty: true,
	}
}

// SetStatus sets a function providing one line of status text.
func (p *Panel) SetStatus(f func() string) {
	p.status = f
}

func (p *Panel) Position() vec.Vec3 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pos
}

func (p *Panel) SetPosition(v vec.Vec3) {
	p.mu.Lock()
	p.pos = v
	p.dirty = true
	p.mu.Unlock()
}

// FrameCoupled reports whether the source follows the frame rate.
func (p *Panel) FrameCoupled() bool {
	return p.rate == 0
}

// Frame adds the panel widgets for one frame.
func (p *Panel) Frame(w Widgets) {
	p.mu.Lock()
	pos := p.pos
	p.mu.Unlock()

	if w.Begin("Source position") {
		w.SliderFloat("X", &pos.X, -p.rng, p.rng)
		w.SliderFloat("Y", &pos.Y, -p.rng, p.rng)
		w.SliderFloat("Z", &pos.Z, -p.rng, p.rng)
		if w.Button("Center") {
			pos = vec.Vec3{}
		}
		w.Text("distance %.2f", pos.Length())
		if p.status != nil {
			w.Text("%s", p.status())
		}
	}
	w.End()

	p.mu.Lock()
	if pos != p.pos {
		p.pos = pos
		p.dirty = true
	}
	p.mu.Unlock()

	if p.FrameCoupled() {
		// the last slider value read this frame, no smoothing
		p.push(pos)
	}
}

// Run pushes the position at the fixed rate until ctx is done. It returns
// at once for a frame coupled panel.
func (p *Panel) Run(ctx context.Context, c clock.Clock) error {
	if p.FrameCoupled() {
		return nil
	}
	interval := time.Duration(float64(time.Second) / p.rate)
	pacer := clock.NewPacer(c)
	for i := 0; ; i++ {
		// absolute offsets, a late tick does not move the following ones
		if err := pacer.WaitUntil(ctx, time.Duration(i)*interval); err != nil {
			return err
		}
		p.mu.Lock()
		pos, dirty := p.pos, p.dirty
		p.dirty = false
		p.mu.Unlock()
		if dirty {
			p.push(pos)
		}
	}
}
