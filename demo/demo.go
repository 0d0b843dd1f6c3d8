// SPDX-License-Identifier: GPL-2.0-or-later

// Package demo plays scenarios: it starts a voice, drives it along a
// trajectory in real time and stops it again.
package demo

import (
	"context"
	"log"
	"time"

	"github.com/pkg/errors"

	"soundstage/clock"
	"soundstage/conlog"
	"soundstage/math/vec"
	"soundstage/snd"
	"soundstage/trajectory"
)

// Engine is the part of the sound system a scenario drives.
// *snd.SndSys implements it.
type Engine interface {
	PlayPositional(smp *snd.Sample, pos vec.Vec3, volume float32) snd.Handle
	Stop(h snd.Handle)
	SetListener(l snd.Listener)
	SetSourcePosition(h snd.Handle, pos vec.Vec3)
	SetSpeed(h snd.Handle, speed float32)
	SetLooping(h snd.Handle, loop bool)
	SetAttenuation(smp *snd.Sample, a snd.Attenuation) error
	Valid(h snd.Handle) bool
}

// PromptFunc is called before each scenario but the first. Returning an
// error ends the run.
type PromptFunc func(ctx context.Context, next Scenario) error

type Runner struct {
	Engine Engine
	Sample *snd.Sample
	Clock  clock.Clock
	Prompt PromptFunc
	// Volume scales the volume of every scenario, 0 means 1.
	Volume float32
	// DurationScale stretches every scenario, 0 means 1.
	DurationScale float64
}

// Run plays the scenarios in order. It stops at the first error, a
// cancelled ctx returns ctx.Err().
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) error {
	for i, s := range scenarios {
		if i > 0 && r.Prompt != nil {
			if err := r.Prompt(ctx, s); err != nil {
				return err
			}
		}
		if err := r.RunScenario(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) clock() clock.Clock {
	if r.Clock == nil {
		return clock.Real{}
	}
	return r.Clock
}

func (r *Runner) duration(d time.Duration) time.Duration {
	if r.DurationScale <= 0 {
		return d
	}
	return time.Duration(float64(d) * r.DurationScale)
}

func (r *Runner) volume(v float32) float32 {
	if r.Volume <= 0 {
		return v
	}
	return v * r.Volume
}

func listener(p *trajectory.Pose) snd.Listener {
	return snd.Listener{
		Origin:  p.Origin,
		Forward: p.Forward,
		Up:      p.Up,
	}
}

// RunScenario plays a single scenario. The voice is stopped on every
// return path.
func (r *Runner) RunScenario(ctx context.Context, s Scenario) error {
	if r.Engine == nil || r.Sample == nil {
		return errors.New("demo: runner without engine or sample")
	}
	t, err := trajectory.New(s.Path, s.Steps, r.duration(s.Duration))
	if err != nil {
		return errors.Wrapf(err, "scenario %s", s.Name)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	conlog.Printf("%s: %s (%v)\n", s.Name, s.Description, t.Duration())
	r.Engine.SetListener(snd.DefaultListener)
	if err := r.Engine.SetAttenuation(r.Sample, s.Attenuation); err != nil {
		return errors.Wrapf(err, "scenario %s", s.Name)
	}

	first := t.At(0)
	pos := first.Position
	if first.Listener != nil {
		pos = s.Source
		r.Engine.SetListener(listener(first.Listener))
	}
	h := r.Engine.PlayPositional(r.Sample, pos, r.volume(s.Volume))
	if s.Looping {
		r.Engine.SetLooping(h, true)
	}
	defer func() {
		if s.Looping {
			// a looping voice would otherwise restart while being stopped
			r.Engine.SetLooping(h, false)
		}
		r.Engine.Stop(h)
	}()

	p := clock.NewPacer(r.clock())
	for smp := range t.Samples() {
		if err := p.WaitUntil(ctx, smp.Offset); err != nil {
			return err
		}
		if !r.Engine.Valid(h) {
			log.Printf("%s: voice finished after %d of %d steps", s.Name, smp.Index, t.Steps())
			return nil
		}
		push(r.Engine, h, smp)
	}
	return p.WaitUntil(ctx, t.Duration())
}

func push(e Engine, h snd.Handle, s trajectory.Sample) {
	if s.Listener != nil {
		e.SetListener(listener(s.Listener))
	} else {
		e.SetSourcePosition(h, s.Position)
	}
	if s.HasSpeed {
		e.SetSpeed(h, s.Speed)
	}
}
