// SPDX-License-Identifier: GPL-2.0-or-later

// Package trajectory produces the scripted motion of a sound source or
// listener as a finite sequence of evenly spaced samples.
package trajectory

import (
	"iter"
	"time"

	"github.com/pkg/errors"
)

var (
	ErrSteps    = errors.New("trajectory: steps must be positive")
	ErrDuration = errors.New("trajectory: duration must be positive")
)

type Trajectory struct {
	path     Path
	steps    int
	duration time.Duration
}

// Sample is one step of a trajectory.
type Sample struct {
	Index int
	// Fraction of the whole trajectory elapsed when this sample is due.
	Fraction float64
	// Offset from the trajectory start when this sample is due.
	Offset time.Duration
	Point
}

func New(p Path, steps int, d time.Duration) (Trajectory, error) {
	if steps <= 0 {
		return Trajectory{}, errors.Wrapf(ErrSteps, "got %d", steps)
	}
	if d <= 0 {
		return Trajectory{}, errors.Wrapf(ErrDuration, "got %v", d)
	}
	if p == nil {
		return Trajectory{}, errors.New("trajectory: no path")
	}
	return Trajectory{
		path:     p,
		steps:    steps,
		duration: d,
	}, nil
}

func (t Trajectory) Steps() int {
	return t.steps
}

func (t Trajectory) Duration() time.Duration {
	return t.duration
}

// Interval is the nominal time between two samples.
func (t Trajectory) Interval() time.Duration {
	return t.duration / time.Duration(t.steps)
}

// At returns sample i. It does not check bounds, a path is defined for any i.
func (t Trajectory) At(i int) Sample {
	f := Progress(i, t.steps)
	return Sample{
		Index:    i,
		Fraction: f,
		// computed from the full duration so rounding never accumulates
		Offset: t.offset(i),
		Point:  t.path.Point(i, t.steps),
	}
}

// offset is duration*i/steps without the overflow of the plain product.
func (t Trajectory) offset(i int) time.Duration {
	d, n, k := int64(t.duration), int64(t.steps), int64(i)
	return time.Duration(d/n*k + d%n*k/n)
}

// Samples yields all steps in order. Each call starts from the beginning.
func (t Trajectory) Samples() iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		for i := range t.steps {
			if !yield(t.At(i)) {
				return
			}
		}
	}
}
