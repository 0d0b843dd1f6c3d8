// SPDX-License-Identifier: GPL-2.0-or-later

package clock

import (
	"context"
	"time"
)

// Pacer waits for points in time relative to a fixed start. Waiting for
// absolute offsets instead of sleeping a fixed slice per step keeps the
// schedule from drifting when steps take longer than planned.
type Pacer struct {
	clock Clock
	start time.Time
}

func NewPacer(c Clock) *Pacer {
	return &Pacer{
		clock: c,
		start: c.Now(),
	}
}

func (p *Pacer) Elapsed() time.Duration {
	return p.clock.Now().Sub(p.start)
}

// WaitUntil blocks until offset has passed since the pacer was created.
// If that point is already over it returns immediately.
func (p *Pacer) WaitUntil(ctx context.Context, offset time.Duration) error {
	d := offset - p.Elapsed()
	if d <= 0 {
		return ctx.Err()
	}
	return p.clock.Sleep(ctx, d)
}
