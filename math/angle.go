// SPDX-License-Identifier: GPL-2.0-or-later

package math

import "math"

const (
	Tau = 2 * math.Pi
)

// AngleMod wraps an angle given in radians into [0, 2π)
func AngleMod(a float64) float64 {
	r := a - math.Floor(a/Tau)*Tau
	if r >= Tau {
		return 0
	}
	return r
}

// StepAngle returns the angle of step i when a full turn is split into steps.
func StepAngle(i, steps int) float64 {
	return float64(i) * (Tau / float64(steps))
}
