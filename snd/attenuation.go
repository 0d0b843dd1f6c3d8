// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"strings"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	"soundstage/math"
)

// Model selects how the gain of a source falls off with distance.
type Model int

const (
	NoAttenuation Model = iota
	Inverse
	Linear
	Exponential
)

func (m Model) String() string {
	switch m {
	case NoAttenuation:
		return "none"
	case Inverse:
		return "inverse"
	case Linear:
		return "linear"
	case Exponential:
		return "exponential"
	}
	return "unknown"
}

func ParseModel(s string) (Model, error) {
	switch strings.ToLower(s) {
	case "none", "":
		return NoAttenuation, nil
	case "inverse":
		return Inverse, nil
	case "linear":
		return Linear, nil
	case "exponential", "exp":
		return Exponential, nil
	}
	return NoAttenuation, errors.Errorf("unknown attenuation model %q", s)
}

// Attenuation is the distance configuration of a sample. Distances below
// Min are treated as Min, distances above Max as Max.
type Attenuation struct {
	Model   Model
	Min     float32
	Max     float32
	Rolloff float32
}

var DefaultAttenuation = Attenuation{
	Model:   NoAttenuation,
	Min:     1,
	Max:     1000,
	Rolloff: 1,
}

func (a Attenuation) Validate() error {
	switch {
	case a.Min <= 0:
		return errors.Errorf("min distance must be positive, got %v", a.Min)
	case a.Max < a.Min:
		return errors.Errorf("max distance %v is below min distance %v", a.Max, a.Min)
	case a.Rolloff < 0:
		return errors.Errorf("rolloff must not be negative, got %v", a.Rolloff)
	}
	return nil
}

// Gain returns the attenuation factor in [0,1] for a source at distance d.
func (a Attenuation) Gain(d float32) float32 {
	if a.Model == NoAttenuation || a.Min <= 0 {
		return 1
	}
	maxD := max(a.Max, a.Min)
	d = math.Clamp(a.Min, d, maxD)
	var g float32
	switch a.Model {
	case Inverse:
		g = a.Min / (a.Min + a.Rolloff*(d-a.Min))
	case Linear:
		if maxD == a.Min {
			return 1
		}
		g = 1 - a.Rolloff*(d-a.Min)/(maxD-a.Min)
	case Exponential:
		g = math32.Pow(d/a.Min, -a.Rolloff)
	default:
		g = 1
	}
	return math.Clamp(0, g, 1)
}
