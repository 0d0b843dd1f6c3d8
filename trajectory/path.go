// SPDX-License-Identifier: GPL-2.0-or-later

package trajectory

import (
	"math"

	qmath "soundstage/math"
	"soundstage/math/vec"
)

// Pose is a listener placement derived from a path.
type Pose struct {
	Origin  vec.Vec3
	Forward vec.Vec3
	Up      vec.Vec3
}

// Point is what a path yields for one step.
type Point struct {
	Angle    float64
	Position vec.Vec3
	// Speed is the relative playback speed. Only meaningful if HasSpeed.
	Speed    float32
	HasSpeed bool
	// Listener is set by paths which move the listener instead of the source.
	Listener *Pose
}

// A Path maps step i of steps onto a point. It must be a pure function.
type Path interface {
	Point(i, steps int) Point
}

// Circle moves a source around the origin in the x/z plane.
type Circle struct {
	Radius float32
}

func (c Circle) Point(i, steps int) Point {
	a := qmath.StepAngle(i, steps)
	return Point{
		Angle:    a,
		Position: onCircle(c.Radius, a, 0),
	}
}

// Spiral moves a source outwards from the origin while its height changes
// linearly from MinHeight to MaxHeight.
type Spiral struct {
	MaxRadius float32
	MinHeight float32
	MaxHeight float32
	// Turns is the angular speed multiplier: full turns over the whole path.
	Turns float64
	// Doppler modulates the playback speed with the angle. This is a
	// fixed 0.8+0.4*sin(angle) wobble bounded to [0.4,1.2], not a physical
	// doppler simulation.
	Doppler bool
}

func (s Spiral) Point(i, steps int) Point {
	p := Progress(i, steps)
	a := p * s.Turns * qmath.Tau
	r := s.MaxRadius * float32(p)
	h := qmath.Lerp(s.MinHeight, s.MaxHeight, float32(p))
	pt := Point{
		Angle:    a,
		Position: onCircle(r, a, h),
	}
	if s.Doppler {
		pt.Speed = DopplerSpeed(a)
		pt.HasSpeed = true
	}
	return pt
}

// Line moves a source from From towards To at constant speed.
type Line struct {
	From vec.Vec3
	To   vec.Vec3
}

func (l Line) Point(i, steps int) Point {
	return Point{
		Position: vec.Lerp(l.From, l.To, float32(Progress(i, steps))),
	}
}

// Orbit moves the listener around the origin, always facing it.
type Orbit struct {
	Radius float32
	Height float32
}

var (
	// Used when the listener sits exactly on the point it should face.
	fallbackForward = vec.Forward
	// Used when the listener looks straight up or down.
	fallbackUp = vec.Vec3{Z: 1}
)

func (o Orbit) Point(i, steps int) Point {
	a := qmath.StepAngle(i, steps)
	pos := onCircle(o.Radius, a, o.Height)
	return Point{
		Angle:    a,
		Position: pos,
		Listener: FacingOrigin(pos),
	}
}

// FacingOrigin returns a listener pose at pos looking at the origin.
func FacingOrigin(pos vec.Vec3) *Pose {
	fwd := pos.Scale(-1).NormalizeOr(fallbackForward)
	up := vec.Up
	if vec.Parallel(fwd, up) {
		up = fallbackUp
	}
	return &Pose{
		Origin:  pos,
		Forward: fwd,
		Up:      up,
	}
}

// Progress returns i/steps in [0,1) for 0 <= i < steps.
func Progress(i, steps int) float64 {
	return float64(i) / float64(steps)
}

// DopplerSpeed returns the relative speed used by spirals for an angle.
func DopplerSpeed(angle float64) float32 {
	return float32(0.8 + 0.4*math.Sin(angle))
}

func onCircle(r float32, a float64, h float32) vec.Vec3 {
	sin, cos := math.Sincos(a)
	return vec.Vec3{
		X: r * float32(cos),
		Y: h,
		Z: r * float32(sin),
	}
}
