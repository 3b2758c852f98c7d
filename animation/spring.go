package animation

import "math"

// Spring is a damped harmonic entrance curve evaluated in closed form
// from a frame index, so replaying any frame yields the same value with
// no integration state. The default parameters settle well inside a
// second; scenes are always several seconds long, so nothing is still
// visibly animating when a scene ends.
type Spring struct {
	Stiffness float64
	Damping   float64
	Mass      float64
}

// DefaultSpring is tuned for card and badge entrances.
var DefaultSpring = Spring{Stiffness: 170, Damping: 22, Mass: 1}

// settleEpsilon is the residual amplitude fraction below which the
// spring counts as settled.
const settleEpsilon = 0.001

// Value evaluates the spring moving from `from` to `to`, at the given
// scene-local frame. The motion starts at frame 0 with zero velocity.
func (s Spring) Value(frame, fps int, from, to float64) float64 {
	if frame <= 0 || fps <= 0 {
		return from
	}

	t := float64(frame) / float64(fps)
	delta := from - to

	omega := math.Sqrt(s.Stiffness / s.Mass)
	zeta := s.Damping / (2 * math.Sqrt(s.Stiffness*s.Mass))

	var x float64
	switch {
	case zeta < 1: // underdamped: decaying oscillation
		wd := omega * math.Sqrt(1-zeta*zeta)
		env := math.Exp(-zeta * omega * t)
		x = delta * env * (math.Cos(wd*t) + (zeta*omega/wd)*math.Sin(wd*t))
	case zeta == 1: // critically damped
		x = delta * math.Exp(-omega*t) * (1 + omega*t)
	default: // overdamped
		wd := omega * math.Sqrt(zeta*zeta-1)
		r1 := -zeta*omega + wd
		r2 := -zeta*omega - wd
		c2 := (r1 * delta) / (r1 - r2)
		c1 := delta - c2
		x = c1*math.Exp(r1*t) + c2*math.Exp(r2*t)
	}

	return to + x
}

// Settled reports whether the spring's residual motion at the frame is
// below the settle threshold.
func (s Spring) Settled(frame, fps int, from, to float64) bool {
	if from == to {
		return true
	}

	v := s.Value(frame, fps, from, to)
	return math.Abs(v-to) <= settleEpsilon*math.Abs(to-from)
}

// SettleFrames returns the first frame at which the spring stays
// settled, scanning up to maxFrames. Used by tests and by layout sanity
// checks to guarantee entrances finish before their scene does.
func (s Spring) SettleFrames(fps, maxFrames int, from, to float64) int {
	for f := 0; f <= maxFrames; f++ {
		if s.Settled(f, fps, from, to) {
			return f
		}
	}
	return maxFrames
}
