package animation

// Interpolation helpers for frame-indexed curves. Everything here is a
// pure function of its arguments: the rendering runtime may evaluate
// frames out of order, concurrently, or repeatedly (scrubbing) and must
// always see identical values. Outputs clamp at the curve's [start,end]
// window; there is no extrapolation.

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b by t in [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*Clamp(t, 0, 1)
}

// Progress maps a frame index onto [0, 1] across a frame window.
// Indices before the window give 0, after give 1.
func Progress(frame, startFrame, endFrame int) float64 {
	if endFrame <= startFrame {
		return 1
	}
	return Clamp(float64(frame-startFrame)/float64(endFrame-startFrame), 0, 1)
}

// Interpolate evaluates a clamped linear curve from v0 at startFrame to
// v1 at endFrame.
func Interpolate(frame, startFrame, endFrame int, v0, v1 float64) float64 {
	return Lerp(v0, v1, Progress(frame, startFrame, endFrame))
}

// EaseOutCubic decelerates toward the target.
func EaseOutCubic(t float64) float64 {
	t = Clamp(t, 0, 1)
	u := 1 - t
	return 1 - u*u*u
}

// EaseInOutQuad accelerates then decelerates.
func EaseInOutQuad(t float64) float64 {
	t = Clamp(t, 0, 1)
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}
