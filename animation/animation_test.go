package animation

import (
	"math"
	"testing"

	"rankreel/types"
)

func TestCurveBasics(t *testing.T) {
	if got := Clamp(1.5, 0, 1); got != 1 {
		t.Errorf("Clamp(1.5) = %v", got)
	}
	if got := Clamp(-0.2, 0, 1); got != 0 {
		t.Errorf("Clamp(-0.2) = %v", got)
	}
	if got := Lerp(10, 20, 0.5); got != 15 {
		t.Errorf("Lerp = %v, want 15", got)
	}

	// Progress clamps outside the window instead of extrapolating.
	if got := Progress(5, 10, 20); got != 0 {
		t.Errorf("Progress before window = %v", got)
	}
	if got := Progress(25, 10, 20); got != 1 {
		t.Errorf("Progress after window = %v", got)
	}
	if got := Progress(15, 10, 20); got != 0.5 {
		t.Errorf("Progress mid-window = %v", got)
	}

	for _, ease := range []func(float64) float64{EaseOutCubic, EaseInOutQuad} {
		if got := ease(0); got != 0 {
			t.Errorf("ease(0) = %v", got)
		}
		if got := ease(1); got != 1 {
			t.Errorf("ease(1) = %v", got)
		}
	}
}

func TestInterpolateClampsOutsideWindow(t *testing.T) {
	if got := Interpolate(-10, 0, 18, 0, 1); got != 0 {
		t.Errorf("before window = %v, want 0", got)
	}
	if got := Interpolate(500, 0, 18, 0, 1); got != 1 {
		t.Errorf("after window = %v, want 1", got)
	}
}

func TestSpringReplayIsDeterministic(t *testing.T) {
	for frame := 0; frame <= 120; frame++ {
		a := DefaultSpring.Value(frame, 30, 48, 0)
		b := DefaultSpring.Value(frame, 30, 48, 0)
		if a != b {
			t.Fatalf("frame %d: %v != %v on replay", frame, a, b)
		}
	}
}

func TestSpringStartsAndSettles(t *testing.T) {
	if got := DefaultSpring.Value(0, 30, 48, 0); got != 48 {
		t.Errorf("frame 0 = %v, want the start value 48", got)
	}

	// Entrances must settle well before the shortest scene (150 frames)
	// ends. The default tune settles in under a second.
	settle := DefaultSpring.SettleFrames(30, 150, 48, 0)
	if settle >= 30 {
		t.Errorf("spring settles at frame %d, want under 30", settle)
	}

	if !DefaultSpring.Settled(149, 30, 48, 0) {
		t.Error("spring still moving at the end of a 150-frame scene")
	}
}

func TestSpringOvershootIsBounded(t *testing.T) {
	// Slightly underdamped: a small overshoot is the point, a wild one
	// would fling cards off screen.
	for frame := 0; frame <= 60; frame++ {
		v := DefaultSpring.Value(frame, 30, 0.92, 1.0)
		if v < 0.9 || v > 1.1 {
			t.Fatalf("frame %d: card scale %v escaped [0.9, 1.1]", frame, v)
		}
	}
}

func sampleProduct() types.Product {
	return types.Product{
		Rank:     1,
		Name:     "Sample",
		Rating:   4.5,
		Badge:    types.BadgeBestSeller,
		KenBurns: types.KenBurns{StartScale: 1.0, EndScale: 1.08, PanX: 0.04, PanY: -0.02},
	}
}

func TestProductFrameReplayIsDeterministic(t *testing.T) {
	p := sampleProduct()
	for _, frame := range []int{0, 1, 17, 18, 100, 251, 269} {
		a := ProductFrame(frame, 270, 30, p)
		b := ProductFrame(frame, 270, 30, p)
		if a != b {
			t.Fatalf("frame %d differs on replay: %+v vs %+v", frame, a, b)
		}
	}
}

func TestProductFrameOpacitiesStayNormalized(t *testing.T) {
	p := sampleProduct()
	for frame := 0; frame < 270; frame++ {
		got := ProductFrame(frame, 270, 30, p)
		for name, v := range map[string]float64{
			"image":  got.ImageOpacity,
			"card":   got.CardOpacity,
			"rating": got.RatingFill,
		} {
			if v < 0 || v > 1 {
				t.Fatalf("frame %d: %s = %v outside [0, 1]", frame, name, v)
			}
		}
	}
}

func TestProductFrameTimingWindows(t *testing.T) {
	p := sampleProduct()

	start := ProductFrame(0, 270, 30, p)
	if start.ImageOpacity != 0 {
		t.Errorf("image visible at frame 0: %v", start.ImageOpacity)
	}
	if start.BadgeScale != 0 {
		t.Errorf("badge visible at frame 0: %v", start.BadgeScale)
	}
	if start.RatingFill != 0 {
		t.Errorf("rating bar filled at frame 0: %v", start.RatingFill)
	}

	mid := ProductFrame(135, 270, 30, p)
	if mid.ImageOpacity != 1 {
		t.Errorf("image not fully in at mid-scene: %v", mid.ImageOpacity)
	}
	if want := 4.5 / 5.0; math.Abs(mid.RatingFill-want) > 1e-9 {
		t.Errorf("rating fill = %v at mid-scene, want %v", mid.RatingFill, want)
	}
	if math.Abs(mid.BadgeScale-1) > 0.01 {
		t.Errorf("badge not settled at mid-scene: %v", mid.BadgeScale)
	}

	last := ProductFrame(269, 270, 30, p)
	if last.ImageOpacity >= mid.ImageOpacity {
		t.Errorf("no exit fade: frame 269 opacity %v", last.ImageOpacity)
	}
}

func TestProductFrameBadgeOnlyWhenAssigned(t *testing.T) {
	p := sampleProduct()
	p.Badge = types.BadgeNone

	for _, frame := range []int{0, 60, 200} {
		if got := ProductFrame(frame, 270, 30, p).BadgeScale; got != 0 {
			t.Errorf("frame %d: badge scale %v for badgeless product", frame, got)
		}
	}
}

func TestProductFrameKenBurnsDriftsAcrossScene(t *testing.T) {
	p := sampleProduct()

	start := ProductFrame(0, 270, 30, p)
	end := ProductFrame(270, 270, 30, p)

	if start.KenBurnsScale != p.KenBurns.StartScale {
		t.Errorf("drift starts at %v, want %v", start.KenBurnsScale, p.KenBurns.StartScale)
	}
	if math.Abs(end.KenBurnsScale-p.KenBurns.EndScale) > 1e-9 {
		t.Errorf("drift ends at %v, want %v", end.KenBurnsScale, p.KenBurns.EndScale)
	}

	prev := start.KenBurnsScale
	for frame := 1; frame <= 270; frame++ {
		cur := ProductFrame(frame, 270, 30, p).KenBurnsScale
		if cur < prev {
			t.Fatalf("frame %d: drift reversed (%v < %v)", frame, cur, prev)
		}
		prev = cur
	}
}

func TestIntroAndOutroFrames(t *testing.T) {
	in := IntroFrame(0, 150, 30)
	if in.BackdropOpacity != 0 || in.TitleOpacity != 0 {
		t.Errorf("intro visible at frame 0: %+v", in)
	}
	if in.TitleOffsetY != titleSlidePx {
		t.Errorf("title offset at frame 0 = %v, want %v", in.TitleOffsetY, titleSlidePx)
	}

	settled := IntroFrame(75, 150, 30)
	if settled.BackdropOpacity != 1 || settled.HookOpacity != 1 {
		t.Errorf("intro not fully in at mid-scene: %+v", settled)
	}
	if math.Abs(settled.TitleOffsetY) > 0.1 {
		t.Errorf("title still sliding at mid-scene: %v", settled.TitleOffsetY)
	}

	out := OutroFrame(75, 150, 30)
	if out.CTAOpacity != 1 {
		t.Errorf("CTA not fully in at mid-scene: %v", out.CTAOpacity)
	}
	if math.Abs(out.CTAScale-1) > 0.01 {
		t.Errorf("CTA scale not settled at mid-scene: %v", out.CTAScale)
	}

	endOut := OutroFrame(149, 150, 30)
	if endOut.CTAOpacity >= out.CTAOpacity {
		t.Errorf("no outro fade: frame 149 opacity %v", endOut.CTAOpacity)
	}
}
