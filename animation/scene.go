package animation

import "rankreel/types"

// Scene parameter families. Each function maps (scene-local frame,
// scene length, fps, input data) to the visual parameters the renderer
// needs for that frame. No hidden state: scenes render out of order and
// re-render for scrubbing without any reset.

// Entrance and exit tuning, in frames at the scene's own fps.
const (
	entranceFrames  = 18 // fade/slide-in window
	exitFrames      = 18 // fade-out window at scene tail
	badgePopDelay   = 24 // badge pops after the card lands
	ratingFillStart = 12
	ratingFillSpan  = 30
	titleSlidePx    = 48.0
	priceSlidePx    = 64.0
)

// IntroParams are the per-frame visuals for the intro scene.
type IntroParams struct {
	BackdropOpacity float64 `json:"backdrop_opacity"`
	TitleOpacity    float64 `json:"title_opacity"`
	TitleOffsetY    float64 `json:"title_offset_y"`
	HookOpacity     float64 `json:"hook_opacity"`
	Scale           float64 `json:"scale"`
}

// IntroFrame evaluates the intro scene at a local frame index.
func IntroFrame(frame, totalFrames, fps int) IntroParams {
	exitStart := totalFrames - exitFrames

	fadeOut := Interpolate(frame, exitStart, totalFrames, 1, 0)

	return IntroParams{
		BackdropOpacity: Interpolate(frame, 0, entranceFrames, 0, 1) * fadeOut,
		TitleOpacity:    Interpolate(frame, 6, entranceFrames+6, 0, 1) * fadeOut,
		TitleOffsetY:    DefaultSpring.Value(frame, fps, titleSlidePx, 0),
		HookOpacity:     Interpolate(frame, entranceFrames, entranceFrames*2, 0, 1) * fadeOut,
		Scale:           Lerp(1.04, 1.0, EaseOutCubic(Progress(frame, 0, entranceFrames*2))),
	}
}

// ProductParams are the per-frame visuals for one product scene.
type ProductParams struct {
	ImageOpacity  float64 `json:"image_opacity"`
	CardOpacity   float64 `json:"card_opacity"`
	CardScale     float64 `json:"card_scale"`
	TitleOffsetY  float64 `json:"title_offset_y"`
	PriceOffsetX  float64 `json:"price_offset_x"`
	RatingFill    float64 `json:"rating_fill"` // 0..1 of the product's rating bar
	BadgeScale    float64 `json:"badge_scale"`
	KenBurnsScale float64 `json:"ken_burns_scale"`
	KenBurnsX     float64 `json:"ken_burns_x"` // pan offset, fraction of canvas
	KenBurnsY     float64 `json:"ken_burns_y"`
}

// ProductFrame evaluates a product scene at a local frame index. The
// Ken-Burns drift runs across the whole scene; entrances settle early.
func ProductFrame(frame, totalFrames, fps int, p types.Product) ProductParams {
	exitStart := totalFrames - exitFrames

	fadeOut := Interpolate(frame, exitStart, totalFrames, 1, 0)
	drift := EaseInOutQuad(Progress(frame, 0, totalFrames))

	ratingTarget := Clamp(p.Rating/5.0, 0, 1)

	badgeScale := 0.0
	if p.Badge != types.BadgeNone {
		badgeScale = DefaultSpring.Value(max(frame-badgePopDelay, 0), fps, 0, 1)
	}

	return ProductParams{
		ImageOpacity:  Interpolate(frame, 0, entranceFrames, 0, 1) * fadeOut,
		CardOpacity:   Interpolate(frame, 4, entranceFrames+4, 0, 1) * fadeOut,
		CardScale:     DefaultSpring.Value(frame, fps, 0.92, 1.0),
		TitleOffsetY:  DefaultSpring.Value(frame, fps, titleSlidePx, 0),
		PriceOffsetX:  DefaultSpring.Value(max(frame-8, 0), fps, priceSlidePx, 0),
		RatingFill:    Lerp(0, ratingTarget, EaseOutCubic(Progress(frame, ratingFillStart, ratingFillStart+ratingFillSpan))),
		BadgeScale:    badgeScale,
		KenBurnsScale: Lerp(p.KenBurns.StartScale, p.KenBurns.EndScale, drift),
		KenBurnsX:     Lerp(0, p.KenBurns.PanX, drift),
		KenBurnsY:     Lerp(0, p.KenBurns.PanY, drift),
	}
}

// OutroParams are the per-frame visuals for the outro scene.
type OutroParams struct {
	BackdropOpacity float64 `json:"backdrop_opacity"`
	CTAOpacity      float64 `json:"cta_opacity"`
	CTAScale        float64 `json:"cta_scale"`
	Scale           float64 `json:"scale"`
}

// OutroFrame evaluates the outro scene at a local frame index.
func OutroFrame(frame, totalFrames, fps int) OutroParams {
	exitStart := totalFrames - exitFrames

	fadeOut := Interpolate(frame, exitStart, totalFrames, 1, 0)

	return OutroParams{
		BackdropOpacity: Interpolate(frame, 0, entranceFrames, 0, 1) * fadeOut,
		CTAOpacity:      Interpolate(frame, 10, entranceFrames+10, 0, 1) * fadeOut,
		CTAScale:        DefaultSpring.Value(max(frame-10, 0), fps, 0.85, 1.0),
		Scale:           Lerp(1.0, 1.06, EaseInOutQuad(Progress(frame, 0, totalFrames))),
	}
}
