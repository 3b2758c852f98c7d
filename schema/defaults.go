package schema

import "rankreel/types"

// Documented defaults applied to optional fields before validation.
// Defaulting is separate from validating: bounds violations on fields
// the caller did set are reported as errors, never silently replaced.
const (
	DefaultPrimaryColor = "#FF9900"
	DefaultBrandTag     = "rankreel"
	DefaultDucking      = 0.2
)

// DefaultSafeMargins keeps text clear of platform UI chrome on
// portrait video.
var DefaultSafeMargins = types.SafeMargins{Top: 180, Bottom: 260, Left: 64, Right: 64}

// ApplyDefaults fills absent optional fields in place and returns the
// candidate for chaining. It never overwrites a value the caller set.
func ApplyDefaults(c *types.VideoSpec) *types.VideoSpec {
	if c.Meta.PrimaryColor == "" {
		c.Meta.PrimaryColor = DefaultPrimaryColor
	}
	if c.Meta.BrandTag == "" {
		c.Meta.BrandTag = DefaultBrandTag
	}
	if c.SafeMargins == nil {
		m := DefaultSafeMargins
		c.SafeMargins = &m
	}
	if c.Audio != nil && c.Audio.DuckingLevel == 0 {
		c.Audio.DuckingLevel = DefaultDucking
	}

	for i := range c.Products {
		p := &c.Products[i]
		if p.Currency == "" {
			p.Currency = "USD"
		}
		if p.KenBurns.StartScale == 0 {
			p.KenBurns.StartScale = 1
		}
		if p.KenBurns.EndScale == 0 {
			p.KenBurns.EndScale = 1
		}
	}

	if c.Intro.Transition == "" {
		c.Intro.Transition = types.TransitionFade
	}
	if c.Outro.Transition == "" {
		c.Outro.Transition = types.TransitionFade
	}

	return c
}
