package schema

import (
	"errors"
	"strings"
	"testing"

	"rankreel/adapter"
	"rankreel/types"
)

func validSpec(t *testing.T) *types.VideoSpec {
	t.Helper()

	products := make([]types.Product, 0, 5)
	for rank := 5; rank >= 1; rank-- {
		kb, in, out, layout := adapter.VarietyFor(rank)
		products = append(products, types.Product{
			Rank:          rank,
			Name:          "Product",
			ImageURL:      "https://cdn.example.com/p.jpg",
			KenBurns:      kb,
			Rating:        4.2,
			ReviewsCount:  1200,
			Price:         59.99,
			Currency:      "USD",
			DiscountPct:   10,
			Layout:        layout,
			TransitionIn:  in,
			TransitionOut: out,
		})
	}

	return &types.VideoSpec{
		Meta: types.Meta{
			FPS:            30,
			Width:          1080,
			Height:         1920,
			MaxTotalFrames: 1800,
		},
		Timeline: types.TimelineBudget{
			IntroFrames:       150,
			ProductFrames:     270,
			OutroFrames:       150,
			TransitionOverlap: 12,
		},
		Intro: types.Intro{
			ImageURL: "https://cdn.example.com/intro.jpg",
			Title:    "Top 5 Picks",
		},
		Products: products,
		Outro: types.Outro{
			ImageURL: "https://cdn.example.com/outro.jpg",
			CTAText:  "Links below!",
		},
	}
}

func TestValidateAcceptsCompleteSpec(t *testing.T) {
	spec, err := Validate(validSpec(t))
	if err != nil {
		t.Fatalf("valid spec rejected: %v", err)
	}

	if spec.Meta.PrimaryColor != DefaultPrimaryColor {
		t.Errorf("primary color default not applied: %q", spec.Meta.PrimaryColor)
	}
	if spec.SafeMargins == nil {
		t.Error("safe margins default not applied")
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	c := validSpec(t)
	c.Intro.ImageURL = ""      // missing required
	c.Outro.CTAText = ""       // missing required
	c.Products[2].Rating = 7.5 // out of range

	_, err := Validate(c)
	if err == nil {
		t.Fatal("expected validation failure")
	}

	var vf *ValidationFailure
	if !errors.As(err, &vf) {
		t.Fatalf("expected *ValidationFailure, got %T", err)
	}

	if len(vf.Errors) != 3 {
		t.Fatalf("expected 3 collected errors, got %d: %v", len(vf.Errors), vf.Errors)
	}

	wantFields := []string{"Intro.ImageURL", "Outro.CTAText", "Products[2].Rating"}
	for _, want := range wantFields {
		if !hasFieldError(vf, want) {
			t.Errorf("missing error for %s in %v", want, vf.Errors)
		}
	}
}

func TestValidateRankMultiset(t *testing.T) {
	c := validSpec(t)
	c.Products[0].Rank = 1 // duplicate of the last product, rank 5 now missing

	_, err := Validate(c)
	var vf *ValidationFailure
	if !errors.As(err, &vf) {
		t.Fatalf("expected *ValidationFailure, got %v", err)
	}

	var dup, missing bool
	for _, fe := range vf.Errors {
		if strings.Contains(fe.Message, "duplicate rank 1") {
			dup = true
		}
		if strings.Contains(fe.Message, "missing rank 5") {
			missing = true
		}
	}
	if !dup || !missing {
		t.Errorf("expected duplicate and missing rank errors, got %v", vf.Errors)
	}
}

func TestValidateCaptionOrdering(t *testing.T) {
	c := validSpec(t)
	c.Intro.Captions = []types.Caption{
		{Text: "first", Start: 0, End: 2},
		{Text: "second", Start: 1.5, End: 3}, // overlaps
		{Text: "third", Start: 4, End: 3.5},  // end precedes start
	}

	_, err := Validate(c)
	var vf *ValidationFailure
	if !errors.As(err, &vf) {
		t.Fatalf("expected *ValidationFailure, got %v", err)
	}

	if !hasFieldError(vf, "Intro.Captions[1]") || !hasFieldError(vf, "Intro.Captions[2]") {
		t.Errorf("expected caption errors for [1] and [2], got %v", vf.Errors)
	}
}

func TestValidateBudgetAgainstCanvasLimits(t *testing.T) {
	c := validSpec(t)
	c.Meta.MaxTotalFrames = 1000 // 1650 no longer fits

	_, err := Validate(c)
	var vf *ValidationFailure
	if !errors.As(err, &vf) {
		t.Fatalf("expected *ValidationFailure, got %v", err)
	}
	if !hasFieldError(vf, "Timeline") {
		t.Errorf("expected Timeline budget error, got %v", vf.Errors)
	}
}

func TestValidateDoesNotClamp(t *testing.T) {
	// Out-of-range values are reported, not silently fixed; clamping is
	// the normalizer's job and happens before validation.
	c := validSpec(t)
	c.Products[0].DiscountPct = 140

	_, err := Validate(c)
	var vf *ValidationFailure
	if !errors.As(err, &vf) {
		t.Fatalf("expected *ValidationFailure, got %v", err)
	}
	if c.Products[0].DiscountPct != 140 {
		t.Errorf("validator mutated the candidate: %d", c.Products[0].DiscountPct)
	}
}

func hasFieldError(vf *ValidationFailure, field string) bool {
	for _, fe := range vf.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}
