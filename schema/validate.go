package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"rankreel/types"
)

// FieldError is one structural or range violation on the candidate.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationFailure collects every violation found in one candidate so
// the caller can report all problems at once instead of fixing them one
// round-trip at a time.
type ValidationFailure struct {
	Errors []FieldError `json:"errors"`
}

func (f *ValidationFailure) Error() string {
	msgs := make([]string, len(f.Errors))
	for i, e := range f.Errors {
		msgs[i] = e.String()
	}
	return fmt.Sprintf("invalid video spec (%d problems): %s", len(f.Errors), strings.Join(msgs, "; "))
}

// Messages flattens the failure into plain strings for job status
// payloads.
func (f *ValidationFailure) Messages() []string {
	out := make([]string, len(f.Errors))
	for i, e := range f.Errors {
		out[i] = e.String()
	}
	return out
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a candidate against the canonical schema. On success
// the returned spec is the candidate itself, defaults applied, and must
// be treated as immutable from here on. Data-shape problems come back
// as a *ValidationFailure; only a schema misconfiguration is returned
// as a plain error.
func Validate(candidate *types.VideoSpec) (*types.VideoSpec, error) {
	if candidate == nil {
		return nil, &ValidationFailure{Errors: []FieldError{{Field: "spec", Message: "candidate is nil"}}}
	}

	ApplyDefaults(candidate)

	var errs []FieldError

	if err := validate.Struct(candidate); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			// InvalidValidationError means the schema itself is broken,
			// which is a programming error rather than a data problem.
			return nil, fmt.Errorf("schema misconfigured: %w", err)
		}

		for _, fe := range verrs {
			errs = append(errs, FieldError{
				Field:   strings.TrimPrefix(fe.Namespace(), "VideoSpec."),
				Message: tagMessage(fe),
			})
		}
	}

	errs = append(errs, checkRanks(candidate.Products)...)
	errs = append(errs, checkCaptions("Intro", candidate.Intro.Captions)...)
	errs = append(errs, checkCaptions("Outro", candidate.Outro.Captions)...)
	errs = append(errs, checkBudget(candidate)...)
	errs = append(errs, checkOverlays(candidate)...)

	if len(errs) > 0 {
		sort.SliceStable(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })
		return nil, &ValidationFailure{Errors: errs}
	}

	return candidate, nil
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "len":
		return fmt.Sprintf("must have length %s", fe.Param())
	case "hexcolor":
		return "must be a hex color"
	default:
		return fmt.Sprintf("failed %q constraint", fe.Tag())
	}
}

// checkRanks enforces the core countdown invariant: exactly five
// products whose ranks are the set {1,2,3,4,5}, each unique.
func checkRanks(products []types.Product) []FieldError {
	if len(products) != 5 {
		// The len=5 tag already reported this; rank checks would only
		// add noise on top.
		return nil
	}

	var errs []FieldError
	seen := make(map[int]int, 5)

	for i, p := range products {
		if p.Rank < 1 || p.Rank > 5 {
			continue // range violation already reported by the tag
		}
		if prev, dup := seen[p.Rank]; dup {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("Products[%d].Rank", i),
				Message: fmt.Sprintf("duplicate rank %d (also at Products[%d])", p.Rank, prev),
			})
			continue
		}
		seen[p.Rank] = i
	}

	for rank := 1; rank <= 5; rank++ {
		if _, ok := seen[rank]; !ok {
			errs = append(errs, FieldError{
				Field:   "Products",
				Message: fmt.Sprintf("missing rank %d", rank),
			})
		}
	}

	return errs
}

// checkCaptions enforces ordered, non-overlapping caption intervals
// with end >= start.
func checkCaptions(scope string, captions []types.Caption) []FieldError {
	var errs []FieldError
	lastEnd := 0.0

	for i, c := range captions {
		field := fmt.Sprintf("%s.Captions[%d]", scope, i)

		if c.End < c.Start {
			errs = append(errs, FieldError{Field: field, Message: "end precedes start"})
		}
		if c.Start < lastEnd {
			errs = append(errs, FieldError{Field: field, Message: "overlaps or precedes previous caption"})
		}
		if c.End > lastEnd {
			lastEnd = c.End
		}

		for j, w := range c.Words {
			if w.End < w.Start {
				errs = append(errs, FieldError{
					Field:   fmt.Sprintf("%s.Words[%d]", field, j),
					Message: "end precedes start",
				})
			}
		}
	}

	return errs
}

// checkBudget verifies the implied total frame count fits the canvas
// limits. The accepted floor is one second of video.
func checkBudget(c *types.VideoSpec) []FieldError {
	if c.Meta.FPS <= 0 || c.Meta.MaxTotalFrames <= 0 {
		return nil // meta violations already reported by tags
	}

	total := c.Timeline.TotalFrames()
	minAllowed := c.Meta.FPS

	var errs []FieldError
	if total < minAllowed {
		errs = append(errs, FieldError{
			Field:   "Timeline",
			Message: fmt.Sprintf("total %d frames is under the %d-frame minimum", total, minAllowed),
		})
	}
	if total > c.Meta.MaxTotalFrames {
		errs = append(errs, FieldError{
			Field:   "Timeline",
			Message: fmt.Sprintf("total %d frames exceeds max_total_frames %d", total, c.Meta.MaxTotalFrames),
		})
	}
	return errs
}

func checkOverlays(c *types.VideoSpec) []FieldError {
	var errs []FieldError
	total := c.Timeline.TotalFrames()

	for i, o := range c.Overlays {
		field := fmt.Sprintf("Overlays[%d]", i)
		if o.EndFrame < o.StartFrame {
			errs = append(errs, FieldError{Field: field, Message: "end_frame precedes start_frame"})
		}
		if o.EndFrame > total {
			errs = append(errs, FieldError{Field: field, Message: "extends past the video's final frame"})
		}
	}
	return errs
}
