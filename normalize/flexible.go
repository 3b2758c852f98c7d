package normalize

import (
	"encoding/json"
	"strings"
)

// Flexible is a scalar field that external records send inconsistently:
// sometimes a JSON string, sometimes a number, sometimes null or absent.
// It captures the raw textual form at the decode boundary so the parsers
// in this package can normalize it exactly once. Ambiguous string/number
// types must never leak past this package.
type Flexible struct {
	raw     string
	present bool
}

// FlexibleFrom wraps a literal string value, mainly for tests and
// programmatic record construction.
func FlexibleFrom(s string) Flexible {
	return Flexible{raw: s, present: true}
}

// UnmarshalJSON accepts strings, numbers, booleans and null.
func (f *Flexible) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = Flexible{}
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*f = Flexible{raw: str, present: true}
		return nil
	}

	// Numbers and booleans keep their literal text.
	*f = Flexible{raw: s, present: true}
	return nil
}

// MarshalJSON re-emits the captured text as a JSON string.
func (f Flexible) MarshalJSON() ([]byte, error) {
	if !f.present {
		return []byte("null"), nil
	}
	return json.Marshal(f.raw)
}

// String returns the raw textual form, trimmed.
func (f Flexible) String() string {
	return strings.TrimSpace(f.raw)
}

// IsZero reports whether the field was absent, null or blank.
func (f Flexible) IsZero() bool {
	return !f.present || strings.TrimSpace(f.raw) == ""
}
