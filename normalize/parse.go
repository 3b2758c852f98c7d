package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Parsers in this package never return errors. Unusable input becomes a
// documented fallback value and the second return is false so the
// caller can log a data-quality warning. Outputs are deterministic:
// identical input always yields identical output.

const (
	MinRating = 0.0
	MaxRating = 5.0
)

var numberPattern = regexp.MustCompile(`-?\d[\d,]*(?:\.\d+)?`)

// ParsePrice extracts a non-negative price from text that may carry
// currency symbols, currency codes and thousands separators
// ("$1,299.99", "USD 49", "79,90"). Unparseable or negative input
// falls back to 0.
func ParsePrice(v Flexible) (float64, bool) {
	s := v.String()
	if s == "" {
		return 0, false
	}

	match := numberPattern.FindString(s)
	if match == "" {
		return 0, false
	}

	// European grouping: "1.299,00" uses dots for thousands and a
	// comma decimal. Detect it before stripping commas.
	if strings.Contains(match, ",") && !strings.Contains(match, ".") {
		if idx := strings.LastIndex(match, ","); len(match)-idx-1 != 3 {
			match = strings.Replace(match, ",", ".", 1)
		}
	}
	match = strings.ReplaceAll(match, ",", "")

	n, err := strconv.ParseFloat(match, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// ParseRating parses a star rating and clamps it to [0, 5].
// Unparseable input falls back to 0.
func ParseRating(v Flexible) (float64, bool) {
	s := v.String()
	if s == "" {
		return 0, false
	}

	// Ratings arrive as "4.5", "4,5" or "4.5 out of 5 stars".
	match := numberPattern.FindString(strings.ReplaceAll(s, ",", "."))
	if match == "" {
		return 0, false
	}

	n, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}

	if n < MinRating {
		return MinRating, true
	}
	if n > MaxRating {
		return MaxRating, true
	}
	return n, true
}

// ParseReviewCount parses review counts in plain ("2345"), comma-grouped
// ("2,345") or suffix-compressed form ("1.2K", "3M", case-insensitive).
// Unparseable input falls back to 0.
func ParseReviewCount(v Flexible) (int, bool) {
	s := strings.ToUpper(v.String())
	if s == "" {
		return 0, false
	}

	multiplier := 1.0
	switch {
	case strings.HasSuffix(s, "K"):
		multiplier = 1_000
		s = strings.TrimSuffix(s, "K")
	case strings.HasSuffix(s, "M"):
		multiplier = 1_000_000
		s = strings.TrimSuffix(s, "M")
	case strings.HasSuffix(s, "B"):
		multiplier = 1_000_000_000
		s = strings.TrimSuffix(s, "B")
	}

	match := numberPattern.FindString(s)
	if match == "" {
		return 0, false
	}
	match = strings.ReplaceAll(match, ",", "")

	n, err := strconv.ParseFloat(match, 64)
	if err != nil || n < 0 {
		return 0, false
	}

	return int(math.Round(n * multiplier)), true
}

// DiscountPct derives the rounded discount percentage from the current
// and original price. Missing or not-actually-discounted originals give
// 0; the result is always within [0, 100].
func DiscountPct(current, original float64) int {
	if original <= 0 || original <= current {
		return 0
	}

	pct := int(math.Round(100 * (original - current) / original))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
