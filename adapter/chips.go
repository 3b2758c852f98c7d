package adapter

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxFeatureChips caps how many chips fit the product card layouts.
const MaxFeatureChips = 4

// minPrimaryChips is the threshold below which the keyword supplement
// kicks in.
const minPrimaryChips = 3

// chipPattern is one domain attribute scanned out of free-text product
// descriptions. Patterns run in fixed order and each contributes at
// most its first match, which keeps extraction deterministic.
type chipPattern struct {
	re     *regexp.Regexp
	format func(m []string) string
}

var chipPatterns = []chipPattern{
	{ // battery life
		re: regexp.MustCompile(`(?i)(\d+)\s*(?:hours?|hrs?|h)\b[^.]*?\b(?:battery|playtime|play\s*time)`),
		format: func(m []string) string {
			return fmt.Sprintf("%sh Battery", m[1])
		},
	},
	{ // wireless / connectivity
		re: regexp.MustCompile(`(?i)bluetooth\s*(\d(?:\.\d)?)|\bwireless\b`),
		format: func(m []string) string {
			if m[1] != "" {
				return "BT " + m[1]
			}
			return "Wireless"
		},
	},
	{ // water resistance
		re: regexp.MustCompile(`(?i)\bipx?(\d)\b|water\s*(?:resistant|proof)`),
		format: func(m []string) string {
			if m[1] != "" {
				return "IPX" + m[1]
			}
			return "Waterproof"
		},
	},
	{ // charging type
		re: regexp.MustCompile(`(?i)usb[\s-]?c|fast\s*charg\w*|wireless\s*charg\w*`),
		format: func(m []string) string {
			s := strings.ToLower(m[0])
			switch {
			case strings.HasPrefix(s, "usb"):
				return "USB-C"
			case strings.HasPrefix(s, "fast"):
				return "Fast Charge"
			default:
				return "Qi Charging"
			}
		},
	},
	{ // audio codec
		re: regexp.MustCompile(`(?i)\b(aptx|ldac|aac)\b`),
		format: func(m []string) string {
			return strings.ToUpper(m[1])
		},
	},
	{ // portability
		re: regexp.MustCompile(`(?i)\b(foldable|compact|lightweight|portable)\b`),
		format: func(m []string) string {
			s := strings.ToLower(m[1])
			return strings.ToUpper(s[:1]) + s[1:]
		},
	},
	{ // power output
		re: regexp.MustCompile(`(?i)(\d+)\s*w(?:att)?s?\b`),
		format: func(m []string) string {
			return m[1] + "W"
		},
	},
	{ // controls / noise cancelling
		re: regexp.MustCompile(`(?i)active\s*noise|(\banc\b)|touch\s*control`),
		format: func(m []string) string {
			if strings.Contains(strings.ToLower(m[0]), "touch") {
				return "Touch Control"
			}
			return "ANC"
		},
	},
}

// supplementKeywords are literal marketing terms used to top up the
// chip list when the description yields fewer than three attribute
// matches. Order matters: earlier keywords win the remaining slots.
var supplementKeywords = []string{
	"Premium", "Pro", "Ultra", "Max", "Plus", "HD", "Stereo", "Gaming",
}

// ExtractChips derives up to four short feature chips from a free-text
// description. Repeated runs on identical text produce identical chips.
func ExtractChips(description string) []string {
	if strings.TrimSpace(description) == "" {
		return nil
	}

	var chips []string
	seen := make(map[string]struct{})

	add := func(chip string) bool {
		if chip == "" || len(chips) >= MaxFeatureChips {
			return false
		}
		key := strings.ToLower(chip)
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
		chips = append(chips, chip)
		return true
	}

	for _, p := range chipPatterns {
		m := p.re.FindStringSubmatch(description)
		if m == nil {
			continue
		}
		add(p.format(m))
		if len(chips) >= MaxFeatureChips {
			return chips
		}
	}

	if len(chips) >= minPrimaryChips {
		return chips
	}

	lower := strings.ToLower(description)
	for _, kw := range supplementKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			add(kw)
		}
		if len(chips) >= MaxFeatureChips {
			break
		}
	}

	return chips
}
