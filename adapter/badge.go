package adapter

import "rankreel/types"

const (
	topRatedReviewFloor  = 10_000
	amazonChoiceMinStars = 4.5
	limitedDealMinPct    = 30
)

// BadgeFor classifies a product. The chain is evaluated in priority
// order and the first match wins, so identical input always yields the
// same badge.
func BadgeFor(rank int, reviewsCount int, rating float64, discountPct int) types.Badge {
	switch {
	case rank == 1:
		return types.BadgeBestSeller
	case reviewsCount > topRatedReviewFloor:
		return types.BadgeTopRated
	case rating >= amazonChoiceMinStars:
		return types.BadgeAmazonChoice
	case discountPct > limitedDealMinPct:
		return types.BadgeLimitedDeal
	default:
		return types.BadgeNone
	}
}
