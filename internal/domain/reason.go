package domain

import (
	"fmt"
	"strings"
)

const (
	followedCreatorThreshold = 2
	typePreferenceThreshold  = 5
	trendingAccessThreshold  = 100
	maxReasons               = 2
	reasonSeparator          = " • "
	defaultReason            = "Recommended for you"
)

// RecommendationReason explains a recommendation from the user's history.
// Rules are evaluated in order and at most two matching reasons are kept.
func RecommendationReason(content Content, interactions []Interaction) string {
	var creatorMatches, typeMatches int
	for _, i := range interactions {
		if i.CreatorAddress == content.CreatorAddress {
			creatorMatches++
		}
		if i.ContentType == content.Type {
			typeMatches++
		}
	}

	var reasons []string
	if creatorMatches > followedCreatorThreshold {
		reasons = append(reasons, "From a creator you follow")
	}
	if typeMatches > typePreferenceThreshold {
		reasons = append(reasons, fmt.Sprintf("Similar to your %s preferences", content.Type))
	}
	if content.AccessCount > trendingAccessThreshold {
		reasons = append(reasons, "Trending content")
	}

	if len(reasons) == 0 {
		return defaultReason
	}
	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return strings.Join(reasons, reasonSeparator)
}
