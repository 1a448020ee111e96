package domain

import "time"

// RankingPolicy holds the business-rule adjustments applied to raw scores.
type RankingPolicy struct {
	// NewContentAge is the age below which content receives NewContentBoost.
	NewContentAge   time.Duration
	NewContentBoost float64

	// PopularAccessCount is the access count above which content receives PopularityBoost.
	PopularAccessCount int64
	PopularityBoost    float64

	// PurchasedPenalty is applied when the user has already bought the content.
	PurchasedPenalty float64
}

func DefaultRankingPolicy() RankingPolicy {
	return RankingPolicy{
		NewContentAge:      7 * 24 * time.Hour,
		NewContentBoost:    1.2,
		PopularAccessCount: 100,
		PopularityBoost:    1.1,
		PurchasedPenalty:   0.5,
	}
}

// Adjust applies the recency boost, then the popularity boost, then the
// purchased penalty. The result is not re-normalised.
func (p RankingPolicy) Adjust(score float64, content Content, purchased bool, now time.Time) float64 {
	if content.DaysOld(now) < p.NewContentAge.Hours()/24 {
		score *= p.NewContentBoost
	}
	if content.AccessCount > p.PopularAccessCount {
		score *= p.PopularityBoost
	}
	if purchased {
		score *= p.PurchasedPenalty
	}
	return score
}
