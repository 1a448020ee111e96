package domain

import (
	"math"
	"sort"
	"time"
)

// TrendingConfig controls time-decayed popularity ranking.
type TrendingConfig struct {
	// DecayDays is the decay constant: score = accessCount * exp(-daysOld / DecayDays).
	DecayDays float64

	// MinAccessCount excludes content with this many accesses or fewer.
	MinAccessCount int64
}

func DefaultTrendingConfig() TrendingConfig {
	return TrendingConfig{
		DecayDays:      7,
		MinAccessCount: 10,
	}
}

// TrendingScore decays the access count exponentially by content age.
func TrendingScore(accessCount int64, daysOld, decayDays float64) float64 {
	return float64(accessCount) * math.Exp(-daysOld/decayDays)
}

// RankTrending filters out rarely accessed content, then orders the rest by
// descending trending score and truncates to limit. Ties keep input order.
func RankTrending(contents []Content, config TrendingConfig, limit int, now time.Time) []Content {
	type scored struct {
		content Content
		score   float64
	}

	candidates := make([]scored, 0, len(contents))
	for _, c := range contents {
		if c.AccessCount <= config.MinAccessCount {
			continue
		}
		candidates = append(candidates, scored{
			content: c,
			score:   TrendingScore(c.AccessCount, c.DaysOld(now), config.DecayDays),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if limit >= 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	result := make([]Content, len(candidates))
	for i, c := range candidates {
		result[i] = c.content
	}
	return result
}
