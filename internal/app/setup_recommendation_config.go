package app

import (
	"time"

	"github.com/BotGJ16/ContentVault/internal/command"
	"github.com/BotGJ16/ContentVault/internal/domain"
)

// DefaultGetRecommendationsConfig returns the default config for serving recommendations.
func DefaultGetRecommendationsConfig() command.GetRecommendationsConfig {
	return command.GetRecommendationsConfig{
		CandidateLimit: 100,
		Concurrency:    8,
		Policy:         domain.DefaultRankingPolicy(),
	}
}

// DefaultGetTrendingContentConfig returns the default config for the trending list.
func DefaultGetTrendingContentConfig() command.GetTrendingContentConfig {
	return command.GetTrendingContentConfig{
		Trending:       domain.DefaultTrendingConfig(),
		CandidateLimit: 200,
	}
}

// DefaultRunRecommendationGenerationConfig returns the default config for background generation.
func DefaultRunRecommendationGenerationConfig() command.RunRecommendationGenerationConfig {
	return command.RunRecommendationGenerationConfig{
		ActiveWithin: 7 * 24 * time.Hour,
		Limit:        10,
	}
}

const (
	defaultRecommendationsCacheTTL = time.Hour
	defaultTrendingCacheTTL        = 10 * time.Minute
)
