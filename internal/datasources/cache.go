package datasources

import (
	"context"

	"github.com/BotGJ16/ContentVault/internal/domain"
)

// RecommendationCache stores computed recommendations per user.
// Get returns found=false on a miss.
type RecommendationCache interface {
	GetRecommendations(ctx context.Context, userAddress string, limit int) ([]domain.ScoredContent, bool, error)
	SetRecommendations(ctx context.Context, userAddress string, limit int, recs []domain.ScoredContent) error
	InvalidateRecommendations(ctx context.Context, userAddress string) error
}

// TrendingCache stores the most recent trending ranking.
type TrendingCache interface {
	GetTrending(ctx context.Context, limit int) ([]domain.Content, bool, error)
	SetTrending(ctx context.Context, limit int, contents []domain.Content) error
}

// NullCache never hits.
type NullCache struct{}

var (
	_ RecommendationCache = NullCache{}
	_ TrendingCache       = NullCache{}
)

func (NullCache) GetRecommendations(_ context.Context, _ string, _ int) ([]domain.ScoredContent, bool, error) {
	return nil, false, nil
}

func (NullCache) SetRecommendations(_ context.Context, _ string, _ int, _ []domain.ScoredContent) error {
	return nil
}

func (NullCache) InvalidateRecommendations(_ context.Context, _ string) error {
	return nil
}

func (NullCache) GetTrending(_ context.Context, _ int) ([]domain.Content, bool, error) {
	return nil, false, nil
}

func (NullCache) SetTrending(_ context.Context, _ int, _ []domain.Content) error {
	return nil
}
