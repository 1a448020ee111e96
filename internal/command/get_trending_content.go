package command

import (
	"context"
	"fmt"

	"github.com/BotGJ16/ContentVault/internal/datasources"
	"github.com/BotGJ16/ContentVault/internal/domain"
	"github.com/BotGJ16/ContentVault/internal/metrics"
)

// GetTrendingContentRequest is the request for the GetTrendingContent command.
type GetTrendingContentRequest struct {
	Limit int
}

// GetTrendingContentConfig holds configuration for trending ranking.
type GetTrendingContentConfig struct {
	Trending domain.TrendingConfig

	// CandidateLimit caps how many of the most accessed items are ranked.
	CandidateLimit int
}

// GetTrendingContent ranks active content by time-decayed access count.
type GetTrendingContent struct {
	ContentLister datasources.ContentLister
	Cache         datasources.TrendingCache
	Config        GetTrendingContentConfig
	Clock         Clock
}

// NewGetTrendingContent creates a properly initialized GetTrendingContent command.
func NewGetTrendingContent(
	contentLister datasources.ContentLister,
	cache datasources.TrendingCache,
	config GetTrendingContentConfig,
) *GetTrendingContent {
	return &GetTrendingContent{
		ContentLister: contentLister,
		Cache:         cache,
		Config:        config,
	}
}

func (c *GetTrendingContent) Execute(ctx context.Context, req GetTrendingContentRequest) ([]domain.Content, error) {
	logger := domain.LoggerFromContext(ctx)

	if req.Limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", domain.ErrInvalidArgument)
	}

	cached, found, err := c.Cache.GetTrending(ctx, req.Limit)
	metrics.RecordCacheLookup("trending", found, err)
	if err != nil {
		logger.WarnContext(ctx, "failed to read cached trending content", "error", err)
	} else if found {
		return cached, nil
	}

	// Ineligible content is filtered in the store too, so the candidate cap is spent on eligible items.
	candidates, err := c.ContentLister.ListContent(ctx,
		domain.ContentFilters{MinAccessCount: c.Config.Trending.MinAccessCount},
		domain.ContentListOptions{
			Ordering: domain.ContentOrderingPopular,
			Page:     1,
			PageSize: c.Config.CandidateLimit,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("listing trending candidates: %w", err)
	}

	trending := domain.RankTrending(candidates, c.Config.Trending, req.Limit, c.Clock.now())

	if err := c.Cache.SetTrending(ctx, req.Limit, trending); err != nil {
		logger.WarnContext(ctx, "failed to cache trending content", "error", err)
	}

	return trending, nil
}
