package command

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/BotGJ16/ContentVault/internal/datasources"
	"github.com/BotGJ16/ContentVault/internal/domain"
	"github.com/BotGJ16/ContentVault/internal/metrics"
)

// GetRecommendationsRequest is the request for the GetRecommendations command.
type GetRecommendationsRequest struct {
	UserAddress string
	Limit       int
}

// GetRecommendationsConfig holds configuration for per-user recommendation scoring.
type GetRecommendationsConfig struct {
	// CandidateLimit caps how many of the newest active items are scored per request.
	CandidateLimit int

	// Concurrency bounds how many candidates are scored at once.
	Concurrency int

	Policy domain.RankingPolicy
}

// GetRecommendations scores active content against a user's interaction history.
// Results are cached per user and limit until the user's next interaction.
type GetRecommendations struct {
	InteractionLister datasources.InteractionLister
	ContentLister     datasources.ContentLister
	Cache             datasources.RecommendationCache
	Scorer            domain.Scorer
	Config            GetRecommendationsConfig
	Clock             Clock
}

// NewGetRecommendations creates a properly initialized GetRecommendations command.
func NewGetRecommendations(
	interactionLister datasources.InteractionLister,
	contentLister datasources.ContentLister,
	cache datasources.RecommendationCache,
	scorer domain.Scorer,
	config GetRecommendationsConfig,
) *GetRecommendations {
	return &GetRecommendations{
		InteractionLister: interactionLister,
		ContentLister:     contentLister,
		Cache:             cache,
		Scorer:            scorer,
		Config:            config,
	}
}

// Execute returns cached recommendations if present, computing them otherwise.
func (c *GetRecommendations) Execute(
	ctx context.Context, req GetRecommendationsRequest,
) ([]domain.ScoredContent, error) {
	logger := domain.LoggerFromContext(ctx)

	if req.Limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", domain.ErrInvalidArgument)
	}

	cached, found, err := c.Cache.GetRecommendations(ctx, req.UserAddress, req.Limit)
	metrics.RecordCacheLookup("recommendations", found, err)
	if err != nil {
		logger.WarnContext(ctx, "failed to read cached recommendations", "error", err)
	} else if found {
		return cached, nil
	}

	return c.Refresh(ctx, req)
}

// Refresh computes recommendations from the interaction log and content store,
// replacing whatever was cached. Any fetch failure fails the whole request.
func (c *GetRecommendations) Refresh(
	ctx context.Context, req GetRecommendationsRequest,
) (recs []domain.ScoredContent, err error) {
	logger := domain.LoggerFromContext(ctx)

	start := time.Now()
	defer func() {
		metrics.RecordRecommendation(time.Since(start), err)
	}()

	interactions, err := c.InteractionLister.ListUserInteractions(ctx, req.UserAddress)
	if err != nil {
		return nil, fmt.Errorf("listing user interactions: %w", err)
	}

	candidates, err := c.ContentLister.ListContent(ctx, domain.ContentFilters{}, domain.ContentListOptions{
		Ordering: domain.ContentOrderingNewest,
		Page:     1,
		PageSize: c.Config.CandidateLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("listing candidate content: %w", err)
	}

	sc := domain.NewScoringContext(c.Clock.now(), rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	if c.Scorer != nil {
		sc.Scorer = c.Scorer
	}
	sc.Policy = c.Config.Policy
	sc.Concurrency = c.Config.Concurrency
	sc.OnFallback = func(contentID string, err error) {
		metrics.ScoringFallbacks.Inc()
		logger.WarnContext(ctx, "scoring failed, using fallback score",
			"content_id", contentID, "error", err)
	}

	recs, err = domain.Recommend(ctx, sc, interactions, candidates, req.Limit)
	if err != nil {
		return nil, err
	}

	if err := c.Cache.SetRecommendations(ctx, req.UserAddress, req.Limit, recs); err != nil {
		logger.WarnContext(ctx, "failed to cache recommendations", "error", err)
	}

	logger.DebugContext(ctx, "computed recommendations",
		"user_address", req.UserAddress, "candidates", len(candidates), "results", len(recs))

	return recs, nil
}
