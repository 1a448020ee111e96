package command

import (
	"context"
	"fmt"
	"time"

	"github.com/BotGJ16/ContentVault/internal/datasources"
	"github.com/BotGJ16/ContentVault/internal/domain"
)

// RunRecommendationGenerationRequest is the request for the RunRecommendationGeneration command.
// This command takes no parameters beyond context.
type RunRecommendationGenerationRequest struct{}

// RunRecommendationGenerationResponse reports how many users were processed.
type RunRecommendationGenerationResponse struct {
	SuccessCount int
	FailCount    int
}

// RunRecommendationGenerationConfig holds configuration for background recommendation generation.
type RunRecommendationGenerationConfig struct {
	// ActiveWithin selects users with at least one interaction in this window.
	ActiveWithin time.Duration

	// Limit is the recommendation count to precompute; it should match what the API serves.
	Limit int
}

// RecommendationRefresher recomputes and caches a user's recommendations.
type RecommendationRefresher interface {
	Refresh(ctx context.Context, req GetRecommendationsRequest) ([]domain.ScoredContent, error)
}

// RunRecommendationGeneration warms the recommendation cache for recently active users.
type RunRecommendationGeneration struct {
	ActiveUserLister datasources.ActiveUserLister
	Refresher        RecommendationRefresher
	Config           RunRecommendationGenerationConfig
	Clock            Clock
}

// NewRunRecommendationGeneration creates a properly initialized RunRecommendationGeneration command.
func NewRunRecommendationGeneration(
	activeUserLister datasources.ActiveUserLister,
	refresher RecommendationRefresher,
	config RunRecommendationGenerationConfig,
) *RunRecommendationGeneration {
	return &RunRecommendationGeneration{
		ActiveUserLister: activeUserLister,
		Refresher:        refresher,
		Config:           config,
	}
}

// Execute refreshes recommendations for every recently active user.
// A failure for one user is logged and does not stop the others.
func (c *RunRecommendationGeneration) Execute(
	ctx context.Context, _ RunRecommendationGenerationRequest,
) (RunRecommendationGenerationResponse, error) {
	logger := domain.LoggerFromContext(ctx)

	since := c.Clock.now().Add(-c.Config.ActiveWithin)
	users, err := c.ActiveUserLister.ListActiveUsers(ctx, since)
	if err != nil {
		return RunRecommendationGenerationResponse{}, fmt.Errorf("listing active users: %w", err)
	}

	if len(users) == 0 {
		logger.InfoContext(ctx, "no active users need recommendation generation")
		return RunRecommendationGenerationResponse{}, nil
	}

	logger.InfoContext(ctx, "starting recommendation generation", "user_count", len(users))

	var resp RunRecommendationGenerationResponse
	for _, user := range users {
		if err := ctx.Err(); err != nil {
			return resp, err
		}

		recs, err := c.Refresher.Refresh(ctx, GetRecommendationsRequest{
			UserAddress: user,
			Limit:       c.Config.Limit,
		})
		if err != nil {
			logger.ErrorContext(ctx, "failed to generate recommendations for user",
				"user_address", user, "error", err)
			resp.FailCount++
			continue
		}

		logger.DebugContext(ctx, "generated recommendations for user",
			"user_address", user, "count", len(recs))
		resp.SuccessCount++
	}

	logger.InfoContext(ctx, "recommendation generation complete",
		"success_count", resp.SuccessCount, "fail_count", resp.FailCount)

	return resp, nil
}
