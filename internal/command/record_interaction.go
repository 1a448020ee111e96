package command

import (
	"context"
	"fmt"

	"github.com/BotGJ16/ContentVault/internal/datasources"
	"github.com/BotGJ16/ContentVault/internal/domain"
)

// logInteraction records the interaction, then drops the user's cached
// recommendations since their history changed.
func logInteraction(
	ctx context.Context,
	recorder datasources.InteractionRecorder,
	cache datasources.RecommendationCache,
	interaction domain.Interaction,
) error {
	if err := recorder.RecordInteraction(ctx, interaction); err != nil {
		return fmt.Errorf("recording %s interaction: %w", interaction.Type, err)
	}

	if err := cache.InvalidateRecommendations(ctx, interaction.UserAddress); err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "failed to invalidate cached recommendations",
			"user_address", interaction.UserAddress, "error", err)
	}
	return nil
}

// bumpUserStats is best-effort; user stats are display-only.
func bumpUserStats(
	ctx context.Context, users datasources.UserStatsIncrementer, address string, delta domain.UserStats,
) {
	if err := users.IncrementUserStats(ctx, address, delta); err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "failed to update user stats",
			"user_address", address, "error", err)
	}
}

// RecordInteractionRequest is the request for the RecordInteraction command.
type RecordInteractionRequest struct {
	ContentID   string                 `validate:"required"`
	UserAddress string                 `validate:"required"`
	Type        domain.InteractionType `validate:"oneof=view like share bookmark"`
}

// RecordInteraction logs a free interaction. Purchases and tips have their own commands.
type RecordInteraction struct {
	Fetcher          datasources.ContentFetcher
	StatsIncrementer datasources.ContentStatsIncrementer
	Recorder         datasources.InteractionRecorder
	Cache            datasources.RecommendationCache
	Users            datasources.UserStatsIncrementer
	Clock            Clock
}

// NewRecordInteraction creates a properly initialized RecordInteraction command.
func NewRecordInteraction(
	fetcher datasources.ContentFetcher,
	statsIncrementer datasources.ContentStatsIncrementer,
	recorder datasources.InteractionRecorder,
	cache datasources.RecommendationCache,
	users datasources.UserStatsIncrementer,
) *RecordInteraction {
	return &RecordInteraction{
		Fetcher:          fetcher,
		StatsIncrementer: statsIncrementer,
		Recorder:         recorder,
		Cache:            cache,
		Users:            users,
	}
}

func (c *RecordInteraction) Execute(ctx context.Context, req RecordInteractionRequest) (Empty, error) {
	if err := validateRequest(req); err != nil {
		return Empty{}, err
	}

	content, err := c.Fetcher.FetchContent(ctx, req.ContentID)
	if err != nil {
		return Empty{}, fmt.Errorf("fetching content: %w", err)
	}

	interaction := domain.NewInteraction(req.UserAddress, content, req.Type, 0, c.Clock.now())
	if err := logInteraction(ctx, c.Recorder, c.Cache, interaction); err != nil {
		return Empty{}, err
	}

	if req.Type == domain.InteractionTypeView {
		if err := c.StatsIncrementer.IncrementContentStats(ctx, content.ID, 1, 0); err != nil {
			return Empty{}, fmt.Errorf("incrementing access count: %w", err)
		}
		bumpUserStats(ctx, c.Users, req.UserAddress, domain.UserStats{ContentViews: 1})
	}

	return Empty{}, nil
}
