package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/BotGJ16/ContentVault/internal/datasources"
	"github.com/BotGJ16/ContentVault/internal/domain"
)

// CreatorShare is the fraction of each purchase or tip credited to the creator.
const CreatorShare = 0.95

// PurchaseContentRequest is the request for the PurchaseContent command.
type PurchaseContentRequest struct {
	ContentID   string  `validate:"required"`
	UserAddress string  `validate:"required"`
	Price       float64 `validate:"gte=0"`
}

// PurchaseContentResponse carries the key needed to decrypt the purchased blob.
type PurchaseContentResponse struct {
	EncryptionKey string
}

// PurchaseContent grants a user access to paid content.
type PurchaseContent struct {
	Fetcher          datasources.ContentFetcher
	StatsIncrementer datasources.ContentStatsIncrementer
	Recorder         datasources.InteractionRecorder
	Cache            datasources.RecommendationCache
	Users            datasources.UserStatsIncrementer
	Clock            Clock
}

// NewPurchaseContent creates a properly initialized PurchaseContent command.
func NewPurchaseContent(
	fetcher datasources.ContentFetcher,
	statsIncrementer datasources.ContentStatsIncrementer,
	recorder datasources.InteractionRecorder,
	cache datasources.RecommendationCache,
	users datasources.UserStatsIncrementer,
) *PurchaseContent {
	return &PurchaseContent{
		Fetcher:          fetcher,
		StatsIncrementer: statsIncrementer,
		Recorder:         recorder,
		Cache:            cache,
		Users:            users,
	}
}

// Execute records the purchase before crediting the creator. Once the purchase
// is recorded the key is returned even if crediting fails, so a client retry
// cannot record the purchase twice.
func (c *PurchaseContent) Execute(ctx context.Context, req PurchaseContentRequest) (PurchaseContentResponse, error) {
	if err := validateRequest(req); err != nil {
		return PurchaseContentResponse{}, err
	}

	content, err := c.Fetcher.FetchContent(ctx, req.ContentID)
	if err != nil {
		return PurchaseContentResponse{}, fmt.Errorf("fetching content: %w", err)
	}

	if content.IsPublic {
		return PurchaseContentResponse{}, domain.ErrContentIsFree
	}
	if strings.EqualFold(content.CreatorAddress, req.UserAddress) {
		return PurchaseContentResponse{}, domain.ErrOwnContent
	}

	interaction := domain.NewInteraction(req.UserAddress, content, domain.InteractionTypePurchase, req.Price, c.Clock.now())
	if err := logInteraction(ctx, c.Recorder, c.Cache, interaction); err != nil {
		return PurchaseContentResponse{}, err
	}

	if err := c.StatsIncrementer.IncrementContentStats(ctx, content.ID, 1, req.Price*CreatorShare); err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "failed to credit purchase",
			"content_id", content.ID, "user_address", req.UserAddress, "price", req.Price, "error", err)
	}

	bumpUserStats(ctx, c.Users, req.UserAddress, domain.UserStats{TotalPurchases: 1})

	domain.LoggerFromContext(ctx).InfoContext(ctx, "content purchased",
		"content_id", content.ID, "user_address", req.UserAddress, "price", req.Price)

	return PurchaseContentResponse{EncryptionKey: content.EncryptionKey}, nil
}

// TipContentRequest is the request for the TipContent command.
type TipContentRequest struct {
	ContentID   string  `validate:"required"`
	UserAddress string  `validate:"required"`
	Amount      float64 `validate:"gt=0"`
}

// TipContent credits a creator with a tip against one of their items.
type TipContent struct {
	Fetcher          datasources.ContentFetcher
	StatsIncrementer datasources.ContentStatsIncrementer
	Recorder         datasources.InteractionRecorder
	Cache            datasources.RecommendationCache
	Users            datasources.UserStatsIncrementer
	Clock            Clock
}

// NewTipContent creates a properly initialized TipContent command.
func NewTipContent(
	fetcher datasources.ContentFetcher,
	statsIncrementer datasources.ContentStatsIncrementer,
	recorder datasources.InteractionRecorder,
	cache datasources.RecommendationCache,
	users datasources.UserStatsIncrementer,
) *TipContent {
	return &TipContent{
		Fetcher:          fetcher,
		StatsIncrementer: statsIncrementer,
		Recorder:         recorder,
		Cache:            cache,
		Users:            users,
	}
}

// Execute records the tip before crediting the creator; a failed credit is logged, not returned.
func (c *TipContent) Execute(ctx context.Context, req TipContentRequest) (Empty, error) {
	if err := validateRequest(req); err != nil {
		return Empty{}, err
	}

	content, err := c.Fetcher.FetchContent(ctx, req.ContentID)
	if err != nil {
		return Empty{}, fmt.Errorf("fetching content: %w", err)
	}

	interaction := domain.NewInteraction(req.UserAddress, content, domain.InteractionTypeTip, req.Amount, c.Clock.now())
	if err := logInteraction(ctx, c.Recorder, c.Cache, interaction); err != nil {
		return Empty{}, err
	}

	if err := c.StatsIncrementer.IncrementContentStats(ctx, content.ID, 0, req.Amount*CreatorShare); err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "failed to credit tip",
			"content_id", content.ID, "user_address", req.UserAddress, "amount", req.Amount, "error", err)
	}

	bumpUserStats(ctx, c.Users, req.UserAddress, domain.UserStats{TotalTips: 1})

	return Empty{}, nil
}
