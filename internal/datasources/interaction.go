package datasources

import (
	"context"
	"time"

	"github.com/BotGJ16/ContentVault/internal/domain"
)

// InteractionLog combines all interaction log operations.
type InteractionLog interface {
	InteractionRecorder
	InteractionLister
	PurchaseChecker
	PurchasedContentLister
	ActiveUserLister
}

type InteractionRecorder interface {
	RecordInteraction(ctx context.Context, interaction domain.Interaction) error
}

// InteractionLister returns a user's interactions, oldest first.
type InteractionLister interface {
	ListUserInteractions(ctx context.Context, userAddress string) ([]domain.Interaction, error)
}

type PurchaseChecker interface {
	HasPurchased(ctx context.Context, userAddress, contentID string) (bool, error)
}

// PurchasedContentLister pages through the distinct content a user bought, most recent first.
type PurchasedContentLister interface {
	ListPurchasedContentIDs(ctx context.Context, userAddress string, page, pageSize int) ([]string, error)
	CountPurchasedContent(ctx context.Context, userAddress string) (int64, error)
}

// ActiveUserLister lists users with at least one interaction since the given time.
type ActiveUserLister interface {
	ListActiveUsers(ctx context.Context, since time.Time) ([]string, error)
}

// NullInteractionLog is a null implementation of InteractionLog.
// It records nothing and every user has an empty history.
type NullInteractionLog struct{}

var _ InteractionLog = NullInteractionLog{}

func (NullInteractionLog) RecordInteraction(_ context.Context, _ domain.Interaction) error {
	return nil
}

func (NullInteractionLog) ListUserInteractions(_ context.Context, _ string) ([]domain.Interaction, error) {
	return nil, nil
}

func (NullInteractionLog) HasPurchased(_ context.Context, _, _ string) (bool, error) {
	return false, nil
}

func (NullInteractionLog) ListPurchasedContentIDs(_ context.Context, _ string, _, _ int) ([]string, error) {
	return nil, nil
}

func (NullInteractionLog) CountPurchasedContent(_ context.Context, _ string) (int64, error) {
	return 0, nil
}

func (NullInteractionLog) ListActiveUsers(_ context.Context, _ time.Time) ([]string, error) {
	return nil, nil
}
