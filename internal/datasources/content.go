package datasources

import (
	"context"

	"github.com/BotGJ16/ContentVault/internal/domain"
)

// ContentRepository combines all content store operations.
type ContentRepository interface {
	ContentFetcher
	ContentLister
	ContentCounter
	ContentCreator
	ContentUpdater
	ContentDeactivator
	ContentStatsIncrementer
}

// ContentFetcher returns active content by ID, or domain.ErrContentNotFound.
type ContentFetcher interface {
	FetchContent(ctx context.Context, id string) (domain.Content, error)
}

type ContentLister interface {
	ListContent(
		ctx context.Context,
		filters domain.ContentFilters,
		options domain.ContentListOptions,
	) ([]domain.Content, error)
}

type ContentCounter interface {
	CountContent(ctx context.Context, filters domain.ContentFilters) (int64, error)
}

// ContentCreator stores new content, returning it with its assigned ID and timestamps.
type ContentCreator interface {
	CreateContent(ctx context.Context, content domain.Content) (domain.Content, error)
}

type ContentUpdater interface {
	UpdateContent(ctx context.Context, id string, update domain.ContentUpdate) (domain.Content, error)
}

type ContentDeactivator interface {
	DeactivateContent(ctx context.Context, id string) error
}

// ContentStatsIncrementer atomically adjusts access count and earnings.
type ContentStatsIncrementer interface {
	IncrementContentStats(ctx context.Context, id string, accessDelta int64, earningsDelta float64) error
}
