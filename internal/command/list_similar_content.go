package command

import (
	"context"
	"fmt"

	"github.com/BotGJ16/ContentVault/internal/datasources"
	"github.com/BotGJ16/ContentVault/internal/domain"
)

// ListSimilarContentRequest is the request for the ListSimilarContent command.
type ListSimilarContentRequest struct {
	ContentID string
	Limit     int
}

// ListSimilarContent finds content whose feature vectors are nearest to the given item's.
type ListSimilarContent struct {
	Fetcher    datasources.ContentFetcher
	Similarity datasources.SimilarContentLister
	Lister     datasources.ContentLister
}

// NewListSimilarContent creates a properly initialized ListSimilarContent command.
func NewListSimilarContent(
	fetcher datasources.ContentFetcher,
	similarity datasources.SimilarContentLister,
	lister datasources.ContentLister,
) *ListSimilarContent {
	return &ListSimilarContent{
		Fetcher:    fetcher,
		Similarity: similarity,
		Lister:     lister,
	}
}

func (c *ListSimilarContent) Execute(ctx context.Context, req ListSimilarContentRequest) ([]domain.Content, error) {
	content, err := c.Fetcher.FetchContent(ctx, req.ContentID)
	if err != nil {
		return nil, fmt.Errorf("fetching content: %w", err)
	}

	similar, err := c.Similarity.ListSimilarContent(
		ctx, []string{content.ID}, domain.ExtractContentFeatures(content), req.Limit,
	)
	if err != nil {
		return nil, fmt.Errorf("finding similar content: %w", err)
	}

	if len(similar) == 0 {
		return []domain.Content{}, nil
	}

	ids := make([]string, 0, len(similar))
	for _, s := range similar {
		ids = append(ids, s.ContentID)
	}

	// The index may still hold vectors for deleted content; the store only returns active items.
	contents, err := c.Lister.ListContent(ctx,
		domain.ContentFilters{IDs: ids},
		domain.ContentListOptions{Page: 1, PageSize: len(ids)},
	)
	if err != nil {
		return nil, fmt.Errorf("fetching similar content: %w", err)
	}

	return orderByIDs(contents, ids), nil
}
