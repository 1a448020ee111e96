package command

import (
	"context"
	"fmt"

	"github.com/BotGJ16/ContentVault/internal/datasources"
	"github.com/BotGJ16/ContentVault/internal/domain"
)

// FeaturedContentLimit is how many featured items are shown at once.
const FeaturedContentLimit = 8

// ContentPage is one page of a content listing.
type ContentPage struct {
	Data        []domain.Content
	Total       int64
	TotalPages  int
	CurrentPage int
	HasMore     bool
}

func newContentPage(data []domain.Content, total int64, page, pageSize int) ContentPage {
	if data == nil {
		data = []domain.Content{}
	}

	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}

	return ContentPage{
		Data:        data,
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
		HasMore:     page < totalPages,
	}
}

// ListContentRequest is the request for the ListContent command.
type ListContentRequest struct {
	Filters domain.ContentFilters
	Options domain.ContentListOptions
}

// ListContent returns a page of active content with totals for pagination.
type ListContent struct {
	Lister  datasources.ContentLister
	Counter datasources.ContentCounter
}

// NewListContent creates a properly initialized ListContent command.
func NewListContent(lister datasources.ContentLister, counter datasources.ContentCounter) *ListContent {
	return &ListContent{
		Lister:  lister,
		Counter: counter,
	}
}

func (c *ListContent) Execute(ctx context.Context, req ListContentRequest) (ContentPage, error) {
	contents, err := c.Lister.ListContent(ctx, req.Filters, req.Options)
	if err != nil {
		return ContentPage{}, fmt.Errorf("listing content: %w", err)
	}

	total, err := c.Counter.CountContent(ctx, req.Filters)
	if err != nil {
		return ContentPage{}, fmt.Errorf("counting content: %w", err)
	}

	return newContentPage(contents, total, req.Options.Page, req.Options.PageSize), nil
}

// ListFeaturedContent returns the most accessed featured content.
type ListFeaturedContent struct {
	Lister datasources.ContentLister
}

func (c *ListFeaturedContent) Execute(ctx context.Context, _ Empty) ([]domain.Content, error) {
	contents, err := c.Lister.ListContent(ctx,
		domain.ContentFilters{FeaturedOnly: true},
		domain.ContentListOptions{
			Ordering: domain.ContentOrderingPopular,
			Page:     1,
			PageSize: FeaturedContentLimit,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("listing featured content: %w", err)
	}
	return contents, nil
}

// ListPurchasedContentRequest is the request for the ListPurchasedContent command.
type ListPurchasedContentRequest struct {
	UserAddress    string
	Page, PageSize int
}

// ListPurchasedContent pages through the content a user has bought, most recent purchase first.
// Purchases of content that has since been deleted are skipped.
type ListPurchasedContent struct {
	Purchases datasources.PurchasedContentLister
	Lister    datasources.ContentLister
}

// NewListPurchasedContent creates a properly initialized ListPurchasedContent command.
func NewListPurchasedContent(
	purchases datasources.PurchasedContentLister,
	lister datasources.ContentLister,
) *ListPurchasedContent {
	return &ListPurchasedContent{
		Purchases: purchases,
		Lister:    lister,
	}
}

func (c *ListPurchasedContent) Execute(ctx context.Context, req ListPurchasedContentRequest) (ContentPage, error) {
	total, err := c.Purchases.CountPurchasedContent(ctx, req.UserAddress)
	if err != nil {
		return ContentPage{}, fmt.Errorf("counting purchased content: %w", err)
	}

	ids, err := c.Purchases.ListPurchasedContentIDs(ctx, req.UserAddress, req.Page, req.PageSize)
	if err != nil {
		return ContentPage{}, fmt.Errorf("listing purchased content IDs: %w", err)
	}

	if len(ids) == 0 {
		return newContentPage(nil, total, req.Page, req.PageSize), nil
	}

	contents, err := c.Lister.ListContent(ctx,
		domain.ContentFilters{IDs: ids},
		domain.ContentListOptions{Page: 1, PageSize: len(ids)},
	)
	if err != nil {
		return ContentPage{}, fmt.Errorf("fetching purchased content: %w", err)
	}

	return newContentPage(orderByIDs(contents, ids), total, req.Page, req.PageSize), nil
}

// orderByIDs returns contents in the order of ids, dropping IDs with no match.
func orderByIDs(contents []domain.Content, ids []string) []domain.Content {
	byID := make(map[string]domain.Content, len(contents))
	for _, c := range contents {
		byID[c.ID] = c
	}

	result := make([]domain.Content, 0, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			result = append(result, c)
		}
	}
	return result
}

// GetContent fetches a single active content item.
type GetContent struct {
	Fetcher datasources.ContentFetcher
}

func (c *GetContent) Execute(ctx context.Context, id string) (domain.Content, error) {
	content, err := c.Fetcher.FetchContent(ctx, id)
	if err != nil {
		return domain.Content{}, fmt.Errorf("fetching content: %w", err)
	}
	return content, nil
}
