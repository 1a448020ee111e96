package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/BotGJ16/ContentVault/internal/datasources"
	"github.com/BotGJ16/ContentVault/internal/domain"
)

// fetchOwnedContent returns the content if userAddress created it, or domain.ErrForbidden.
func fetchOwnedContent(
	ctx context.Context, fetcher datasources.ContentFetcher, contentID, userAddress string,
) (domain.Content, error) {
	content, err := fetcher.FetchContent(ctx, contentID)
	if err != nil {
		return domain.Content{}, fmt.Errorf("fetching content: %w", err)
	}

	if userAddress == "" || !strings.EqualFold(content.CreatorAddress, userAddress) {
		return domain.Content{}, domain.ErrForbidden
	}
	return content, nil
}

// UpdateContentRequest is the request for the UpdateContent command. Nil fields are left unchanged.
type UpdateContentRequest struct {
	ContentID   string   `validate:"required"`
	UserAddress string   `validate:"required"`
	Title       *string  `validate:"omitnil,min=1,max=200"`
	Description *string  `validate:"omitnil,min=1,max=1000"`
	Price       *float64 `validate:"omitnil,gte=0"`
	IsPublic    *bool
}

// UpdateContent lets a creator change their content's listing details.
type UpdateContent struct {
	Fetcher       datasources.ContentFetcher
	Updater       datasources.ContentUpdater
	VectorIndexer datasources.ContentVectorIndexer
}

// NewUpdateContent creates a properly initialized UpdateContent command.
func NewUpdateContent(
	fetcher datasources.ContentFetcher,
	updater datasources.ContentUpdater,
	vectorIndexer datasources.ContentVectorIndexer,
) *UpdateContent {
	return &UpdateContent{
		Fetcher:       fetcher,
		Updater:       updater,
		VectorIndexer: vectorIndexer,
	}
}

func (c *UpdateContent) Execute(ctx context.Context, req UpdateContentRequest) (domain.Content, error) {
	logger := domain.LoggerFromContext(ctx)

	if err := validateRequest(req); err != nil {
		return domain.Content{}, err
	}

	if _, err := fetchOwnedContent(ctx, c.Fetcher, req.ContentID, req.UserAddress); err != nil {
		return domain.Content{}, err
	}

	updated, err := c.Updater.UpdateContent(ctx, req.ContentID, domain.ContentUpdate{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		return domain.Content{}, fmt.Errorf("updating content: %w", err)
	}

	// Price is part of the feature vector.
	if req.Price != nil {
		if err := c.VectorIndexer.IndexContentVector(ctx, updated, domain.ExtractContentFeatures(updated)); err != nil {
			logger.WarnContext(ctx, "failed to reindex content vector", "content_id", updated.ID, "error", err)
		}
	}

	return updated, nil
}

// DeleteContentRequest is the request for the DeleteContent command.
type DeleteContentRequest struct {
	ContentID   string
	UserAddress string
}

// DeleteContent soft-deletes a creator's content. The blob is kept so existing buyers' history stays intact.
type DeleteContent struct {
	Fetcher     datasources.ContentFetcher
	Deactivator datasources.ContentDeactivator
}

// NewDeleteContent creates a properly initialized DeleteContent command.
func NewDeleteContent(fetcher datasources.ContentFetcher, deactivator datasources.ContentDeactivator) *DeleteContent {
	return &DeleteContent{
		Fetcher:     fetcher,
		Deactivator: deactivator,
	}
}

func (c *DeleteContent) Execute(ctx context.Context, req DeleteContentRequest) (Empty, error) {
	if _, err := fetchOwnedContent(ctx, c.Fetcher, req.ContentID, req.UserAddress); err != nil {
		return Empty{}, err
	}

	if err := c.Deactivator.DeactivateContent(ctx, req.ContentID); err != nil {
		return Empty{}, fmt.Errorf("deactivating content: %w", err)
	}

	domain.LoggerFromContext(ctx).InfoContext(ctx, "deleted content", "content_id", req.ContentID)
	return Empty{}, nil
}
