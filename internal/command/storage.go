package command

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/BotGJ16/ContentVault/internal/datasources"
	"github.com/BotGJ16/ContentVault/internal/domain"
)

// GetStorageStatus reports the blob network's status as returned by the network.
type GetStorageStatus struct {
	Inspector datasources.StorageInspector
}

func (c *GetStorageStatus) Execute(ctx context.Context, _ Empty) (json.RawMessage, error) {
	status, err := c.Inspector.StorageStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching storage status: %w", err)
	}
	return status, nil
}

// EstimateStorageCost quotes the cost of storing a payload of the given size.
type EstimateStorageCost struct {
	Inspector datasources.StorageInspector
}

func (c *EstimateStorageCost) Execute(ctx context.Context, size int64) (json.RawMessage, error) {
	if size <= 0 || size > MaxUploadSize {
		return nil, fmt.Errorf("%w: size must be between 1 and %d bytes", domain.ErrInvalidArgument, MaxUploadSize)
	}

	cost, err := c.Inspector.EstimateStorageCost(ctx, size)
	if err != nil {
		return nil, fmt.Errorf("estimating storage cost: %w", err)
	}
	return cost, nil
}

// CheckContentAvailability reports whether a content item's blob can still be found on the network.
type CheckContentAvailability struct {
	Fetcher   datasources.ContentFetcher
	Inspector datasources.StorageInspector
}

func (c *CheckContentAvailability) Execute(ctx context.Context, contentID string) (bool, error) {
	content, err := c.Fetcher.FetchContent(ctx, contentID)
	if err != nil {
		return false, fmt.Errorf("fetching content: %w", err)
	}

	exists, err := c.Inspector.BlobExists(ctx, content.WalrusBlobID)
	if err != nil {
		return false, fmt.Errorf("checking blob: %w", err)
	}
	return exists, nil
}
