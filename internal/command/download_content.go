package command

import (
	"context"
	"fmt"

	"github.com/BotGJ16/ContentVault/internal/datasources"
	"github.com/BotGJ16/ContentVault/internal/domain"
)

// DownloadContentRequest is the request for the DownloadContent command.
type DownloadContentRequest struct {
	ContentID   string
	UserAddress string
}

// DownloadContentResponse is the decrypted file.
type DownloadContentResponse struct {
	Data     []byte
	FileName string
	MimeType string
}

// DownloadContent returns the decrypted payload to users allowed to read it:
// anyone for public content, the creator, or a user with a recorded purchase.
type DownloadContent struct {
	Fetcher         datasources.ContentFetcher
	PurchaseChecker datasources.PurchaseChecker
	BlobReader      datasources.BlobReader
	Encrypter       datasources.ContentEncrypter
}

// NewDownloadContent creates a properly initialized DownloadContent command.
func NewDownloadContent(
	fetcher datasources.ContentFetcher,
	purchaseChecker datasources.PurchaseChecker,
	blobReader datasources.BlobReader,
	encrypter datasources.ContentEncrypter,
) *DownloadContent {
	return &DownloadContent{
		Fetcher:         fetcher,
		PurchaseChecker: purchaseChecker,
		BlobReader:      blobReader,
		Encrypter:       encrypter,
	}
}

func (c *DownloadContent) Execute(ctx context.Context, req DownloadContentRequest) (DownloadContentResponse, error) {
	content, err := c.Fetcher.FetchContent(ctx, req.ContentID)
	if err != nil {
		return DownloadContentResponse{}, fmt.Errorf("fetching content: %w", err)
	}

	if !content.IsAccessibleBy(req.UserAddress) {
		if req.UserAddress == "" {
			return DownloadContentResponse{}, domain.ErrForbidden
		}

		purchased, err := c.PurchaseChecker.HasPurchased(ctx, req.UserAddress, content.ID)
		if err != nil {
			return DownloadContentResponse{}, fmt.Errorf("checking purchase: %w", err)
		}
		if !purchased {
			return DownloadContentResponse{}, domain.ErrForbidden
		}
	}

	ciphertext, err := c.BlobReader.ReadBlob(ctx, content.WalrusBlobID)
	if err != nil {
		return DownloadContentResponse{}, fmt.Errorf("reading blob: %w", err)
	}

	data, err := c.Encrypter.Decrypt(content.EncryptionKey, ciphertext)
	if err != nil {
		return DownloadContentResponse{}, fmt.Errorf("decrypting content: %w", err)
	}

	return DownloadContentResponse{
		Data:     data,
		FileName: content.Metadata.OriginalName,
		MimeType: content.Metadata.MimeType,
	}, nil
}
