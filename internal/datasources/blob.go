package datasources

import (
	"context"

	"github.com/BotGJ16/ContentVault/internal/domain"
)

// BlobStore persists opaque, already-encrypted payloads.
type BlobStore interface {
	BlobWriter
	BlobReader
	BlobDeleter
}

type BlobWriter interface {
	StoreBlob(ctx context.Context, data []byte, metadata domain.BlobMetadata) (domain.StoredBlob, error)
}

// BlobReader returns a blob's bytes, or domain.ErrBlobNotFound.
type BlobReader interface {
	ReadBlob(ctx context.Context, blobID string) ([]byte, error)
}

type BlobDeleter interface {
	DeleteBlob(ctx context.Context, blobID string) error
}
