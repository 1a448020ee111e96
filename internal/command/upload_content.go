package command

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BotGJ16/ContentVault/internal/datasources"
	"github.com/BotGJ16/ContentVault/internal/domain"
	"github.com/BotGJ16/ContentVault/internal/metrics"
)

// MaxUploadSize is the largest payload accepted for upload.
const MaxUploadSize = 100 << 20

// allowedUploads maps each accepted file extension to the MIME types it may arrive with.
var allowedUploads = map[string][]string{
	".jpeg": {"image/jpeg"},
	".jpg":  {"image/jpeg"},
	".png":  {"image/png"},
	".gif":  {"image/gif"},
	".mp4":  {"video/mp4"},
	".mp3":  {"audio/mpeg", "audio/mp3"},
	".pdf":  {"application/pdf"},
	".doc":  {"application/msword"},
	".docx": {"application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
}

// checkFileType requires both the extension and the MIME type to be on the allow-list.
func checkFileType(fileName, mimeType string) error {
	ext := strings.ToLower(filepath.Ext(fileName))
	mimeTypes, ok := allowedUploads[ext]
	if !ok {
		return fmt.Errorf("%w: file type %q not allowed", domain.ErrInvalidArgument, ext)
	}

	mediaType, _, _ := strings.Cut(strings.ToLower(mimeType), ";")
	mediaType = strings.TrimSpace(mediaType)
	for _, allowed := range mimeTypes {
		if mediaType == allowed {
			return nil
		}
	}
	return fmt.Errorf("%w: MIME type %q not allowed for %s files", domain.ErrInvalidArgument, mimeType, ext)
}

// UploadContentRequest is the request for the UploadContent command.
type UploadContentRequest struct {
	CreatorAddress string  `validate:"required"`
	Title          string  `validate:"required,max=200"`
	Description    string  `validate:"required,max=1000"`
	Price          float64 `validate:"gte=0"`
	IsPublic       bool
	Tags           []string
	Thumbnail      string
	FileName       string `validate:"required"`
	MimeType       string `validate:"required"`
	Data           []byte
}

// UploadContent encrypts a file, stores it on the blob network and records it as content.
type UploadContent struct {
	Encrypter     datasources.ContentEncrypter
	BlobStore     datasources.BlobStore
	Creator       datasources.ContentCreator
	CreatorMarker datasources.CreatorMarker
	VectorIndexer datasources.ContentVectorIndexer
	Clock         Clock
}

// NewUploadContent creates a properly initialized UploadContent command.
func NewUploadContent(
	encrypter datasources.ContentEncrypter,
	blobStore datasources.BlobStore,
	creator datasources.ContentCreator,
	creatorMarker datasources.CreatorMarker,
	vectorIndexer datasources.ContentVectorIndexer,
) *UploadContent {
	return &UploadContent{
		Encrypter:     encrypter,
		BlobStore:     blobStore,
		Creator:       creator,
		CreatorMarker: creatorMarker,
		VectorIndexer: vectorIndexer,
	}
}

func (c *UploadContent) Execute(ctx context.Context, req UploadContentRequest) (domain.Content, error) {
	logger := domain.LoggerFromContext(ctx)

	if err := validateRequest(req); err != nil {
		return domain.Content{}, err
	}
	if len(req.Data) == 0 {
		return domain.Content{}, fmt.Errorf("%w: file is empty", domain.ErrInvalidArgument)
	}
	if len(req.Data) > MaxUploadSize {
		return domain.Content{}, fmt.Errorf("%w: file exceeds %d bytes", domain.ErrTooLarge, MaxUploadSize)
	}
	if err := checkFileType(req.FileName, req.MimeType); err != nil {
		return domain.Content{}, err
	}

	contentType, ok := domain.ContentTypeFromMIME(req.MimeType)
	if !ok {
		return domain.Content{}, fmt.Errorf("%w: unsupported MIME type %q", domain.ErrInvalidArgument, req.MimeType)
	}

	key, err := c.Encrypter.GenerateKey()
	if err != nil {
		return domain.Content{}, fmt.Errorf("generating encryption key: %w", err)
	}

	ciphertext, err := c.Encrypter.Encrypt(key, req.Data)
	if err != nil {
		return domain.Content{}, fmt.Errorf("encrypting content: %w", err)
	}

	blob, err := c.BlobStore.StoreBlob(ctx, ciphertext, domain.BlobMetadata{
		OriginalName: req.FileName,
		OriginalSize: int64(len(req.Data)),
		Encrypted:    true,
	})
	if err != nil {
		return domain.Content{}, fmt.Errorf("storing blob: %w", err)
	}

	content, err := c.Creator.CreateContent(ctx, domain.Content{
		Title:          req.Title,
		Description:    req.Description,
		CreatorAddress: strings.ToLower(req.CreatorAddress),
		Type:           contentType,
		WalrusBlobID:   blob.BlobID,
		EncryptionKey:  key,
		Price:          req.Price,
		IsPublic:       req.IsPublic,
		UploadedAt:     c.Clock.now(),
		IsActive:       true,
		Tags:           domain.NormalizeTags(req.Tags),
		Thumbnail:      req.Thumbnail,
		Metadata: domain.ContentMetadata{
			OriginalName: req.FileName,
			OriginalSize: int64(len(req.Data)),
			MimeType:     req.MimeType,
		},
	})
	if err != nil {
		// Identical bytes stored earlier may belong to other content, so leave those alone.
		if !blob.AlreadyCertified {
			if delErr := c.BlobStore.DeleteBlob(ctx, blob.BlobID); delErr != nil {
				logger.WarnContext(ctx, "failed to delete orphaned blob",
					"blob_id", blob.BlobID, "error", delErr)
			}
		}
		return domain.Content{}, fmt.Errorf("creating content: %w", err)
	}

	metrics.UploadedBytes.WithLabelValues(string(contentType)).Add(float64(len(req.Data)))

	if err := c.CreatorMarker.MarkCreator(ctx, content.CreatorAddress); err != nil {
		logger.WarnContext(ctx, "failed to mark user as creator",
			"user_address", content.CreatorAddress, "error", err)
	}

	if err := c.VectorIndexer.IndexContentVector(ctx, content, domain.ExtractContentFeatures(content)); err != nil {
		logger.WarnContext(ctx, "failed to index content vector", "content_id", content.ID, "error", err)
	}

	logger.InfoContext(ctx, "uploaded content",
		"content_id", content.ID, "blob_id", blob.BlobID, "type", contentType, "size", len(req.Data))

	return content, nil
}
