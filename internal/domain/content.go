package domain

import (
	"strings"
	"time"
)

type ContentType string

const (
	ContentTypeImage    ContentType = "image"
	ContentTypeVideo    ContentType = "video"
	ContentTypeAudio    ContentType = "audio"
	ContentTypeDocument ContentType = "document"
)

// ValidContentTypes is ordered; feature vectors rely on this order.
var ValidContentTypes = []ContentType{
	ContentTypeImage,
	ContentTypeVideo,
	ContentTypeAudio,
	ContentTypeDocument,
}

// ContentTypeFromMIME maps a MIME type onto a content type by its major part.
// PDFs and office documents arrive as application/*, so those count as documents.
func ContentTypeFromMIME(mimeType string) (ContentType, bool) {
	major, _, _ := strings.Cut(strings.ToLower(mimeType), "/")
	switch major {
	case "image":
		return ContentTypeImage, true
	case "video":
		return ContentTypeVideo, true
	case "audio":
		return ContentTypeAudio, true
	case "application", "text":
		return ContentTypeDocument, true
	default:
		return "", false
	}
}

type ContentMetadata struct {
	OriginalName string  `json:"original_name,omitempty"`
	OriginalSize int64   `json:"original_size,omitempty"`
	MimeType     string  `json:"mime_type,omitempty"`
	Duration     float64 `json:"duration,omitempty"`
	Width        int     `json:"width,omitempty"`
	Height       int     `json:"height,omitempty"`
}

type Content struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	CreatorAddress  string          `json:"creator_address"`
	Type            ContentType     `json:"type"`
	WalrusBlobID    string          `json:"walrus_blob_id"`
	EncryptionKey   string          `json:"-"`
	Price           float64         `json:"price"`
	IsPublic        bool            `json:"is_public"`
	IsFeatured      bool            `json:"is_featured"`
	UploadedAt      time.Time       `json:"uploaded_at"`
	AccessExpiresAt *time.Time      `json:"access_expires_at,omitempty"`
	TotalEarnings   float64         `json:"total_earnings"`
	AccessCount     int64           `json:"access_count"`
	IsActive        bool            `json:"is_active"`
	Tags            []string        `json:"tags"`
	Thumbnail       string          `json:"thumbnail,omitempty"`
	Metadata        ContentMetadata `json:"metadata"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// IsAccessibleBy reports whether the address may read the content without a purchase.
func (c Content) IsAccessibleBy(address string) bool {
	if c.IsPublic {
		return true
	}
	return address != "" && strings.EqualFold(c.CreatorAddress, address)
}

// DaysOld returns the fractional number of days since upload.
func (c Content) DaysOld(now time.Time) float64 {
	return now.Sub(c.UploadedAt).Hours() / 24
}

// NormalizeTags lowercases and trims tags, dropping empty ones.
func NormalizeTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			result = append(result, tag)
		}
	}
	return result
}

// ScoredContent is a recommendation: the content plus its adjusted score and a
// short human-readable justification.
type ScoredContent struct {
	Content
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

type ContentFilters struct {
	IDs            []string
	Type           ContentType
	Search         string
	CreatorAddress string
	FeaturedOnly   bool
	// MinAccessCount, if non-zero, keeps only content accessed more than this many times.
	MinAccessCount int64
}

type ContentListOptions struct {
	Ordering       ContentOrdering
	Page, PageSize int
}

type ContentOrdering string

const ContentOrderingNewest ContentOrdering = "newest"
const ContentOrderingPopular ContentOrdering = "popular"
const ContentOrderingEarnings ContentOrdering = "earnings"

var ValidContentOrderings = []ContentOrdering{
	ContentOrderingNewest,
	ContentOrderingPopular,
	ContentOrderingEarnings,
}

// ContentUpdate holds the fields a creator may change. Nil fields are left as-is.
type ContentUpdate struct {
	Title       *string
	Description *string
	Price       *float64
	IsPublic    *bool
}
