package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/BotGJ16/ContentVault/internal/datasources"
	"github.com/BotGJ16/ContentVault/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ datasources.ContentRepository = (*ContentRepository)(nil)

type contentMetadataDocument struct {
	OriginalName string  `bson:"original_name,omitempty"`
	OriginalSize int64   `bson:"original_size,omitempty"`
	MimeType     string  `bson:"mime_type,omitempty"`
	Duration     float64 `bson:"duration,omitempty"`
	Width        int     `bson:"width,omitempty"`
	Height       int     `bson:"height,omitempty"`
}

type contentDocument struct {
	ID              primitive.ObjectID      `bson:"_id,omitempty"`
	Title           string                  `bson:"title"`
	Description     string                  `bson:"description"`
	CreatorAddress  string                  `bson:"creator_address"`
	Type            string                  `bson:"type"`
	WalrusBlobID    string                  `bson:"walrus_blob_id"`
	EncryptionKey   string                  `bson:"encryption_key"`
	Price           float64                 `bson:"price"`
	IsPublic        bool                    `bson:"is_public"`
	IsFeatured      bool                    `bson:"is_featured"`
	UploadedAt      time.Time               `bson:"uploaded_at"`
	AccessExpiresAt *time.Time              `bson:"access_expires_at,omitempty"`
	TotalEarnings   float64                 `bson:"total_earnings"`
	AccessCount     int64                   `bson:"access_count"`
	IsActive        bool                    `bson:"is_active"`
	Tags            []string                `bson:"tags"`
	Thumbnail       string                  `bson:"thumbnail,omitempty"`
	Metadata        contentMetadataDocument `bson:"metadata"`
	CreatedAt       time.Time               `bson:"created_at"`
	UpdatedAt       time.Time               `bson:"updated_at"`
}

func (d contentDocument) toDomain() domain.Content {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return domain.Content{
		ID:              d.ID.Hex(),
		Title:           d.Title,
		Description:     d.Description,
		CreatorAddress:  d.CreatorAddress,
		Type:            domain.ContentType(d.Type),
		WalrusBlobID:    d.WalrusBlobID,
		EncryptionKey:   d.EncryptionKey,
		Price:           d.Price,
		IsPublic:        d.IsPublic,
		IsFeatured:      d.IsFeatured,
		UploadedAt:      d.UploadedAt,
		AccessExpiresAt: d.AccessExpiresAt,
		TotalEarnings:   d.TotalEarnings,
		AccessCount:     d.AccessCount,
		IsActive:        d.IsActive,
		Tags:            tags,
		Thumbnail:       d.Thumbnail,
		Metadata: domain.ContentMetadata{
			OriginalName: d.Metadata.OriginalName,
			OriginalSize: d.Metadata.OriginalSize,
			MimeType:     d.Metadata.MimeType,
			Duration:     d.Metadata.Duration,
			Width:        d.Metadata.Width,
			Height:       d.Metadata.Height,
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func contentDocumentFromDomain(c domain.Content) contentDocument {
	return contentDocument{
		Title:           c.Title,
		Description:     c.Description,
		CreatorAddress:  strings.ToLower(c.CreatorAddress),
		Type:            string(c.Type),
		WalrusBlobID:    c.WalrusBlobID,
		EncryptionKey:   c.EncryptionKey,
		Price:           c.Price,
		IsPublic:        c.IsPublic,
		IsFeatured:      c.IsFeatured,
		UploadedAt:      c.UploadedAt,
		AccessExpiresAt: c.AccessExpiresAt,
		TotalEarnings:   c.TotalEarnings,
		AccessCount:     c.AccessCount,
		IsActive:        c.IsActive,
		Tags:            domain.NormalizeTags(c.Tags),
		Thumbnail:       c.Thumbnail,
		Metadata: contentMetadataDocument{
			OriginalName: c.Metadata.OriginalName,
			OriginalSize: c.Metadata.OriginalSize,
			MimeType:     c.Metadata.MimeType,
			Duration:     c.Metadata.Duration,
			Width:        c.Metadata.Width,
			Height:       c.Metadata.Height,
		},
	}
}

type ContentRepository struct {
	collection *driver.Collection
	now        func() time.Time
}

func NewContentRepository(db *driver.Database) *ContentRepository {
	return &ContentRepository{
		collection: db.Collection(contentCollection),
		now:        time.Now,
	}
}

func (r *ContentRepository) FetchContent(ctx context.Context, id string) (domain.Content, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Content{}, domain.ErrContentNotFound
	}

	var doc contentDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid, "is_active": true}).Decode(&doc)
	if errors.Is(err, driver.ErrNoDocuments) {
		return domain.Content{}, domain.ErrContentNotFound
	}
	if err != nil {
		return domain.Content{}, fmt.Errorf("fetching content [%s]: %w", id, err)
	}
	return doc.toDomain(), nil
}

func (r *ContentRepository) ListContent(
	ctx context.Context,
	filters domain.ContentFilters,
	listOptions domain.ContentListOptions,
) ([]domain.Content, error) {
	filter := buildContentFilter(filters)

	findOptions := options.Find().SetSort(buildContentSort(listOptions.Ordering))
	if listOptions.PageSize > 0 {
		page := max(listOptions.Page, 1)
		findOptions.SetSkip(int64((page - 1) * listOptions.PageSize))
		findOptions.SetLimit(int64(listOptions.PageSize))
	}

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("running content query: %w", err)
	}

	var docs []contentDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding content: %w", err)
	}

	contents := make([]domain.Content, len(docs))
	for i, doc := range docs {
		contents[i] = doc.toDomain()
	}
	return contents, nil
}

func (r *ContentRepository) CountContent(ctx context.Context, filters domain.ContentFilters) (int64, error) {
	filter := buildContentFilter(filters)

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("counting matching content: %w", err)
	}
	return count, nil
}

func (r *ContentRepository) CreateContent(ctx context.Context, content domain.Content) (domain.Content, error) {
	doc := contentDocumentFromDomain(content)
	now := r.now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now
	if doc.UploadedAt.IsZero() {
		doc.UploadedAt = now
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return domain.Content{}, fmt.Errorf("inserting content: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return domain.Content{}, fmt.Errorf("unexpected inserted ID type %T", result.InsertedID)
	}
	doc.ID = oid
	return doc.toDomain(), nil
}

func (r *ContentRepository) UpdateContent(
	ctx context.Context,
	id string,
	update domain.ContentUpdate,
) (domain.Content, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Content{}, domain.ErrContentNotFound
	}

	set := bson.M{"updated_at": r.now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.IsPublic != nil {
		set["is_public"] = *update.IsPublic
	}

	var doc contentDocument
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid, "is_active": true},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, driver.ErrNoDocuments) {
		return domain.Content{}, domain.ErrContentNotFound
	}
	if err != nil {
		return domain.Content{}, fmt.Errorf("updating content [%s]: %w", id, err)
	}
	return doc.toDomain(), nil
}

func (r *ContentRepository) DeactivateContent(ctx context.Context, id string) error {
	return r.updateActive(ctx, id, bson.M{
		"$set": bson.M{"is_active": false, "updated_at": r.now().UTC()},
	})
}

func (r *ContentRepository) IncrementContentStats(
	ctx context.Context,
	id string,
	accessDelta int64,
	earningsDelta float64,
) error {
	return r.updateActive(ctx, id, bson.M{
		"$inc": bson.M{"access_count": accessDelta, "total_earnings": earningsDelta},
		"$set": bson.M{"updated_at": r.now().UTC()},
	})
}

func (r *ContentRepository) updateActive(ctx context.Context, id string, update bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrContentNotFound
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid, "is_active": true}, update)
	if err != nil {
		return fmt.Errorf("updating content [%s]: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrContentNotFound
	}
	return nil
}

func buildContentFilter(filters domain.ContentFilters) bson.M {
	filter := bson.M{"is_active": true}

	if len(filters.IDs) > 0 {
		oids := make([]primitive.ObjectID, 0, len(filters.IDs))
		for _, id := range filters.IDs {
			oid, err := primitive.ObjectIDFromHex(id)
			if err != nil {
				continue
			}
			oids = append(oids, oid)
		}
		filter["_id"] = bson.M{"$in": oids}
	}

	if filters.Type != "" {
		filter["type"] = string(filters.Type)
	}

	if filters.CreatorAddress != "" {
		filter["creator_address"] = strings.ToLower(filters.CreatorAddress)
	}

	if filters.FeaturedOnly {
		filter["is_featured"] = true
	}

	if filters.MinAccessCount > 0 {
		filter["access_count"] = bson.M{"$gt": filters.MinAccessCount}
	}

	if filters.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filters.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
			bson.M{"tags": pattern},
		}
	}

	return filter
}

func buildContentSort(ordering domain.ContentOrdering) bson.D {
	switch ordering {
	case domain.ContentOrderingPopular:
		return bson.D{{Key: "access_count", Value: -1}, {Key: "_id", Value: -1}}
	case domain.ContentOrderingEarnings:
		return bson.D{{Key: "total_earnings", Value: -1}, {Key: "_id", Value: -1}}
	default:
		return bson.D{{Key: "uploaded_at", Value: -1}, {Key: "_id", Value: -1}}
	}
}
