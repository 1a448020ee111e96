package mongo

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/BotGJ16/ContentVault/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
)

func TestBuildContentFilter(t *testing.T) {
	oid := primitive.NewObjectID()

	cases := []struct {
		name     string
		filters  domain.ContentFilters
		expected bson.M
	}{
		{
			name:     "active_only_by_default",
			expected: bson.M{"is_active": true},
		},
		{
			name: "type_creator_and_featured",
			filters: domain.ContentFilters{
				Type:           domain.ContentTypeAudio,
				CreatorAddress: "0xABC",
				FeaturedOnly:   true,
			},
			expected: bson.M{
				"is_active":       true,
				"type":            "audio",
				"creator_address": "0xabc",
				"is_featured":     true,
			},
		},
		{
			name:    "min_access_count",
			filters: domain.ContentFilters{MinAccessCount: 10},
			expected: bson.M{
				"is_active":    true,
				"access_count": bson.M{"$gt": int64(10)},
			},
		},
		{
			name:    "ids_skip_malformed",
			filters: domain.ContentFilters{IDs: []string{oid.Hex(), "not-an-id"}},
			expected: bson.M{
				"is_active": true,
				"_id":       bson.M{"$in": []primitive.ObjectID{oid}},
			},
		},
		{
			name:    "search_is_escaped",
			filters: domain.ContentFilters{Search: "a.b*"},
			expected: bson.M{
				"is_active": true,
				"$or": bson.A{
					bson.M{"title": primitive.Regex{Pattern: `a\.b\*`, Options: "i"}},
					bson.M{"description": primitive.Regex{Pattern: `a\.b\*`, Options: "i"}},
					bson.M{"tags": primitive.Regex{Pattern: `a\.b\*`, Options: "i"}},
				},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, buildContentFilter(tc.filters))
		})
	}
}

func TestBuildContentSort(t *testing.T) {
	assert.Equal(t, "uploaded_at", buildContentSort(domain.ContentOrderingNewest)[0].Key)
	assert.Equal(t, "uploaded_at", buildContentSort("")[0].Key)
	assert.Equal(t, "access_count", buildContentSort(domain.ContentOrderingPopular)[0].Key)
	assert.Equal(t, "total_earnings", buildContentSort(domain.ContentOrderingEarnings)[0].Key)
}

func setupTestDatabase(t *testing.T) *driver.Database {
	if testing.Short() {
		t.Skip("skipping MongoDB integration tests in short mode")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}

	db, err := Connect(context.Background(), uri, fmt.Sprintf("contentvault_test_%d", time.Now().UnixNano()))
	require.NoError(t, err)
	require.NoError(t, EnsureIndexes(context.Background(), db))

	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = db.Client().Disconnect(context.Background())
	})
	return db
}

func TestContentRepository(t *testing.T) {
	db := setupTestDatabase(t)
	repo := NewContentRepository(db)
	ctx := t.Context()

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	created, err := repo.CreateContent(ctx, domain.Content{
		Title:          "Sunset",
		Description:    "A photo",
		CreatorAddress: "0xCreator",
		Type:           domain.ContentTypeImage,
		WalrusBlobID:   "blob-1",
		EncryptionKey:  "key",
		Price:          0.5,
		IsActive:       true,
		Tags:           []string{" Nature ", "PHOTO"},
		UploadedAt:     now,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "0xcreator", created.CreatorAddress)
	assert.Equal(t, []string{"nature", "photo"}, created.Tags)

	fetched, err := repo.FetchContent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "key", fetched.EncryptionKey)

	require.NoError(t, repo.IncrementContentStats(ctx, created.ID, 1, 0.475))
	fetched, err = repo.FetchContent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), fetched.AccessCount)
	assert.InDelta(t, 0.475, fetched.TotalEarnings, 1e-9)

	title := "Sunrise"
	updated, err := repo.UpdateContent(ctx, created.ID, domain.ContentUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Sunrise", updated.Title)
	assert.Equal(t, "A photo", updated.Description)

	results, err := repo.ListContent(ctx, domain.ContentFilters{Search: "sunr"}, domain.ContentListOptions{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, results, 1)

	count, err := repo.CountContent(ctx, domain.ContentFilters{CreatorAddress: "0xCREATOR"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, repo.DeactivateContent(ctx, created.ID))
	_, err = repo.FetchContent(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrContentNotFound)
	assert.ErrorIs(t, repo.DeactivateContent(ctx, created.ID), domain.ErrContentNotFound)

	_, err = repo.FetchContent(ctx, "not-an-object-id")
	assert.ErrorIs(t, err, domain.ErrContentNotFound)
}

func TestUserRepository(t *testing.T) {
	db := setupTestDatabase(t)
	repo := NewUserRepository(db)
	ctx := t.Context()

	_, err := repo.GetUser(ctx, "0xnew")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	require.NoError(t, repo.IncrementUserStats(ctx, "0xNEW", domain.UserStats{TotalPurchases: 1}))
	require.NoError(t, repo.IncrementUserStats(ctx, "0xnew", domain.UserStats{ContentViews: 2}))
	require.NoError(t, repo.MarkCreator(ctx, "0xnew"))

	user, err := repo.GetUser(ctx, "0xNew")
	require.NoError(t, err)
	assert.Equal(t, "0xnew", user.Address)
	assert.True(t, user.IsCreator)
	assert.Equal(t, domain.UserStats{ContentViews: 2, TotalPurchases: 1}, user.Stats)
	assert.False(t, user.JoinedAt.IsZero())
}
