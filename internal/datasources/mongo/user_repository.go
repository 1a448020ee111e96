package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BotGJ16/ContentVault/internal/datasources"
	"github.com/BotGJ16/ContentVault/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ datasources.UserRepository = (*UserRepository)(nil)

type userDocument struct {
	Address    string `bson:"address"`
	Username   string `bson:"username,omitempty"`
	Avatar     string `bson:"avatar,omitempty"`
	Bio        string `bson:"bio,omitempty"`
	IsCreator  bool   `bson:"is_creator"`
	IsVerified bool   `bson:"is_verified"`
	Stats      struct {
		ContentViews   int64 `bson:"content_views"`
		TotalTips      int64 `bson:"total_tips"`
		TotalPurchases int64 `bson:"total_purchases"`
	} `bson:"stats"`
	JoinedAt time.Time `bson:"joined_at"`
}

func (d userDocument) toDomain() domain.User {
	return domain.User{
		Address:    d.Address,
		Username:   d.Username,
		Avatar:     d.Avatar,
		Bio:        d.Bio,
		IsCreator:  d.IsCreator,
		IsVerified: d.IsVerified,
		Stats: domain.UserStats{
			ContentViews:   d.Stats.ContentViews,
			TotalTips:      d.Stats.TotalTips,
			TotalPurchases: d.Stats.TotalPurchases,
		},
		JoinedAt: d.JoinedAt,
	}
}

type UserRepository struct {
	collection *driver.Collection
	now        func() time.Time
}

func NewUserRepository(db *driver.Database) *UserRepository {
	return &UserRepository{
		collection: db.Collection(usersCollection),
		now:        time.Now,
	}
}

func (r *UserRepository) GetUser(ctx context.Context, address string) (domain.User, error) {
	var doc userDocument
	err := r.collection.FindOne(ctx, bson.M{"address": strings.ToLower(address)}).Decode(&doc)
	if errors.Is(err, driver.ErrNoDocuments) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("fetching user [%s]: %w", address, err)
	}
	return doc.toDomain(), nil
}

// IncrementUserStats creates missing users on the fly; the address filter seeds the new document.
func (r *UserRepository) IncrementUserStats(ctx context.Context, address string, delta domain.UserStats) error {
	return r.upsert(ctx, address, bson.M{
		"$inc": bson.M{
			"stats.content_views":   delta.ContentViews,
			"stats.total_tips":      delta.TotalTips,
			"stats.total_purchases": delta.TotalPurchases,
		},
		"$setOnInsert": bson.M{
			"is_creator":  false,
			"is_verified": false,
			"joined_at":   r.now().UTC(),
		},
	})
}

func (r *UserRepository) MarkCreator(ctx context.Context, address string) error {
	return r.upsert(ctx, address, bson.M{
		"$set": bson.M{"is_creator": true},
		"$setOnInsert": bson.M{
			"is_verified": false,
			"joined_at":   r.now().UTC(),
		},
	})
}

func (r *UserRepository) upsert(ctx context.Context, address string, update bson.M) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"address": strings.ToLower(address)},
		update,
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upserting user [%s]: %w", address, err)
	}
	return nil
}
