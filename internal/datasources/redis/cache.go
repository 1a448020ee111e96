package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/BotGJ16/ContentVault/internal/datasources"
	"github.com/BotGJ16/ContentVault/internal/domain"
	"github.com/redis/go-redis/v9"
)

var (
	_ datasources.RecommendationCache = (*Cache)(nil)
	_ datasources.TrendingCache       = (*Cache)(nil)
)

const (
	recommendationsKeyPrefix = "recommendations:"
	trendingKey              = "trending"
)

func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing Redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("checking Redis connection: %w", err)
	}
	return client, nil
}

// Cache keeps one hash per user, keyed by requested limit, so a user's
// recommendations can be dropped in a single call.
type Cache struct {
	client             redis.Cmdable
	recommendationsTTL time.Duration
	trendingTTL        time.Duration
}

func New(client redis.Cmdable, recommendationsTTL, trendingTTL time.Duration) *Cache {
	return &Cache{
		client:             client,
		recommendationsTTL: recommendationsTTL,
		trendingTTL:        trendingTTL,
	}
}

func (c *Cache) GetRecommendations(
	ctx context.Context,
	userAddress string,
	limit int,
) ([]domain.ScoredContent, bool, error) {
	var recs []domain.ScoredContent
	found, err := c.hget(ctx, recommendationsKeyPrefix+userAddress, limit, &recs)
	return recs, found, err
}

func (c *Cache) SetRecommendations(
	ctx context.Context,
	userAddress string,
	limit int,
	recs []domain.ScoredContent,
) error {
	return c.hset(ctx, recommendationsKeyPrefix+userAddress, limit, recs, c.recommendationsTTL)
}

func (c *Cache) InvalidateRecommendations(ctx context.Context, userAddress string) error {
	if err := c.client.Del(ctx, recommendationsKeyPrefix+userAddress).Err(); err != nil {
		return fmt.Errorf("deleting cached recommendations: %w", err)
	}
	return nil
}

func (c *Cache) GetTrending(ctx context.Context, limit int) ([]domain.Content, bool, error) {
	var contents []domain.Content
	found, err := c.hget(ctx, trendingKey, limit, &contents)
	return contents, found, err
}

func (c *Cache) SetTrending(ctx context.Context, limit int, contents []domain.Content) error {
	return c.hset(ctx, trendingKey, limit, contents, c.trendingTTL)
}

func (c *Cache) hget(ctx context.Context, key string, limit int, out any) (bool, error) {
	data, err := c.client.HGet(ctx, key, strconv.Itoa(limit)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading cache key [%s]: %w", key, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decoding cache key [%s]: %w", key, err)
	}
	return true, nil
}

// hset writes one field. The expiry is set once, when the key is created, and
// later writes leave it alone so older fields cannot outlive it.
func (c *Cache) hset(ctx context.Context, key string, limit int, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding cache value: %w", err)
	}

	pipe := c.client.TxPipeline()
	pipe.HSet(ctx, key, strconv.Itoa(limit), data)
	pipe.ExpireNX(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("writing cache key [%s]: %w", key, err)
	}
	return nil
}
