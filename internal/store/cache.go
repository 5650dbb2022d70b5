package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/prospot/prospot-api/internal/domain"
	applog "github.com/prospot/prospot-api/internal/platform/logging"
)

// Cache keys. Each collection is stored as a single JSON blob.
const (
	keyListings    = "prospot:listings"
	keyAds         = "prospot:ads"
	keyUsers       = "prospot:users"
	keyReviews     = "prospot:reviews"
	keyDataVersion = "prospot:data_version"
)

// ErrCacheMiss reports that a collection blob is absent or unreadable.
var ErrCacheMiss = fmt.Errorf("store: cache miss")

// Cache is the Redis tier. Collections are cached as whole JSON blobs; a blob
// that fails to decode is deleted and treated as a miss.
type Cache struct {
	rdb *redis.Client
}

// NewCache creates a Redis-backed cache tier.
func NewCache(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

// Listings loads the cached listing blob.
func (c *Cache) Listings(ctx context.Context) ([]domain.Listing, error) {
	return loadBlob[domain.Listing](ctx, c, keyListings)
}

// SaveListings replaces the cached listing blob.
func (c *Cache) SaveListings(ctx context.Context, listings []domain.Listing) error {
	return saveBlob(ctx, c, keyListings, listings)
}

// Ads loads the cached advertisement blob.
func (c *Cache) Ads(ctx context.Context) ([]domain.Advertisement, error) {
	return loadBlob[domain.Advertisement](ctx, c, keyAds)
}

// SaveAds replaces the cached advertisement blob.
func (c *Cache) SaveAds(ctx context.Context, ads []domain.Advertisement) error {
	return saveBlob(ctx, c, keyAds, ads)
}

// Users loads the cached user blob.
func (c *Cache) Users(ctx context.Context) ([]domain.User, error) {
	return loadBlob[domain.User](ctx, c, keyUsers)
}

// SaveUsers replaces the cached user blob.
func (c *Cache) SaveUsers(ctx context.Context, users []domain.User) error {
	return saveBlob(ctx, c, keyUsers, users)
}

// Reviews loads the cached review blob.
func (c *Cache) Reviews(ctx context.Context) ([]domain.Review, error) {
	return loadBlob[domain.Review](ctx, c, keyReviews)
}

// SaveReviews replaces the cached review blob.
func (c *Cache) SaveReviews(ctx context.Context, reviews []domain.Review) error {
	return saveBlob(ctx, c, keyReviews, reviews)
}

// CheckVersion compares the stored data-version marker with the configured one.
// On mismatch the catalog and ad blobs are dropped so they reload from seed or
// remote data; user and review blobs survive version bumps.
func (c *Cache) CheckVersion(ctx context.Context, version string) error {
	stored, err := c.rdb.Get(ctx, keyDataVersion).Result()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("store: reading data version: %w", err)
	}
	if stored == version {
		return nil
	}
	applog.LogInfo(ctx, "data version changed, dropping catalog cache",
		zap.String("stored", stored),
		zap.String("current", version),
	)
	if err := c.rdb.Del(ctx, keyListings, keyAds).Err(); err != nil {
		return fmt.Errorf("store: dropping stale blobs: %w", err)
	}
	if err := c.rdb.Set(ctx, keyDataVersion, version, 0).Err(); err != nil {
		return fmt.Errorf("store: writing data version: %w", err)
	}
	return nil
}

func loadBlob[T any](ctx context.Context, c *Cache, key string) ([]T, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("store: reading %s: %w", key, err)
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		applog.LogWarn(ctx, "discarding corrupt cache blob",
			zap.String("key", key),
			zap.Error(err),
		)
		if delErr := c.rdb.Del(ctx, key).Err(); delErr != nil {
			return nil, fmt.Errorf("store: dropping corrupt %s: %w", key, delErr)
		}
		return nil, ErrCacheMiss
	}
	return out, nil
}

func saveBlob[T any](ctx context.Context, c *Cache, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("store: encoding %s: %w", key, err)
	}
	if err := c.rdb.Set(ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("store: writing %s: %w", key, err)
	}
	return nil
}

var _ Gateway = (*Cache)(nil)
