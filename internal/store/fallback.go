package store

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/prospot/prospot-api/internal/domain"
	applog "github.com/prospot/prospot-api/internal/platform/logging"
)

// Fallback chains the configured tiers: the remote store is authoritative,
// the cache answers when the remote is absent or failing, and the bundled
// seed data backs the catalog collections when nothing else has them. Users
// and reviews start empty instead of seeded.
//
// Either tier may be nil. With both nil a seeded in-memory store takes the
// remote slot, so credential-less development runs keep their writes for the
// life of the process instead of re-answering from seed.
type Fallback struct {
	remote Gateway
	cache  *Cache
}

// NewFallback builds the tiered gateway. remote and cache may be nil.
func NewFallback(remote Gateway, cache *Cache) *Fallback {
	if remote == nil && cache == nil {
		remote = NewSeededMemory()
	}
	return &Fallback{remote: remote, cache: cache}
}

// Listings loads the listing collection, seeding it on first use.
func (f *Fallback) Listings(ctx context.Context) ([]domain.Listing, error) {
	return load(ctx, f,
		func(g Gateway) ([]domain.Listing, error) { return g.Listings(ctx) },
		func(c *Cache) ([]domain.Listing, error) { return c.Listings(ctx) },
		func(c *Cache, v []domain.Listing) error { return c.SaveListings(ctx, v) },
		domain.SeedListings,
	)
}

// SaveListings writes the listing collection through every configured tier.
func (f *Fallback) SaveListings(ctx context.Context, listings []domain.Listing) error {
	return f.save(ctx,
		func(g Gateway) error { return g.SaveListings(ctx, listings) },
		func(c *Cache) error { return c.SaveListings(ctx, listings) },
	)
}

// Ads loads the advertisement collection, seeding it on first use.
func (f *Fallback) Ads(ctx context.Context) ([]domain.Advertisement, error) {
	return load(ctx, f,
		func(g Gateway) ([]domain.Advertisement, error) { return g.Ads(ctx) },
		func(c *Cache) ([]domain.Advertisement, error) { return c.Ads(ctx) },
		func(c *Cache, v []domain.Advertisement) error { return c.SaveAds(ctx, v) },
		domain.SeedAds,
	)
}

// SaveAds writes the advertisement collection through every configured tier.
func (f *Fallback) SaveAds(ctx context.Context, ads []domain.Advertisement) error {
	return f.save(ctx,
		func(g Gateway) error { return g.SaveAds(ctx, ads) },
		func(c *Cache) error { return c.SaveAds(ctx, ads) },
	)
}

// Users loads the user collection. There is no seed; a fresh deployment has
// no accounts.
func (f *Fallback) Users(ctx context.Context) ([]domain.User, error) {
	return load(ctx, f,
		func(g Gateway) ([]domain.User, error) { return g.Users(ctx) },
		func(c *Cache) ([]domain.User, error) { return c.Users(ctx) },
		func(c *Cache, v []domain.User) error { return c.SaveUsers(ctx, v) },
		func() []domain.User { return []domain.User{} },
	)
}

// SaveUsers writes the user collection through every configured tier.
func (f *Fallback) SaveUsers(ctx context.Context, users []domain.User) error {
	return f.save(ctx,
		func(g Gateway) error { return g.SaveUsers(ctx, users) },
		func(c *Cache) error { return c.SaveUsers(ctx, users) },
	)
}

// Reviews loads the review collection. Like users, it starts empty.
func (f *Fallback) Reviews(ctx context.Context) ([]domain.Review, error) {
	return load(ctx, f,
		func(g Gateway) ([]domain.Review, error) { return g.Reviews(ctx) },
		func(c *Cache) ([]domain.Review, error) { return c.Reviews(ctx) },
		func(c *Cache, v []domain.Review) error { return c.SaveReviews(ctx, v) },
		func() []domain.Review { return []domain.Review{} },
	)
}

// SaveReviews writes the review collection through every configured tier.
func (f *Fallback) SaveReviews(ctx context.Context, reviews []domain.Review) error {
	return f.save(ctx,
		func(g Gateway) error { return g.SaveReviews(ctx, reviews) },
		func(c *Cache) error { return c.SaveReviews(ctx, reviews) },
	)
}

// Warm primes every collection concurrently so the first request does not pay
// the full load cost. Called once at startup after the version check.
func (f *Fallback) Warm(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { _, err := f.Listings(ctx); return err })
	g.Go(func() error { _, err := f.Ads(ctx); return err })
	g.Go(func() error { _, err := f.Users(ctx); return err })
	g.Go(func() error { _, err := f.Reviews(ctx); return err })
	return g.Wait()
}

// CheckVersion forwards the data-version check to the cache tier.
func (f *Fallback) CheckVersion(ctx context.Context, version string) error {
	if f.cache == nil {
		return nil
	}
	return f.cache.CheckVersion(ctx, version)
}

func load[T any](
	ctx context.Context,
	f *Fallback,
	fromRemote func(Gateway) ([]T, error),
	fromCache func(*Cache) ([]T, error),
	toCache func(*Cache, []T) error,
	seed func() []T,
) ([]T, error) {
	if f.remote != nil {
		items, err := fromRemote(f.remote)
		if err == nil && len(items) > 0 {
			if f.cache != nil {
				if cacheErr := toCache(f.cache, items); cacheErr != nil {
					applog.LogWarn(ctx, "cache refresh failed", zap.Error(cacheErr))
				}
			}
			return items, nil
		}
		if err != nil {
			applog.LogWarn(ctx, "remote load failed, falling back", zap.Error(err))
		}
	}

	if f.cache != nil {
		items, err := fromCache(f.cache)
		if err == nil {
			return items, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			applog.LogWarn(ctx, "cache load failed, falling back", zap.Error(err))
		}
	}

	items := seed()
	if f.cache != nil {
		if err := toCache(f.cache, items); err != nil {
			applog.LogWarn(ctx, "seeding cache failed", zap.Error(err))
		}
	}
	return items, nil
}

// save writes through every configured tier. A remote failure degrades to a
// warning as long as the cache accepted the write, so the service keeps
// working through a remote outage.
func (f *Fallback) save(ctx context.Context, toRemote func(Gateway) error, toCache func(*Cache) error) error {
	var remoteErr error
	if f.remote != nil {
		remoteErr = toRemote(f.remote)
	}
	if f.cache != nil {
		if err := toCache(f.cache); err != nil {
			if remoteErr != nil {
				return errors.Join(remoteErr, err)
			}
			return err
		}
		if remoteErr != nil {
			applog.LogWarn(ctx, "remote save failed, cache retained the write", zap.Error(remoteErr))
			return nil
		}
		return nil
	}
	return remoteErr
}

var _ Gateway = (*Fallback)(nil)
