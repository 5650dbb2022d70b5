package store

import (
	"context"
	"sync"

	"github.com/prospot/prospot-api/internal/domain"
)

// Memory is an in-process Gateway used by tests and by local runs without
// Firestore or Redis configured. Collections are copied on the way in and out
// so callers never share slices with the store.
type Memory struct {
	mu       sync.RWMutex
	listings []domain.Listing
	ads      []domain.Advertisement
	users    []domain.User
	reviews  []domain.Review
}

// NewMemory creates an empty in-memory gateway.
func NewMemory() *Memory {
	return &Memory{}
}

// NewSeededMemory creates an in-memory gateway preloaded with the bundled
// catalog data.
func NewSeededMemory() *Memory {
	return &Memory{
		listings: domain.SeedListings(),
		ads:      domain.SeedAds(),
	}
}

func (m *Memory) Listings(context.Context) ([]domain.Listing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copySlice(m.listings), nil
}

func (m *Memory) SaveListings(_ context.Context, listings []domain.Listing) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listings = copySlice(listings)
	return nil
}

func (m *Memory) Ads(context.Context) ([]domain.Advertisement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copySlice(m.ads), nil
}

func (m *Memory) SaveAds(_ context.Context, ads []domain.Advertisement) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ads = copySlice(ads)
	return nil
}

func (m *Memory) Users(context.Context) ([]domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copySlice(m.users), nil
}

func (m *Memory) SaveUsers(_ context.Context, users []domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = copySlice(users)
	return nil
}

func (m *Memory) Reviews(context.Context) ([]domain.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copySlice(m.reviews), nil
}

func (m *Memory) SaveReviews(_ context.Context, reviews []domain.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reviews = copySlice(reviews)
	return nil
}

func copySlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

var _ Gateway = (*Memory)(nil)
