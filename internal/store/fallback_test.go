package store

import (
	"context"
	"errors"
	"testing"

	"github.com/prospot/prospot-api/internal/domain"
)

// flakyRemote wraps Memory and fails every call once armed.
type flakyRemote struct {
	*Memory
	fail bool
}

var errRemoteDown = errors.New("remote unavailable")

func (r *flakyRemote) Listings(ctx context.Context) ([]domain.Listing, error) {
	if r.fail {
		return nil, errRemoteDown
	}
	return r.Memory.Listings(ctx)
}

func (r *flakyRemote) SaveListings(ctx context.Context, listings []domain.Listing) error {
	if r.fail {
		return errRemoteDown
	}
	return r.Memory.SaveListings(ctx, listings)
}

func TestFallbackSeedsWithoutTiers(t *testing.T) {
	f := NewFallback(nil, nil)
	ctx := context.Background()

	listings, err := f.Listings(ctx)
	if err != nil {
		t.Fatalf("Listings: %v", err)
	}
	if len(listings) == 0 {
		t.Fatal("expected seeded listings")
	}

	ads, err := f.Ads(ctx)
	if err != nil {
		t.Fatalf("Ads: %v", err)
	}
	if len(ads) == 0 {
		t.Fatal("expected seeded ads")
	}

	users, err := f.Users(ctx)
	if err != nil {
		t.Fatalf("Users: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected no users, got %d", len(users))
	}

	reviews, err := f.Reviews(ctx)
	if err != nil {
		t.Fatalf("Reviews: %v", err)
	}
	if len(reviews) != 0 {
		t.Fatalf("expected no reviews, got %d", len(reviews))
	}
}

func TestFallbackWithoutTiersPersistsWrites(t *testing.T) {
	f := NewFallback(nil, nil)
	ctx := context.Background()

	listings, err := f.Listings(ctx)
	if err != nil {
		t.Fatalf("Listings: %v", err)
	}
	before := len(listings)

	listings = append(listings, domain.Listing{ID: "new-1", Name: "Nuevo", Category: domain.CategoryTechnology})
	if err := f.SaveListings(ctx, listings); err != nil {
		t.Fatalf("SaveListings: %v", err)
	}

	got, err := f.Listings(ctx)
	if err != nil {
		t.Fatalf("Listings after save: %v", err)
	}
	if len(got) != before+1 {
		t.Fatalf("expected %d listings after save, got %d", before+1, len(got))
	}
	found := false
	for _, l := range got {
		if l.ID == "new-1" {
			found = true
		}
	}
	if !found {
		t.Fatal("saved listing missing on reload")
	}

	if err := f.SaveUsers(ctx, []domain.User{{ID: "u-1", Name: "Ana"}}); err != nil {
		t.Fatalf("SaveUsers: %v", err)
	}
	users, err := f.Users(ctx)
	if err != nil {
		t.Fatalf("Users after save: %v", err)
	}
	if len(users) != 1 || users[0].ID != "u-1" {
		t.Fatalf("expected saved user on reload, got %+v", users)
	}
}

func TestFallbackPrefersRemote(t *testing.T) {
	remote := NewMemory()
	ctx := context.Background()
	want := []domain.Listing{{ID: "r-1", Name: "Remote One", Category: domain.CategoryHomeRepair}}
	if err := remote.SaveListings(ctx, want); err != nil {
		t.Fatalf("SaveListings: %v", err)
	}

	f := NewFallback(remote, nil)
	got, err := f.Listings(ctx)
	if err != nil {
		t.Fatalf("Listings: %v", err)
	}
	if len(got) != 1 || got[0].ID != "r-1" {
		t.Fatalf("expected remote listing, got %+v", got)
	}
}

func TestFallbackRemoteFailureFallsThrough(t *testing.T) {
	remote := &flakyRemote{Memory: NewMemory(), fail: true}
	f := NewFallback(remote, nil)

	got, err := f.Listings(context.Background())
	if err != nil {
		t.Fatalf("Listings: %v", err)
	}
	if len(got) != len(domain.SeedListings()) {
		t.Fatalf("expected seed catalog, got %d listings", len(got))
	}
}

func TestFallbackEmptyRemoteFallsThrough(t *testing.T) {
	// A remote with no documents yet should not mask the seed catalog.
	f := NewFallback(NewMemory(), nil)

	got, err := f.Listings(context.Background())
	if err != nil {
		t.Fatalf("Listings: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("expected seed catalog for an empty remote")
	}
}

func TestFallbackSaveReachesRemote(t *testing.T) {
	remote := NewMemory()
	f := NewFallback(remote, nil)
	ctx := context.Background()

	want := []domain.Listing{{ID: "s-1", Name: "Saved", Category: domain.CategoryTechnology}}
	if err := f.SaveListings(ctx, want); err != nil {
		t.Fatalf("SaveListings: %v", err)
	}

	got, err := remote.Listings(ctx)
	if err != nil {
		t.Fatalf("remote Listings: %v", err)
	}
	if len(got) != 1 || got[0].ID != "s-1" {
		t.Fatalf("expected saved listing in remote, got %+v", got)
	}
}

func TestFallbackSaveRemoteErrorSurfacesWithoutCache(t *testing.T) {
	remote := &flakyRemote{Memory: NewMemory(), fail: true}
	f := NewFallback(remote, nil)

	err := f.SaveListings(context.Background(), []domain.Listing{{ID: "x"}})
	if !errors.Is(err, errRemoteDown) {
		t.Fatalf("expected remote error, got %v", err)
	}
}

func TestMemoryCopiesOnReadAndWrite(t *testing.T) {
	m := NewSeededMemory()
	ctx := context.Background()

	first, err := m.Listings(ctx)
	if err != nil {
		t.Fatalf("Listings: %v", err)
	}
	first[0].Name = "mutated"

	second, err := m.Listings(ctx)
	if err != nil {
		t.Fatalf("Listings: %v", err)
	}
	if second[0].Name == "mutated" {
		t.Fatal("store returned a shared slice")
	}
}
