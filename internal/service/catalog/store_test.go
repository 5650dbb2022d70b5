package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/prospot/prospot-api/internal/domain"
	"github.com/prospot/prospot-api/internal/geo"
	"github.com/prospot/prospot-api/internal/ranking"
	"github.com/prospot/prospot-api/internal/store"
)

func newSeededService() *Store {
	return NewStore(store.NewSeededMemory())
}

func TestSearchNoFiltersReturnsWholeCatalog(t *testing.T) {
	svc := newSeededService()

	got, err := svc.Search(context.Background(), ranking.Filters{}, nil)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != len(domain.SeedListings()) {
		t.Fatalf("expected full catalog, got %d listings", len(got))
	}
}

func TestSearchFiltersByCategory(t *testing.T) {
	svc := newSeededService()

	got, err := svc.Search(context.Background(), ranking.Filters{Category: domain.CategoryTechnology}, nil)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("expected technology listings in the seed catalog")
	}
	for _, l := range got {
		if l.Category != domain.CategoryTechnology {
			t.Fatalf("listing %s leaked through the category stage", l.ID)
		}
	}
}

func TestSearchUnknownCategoryIsEmpty(t *testing.T) {
	svc := newSeededService()

	got, err := svc.Search(context.Background(), ranking.Filters{Category: "Astronomía"}, nil)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d listings", len(got))
	}
}

func TestSearchOrdersByDistanceFromOrigin(t *testing.T) {
	svc := newSeededService()
	origin := &geo.Point{Latitude: -32.8908, Longitude: -68.8458}

	got, err := svc.Search(context.Background(), ranking.Filters{}, origin)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		if cur.IsPromoted && !prev.IsPromoted {
			t.Fatalf("promoted listing %s ranked below unpromoted %s", cur.ID, prev.ID)
		}
		if cur.IsPromoted == prev.IsPromoted {
			dPrev := geo.Distance(*origin, prev.Latitude, prev.Longitude)
			dCur := geo.Distance(*origin, cur.Latitude, cur.Longitude)
			if dCur < dPrev {
				t.Fatalf("listing %s at %.1f km ranked below %s at %.1f km", cur.ID, dCur, prev.ID, dPrev)
			}
		}
	}
}

func TestGetReturnsListing(t *testing.T) {
	svc := newSeededService()

	got, err := svc.Get(context.Background(), "cap-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != "cap-1" {
		t.Fatalf("expected cap-1, got %s", got.ID)
	}
}

func TestGetUnknownIDFails(t *testing.T) {
	svc := newSeededService()

	_, err := svc.Get(context.Background(), "no-such-listing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateAssignsIDAndNormalizesImage(t *testing.T) {
	svc := NewStore(store.NewMemory())

	created, err := svc.Create(context.Background(), CreateParams{
		Name:       "  Taller Norte  ",
		Title:      "Mecánica integral",
		Category:   domain.CategoryAutomotive,
		Department: "Guaymallén",
		ImageURL:   "https://picsum.photos/400/300",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if created.Name != "Taller Norte" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
	if created.ImageURL != domain.DefaultImage(domain.CategoryAutomotive) {
		t.Fatalf("expected category default image, got %q", created.ImageURL)
	}

	persisted, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get after Create: %v", err)
	}
	if persisted.Name != created.Name {
		t.Fatalf("persisted %q, created %q", persisted.Name, created.Name)
	}
}

func TestCreateRejectsSentinelCategory(t *testing.T) {
	svc := NewStore(store.NewMemory())

	_, err := svc.Create(context.Background(), CreateParams{
		Name:       "X",
		Category:   domain.CategoryAll,
		Department: "Capital",
	})
	if !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestCreateRejectsUnknownDepartment(t *testing.T) {
	svc := NewStore(store.NewMemory())

	_, err := svc.Create(context.Background(), CreateParams{
		Name:       "X",
		Category:   domain.CategoryEvents,
		Department: "Rosario",
	})
	if !errors.Is(err, ErrInvalidDepartment) {
		t.Fatalf("expected ErrInvalidDepartment, got %v", err)
	}
}

func TestUpdateAppliesPartialChanges(t *testing.T) {
	svc := newSeededService()
	title := "Nuevo título"
	promoted := true

	updated, err := svc.Update(context.Background(), "cap-1", UpdateParams{
		Title:      &title,
		IsPromoted: &promoted,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != title {
		t.Fatalf("expected %q, got %q", title, updated.Title)
	}
	if !updated.IsPromoted {
		t.Fatal("expected promoted flag set")
	}
	if updated.Name == "" {
		t.Fatal("untouched field was cleared")
	}
}

func TestUpdateUnknownIDFails(t *testing.T) {
	svc := newSeededService()
	name := "ghost"

	_, err := svc.Update(context.Background(), "no-such-listing", UpdateParams{Name: &name})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteRemovesListing(t *testing.T) {
	svc := newSeededService()
	ctx := context.Background()

	if err := svc.Delete(ctx, "cap-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, "cap-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.Delete(ctx, "cap-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestSearchDoesNotMutateStoredOrder(t *testing.T) {
	svc := newSeededService()
	ctx := context.Background()
	origin := &geo.Point{Latitude: -34.6177, Longitude: -68.3301}

	if _, err := svc.Search(ctx, ranking.Filters{}, origin); err != nil {
		t.Fatalf("Search: %v", err)
	}

	got, err := svc.Search(ctx, ranking.Filters{}, nil)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	want := ranking.Rank(domain.SeedListings(), ranking.Filters{}, nil)
	for i := range want {
		if got[i].ID != want[i].ID {
			t.Fatalf("position %d: got %s, want %s", i, got[i].ID, want[i].ID)
		}
	}
}
