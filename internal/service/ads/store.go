package ads

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/prospot/prospot-api/internal/domain"
	"github.com/prospot/prospot-api/internal/store"
)

// Store implements Service on top of the persistence gateway.
type Store struct {
	mu      sync.Mutex
	gateway store.Gateway
}

// NewStore creates a gateway-backed advertisement service.
func NewStore(gateway store.Gateway) *Store {
	return &Store{gateway: gateway}
}

// List returns the whole inventory.
func (s *Store) List(ctx context.Context) ([]domain.Advertisement, error) {
	return s.gateway.Ads(ctx)
}

// ForPosition returns the advertisements assigned to one display slot.
func (s *Store) ForPosition(ctx context.Context, position domain.AdPosition) ([]domain.Advertisement, error) {
	if !position.Valid() {
		return nil, ErrInvalidPosition
	}
	all, err := s.gateway.Ads(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Advertisement, 0, len(all))
	for _, a := range all {
		if a.Position == position {
			out = append(out, a)
		}
	}
	return out, nil
}

// Get returns a single advertisement by id.
func (s *Store) Get(ctx context.Context, id string) (*domain.Advertisement, error) {
	all, err := s.gateway.Ads(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, ErrNotFound
}

// Create publishes a new advertisement.
func (s *Store) Create(ctx context.Context, params CreateParams) (*domain.Advertisement, error) {
	if !params.Position.Valid() {
		return nil, ErrInvalidPosition
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.gateway.Ads(ctx)
	if err != nil {
		return nil, err
	}

	ad := domain.Advertisement{
		ID:             uuid.NewString(),
		Title:          strings.TrimSpace(params.Title),
		AdvertiserName: strings.TrimSpace(params.AdvertiserName),
		ImageURL:       params.ImageURL,
		LinkURL:        params.LinkURL,
		Position:       params.Position,
	}
	all = append(all, ad)
	if err := s.gateway.SaveAds(ctx, all); err != nil {
		return nil, err
	}
	return &ad, nil
}

// Update edits an existing advertisement. Nil params are left untouched.
func (s *Store) Update(ctx context.Context, id string, params UpdateParams) (*domain.Advertisement, error) {
	if params.Position != nil && !params.Position.Valid() {
		return nil, ErrInvalidPosition
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.gateway.Ads(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range all {
		if all[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrNotFound
	}

	a := &all[idx]
	if params.Title != nil {
		a.Title = strings.TrimSpace(*params.Title)
	}
	if params.AdvertiserName != nil {
		a.AdvertiserName = strings.TrimSpace(*params.AdvertiserName)
	}
	if params.ImageURL != nil {
		a.ImageURL = *params.ImageURL
	}
	if params.LinkURL != nil {
		a.LinkURL = *params.LinkURL
	}
	if params.Position != nil {
		a.Position = *params.Position
	}

	if err := s.gateway.SaveAds(ctx, all); err != nil {
		return nil, err
	}
	updated := *a
	return &updated, nil
}

// Delete removes an advertisement.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.gateway.Ads(ctx)
	if err != nil {
		return err
	}

	kept := all[:0]
	found := false
	for _, a := range all {
		if a.ID == id {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	if !found {
		return ErrNotFound
	}
	return s.gateway.SaveAds(ctx, kept)
}

var _ Service = (*Store)(nil)
