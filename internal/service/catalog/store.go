package catalog

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/prospot/prospot-api/internal/domain"
	"github.com/prospot/prospot-api/internal/geo"
	"github.com/prospot/prospot-api/internal/platform/auth"
	applog "github.com/prospot/prospot-api/internal/platform/logging"
	"github.com/prospot/prospot-api/internal/ranking"
	"github.com/prospot/prospot-api/internal/store"
)

// categorizeError converts errors to audit-safe categories.
func categorizeError(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidCategory), errors.Is(err, ErrInvalidDepartment):
		return "invalid_input"
	default:
		return "internal_error"
	}
}

// audit records a catalog mutation against the acting account.
func audit(ctx context.Context, action, resourceID string, err error) {
	result := "success"
	var details map[string]any
	if err != nil {
		result = "failure"
		details = map[string]any{"error_category": categorizeError(err)}
	}
	applog.LogAuditEvent(ctx, action, actorID(ctx), "listing", resourceID, result, details)
}

func actorID(ctx context.Context) string {
	if account := auth.AccountFromContext(ctx); account != nil {
		return account.UID
	}
	return "anonymous"
}

// Store implements Service on top of the persistence gateway. Mutations
// serialize through a mutex because every write replaces the whole listing
// collection.
type Store struct {
	mu      sync.Mutex
	gateway store.Gateway
}

// NewStore creates a gateway-backed catalog service.
func NewStore(gateway store.Gateway) *Store {
	return &Store{gateway: gateway}
}

// Search loads the catalog and runs the ranking pipeline over it.
func (s *Store) Search(ctx context.Context, filters ranking.Filters, origin *geo.Point) ([]domain.Listing, error) {
	listings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return ranking.Rank(listings, filters, origin), nil
}

// Get returns a single listing by id.
func (s *Store) Get(ctx context.Context, id string) (*domain.Listing, error) {
	listings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range listings {
		if listings[i].ID == id {
			return &listings[i], nil
		}
	}
	return nil, ErrNotFound
}

// Create publishes a new listing.
func (s *Store) Create(ctx context.Context, params CreateParams) (*domain.Listing, error) {
	listing, err := s.create(ctx, params)
	audit(ctx, "create", listingID(listing), err)
	return listing, err
}

func (s *Store) create(ctx context.Context, params CreateParams) (*domain.Listing, error) {
	if !params.Category.ValidStored() {
		return nil, ErrInvalidCategory
	}
	if !domain.ValidDepartment(params.Department) {
		return nil, ErrInvalidDepartment
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	listings, err := s.gateway.Listings(ctx)
	if err != nil {
		return nil, err
	}

	listing := domain.Listing{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(params.Name),
		Title:        strings.TrimSpace(params.Title),
		Category:     params.Category,
		Location:     strings.TrimSpace(params.Location),
		Department:   params.Department,
		Latitude:     params.Latitude,
		Longitude:    params.Longitude,
		Description:  strings.TrimSpace(params.Description),
		PriceRange:   params.PriceRange,
		ImageURL:     params.ImageURL,
		Tags:         params.Tags,
		Availability: params.Availability,
		Email:        strings.ToLower(strings.TrimSpace(params.Email)),
		WhatsApp:     strings.TrimSpace(params.WhatsApp),
	}
	listing.NormalizeImage()

	listings = append(listings, listing)
	if err := s.gateway.SaveListings(ctx, listings); err != nil {
		return nil, err
	}
	return &listing, nil
}

// Update edits an existing listing. Nil params are left untouched.
func (s *Store) Update(ctx context.Context, id string, params UpdateParams) (*domain.Listing, error) {
	listing, err := s.update(ctx, id, params)
	audit(ctx, "update", id, err)
	return listing, err
}

func (s *Store) update(ctx context.Context, id string, params UpdateParams) (*domain.Listing, error) {
	if params.Category != nil && !params.Category.ValidStored() {
		return nil, ErrInvalidCategory
	}
	if params.Department != nil && !domain.ValidDepartment(*params.Department) {
		return nil, ErrInvalidDepartment
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	listings, err := s.gateway.Listings(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range listings {
		if listings[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrNotFound
	}

	l := &listings[idx]
	applyString(&l.Name, params.Name)
	applyString(&l.Title, params.Title)
	if params.Category != nil {
		l.Category = *params.Category
	}
	applyString(&l.Location, params.Location)
	applyString(&l.Department, params.Department)
	if params.Latitude != nil {
		l.Latitude = params.Latitude
	}
	if params.Longitude != nil {
		l.Longitude = params.Longitude
	}
	applyString(&l.Description, params.Description)
	applyString(&l.PriceRange, params.PriceRange)
	applyString(&l.ImageURL, params.ImageURL)
	if params.Tags != nil {
		l.Tags = params.Tags
	}
	applyString(&l.Availability, params.Availability)
	applyString(&l.Email, params.Email)
	applyString(&l.WhatsApp, params.WhatsApp)
	if params.IsVerified != nil {
		l.IsVerified = *params.IsVerified
	}
	if params.IsPromoted != nil {
		l.IsPromoted = *params.IsPromoted
	}
	l.NormalizeImage()

	if err := s.gateway.SaveListings(ctx, listings); err != nil {
		return nil, err
	}
	updated := *l
	return &updated, nil
}

// Delete removes a listing.
func (s *Store) Delete(ctx context.Context, id string) error {
	err := s.delete(ctx, id)
	audit(ctx, "delete", id, err)
	return err
}

func (s *Store) delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	listings, err := s.gateway.Listings(ctx)
	if err != nil {
		return err
	}

	kept := listings[:0]
	found := false
	for _, l := range listings {
		if l.ID == id {
			found = true
			continue
		}
		kept = append(kept, l)
	}
	if !found {
		return ErrNotFound
	}
	return s.gateway.SaveListings(ctx, kept)
}

// load returns the catalog with image URLs normalized.
func (s *Store) load(ctx context.Context) ([]domain.Listing, error) {
	listings, err := s.gateway.Listings(ctx)
	if err != nil {
		return nil, err
	}
	for i := range listings {
		listings[i].NormalizeImage()
	}
	return listings, nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

func listingID(l *domain.Listing) string {
	if l == nil {
		return ""
	}
	return l.ID
}

var _ Service = (*Store)(nil)
