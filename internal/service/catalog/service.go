// Package catalog manages the listing collection: CRUD plus the ranked
// search used by the browse surface.
package catalog

import (
	"context"
	"errors"

	"github.com/prospot/prospot-api/internal/domain"
	"github.com/prospot/prospot-api/internal/geo"
	"github.com/prospot/prospot-api/internal/ranking"
)

// Service errors
var (
	ErrNotFound          = errors.New("listing not found")
	ErrInvalidCategory   = errors.New("unknown category")
	ErrInvalidDepartment = errors.New("unknown department")
)

// CreateParams for publishing a listing.
type CreateParams struct {
	Name         string
	Title        string
	Category     domain.Category
	Location     string
	Department   string
	Latitude     *float64
	Longitude    *float64
	Description  string
	PriceRange   string
	ImageURL     string
	Tags         []string
	Availability string
	Email        string
	WhatsApp     string
}

// UpdateParams for editing a listing. Nil fields are left untouched.
type UpdateParams struct {
	Name         *string
	Title        *string
	Category     *domain.Category
	Location     *string
	Department   *string
	Latitude     *float64
	Longitude    *float64
	Description  *string
	PriceRange   *string
	ImageURL     *string
	Tags         []string
	Availability *string
	Email        *string
	WhatsApp     *string
	IsVerified   *bool
	IsPromoted   *bool
}

// Service defines catalog operations.
//
// Search never errors on unknown filter values; they match nothing and the
// result is empty.
type Service interface {
	Search(ctx context.Context, filters ranking.Filters, origin *geo.Point) ([]domain.Listing, error)
	Get(ctx context.Context, id string) (*domain.Listing, error)
	Create(ctx context.Context, params CreateParams) (*domain.Listing, error)
	Update(ctx context.Context, id string, params UpdateParams) (*domain.Listing, error)
	Delete(ctx context.Context, id string) error
}
