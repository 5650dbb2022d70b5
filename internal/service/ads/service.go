// Package ads manages the advertisement inventory shown next to search
// results.
package ads

import (
	"context"
	"errors"

	"github.com/prospot/prospot-api/internal/domain"
)

// Service errors
var (
	ErrNotFound        = errors.New("advertisement not found")
	ErrInvalidPosition = errors.New("unknown ad position")
)

// CreateParams for publishing an advertisement.
type CreateParams struct {
	Title          string
	AdvertiserName string
	ImageURL       string
	LinkURL        string
	Position       domain.AdPosition
}

// UpdateParams for editing an advertisement. Nil fields are left untouched.
type UpdateParams struct {
	Title          *string
	AdvertiserName *string
	ImageURL       *string
	LinkURL        *string
	Position       *domain.AdPosition
}

// Service defines advertisement operations.
type Service interface {
	List(ctx context.Context) ([]domain.Advertisement, error)
	ForPosition(ctx context.Context, position domain.AdPosition) ([]domain.Advertisement, error)
	Get(ctx context.Context, id string) (*domain.Advertisement, error)
	Create(ctx context.Context, params CreateParams) (*domain.Advertisement, error)
	Update(ctx context.Context, id string, params UpdateParams) (*domain.Advertisement, error)
	Delete(ctx context.Context, id string) error
}
