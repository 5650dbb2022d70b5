// Package user manages registered accounts, their interaction history and the
// reviews they leave for listings.
package user

import (
	"context"
	"errors"

	"github.com/prospot/prospot-api/internal/domain"
)

// Service errors
var (
	ErrNotFound        = errors.New("user not found")
	ErrAlreadyExists   = errors.New("email already registered")
	ErrInvalidRole     = errors.New("unknown role")
	ErrInvalidRating   = errors.New("rating out of range")
	ErrAlreadyReviewed = errors.New("listing already reviewed by this user")
	ErrNotEligible     = errors.New("listing was never contacted by this user")
)

// RegisterParams for creating an account.
type RegisterParams struct {
	Name    string
	Email   string
	Role    domain.Role
	Phone   string
	Address string
}

// ReviewParams for leaving a review. ProfessionalID is the reviewed listing.
type ReviewParams struct {
	UserID         string
	ProfessionalID string
	Rating         int
	Comment        string
}

// Service defines account and review operations.
//
// AddContact deduplicates, ToggleFavorite flips membership, and AddReview
// requires prior contact with the listing plus a free (user, listing) pair.
type Service interface {
	Register(ctx context.Context, params RegisterParams) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	LookupByEmail(ctx context.Context, email string) (*domain.User, error)
	Delete(ctx context.Context, id string) error

	AddContact(ctx context.Context, userID, listingID string) (*domain.User, error)
	ToggleFavorite(ctx context.Context, userID, listingID string) (*domain.User, error)

	AddReview(ctx context.Context, params ReviewParams) (*domain.Review, error)
	ReviewsFor(ctx context.Context, listingID string) ([]domain.Review, error)
	PendingReviews(ctx context.Context, userID string) ([]string, error)
}
