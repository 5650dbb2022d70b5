// Package store persists the marketplace collections. Each collection is a
// flat mapping keyed by id and every mutation replaces the collection
// wholesale, so the gateway works in whole-collection loads and saves.
package store

import (
	"context"

	"github.com/prospot/prospot-api/internal/domain"
)

// Gateway loads and replaces the four marketplace collections.
type Gateway interface {
	Listings(ctx context.Context) ([]domain.Listing, error)
	SaveListings(ctx context.Context, listings []domain.Listing) error

	Ads(ctx context.Context) ([]domain.Advertisement, error)
	SaveAds(ctx context.Context, ads []domain.Advertisement) error

	Users(ctx context.Context) ([]domain.User, error)
	SaveUsers(ctx context.Context, users []domain.User) error

	Reviews(ctx context.Context) ([]domain.Review, error)
	SaveReviews(ctx context.Context, reviews []domain.Review) error
}
