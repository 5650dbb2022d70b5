// Package assist answers the two AI-backed questions in the product: which
// category a free-text need maps to, and marketing copy for a new listing.
package assist

import (
	"context"
	"errors"

	"github.com/prospot/prospot-api/internal/domain"
)

// Service errors
var (
	ErrUnavailable   = errors.New("assist backend unavailable")
	ErrBadCompletion = errors.New("assist completion unusable")
)

// Classification maps a search query to a category plus supporting keywords.
type Classification struct {
	TargetCategory      domain.Category `json:"targetCategory"`
	Reasoning           string          `json:"reasoning"`
	RecommendedKeywords []string        `json:"recommendedKeywords"`
}

// Copy is generated marketing text for a listing.
type Copy struct {
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// Service defines the assist operations.
type Service interface {
	Classify(ctx context.Context, query string) (*Classification, error)
	Describe(ctx context.Context, name, category, title string) (*Copy, error)
}
