package user

import (
	"context"

	"github.com/prospot/prospot-api/internal/domain"
	"github.com/prospot/prospot-api/internal/store"
)

// MockUserService implements Service for unit tests, backed by an in-memory
// store with a forced error hook.
type MockUserService struct {
	*Store

	// Err, when set, is returned by every operation.
	Err error
}

// NewMockUserService creates an empty mock.
func NewMockUserService() *MockUserService {
	return &MockUserService{Store: NewStore(store.NewMemory())}
}

func (m *MockUserService) Register(ctx context.Context, params RegisterParams) (*domain.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Store.Register(ctx, params)
}

func (m *MockUserService) Get(ctx context.Context, id string) (*domain.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Store.Get(ctx, id)
}

func (m *MockUserService) LookupByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Store.LookupByEmail(ctx, email)
}

func (m *MockUserService) Delete(ctx context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	return m.Store.Delete(ctx, id)
}

func (m *MockUserService) AddContact(ctx context.Context, userID, listingID string) (*domain.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Store.AddContact(ctx, userID, listingID)
}

func (m *MockUserService) ToggleFavorite(ctx context.Context, userID, listingID string) (*domain.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Store.ToggleFavorite(ctx, userID, listingID)
}

func (m *MockUserService) AddReview(ctx context.Context, params ReviewParams) (*domain.Review, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Store.AddReview(ctx, params)
}

func (m *MockUserService) ReviewsFor(ctx context.Context, listingID string) ([]domain.Review, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Store.ReviewsFor(ctx, listingID)
}

func (m *MockUserService) PendingReviews(ctx context.Context, userID string) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Store.PendingReviews(ctx, userID)
}

var _ Service = (*MockUserService)(nil)
