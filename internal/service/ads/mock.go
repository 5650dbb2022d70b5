package ads

import (
	"context"

	"github.com/prospot/prospot-api/internal/domain"
	"github.com/prospot/prospot-api/internal/store"
)

// MockAdService implements Service for unit tests, backed by an in-memory
// store seeded with the bundled inventory.
type MockAdService struct {
	*Store

	// Err, when set, is returned by every operation.
	Err error
}

// NewMockAdService creates a mock seeded with the bundled ads.
func NewMockAdService() *MockAdService {
	return &MockAdService{Store: NewStore(store.NewSeededMemory())}
}

func (m *MockAdService) List(ctx context.Context) ([]domain.Advertisement, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Store.List(ctx)
}

func (m *MockAdService) ForPosition(ctx context.Context, position domain.AdPosition) ([]domain.Advertisement, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Store.ForPosition(ctx, position)
}

func (m *MockAdService) Get(ctx context.Context, id string) (*domain.Advertisement, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Store.Get(ctx, id)
}

func (m *MockAdService) Create(ctx context.Context, params CreateParams) (*domain.Advertisement, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Store.Create(ctx, params)
}

func (m *MockAdService) Update(ctx context.Context, id string, params UpdateParams) (*domain.Advertisement, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Store.Update(ctx, id, params)
}

func (m *MockAdService) Delete(ctx context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	return m.Store.Delete(ctx, id)
}

var _ Service = (*MockAdService)(nil)
