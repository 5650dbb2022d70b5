package catalog

import (
	"context"

	"github.com/prospot/prospot-api/internal/domain"
	"github.com/prospot/prospot-api/internal/geo"
	"github.com/prospot/prospot-api/internal/ranking"
	"github.com/prospot/prospot-api/internal/store"
)

// MockCatalogService implements Service for unit tests. It reuses the real
// gateway-backed implementation over an in-memory store and adds a forced
// error hook.
type MockCatalogService struct {
	*Store

	// Err, when set, is returned by every operation.
	Err error
}

// NewMockCatalogService creates a mock seeded with the bundled catalog.
func NewMockCatalogService() *MockCatalogService {
	return &MockCatalogService{Store: NewStore(store.NewSeededMemory())}
}

// NewEmptyMockCatalogService creates a mock with no listings.
func NewEmptyMockCatalogService() *MockCatalogService {
	return &MockCatalogService{Store: NewStore(store.NewMemory())}
}

func (m *MockCatalogService) Search(ctx context.Context, filters ranking.Filters, origin *geo.Point) ([]domain.Listing, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Store.Search(ctx, filters, origin)
}

func (m *MockCatalogService) Get(ctx context.Context, id string) (*domain.Listing, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Store.Get(ctx, id)
}

func (m *MockCatalogService) Create(ctx context.Context, params CreateParams) (*domain.Listing, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Store.Create(ctx, params)
}

func (m *MockCatalogService) Update(ctx context.Context, id string, params UpdateParams) (*domain.Listing, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Store.Update(ctx, id, params)
}

func (m *MockCatalogService) Delete(ctx context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	return m.Store.Delete(ctx, id)
}

var _ Service = (*MockCatalogService)(nil)
