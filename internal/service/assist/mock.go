package assist

import (
	"context"
)

// MockAssistService implements Service for unit tests with canned responses.
type MockAssistService struct {
	Classification *Classification
	Copy           *Copy
	Err            error
}

// NewMockAssistService creates a mock answering like the local heuristic.
func NewMockAssistService() *MockAssistService {
	return &MockAssistService{}
}

func (m *MockAssistService) Classify(ctx context.Context, query string) (*Classification, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Classification != nil {
		return m.Classification, nil
	}
	return NewFallback().Classify(ctx, query)
}

func (m *MockAssistService) Describe(ctx context.Context, name, category, title string) (*Copy, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Copy != nil {
		return m.Copy, nil
	}
	return NewFallback().Describe(ctx, name, category, title)
}

var _ Service = (*MockAssistService)(nil)
