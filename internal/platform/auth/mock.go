package auth

import (
	"context"
)

// MockVerifier provides fake token verification for tests.
type MockVerifier struct {
	Account *Account
	Error   error
}

// Verify returns the configured account or error.
func (m *MockVerifier) Verify(_ context.Context, _ string) (*Account, error) {
	if m.Error != nil {
		return nil, m.Error
	}
	return m.Account, nil
}

// TestAccount returns a standard test account.
func TestAccount() *Account {
	return &Account{
		UID:           "test-user-123",
		Email:         "test@example.com",
		EmailVerified: true,
	}
}

// Compile-time interface check
var _ Verifier = (*MockVerifier)(nil)
