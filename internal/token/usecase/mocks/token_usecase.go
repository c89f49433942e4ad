// Package mocks provides mock implementations of the token use case for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	tokenDomain "github.com/allisson/jwtcrack/internal/token/domain"
)

// MockTokenUseCase is a mock implementation of TokenUseCase for testing.
type MockTokenUseCase struct {
	mock.Mock
}

// Decode mocks the Decode method of TokenUseCase.
func (m *MockTokenUseCase) Decode(ctx context.Context, text string) (*tokenDomain.DecodedToken, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenDomain.DecodedToken), args.Error(1)
}

// Verify mocks the Verify method of TokenUseCase.
func (m *MockTokenUseCase) Verify(ctx context.Context, text, key string) (*tokenDomain.VerifyResult, error) {
	args := m.Called(ctx, text, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenDomain.VerifyResult), args.Error(1)
}

// Sign mocks the Sign method of TokenUseCase.
func (m *MockTokenUseCase) Sign(ctx context.Context, header, payload, key string) (string, error) {
	args := m.Called(ctx, header, payload, key)
	return args.String(0), args.Error(1)
}
