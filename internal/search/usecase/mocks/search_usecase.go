// Package mocks provides mock implementations of the search use cases for testing.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	searchDomain "github.com/allisson/jwtcrack/internal/search/domain"
	searchService "github.com/allisson/jwtcrack/internal/search/service"
)

// MockSearchUseCase is a mock implementation of SearchUseCase for testing.
type MockSearchUseCase struct {
	mock.Mock
}

// Crack mocks the Crack method of SearchUseCase.
func (m *MockSearchUseCase) Crack(
	ctx context.Context,
	input *searchDomain.SearchInput,
	progress *searchService.Progress,
) (*searchDomain.Result, error) {
	args := m.Called(ctx, input, progress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*searchDomain.Result), args.Error(1)
}

// MockSearchManager is a mock implementation of SearchManager for testing.
type MockSearchManager struct {
	mock.Mock
}

// Start mocks the Start method of SearchManager.
func (m *MockSearchManager) Start(
	ctx context.Context,
	input *searchDomain.SearchInput,
) (*searchDomain.Search, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*searchDomain.Search), args.Error(1)
}

// Get mocks the Get method of SearchManager.
func (m *MockSearchManager) Get(ctx context.Context, searchID uuid.UUID) (*searchDomain.Search, error) {
	args := m.Called(ctx, searchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*searchDomain.Search), args.Error(1)
}

// List mocks the List method of SearchManager.
func (m *MockSearchManager) List(ctx context.Context) ([]*searchDomain.Search, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*searchDomain.Search), args.Error(1)
}

// Stop mocks the Stop method of SearchManager.
func (m *MockSearchManager) Stop(ctx context.Context, searchID uuid.UUID) (*searchDomain.Search, error) {
	args := m.Called(ctx, searchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*searchDomain.Search), args.Error(1)
}

// Shutdown mocks the Shutdown method of SearchManager.
func (m *MockSearchManager) Shutdown(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
