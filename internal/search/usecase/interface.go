// Package usecase orchestrates key searches: validating input, building the
// verifier, generator and coordinator for one search, and running searches as
// background jobs for the HTTP API.
package usecase

import (
	"context"

	"github.com/google/uuid"

	searchDomain "github.com/allisson/jwtcrack/internal/search/domain"
	searchService "github.com/allisson/jwtcrack/internal/search/service"
)

// SearchUseCase runs a single blocking search.
type SearchUseCase interface {
	// Crack enumerates candidate keys until one verifies the token, the space
	// is exhausted, or ctx is done. Cancellation is reported through
	// Result.Outcome, not as an error. progress may be nil.
	Crack(
		ctx context.Context,
		input *searchDomain.SearchInput,
		progress *searchService.Progress,
	) (*searchDomain.Result, error)
}

// SearchManager runs searches in the background and tracks their state in memory.
type SearchManager interface {
	Start(ctx context.Context, input *searchDomain.SearchInput) (*searchDomain.Search, error)
	Get(ctx context.Context, searchID uuid.UUID) (*searchDomain.Search, error)
	List(ctx context.Context) ([]*searchDomain.Search, error)
	// Stop requests cancellation. Stopping a finished search is a no-op.
	Stop(ctx context.Context, searchID uuid.UUID) (*searchDomain.Search, error)
	// Shutdown stops every running search and waits for them to finish or ctx to be done.
	// Start returns ErrSearchManagerClosed once Shutdown has been called.
	Shutdown(ctx context.Context) error
}
