package usecase

import (
	"context"
	"time"

	"github.com/allisson/jwtcrack/internal/metrics"
	searchDomain "github.com/allisson/jwtcrack/internal/search/domain"
	searchService "github.com/allisson/jwtcrack/internal/search/service"
)

// searchUseCaseWithMetrics decorates SearchUseCase with metrics instrumentation.
type searchUseCaseWithMetrics struct {
	next    SearchUseCase
	metrics metrics.BusinessMetrics
}

// NewSearchUseCaseWithMetrics wraps a SearchUseCase with metrics recording.
func NewSearchUseCaseWithMetrics(useCase SearchUseCase, m metrics.BusinessMetrics) SearchUseCase {
	return &searchUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Crack records the outcome, duration and number of candidates tried.
func (s *searchUseCaseWithMetrics) Crack(
	ctx context.Context,
	input *searchDomain.SearchInput,
	progress *searchService.Progress,
) (*searchDomain.Result, error) {
	start := time.Now()
	result, err := s.next.Crack(ctx, input, progress)

	// ctx is usually done by the time a cancelled search returns.
	mctx := context.WithoutCancel(ctx)

	status := "error"
	if err == nil && result != nil {
		status = string(result.Outcome)
		s.metrics.RecordCandidates(mctx, "search", result.Attempts)
	}

	s.metrics.RecordOperation(mctx, "search", "crack", status)
	s.metrics.RecordDuration(mctx, "search", "crack", time.Since(start), status)

	return result, err
}
