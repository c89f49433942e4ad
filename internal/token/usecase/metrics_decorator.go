package usecase

import (
	"context"
	"time"

	"github.com/allisson/jwtcrack/internal/metrics"
	tokenDomain "github.com/allisson/jwtcrack/internal/token/domain"
)

// tokenUseCaseWithMetrics decorates TokenUseCase with metrics instrumentation.
type tokenUseCaseWithMetrics struct {
	next    TokenUseCase
	metrics metrics.BusinessMetrics
}

// NewTokenUseCaseWithMetrics wraps a TokenUseCase with metrics recording.
func NewTokenUseCaseWithMetrics(useCase TokenUseCase, m metrics.BusinessMetrics) TokenUseCase {
	return &tokenUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (t *tokenUseCaseWithMetrics) record(ctx context.Context, operation, status string, start time.Time) {
	t.metrics.RecordOperation(ctx, "token", operation, status)
	t.metrics.RecordDuration(ctx, "token", operation, time.Since(start), status)
}

// Decode records metrics for token decoding.
func (t *tokenUseCaseWithMetrics) Decode(ctx context.Context, text string) (*tokenDomain.DecodedToken, error) {
	start := time.Now()
	decoded, err := t.next.Decode(ctx, text)

	status := "success"
	if err != nil {
		status = "error"
	}
	t.record(ctx, "decode", status, start)

	return decoded, err
}

// Verify records metrics for key verification, distinguishing valid and invalid keys.
func (t *tokenUseCaseWithMetrics) Verify(
	ctx context.Context,
	text, key string,
) (*tokenDomain.VerifyResult, error) {
	start := time.Now()
	result, err := t.next.Verify(ctx, text, key)

	status := "invalid"
	switch {
	case err != nil:
		status = "error"
	case result.Valid:
		status = "valid"
	}
	t.record(ctx, "verify", status, start)

	return result, err
}

// Sign records metrics for token signing.
func (t *tokenUseCaseWithMetrics) Sign(ctx context.Context, header, payload, key string) (string, error) {
	start := time.Now()
	signed, err := t.next.Sign(ctx, header, payload, key)

	status := "success"
	if err != nil {
		status = "error"
	}
	t.record(ctx, "sign", status, start)

	return signed, err
}
