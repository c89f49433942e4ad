package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/allisson/jwtcrack/internal/metrics"
	searchDomain "github.com/allisson/jwtcrack/internal/search/domain"
	searchUsecaseMocks "github.com/allisson/jwtcrack/internal/search/usecase/mocks"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func (m *mockBusinessMetrics) RecordCandidates(ctx context.Context, domain string, count uint64) {
	m.Called(ctx, domain, count)
}

var _ metrics.BusinessMetrics = (*mockBusinessMetrics)(nil)

func TestNewSearchUseCaseWithMetrics(t *testing.T) {
	t.Parallel()

	decorator := NewSearchUseCaseWithMetrics(&searchUsecaseMocks.MockSearchUseCase{}, &mockBusinessMetrics{})

	assert.NotNil(t, decorator)
	assert.Implements(t, (*SearchUseCase)(nil), decorator)
}

func TestMetricsDecorator_Crack(t *testing.T) {
	t.Parallel()
	input := &searchDomain.SearchInput{Token: "h.p.s", MinLength: 1, MaxLength: 2, Charset: "ab"}

	tests := []struct {
		name           string
		result         *searchDomain.Result
		err            error
		expectedStatus string
	}{
		{
			name:           "found",
			result:         &searchDomain.Result{Outcome: searchDomain.OutcomeFound, Key: "ab", Attempts: 4},
			expectedStatus: "found",
		},
		{
			name:           "exhausted",
			result:         &searchDomain.Result{Outcome: searchDomain.OutcomeExhausted, Attempts: 6},
			expectedStatus: "exhausted",
		},
		{
			name:           "cancelled",
			result:         &searchDomain.Result{Outcome: searchDomain.OutcomeCancelled, Attempts: 3},
			expectedStatus: "cancelled",
		},
		{
			name:           "error",
			err:            errors.New("boom"),
			expectedStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()

			mockUseCase := &searchUsecaseMocks.MockSearchUseCase{}
			mockMetrics := &mockBusinessMetrics{}

			mockUseCase.On("Crack", ctx, input, mock.Anything).Return(tt.result, tt.err).Once()
			mockMetrics.On("RecordOperation", mock.Anything, "search", "crack", tt.expectedStatus).
				Return().
				Once()
			mockMetrics.On(
				"RecordDuration",
				mock.Anything,
				"search",
				"crack",
				mock.AnythingOfType("time.Duration"),
				tt.expectedStatus,
			).Return().Once()
			if tt.result != nil {
				mockMetrics.On("RecordCandidates", mock.Anything, "search", tt.result.Attempts).Return().Once()
			}

			decorator := NewSearchUseCaseWithMetrics(mockUseCase, mockMetrics)
			result, err := decorator.Crack(ctx, input, nil)

			assert.Equal(t, tt.result, result)
			assert.Equal(t, tt.err, err)
			mockUseCase.AssertExpectations(t)
			mockMetrics.AssertExpectations(t)
			if tt.result == nil {
				mockMetrics.AssertNotCalled(t, "RecordCandidates", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}
