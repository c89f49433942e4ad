package usecase

import (
	"context"
	"log/slog"
	"time"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/jwtcrack/internal/errors"
	searchDomain "github.com/allisson/jwtcrack/internal/search/domain"
	searchService "github.com/allisson/jwtcrack/internal/search/service"
	tokenService "github.com/allisson/jwtcrack/internal/token/service"
	appValidation "github.com/allisson/jwtcrack/internal/validation"
)

// searchUseCase implements SearchUseCase.
type searchUseCase struct {
	logger *slog.Logger
}

// NewSearchUseCase creates a new SearchUseCase.
func NewSearchUseCase(logger *slog.Logger) SearchUseCase {
	return &searchUseCase{
		logger: logger,
	}
}

// Crack validates the input, then runs the generator through the coordinator
// with the token verifier as the unit of work.
func (s *searchUseCase) Crack(
	ctx context.Context,
	input *searchDomain.SearchInput,
	progress *searchService.Progress,
) (*searchDomain.Result, error) {
	if input == nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "search input is required")
	}
	if err := validateSearchInput(input); err != nil {
		return nil, err
	}

	verifier, err := tokenService.NewVerifier(input.Token)
	if err != nil {
		return nil, err
	}

	alphabet, err := searchDomain.ResolveAlphabet(input.Charset, input.Classes)
	if err != nil {
		return nil, err
	}

	r, err := searchDomain.NewRange(input.MinLength, input.MaxLength)
	if err != nil {
		return nil, err
	}

	if progress == nil {
		progress = searchService.NewProgress(1)
	}

	generator := searchService.NewGenerator(alphabet, r, ctx.Done())
	coordinator := searchService.NewCoordinator(input.Workers, s.logger)

	s.logger.Info("search started",
		slog.String("algorithm", string(verifier.Algorithm())),
		slog.Int("alphabet_size", len(alphabet)),
		slog.Int("min_length", r.Min),
		slog.Int("max_length", r.Max),
		slog.Int("workers", coordinator.Workers()),
		slog.String("space_size", searchDomain.SpaceSize(len(alphabet), r).String()),
	)

	start := time.Now()
	key, outcome := coordinator.Search(
		generator,
		func(candidate string) bool {
			_, ok := verifier.Verify(candidate)
			return ok
		},
		progress.Observe,
	)

	result := &searchDomain.Result{
		Outcome:  outcome,
		Attempts: progress.Attempts(),
		Elapsed:  time.Since(start),
	}
	if outcome == searchDomain.OutcomeFound {
		result.Key = key
		result.Claims, _ = verifier.Verify(key)
	}

	s.logger.Info("search finished",
		slog.String("outcome", string(result.Outcome)),
		slog.Uint64("attempts", result.Attempts),
		slog.Duration("elapsed", result.Elapsed),
	)

	return result, nil
}

// validateSearchInput checks the fields that must be present before any
// parsing happens. Token shape and lengths are checked by the token codec and
// range constructor so their specific errors reach the caller.
func validateSearchInput(input *searchDomain.SearchInput) error {
	err := validation.ValidateStruct(input,
		validation.Field(&input.Token,
			validation.Required.Error("token is required"),
			appValidation.NotBlank,
		),
		validation.Field(&input.Workers,
			validation.Min(0).Error("workers must not be negative"),
		),
	)
	return appValidation.WrapValidationError(err)
}
