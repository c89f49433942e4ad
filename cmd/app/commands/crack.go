package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	searchDomain "github.com/allisson/jwtcrack/internal/search/domain"
	searchService "github.com/allisson/jwtcrack/internal/search/service"
	searchUseCase "github.com/allisson/jwtcrack/internal/search/usecase"
)

var (
	// ErrKeyNotFound is returned when every candidate was tried without a match.
	ErrKeyNotFound = errors.New("key not found: search space exhausted")

	// ErrSearchCancelled is returned when the search was interrupted or timed out.
	ErrSearchCancelled = errors.New("search cancelled before the key was found")
)

// CrackOptions holds the parameters of a single brute-force run.
type CrackOptions struct {
	Token     string
	MinLength int
	MaxLength int
	Charset   string
	Classes   searchDomain.CharClass
	Workers   int
	// Timeout cancels the search after the given duration; zero disables it.
	Timeout          time.Duration
	ProgressInterval time.Duration
	ProgressBuffer   int
	Format           string
}

// RunCrack brute-forces the HMAC key of a token and prints the outcome.
// SIGINT and SIGTERM cancel the search; progress is logged on every interval
// while it runs. Exhausted and cancelled searches are reported and returned
// as ErrKeyNotFound and ErrSearchCancelled so the process exits non-zero.
func RunCrack(
	ctx context.Context,
	useCase searchUseCase.SearchUseCase,
	logger *slog.Logger,
	writer io.Writer,
	opts CrackOptions,
) error {
	if err := validateFormat(opts.Format); err != nil {
		return err
	}

	if opts.Charset == "" && opts.Classes == 0 {
		opts.Charset = searchDomain.DefaultCharset
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	input := &searchDomain.SearchInput{
		Token:     opts.Token,
		MinLength: opts.MinLength,
		MaxLength: opts.MaxLength,
		Charset:   opts.Charset,
		Classes:   opts.Classes,
		Workers:   opts.Workers,
	}

	progress := searchService.NewProgress(opts.ProgressBuffer)
	done := make(chan struct{})
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		reportProgress(logger, progress, opts.ProgressInterval, done)
	}()

	result, err := useCase.Crack(ctx, input, progress)
	close(done)
	wg.Wait()

	if err != nil {
		return fmt.Errorf("failed to crack token: %w", err)
	}

	if opts.Format == "json" {
		if err := outputCrackJSON(writer, result); err != nil {
			return fmt.Errorf("failed to output JSON: %w", err)
		}
	} else {
		outputCrackText(writer, result)
	}

	switch result.Outcome {
	case searchDomain.OutcomeExhausted:
		return ErrKeyNotFound
	case searchDomain.OutcomeCancelled:
		return ErrSearchCancelled
	default:
		return nil
	}
}

// reportProgress logs the latest candidate and the attempt rate until done is closed.
func reportProgress(
	logger *slog.Logger,
	progress *searchService.Progress,
	interval time.Duration,
	done <-chan struct{},
) {
	if interval <= 0 {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	start := time.Now()
	var current string

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if candidate, ok := progress.Drain(); ok {
				current = candidate
			}

			attempts := progress.Attempts()
			elapsed := time.Since(start).Seconds()

			var rate float64
			if elapsed > 0 {
				rate = float64(attempts) / elapsed
			}

			logger.Info("search progress",
				slog.String("current", current),
				slog.Uint64("attempts", attempts),
				slog.String("rate", fmt.Sprintf("%.0f/s", rate)),
			)
		}
	}
}

// outputCrackText outputs the search result in human-readable text format.
func outputCrackText(writer io.Writer, result *searchDomain.Result) {
	switch result.Outcome {
	case searchDomain.OutcomeFound:
		_, _ = fmt.Fprintf(writer, "Key found: %s\n", result.Key)
	case searchDomain.OutcomeExhausted:
		_, _ = fmt.Fprintf(writer, "Key not found: search space exhausted\n")
	case searchDomain.OutcomeCancelled:
		_, _ = fmt.Fprintf(writer, "Search cancelled\n")
	}

	_, _ = fmt.Fprintf(writer, "Attempts:  %d\n", result.Attempts)
	_, _ = fmt.Fprintf(writer, "Elapsed:   %s\n", result.Elapsed.Round(time.Millisecond))

	if result.Found() && len(result.Claims) > 0 {
		_, _ = fmt.Fprintf(writer, "Claims:\n")
		_ = writeJSON(writer, result.Claims)
	}
}

// outputCrackJSON outputs the search result in JSON format for machine consumption.
func outputCrackJSON(writer io.Writer, result *searchDomain.Result) error {
	output := map[string]any{
		"outcome":    result.Outcome,
		"attempts":   result.Attempts,
		"elapsed_ms": result.Elapsed.Milliseconds(),
	}
	if result.Found() {
		output["key"] = result.Key
		output["claims"] = result.Claims
	}

	return writeJSON(writer, output)
}
