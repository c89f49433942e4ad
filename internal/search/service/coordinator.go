package service

import (
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/allisson/jwtcrack/internal/search/domain"
)

// Coordinator runs a Source through a fixed pool of workers and returns the
// first candidate that verifies. Pulls from the Source are serialized;
// verification runs concurrently outside the lock.
type Coordinator struct {
	workers int
	logger  *slog.Logger
}

// NewCoordinator creates a Coordinator with the given pool size.
// A size of zero or less selects runtime.NumCPU().
func NewCoordinator(workers int, logger *slog.Logger) *Coordinator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Coordinator{
		workers: workers,
		logger:  logger,
	}
}

// Workers returns the pool size.
func (c *Coordinator) Workers() int {
	return c.workers
}

// Search pulls candidates from source until one verifies, the source is
// exhausted, or the source reports cancellation. When several candidates
// verify concurrently the first to finish wins, not the first enumerated.
// observer, if non-nil, sees each attempted candidate exactly once.
//
// Calls to verify already in flight when the search ends are allowed to
// finish; nothing new is pulled after a match.
func (c *Coordinator) Search(source Source, verify VerifyFunc, observer Observer) (string, domain.Outcome) {
	var (
		mu    sync.Mutex
		found atomic.Bool
		once  sync.Once
		key   string
	)

	next := func() (string, bool) {
		mu.Lock()
		defer mu.Unlock()
		if found.Load() {
			return "", false
		}
		return source.Next()
	}

	var wg sync.WaitGroup
	for range c.workers {
		wg.Go(func() {
			for {
				candidate, ok := next()
				if !ok {
					return
				}
				if observer != nil {
					observer(candidate)
				}
				if c.attempt(verify, candidate) {
					once.Do(func() {
						key = candidate
						found.Store(true)
					})
					return
				}
			}
		})
	}
	wg.Wait()

	switch {
	case found.Load():
		return key, domain.OutcomeFound
	case source.Cancelled():
		return "", domain.OutcomeCancelled
	default:
		return "", domain.OutcomeExhausted
	}
}

// attempt runs verify, treating a panic as a non-match so one faulty
// candidate can't take the pool down.
func (c *Coordinator) attempt(verify VerifyFunc, candidate string) (matched bool) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Debug("verification panicked, treating as no match", slog.Any("panic", r))
			matched = false
		}
	}()
	return verify(candidate)
}
