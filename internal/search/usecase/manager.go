package usecase

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/allisson/jwtcrack/internal/errors"
	searchDomain "github.com/allisson/jwtcrack/internal/search/domain"
	searchService "github.com/allisson/jwtcrack/internal/search/service"
	tokenService "github.com/allisson/jwtcrack/internal/token/service"
)

// ManagerConfig holds the limits applied to background searches.
type ManagerConfig struct {
	// MaxConcurrent is the number of searches allowed to run at once.
	MaxConcurrent int
	// ProgressBuffer is the capacity of each search's progress queue.
	ProgressBuffer int
	// PollInterval is how often a search's progress snapshot is refreshed.
	PollInterval time.Duration
}

// searchJob is the state of one background search. Only the job's own
// goroutines write to search; readers take snapshots under mu.
type searchJob struct {
	mu     sync.Mutex
	search searchDomain.Search
	cancel context.CancelFunc
}

func (j *searchJob) snapshot() *searchDomain.Search {
	j.mu.Lock()
	defer j.mu.Unlock()

	s := j.search
	if j.search.Result != nil {
		result := *j.search.Result
		s.Result = &result
	}
	if j.search.FinishedAt != nil {
		finishedAt := *j.search.FinishedAt
		s.FinishedAt = &finishedAt
	}
	return &s
}

func (j *searchJob) active() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.search.Status == searchDomain.SearchRunning || j.search.Status == searchDomain.SearchStopping
}

// searchManager implements SearchManager with an in-memory job table.
type searchManager struct {
	useCase SearchUseCase
	config  ManagerConfig
	logger  *slog.Logger

	mu     sync.RWMutex
	jobs   map[uuid.UUID]*searchJob
	wg     sync.WaitGroup
	closed bool
}

// NewSearchManager creates a SearchManager that runs searches through useCase.
func NewSearchManager(useCase SearchUseCase, config ManagerConfig, logger *slog.Logger) SearchManager {
	if config.MaxConcurrent < 1 {
		config.MaxConcurrent = 1
	}
	if config.ProgressBuffer < 1 {
		config.ProgressBuffer = 1
	}
	if config.PollInterval <= 0 {
		config.PollInterval = time.Second
	}
	return &searchManager{
		useCase: useCase,
		config:  config,
		logger:  logger,
		jobs:    make(map[uuid.UUID]*searchJob),
	}
}

// Start checks the input synchronously and launches the search in the background.
func (m *searchManager) Start(ctx context.Context, input *searchDomain.SearchInput) (*searchDomain.Search, error) {
	if input == nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "search input is required")
	}
	if err := validateSearchInput(input); err != nil {
		return nil, err
	}
	if _, err := tokenService.Parse(input.Token); err != nil {
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

	id, err := uuid.NewV7()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to generate search id")
	}

	// The search outlives the request that started it.
	jobCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	job := &searchJob{
		search: searchDomain.Search{
			ID:        id,
			Status:    searchDomain.SearchRunning,
			MinLength: r.Min,
			MaxLength: r.Max,
			Alphabet:  alphabet.String(),
			SpaceSize: searchDomain.SpaceSize(len(alphabet), r).String(),
			CreatedAt: time.Now().UTC(),
		},
		cancel: cancel,
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		cancel()
		return nil, searchDomain.ErrSearchManagerClosed
	}
	running := 0
	for _, j := range m.jobs {
		if j.active() {
			running++
		}
	}
	if running >= m.config.MaxConcurrent {
		m.mu.Unlock()
		cancel()
		return nil, searchDomain.ErrTooManySearches
	}
	m.jobs[id] = job
	m.wg.Add(1)
	m.mu.Unlock()

	jobInput := *input
	go m.run(jobCtx, job, &jobInput)

	m.logger.Info("search job started", slog.String("search_id", id.String()))
	return job.snapshot(), nil
}

// run executes the search and is the only goroutine that reads its progress queue.
func (m *searchManager) run(ctx context.Context, job *searchJob, input *searchDomain.SearchInput) {
	defer m.wg.Done()
	defer job.cancel()

	type outcome struct {
		result *searchDomain.Result
		err    error
	}

	progress := searchService.NewProgress(m.config.ProgressBuffer)
	done := make(chan outcome, 1)
	go func() {
		result, err := m.useCase.Crack(ctx, input, progress)
		done <- outcome{result: result, err: err}
	}()

	ticker := time.NewTicker(m.config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.refresh(job, progress)
		case out := <-done:
			m.refresh(job, progress)
			m.finish(job, out.result, out.err)
			return
		}
	}
}

func (m *searchManager) refresh(job *searchJob, progress *searchService.Progress) {
	current, ok := progress.Drain()
	attempts := progress.Attempts()

	job.mu.Lock()
	defer job.mu.Unlock()
	job.search.Attempts = attempts
	if ok {
		job.search.Current = current
	}
}

func (m *searchManager) finish(job *searchJob, result *searchDomain.Result, err error) {
	finishedAt := time.Now().UTC()

	job.mu.Lock()
	job.search.FinishedAt = &finishedAt
	if err != nil {
		job.search.Status = searchDomain.SearchFailed
		job.search.Error = err.Error()
	} else {
		job.search.Status = searchDomain.SearchFinished
		job.search.Result = result
		job.search.Attempts = result.Attempts
	}
	id := job.search.ID
	job.mu.Unlock()

	if err != nil {
		m.logger.Error("search job failed", slog.String("search_id", id.String()), slog.Any("error", err))
		return
	}
	m.logger.Info("search job finished",
		slog.String("search_id", id.String()),
		slog.String("outcome", string(result.Outcome)),
	)
}

// Get returns a snapshot of the search.
func (m *searchManager) Get(ctx context.Context, searchID uuid.UUID) (*searchDomain.Search, error) {
	m.mu.RLock()
	job, ok := m.jobs[searchID]
	m.mu.RUnlock()
	if !ok {
		return nil, searchDomain.ErrSearchNotFound
	}
	return job.snapshot(), nil
}

// List returns snapshots of all searches, oldest first.
func (m *searchManager) List(ctx context.Context) ([]*searchDomain.Search, error) {
	m.mu.RLock()
	searches := make([]*searchDomain.Search, 0, len(m.jobs))
	for _, job := range m.jobs {
		searches = append(searches, job.snapshot())
	}
	m.mu.RUnlock()

	slices.SortFunc(searches, func(a, b *searchDomain.Search) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return slices.Compare(a.ID[:], b.ID[:])
	})
	return searches, nil
}

// Stop requests cancellation of a running search.
func (m *searchManager) Stop(ctx context.Context, searchID uuid.UUID) (*searchDomain.Search, error) {
	m.mu.RLock()
	job, ok := m.jobs[searchID]
	m.mu.RUnlock()
	if !ok {
		return nil, searchDomain.ErrSearchNotFound
	}

	job.mu.Lock()
	if job.search.Status == searchDomain.SearchRunning {
		job.search.Status = searchDomain.SearchStopping
		job.cancel()
	}
	job.mu.Unlock()

	return job.snapshot(), nil
}

// Shutdown cancels every search and waits for their goroutines to exit.
func (m *searchManager) Shutdown(ctx context.Context) error {
	// Closing under the write lock orders every wg.Add in Start before wg.Wait.
	m.mu.Lock()
	m.closed = true
	for _, job := range m.jobs {
		job.mu.Lock()
		if job.search.Status == searchDomain.SearchRunning {
			job.search.Status = searchDomain.SearchStopping
		}
		job.mu.Unlock()
		job.cancel()
	}
	m.mu.Unlock()

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return apperrors.Wrap(ctx.Err(), "timed out waiting for searches to stop")
	}
}
