package service

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/jwtcrack/internal/search/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewCoordinator_DefaultWorkers(t *testing.T) {
	assert.Positive(t, NewCoordinator(0, testLogger()).Workers())
	assert.Equal(t, 3, NewCoordinator(3, testLogger()).Workers())
}

func TestCoordinator_Search(t *testing.T) {
	alphabet := domain.Alphabet("abc")
	r := domain.Range{Min: 1, Max: 4}

	t.Run("Found", func(t *testing.T) {
		for _, workers := range []int{1, 4, 16} {
			c := NewCoordinator(workers, testLogger())
			key, outcome := c.Search(
				NewGenerator(alphabet, r, nil),
				func(candidate string) bool { return candidate == "cab" },
				nil,
			)
			assert.Equal(t, domain.OutcomeFound, outcome)
			assert.Equal(t, "cab", key)
		}
	})

	t.Run("Exhausted_ObservesEveryCandidateOnce", func(t *testing.T) {
		var (
			mu   sync.Mutex
			seen = map[string]int{}
		)
		c := NewCoordinator(8, testLogger())
		key, outcome := c.Search(
			NewGenerator(alphabet, r, nil),
			func(string) bool { return false },
			func(candidate string) {
				mu.Lock()
				seen[candidate]++
				mu.Unlock()
			},
		)

		assert.Equal(t, domain.OutcomeExhausted, outcome)
		assert.Empty(t, key)
		assert.Len(t, seen, int(domain.SpaceSize(len(alphabet), r).Int64()))
		for candidate, count := range seen {
			assert.Equal(t, 1, count, candidate)
		}
	})

	t.Run("StopsPullingAfterMatch", func(t *testing.T) {
		var attempts atomic.Int64
		c := NewCoordinator(1, testLogger())
		key, outcome := c.Search(
			NewGenerator(alphabet, r, nil),
			func(candidate string) bool {
				attempts.Add(1)
				return candidate == "b"
			},
			nil,
		)

		assert.Equal(t, domain.OutcomeFound, outcome)
		assert.Equal(t, "b", key)
		assert.Equal(t, int64(2), attempts.Load())
	})

	t.Run("PanicIsTreatedAsNoMatch", func(t *testing.T) {
		c := NewCoordinator(4, testLogger())
		key, outcome := c.Search(
			NewGenerator(alphabet, r, nil),
			func(candidate string) bool {
				if candidate == "aa" {
					panic("boom")
				}
				return candidate == "ccc"
			},
			nil,
		)

		assert.Equal(t, domain.OutcomeFound, outcome)
		assert.Equal(t, "ccc", key)
	})
}

func TestCoordinator_Cancellation(t *testing.T) {
	const issuedBeforeCancel = 10

	t.Run("SingleWorkerStopsExactly", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var verified atomic.Int64
		c := NewCoordinator(1, testLogger())
		key, outcome := c.Search(
			NewGenerator(domain.Alphabet(domain.DefaultCharset), domain.Range{Min: 1, Max: 8}, ctx.Done()),
			func(string) bool {
				if verified.Add(1) == issuedBeforeCancel {
					cancel()
				}
				return false
			},
			nil,
		)

		assert.Equal(t, domain.OutcomeCancelled, outcome)
		assert.Empty(t, key)
		assert.Equal(t, int64(issuedBeforeCancel), verified.Load())
	})

	t.Run("PoolDrainsInFlightWork", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		gen := NewGenerator(domain.Alphabet(domain.DefaultCharset), domain.Range{Min: 1, Max: 8}, ctx.Done())
		var verified atomic.Int64
		c := NewCoordinator(8, testLogger())
		_, outcome := c.Search(
			gen,
			func(string) bool {
				if verified.Add(1) == issuedBeforeCancel {
					cancel()
				}
				return false
			},
			nil,
		)

		assert.Equal(t, domain.OutcomeCancelled, outcome)
		assert.GreaterOrEqual(t, verified.Load(), int64(issuedBeforeCancel))

		drained := verified.Load()
		_, ok := gen.Next()
		assert.False(t, ok)
		assert.Equal(t, drained, verified.Load(), "no verification after the pool drained")
	})

	t.Run("AlreadyCancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var verified atomic.Int64
		c := NewCoordinator(4, testLogger())
		_, outcome := c.Search(
			NewGenerator(domain.Alphabet("ab"), domain.Range{Min: 1, Max: 2}, ctx.Done()),
			func(string) bool {
				verified.Add(1)
				return true
			},
			nil,
		)

		assert.Equal(t, domain.OutcomeCancelled, outcome)
		require.Zero(t, verified.Load())
	})
}
