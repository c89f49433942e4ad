package service

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress(t *testing.T) {
	t.Run("CountsEveryAttemptAndNeverBlocks", func(t *testing.T) {
		p := NewProgress(4)

		var wg sync.WaitGroup
		for range 8 {
			wg.Go(func() {
				for range 100 {
					p.Observe("x")
				}
			})
		}
		wg.Wait()

		assert.Equal(t, uint64(800), p.Attempts())
		assert.Len(t, p.Updates(), 4)
	})

	t.Run("DrainReturnsMostRecent", func(t *testing.T) {
		p := NewProgress(8)
		p.Observe("a")
		p.Observe("b")
		p.Observe("c")

		last, ok := p.Drain()
		assert.True(t, ok)
		assert.Equal(t, "c", last)

		_, ok = p.Drain()
		assert.False(t, ok)
		assert.Equal(t, uint64(3), p.Attempts())
	})

	t.Run("MinimumBuffer", func(t *testing.T) {
		p := NewProgress(0)
		p.Observe("a")
		p.Observe("b")
		last, ok := p.Drain()
		assert.True(t, ok)
		assert.Equal(t, "b", last)
	})

	t.Run("FullQueueKeepsNewest", func(t *testing.T) {
		p := NewProgress(16)
		for i := 1; i <= 10000; i++ {
			p.Observe(strconv.Itoa(i))
		}

		assert.Len(t, p.Updates(), 16)

		last, ok := p.Drain()
		assert.True(t, ok)
		assert.Equal(t, "10000", last)
		assert.Equal(t, uint64(10000), p.Attempts())

		p.Observe("10001")
		last, ok = p.Drain()
		assert.True(t, ok)
		assert.Equal(t, "10001", last)
	})
}
