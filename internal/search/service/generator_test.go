package service

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/jwtcrack/internal/search/domain"
)

func collect(g *Generator) []string {
	var out []string
	for {
		candidate, ok := g.Next()
		if !ok {
			return out
		}
		out = append(out, candidate)
	}
}

func TestGenerator_Sequence(t *testing.T) {
	g := NewGenerator(domain.Alphabet("ab"), domain.Range{Min: 1, Max: 2}, nil)

	assert.Equal(t, []string{"a", "b", "aa", "ab", "ba", "bb"}, collect(g))

	_, ok := g.Next()
	assert.False(t, ok, "exhausted generator stays exhausted")
	assert.False(t, g.Cancelled())
}

func TestGenerator_Counts(t *testing.T) {
	tests := []struct {
		name     string
		alphabet string
		r        domain.Range
	}{
		{name: "Binary1to4", alphabet: "01", r: domain.Range{Min: 1, Max: 4}},
		{name: "Ternary2to3", alphabet: "xyz", r: domain.Range{Min: 2, Max: 3}},
		{name: "Digits3", alphabet: domain.DigitChars, r: domain.Range{Min: 3, Max: 3}},
		{name: "SingleSymbol", alphabet: "q", r: domain.Range{Min: 1, Max: 5}},
		{name: "Unicode", alphabet: "αβγ", r: domain.Range{Min: 1, Max: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alphabet := domain.Alphabet(tt.alphabet)
			out := collect(NewGenerator(alphabet, tt.r, nil))

			n := len(alphabet)
			expectedTotal := 0
			perLength := map[int]int{}
			for length := tt.r.Min; length <= tt.r.Max; length++ {
				expectedTotal += int(math.Pow(float64(n), float64(length)))
			}
			assert.Len(t, out, expectedTotal)
			assert.Equal(t, int64(expectedTotal), domain.SpaceSize(n, tt.r).Int64())

			seen := make(map[string]struct{}, len(out))
			for _, candidate := range out {
				_, dup := seen[candidate]
				require.False(t, dup, "duplicate candidate %q", candidate)
				seen[candidate] = struct{}{}
				perLength[len([]rune(candidate))]++
			}
			for length := tt.r.Min; length <= tt.r.Max; length++ {
				assert.Equal(t, int(math.Pow(float64(n), float64(length))), perLength[length])
			}
		})
	}
}

func TestGenerator_OdometerOrder(t *testing.T) {
	alphabet := domain.Alphabet("cab")
	index := map[rune]int{'c': 0, 'a': 1, 'b': 2}
	out := collect(NewGenerator(alphabet, domain.Range{Min: 1, Max: 3}, nil))

	value := func(s string) int {
		v := 0
		for _, r := range s {
			v = v*len(alphabet) + index[r]
		}
		return v
	}

	for i := 1; i < len(out); i++ {
		prev, cur := out[i-1], out[i]
		if len(cur) == len(prev) {
			assert.Equal(t, value(prev)+1, value(cur), "%q -> %q", prev, cur)
		} else {
			assert.Equal(t, len(prev)+1, len(cur))
			assert.Equal(t, 0, value(cur), "new length starts at all-first-symbol")
		}
	}
	assert.Equal(t, "c", out[0])
	assert.Equal(t, "bbb", out[len(out)-1])
}

func TestGenerator_StartsAtMinLength(t *testing.T) {
	g := NewGenerator(domain.Alphabet("ab"), domain.Range{Min: 3, Max: 3}, nil)

	first, ok := g.Next()
	require.True(t, ok)
	assert.Equal(t, "aaa", first)
	assert.Len(t, collect(g), 7)
}

func TestGenerator_Cancellation(t *testing.T) {
	t.Run("CancelledBeforeFirstPull", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		g := NewGenerator(domain.Alphabet("ab"), domain.Range{Min: 1, Max: 2}, ctx.Done())
		_, ok := g.Next()
		assert.False(t, ok)
		assert.True(t, g.Cancelled())
	})

	t.Run("CancelledMidway", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		g := NewGenerator(domain.Alphabet("ab"), domain.Range{Min: 1, Max: 8}, ctx.Done())
		for range 3 {
			_, ok := g.Next()
			require.True(t, ok)
		}

		cancel()
		for range 5 {
			_, ok := g.Next()
			assert.False(t, ok)
		}
		assert.True(t, g.Cancelled())
	})

	t.Run("ExhaustedIsNotCancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		g := NewGenerator(domain.Alphabet("ab"), domain.Range{Min: 1, Max: 1}, ctx.Done())
		assert.Len(t, collect(g), 2)
		assert.False(t, g.Cancelled())
	})
}

func TestGenerator_EmptyAlphabet(t *testing.T) {
	g := NewGenerator(nil, domain.Range{Min: 1, Max: 3}, nil)
	_, ok := g.Next()
	assert.False(t, ok)
}
