package service

import (
	"github.com/allisson/jwtcrack/internal/search/domain"
)

// Generator enumerates every string over an alphabet with lengths in a Range,
// ascending by length and, within a length, in odometer order where the last
// position turns fastest. It is lazy, finite and single-use.
type Generator struct {
	alphabet      domain.Alphabet
	maxLength     int
	currentLength int
	indices       []int
	buf           []rune
	newLength     bool
	done          <-chan struct{}
	cancelled     bool
}

// NewGenerator creates a Generator. done is the cancellation signal (usually
// ctx.Done()); a nil channel means the generator can't be cancelled.
func NewGenerator(alphabet domain.Alphabet, r domain.Range, done <-chan struct{}) *Generator {
	return &Generator{
		alphabet:      alphabet,
		maxLength:     r.Max,
		currentLength: r.Min,
		newLength:     true,
		done:          done,
	}
}

// Next returns the next candidate. Once it returns false, every later call
// returns false too.
func (g *Generator) Next() (string, bool) {
	if g.cancelled || g.signalled() {
		g.cancelled = true
		return "", false
	}
	if g.currentLength > g.maxLength || len(g.alphabet) == 0 {
		return "", false
	}

	if g.newLength {
		g.reset()
	} else if !g.increment() {
		g.currentLength++
		if g.currentLength > g.maxLength {
			return "", false
		}
		g.reset()
	}

	for i, idx := range g.indices {
		g.buf[i] = g.alphabet[idx]
	}
	return string(g.buf), true
}

// Cancelled reports whether the generator stopped on the cancellation signal.
func (g *Generator) Cancelled() bool {
	return g.cancelled
}

func (g *Generator) signalled() bool {
	if g.done == nil {
		return false
	}
	select {
	case <-g.done:
		return true
	default:
		return false
	}
}

// reset zeroes the odometer for currentLength.
func (g *Generator) reset() {
	if cap(g.indices) < g.currentLength {
		g.indices = make([]int, g.currentLength)
		g.buf = make([]rune, g.currentLength)
	} else {
		g.indices = g.indices[:g.currentLength]
		g.buf = g.buf[:g.currentLength]
		clear(g.indices)
	}
	g.newLength = false
}

// increment advances the odometer by one. Returns false when the carry runs
// past the first position, leaving every position at zero.
func (g *Generator) increment() bool {
	base := len(g.alphabet)
	for i := len(g.indices) - 1; i >= 0; i-- {
		g.indices[i]++
		if g.indices[i] < base {
			return true
		}
		g.indices[i] = 0
	}
	g.newLength = true
	return false
}
