package domain

import (
	"time"

	tokenDomain "github.com/allisson/jwtcrack/internal/token/domain"
)

// Outcome is the terminal state of a search.
type Outcome string

const (
	// OutcomeFound means a candidate key verified.
	OutcomeFound Outcome = "found"
	// OutcomeExhausted means every candidate in the range was tried without a match.
	OutcomeExhausted Outcome = "exhausted"
	// OutcomeCancelled means the search stopped because cancellation was requested.
	OutcomeCancelled Outcome = "cancelled"
)

// SearchInput holds the parameters of one search.
type SearchInput struct {
	Token     string
	MinLength int
	MaxLength int
	// Charset, when non-empty, is used verbatim as the alphabet.
	Charset string
	Classes CharClass
	// Workers is the worker pool size; zero selects the number of CPUs.
	Workers int
}

// Result is the outcome of a finished search.
type Result struct {
	Outcome  Outcome
	Key      string
	Claims   tokenDomain.Claims
	Attempts uint64
	Elapsed  time.Duration
}

// Found reports whether the search recovered a key.
func (r *Result) Found() bool {
	return r.Outcome == OutcomeFound
}
