// Package service implements the brute-force search engine: a lazy odometer
// generator over an alphabet and a parallel coordinator that fans candidates
// out to a worker pool.
package service

// Source produces candidates one at a time. Implementations need not be safe
// for concurrent use; the Coordinator serializes calls to Next.
type Source interface {
	// Next returns the next candidate, or false once the source is exhausted or cancelled.
	Next() (string, bool)
	// Cancelled reports whether the source stopped because cancellation was requested.
	Cancelled() bool
}

// VerifyFunc reports whether candidate is the key being searched for.
type VerifyFunc func(candidate string) bool

// Observer is notified once per attempted candidate. It must not block.
type Observer func(candidate string)
