package service

import "sync/atomic"

// Progress collects attempt notifications from workers. Workers only ever
// send into it; a single consumer polls Attempts and Updates.
type Progress struct {
	attempts atomic.Uint64
	updates  chan string
}

// NewProgress creates a Progress whose update queue holds up to buffer candidates.
func NewProgress(buffer int) *Progress {
	if buffer < 1 {
		buffer = 1
	}
	return &Progress{
		updates: make(chan string, buffer),
	}
}

// Observe records an attempt. It never blocks: when the queue is full the
// oldest queued candidate is discarded so the newest one is always kept.
func (p *Progress) Observe(candidate string) {
	p.attempts.Add(1)
	for {
		select {
		case p.updates <- candidate:
			return
		default:
		}
		select {
		case <-p.updates:
		default:
		}
	}
}

// Attempts returns the number of candidates observed so far.
func (p *Progress) Attempts() uint64 {
	return p.attempts.Load()
}

// Updates returns the queue of recently attempted candidates.
func (p *Progress) Updates() <-chan string {
	return p.updates
}

// Drain empties the queue without blocking and returns the most recent candidate.
func (p *Progress) Drain() (string, bool) {
	var (
		last string
		ok   bool
	)
	for {
		select {
		case candidate := <-p.updates:
			last, ok = candidate, true
		default:
			return last, ok
		}
	}
}
