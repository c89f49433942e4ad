package domain

import (
	"time"

	"github.com/google/uuid"
)

// SearchStatus is the lifecycle state of a background search.
type SearchStatus string

const (
	SearchRunning  SearchStatus = "running"
	SearchStopping SearchStatus = "stopping"
	SearchFinished SearchStatus = "finished"
	SearchFailed   SearchStatus = "failed"
)

// Search is a snapshot of a background search job.
type Search struct {
	ID         uuid.UUID
	Status     SearchStatus
	MinLength  int
	MaxLength  int
	Alphabet   string
	SpaceSize  string
	Attempts   uint64
	Current    string
	Result     *Result
	Error      string
	CreatedAt  time.Time
	FinishedAt *time.Time
}
