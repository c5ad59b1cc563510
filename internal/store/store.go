package store

import (
	"context"
	"time"

	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
)

// Run is one persisted simulation.
type Run struct {
	ID          string
	Algorithm   string
	TimeQuantum int
	Jobs        []requests.Job
	Response    responses.ScheduleResponse
	CreatedAt   time.Time
}

// Store persists simulation runs.
type Store interface {
	SaveRun(ctx context.Context, run *Run) error
	// GetRun returns nil, nil when no run has the id.
	GetRun(ctx context.Context, id string) (*Run, error)
	// ListRuns returns the most recent runs first.
	ListRuns(ctx context.Context, limit int) ([]*Run, error)

	Close() error
	Migrate(ctx context.Context) error
}
