package requests

import (
	"errors"
	"fmt"

	"os-scheduler/internal/core"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrInvalidJob     = errors.New("invalid job")
)

type Job struct {
	ProcessId   string `json:"process_id" yaml:"process_id"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int    `json:"burst_time" yaml:"burst_time"`
	Priority    int    `json:"priority" yaml:"priority"`
}

type ScheduleRequests struct {
	Algorithm         string `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`
	TimeQuantum       int    `json:"time_quantum,omitempty" yaml:"time_quantum,omitempty"`
	LevelsTimeQuantum []int  `json:"levels_time_quantum,omitempty" yaml:"levels_time_quantum,omitempty"`
	Jobs              []Job  `json:"jobs" yaml:"jobs"`
}

// Normalize fills in defaults: a missing process id becomes P<n> for the
// n-th job and a missing priority becomes 1.
func (r *ScheduleRequests) Normalize() {
	for i := range r.Jobs {
		if r.Jobs[i].ProcessId == "" {
			r.Jobs[i].ProcessId = fmt.Sprintf("P%d", i+1)
		}
		if r.Jobs[i].Priority == 0 {
			r.Jobs[i].Priority = 1
		}
	}
}

// Validate reports every problem with the jobs at once.
func (r *ScheduleRequests) Validate() error {
	if len(r.Jobs) == 0 {
		return fmt.Errorf("%w: at least one job is required", ErrInvalidRequest)
	}
	if r.TimeQuantum < 0 {
		return fmt.Errorf("%w: time quantum must not be negative", ErrInvalidRequest)
	}

	var errs []error
	seen := make(map[string]bool, len(r.Jobs))
	for i, job := range r.Jobs {
		if err := job.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("job %d: %w", i+1, err))
		}
		if seen[job.ProcessId] {
			errs = append(errs, fmt.Errorf("job %d: %w: duplicate process id %q", i+1, ErrInvalidJob, job.ProcessId))
		}
		seen[job.ProcessId] = true
	}
	return errors.Join(errs...)
}

func (j Job) Validate() error {
	var errs []error
	if j.ProcessId == "" {
		errs = append(errs, fmt.Errorf("%w: process id is required", ErrInvalidJob))
	}
	if j.BurstTime <= 0 {
		errs = append(errs, fmt.Errorf("%w: burst time must be positive, got %d", ErrInvalidJob, j.BurstTime))
	}
	if j.ArrivalTime < 0 {
		errs = append(errs, fmt.Errorf("%w: arrival time must not be negative, got %d", ErrInvalidJob, j.ArrivalTime))
	}
	if j.Priority < 1 {
		errs = append(errs, fmt.Errorf("%w: priority must be at least 1, got %d", ErrInvalidJob, j.Priority))
	}
	return errors.Join(errs...)
}

// Processes converts the jobs, in request order.
func (r *ScheduleRequests) Processes() []core.Process {
	processes := make([]core.Process, len(r.Jobs))
	for i, job := range r.Jobs {
		processes[i] = core.Process{
			ID:          job.ProcessId,
			BurstTime:   job.BurstTime,
			ArrivalTime: job.ArrivalTime,
			Priority:    job.Priority,
		}
	}
	return processes
}
