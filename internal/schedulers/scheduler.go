package schedulers

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"os-scheduler/internal/core"
)

// Algorithm names a scheduling discipline.
type Algorithm string

const (
	FirstComeFirstServe        Algorithm = "fcfs"
	ShortestJobFirst           Algorithm = "sjf-non-preemptive"
	ShortestRemainingTimeFirst Algorithm = "sjf-preemptive"
	PriorityNonPreemptive      Algorithm = "priority-non-preemptive"
	PriorityPreemptive         Algorithm = "priority-preemptive"
	RoundRobin                 Algorithm = "round-robin"
	MultilevelFeedbackQueue    Algorithm = "mlfq"
)

var (
	ErrUnknownAlgorithm   = errors.New("unknown algorithm")
	ErrInvalidTimeQuantum = errors.New("time quantum must be a positive integer")
)

var algorithms = []Algorithm{
	FirstComeFirstServe,
	ShortestJobFirst,
	ShortestRemainingTimeFirst,
	PriorityNonPreemptive,
	PriorityPreemptive,
	RoundRobin,
	MultilevelFeedbackQueue,
}

// Algorithms lists every supported discipline in a fixed order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)
	return out
}

// ParseAlgorithm accepts the canonical names and a few common aliases.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "fcfs", "first-come-first-serve":
		return FirstComeFirstServe, nil
	case "sjf", "sjf-non-preemptive", "shortest-job-first":
		return ShortestJobFirst, nil
	case "srtf", "sjf-preemptive", "shortest-remaining-time-first":
		return ShortestRemainingTimeFirst, nil
	case "priority", "priority-non-preemptive":
		return PriorityNonPreemptive, nil
	case "priority-preemptive":
		return PriorityPreemptive, nil
	case "rr", "round-robin":
		return RoundRobin, nil
	case "mlfq", "multilevel-feedback-queue":
		return MultilevelFeedbackQueue, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Options carries the per-algorithm parameters. Fields that do not apply to
// the chosen algorithm are ignored.
type Options struct {
	TimeQuantum       int
	LevelsTimeQuantum []int
}

// Simulate runs one algorithm over processes. The input is copied and sorted
// by arrival time (ties keep input order) before dispatch. Burst times are
// expected to be positive; a non-positive burst still terminates but its
// times are meaningless.
func Simulate(algorithm Algorithm, processes []core.Process, opts Options) (core.SimulationResult, error) {
	sorted := core.SortByArrival(processes)

	switch algorithm {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(sorted), nil
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(sorted), nil
	case ShortestRemainingTimeFirst:
		return ScheduleShortestRemainingTimeFirst(sorted), nil
	case PriorityNonPreemptive:
		return SchedulePriority(sorted), nil
	case PriorityPreemptive:
		return SchedulePreemptivePriority(sorted), nil
	case RoundRobin:
		if opts.TimeQuantum < 1 {
			return core.SimulationResult{}, fmt.Errorf("%s: %w", algorithm, ErrInvalidTimeQuantum)
		}
		return ScheduleRoundRobin(sorted, opts.TimeQuantum), nil
	case MultilevelFeedbackQueue:
		for _, q := range opts.LevelsTimeQuantum {
			if q < 1 {
				return core.SimulationResult{}, fmt.Errorf("%s: level %w", algorithm, ErrInvalidTimeQuantum)
			}
		}
		return ScheduleMultilevelFeedbackQueue(sorted, opts.LevelsTimeQuantum), nil
	}
	return core.SimulationResult{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
}

// Compare runs every algorithm concurrently over the same processes and
// returns the results in Algorithms() order.
func Compare(ctx context.Context, processes []core.Process, opts Options) ([]core.SimulationResult, error) {
	results := make([]core.SimulationResult, len(algorithms))

	g, ctx := errgroup.WithContext(ctx)
	for i, algorithm := range algorithms {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := Simulate(algorithm, processes, opts)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
