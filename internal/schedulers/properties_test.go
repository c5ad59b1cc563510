package schedulers

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"os-scheduler/internal/core"
)

func randomProcesses(r *rand.Rand, n int, allAtZero bool) []core.Process {
	processes := make([]core.Process, n)
	for i := range processes {
		arrival := 0
		if !allAtZero {
			arrival = r.Intn(15)
		}
		processes[i] = core.Process{
			ID:          fmt.Sprintf("P%d", i+1),
			BurstTime:   1 + r.Intn(9),
			ArrivalTime: arrival,
			Priority:    1 + r.Intn(4),
		}
	}
	return processes
}

var testOptions = Options{TimeQuantum: 3, LevelsTimeQuantum: []int{2, 5}}

func checkInvariants(t *testing.T, algorithm Algorithm, processes []core.Process, result core.SimulationResult) {
	t.Helper()

	for _, maps := range []struct {
		name  string
		times core.ProcessTimes
	}{
		{"waiting", result.WaitingTimes},
		{"turnaround", result.TurnaroundTimes},
		{"completion", result.CompletionTimes},
		{"response", result.ResponseTimes},
	} {
		if maps.times.Len() != len(processes) {
			t.Errorf("%s: %s has %d entries, want %d", algorithm, maps.name, maps.times.Len(), len(processes))
		}
	}

	arrival := make(map[string]int, len(processes))
	for _, p := range processes {
		arrival[p.ID] = p.ArrivalTime

		waiting, _ := result.WaitingTimes.Get(p.ID)
		turnaround, _ := result.TurnaroundTimes.Get(p.ID)
		completion, _ := result.CompletionTimes.Get(p.ID)
		if turnaround != completion-p.ArrivalTime {
			t.Errorf("%s: %s turnaround %d != completion %d - arrival %d", algorithm, p.ID, turnaround, completion, p.ArrivalTime)
		}
		if waiting != turnaround-p.BurstTime {
			t.Errorf("%s: %s waiting %d != turnaround %d - burst %d", algorithm, p.ID, waiting, turnaround, p.BurstTime)
		}
		if turnaround < p.BurstTime {
			t.Errorf("%s: %s turnaround %d < burst %d", algorithm, p.ID, turnaround, p.BurstTime)
		}
		if busy := result.BusyTime(p.ID); busy != p.BurstTime {
			t.Errorf("%s: %s ran %d units, want %d", algorithm, p.ID, busy, p.BurstTime)
		}
	}

	if len(processes) > 0 && result.Segments[0].Start != 0 {
		t.Errorf("%s: timeline starts at %d", algorithm, result.Segments[0].Start)
	}
	for i, s := range result.Segments {
		if s.End <= s.Start {
			t.Errorf("%s: empty segment %+v", algorithm, s)
		}
		if i > 0 && result.Segments[i-1].End != s.Start {
			t.Errorf("%s: gap between %+v and %+v", algorithm, result.Segments[i-1], s)
		}
		if !s.Idle && s.Start < arrival[s.ProcessID] {
			t.Errorf("%s: %s runs at %d before arrival %d", algorithm, s.ProcessID, s.Start, arrival[s.ProcessID])
		}
	}

	if got, want := result.AverageWaitingTime, result.WaitingTimes.Average(); got != want {
		t.Errorf("%s: average waiting %v, want %v", algorithm, got, want)
	}
	if got, want := result.AverageTurnaroundTime, result.TurnaroundTimes.Average(); got != want {
		t.Errorf("%s: average turnaround %v, want %v", algorithm, got, want)
	}
}

func TestInvariantsHoldForRandomInput(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		processes := randomProcesses(r, 1+r.Intn(8), false)
		for _, algorithm := range Algorithms() {
			result, err := Simulate(algorithm, processes, testOptions)
			if err != nil {
				t.Fatalf("%s: %v", algorithm, err)
			}
			checkInvariants(t, algorithm, processes, result)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	for _, algorithm := range Algorithms() {
		result, err := Simulate(algorithm, nil, testOptions)
		if err != nil {
			t.Fatalf("%s: %v", algorithm, err)
		}
		if len(result.Segments) != 0 || result.WaitingTimes.Len() != 0 {
			t.Errorf("%s: non-empty result %+v", algorithm, result)
		}
		if result.AverageWaitingTime != 0 || result.AverageTurnaroundTime != 0 {
			t.Errorf("%s: averages = %v, %v", algorithm, result.AverageWaitingTime, result.AverageTurnaroundTime)
		}
	}
}

func TestFirstComeFirstServeFollowsArrivalOrder(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 20; round++ {
		processes := core.SortByArrival(randomProcesses(r, 6, false))
		result := ScheduleFirstComeFirstServe(processes)

		var order []string
		for _, s := range result.Segments {
			if !s.Idle {
				order = append(order, s.ProcessID)
			}
		}
		var want []string
		for _, p := range processes {
			want = append(want, p.ID)
		}
		if !reflect.DeepEqual(order, want) {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestPreemptiveMatchesNonPreemptiveWhenAllArriveAtZero(t *testing.T) {
	pairs := []struct{ preemptive, nonPreemptive Algorithm }{
		{ShortestRemainingTimeFirst, ShortestJobFirst},
		{PriorityPreemptive, PriorityNonPreemptive},
	}
	r := rand.New(rand.NewSource(11))
	for round := 0; round < 30; round++ {
		processes := randomProcesses(r, 1+r.Intn(7), true)
		for _, pair := range pairs {
			a, _ := Simulate(pair.preemptive, processes, Options{})
			b, _ := Simulate(pair.nonPreemptive, processes, Options{})
			if !reflect.DeepEqual(timesOf(t, a.WaitingTimes), timesOf(t, b.WaitingTimes)) {
				t.Errorf("%s vs %s waiting differ for %+v", pair.preemptive, pair.nonPreemptive, processes)
			}
			if !reflect.DeepEqual(timesOf(t, a.TurnaroundTimes), timesOf(t, b.TurnaroundTimes)) {
				t.Errorf("%s vs %s turnaround differ for %+v", pair.preemptive, pair.nonPreemptive, processes)
			}
		}
	}
}

func TestRoundRobinWithLargeQuantumMatchesFirstComeFirstServe(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for round := 0; round < 30; round++ {
		processes := randomProcesses(r, 1+r.Intn(7), false)
		fcfs, _ := Simulate(FirstComeFirstServe, processes, Options{})
		rr, _ := Simulate(RoundRobin, processes, Options{TimeQuantum: 10})
		if !reflect.DeepEqual(timesOf(t, fcfs.WaitingTimes), timesOf(t, rr.WaitingTimes)) {
			t.Errorf("waiting differ for %+v", processes)
		}
		if !reflect.DeepEqual(timesOf(t, fcfs.TurnaroundTimes), timesOf(t, rr.TurnaroundTimes)) {
			t.Errorf("turnaround differ for %+v", processes)
		}
	}
}

func TestMultilevelFeedbackQueueWithoutLevelsMatchesFirstComeFirstServe(t *testing.T) {
	processes := randomProcesses(rand.New(rand.NewSource(5)), 6, false)
	fcfs, _ := Simulate(FirstComeFirstServe, processes, Options{})
	mlfq, _ := Simulate(MultilevelFeedbackQueue, processes, Options{})
	if !reflect.DeepEqual(fcfs.Segments, mlfq.Segments) {
		t.Errorf("segments differ:\nfcfs %+v\nmlfq %+v", fcfs.Segments, mlfq.Segments)
	}
}

func TestSimulateIsIdempotent(t *testing.T) {
	processes := randomProcesses(rand.New(rand.NewSource(9)), 8, false)
	for _, algorithm := range Algorithms() {
		first, _ := Simulate(algorithm, processes, testOptions)
		second, _ := Simulate(algorithm, processes, testOptions)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s: results differ between runs", algorithm)
		}
	}
}

func TestSimulateErrors(t *testing.T) {
	processes := []core.Process{proc("P1", 1, 0, 1)}
	tests := []struct {
		algorithm Algorithm
		opts      Options
		want      error
	}{
		{"lottery", Options{}, ErrUnknownAlgorithm},
		{RoundRobin, Options{TimeQuantum: 0}, ErrInvalidTimeQuantum},
		{RoundRobin, Options{TimeQuantum: -2}, ErrInvalidTimeQuantum},
		{MultilevelFeedbackQueue, Options{LevelsTimeQuantum: []int{2, 0}}, ErrInvalidTimeQuantum},
	}
	for _, tt := range tests {
		if _, err := Simulate(tt.algorithm, processes, tt.opts); !errors.Is(err, tt.want) {
			t.Errorf("Simulate(%s, %+v) error = %v, want %v", tt.algorithm, tt.opts, err, tt.want)
		}
	}
}

func TestNonPositiveBurstTerminates(t *testing.T) {
	processes := []core.Process{
		proc("P1", 0, 0, 1),
		proc("P2", -2, 1, 2),
		proc("P3", 3, 1, 3),
	}
	for _, algorithm := range Algorithms() {
		done := make(chan core.SimulationResult, 1)
		go func() {
			result, _ := Simulate(algorithm, processes, testOptions)
			done <- result
		}()
		select {
		case result := <-done:
			if got := result.CompletionTimes.Len(); got != len(processes) {
				t.Errorf("%s: %d completions, want %d", algorithm, got, len(processes))
			}
		case <-time.After(5 * time.Second):
			t.Fatalf("%s did not terminate", algorithm)
		}
	}
}

func TestQuantumIgnoredOutsideRoundRobin(t *testing.T) {
	processes := []core.Process{proc("P1", 1, 0, 1)}
	if _, err := Simulate(ShortestJobFirst, processes, Options{TimeQuantum: 0}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := map[string]Algorithm{
		"fcfs":                FirstComeFirstServe,
		"sjf":                 ShortestJobFirst,
		"srtf":                ShortestRemainingTimeFirst,
		"sjf-preemptive":      ShortestRemainingTimeFirst,
		"priority":            PriorityNonPreemptive,
		"priority-preemptive": PriorityPreemptive,
		"rr":                  RoundRobin,
		"round-robin":         RoundRobin,
		"mlfq":                MultilevelFeedbackQueue,
	}
	for name, want := range tests {
		got, err := ParseAlgorithm(name)
		if err != nil || got != want {
			t.Errorf("ParseAlgorithm(%q) = %q, %v; want %q", name, got, err, want)
		}
	}
	if _, err := ParseAlgorithm("edf"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("ParseAlgorithm(edf) error = %v", err)
	}
}

func TestCompare(t *testing.T) {
	processes := []core.Process{proc("P1", 5, 0, 1), proc("P2", 3, 1, 2)}
	results, err := Compare(context.Background(), processes, testOptions)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if len(results) != len(Algorithms()) {
		t.Fatalf("got %d results, want %d", len(results), len(Algorithms()))
	}
	for i, algorithm := range Algorithms() {
		if results[i].Algorithm != string(algorithm) {
			t.Errorf("results[%d].Algorithm = %q, want %q", i, results[i].Algorithm, algorithm)
		}
		checkInvariants(t, algorithm, processes, results[i])
	}
}

func TestCompareReportsInvalidQuantum(t *testing.T) {
	_, err := Compare(context.Background(), []core.Process{proc("P1", 1, 0, 1)}, Options{})
	if !errors.Is(err, ErrInvalidTimeQuantum) {
		t.Errorf("error = %v, want %v", err, ErrInvalidTimeQuantum)
	}
}
