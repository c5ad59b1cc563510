package core

import "sort"

// Process describes one schedulable unit of work. Lower Priority values run first.
type Process struct {
	ID          string `json:"id" yaml:"id"`
	BurstTime   int    `json:"burst_time" yaml:"burst_time"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrival_time"`
	Priority    int    `json:"priority" yaml:"priority"`
}

// Segment is one contiguous span of the timeline. Idle segments have no process.
type Segment struct {
	ProcessID string `json:"process_id,omitempty" yaml:"process_id,omitempty"`
	Start     int    `json:"start" yaml:"start"`
	End       int    `json:"end" yaml:"end"`
	Idle      bool   `json:"idle,omitempty" yaml:"idle,omitempty"`
}

func (s Segment) Duration() int {
	return s.End - s.Start
}

// SortByArrival returns a copy of processes ordered by arrival time.
// Processes arriving together keep their input order.
func SortByArrival(processes []Process) []Process {
	sorted := make([]Process, len(processes))
	copy(sorted, processes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ArrivalTime < sorted[j].ArrivalTime
	})
	return sorted
}
