package core

import "os-scheduler/internal/util"

// ProcessTimes maps process ids to a time value and remembers the order in
// which ids were first set.
type ProcessTimes struct {
	ids    []string
	values map[string]int
}

func NewProcessTimes(capacity int) ProcessTimes {
	return ProcessTimes{
		ids:    make([]string, 0, capacity),
		values: make(map[string]int, capacity),
	}
}

func (t *ProcessTimes) Set(id string, value int) {
	if t.values == nil {
		t.values = make(map[string]int)
	}
	if _, ok := t.values[id]; !ok {
		t.ids = append(t.ids, id)
	}
	t.values[id] = value
}

func (t ProcessTimes) Get(id string) (int, bool) {
	v, ok := t.values[id]
	return v, ok
}

// IDs returns the ids in insertion order.
func (t ProcessTimes) IDs() []string {
	out := make([]string, len(t.ids))
	copy(out, t.ids)
	return out
}

// Values returns the values in insertion order.
func (t ProcessTimes) Values() []int {
	out := make([]int, len(t.ids))
	for i, id := range t.ids {
		out[i] = t.values[id]
	}
	return out
}

func (t ProcessTimes) Len() int {
	return len(t.ids)
}

func (t ProcessTimes) Average() float64 {
	return util.CalculateAverage(t.Values())
}

// SimulationResult is the outcome of one scheduling run. WaitingTimes,
// TurnaroundTimes and CompletionTimes are ordered by completion; ResponseTimes
// is ordered by first dispatch.
type SimulationResult struct {
	Algorithm string
	Segments  []Segment

	WaitingTimes    ProcessTimes
	TurnaroundTimes ProcessTimes
	CompletionTimes ProcessTimes
	ResponseTimes   ProcessTimes

	AverageWaitingTime    float64
	AverageTurnaroundTime float64
	AverageResponseTime   float64
}

// BusyTime returns the time attributed to process id across all segments.
func (r SimulationResult) BusyTime(id string) int {
	var total int
	for _, s := range r.Segments {
		if !s.Idle && s.ProcessID == id {
			total += s.Duration()
		}
	}
	return total
}
