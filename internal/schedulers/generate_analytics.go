package schedulers

import "os-scheduler/internal/core"

// task is the per-run state of one process. index is the position in the
// arrival-sorted input and is the final tie-break between equal candidates.
// completed implies remaining == 0.
type task struct {
	core.Process
	index     int
	remaining int
	completed bool
	level     int // feedback queue level, MLFQ only
}

func newTasks(processes []core.Process) []*task {
	tasks := make([]*task, len(processes))
	for i, p := range processes {
		tasks[i] = &task{Process: p, index: i, remaining: p.BurstTime}
	}
	return tasks
}

// precedes orders candidates by key, then arrival time, then input position.
func (t *task) precedes(other *task, key func(*task) int) bool {
	if a, b := key(t), key(other); a != b {
		return a < b
	}
	if t.ArrivalTime != other.ArrivalTime {
		return t.ArrivalTime < other.ArrivalTime
	}
	return t.index < other.index
}

// selectTask returns the best incomplete task that has arrived by now, or nil.
func selectTask(tasks []*task, now int, key func(*task) int) *task {
	var best *task
	for _, t := range tasks {
		if t.completed || t.ArrivalTime > now {
			continue
		}
		if best == nil || t.precedes(best, key) {
			best = t
		}
	}
	return best
}

// recorder collects the timeline and per-process times of one run.
type recorder struct {
	timeline   core.Timeline
	result     core.SimulationResult
	dispatched map[string]bool
}

func newRecorder(algorithm Algorithm, processCount int) *recorder {
	return &recorder{
		result: core.SimulationResult{
			Algorithm:       string(algorithm),
			WaitingTimes:    core.NewProcessTimes(processCount),
			TurnaroundTimes: core.NewProcessTimes(processCount),
			CompletionTimes: core.NewProcessTimes(processCount),
			ResponseTimes:   core.NewProcessTimes(processCount),
		},
		dispatched: make(map[string]bool, processCount),
	}
}

// run records a span that merges with the previous one of the same process.
func (r *recorder) run(t *task, start, end int) {
	r.markDispatched(t, start)
	r.timeline.Run(t.ID, start, end)
}

// dispatch records a span as its own segment.
func (r *recorder) dispatch(t *task, start, end int) {
	r.markDispatched(t, start)
	r.timeline.Dispatch(t.ID, start, end)
}

func (r *recorder) idle(start, end int) {
	r.timeline.Idle(start, end)
}

func (r *recorder) markDispatched(t *task, start int) {
	if r.dispatched[t.ID] {
		return
	}
	r.dispatched[t.ID] = true
	r.result.ResponseTimes.Set(t.ID, start-t.ArrivalTime)
}

// complete marks t finished at completion and records its times against the
// original burst time.
func (r *recorder) complete(t *task, completion int) {
	t.remaining = 0
	t.completed = true

	turnaround := completion - t.ArrivalTime
	r.result.CompletionTimes.Set(t.ID, completion)
	r.result.TurnaroundTimes.Set(t.ID, turnaround)
	r.result.WaitingTimes.Set(t.ID, turnaround-t.BurstTime)
}

func (r *recorder) finish() core.SimulationResult {
	result := r.result
	result.Segments = r.timeline.Segments()
	result.AverageWaitingTime = result.WaitingTimes.Average()
	result.AverageTurnaroundTime = result.TurnaroundTimes.Average()
	result.AverageResponseTime = result.ResponseTimes.Average()
	return result
}
