package schedulers

import "os-scheduler/internal/core"

// ScheduleMultilevelFeedbackQueue uses one round-robin level per entry of
// levelsTimeQuantum plus a final first-come-first-serve level. Arrivals enter
// the first level and a job that uses its whole slice moves down one level.
// The highest non-empty level is always served first; a running slice is
// never interrupted. processes must be sorted by arrival time and every
// quantum must be positive.
func ScheduleMultilevelFeedbackQueue(processes []core.Process, levelsTimeQuantum []int) core.SimulationResult {
	tasks := newTasks(processes)
	rec := newRecorder(MultilevelFeedbackQueue, len(tasks))

	levels := make([]processQueue, len(levelsTimeQuantum)+1)
	last := len(levels) - 1

	incoming := arrivals{tasks: tasks}
	enterFirstLevel := func(t *task) {
		t.level = 0
		levels[0].AddToEnd(t)
	}

	currentTime, completed := 0, 0
	incoming.admit(currentTime, enterFirstLevel)
	for completed < len(tasks) {
		current, ok := nextFromLevels(levels)
		if !ok {
			next := incoming.nextArrival()
			rec.idle(currentTime, next)
			currentTime = next
			incoming.admit(currentTime, enterFirstLevel)
			continue
		}

		l := current.level
		slice := current.remaining
		if l < last {
			slice = min(levelsTimeQuantum[l], current.remaining)
		}
		rec.dispatch(current, currentTime, currentTime+slice)
		current.remaining -= slice
		currentTime += slice

		incoming.admit(currentTime, enterFirstLevel)
		if current.remaining > 0 {
			demoted := min(l+1, last)
			current.level = demoted
			levels[demoted].AddToEnd(current)
		} else {
			rec.complete(current, currentTime)
			completed++
		}
	}

	return rec.finish()
}

func nextFromLevels(levels []processQueue) (*task, bool) {
	for i := range levels {
		if t, ok := levels[i].RemoveFromTop(); ok {
			return t, true
		}
	}
	return nil, false
}
