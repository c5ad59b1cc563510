package schedulers

import "os-scheduler/internal/core"

func byBurstTime(t *task) int     { return t.BurstTime }
func byRemainingTime(t *task) int { return t.remaining }

// ScheduleShortestJobFirst picks the shortest arrived job at every decision
// point and runs it to completion. processes must be sorted by arrival time.
func ScheduleShortestJobFirst(processes []core.Process) core.SimulationResult {
	return scheduleNonPreemptive(ShortestJobFirst, processes, byBurstTime)
}

// ScheduleShortestRemainingTimeFirst re-evaluates every time unit and runs the
// arrived job with the least remaining time. processes must be sorted by
// arrival time.
func ScheduleShortestRemainingTimeFirst(processes []core.Process) core.SimulationResult {
	return schedulePreemptive(ShortestRemainingTimeFirst, processes, byRemainingTime)
}

// scheduleNonPreemptive runs the task minimizing key to completion at each
// decision point. When nothing has arrived the CPU idles for one unit.
func scheduleNonPreemptive(algorithm Algorithm, processes []core.Process, key func(*task) int) core.SimulationResult {
	tasks := newTasks(processes)
	rec := newRecorder(algorithm, len(tasks))

	currentTime, completed := 0, 0
	for completed < len(tasks) {
		next := selectTask(tasks, currentTime, key)
		if next == nil {
			rec.idle(currentTime, currentTime+1)
			currentTime++
			continue
		}

		rec.dispatch(next, currentTime, currentTime+next.remaining)
		currentTime += next.remaining
		rec.complete(next, currentTime)
		completed++
	}

	return rec.finish()
}

// schedulePreemptive runs the task minimizing key for a single time unit and
// then chooses again, so a better candidate takes the CPU at the next unit
// boundary.
func schedulePreemptive(algorithm Algorithm, processes []core.Process, key func(*task) int) core.SimulationResult {
	tasks := newTasks(processes)
	rec := newRecorder(algorithm, len(tasks))

	currentTime, completed := 0, 0
	for completed < len(tasks) {
		next := selectTask(tasks, currentTime, key)
		if next == nil {
			rec.idle(currentTime, currentTime+1)
			currentTime++
			continue
		}

		rec.run(next, currentTime, currentTime+1)
		next.remaining--
		currentTime++
		if next.remaining <= 0 {
			rec.complete(next, currentTime)
			completed++
		}
	}

	return rec.finish()
}
