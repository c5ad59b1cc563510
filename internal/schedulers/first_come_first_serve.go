package schedulers

import "os-scheduler/internal/core"

// ScheduleFirstComeFirstServe runs processes to completion in arrival order.
// processes must be sorted by arrival time.
func ScheduleFirstComeFirstServe(processes []core.Process) core.SimulationResult {
	rec := newRecorder(FirstComeFirstServe, len(processes))

	currentTime := 0
	for _, t := range newTasks(processes) {
		if currentTime < t.ArrivalTime {
			rec.idle(currentTime, t.ArrivalTime)
			currentTime = t.ArrivalTime
		}
		rec.dispatch(t, currentTime, currentTime+t.BurstTime)
		currentTime += t.BurstTime
		rec.complete(t, currentTime)
	}

	return rec.finish()
}
