package schedulers

import "os-scheduler/internal/core"

func byPriority(t *task) int { return t.Priority }

// SchedulePriority runs the arrived job with the lowest priority value to
// completion at every decision point. processes must be sorted by arrival time.
func SchedulePriority(processes []core.Process) core.SimulationResult {
	return scheduleNonPreemptive(PriorityNonPreemptive, processes, byPriority)
}

// SchedulePreemptivePriority re-evaluates priorities every time unit, so a
// newly arrived higher-priority job takes over at the next unit boundary.
func SchedulePreemptivePriority(processes []core.Process) core.SimulationResult {
	return schedulePreemptive(PriorityPreemptive, processes, byPriority)
}
