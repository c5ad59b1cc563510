package schedulers

import "os-scheduler/internal/core"

type processQueue struct {
	queue []*task
}

func (q *processQueue) AddToEnd(t *task) {
	q.queue = append(q.queue, t)
}

func (q *processQueue) RemoveFromTop() (*task, bool) {
	if len(q.queue) == 0 {
		return nil, false
	}
	t := q.queue[0]
	q.queue[0] = nil
	q.queue = q.queue[1:]
	return t, true
}

func (q *processQueue) Len() int {
	return len(q.queue)
}

// arrivals walks tasks in arrival order. tasks must be sorted by arrival time.
type arrivals struct {
	tasks []*task
	next  int
}

// admit hands every task arriving at or before now to enqueue, in arrival order.
func (a *arrivals) admit(now int, enqueue func(*task)) {
	for a.next < len(a.tasks) && a.tasks[a.next].ArrivalTime <= now {
		enqueue(a.tasks[a.next])
		a.next++
	}
}

// nextArrival must only be called while some task has not been admitted.
func (a *arrivals) nextArrival() int {
	return a.tasks[a.next].ArrivalTime
}

// ScheduleRoundRobin serves a FIFO ready queue, giving each dispatch at most
// timeQuantum units. Jobs that arrive during a slice are queued ahead of the
// job being preempted. processes must be sorted by arrival time and
// timeQuantum must be positive.
func ScheduleRoundRobin(processes []core.Process, timeQuantum int) core.SimulationResult {
	tasks := newTasks(processes)
	rec := newRecorder(RoundRobin, len(tasks))

	var ready processQueue
	incoming := arrivals{tasks: tasks}

	currentTime, completed := 0, 0
	incoming.admit(currentTime, ready.AddToEnd)
	for completed < len(tasks) {
		current, ok := ready.RemoveFromTop()
		if !ok {
			// queue is empty, so at least one job has not arrived yet
			next := incoming.nextArrival()
			rec.idle(currentTime, next)
			currentTime = next
			incoming.admit(currentTime, ready.AddToEnd)
			continue
		}

		slice := min(timeQuantum, current.remaining)
		rec.dispatch(current, currentTime, currentTime+slice)
		current.remaining -= slice
		currentTime += slice

		incoming.admit(currentTime, ready.AddToEnd)
		if current.remaining > 0 {
			ready.AddToEnd(current)
		} else {
			rec.complete(current, currentTime)
			completed++
		}
	}

	return rec.finish()
}
