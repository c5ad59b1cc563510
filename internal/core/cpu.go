package core

// CpuMetric summarizes how the simulated CPU spent the timeline.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Utilization is the busy fraction of the timeline, 0 for an empty run.
func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}

// Throughput is completed processes per time unit.
func (m CpuMetric) Throughput(processCount int) float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(processCount) / float64(m.TotalTime)
}

// Metrics derives CPU usage from the result's segments.
func (r SimulationResult) Metrics() CpuMetric {
	var metric CpuMetric
	for _, s := range r.Segments {
		if s.Idle {
			metric.IdleTime += s.Duration()
		} else {
			metric.UtilizationTime += s.Duration()
		}
	}
	if n := len(r.Segments); n > 0 {
		metric.TotalTime = r.Segments[n-1].End - r.Segments[0].Start
	}
	return metric
}
