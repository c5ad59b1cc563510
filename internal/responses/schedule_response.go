package responses

import "os-scheduler/internal/core"

type ProcessResponse struct {
	ProcessId      string `json:"process_id" yaml:"process_id"`
	ArrivalTime    int    `json:"arrival_time" yaml:"arrival_time"`
	BurstTime      int    `json:"burst_time" yaml:"burst_time"`
	Priority       int    `json:"priority" yaml:"priority"`
	CompletionTime int    `json:"completion_time" yaml:"completion_time"`
	ResponseTime   int    `json:"response_time" yaml:"response_time"`
	TurnAroundTime int    `json:"turn_around_time" yaml:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time" yaml:"waiting_time"`
}

type ScheduleResponse struct {
	RunId                 string            `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Algorithm             string            `json:"algorithm" yaml:"algorithm"`
	TotalTime             int               `json:"total_time" yaml:"total_time"`
	IdleTime              int               `json:"idle_time" yaml:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time" yaml:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time" yaml:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time" yaml:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization" yaml:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput" yaml:"cpu_throughput"`
	Timeline              []core.Segment    `json:"timeline" yaml:"timeline"`
	Details               []ProcessResponse `json:"details" yaml:"details"`
}

// NewScheduleResponse flattens a result. Details follow completion order.
func NewScheduleResponse(result core.SimulationResult, processes []core.Process) ScheduleResponse {
	byID := make(map[string]core.Process, len(processes))
	for _, p := range processes {
		byID[p.ID] = p
	}

	details := make([]ProcessResponse, 0, result.TurnaroundTimes.Len())
	for _, id := range result.TurnaroundTimes.IDs() {
		p := byID[id]
		detail := ProcessResponse{
			ProcessId:   id,
			ArrivalTime: p.ArrivalTime,
			BurstTime:   p.BurstTime,
			Priority:    p.Priority,
		}
		detail.CompletionTime, _ = result.CompletionTimes.Get(id)
		detail.ResponseTime, _ = result.ResponseTimes.Get(id)
		detail.TurnAroundTime, _ = result.TurnaroundTimes.Get(id)
		detail.WaitingTime, _ = result.WaitingTimes.Get(id)
		details = append(details, detail)
	}

	metric := result.Metrics()
	timeline := result.Segments
	if timeline == nil {
		timeline = []core.Segment{}
	}
	return ScheduleResponse{
		Algorithm:             result.Algorithm,
		TotalTime:             metric.TotalTime,
		IdleTime:              metric.IdleTime,
		AverageWaitingTime:    result.AverageWaitingTime,
		AverageResponseTime:   result.AverageResponseTime,
		AverageTurnAroundTime: result.AverageTurnaroundTime,
		CpuUtilization:        metric.Utilization(),
		CpuThroughput:         metric.Throughput(len(details)),
		Timeline:              timeline,
		Details:               details,
	}
}
