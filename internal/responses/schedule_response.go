package responses

import "os-scheduler/internal/requests"

type ProcessResponse struct {
	ProcessId      int `json:"process_id" yaml:"process_id"`
	ArrivalTime    int `json:"arrival_time" yaml:"arrival_time"`
	BurstTime      int `json:"burst_time" yaml:"burst_time"`
	Priority       int `json:"priority" yaml:"priority"`
	AgedCount      int `json:"aged_count,omitempty" yaml:"aged_count,omitempty"`
	StartTime      int `json:"start_time" yaml:"start_time"`
	FinishTime     int `json:"finish_time" yaml:"finish_time"`
	WaitingTime    int `json:"waiting_time" yaml:"waiting_time"`
	ResponseTime   int `json:"response_time" yaml:"response_time"`
	TurnAroundTime int `json:"turn_around_time" yaml:"turn_around_time"`
}

// TimelineEntry is one CPU slice; ArrivalTime is when the process was submitted.
type TimelineEntry struct {
	ProcessId   int `json:"process_id" yaml:"process_id"`
	ArrivalTime int `json:"arrival_time" yaml:"arrival_time"`
	Start       int `json:"start" yaml:"start"`
	End         int `json:"end" yaml:"end"`
}

// ScheduleResponse is the outcome of one algorithm; Details are in completion order.
type ScheduleResponse struct {
	Algorithm      string            `json:"algorithm" yaml:"algorithm"`
	TotalTime      int               `json:"total_time" yaml:"total_time"`
	IdleTime       int               `json:"idle_time" yaml:"idle_time"`
	CpuUtilization float64           `json:"cpu_utilization" yaml:"cpu_utilization"`
	CpuThroughput  float64           `json:"cpu_throughput" yaml:"cpu_throughput"`
	Details        []ProcessResponse `json:"details" yaml:"details"`
	Timeline       []TimelineEntry   `json:"timeline" yaml:"timeline"`
}

type PerformanceDetail struct {
	ProcessId      int `json:"process_id" yaml:"process_id"`
	WaitingTime    int `json:"waiting_time" yaml:"waiting_time"`
	TurnAroundTime int `json:"turn_around_time" yaml:"turn_around_time"`
}

type PerformanceResponse struct {
	AverageWaitingTime    float64             `json:"average_waiting_time" yaml:"average_waiting_time"`
	AverageTurnAroundTime float64             `json:"average_turn_around_time" yaml:"average_turn_around_time"`
	Details               []PerformanceDetail `json:"details" yaml:"details"`
}

// SimulationResponse is a full run: the workload, both algorithms and the SJF performance analysis.
type SimulationResponse struct {
	RunId             string               `json:"run_id" yaml:"run_id"`
	Seed              int64                `json:"seed,omitempty" yaml:"seed,omitempty"`
	Workload          []requests.Job       `json:"workload" yaml:"workload"`
	ShortestJobFirst  ScheduleResponse     `json:"shortest_job_first" yaml:"shortest_job_first"`
	PriorityWithAging ScheduleResponse     `json:"priority_with_aging" yaml:"priority_with_aging"`
	Performance       *PerformanceResponse `json:"performance,omitempty" yaml:"performance,omitempty"`
}
