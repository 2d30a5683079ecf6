package requests

type Job struct {
	ProcessId   int `json:"process_id" yaml:"process_id"`
	ArrivalTime int `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int `json:"burst_time" yaml:"burst_time"`
	Priority    int `json:"priority" yaml:"priority"`
}

// ScheduleRequests carries an explicit workload, or generation parameters when Jobs is empty.
type ScheduleRequests struct {
	Jobs         []Job `json:"jobs" yaml:"jobs"`
	Seed         int64 `json:"seed,omitempty" yaml:"seed,omitempty"`
	ProcessCount int   `json:"process_count,omitempty" yaml:"process_count,omitempty"`
}
