package schedulers

import "os-scheduler/internal/core"

type Algorithm string

const (
	ShortestJobFirst  Algorithm = "Shortest Job First (SJF)"
	PriorityWithAging Algorithm = "Priority Scheduling with Aging"
)

// Simulation is the final state of one scheduler run.
type Simulation struct {
	Algorithm Algorithm
	// Processes is the simulator's own copy of the workload, in workload order.
	Processes []core.Process
	// Completed holds handles into Processes in completion order.
	Completed []core.Handle
	Metric    core.CpuMetric
	Timeline  []core.ScheduleTime
}

// CompletionOrder returns the processes in the order they finished.
func (s Simulation) CompletionOrder() []core.Process {
	ordered := make([]core.Process, 0, len(s.Completed))
	for _, handle := range s.Completed {
		ordered = append(ordered, s.Processes[handle])
	}
	return ordered
}
