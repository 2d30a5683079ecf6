package core

import "fmt"

type CpuState int

const (
	CpuIdle CpuState = iota
	CpuAdmitting
	CpuDispatching
	CpuRunning
	CpuCompleted
)

func (s CpuState) String() string {
	switch s {
	case CpuIdle:
		return "idle"
	case CpuAdmitting:
		return "admitting"
	case CpuDispatching:
		return "dispatching"
	case CpuRunning:
		return "running"
	case CpuCompleted:
		return "completed"
	}
	return fmt.Sprintf("cpu-state(%d)", int(s))
}

// ScheduleTime is one contiguous slice of simulated CPU time given to a process.
type ScheduleTime struct {
	ProcessId  int
	Submission int
	Execution  int
	Complete   int
}

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Cpu is a single simulated core driven by a logical clock. A dispatched
// process always runs its whole requested duration in one step.
type Cpu struct {
	Clock    int
	State    CpuState
	Metric   CpuMetric
	Timeline []ScheduleTime
}

func NewCpu() *Cpu {
	return &Cpu{
		State:    CpuIdle,
		Timeline: make([]ScheduleTime, 0),
	}
}

// Admit moves arrived processes into queue at the current clock.
func (c *Cpu) Admit(queue *ReadyQueue, processes []Process) int {
	c.State = CpuAdmitting
	return queue.Admit(processes, c.Clock)
}

// Idle advances the clock by one unit with nothing to run.
func (c *Cpu) Idle() {
	c.State = CpuIdle
	c.Clock++
	c.Metric.IdleTime++
	c.Metric.TotalTime = c.Clock
}

// Dispatch hands the CPU to process, recording its first start time.
func (c *Cpu) Dispatch(process *Process) {
	c.State = CpuDispatching
	process.State = Running
	if process.StartTime == NotSet {
		process.StartTime = c.Clock
	}
}

// Execute runs process for duration units and completes it.
func (c *Cpu) Execute(process *Process, duration int) {
	c.State = CpuRunning
	slice := ScheduleTime{
		ProcessId:  process.Id,
		Submission: process.ArrivalTime,
		Execution:  c.Clock,
	}
	c.Clock += duration
	c.Metric.UtilizationTime += duration
	c.Metric.TotalTime = c.Clock

	slice.Complete = c.Clock
	c.Timeline = append(c.Timeline, slice)

	process.FinishTime = c.Clock
	process.RemainingTime = 0
	process.State = Done
	c.State = CpuCompleted
}
