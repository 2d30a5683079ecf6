package core

import (
	"errors"
	"fmt"
)

// NotSet marks a start or finish time that has not been recorded yet.
const NotSet = -1

// HighestPriority is the lowest numeric priority value a process can reach.
const HighestPriority = 1

var ErrInvalidProcess = errors.New("invalid process")

type ProcessState int

const (
	NotArrived ProcessState = iota
	Ready
	Running
	Done
)

func (s ProcessState) String() string {
	switch s {
	case NotArrived:
		return "not-arrived"
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Done:
		return "done"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Process is one entry of a simulated workload. Each simulator works on its own copy.
type Process struct {
	Id            int
	ArrivalTime   int
	BurstTime     int
	Priority      int
	RemainingTime int
	StartTime     int
	FinishTime    int
	WaitingTime   int
	// AgedCount is how many times aging lowered Priority.
	AgedCount int
	State     ProcessState
}

func NewProcess(id, arrivalTime, burstTime, priority int) Process {
	return Process{
		Id:            id,
		ArrivalTime:   arrivalTime,
		BurstTime:     burstTime,
		Priority:      priority,
		RemainingTime: burstTime,
		StartTime:     NotSet,
		FinishTime:    NotSet,
		State:         NotArrived,
	}
}

func (p Process) TurnAroundTime() int {
	return p.FinishTime - p.ArrivalTime
}

func (p Process) ResponseTime() int {
	return p.StartTime - p.ArrivalTime
}

// CopyWorkload returns an independent copy of processes with run-time fields reset.
func CopyWorkload(processes []Process) []Process {
	copied := make([]Process, len(processes))
	for i, process := range processes {
		copied[i] = NewProcess(process.Id, process.ArrivalTime, process.BurstTime, process.Priority)
	}
	return copied
}

// AllDone reports whether no process owes CPU time. An empty workload is done.
func AllDone(processes []Process) bool {
	for _, process := range processes {
		if process.RemainingTime > 0 {
			return false
		}
	}
	return true
}

// ValidateWorkload rejects workloads a simulator could never finish.
func ValidateWorkload(processes []Process) error {
	seen := make(map[int]bool, len(processes))
	for _, process := range processes {
		switch {
		case process.Id < 1:
			return fmt.Errorf("%w: id %d must be positive", ErrInvalidProcess, process.Id)
		case seen[process.Id]:
			return fmt.Errorf("%w: duplicate id %d", ErrInvalidProcess, process.Id)
		case process.ArrivalTime < 0:
			return fmt.Errorf("%w: pid %d arrival time %d is negative", ErrInvalidProcess, process.Id, process.ArrivalTime)
		case process.BurstTime < 1:
			return fmt.Errorf("%w: pid %d burst time %d must be at least 1", ErrInvalidProcess, process.Id, process.BurstTime)
		case process.Priority < HighestPriority:
			return fmt.Errorf("%w: pid %d priority %d must be at least %d", ErrInvalidProcess, process.Id, process.Priority, HighestPriority)
		}
		seen[process.Id] = true
	}
	return nil
}
