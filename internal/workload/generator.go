package workload

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"os-scheduler/internal/core"
	"os-scheduler/internal/requests"
)

var ErrInvalidJob = errors.New("invalid job")

const (
	// MaxJobs bounds the number of processes in one workload.
	MaxJobs = 1000
	// MaxJobValue bounds arrival time, burst time and priority of posted jobs
	// so the simulated clock stays small.
	MaxJobValue = 10_000
)

// Limits bounds the randomized attributes of generated processes.
type Limits struct {
	// MaxArrivalTime is exclusive.
	MaxArrivalTime int
	MaxBurstTime   int
	MaxPriority    int
}

func DefaultLimits() Limits {
	return Limits{MaxArrivalTime: 10, MaxBurstTime: 10, MaxPriority: 5}
}

func (l Limits) Validate() error {
	if l.MaxArrivalTime < 1 {
		return fmt.Errorf("max arrival time must be at least 1, got %d", l.MaxArrivalTime)
	}
	if l.MaxBurstTime < 1 {
		return fmt.Errorf("max burst time must be at least 1, got %d", l.MaxBurstTime)
	}
	if l.MaxPriority < core.HighestPriority {
		return fmt.Errorf("max priority must be at least %d, got %d", core.HighestPriority, l.MaxPriority)
	}
	if l.MaxArrivalTime > MaxJobValue || l.MaxBurstTime > MaxJobValue || l.MaxPriority > MaxJobValue {
		return fmt.Errorf("limits must not exceed %d, got %+v", MaxJobValue, l)
	}
	return nil
}

type Generator struct {
	random *rand.Rand
	limits Limits
}

func NewGenerator(source rand.Source, limits Limits) (*Generator, error) {
	if err := limits.Validate(); err != nil {
		return nil, err
	}
	return &Generator{random: rand.New(source), limits: limits}, nil
}

// NewSeededGenerator seeds from the wall clock when seed is 0 and returns the seed it used.
func NewSeededGenerator(seed int64, limits Limits) (*Generator, int64, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	generator, err := NewGenerator(rand.NewSource(seed), limits)
	return generator, seed, err
}

// Generate returns count processes with ids 1..count.
func (g *Generator) Generate(count int) []core.Process {
	if count < 0 {
		count = 0
	}
	processes := make([]core.Process, 0, count)
	for i := 0; i < count; i++ {
		arrivalTime := g.random.Intn(g.limits.MaxArrivalTime)
		burstTime := g.random.Intn(g.limits.MaxBurstTime) + 1
		priority := g.random.Intn(g.limits.MaxPriority) + core.HighestPriority
		processes = append(processes, core.NewProcess(i+1, arrivalTime, burstTime, priority))
	}
	return processes
}

// FromJobs builds a workload from request jobs. Jobs without an id get the next free sequential one.
func FromJobs(jobs []requests.Job) ([]core.Process, error) {
	if len(jobs) > MaxJobs {
		return nil, fmt.Errorf("%w: %d jobs, at most %d allowed", ErrInvalidJob, len(jobs), MaxJobs)
	}
	for _, job := range jobs {
		if err := checkJobBounds(job); err != nil {
			return nil, err
		}
	}

	used := make(map[int]bool, len(jobs))
	for _, job := range jobs {
		if job.ProcessId != 0 {
			used[job.ProcessId] = true
		}
	}

	nextId := 1
	processes := make([]core.Process, 0, len(jobs))
	for _, job := range jobs {
		id := job.ProcessId
		if id == 0 {
			for used[nextId] {
				nextId++
			}
			id = nextId
			used[id] = true
		}
		processes = append(processes, core.NewProcess(id, job.ArrivalTime, job.BurstTime, job.Priority))
	}

	if err := core.ValidateWorkload(processes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJob, err)
	}
	return processes, nil
}

func checkJobBounds(job requests.Job) error {
	switch {
	case job.ArrivalTime > MaxJobValue:
		return fmt.Errorf("%w: pid %d arrival time %d exceeds %d", ErrInvalidJob, job.ProcessId, job.ArrivalTime, MaxJobValue)
	case job.BurstTime > MaxJobValue:
		return fmt.Errorf("%w: pid %d burst time %d exceeds %d", ErrInvalidJob, job.ProcessId, job.BurstTime, MaxJobValue)
	case job.Priority > MaxJobValue:
		return fmt.Errorf("%w: pid %d priority %d exceeds %d", ErrInvalidJob, job.ProcessId, job.Priority, MaxJobValue)
	}
	return nil
}

func ToJobs(processes []core.Process) []requests.Job {
	jobs := make([]requests.Job, 0, len(processes))
	for _, process := range processes {
		jobs = append(jobs, requests.Job{
			ProcessId:   process.Id,
			ArrivalTime: process.ArrivalTime,
			BurstTime:   process.BurstTime,
			Priority:    process.Priority,
		})
	}
	return jobs
}
