package schedulers

import (
	"fmt"
	"log"

	"os-scheduler/internal/core"
)

const DefaultAgingThreshold = 5

// SchedulePriorityWithAging runs non-preemptive priority scheduling on a copy
// of workload. Lower priority values run first and every dispatch runs the
// full burst.
//
// Before each dispatch, every queued process whose time since arrival is at
// least agingThreshold has its priority value lowered by one, down to
// core.HighestPriority. The check is against arrival, not the last aging, so
// a process keeps aging on every dispatch round once it crosses the threshold.
func SchedulePriorityWithAging(workload []core.Process, agingThreshold int) (Simulation, error) {
	log.Println("running priority with aging algorithm with agingThreshold = ", agingThreshold)
	if agingThreshold < 0 {
		return Simulation{}, fmt.Errorf("aging threshold must not be negative, got %d", agingThreshold)
	}
	if err := core.ValidateWorkload(workload); err != nil {
		return Simulation{}, err
	}

	processes := core.CopyWorkload(workload)
	cpu := core.NewCpu()
	readyQueue := core.NewReadyQueue(len(processes))
	completed := make([]core.Handle, 0, len(processes))

	for {
		cpu.Admit(readyQueue, processes)
		if readyQueue.Len() == 0 {
			if core.AllDone(processes) {
				break
			}
			cpu.Idle()
			continue
		}

		agePriorities(readyQueue, processes, cpu.Clock, agingThreshold)
		sortHighestPriority(readyQueue, processes)
		handle, _ := readyQueue.PopFront()
		process := &processes[handle]

		cpu.Dispatch(process)
		cpu.Execute(process, process.BurstTime)
		completed = append(completed, handle)

		log.Println("pid:", process.Id, "completed. priority:", process.Priority, "start:", process.StartTime, "finish:", process.FinishTime)
	}

	return Simulation{
		Algorithm: PriorityWithAging,
		Processes: processes,
		Completed: completed,
		Metric:    cpu.Metric,
		Timeline:  cpu.Timeline,
	}, nil
}

func agePriorities(readyQueue *core.ReadyQueue, processes []core.Process, clock, agingThreshold int) {
	for _, handle := range readyQueue.Handles() {
		process := &processes[handle]
		if clock-process.ArrivalTime < agingThreshold {
			continue
		}
		if process.Priority > core.HighestPriority {
			process.Priority--
			process.AgedCount++
			log.Println("pid:", process.Id, "aged to priority", process.Priority)
		}
	}
}

// sortHighestPriority orders the ready queue by priority value; ties keep queue order.
func sortHighestPriority(readyQueue *core.ReadyQueue, processes []core.Process) {
	readyQueue.SortStable(func(a, b core.Handle) bool {
		return processes[a].Priority < processes[b].Priority
	})
}
