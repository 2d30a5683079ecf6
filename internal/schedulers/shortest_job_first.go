package schedulers

import (
	"log"

	"os-scheduler/internal/core"
)

// ScheduleShortestJobFirst runs non-preemptive SJF on a copy of workload. The
// arrived process with the least remaining time runs to completion.
func ScheduleShortestJobFirst(workload []core.Process) (Simulation, error) {
	log.Println("running sjf algorithm ...")
	if err := core.ValidateWorkload(workload); err != nil {
		return Simulation{}, err
	}

	processes := core.CopyWorkload(workload)
	cpu := core.NewCpu()
	readyQueue := core.NewReadyQueue(len(processes))
	completed := make([]core.Handle, 0, len(processes))

	for len(completed) < len(processes) {
		cpu.Admit(readyQueue, processes)
		if readyQueue.Len() == 0 {
			cpu.Idle()
			continue
		}

		sortShortestJob(readyQueue, processes)
		handle, _ := readyQueue.PopFront()
		process := &processes[handle]

		cpu.Dispatch(process)
		cpu.Execute(process, process.RemainingTime)
		process.WaitingTime = process.FinishTime - process.ArrivalTime - process.BurstTime
		completed = append(completed, handle)

		log.Println("pid:", process.Id, "completed. start:", process.StartTime, "finish:", process.FinishTime, "waiting:", process.WaitingTime)
	}

	return Simulation{
		Algorithm: ShortestJobFirst,
		Processes: processes,
		Completed: completed,
		Metric:    cpu.Metric,
		Timeline:  cpu.Timeline,
	}, nil
}

// sortShortestJob orders the ready queue by remaining time; ties keep queue order.
func sortShortestJob(readyQueue *core.ReadyQueue, processes []core.Process) {
	readyQueue.SortStable(func(a, b core.Handle) bool {
		return processes[a].RemainingTime < processes[b].RemainingTime
	})
}
