package schedulers

import (
	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/util"
)

// AnalyzePerformance computes waiting and turnaround time per process, in the
// given order, and their averages. It returns util.ErrNoProcesses for an empty workload.
func AnalyzePerformance(processes []core.Process) (responses.PerformanceResponse, error) {
	details := make([]responses.PerformanceDetail, 0, len(processes))
	for _, process := range processes {
		details = append(details, responses.PerformanceDetail{
			ProcessId:      process.Id,
			WaitingTime:    process.WaitingTime,
			TurnAroundTime: process.TurnAroundTime(),
		})
	}

	averageWaitingTime, averageTurnAroundTime, err := util.CalculateAverage(details)
	if err != nil {
		return responses.PerformanceResponse{}, err
	}
	return responses.PerformanceResponse{
		AverageWaitingTime:    averageWaitingTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		Details:               details,
	}, nil
}

// GenerateResponse converts a simulation into its response, details in completion order.
func GenerateResponse(simulation Simulation) responses.ScheduleResponse {
	details := make([]responses.ProcessResponse, 0, len(simulation.Completed))
	for _, process := range simulation.CompletionOrder() {
		details = append(details, generateProcessDetails(process))
	}

	timeline := make([]responses.TimelineEntry, 0, len(simulation.Timeline))
	for _, slice := range simulation.Timeline {
		timeline = append(timeline, responses.TimelineEntry{
			ProcessId:   slice.ProcessId,
			ArrivalTime: slice.Submission,
			Start:       slice.Execution,
			End:         slice.Complete,
		})
	}

	metric := simulation.Metric
	var utilization, throughput float64
	if metric.TotalTime > 0 {
		utilization = float64(metric.UtilizationTime) / float64(metric.TotalTime)
		throughput = float64(len(simulation.Completed)) / float64(metric.TotalTime)
	}

	return responses.ScheduleResponse{
		Algorithm:      string(simulation.Algorithm),
		TotalTime:      metric.TotalTime,
		IdleTime:       metric.IdleTime,
		CpuUtilization: utilization,
		CpuThroughput:  throughput,
		Details:        details,
		Timeline:       timeline,
	}
}

func generateProcessDetails(process core.Process) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      process.Id,
		ArrivalTime:    process.ArrivalTime,
		BurstTime:      process.BurstTime,
		Priority:       process.Priority,
		AgedCount:      process.AgedCount,
		StartTime:      process.StartTime,
		FinishTime:     process.FinishTime,
		WaitingTime:    process.WaitingTime,
		ResponseTime:   process.ResponseTime(),
		TurnAroundTime: process.TurnAroundTime(),
	}
}
