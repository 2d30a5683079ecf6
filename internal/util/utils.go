package util

import (
	"errors"

	"os-scheduler/internal/responses"
)

var ErrNoProcesses = errors.New("no processes to analyze")

// CalculateAverage returns the unweighted means of waiting and turnaround time.
func CalculateAverage(processDetails []responses.PerformanceDetail) (averageWaitingTime, averageTurnAroundTime float64, err error) {
	if len(processDetails) == 0 {
		return 0, 0, ErrNoProcesses
	}

	var waitingTimeSum int
	var turnAroundTimeSum int
	for _, process := range processDetails {
		waitingTimeSum += process.WaitingTime
		turnAroundTimeSum += process.TurnAroundTime
	}

	processCount := float64(len(processDetails))

	averageWaitingTime = float64(waitingTimeSum) / processCount
	averageTurnAroundTime = float64(turnAroundTimeSum) / processCount
	return
}
