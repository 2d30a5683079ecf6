package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProcess(t *testing.T) {
	process := NewProcess(1, 2, 7, 3)
	assert.Equal(t, 7, process.RemainingTime)
	assert.Equal(t, NotSet, process.StartTime)
	assert.Equal(t, NotSet, process.FinishTime)
	assert.Equal(t, NotArrived, process.State)
}

func TestCopyWorkloadIsIndependent(t *testing.T) {
	original := []Process{NewProcess(1, 0, 4, 2), NewProcess(2, 1, 3, 1)}
	original[0].FinishTime = 9
	original[0].State = Done

	copied := CopyWorkload(original)
	copied[1].Priority = 5

	assert.Equal(t, NotSet, copied[0].FinishTime)
	assert.Equal(t, NotArrived, copied[0].State)
	assert.Equal(t, 1, original[1].Priority)
}

func TestAllDone(t *testing.T) {
	assert.True(t, AllDone(nil))
	processes := []Process{NewProcess(1, 0, 2, 1)}
	assert.False(t, AllDone(processes))
	processes[0].RemainingTime = 0
	assert.True(t, AllDone(processes))
}

func TestValidateWorkload(t *testing.T) {
	var testCases = []struct {
		description string
		processes   []Process
		valid       bool
	}{
		{description: "empty", valid: true},
		{description: "valid", processes: []Process{NewProcess(1, 0, 1, 1), NewProcess(2, 9, 10, 5)}, valid: true},
		{description: "zero id", processes: []Process{NewProcess(0, 0, 1, 1)}},
		{description: "duplicate id", processes: []Process{NewProcess(1, 0, 1, 1), NewProcess(1, 2, 1, 1)}},
		{description: "negative arrival", processes: []Process{NewProcess(1, -1, 1, 1)}},
		{description: "zero burst", processes: []Process{NewProcess(1, 0, 0, 1)}},
		{description: "zero priority", processes: []Process{NewProcess(1, 0, 1, 0)}},
	}

	for _, testCase := range testCases {
		err := ValidateWorkload(testCase.processes)
		if testCase.valid {
			assert.NoError(t, err, testCase.description)
			continue
		}
		assert.True(t, errors.Is(err, ErrInvalidProcess), testCase.description)
	}
}

func TestReadyQueueAdmit(t *testing.T) {
	processes := []Process{NewProcess(1, 0, 3, 1), NewProcess(2, 4, 1, 1), NewProcess(3, 2, 2, 1)}
	queue := NewReadyQueue(len(processes))

	assert.Equal(t, 1, queue.Admit(processes, 0))
	assert.Equal(t, 0, queue.Admit(processes, 0), "already queued processes are not admitted twice")
	assert.Equal(t, 1, queue.Admit(processes, 3))
	assert.Equal(t, []Handle{0, 2}, queue.Handles())
	assert.Equal(t, Ready, processes[2].State)
	assert.Equal(t, NotArrived, processes[1].State)
}

func TestReadyQueueSkipsFinished(t *testing.T) {
	processes := []Process{NewProcess(1, 0, 3, 1)}
	processes[0].RemainingTime = 0
	queue := NewReadyQueue(1)
	assert.Equal(t, 0, queue.Admit(processes, 10))
}

func TestReadyQueueSortStableAndPop(t *testing.T) {
	processes := []Process{NewProcess(1, 0, 5, 1), NewProcess(2, 0, 2, 1), NewProcess(3, 0, 5, 1), NewProcess(4, 0, 2, 1)}
	queue := NewReadyQueue(len(processes))
	queue.Admit(processes, 0)

	queue.SortStable(func(a, b Handle) bool {
		return processes[a].BurstTime < processes[b].BurstTime
	})
	assert.Equal(t, []Handle{1, 3, 0, 2}, queue.Handles())

	front, ok := queue.PopFront()
	require.True(t, ok)
	assert.Equal(t, Handle(1), front)
	assert.Equal(t, 3, queue.Len())

	empty := NewReadyQueue(0)
	_, ok = empty.PopFront()
	assert.False(t, ok)
}

func TestCpuLifecycle(t *testing.T) {
	processes := []Process{NewProcess(7, 2, 4, 1)}
	cpu := NewCpu()
	queue := NewReadyQueue(1)

	assert.Equal(t, 0, cpu.Admit(queue, processes))
	assert.Equal(t, CpuAdmitting, cpu.State)
	cpu.Idle()
	cpu.Idle()
	assert.Equal(t, CpuIdle, cpu.State)
	assert.Equal(t, 1, cpu.Admit(queue, processes))

	handle, _ := queue.PopFront()
	process := &processes[handle]
	cpu.Dispatch(process)
	assert.Equal(t, CpuDispatching, cpu.State)
	assert.Equal(t, Running, process.State)
	assert.Equal(t, 2, process.StartTime)

	cpu.Execute(process, process.RemainingTime)
	assert.Equal(t, CpuCompleted, cpu.State)
	assert.Equal(t, 6, cpu.Clock)
	assert.Equal(t, 6, process.FinishTime)
	assert.Equal(t, 0, process.RemainingTime)
	assert.Equal(t, Done, process.State)
	assert.Equal(t, CpuMetric{TotalTime: 6, UtilizationTime: 4, IdleTime: 2}, cpu.Metric)
	assert.Equal(t, []ScheduleTime{{ProcessId: 7, Submission: 2, Execution: 2, Complete: 6}}, cpu.Timeline)
}

func TestDispatchKeepsFirstStartTime(t *testing.T) {
	process := NewProcess(1, 0, 3, 1)
	process.StartTime = 1
	cpu := NewCpu()
	cpu.Clock = 5
	cpu.Dispatch(&process)
	assert.Equal(t, 1, process.StartTime)
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "ready", Ready.String())
	assert.Equal(t, "running", CpuRunning.String())
	assert.Equal(t, "state(9)", ProcessState(9).String())
}
