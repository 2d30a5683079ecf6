package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
)

func scenarioResponse() responses.SimulationResponse {
	return responses.SimulationResponse{
		RunId: "run-1",
		Seed:  3,
		Workload: []requests.Job{
			{ProcessId: 1, ArrivalTime: 0, BurstTime: 5, Priority: 3},
			{ProcessId: 2, ArrivalTime: 1, BurstTime: 3, Priority: 1},
			{ProcessId: 3, ArrivalTime: 2, BurstTime: 1, Priority: 2},
		},
		ShortestJobFirst: responses.ScheduleResponse{
			Algorithm: "Shortest Job First (SJF)",
			Details: []responses.ProcessResponse{
				{ProcessId: 1, StartTime: 0, FinishTime: 5, WaitingTime: 0},
				{ProcessId: 3, StartTime: 5, FinishTime: 6, WaitingTime: 3},
				{ProcessId: 2, StartTime: 6, FinishTime: 9, WaitingTime: 5},
			},
			Timeline: []responses.TimelineEntry{{ProcessId: 1, Start: 0, End: 5}, {ProcessId: 3, Start: 5, End: 6}, {ProcessId: 2, Start: 6, End: 9}},
		},
		PriorityWithAging: responses.ScheduleResponse{
			Algorithm: "Priority Scheduling with Aging",
			Details: []responses.ProcessResponse{
				{ProcessId: 1, Priority: 3, StartTime: 0, FinishTime: 5},
				{ProcessId: 2, Priority: 1, StartTime: 5, FinishTime: 8},
				{ProcessId: 3, Priority: 1, StartTime: 8, FinishTime: 9},
			},
			Timeline: []responses.TimelineEntry{{ProcessId: 1, Start: 0, End: 5}, {ProcessId: 2, Start: 5, End: 8}, {ProcessId: 3, Start: 8, End: 9}},
		},
		Performance: &responses.PerformanceResponse{
			AverageWaitingTime:    8.0 / 3.0,
			AverageTurnAroundTime: 17.0 / 3.0,
			Details: []responses.PerformanceDetail{
				{ProcessId: 1, WaitingTime: 0, TurnAroundTime: 5},
				{ProcessId: 2, WaitingTime: 5, TurnAroundTime: 8},
				{ProcessId: 3, WaitingTime: 3, TurnAroundTime: 4},
			},
		},
	}
}

func TestParseFormat(t *testing.T) {
	var testCases = []struct {
		value    string
		expected Format
		hasError bool
	}{
		{value: "", expected: Text},
		{value: "text", expected: Text},
		{value: " JSON ", expected: JSON},
		{value: "yaml", expected: YAML},
		{value: "xml", hasError: true},
	}
	for _, testCase := range testCases {
		format, err := ParseFormat(testCase.value)
		if testCase.hasError {
			assert.ErrorIs(t, err, ErrUnknownFormat)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, testCase.expected, format, testCase.value)
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Text, scenarioResponse()))
	output := buf.String()

	expectedLines := []string{
		"Generated Processes:",
		"ID: 2, Arrival Time: 1, Burst Time: 3, Priority: 1",
		"Shortest Job First (SJF) Simulation",
		"Process ID: 3, Start Time: 5, Finish Time: 6, Waiting Time: 3",
		"| P1 | P3 | P2 |",
		"Priority Scheduling with Aging Simulation",
		"Process ID: 3, Priority: 1, Start Time: 8, Finish Time: 9",
		"Performance Analysis",
		"PROCESS ID",
		"Average Waiting Time: 2.67",
		"Average Turnaround Time: 5.67",
	}
	for _, line := range expectedLines {
		assert.Contains(t, output, line)
	}
	assert.Less(t, strings.Index(output, "Process ID: 1, Start"), strings.Index(output, "Process ID: 3, Start"))
	assert.Less(t, strings.Index(output, "Process ID: 3, Start"), strings.Index(output, "Process ID: 2, Start"))
}

func TestWriteTextWithoutProcesses(t *testing.T) {
	var buf bytes.Buffer
	WriteText(&buf, responses.SimulationResponse{RunId: "empty"})
	assert.Contains(t, buf.String(), "no processes to analyze")
	assert.NotContains(t, buf.String(), "Average")
}

func TestOutputGanttShowsIdle(t *testing.T) {
	var buf bytes.Buffer
	outputGantt(&buf, []responses.TimelineEntry{{ProcessId: 1, Start: 3, End: 5}})
	assert.Contains(t, buf.String(), "| - | P1 |")
	assert.Contains(t, buf.String(), "0   3    5")
}

func TestWriteStructured(t *testing.T) {
	var jsonBuf bytes.Buffer
	require.NoError(t, Write(&jsonBuf, JSON, scenarioResponse()))
	var decoded responses.SimulationResponse
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &decoded))
	assert.Equal(t, scenarioResponse(), decoded)

	var yamlBuf bytes.Buffer
	require.NoError(t, Write(&yamlBuf, YAML, scenarioResponse()))
	assert.Contains(t, yamlBuf.String(), "run_id: run-1")
	var document map[string]interface{}
	require.NoError(t, yaml.Unmarshal(yamlBuf.Bytes(), &document))
	assert.Contains(t, document, "performance")

	assert.ErrorIs(t, Write(&jsonBuf, Format("xml"), scenarioResponse()), ErrUnknownFormat)
}
