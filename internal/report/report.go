package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"os-scheduler/internal/responses"
)

type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("unknown output format")

func ParseFormat(value string) (Format, error) {
	switch format := Format(strings.ToLower(strings.TrimSpace(value))); format {
	case Text, JSON, YAML:
		return format, nil
	case "":
		return Text, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, value)
}

func Write(w io.Writer, format Format, simulation responses.SimulationResponse) error {
	switch format {
	case JSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(simulation)
	case YAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(simulation); err != nil {
			return err
		}
		return encoder.Close()
	case Text:
		WriteText(w, simulation)
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// WriteText prints the console report: workload, one section per algorithm and the SJF performance analysis.
func WriteText(w io.Writer, simulation responses.SimulationResponse) {
	_, _ = fmt.Fprintf(w, "Run %s (seed %d)\n", simulation.RunId, simulation.Seed)
	_, _ = fmt.Fprintln(w, "Generated Processes:")
	for _, job := range simulation.Workload {
		_, _ = fmt.Fprintf(w, "ID: %d, Arrival Time: %d, Burst Time: %d, Priority: %d\n",
			job.ProcessId, job.ArrivalTime, job.BurstTime, job.Priority)
	}

	_, _ = fmt.Fprintf(w, "\n%s Simulation\n", simulation.ShortestJobFirst.Algorithm)
	for _, detail := range simulation.ShortestJobFirst.Details {
		_, _ = fmt.Fprintf(w, "Process ID: %d, Start Time: %d, Finish Time: %d, Waiting Time: %d\n",
			detail.ProcessId, detail.StartTime, detail.FinishTime, detail.WaitingTime)
	}
	outputGantt(w, simulation.ShortestJobFirst.Timeline)

	_, _ = fmt.Fprintf(w, "\n%s Simulation\n", simulation.PriorityWithAging.Algorithm)
	for _, detail := range simulation.PriorityWithAging.Details {
		_, _ = fmt.Fprintf(w, "Process ID: %d, Priority: %d, Start Time: %d, Finish Time: %d\n",
			detail.ProcessId, detail.Priority, detail.StartTime, detail.FinishTime)
	}
	outputGantt(w, simulation.PriorityWithAging.Timeline)

	_, _ = fmt.Fprintln(w, "\nPerformance Analysis")
	if simulation.Performance == nil {
		_, _ = fmt.Fprintln(w, "no processes to analyze")
		return
	}
	outputPerformance(w, *simulation.Performance)
}

func outputPerformance(w io.Writer, performance responses.PerformanceResponse) {
	rows := make([][]string, 0, len(performance.Details))
	for _, detail := range performance.Details {
		rows = append(rows, []string{
			fmt.Sprint(detail.ProcessId),
			fmt.Sprint(detail.WaitingTime),
			fmt.Sprint(detail.TurnAroundTime),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process ID", "Waiting Time", "Turnaround Time"})
	table.AppendBulk(rows)
	table.Render()

	_, _ = fmt.Fprintf(w, "Average Waiting Time: %.2f\n", performance.AverageWaitingTime)
	_, _ = fmt.Fprintf(w, "Average Turnaround Time: %.2f\n", performance.AverageTurnAroundTime)
}

// outputGantt draws one cell per execution slice, with idle gaps shown as "-".
func outputGantt(w io.Writer, timeline []responses.TimelineEntry) {
	if len(timeline) == 0 {
		return
	}
	type cell struct {
		label      string
		start, end int
	}
	cells := make([]cell, 0, len(timeline))
	clock := 0
	for _, entry := range timeline {
		if entry.Start > clock {
			cells = append(cells, cell{label: "-", start: clock, end: entry.Start})
		}
		cells = append(cells, cell{label: fmt.Sprintf("P%d", entry.ProcessId), start: entry.Start, end: entry.End})
		clock = entry.End
	}

	var bars, marks strings.Builder
	bars.WriteString("|")
	for _, c := range cells {
		width := len(c.label) + 2
		padding := width - len(c.label)
		bars.WriteString(strings.Repeat(" ", padding/2) + c.label + strings.Repeat(" ", padding-padding/2) + "|")

		mark := fmt.Sprint(c.start)
		marks.WriteString(mark + strings.Repeat(" ", max(width+1-len(mark), 1)))
	}
	marks.WriteString(fmt.Sprint(cells[len(cells)-1].end))

	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprintln(w, bars.String())
	_, _ = fmt.Fprintln(w, marks.String())
}
