package simulation

import (
	"context"
	"errors"
	"log"
	"strconv"

	"github.com/google/uuid"

	"os-scheduler/config"
	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/schedulers"
	"os-scheduler/internal/tracing"
	"os-scheduler/internal/util"
	"os-scheduler/internal/workload"
)

// Runner drives the workload through both schedulers and analyzes the SJF result.
type Runner struct {
	config *config.SchedulerConfig
}

func NewRunner(config *config.SchedulerConfig) *Runner {
	return &Runner{config: config}
}

// Generate builds count processes from seed, or from the wall clock when seed is 0.
// It returns the seed that was used.
func (r *Runner) Generate(seed int64, count int) ([]core.Process, int64, error) {
	generator, usedSeed, err := workload.NewSeededGenerator(seed, r.config.Limits())
	if err != nil {
		return nil, 0, err
	}
	return generator.Generate(count), usedSeed, nil
}

// Run simulates processes with each algorithm on its own copy. Performance is
// nil when there is nothing to analyze.
func (r *Runner) Run(ctx context.Context, processes []core.Process, seed int64) (response responses.SimulationResponse, err error) {
	runId := uuid.New().String()
	ctx, span := tracing.StartSpan(ctx, "simulation")
	span.WithAttributes(map[string]string{"run_id": runId, "seed": strconv.FormatInt(seed, 10)}).
		WithInt("processes", len(processes))
	defer func() { tracing.EndSpan(span, err) }()

	log.Println("run:", runId, "simulating", len(processes), "processes")

	sjf, err := r.ShortestJobFirst(ctx, processes)
	if err != nil {
		return response, err
	}
	priority, err := r.PriorityWithAging(ctx, processes)
	if err != nil {
		return response, err
	}

	response = responses.SimulationResponse{
		RunId:             runId,
		Seed:              seed,
		Workload:          workload.ToJobs(processes),
		ShortestJobFirst:  schedulers.GenerateResponse(sjf),
		PriorityWithAging: schedulers.GenerateResponse(priority),
	}

	_, analysisSpan := tracing.StartSpan(ctx, "performance")
	performance, analysisErr := schedulers.AnalyzePerformance(sjf.Processes)
	switch {
	case analysisErr == nil:
		response.Performance = &performance
	case errors.Is(analysisErr, util.ErrNoProcesses):
		log.Println("run:", runId, analysisErr)
		analysisErr = nil
	}
	tracing.EndSpan(analysisSpan, analysisErr)
	return response, analysisErr
}

func (r *Runner) ShortestJobFirst(ctx context.Context, processes []core.Process) (simulation schedulers.Simulation, err error) {
	_, span := tracing.StartSpan(ctx, "shortest_job_first")
	defer func() {
		span.WithInt("total_time", simulation.Metric.TotalTime)
		tracing.EndSpan(span, err)
	}()
	return schedulers.ScheduleShortestJobFirst(processes)
}

func (r *Runner) PriorityWithAging(ctx context.Context, processes []core.Process) (simulation schedulers.Simulation, err error) {
	_, span := tracing.StartSpan(ctx, "priority_with_aging")
	span.WithInt("aging_threshold", r.config.AgingThreshold)
	defer func() {
		span.WithInt("total_time", simulation.Metric.TotalTime)
		tracing.EndSpan(span, err)
	}()
	return schedulers.SchedulePriorityWithAging(processes, r.config.AgingThreshold)
}
