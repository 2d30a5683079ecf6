package api

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"os-scheduler/config"
	"os-scheduler/internal/core"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/schedulers"
	"os-scheduler/internal/simulation"
	"os-scheduler/internal/workload"
)

const maxProcessCount = workload.MaxJobs

type SchedulerHandler interface {
	Workload(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	PriorityWithAging(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	runner *simulation.Runner
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, runner: simulation.NewRunner(config)}
}

// NewApp builds the fiber app with every scheduler route under /api/v1.
func NewApp(config *config.SchedulerConfig) *fiber.App {
	app := fiber.New()
	handler := NewSchedulerHandlerImpl(config)

	api := app.Group("/api")
	v1 := api.Group("/v1")
	{
		v1.Get("/workload", handler.Workload)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/priority", handler.PriorityWithAging)
		v1.Post("/all", handler.AllAlgorithms)
	}
	return app
}

func (s *SchedulerHandlerImpl) Workload(ctx *fiber.Ctx) error {
	count, err := queryInt(ctx, "count", s.config.ProcessCount)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	seed := s.config.Seed
	if value := ctx.Query("seed"); value != "" {
		if seed, err = strconv.ParseInt(value, 10, 64); err != nil {
			return badRequest(ctx, "seed must be an integer")
		}
	}
	if count < 0 || count > maxProcessCount {
		return badRequest(ctx, "count must be between 0 and "+strconv.Itoa(maxProcessCount))
	}

	processes, usedSeed, err := s.runner.Generate(seed, count)
	if err != nil {
		return serverError(ctx, err)
	}
	return ctx.JSON(requests.ScheduleRequests{Jobs: workload.ToJobs(processes), Seed: usedSeed})
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	processes, ok, err := s.parseWorkload(ctx)
	if !ok {
		return err
	}
	result, err := s.runner.ShortestJobFirst(ctx.Context(), processes)
	if err != nil {
		return serverError(ctx, err)
	}
	return ctx.JSON(schedulers.GenerateResponse(result))
}

func (s *SchedulerHandlerImpl) PriorityWithAging(ctx *fiber.Ctx) error {
	processes, ok, err := s.parseWorkload(ctx)
	if !ok {
		return err
	}
	result, err := s.runner.PriorityWithAging(ctx.Context(), processes)
	if err != nil {
		return serverError(ctx, err)
	}
	return ctx.JSON(schedulers.GenerateResponse(result))
}

// AllAlgorithms simulates the posted workload, or a generated one when no jobs are posted.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request := new(requests.ScheduleRequests)
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(request); err != nil {
			return badRequest(ctx, "invalid request format")
		}
	}

	var processes []core.Process
	var seed int64
	if len(request.Jobs) > 0 {
		var err error
		if processes, err = workload.FromJobs(request.Jobs); err != nil {
			return badRequest(ctx, err.Error())
		}
	} else {
		count := request.ProcessCount
		if count == 0 {
			count = s.config.ProcessCount
		}
		if count < 0 || count > maxProcessCount {
			return badRequest(ctx, "process_count must be between 0 and "+strconv.Itoa(maxProcessCount))
		}
		seed = request.Seed
		if seed == 0 {
			seed = s.config.Seed
		}
		var err error
		if processes, seed, err = s.runner.Generate(seed, count); err != nil {
			return serverError(ctx, err)
		}
	}

	response, err := s.runner.Run(ctx.Context(), processes, seed)
	if err != nil {
		return serverError(ctx, err)
	}
	return ctx.JSON(response)
}

// parseWorkload decodes the posted jobs. When ok is false the error response has been written.
func (s *SchedulerHandlerImpl) parseWorkload(ctx *fiber.Ctx) ([]core.Process, bool, error) {
	request := new(requests.ScheduleRequests)
	if err := ctx.BodyParser(request); err != nil {
		return nil, false, badRequest(ctx, "invalid request format")
	}
	if len(request.Jobs) == 0 {
		return nil, false, badRequest(ctx, "jobs must not be empty")
	}
	processes, err := workload.FromJobs(request.Jobs)
	if err != nil {
		return nil, false, badRequest(ctx, err.Error())
	}
	return processes, true, nil
}

func queryInt(ctx *fiber.Ctx, key string, fallback int) (int, error) {
	value := ctx.Query(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.New(key + " must be an integer")
	}
	return parsed, nil
}

func badRequest(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func serverError(ctx *fiber.Ctx, err error) error {
	log.Println("can not process request:", err)
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
}
