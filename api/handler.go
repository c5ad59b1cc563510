package api

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"os-scheduler/config"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/schedulers"
	"os-scheduler/internal/store"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	PreemptivePriority(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	MultilevelFeedbackQueue(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Algorithms(ctx *fiber.Ctx) error
	ListRuns(ctx *fiber.Ctx) error
	GetRun(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	store  store.Store // nil disables run history
	logger *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, st store.Store, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, store: st, logger: logger.With("component", "api")}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestRemainingTimeFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityNonPreemptive)
}

func (s *SchedulerHandlerImpl) PreemptivePriority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityPreemptive)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) MultilevelFeedbackQueue(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.MultilevelFeedbackQueue)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return err
	}
	processes := request.Processes()
	results, err := schedulers.Compare(ctx.UserContext(), processes, s.options(request))
	if err != nil {
		return simulationError(err)
	}

	out := make([]responses.ScheduleResponse, len(results))
	for i, result := range results {
		out[i] = responses.NewScheduleResponse(result, processes)
	}
	return ctx.JSON(out)
}

func (s *SchedulerHandlerImpl) Algorithms(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"algorithms": schedulers.Algorithms()})
}

func (s *SchedulerHandlerImpl) ListRuns(ctx *fiber.Ctx) error {
	if s.store == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "run history is disabled")
	}
	runs, err := s.store.ListRuns(ctx.UserContext(), ctx.QueryInt("limit", 20))
	if err != nil {
		return err
	}
	out := make([]responses.ScheduleResponse, len(runs))
	for i, run := range runs {
		out[i] = run.Response
	}
	return ctx.JSON(out)
}

func (s *SchedulerHandlerImpl) GetRun(ctx *fiber.Ctx) error {
	if s.store == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "run history is disabled")
	}
	run, err := s.store.GetRun(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}
	if run == nil {
		return fiber.NewError(fiber.StatusNotFound, "run not found")
	}
	return ctx.JSON(run.Response)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return err
	}
	processes := request.Processes()
	opts := s.options(request)
	result, err := schedulers.Simulate(algorithm, processes, opts)
	if err != nil {
		return simulationError(err)
	}
	response := responses.NewScheduleResponse(result, processes)

	if s.store != nil {
		run := &store.Run{
			ID:          "run_" + uuid.New().String(),
			Algorithm:   string(algorithm),
			TimeQuantum: opts.TimeQuantum,
			Jobs:        request.Jobs,
			CreatedAt:   time.Now().UTC(),
		}
		response.RunId = run.ID
		run.Response = response
		if err := s.store.SaveRun(ctx.UserContext(), run); err != nil {
			return err
		}
	}

	s.logger.Debug("simulated", "algorithm", algorithm, "jobs", len(processes), "run_id", response.RunId)
	return ctx.JSON(response)
}

// options fills in the configured quanta where the request has none.
func (s *SchedulerHandlerImpl) options(request *requests.ScheduleRequests) schedulers.Options {
	opts := schedulers.Options{
		TimeQuantum:       request.TimeQuantum,
		LevelsTimeQuantum: request.LevelsTimeQuantum,
	}
	if opts.TimeQuantum == 0 {
		opts.TimeQuantum = s.config.RoundRobinTimeQuantum
	}
	if len(opts.LevelsTimeQuantum) == 0 {
		opts.LevelsTimeQuantum = s.config.MultilevelFeedbackQueueLevelsTimeQuantum
	}
	return opts
}

func parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, error) {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid request format")
	}
	request.Normalize()
	if err := request.Validate(); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return &request, nil
}

func simulationError(err error) error {
	if errors.Is(err, schedulers.ErrInvalidTimeQuantum) || errors.Is(err, schedulers.ErrUnknownAlgorithm) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return err
}
