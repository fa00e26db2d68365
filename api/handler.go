package api

import (
	"bytes"
	"log"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, core.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, core.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, core.Priority)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, core.RoundRobin)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return invalidRequest(ctx)
	}
	response, err := schedulers.ScheduleAll(request, s.timeQuantum(request))
	if err != nil {
		return schedulingFailed(ctx, err)
	}

	if wantsTable(ctx) {
		var buf bytes.Buffer
		report.WriteComparison(&buf, response)
		return ctx.SendString(buf.String())
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, policy core.PolicyKind) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return invalidRequest(ctx)
	}
	response, err := schedulers.Schedule(policy, request, s.timeQuantum(request))
	if err != nil {
		return schedulingFailed(ctx, err)
	}

	if wantsTable(ctx) {
		var buf bytes.Buffer
		report.WriteSchedule(&buf, response)
		return ctx.SendString(buf.String())
	}
	return ctx.JSON(response)
}

// timeQuantum prefers the quantum sent with the request over the configured one.
func (s *SchedulerHandlerImpl) timeQuantum(request requests.ScheduleRequests) int {
	if request.TimeQuantum != nil {
		return *request.TimeQuantum
	}
	return s.config.RoundRobinTimeQuantum
}

func wantsTable(ctx *fiber.Ctx) bool {
	return ctx.Query("format") == "table"
}

func invalidRequest(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "invalid request format",
	})
}

func schedulingFailed(ctx *fiber.Ctx, err error) error {
	if core.IsValidationError(err) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	log.Println("scheduling failed:", err)
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
}
