package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"gym-tracker-service/internal/app/service"
	"gym-tracker-service/internal/domain"
	"gym-tracker-service/internal/transport/httpserver/dto"
	"gym-tracker-service/internal/validator"
)

// GymHandler handles gym and schedule HTTP requests.
type GymHandler struct {
	tracker   *service.TrackerService
	reads     *service.RecommendService
	validator *validator.Validator
	logger    *zap.Logger
}

// NewGymHandler creates a new GymHandler.
func NewGymHandler(tracker *service.TrackerService, reads *service.RecommendService, v *validator.Validator, logger *zap.Logger) *GymHandler {
	return &GymHandler{
		tracker:   tracker,
		reads:     reads,
		validator: v,
		logger:    logger,
	}
}

// Visits handles GET /api/v1/gyms/visits
func (h *GymHandler) Visits(c *fiber.Ctx) error {
	var req dto.VisitsRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid query parameters",
			Code:  "INVALID_PARAMS",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "validation failed",
			Code:    "VALIDATION_ERROR",
			Details: err,
		})
	}

	date := time.Now()
	if req.Date != "" {
		date, _ = time.Parse(time.DateOnly, req.Date)
	}

	split, err := h.reads.Visits(c.Context(), req.User, date)
	if err != nil {
		h.logger.Error("visit partition failed", zap.String("user", req.User), zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "failed to partition visits",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.JSON(dto.FromVisitSplit(req.User, split))
}

// Create handles POST /api/v1/gyms
func (h *GymHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateGymRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_BODY",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "validation failed",
			Code:    "VALIDATION_ERROR",
			Details: err,
		})
	}

	gym := req.ToDomain()
	if err := h.tracker.AppendGym(c.Context(), gym); err != nil {
		h.logger.Error("appending gym failed", zap.String("gym", gym.Name), zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "failed to append gym",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.FromDomainGym(gym))
}

// CreateSchedule handles POST /api/v1/schedules
func (h *GymHandler) CreateSchedule(c *fiber.Ctx) error {
	var req dto.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_BODY",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "validation failed",
			Code:    "VALIDATION_ERROR",
			Details: err,
		})
	}

	schedule := req.ToDomain()
	if err := h.tracker.AppendSchedules(c.Context(), []domain.Schedule{schedule}); err != nil {
		h.logger.Error("appending schedule failed", zap.String("gym", schedule.GymName), zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "failed to append schedule",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.SendStatus(fiber.StatusCreated)
}
