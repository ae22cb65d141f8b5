package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"gym-tracker-service/internal/app/service"
	"gym-tracker-service/internal/domain"
	"gym-tracker-service/internal/transport/httpserver/dto"
	"gym-tracker-service/internal/validator"
)

// LogHandler handles activity log HTTP requests.
type LogHandler struct {
	tracker   *service.TrackerService
	reads     *service.RecommendService
	validator *validator.Validator
	logger    *zap.Logger
}

// NewLogHandler creates a new LogHandler.
func NewLogHandler(tracker *service.TrackerService, reads *service.RecommendService, v *validator.Validator, logger *zap.Logger) *LogHandler {
	return &LogHandler{
		tracker:   tracker,
		reads:     reads,
		validator: v,
		logger:    logger,
	}
}

// List handles GET /api/v1/logs
func (h *LogHandler) List(c *fiber.Ctx) error {
	var req dto.ListLogsRequest
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

	var since time.Time
	if req.Since != "" {
		since, _ = time.Parse(time.DateOnly, req.Since)
	}

	logs, err := h.reads.Logs(c.Context(), since)
	if err != nil {
		h.logger.Error("listing logs failed", zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "failed to list logs",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.JSON(dto.FromDomainLogs(logs))
}

// Create handles POST /api/v1/logs
func (h *LogHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateLogsRequest
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

	logs := req.ToDomain()
	if err := h.tracker.AppendLogs(c.Context(), logs); err != nil {
		h.logger.Error("appending logs failed", zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "failed to append logs",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.FromDomainLogs(logs))
}

// Delete handles DELETE /api/v1/logs/:id
func (h *LogHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "log id is required",
			Code:  "MISSING_ID",
		})
	}

	if err := h.tracker.DeleteLog(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrMissingLogID) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: err.Error(),
				Code:  "MISSING_ID",
			})
		}

		h.logger.Error("deleting log failed", zap.String("id", id), zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "failed to delete log",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
