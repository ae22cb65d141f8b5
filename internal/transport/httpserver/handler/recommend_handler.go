// Package handler provides HTTP handlers for the API.
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

// RecommendHandler handles recommendation and leaderboard requests.
type RecommendHandler struct {
	service   *service.RecommendService
	validator *validator.Validator
	logger    *zap.Logger
}

// NewRecommendHandler creates a new RecommendHandler.
func NewRecommendHandler(svc *service.RecommendService, v *validator.Validator, logger *zap.Logger) *RecommendHandler {
	return &RecommendHandler{
		service:   svc,
		validator: v,
		logger:    logger,
	}
}

// Recommend handles GET /api/v1/recommendations
func (h *RecommendHandler) Recommend(c *fiber.Ctx) error {
	var req dto.RecommendRequest
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

	q := req.ToQuery()
	recs, err := h.service.Recommend(c.Context(), q)
	if err != nil {
		h.logger.Error("recommendation failed", zap.String("user", q.User), zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "recommendation failed",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.JSON(dto.FromRecommendations(q.User, q.Date, recs))
}

// Leaderboard handles GET /api/v1/leaderboard
func (h *RecommendHandler) Leaderboard(c *fiber.Ctx) error {
	var req dto.LeaderboardRequest
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

	entries, err := h.service.Leaderboard(c.Context(), date)
	if err != nil {
		h.logger.Error("leaderboard failed", zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "leaderboard failed",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.JSON(dto.FromLeaderboard(domain.MonthStart(date), entries))
}
