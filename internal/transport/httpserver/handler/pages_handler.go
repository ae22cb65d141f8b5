package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"gym-tracker-service/internal/app/service"
	"gym-tracker-service/internal/domain"
	"gym-tracker-service/internal/transport/httpserver/dto"
)

// PagesHandler renders the HTML pages.
type PagesHandler struct {
	reads  *service.RecommendService
	logger *zap.Logger
}

// NewPagesHandler creates a new PagesHandler.
func NewPagesHandler(reads *service.RecommendService, logger *zap.Logger) *PagesHandler {
	return &PagesHandler{
		reads:  reads,
		logger: logger,
	}
}

// selectedUser resolves the ?user= query against the roster, defaulting to
// the first configured user.
func (h *PagesHandler) selectedUser(c *fiber.Ctx, users []domain.User) string {
	name := c.Query("user")
	for _, u := range users {
		if u.Name == name {
			return name
		}
	}
	if len(users) > 0 {
		return users[0].Name
	}
	return ""
}

// Today handles GET /
// Renders today's recommendations for the selected user.
func (h *PagesHandler) Today(c *fiber.Ctx) error {
	now := time.Now()

	users, err := h.reads.Users(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "loading users failed")
	}

	user := h.selectedUser(c, users)

	var recs []domain.Recommendation
	if user != "" {
		recs, err = h.reads.Recommend(c.Context(), service.RecommendQuery{
			User: user,
			Date: now,
		})
		if err != nil {
			h.logger.Error("rendering today page failed", zap.String("user", user), zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "recommendations failed")
		}
	}

	return c.Render("pages/today", fiber.Map{
		"Title":           "Today",
		"Date":            now.Format(time.DateOnly),
		"Users":           users,
		"SelectedUser":    user,
		"Recommendations": dto.FromRecommendations(user, now, recs).Recommendations,
	}, "layouts/base")
}

// Logs handles GET /logs
// Renders the recent activity log list.
func (h *PagesHandler) Logs(c *fiber.Ctx) error {
	since := domain.MonthStart(time.Now())

	logs, err := h.reads.Logs(c.Context(), since)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "loading logs failed")
	}

	return c.Render("pages/logs", fiber.Map{
		"Title": "Activity Logs",
		"Since": since.Format(time.DateOnly),
		"Logs":  dto.FromDomainLogs(logs).Logs,
	}, "layouts/base")
}

// Leaderboard handles GET /leaderboard
// Renders the current month's standings.
func (h *PagesHandler) Leaderboard(c *fiber.Ctx) error {
	now := time.Now()

	entries, err := h.reads.Leaderboard(c.Context(), now)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "loading leaderboard failed")
	}

	resp := dto.FromLeaderboard(domain.MonthStart(now), entries)

	return c.Render("pages/leaderboard", fiber.Map{
		"Title":   "Leaderboard",
		"Month":   resp.Month,
		"Entries": resp.Entries,
	}, "layouts/base")
}

// Gyms handles GET /gyms
// Renders the visited/unvisited partition for the selected user.
func (h *PagesHandler) Gyms(c *fiber.Ctx) error {
	now := time.Now()

	users, err := h.reads.Users(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "loading users failed")
	}

	user := h.selectedUser(c, users)

	var split domain.VisitSplit
	if user != "" {
		split, err = h.reads.Visits(c.Context(), user, now)
		if err != nil {
			h.logger.Error("rendering gyms page failed", zap.String("user", user), zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "visit partition failed")
		}
	}

	resp := dto.FromVisitSplit(user, split)

	return c.Render("pages/gyms", fiber.Map{
		"Title":        "Gyms",
		"Users":        users,
		"SelectedUser": user,
		"Visited":      resp.Visited,
		"Unvisited":    resp.Unvisited,
	}, "layouts/base")
}
