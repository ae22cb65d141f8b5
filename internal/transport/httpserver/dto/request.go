// Package dto provides Data Transfer Objects for HTTP requests and responses.
package dto

import (
	"time"

	"gym-tracker-service/internal/app/service"
	"gym-tracker-service/internal/domain"
)

// RecommendRequest represents the query parameters for gym recommendations.
type RecommendRequest struct {
	User  string `query:"user" validate:"required,max=50"`
	Date  string `query:"date" validate:"omitempty,dateonly"`
	Area  string `query:"area" validate:"omitempty,oneof=local regional nationwide"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=50"`
}

// ToQuery converts RecommendRequest to a service query. An absent date
// means today.
func (r *RecommendRequest) ToQuery() service.RecommendQuery {
	return service.RecommendQuery{
		User:      r.User,
		Date:      parseDateOr(r.Date, time.Now()),
		MajorArea: domain.MajorArea(r.Area),
		TopN:      r.Limit,
	}
}

// VisitsRequest represents the query parameters for the visit partition.
type VisitsRequest struct {
	User string `query:"user" validate:"required,max=50"`
	Date string `query:"date" validate:"omitempty,dateonly"`
}

// LeaderboardRequest represents the query parameters for the monthly
// leaderboard. An absent date means the current month.
type LeaderboardRequest struct {
	Date string `query:"date" validate:"omitempty,dateonly"`
}

// ListLogsRequest represents the query parameters for listing activity logs.
type ListLogsRequest struct {
	Since string `query:"since" validate:"omitempty,dateonly"`
}

// LogEntry is a single activity log in a create request.
type LogEntry struct {
	Date     string `json:"date" validate:"required,dateonly"`
	Gym      string `json:"gym" validate:"required,max=100"`
	User     string `json:"user" validate:"required,max=50"`
	Type     string `json:"type" validate:"required,oneof=planned completed"`
	TimeSlot string `json:"time_slot" validate:"omitempty,oneof=midday evening night"`
}

// CreateLogsRequest represents the request body for appending activity logs.
type CreateLogsRequest struct {
	Logs []LogEntry `json:"logs" validate:"required,min=1,dive"`
}

// ToDomain converts the request entries to domain logs.
func (r *CreateLogsRequest) ToDomain() []domain.ActivityLog {
	logs := make([]domain.ActivityLog, len(r.Logs))
	for i, e := range r.Logs {
		logs[i] = domain.ActivityLog{
			Date:     parseDateOr(e.Date, time.Time{}),
			GymName:  e.Gym,
			UserName: e.User,
			Type:     domain.LogType(e.Type),
			TimeSlot: domain.TimeSlot(e.TimeSlot),
		}
	}
	return logs
}

// CreateGymRequest represents the request body for registering a gym.
type CreateGymRequest struct {
	Name       string   `json:"name" validate:"required,max=100"`
	ProfileURL string   `json:"profile_url" validate:"omitempty,url,max=500"`
	AreaTag    string   `json:"area_tag" validate:"omitempty,max=50"`
	Tags       []string `json:"tags" validate:"omitempty,dive,max=30"`
}

// ToDomain converts CreateGymRequest to a domain gym.
func (r *CreateGymRequest) ToDomain() domain.Gym {
	return domain.Gym{
		Name:       r.Name,
		ProfileURL: r.ProfileURL,
		AreaTag:    r.AreaTag,
		Tags:       r.Tags,
	}
}

// CreateScheduleRequest represents the request body for recording a
// new-set period by hand.
type CreateScheduleRequest struct {
	Gym       string `json:"gym" validate:"required,max=100"`
	StartDate string `json:"start_date" validate:"required,dateonly"`
	EndDate   string `json:"end_date" validate:"required,dateonly"`
	PostURL   string `json:"post_url" validate:"omitempty,url,max=500"`
}

// ToDomain converts CreateScheduleRequest to a domain schedule.
func (r *CreateScheduleRequest) ToDomain() domain.Schedule {
	return domain.Schedule{
		GymName:   r.Gym,
		StartDate: parseDateOr(r.StartDate, time.Time{}),
		EndDate:   parseDateOr(r.EndDate, time.Time{}),
		PostURL:   r.PostURL,
	}
}

// parseDateOr parses a YYYY-MM-DD string, falling back when empty. Callers
// validate the format first, so a parse failure also falls back.
func parseDateOr(s string, fallback time.Time) time.Time {
	if s == "" {
		return domain.DateOnly(fallback)
	}
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return domain.DateOnly(fallback)
	}
	return d
}
