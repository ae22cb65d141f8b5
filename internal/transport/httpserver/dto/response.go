package dto

import (
	"time"

	"gym-tracker-service/internal/app/service"
	"gym-tracker-service/internal/domain"
)

// GymResponse represents a gym in API responses.
type GymResponse struct {
	Name       string   `json:"name"`
	ProfileURL string   `json:"profile_url,omitempty"`
	AreaTag    string   `json:"area_tag,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

// FromDomainGym converts a domain gym to its response form.
func FromDomainGym(g domain.Gym) GymResponse {
	return GymResponse{
		Name:       g.Name,
		ProfileURL: g.ProfileURL,
		AreaTag:    g.AreaTag,
		Tags:       g.Tags,
	}
}

// RecommendationResponse represents one ranked gym.
type RecommendationResponse struct {
	Gym       GymResponse `json:"gym"`
	Score     int         `json:"score"`
	Reasons   []string    `json:"reasons"`
	LatestSet string      `json:"latest_set,omitempty"`
	Peers     int         `json:"peers,omitempty"`
}

// RecommendResponse represents the full recommendation list.
type RecommendResponse struct {
	User            string                   `json:"user"`
	Date            string                   `json:"date"`
	Recommendations []RecommendationResponse `json:"recommendations"`
}

// FromRecommendations converts ranked domain results to the response form.
func FromRecommendations(user string, date time.Time, recs []domain.Recommendation) RecommendResponse {
	resp := RecommendResponse{
		User:            user,
		Date:            date.Format(time.DateOnly),
		Recommendations: make([]RecommendationResponse, len(recs)),
	}

	for i, r := range recs {
		item := RecommendationResponse{
			Gym:     FromDomainGym(r.Gym),
			Score:   r.Score,
			Reasons: r.Reasons,
			Peers:   r.Peers,
		}
		if r.HasLatestSet {
			item.LatestSet = r.LatestSet.Format(time.DateOnly)
		}
		resp.Recommendations[i] = item
	}

	return resp
}

// VisitedGymResponse represents one visited gym with its last visit date.
type VisitedGymResponse struct {
	Gym                 GymResponse `json:"gym"`
	LastVisit           string      `json:"last_visit"`
	NoScheduleThisMonth bool        `json:"no_schedule_this_month"`
}

// VisitsResponse represents the visited/unvisited partition for a user.
type VisitsResponse struct {
	User      string               `json:"user"`
	Visited   []VisitedGymResponse `json:"visited"`
	Unvisited []GymResponse        `json:"unvisited"`
}

// FromVisitSplit converts a domain visit partition to the response form.
func FromVisitSplit(user string, split domain.VisitSplit) VisitsResponse {
	resp := VisitsResponse{
		User:      user,
		Visited:   make([]VisitedGymResponse, len(split.Visited)),
		Unvisited: make([]GymResponse, len(split.Unvisited)),
	}

	for i, v := range split.Visited {
		resp.Visited[i] = VisitedGymResponse{
			Gym:                 FromDomainGym(v.Gym),
			LastVisit:           v.LastVisit.Format(time.DateOnly),
			NoScheduleThisMonth: v.NoScheduleThisMonth,
		}
	}
	for i, g := range split.Unvisited {
		resp.Unvisited[i] = FromDomainGym(g)
	}

	return resp
}

// LeaderboardEntryResponse represents one row of the monthly standings.
type LeaderboardEntryResponse struct {
	Rank  int    `json:"rank"`
	User  string `json:"user"`
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
	Count int    `json:"count"`
}

// LeaderboardResponse represents the monthly standings.
type LeaderboardResponse struct {
	Month   string                     `json:"month"`
	Entries []LeaderboardEntryResponse `json:"entries"`
}

// FromLeaderboard converts domain leaderboard entries to the response form.
func FromLeaderboard(monthStart time.Time, entries []domain.LeaderboardEntry) LeaderboardResponse {
	resp := LeaderboardResponse{
		Month:   monthStart.Format("2006-01"),
		Entries: make([]LeaderboardEntryResponse, len(entries)),
	}

	for i, e := range entries {
		resp.Entries[i] = LeaderboardEntryResponse{
			Rank:  e.Rank,
			User:  e.User.Name,
			Color: e.User.Color,
			Icon:  e.User.Icon,
			Count: e.Count,
		}
	}

	return resp
}

// LogResponse represents one activity log.
type LogResponse struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Gym      string `json:"gym"`
	User     string `json:"user"`
	Type     string `json:"type"`
	TimeSlot string `json:"time_slot,omitempty"`
}

// FromDomainLog converts a domain activity log to its response form.
func FromDomainLog(l domain.ActivityLog) LogResponse {
	return LogResponse{
		ID:       l.ID,
		Date:     l.Date.Format(time.DateOnly),
		Gym:      l.GymName,
		User:     l.UserName,
		Type:     string(l.Type),
		TimeSlot: string(l.TimeSlot),
	}
}

// LogsResponse represents a list of activity logs.
type LogsResponse struct {
	Logs []LogResponse `json:"logs"`
}

// FromDomainLogs converts domain activity logs to the response form.
func FromDomainLogs(logs []domain.ActivityLog) LogsResponse {
	resp := LogsResponse{Logs: make([]LogResponse, len(logs))}
	for i, l := range logs {
		resp.Logs[i] = FromDomainLog(l)
	}
	return resp
}

// SyncResultResponse represents the outcome of one feed's sync.
type SyncResultResponse struct {
	Feed     string `json:"feed"`
	Fetched  int    `json:"fetched"`
	Added    int    `json:"added"`
	Duration string `json:"duration"`
	Error    string `json:"error,omitempty"`
}

// SyncResponse represents the outcome of syncing all feeds.
type SyncResponse struct {
	Results []SyncResultResponse `json:"results"`
	Summary SyncSummary          `json:"summary"`
}

// SyncSummary aggregates a sync run.
type SyncSummary struct {
	TotalAdded int `json:"total_added"`
	FeedsOK    int `json:"feeds_ok"`
	FeedsFail  int `json:"feeds_fail"`
}

// FromSyncResults converts service sync results to the response form.
func FromSyncResults(results []service.SyncResult) SyncResponse {
	resp := SyncResponse{
		Results: make([]SyncResultResponse, len(results)),
	}

	for i, r := range results {
		errMsg := ""
		if r.Error != nil {
			errMsg = r.Error.Error()
			resp.Summary.FeedsFail++
		} else {
			resp.Summary.TotalAdded += r.Added
			resp.Summary.FeedsOK++
		}

		resp.Results[i] = SyncResultResponse{
			Feed:     r.Feed,
			Fetched:  r.Fetched,
			Added:    r.Added,
			Duration: r.Duration.String(),
			Error:    errMsg,
		}
	}

	return resp
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}
