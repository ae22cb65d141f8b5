package feed

import (
	"time"

	"gym-tracker-service/internal/domain"
)

// Response represents the JSON payload of a new-set feed.
type Response struct {
	Posts []Post `json:"posts"`
}

// Post is a single new-set announcement.
type Post struct {
	Gym       string `json:"gym"`
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
	URL       string `json:"url"`
}

// ToDomain converts a Post to a domain.Schedule. Returns false when the
// post's dates are malformed or the range is inverted; such posts are
// skipped, not fatal.
func (p *Post) ToDomain() (domain.Schedule, bool) {
	start, err := time.Parse(time.DateOnly, p.StartDate)
	if err != nil {
		return domain.Schedule{}, false
	}
	end, err := time.Parse(time.DateOnly, p.EndDate)
	if err != nil {
		return domain.Schedule{}, false
	}
	if end.Before(start) {
		return domain.Schedule{}, false
	}

	return domain.Schedule{
		GymName:   p.Gym,
		StartDate: domain.DateOnly(start),
		EndDate:   domain.DateOnly(end),
		PostURL:   p.URL,
	}, true
}
