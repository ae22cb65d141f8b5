package domain

import (
	"fmt"
	"time"
)

// Schedule is a gym's new-set period: the routes replaced between StartDate
// and EndDate (inclusive) become public once the period ends.
type Schedule struct {
	ID        string    `json:"id"`
	GymName   string    `json:"gym_name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	PostURL   string    `json:"post_url,omitempty"`
}

// Key identifies a schedule by its natural identity, used to skip
// re-importing a new-set period that is already stored.
func (s *Schedule) Key() string {
	return fmt.Sprintf("%s|%s|%s",
		s.GymName,
		DateOnly(s.StartDate).Format(time.DateOnly),
		DateOnly(s.EndDate).Format(time.DateOnly),
	)
}
