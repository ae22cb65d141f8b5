package domain

import "time"

// LogType distinguishes an intent to visit from an actual visit.
type LogType string

const (
	LogTypePlanned   LogType = "planned"
	LogTypeCompleted LogType = "completed"
)

// IsValid reports whether t is a known log type.
func (t LogType) IsValid() bool {
	return t == LogTypePlanned || t == LogTypeCompleted
}

// TimeSlot is the optional rough time-of-day for a planned visit.
type TimeSlot string

const (
	TimeSlotNone    TimeSlot = ""
	TimeSlotMidday  TimeSlot = "midday"
	TimeSlotEvening TimeSlot = "evening"
	TimeSlotNight   TimeSlot = "night"
)

// IsValid reports whether s is a known time slot. The empty slot is valid.
func (s TimeSlot) IsValid() bool {
	switch s {
	case TimeSlotNone, TimeSlotMidday, TimeSlotEvening, TimeSlotNight:
		return true
	}
	return false
}

// ActivityLog is a single planned or completed gym visit.
// Logs are append-only; a change is a delete followed by a new entry.
type ActivityLog struct {
	ID       string    `json:"id"`
	Date     time.Time `json:"date"`
	GymName  string    `json:"gym_name"`
	UserName string    `json:"user_name"`
	Type     LogType   `json:"type"`
	TimeSlot TimeSlot  `json:"time_slot,omitempty"`
}

// IsCompleted reports whether the log records an actual visit.
func (l *ActivityLog) IsCompleted() bool {
	return l.Type == LogTypeCompleted
}

// IsPlanned reports whether the log records an intent to visit.
func (l *ActivityLog) IsPlanned() bool {
	return l.Type == LogTypePlanned
}
