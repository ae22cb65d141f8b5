package postgres

import (
	"time"

	"gym-tracker-service/internal/domain"

	"github.com/lib/pq"
)

// GymModel is the GORM model for the gyms table.
type GymModel struct {
	Name       string         `gorm:"type:varchar(100);primaryKey"`
	ProfileURL string         `gorm:"type:varchar(500)"`
	AreaTag    string         `gorm:"type:varchar(50);index"`
	Tags       pq.StringArray `gorm:"type:text[]"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
}

// TableName returns the table name for GymModel.
func (GymModel) TableName() string {
	return "gyms"
}

// ToDomain converts GymModel to domain.Gym.
func (m *GymModel) ToDomain() domain.Gym {
	return domain.Gym{
		Name:       m.Name,
		ProfileURL: m.ProfileURL,
		AreaTag:    m.AreaTag,
		Tags:       m.Tags,
	}
}

// GymFromDomain creates a GymModel from domain.Gym.
func GymFromDomain(g domain.Gym) *GymModel {
	return &GymModel{
		Name:       g.Name,
		ProfileURL: g.ProfileURL,
		AreaTag:    g.AreaTag,
		Tags:       g.Tags,
	}
}

// AreaModel is the GORM model for the areas table.
type AreaModel struct {
	Tag       string `gorm:"type:varchar(50);primaryKey"`
	MajorArea string `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for AreaModel.
func (AreaModel) TableName() string {
	return "areas"
}

// ToDomain converts AreaModel to domain.Area.
func (m *AreaModel) ToDomain() domain.Area {
	return domain.Area{
		Tag:       m.Tag,
		MajorArea: domain.MajorArea(m.MajorArea),
	}
}

// ScheduleModel is the GORM model for the schedules table.
type ScheduleModel struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	GymName   string    `gorm:"type:varchar(100);not null;index"`
	StartDate time.Time `gorm:"type:date;not null;index"`
	EndDate   time.Time `gorm:"type:date;not null;index"`
	PostURL   string    `gorm:"type:varchar(500)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName returns the table name for ScheduleModel.
func (ScheduleModel) TableName() string {
	return "schedules"
}

// ToDomain converts ScheduleModel to domain.Schedule.
// Dates are normalized to the domain's calendar-date representation.
func (m *ScheduleModel) ToDomain() domain.Schedule {
	return domain.Schedule{
		ID:        m.ID,
		GymName:   m.GymName,
		StartDate: domain.DateOnly(m.StartDate),
		EndDate:   domain.DateOnly(m.EndDate),
		PostURL:   m.PostURL,
	}
}

// ScheduleFromDomain creates a ScheduleModel from domain.Schedule.
func ScheduleFromDomain(s domain.Schedule) *ScheduleModel {
	return &ScheduleModel{
		ID:        s.ID,
		GymName:   s.GymName,
		StartDate: domain.DateOnly(s.StartDate),
		EndDate:   domain.DateOnly(s.EndDate),
		PostURL:   s.PostURL,
	}
}

// ActivityLogModel is the GORM model for the activity_logs table.
type ActivityLogModel struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Date      time.Time `gorm:"type:date;not null;index"`
	GymName   string    `gorm:"type:varchar(100);not null;index"`
	UserName  string    `gorm:"type:varchar(50);not null;index"`
	Type      string    `gorm:"type:varchar(10);not null"`
	TimeSlot  string    `gorm:"type:varchar(10)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName returns the table name for ActivityLogModel.
func (ActivityLogModel) TableName() string {
	return "activity_logs"
}

// ToDomain converts ActivityLogModel to domain.ActivityLog.
func (m *ActivityLogModel) ToDomain() domain.ActivityLog {
	return domain.ActivityLog{
		ID:       m.ID,
		Date:     domain.DateOnly(m.Date),
		GymName:  m.GymName,
		UserName: m.UserName,
		Type:     domain.LogType(m.Type),
		TimeSlot: domain.TimeSlot(m.TimeSlot),
	}
}

// ActivityLogFromDomain creates an ActivityLogModel from domain.ActivityLog.
func ActivityLogFromDomain(l domain.ActivityLog) *ActivityLogModel {
	return &ActivityLogModel{
		ID:       l.ID,
		Date:     domain.DateOnly(l.Date),
		GymName:  l.GymName,
		UserName: l.UserName,
		Type:     string(l.Type),
		TimeSlot: string(l.TimeSlot),
	}
}

// UserModel is the GORM model for the users table.
type UserModel struct {
	Name  string `gorm:"type:varchar(50);primaryKey"`
	Color string `gorm:"type:varchar(20)"`
	Icon  string `gorm:"type:varchar(20)"`
}

// TableName returns the table name for UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts UserModel to domain.User.
func (m *UserModel) ToDomain() domain.User {
	return domain.User{
		Name:  m.Name,
		Color: m.Color,
		Icon:  m.Icon,
	}
}

// UserFromDomain creates a UserModel from domain.User.
func UserFromDomain(u domain.User) *UserModel {
	return &UserModel{
		Name:  u.Name,
		Color: u.Color,
		Icon:  u.Icon,
	}
}
