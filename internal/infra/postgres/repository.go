package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gym-tracker-service/internal/domain"
)

// Repository implements domain.Store using PostgreSQL.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Snapshot reads all record sets in one pass. The result is a detached
// value copy; callers may hold it across the request without locking.
func (r *Repository) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	snap := &domain.Snapshot{
		Gyms:      []domain.Gym{},
		Areas:     []domain.Area{},
		Schedules: []domain.Schedule{},
		Logs:      []domain.ActivityLog{},
		Users:     []domain.User{},
	}

	var gyms []GymModel
	if err := r.db.WithContext(ctx).Order("name").Find(&gyms).Error; err != nil {
		return nil, fmt.Errorf("loading gyms: %w", err)
	}
	for _, m := range gyms {
		snap.Gyms = append(snap.Gyms, m.ToDomain())
	}

	var areas []AreaModel
	if err := r.db.WithContext(ctx).Find(&areas).Error; err != nil {
		return nil, fmt.Errorf("loading areas: %w", err)
	}
	for _, m := range areas {
		snap.Areas = append(snap.Areas, m.ToDomain())
	}

	var schedules []ScheduleModel
	if err := r.db.WithContext(ctx).Order("end_date DESC").Find(&schedules).Error; err != nil {
		return nil, fmt.Errorf("loading schedules: %w", err)
	}
	for _, m := range schedules {
		snap.Schedules = append(snap.Schedules, m.ToDomain())
	}

	var logs []ActivityLogModel
	if err := r.db.WithContext(ctx).Order("date DESC, created_at DESC").Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("loading activity logs: %w", err)
	}
	for _, m := range logs {
		snap.Logs = append(snap.Logs, m.ToDomain())
	}

	var users []UserModel
	if err := r.db.WithContext(ctx).Order("name").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("loading users: %w", err)
	}
	for _, m := range users {
		snap.Users = append(snap.Users, m.ToDomain())
	}

	return snap, nil
}

// AppendLogs inserts activity log rows. Ids are assigned by the database;
// the passed slice is updated with them.
func (r *Repository) AppendLogs(ctx context.Context, logs []domain.ActivityLog) error {
	if len(logs) == 0 {
		return nil
	}

	models := make([]*ActivityLogModel, len(logs))
	for i, l := range logs {
		models[i] = ActivityLogFromDomain(l)
	}

	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return fmt.Errorf("appending activity logs: %w", err)
	}

	for i, m := range models {
		logs[i].ID = m.ID
	}

	return nil
}

// DeleteLog removes a single activity log by id.
func (r *Repository) DeleteLog(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrMissingLogID
	}

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ActivityLogModel{})
	if result.Error != nil {
		return fmt.Errorf("deleting activity log: %w", result.Error)
	}

	return nil
}

// AppendGym inserts a gym.
func (r *Repository) AppendGym(ctx context.Context, gym domain.Gym) error {
	if err := r.db.WithContext(ctx).Create(GymFromDomain(gym)).Error; err != nil {
		return fmt.Errorf("appending gym: %w", err)
	}

	return nil
}

// AppendSchedules inserts new-set schedules.
func (r *Repository) AppendSchedules(ctx context.Context, schedules []domain.Schedule) error {
	if len(schedules) == 0 {
		return nil
	}

	models := make([]*ScheduleModel, len(schedules))
	for i, s := range schedules {
		models[i] = ScheduleFromDomain(s)
	}

	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return fmt.Errorf("appending schedules: %w", err)
	}

	return nil
}

// EnsureUsers inserts any of the given users that don't exist yet.
// Existing rows are left untouched.
func (r *Repository) EnsureUsers(ctx context.Context, users []domain.User) error {
	if len(users) == 0 {
		return nil
	}

	models := make([]*UserModel, len(users))
	for i, u := range users {
		models[i] = UserFromDomain(u)
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(models).Error
	if err != nil {
		return fmt.Errorf("ensuring users: %w", err)
	}

	return nil
}
