package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"gym-tracker-service/internal/domain"
)

// TrackerService handles the write side: activity logs, gyms and
// schedules. Every successful write invalidates the read snapshot.
type TrackerService struct {
	store     domain.Store
	snapshots *SnapshotService
	logger    *zap.Logger
}

// NewTrackerService creates a new TrackerService.
func NewTrackerService(store domain.Store, snapshots *SnapshotService, logger *zap.Logger) *TrackerService {
	return &TrackerService{
		store:     store,
		snapshots: snapshots,
		logger:    logger,
	}
}

// AppendLogs validates and inserts activity log rows.
func (s *TrackerService) AppendLogs(ctx context.Context, logs []domain.ActivityLog) error {
	for i := range logs {
		l := &logs[i]
		if !l.Type.IsValid() {
			return fmt.Errorf("invalid log type %q", l.Type)
		}
		if !l.TimeSlot.IsValid() {
			return fmt.Errorf("invalid time slot %q", l.TimeSlot)
		}
		if l.GymName == "" || l.UserName == "" || l.Date.IsZero() {
			return fmt.Errorf("activity log requires gym, user and date")
		}
		l.Date = domain.DateOnly(l.Date)
	}

	if err := s.store.AppendLogs(ctx, logs); err != nil {
		return err
	}

	s.snapshots.Invalidate(ctx)
	s.logger.Info("activity logs appended", zap.Int("count", len(logs)))

	return nil
}

// DeleteLog removes a single activity log by id.
func (s *TrackerService) DeleteLog(ctx context.Context, id string) error {
	if err := s.store.DeleteLog(ctx, id); err != nil {
		return err
	}

	s.snapshots.Invalidate(ctx)
	s.logger.Info("activity log deleted", zap.String("id", id))

	return nil
}

// AppendGym inserts a gym.
func (s *TrackerService) AppendGym(ctx context.Context, gym domain.Gym) error {
	if gym.Name == "" {
		return fmt.Errorf("gym name is required")
	}

	if err := s.store.AppendGym(ctx, gym); err != nil {
		return err
	}

	s.snapshots.Invalidate(ctx)
	s.logger.Info("gym appended", zap.String("gym", gym.Name))

	return nil
}

// AppendSchedules inserts new-set schedules.
func (s *TrackerService) AppendSchedules(ctx context.Context, schedules []domain.Schedule) error {
	for i := range schedules {
		sc := &schedules[i]
		if sc.GymName == "" || sc.StartDate.IsZero() || sc.EndDate.IsZero() {
			return fmt.Errorf("schedule requires gym, start and end dates")
		}
		sc.StartDate = domain.DateOnly(sc.StartDate)
		sc.EndDate = domain.DateOnly(sc.EndDate)
		if sc.EndDate.Before(sc.StartDate) {
			return fmt.Errorf("schedule for %s ends before it starts", sc.GymName)
		}
	}

	if err := s.store.AppendSchedules(ctx, schedules); err != nil {
		return err
	}

	s.snapshots.Invalidate(ctx)
	s.logger.Info("schedules appended", zap.Int("count", len(schedules)))

	return nil
}

// EnsureUsers seeds the configured user roster at startup.
func (s *TrackerService) EnsureUsers(ctx context.Context, users []domain.User) error {
	if err := s.store.EnsureUsers(ctx, users); err != nil {
		return err
	}

	s.snapshots.Invalidate(ctx)

	return nil
}
