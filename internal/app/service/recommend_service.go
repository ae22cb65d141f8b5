package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"gym-tracker-service/internal/domain"
)

// RecommendService handles the read side: recommendations, visit
// partitions and the monthly leaderboard. All computation is pure over a
// single snapshot per call.
type RecommendService struct {
	snapshots   *SnapshotService
	topN        int
	defaultArea domain.MajorArea
	logger      *zap.Logger
}

// NewRecommendService creates a new RecommendService. defaultArea applies
// when a query names no area; empty means all areas.
func NewRecommendService(snapshots *SnapshotService, topN int, defaultArea domain.MajorArea, logger *zap.Logger) *RecommendService {
	if topN <= 0 {
		topN = domain.DefaultTopN
	}
	return &RecommendService{
		snapshots:   snapshots,
		topN:        topN,
		defaultArea: defaultArea,
		logger:      logger,
	}
}

// RecommendQuery holds the request inputs for a recommendation.
type RecommendQuery struct {
	User      string
	Date      time.Time
	MajorArea domain.MajorArea
	TopN      int // <= 0 uses the configured default
}

// Recommend ranks gyms for the query's user and date.
func (s *RecommendService) Recommend(ctx context.Context, q RecommendQuery) ([]domain.Recommendation, error) {
	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	topN := q.TopN
	if topN <= 0 {
		topN = s.topN
	}
	area := q.MajorArea
	if area == "" {
		area = s.defaultArea
	}

	recs := domain.Recommend(domain.RecommendParams{
		Gyms:      snap.Gyms,
		Areas:     snap.Areas,
		Schedules: snap.Schedules,
		Logs:      snap.Logs,
		User:      q.User,
		Date:      q.Date,
		MajorArea: area,
		TopN:      topN,
	})

	s.logger.Debug("recommendations computed",
		zap.String("user", q.User),
		zap.String("snapshot_version", snap.Version),
		zap.Int("count", len(recs)),
	)

	return recs, nil
}

// Visits splits all gyms into visited/unvisited for the user.
func (s *RecommendService) Visits(ctx context.Context, user string, date time.Time) (domain.VisitSplit, error) {
	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return domain.VisitSplit{}, err
	}

	return domain.PartitionVisits(snap.Gyms, user, snap.Logs, snap.Schedules, date), nil
}

// Leaderboard computes the monthly standings for the month containing date.
func (s *RecommendService) Leaderboard(ctx context.Context, date time.Time) ([]domain.LeaderboardEntry, error) {
	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return domain.MonthlyLeaderboard(snap.Users, snap.Logs, domain.MonthStart(date)), nil
}

// Users returns the known user roster for the presentation layer.
func (s *RecommendService) Users(ctx context.Context) ([]domain.User, error) {
	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return snap.Users, nil
}

// Logs returns activity logs on or after the given date, newest first as
// loaded by the store.
func (s *RecommendService) Logs(ctx context.Context, since time.Time) ([]domain.ActivityLog, error) {
	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	if since.IsZero() {
		return snap.Logs, nil
	}

	start := domain.DateOnly(since)
	logs := make([]domain.ActivityLog, 0, len(snap.Logs))
	for _, l := range snap.Logs {
		if !domain.DateOnly(l.Date).Before(start) {
			logs = append(logs, l)
		}
	}

	return logs, nil
}
