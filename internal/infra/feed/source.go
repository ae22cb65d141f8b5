package feed

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"gym-tracker-service/internal/domain"
)

// Endpoint is the conventional path for a chain's new-set feed.
const Endpoint = "/api/new-sets"

// Source implements domain.ScheduleFeed for one gym chain's JSON feed.
type Source struct {
	name   string
	client *resty.Client
	cb     *gobreaker.CircuitBreaker[*resty.Response]
	logger *zap.Logger
}

// New creates a feed source client.
func New(cfg ClientConfig, logger *zap.Logger) *Source {
	return &Source{
		name:   cfg.Name,
		client: newRestyClient(cfg),
		cb:     newCircuitBreaker(cfg.Name, cfg.CB),
		logger: logger,
	}
}

// Name returns the feed identifier.
func (s *Source) Name() string {
	return s.name
}

// Fetch retrieves the feed's published new-set schedules. Posts with
// malformed dates are skipped.
func (s *Source) Fetch(ctx context.Context) ([]domain.Schedule, error) {
	resp, err := s.cb.Execute(func() (*resty.Response, error) {
		var result Response
		r, err := s.client.R().
			SetContext(ctx).
			SetResult(&result).
			Get(Endpoint)
		if err != nil {
			return nil, err
		}
		if r.IsError() {
			return nil, fmt.Errorf("feed %s returned status %d", s.name, r.StatusCode())
		}

		return r, nil
	})

	if err != nil {
		s.logger.Warn("feed fetch failed",
			zap.String("feed", s.name),
			zap.Error(err),
			zap.String("state", s.cb.State().String()),
		)

		return nil, fmt.Errorf("fetching feed %s: %w", s.name, err)
	}

	result := resp.Result().(*Response)
	schedules := make([]domain.Schedule, 0, len(result.Posts))
	skipped := 0

	for _, post := range result.Posts {
		schedule, ok := post.ToDomain()
		if !ok {
			skipped++
			continue
		}
		schedules = append(schedules, schedule)
	}

	if skipped > 0 {
		s.logger.Warn("feed posts skipped",
			zap.String("feed", s.name),
			zap.Int("skipped", skipped),
		)
	}

	s.logger.Info("feed fetch completed",
		zap.String("feed", s.name),
		zap.Int("count", len(schedules)),
	)

	return schedules, nil
}

// HealthCheck verifies the feed is accessible.
func (s *Source) HealthCheck(ctx context.Context) error {
	resp, err := s.client.R().
		SetContext(ctx).
		Get("/health")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("health check returned status %d", resp.StatusCode())
	}

	return nil
}
