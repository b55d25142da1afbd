package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/Chatrawit/Meeting2/internal/logger"
	"github.com/Chatrawit/Meeting2/internal/metrics"
	"github.com/Chatrawit/Meeting2/internal/models"
	"github.com/Chatrawit/Meeting2/internal/repositories"
)

//go:generate mockgen -source=dashboard.go -destination=dashboard_mock.go -package=services

// MeetingAggregator runs the dashboard aggregations.
type MeetingAggregator interface {
	MeetingCounts(ctx context.Context, now time.Time) (*models.MeetingCounts, error)
	TimeDistribution(ctx context.Context, since time.Time) (*models.TimeDistribution, error)
	VenueUsage(ctx context.Context, limit int) ([]models.VenueUsage, error)
	Overview(ctx context.Context, now time.Time) (*models.DashboardOverview, error)
}

// DashboardCache stores rendered dashboard payloads.
type DashboardCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns repositories.ErrCacheMiss when absent
	Set(ctx context.Context, key string, payload []byte) error
}

// DashboardService serves the dashboard views, optionally through a cache.
type DashboardService struct {
	repo  MeetingAggregator
	cache DashboardCache
	now   func() time.Time
}

// NewDashboardService creates a new DashboardService. cache may be nil.
func NewDashboardService(repo MeetingAggregator, cache DashboardCache) *DashboardService {
	return &DashboardService{
		repo:  repo,
		cache: cache,
		now:   time.Now,
	}
}

// MeetingCounts returns total, upcoming, past and today's meeting counts.
func (s *DashboardService) MeetingCounts(ctx context.Context) (*models.MeetingCounts, error) {
	return cached(ctx, s, "meeting-counts", "meeting-counts", func() (*models.MeetingCounts, error) {
		return s.repo.MeetingCounts(ctx, s.now())
	})
}

// TimeDistribution returns meetings of the last days bucketed by weekday and hour.
func (s *DashboardService) TimeDistribution(ctx context.Context, days int) (*models.TimeDistribution, error) {
	key := fmt.Sprintf("time-distribution:%d", days)
	return cached(ctx, s, "time-distribution", key, func() (*models.TimeDistribution, error) {
		return s.repo.TimeDistribution(ctx, s.now().AddDate(0, 0, -days))
	})
}

// VenueUsage returns the limit busiest venues.
func (s *DashboardService) VenueUsage(ctx context.Context, limit int) ([]models.VenueUsage, error) {
	key := fmt.Sprintf("venue-usage:%d", limit)
	return cached(ctx, s, "venue-usage", key, func() ([]models.VenueUsage, error) {
		return s.repo.VenueUsage(ctx, limit)
	})
}

// Overview returns the combined dashboard overview.
func (s *DashboardService) Overview(ctx context.Context) (*models.DashboardOverview, error) {
	return cached(ctx, s, "overview", "overview", func() (*models.DashboardOverview, error) {
		return s.repo.Overview(ctx, s.now())
	})
}

// cached serves key from the cache or computes it with load and stores the result.
// Cache failures are logged and treated as misses.
func cached[T any](ctx context.Context, s *DashboardService, view, key string, load func() (T, error)) (T, error) {
	if s.cache != nil {
		payload, err := s.cache.Get(ctx, key)
		if err == nil {
			var v T
			if err := json.Unmarshal(payload, &v); err == nil {
				metrics.RecordDashboardCache(view, true)
				return v, nil
			}
			logger.Log.Warnw("discarding undecodable dashboard cache entry", "key", key, "error", err)
		} else if !errors.Is(err, repositories.ErrCacheMiss) {
			logger.Log.Warnw("dashboard cache read failed", "key", key, "error", err)
		}
		metrics.RecordDashboardCache(view, false)
	}

	v, err := load()
	if err != nil {
		logger.Log.Errorw("dashboard aggregation failed", "view", view, "error", err)
		return v, err
	}

	if s.cache != nil {
		payload, err := json.Marshal(v)
		if err == nil {
			err = s.cache.Set(ctx, key, payload)
		}
		if err != nil {
			logger.Log.Warnw("dashboard cache write failed", "key", key, "error", err)
		}
	}

	return v, nil
}
