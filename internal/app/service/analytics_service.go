package service

import (
	"context"
	"time"

	"github.com/Tarunkashyap6665/taskify-bhatiyani/internal/core/domain"
	"github.com/Tarunkashyap6665/taskify-bhatiyani/internal/core/ports"
)

const trendDays = 7

// AnalyticsService recomputes every figure from the live table on each
// call. The trailing window always ends on the current UTC date.
type AnalyticsService struct {
	analyticsRepository ports.AnalyticsRepository
	now                 func() time.Time
}

var _ ports.AnalyticsService = (*AnalyticsService)(nil)

func NewAnalyticsService(analyticsRepository ports.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{
		analyticsRepository: analyticsRepository,
		now:                 time.Now,
	}
}

// NewAnalyticsServiceWithClock pins the clock, for tests.
func NewAnalyticsServiceWithClock(analyticsRepository ports.AnalyticsRepository, now func() time.Time) *AnalyticsService {
	return &AnalyticsService{
		analyticsRepository: analyticsRepository,
		now:                 now,
	}
}

func (s *AnalyticsService) Summary(ctx context.Context) (domain.AnalyticsSummary, error) {
	status, err := s.StatusCount(ctx)
	if err != nil {
		return domain.AnalyticsSummary{}, err
	}

	priority, err := s.priorityCount(ctx)
	if err != nil {
		return domain.AnalyticsSummary{}, err
	}

	daily, err := s.dailyTrend(ctx)
	if err != nil {
		return domain.AnalyticsSummary{}, err
	}

	return domain.AnalyticsSummary{
		Daily:    daily,
		Status:   status,
		Priority: priority,
	}, nil
}

func (s *AnalyticsService) StatusCount(ctx context.Context) (domain.StatusCount, error) {
	completed, err := s.analyticsRepository.CountByStatus(ctx, domain.TaskStatusCompleted)
	if err != nil {
		return domain.StatusCount{}, err
	}

	pending, err := s.analyticsRepository.CountByStatus(ctx, domain.TaskStatusPending)
	if err != nil {
		return domain.StatusCount{}, err
	}

	return domain.StatusCount{Completed: completed, Pending: pending}, nil
}

func (s *AnalyticsService) priorityCount(ctx context.Context) (domain.PriorityCount, error) {
	high, err := s.analyticsRepository.CountByPriority(ctx, domain.TaskPriorityHigh)
	if err != nil {
		return domain.PriorityCount{}, err
	}

	medium, err := s.analyticsRepository.CountByPriority(ctx, domain.TaskPriorityMedium)
	if err != nil {
		return domain.PriorityCount{}, err
	}

	low, err := s.analyticsRepository.CountByPriority(ctx, domain.TaskPriorityLow)
	if err != nil {
		return domain.PriorityCount{}, err
	}

	return domain.PriorityCount{High: high, Medium: medium, Low: low}, nil
}

// dailyTrend buckets by created_at over the last seven UTC calendar days,
// oldest first. The completed figure counts tasks created that day whose
// status is currently "completed"; there is no completion timestamp.
func (s *AnalyticsService) dailyTrend(ctx context.Context) ([]domain.DailyActivity, error) {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	daily := make([]domain.DailyActivity, 0, trendDays)
	for i := trendDays - 1; i >= 0; i-- {
		dayStart := today.AddDate(0, 0, -i)
		dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Microsecond)

		completed, err := s.analyticsRepository.CountByStatusCreatedBetween(ctx, domain.TaskStatusCompleted, dayStart, dayEnd)
		if err != nil {
			return nil, err
		}

		added, err := s.analyticsRepository.CountCreatedBetween(ctx, dayStart, dayEnd)
		if err != nil {
			return nil, err
		}

		daily = append(daily, domain.DailyActivity{
			Date:      dayStart.Format("2006-01-02"),
			Completed: completed,
			Added:     added,
		})
	}

	return daily, nil
}
