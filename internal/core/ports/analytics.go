package ports

import (
	"context"
	"time"

	"github.com/Tarunkashyap6665/taskify-bhatiyani/internal/core/domain"
)

// AnalyticsRepository exposes the count queries the aggregator is built
// from. Every call hits the live table, nothing is cached.
type AnalyticsRepository interface {
	CountByStatus(ctx context.Context, status domain.TaskStatus) (int64, error)
	CountByPriority(ctx context.Context, priority domain.TaskPriority) (int64, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountByStatusCreatedBetween(ctx context.Context, status domain.TaskStatus, from, to time.Time) (int64, error)
}

type AnalyticsService interface {
	Summary(ctx context.Context) (domain.AnalyticsSummary, error)
	StatusCount(ctx context.Context) (domain.StatusCount, error)
}
