package domain

import (
	"context"
	"time"
)

// DailyBreakdown is a derived row: per-calendar-day (UTC) counts of comments
// by moderation status. Never persisted.
type DailyBreakdown struct {
	Date         time.Time `json:"date"`
	CreatedCount int64     `json:"created_count"`
	BlockedCount int64     `json:"blocked_count"`
}

// AnalyticsRepository runs the aggregation query. Both bounds are inclusive
// calendar dates; days without comments do not appear in the result.
type AnalyticsRepository interface {
	DailyBreakdown(ctx context.Context, from, to time.Time) ([]DailyBreakdown, error)
}

type AnalyticsUsecase interface {
	// DailyBreakdown returns ErrInvalidRange when from is after to.
	DailyBreakdown(ctx context.Context, from, to time.Time) ([]DailyBreakdown, error)
}
