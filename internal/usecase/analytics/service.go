package analytics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/DajanaD/comment-board/domain"
)

type service struct {
	repo domain.AnalyticsRepository

	// Concurrent identical queries collapse into one database round trip.
	group singleflight.Group
}

var _ domain.AnalyticsUsecase = (*service)(nil)

func NewService(repo domain.AnalyticsRepository) *service {
	return &service{
		repo: repo,
	}
}

const dateLayout = "2006-01-02"

func (s *service) DailyBreakdown(ctx context.Context, from, to time.Time) ([]domain.DailyBreakdown, error) {
	from = from.UTC().Truncate(24 * time.Hour)
	to = to.UTC().Truncate(24 * time.Hour)
	if from.After(to) {
		return nil, domain.ErrInvalidRange
	}

	key := fmt.Sprintf("%s|%s", from.Format(dateLayout), to.Format(dateLayout))
	result, err, _ := s.group.Do(key, func() (any, error) {
		return s.repo.DailyBreakdown(ctx, from, to)
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.DailyBreakdown), nil
}
