package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/DajanaD/comment-board/domain"
)

type analyticsRepository struct {
	DB *gorm.DB
}

var _ domain.AnalyticsRepository = (*analyticsRepository)(nil)

func NewAnalyticsRepository(db *gorm.DB) *analyticsRepository {
	return &analyticsRepository{
		DB: db,
	}
}

type dailyBreakdownRow struct {
	Day          string
	CreatedCount int64
	BlockedCount int64
}

const dateLayout = "2006-01-02"

// DailyBreakdown groups comments by the calendar date (UTC) of created_at and
// counts them per status. Both range bounds are inclusive; dates with no
// comments produce no row.
func (a *analyticsRepository) DailyBreakdown(ctx context.Context, from, to time.Time) ([]domain.DailyBreakdown, error) {
	lo := truncateToDay(from)
	hi := truncateToDay(to).Add(24 * time.Hour)

	var rows []dailyBreakdownRow
	err := a.DB.WithContext(ctx).Raw(
		"SELECT DATE_FORMAT(created_at, '%Y-%m-%d') AS day, "+
			"COALESCE(SUM(status = ?), 0) AS created_count, "+
			"COALESCE(SUM(status = ?), 0) AS blocked_count "+
			"FROM comments WHERE created_at >= ? AND created_at < ? "+
			"GROUP BY day ORDER BY day ASC",
		string(domain.CommentCreated), string(domain.CommentBlocked), lo, hi,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.DailyBreakdown, 0, len(rows))
	for _, row := range rows {
		day, err := time.ParseInLocation(dateLayout, row.Day, time.UTC)
		if err != nil {
			return nil, err
		}
		res = append(res, domain.DailyBreakdown{
			Date:         day,
			CreatedCount: row.CreatedCount,
			BlockedCount: row.BlockedCount,
		})
	}
	return res, nil
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
