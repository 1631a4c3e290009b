package response

import "github.com/DajanaD/comment-board/domain"

type DailyBreakdown struct {
	Date         string `json:"date"`
	CreatedCount int64  `json:"created_count"`
	BlockedCount int64  `json:"blocked_count"`
}

func NewDailyBreakdownFromDomain(d *domain.DailyBreakdown) DailyBreakdown {
	return DailyBreakdown{
		Date:         d.Date.Format(DateFormat),
		CreatedCount: d.CreatedCount,
		BlockedCount: d.BlockedCount,
	}
}
