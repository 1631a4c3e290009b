package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DajanaD/comment-board/domain"
	"github.com/DajanaD/comment-board/internal/rest/response"
)

type AnalyticsHandler struct {
	Service domain.AnalyticsUsecase
}

func NewAnalyticsHandler(svc domain.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{
		Service: svc,
	}
}

// DailyBreakdown returns per-day comment counts between the from and to
// query dates, both inclusive. Days without comments are omitted.
func (h *AnalyticsHandler) DailyBreakdown(c *gin.Context) {
	from, err := parseDate(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: "from must be a date in YYYY-MM-DD format"})
		return
	}
	to, err := parseDate(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: "to must be a date in YYYY-MM-DD format"})
		return
	}

	rows, err := h.Service.DailyBreakdown(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.DailyBreakdown, len(rows))
	for i := range rows {
		res[i] = response.NewDailyBreakdownFromDomain(&rows[i])
	}
	c.JSON(http.StatusOK, res)
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(response.DateFormat, s, time.UTC)
}
