package response

import "github.com/DajanaD/comment-board/domain"

type Comment struct {
	ID          int64  `json:"id"`
	OwnerID     int64  `json:"owner_id"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.Comment) Comment {
	return Comment{
		ID:          c.ID,
		OwnerID:     c.OwnerID,
		Description: c.Description,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt.Format(DateTimeFormat),
	}
}
