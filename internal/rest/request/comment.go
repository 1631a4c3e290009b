package request

import "github.com/DajanaD/comment-board/domain"

type CreateComment struct {
	OwnerID     int64  `json:"owner_id" binding:"required,min=1"`
	Description string `json:"description" binding:"max=255"`
}

// ToDomain: Request -> Domain
func (r *CreateComment) ToDomain() domain.Comment {
	return domain.Comment{
		OwnerID:     r.OwnerID,
		Description: r.Description,
	}
}

type UpdateComment struct {
	Description string `json:"description" binding:"max=255"`
}
