package model

import (
	"time"

	"github.com/DajanaD/comment-board/domain"
)

type Comment struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	OwnerID     int64     `gorm:"column:owner_id;not null"`
	Description string    `gorm:"type:varchar(255)"`
	Status      string    `gorm:"type:varchar(16);not null"`
	CreatedAt   time.Time `gorm:"type:datetime"`
}

func (Comment) TableName() string {
	return "comments"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:          c.ID,
		OwnerID:     c.OwnerID,
		Description: c.Description,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Description: m.Description,
		Status:      domain.CommentStatus(m.Status),
		CreatedAt:   m.CreatedAt,
	}
}
