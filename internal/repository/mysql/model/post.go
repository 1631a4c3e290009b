package model

import (
	"time"

	"github.com/DajanaD/comment-board/domain"
)

type Post struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	CommentID int64     `gorm:"column:comment_id;not null"`
	UserID    int64     `gorm:"column:user_id;not null"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Post) TableName() string {
	return "posts"
}

func NewPostFromDomain(p *domain.Post) *Post {
	return &Post{
		ID:        p.ID,
		CommentID: p.CommentID,
		UserID:    p.UserID,
		CreatedAt: p.CreatedAt,
	}
}

func (m *Post) ToDomain() domain.Post {
	return domain.Post{
		ID:        m.ID,
		CommentID: m.CommentID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}
