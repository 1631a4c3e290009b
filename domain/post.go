package domain

import (
	"context"
	"time"
)

// Post links a comment to the user who published it.
type Post struct {
	ID        int64     `json:"id"`
	CommentID int64     `json:"comment_id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type PostRepository interface {
	Store(ctx context.Context, p *Post) error
	GetByID(ctx context.Context, id int64) (Post, error)
	Fetch(ctx context.Context) ([]Post, error)
	FetchByComment(ctx context.Context, commentID int64) ([]Post, error)
	Update(ctx context.Context, p *Post) error
	Delete(ctx context.Context, id int64) error
}

type PostUsecase interface {
	// Create persists a post. Returns ErrNotFound when the referenced
	// comment does not exist.
	Create(ctx context.Context, p *Post) error
	GetByID(ctx context.Context, id int64) (Post, error)
	Fetch(ctx context.Context) ([]Post, error)
	Update(ctx context.Context, id int64, commentID int64) (Post, error)
	Delete(ctx context.Context, id int64) (Post, error)
}
