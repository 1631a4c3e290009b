package domain

import (
	"context"
	"time"
)

// CommentStatus is the moderation state assigned to a comment at creation.
type CommentStatus string

const (
	CommentCreated CommentStatus = "CREATED"
	CommentBlocked CommentStatus = "BLOCKED"
)

// DescriptionMaxLen caps the free-text description of a comment.
const DescriptionMaxLen = 255

// Comment domain model
type Comment struct {
	ID          int64         `json:"id"`
	OwnerID     int64         `json:"owner_id"`
	Description string        `json:"description"`
	Status      CommentStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

// Blocked reports whether the comment was rejected by moderation.
func (c Comment) Blocked() bool {
	return c.Status == CommentBlocked
}

// CommentUsecase defines the business logic contract for comments.
type CommentUsecase interface {
	// Create validates the owner, runs moderation and persists the comment.
	// Returns ErrNotFound when the owner does not exist.
	Create(ctx context.Context, c *Comment) error
	GetByID(ctx context.Context, id int64) (Comment, error)
	Fetch(ctx context.Context) ([]Comment, error)
	FetchByOwner(ctx context.Context, ownerID int64) ([]Comment, error)
	// Update changes the description only. The moderation status stays as
	// decided at creation time.
	Update(ctx context.Context, id int64, description string) (Comment, error)
	// Delete removes the comment and returns the removed entity.
	Delete(ctx context.Context, id int64) (Comment, error)
}

// CommentRepository defines the contract for comment persistence.
type CommentRepository interface {
	Store(ctx context.Context, c *Comment) error
	GetByID(ctx context.Context, id int64) (Comment, error)
	Fetch(ctx context.Context) ([]Comment, error)
	FetchByOwner(ctx context.Context, ownerID int64) ([]Comment, error)
	Update(ctx context.Context, c *Comment) error
	Delete(ctx context.Context, id int64) error
}
