package request

import "github.com/DajanaD/comment-board/domain"

type CreatePost struct {
	CommentID int64 `json:"comment_id" binding:"required,min=1"`
	UserID    int64 `json:"user_id" binding:"required,min=1"`
}

func (r *CreatePost) ToDomain() domain.Post {
	return domain.Post{
		CommentID: r.CommentID,
		UserID:    r.UserID,
	}
}

type UpdatePost struct {
	CommentID int64 `json:"comment_id" binding:"required,min=1"`
}
