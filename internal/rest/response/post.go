package response

import "github.com/DajanaD/comment-board/domain"

type Post struct {
	ID        int64  `json:"id"`
	CommentID int64  `json:"comment_id"`
	UserID    int64  `json:"user_id"`
	CreatedAt string `json:"created_at"`
}

func NewPostFromDomain(p *domain.Post) Post {
	return Post{
		ID:        p.ID,
		CommentID: p.CommentID,
		UserID:    p.UserID,
		CreatedAt: p.CreatedAt.Format(DateTimeFormat),
	}
}
