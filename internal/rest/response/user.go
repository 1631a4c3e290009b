package response

import "github.com/DajanaD/comment-board/domain"

// Token is the login response body.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type User struct {
	ID                    int64  `json:"id"`
	Name                  string `json:"name"`
	Email                 string `json:"email"`
	AutoReplyEnabled      bool   `json:"auto_reply_enabled"`
	AutoReplyDelaySeconds int64  `json:"auto_reply_delay_seconds"`
	CreatedAt             string `json:"created_at"`
}

func NewUserFromDomain(u *domain.User) User {
	return User{
		ID:                    u.ID,
		Name:                  u.Name,
		Email:                 u.Email,
		AutoReplyEnabled:      u.AutoReplyEnabled,
		AutoReplyDelaySeconds: u.AutoReplyDelaySeconds,
		CreatedAt:             u.CreatedAt.Format(DateTimeFormat),
	}
}
