package response

import "github.com/DajanaD/comment-board/domain"

type BlacklistWord struct {
	ID        int64  `json:"id"`
	Word      string `json:"word"`
	CreatedAt string `json:"created_at"`
}

func NewBlacklistWordFromDomain(w *domain.BlacklistWord) BlacklistWord {
	return BlacklistWord{
		ID:        w.ID,
		Word:      w.Word,
		CreatedAt: w.CreatedAt.Format(DateTimeFormat),
	}
}
