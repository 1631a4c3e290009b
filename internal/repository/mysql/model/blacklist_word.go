package model

import (
	"time"

	"github.com/DajanaD/comment-board/domain"
)

type BlacklistWord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Word      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (BlacklistWord) TableName() string {
	return "black_list"
}

func NewBlacklistWordFromDomain(w *domain.BlacklistWord) *BlacklistWord {
	return &BlacklistWord{
		ID:        w.ID,
		Word:      w.Word,
		CreatedAt: w.CreatedAt,
	}
}

func (m *BlacklistWord) ToDomain() domain.BlacklistWord {
	return domain.BlacklistWord{
		ID:        m.ID,
		Word:      m.Word,
		CreatedAt: m.CreatedAt,
	}
}
