package model

import (
	"time"

	"github.com/DajanaD/comment-board/domain"
)

type User struct {
	ID                    int64     `gorm:"primaryKey;autoIncrement"`
	Name                  string    `gorm:"type:varchar(100);not null"`
	Email                 string    `gorm:"type:varchar(150);uniqueIndex;not null"`
	Password              string    `gorm:"column:hashed_password;type:varchar(255);not null"`
	IsAdmin               bool      `gorm:"default:false"`
	IsActive              bool      `gorm:"default:true"`
	AutoReplyEnabled      bool      `gorm:"column:auto_reply_enabled;default:false"`
	AutoReplyDelaySeconds int64     `gorm:"column:auto_reply_delay_seconds;default:0"`
	CreatedAt             time.Time `gorm:"type:datetime"`
	UpdatedAt             time.Time `gorm:"type:datetime"`
}

func (User) TableName() string {
	return "users"
}

func NewUserFromDomain(u *domain.User) *User {
	return &User{
		ID:                    u.ID,
		Name:                  u.Name,
		Email:                 u.Email,
		Password:              u.Password,
		IsAdmin:               u.IsAdmin,
		IsActive:              u.IsActive,
		AutoReplyEnabled:      u.AutoReplyEnabled,
		AutoReplyDelaySeconds: u.AutoReplyDelaySeconds,
		CreatedAt:             u.CreatedAt,
		UpdatedAt:             u.UpdatedAt,
	}
}

func (m *User) ToDomain() domain.User {
	return domain.User{
		ID:                    m.ID,
		Name:                  m.Name,
		Email:                 m.Email,
		Password:              m.Password,
		IsAdmin:               m.IsAdmin,
		IsActive:              m.IsActive,
		AutoReplyEnabled:      m.AutoReplyEnabled,
		AutoReplyDelaySeconds: m.AutoReplyDelaySeconds,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}
