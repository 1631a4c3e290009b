package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/DajanaD/comment-board/domain"
	"github.com/DajanaD/comment-board/internal/repository/mysql/model"
)

type userRepository struct {
	DB *gorm.DB
}

var _ domain.UserRepository = (*userRepository)(nil)

// NewUserRepository will create an implementation of domain.UserRepository
func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		DB: db,
	}
}

func (m *userRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	var user model.User
	if err := m.DB.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}

	return user.ToDomain(), nil
}

func (m *userRepository) Insert(ctx context.Context, u *domain.User) error {
	userModel := model.NewUserFromDomain(u)

	result := m.DB.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		return result.Error
	}

	u.ID = userModel.ID

	return nil
}

func (m *userRepository) Update(ctx context.Context, u *domain.User) error {
	userModel := model.NewUserFromDomain(u)

	// Select lists the columns explicitly so boolean false values are
	// written as well; gorm's Updates skips zero values otherwise.
	return m.DB.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", u.ID).
		Select("name", "email", "hashed_password", "is_admin", "is_active",
			"auto_reply_enabled", "auto_reply_delay_seconds", "updated_at").
		Updates(userModel).Error
}

func (m *userRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var user model.User
	if err := m.DB.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}

	return user.ToDomain(), nil
}
