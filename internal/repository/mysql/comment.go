package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/DajanaD/comment-board/domain"
	"github.com/DajanaD/comment-board/internal/repository/mysql/model"
)

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	m := model.NewCommentFromDomain(comment)
	if err := c.DB.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	comment.ID = m.ID
	return nil
}

func (c *commentRepository) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	var comment model.Comment
	err := c.DB.WithContext(ctx).First(&comment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Comment{}, domain.ErrNotFound
		}
		return domain.Comment{}, err
	}
	return comment.ToDomain(), nil
}

func (c *commentRepository) Fetch(ctx context.Context) ([]domain.Comment, error) {
	var comments []model.Comment
	err := c.DB.WithContext(ctx).Order("id ASC").Find(&comments).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Comment, len(comments))
	for i := range comments {
		res[i] = comments[i].ToDomain()
	}
	return res, nil
}

func (c *commentRepository) FetchByOwner(ctx context.Context, ownerID int64) ([]domain.Comment, error) {
	var comments []model.Comment
	err := c.DB.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Comment, len(comments))
	for i := range comments {
		res[i] = comments[i].ToDomain()
	}
	return res, nil
}

// Update persists the mutable fields only. Status and created_at are fixed
// at creation and deliberately excluded.
func (c *commentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	// RowsAffected is not checked here: mysql reports zero affected rows
	// for a no-op update. Existence is verified by the caller.
	return c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", comment.ID).
		Update("description", comment.Description).Error
}

func (c *commentRepository) Delete(ctx context.Context, id int64) error {
	result := c.DB.WithContext(ctx).Delete(&model.Comment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
