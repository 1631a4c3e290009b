package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/DajanaD/comment-board/domain"
	"github.com/DajanaD/comment-board/internal/repository/mysql/model"
)

type postRepository struct {
	DB *gorm.DB
}

var _ domain.PostRepository = (*postRepository)(nil)

func NewPostRepository(db *gorm.DB) *postRepository {
	return &postRepository{
		DB: db,
	}
}

func (p *postRepository) Store(ctx context.Context, post *domain.Post) error {
	m := model.NewPostFromDomain(post)
	if err := p.DB.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	post.ID = m.ID
	return nil
}

func (p *postRepository) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	var post model.Post
	err := p.DB.WithContext(ctx).First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Post{}, domain.ErrNotFound
		}
		return domain.Post{}, err
	}
	return post.ToDomain(), nil
}

func (p *postRepository) Fetch(ctx context.Context) ([]domain.Post, error) {
	var posts []model.Post
	err := p.DB.WithContext(ctx).Order("id ASC").Find(&posts).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Post, len(posts))
	for i := range posts {
		res[i] = posts[i].ToDomain()
	}
	return res, nil
}

func (p *postRepository) FetchByComment(ctx context.Context, commentID int64) ([]domain.Post, error) {
	var posts []model.Post
	err := p.DB.WithContext(ctx).
		Where("comment_id = ?", commentID).
		Order("id ASC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Post, len(posts))
	for i := range posts {
		res[i] = posts[i].ToDomain()
	}
	return res, nil
}

func (p *postRepository) Update(ctx context.Context, post *domain.Post) error {
	return p.DB.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", post.ID).
		Update("comment_id", post.CommentID).Error
}

func (p *postRepository) Delete(ctx context.Context, id int64) error {
	result := p.DB.WithContext(ctx).Delete(&model.Post{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
