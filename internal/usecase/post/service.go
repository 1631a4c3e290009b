package post

import (
	"context"
	"time"

	"github.com/DajanaD/comment-board/domain"
)

type service struct {
	postRepo    domain.PostRepository
	commentRepo domain.CommentRepository
}

var _ domain.PostUsecase = (*service)(nil)

func NewService(postRepo domain.PostRepository, commentRepo domain.CommentRepository) *service {
	return &service{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

func (s *service) Create(ctx context.Context, p *domain.Post) error {
	if _, err := s.commentRepo.GetByID(ctx, p.CommentID); err != nil {
		return err
	}

	p.CreatedAt = time.Now().UTC()
	return s.postRepo.Store(ctx, p)
}

func (s *service) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

func (s *service) Fetch(ctx context.Context) ([]domain.Post, error) {
	return s.postRepo.Fetch(ctx)
}

func (s *service) Update(ctx context.Context, id int64, commentID int64) (domain.Post, error) {
	existing, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Post{}, err
	}
	if _, err := s.commentRepo.GetByID(ctx, commentID); err != nil {
		return domain.Post{}, err
	}

	existing.CommentID = commentID
	if err := s.postRepo.Update(ctx, &existing); err != nil {
		return domain.Post{}, err
	}
	return existing, nil
}

func (s *service) Delete(ctx context.Context, id int64) (domain.Post, error) {
	existing, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Post{}, err
	}
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return domain.Post{}, err
	}
	return existing, nil
}
