package post

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DajanaD/comment-board/domain"
)

type stubPostRepo struct {
	byID    map[int64]domain.Post
	stored  []domain.Post
	updated *domain.Post
	deleted []int64
}

func (s *stubPostRepo) Store(_ context.Context, p *domain.Post) error {
	p.ID = int64(len(s.stored) + 1)
	s.stored = append(s.stored, *p)
	return nil
}

func (s *stubPostRepo) GetByID(_ context.Context, id int64) (domain.Post, error) {
	p, ok := s.byID[id]
	if !ok {
		return domain.Post{}, domain.ErrNotFound
	}
	return p, nil
}

func (s *stubPostRepo) Fetch(_ context.Context) ([]domain.Post, error) { return s.stored, nil }

func (s *stubPostRepo) FetchByComment(_ context.Context, _ int64) ([]domain.Post, error) {
	return nil, nil
}

func (s *stubPostRepo) Update(_ context.Context, p *domain.Post) error {
	s.updated = p
	return nil
}

func (s *stubPostRepo) Delete(_ context.Context, id int64) error {
	s.deleted = append(s.deleted, id)
	return nil
}

type stubCommentRepo struct {
	existing map[int64]domain.Comment
}

func (s *stubCommentRepo) Store(_ context.Context, _ *domain.Comment) error { return nil }

func (s *stubCommentRepo) GetByID(_ context.Context, id int64) (domain.Comment, error) {
	c, ok := s.existing[id]
	if !ok {
		return domain.Comment{}, domain.ErrNotFound
	}
	return c, nil
}

func (s *stubCommentRepo) Fetch(_ context.Context) ([]domain.Comment, error) { return nil, nil }

func (s *stubCommentRepo) FetchByOwner(_ context.Context, _ int64) ([]domain.Comment, error) {
	return nil, nil
}

func (s *stubCommentRepo) Update(_ context.Context, _ *domain.Comment) error { return nil }
func (s *stubCommentRepo) Delete(_ context.Context, _ int64) error           { return nil }

func TestCreate(t *testing.T) {
	postRepo := &stubPostRepo{}
	commentRepo := &stubCommentRepo{existing: map[int64]domain.Comment{5: {ID: 5}}}
	svc := NewService(postRepo, commentRepo)

	p := domain.Post{CommentID: 5, UserID: 2}
	err := svc.Create(context.Background(), &p)

	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestCreate_CommentNotFound(t *testing.T) {
	postRepo := &stubPostRepo{}
	svc := NewService(postRepo, &stubCommentRepo{existing: map[int64]domain.Comment{}})

	p := domain.Post{CommentID: 99, UserID: 2}
	err := svc.Create(context.Background(), &p)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, postRepo.stored)
}

func TestUpdate(t *testing.T) {
	postRepo := &stubPostRepo{byID: map[int64]domain.Post{1: {ID: 1, CommentID: 5, UserID: 2}}}
	commentRepo := &stubCommentRepo{existing: map[int64]domain.Comment{5: {ID: 5}, 6: {ID: 6}}}
	svc := NewService(postRepo, commentRepo)

	p, err := svc.Update(context.Background(), 1, 6)

	require.NoError(t, err)
	assert.EqualValues(t, 6, p.CommentID)
	require.NotNil(t, postRepo.updated)
}

func TestUpdate_NewCommentNotFound(t *testing.T) {
	postRepo := &stubPostRepo{byID: map[int64]domain.Post{1: {ID: 1, CommentID: 5}}}
	svc := NewService(postRepo, &stubCommentRepo{existing: map[int64]domain.Comment{5: {ID: 5}}})

	_, err := svc.Update(context.Background(), 1, 99)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, postRepo.updated)
}

func TestDelete_ReturnsRemovedPost(t *testing.T) {
	postRepo := &stubPostRepo{byID: map[int64]domain.Post{1: {ID: 1, CommentID: 5, UserID: 2}}}
	svc := NewService(postRepo, &stubCommentRepo{})

	p, err := svc.Delete(context.Background(), 1)

	require.NoError(t, err)
	assert.EqualValues(t, 1, p.ID)
	assert.Equal(t, []int64{1}, postRepo.deleted)
}
