package blacklist

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/DajanaD/comment-board/domain"
)

type service struct {
	repo domain.BlacklistRepository
}

var _ domain.BlacklistUsecase = (*service)(nil)

func NewService(repo domain.BlacklistRepository) *service {
	return &service{
		repo: repo,
	}
}

func (s *service) Fetch(ctx context.Context) ([]domain.BlacklistWord, error) {
	return s.repo.Fetch(ctx)
}

// Add stores a new blacklist word. Blank words are refused: an empty entry
// would match every comment.
func (s *service) Add(ctx context.Context, word string) (domain.BlacklistWord, error) {
	if strings.TrimSpace(word) == "" {
		return domain.BlacklistWord{}, domain.ErrBadParamInput
	}

	if _, err := s.repo.GetByWord(ctx, word); err == nil {
		return domain.BlacklistWord{}, domain.ErrConflict
	} else if err != domain.ErrNotFound {
		return domain.BlacklistWord{}, err
	}

	entry := domain.BlacklistWord{
		Word:      word,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Store(ctx, &entry); err != nil {
		return domain.BlacklistWord{}, err
	}

	logrus.Infof("blacklist word added: %q", word)
	return entry, nil
}

func (s *service) Remove(ctx context.Context, word string) error {
	if err := s.repo.Delete(ctx, word); err != nil {
		return err
	}
	logrus.Infof("blacklist word removed: %q", word)
	return nil
}
