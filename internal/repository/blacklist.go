package repository

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/DajanaD/comment-board/domain"
)

// blacklistRepository coordinates the mysql table (source of truth) with the
// redis word set. Reads prefer the cache; writes go through both so a word
// added mid-session affects the very next comment creation.
type blacklistRepository struct {
	db    domain.BlacklistRepository
	cache domain.BlacklistCache

	rebuildGroup singleflight.Group
}

var _ domain.BlacklistRepository = (*blacklistRepository)(nil)

func NewBlacklistRepository(db domain.BlacklistRepository, cache domain.BlacklistCache) *blacklistRepository {
	return &blacklistRepository{
		db:    db,
		cache: cache,
	}
}

func (r *blacklistRepository) Words(ctx context.Context) ([]string, error) {
	words, err := r.cache.Words(ctx)
	if err == nil {
		return words, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("blacklist cache read failed, falling back to db: %v", err)
	}

	// Cold or broken cache: read the table once for all concurrent callers
	// and repopulate.
	result, err, _ := r.rebuildGroup.Do("words", func() (any, error) {
		words, err := r.db.Words(ctx)
		if err != nil {
			return nil, err
		}
		if err := r.cache.Replace(ctx, words); err != nil {
			logrus.Warnf("failed to rebuild blacklist cache: %v", err)
		}
		return words, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]string), nil
}

func (r *blacklistRepository) Fetch(ctx context.Context) ([]domain.BlacklistWord, error) {
	return r.db.Fetch(ctx)
}

func (r *blacklistRepository) GetByWord(ctx context.Context, word string) (domain.BlacklistWord, error) {
	return r.db.GetByWord(ctx, word)
}

func (r *blacklistRepository) Store(ctx context.Context, w *domain.BlacklistWord) error {
	if err := r.db.Store(ctx, w); err != nil {
		return err
	}
	if err := r.cache.Add(ctx, w.Word); err != nil {
		logrus.Warnf("failed to add %q to blacklist cache, invalidating: %v", w.Word, err)
		r.invalidate(ctx)
	}
	return nil
}

func (r *blacklistRepository) Delete(ctx context.Context, word string) error {
	if err := r.db.Delete(ctx, word); err != nil {
		return err
	}
	if err := r.cache.Remove(ctx, word); err != nil {
		logrus.Warnf("failed to remove %q from blacklist cache, invalidating: %v", word, err)
		r.invalidate(ctx)
	}
	return nil
}

// invalidate drops the cached set so the next read rebuilds from mysql.
func (r *blacklistRepository) invalidate(ctx context.Context) {
	if err := r.cache.Replace(ctx, nil); err != nil {
		logrus.Errorf("failed to invalidate blacklist cache: %v", err)
	}
}
