package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/DajanaD/comment-board/domain"
	"github.com/DajanaD/comment-board/internal/repository/mysql/model"
)

type blacklistRepository struct {
	DB *gorm.DB
}

var _ domain.BlacklistRepository = (*blacklistRepository)(nil)

func NewBlacklistRepository(db *gorm.DB) *blacklistRepository {
	return &blacklistRepository{
		DB: db,
	}
}

// Words returns the active word strings only, the shape the matcher needs.
func (b *blacklistRepository) Words(ctx context.Context) ([]string, error) {
	var words []string
	err := b.DB.WithContext(ctx).
		Model(&model.BlacklistWord{}).
		Pluck("word", &words).Error
	if err != nil {
		return nil, err
	}
	return words, nil
}

func (b *blacklistRepository) Fetch(ctx context.Context) ([]domain.BlacklistWord, error) {
	var entries []model.BlacklistWord
	err := b.DB.WithContext(ctx).Order("word ASC").Find(&entries).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.BlacklistWord, len(entries))
	for i := range entries {
		res[i] = entries[i].ToDomain()
	}
	return res, nil
}

func (b *blacklistRepository) GetByWord(ctx context.Context, word string) (domain.BlacklistWord, error) {
	var entry model.BlacklistWord
	err := b.DB.WithContext(ctx).First(&entry, "word = ?", word).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.BlacklistWord{}, domain.ErrNotFound
		}
		return domain.BlacklistWord{}, err
	}
	return entry.ToDomain(), nil
}

func (b *blacklistRepository) Store(ctx context.Context, w *domain.BlacklistWord) error {
	m := model.NewBlacklistWordFromDomain(w)
	if err := b.DB.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	w.ID = m.ID
	return nil
}

func (b *blacklistRepository) Delete(ctx context.Context, word string) error {
	result := b.DB.WithContext(ctx).Delete(&model.BlacklistWord{}, "word = ?", word)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
