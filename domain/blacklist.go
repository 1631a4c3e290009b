package domain

import (
	"context"
	"time"
)

// BlacklistWord is a substring token. A comment whose description contains
// any active word is put into BLOCKED state at creation.
type BlacklistWord struct {
	ID        int64     `json:"id"`
	Word      string    `json:"word"`
	CreatedAt time.Time `json:"created_at"`
}

// WordProvider is the read side consulted on every comment creation.
// A word added mid-session must be visible on the next call.
type WordProvider interface {
	Words(ctx context.Context) ([]string, error)
}

// BlacklistRepository persists blacklist words.
type BlacklistRepository interface {
	WordProvider

	Fetch(ctx context.Context) ([]BlacklistWord, error)
	// GetByWord returns ErrNotFound when the word is not blacklisted.
	GetByWord(ctx context.Context, word string) (BlacklistWord, error)
	Store(ctx context.Context, w *BlacklistWord) error
	Delete(ctx context.Context, word string) error
}

// BlacklistCache caches the active word set.
type BlacklistCache interface {
	// Words returns ErrCacheMiss when the cache is cold.
	Words(ctx context.Context) ([]string, error)
	Add(ctx context.Context, word string) error
	Remove(ctx context.Context, word string) error
	Replace(ctx context.Context, words []string) error
}

type BlacklistUsecase interface {
	Fetch(ctx context.Context) ([]BlacklistWord, error)
	// Add returns ErrBadParamInput for blank words and ErrConflict for
	// duplicates.
	Add(ctx context.Context, word string) (BlacklistWord, error)
	// Remove returns ErrNotFound when the word is not blacklisted.
	Remove(ctx context.Context, word string) error
}
