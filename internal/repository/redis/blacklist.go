package redis

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/DajanaD/comment-board/domain"
)

const wordSetKey = "blacklist:words"

// blacklistCache keeps the active blacklist word set in a redis SET.
// The mysql table stays the source of truth; writes go through both.
type blacklistCache struct {
	client *redis.Client
}

var _ domain.BlacklistCache = (*blacklistCache)(nil)

func NewBlacklistCache(client *redis.Client) *blacklistCache {
	return &blacklistCache{
		client: client,
	}
}

// Words returns ErrCacheMiss when the set does not exist, so callers can
// tell a cold cache from a genuinely empty blacklist.
func (b *blacklistCache) Words(ctx context.Context) ([]string, error) {
	exists, err := b.client.Exists(ctx, wordSetKey).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, domain.ErrCacheMiss
	}
	return b.client.SMembers(ctx, wordSetKey).Result()
}

func (b *blacklistCache) Add(ctx context.Context, word string) error {
	return b.client.SAdd(ctx, wordSetKey, word).Err()
}

func (b *blacklistCache) Remove(ctx context.Context, word string) error {
	return b.client.SRem(ctx, wordSetKey, word).Err()
}

// Replace atomically rebuilds the cached set from the given words.
func (b *blacklistCache) Replace(ctx context.Context, words []string) error {
	pipe := b.client.TxPipeline()
	pipe.Del(ctx, wordSetKey)
	if len(words) > 0 {
		members := make([]interface{}, len(words))
		for i, w := range words {
			members[i] = w
		}
		pipe.SAdd(ctx, wordSetKey, members...)
	}
	_, err := pipe.Exec(ctx)
	return err
}
