package redis

import (
	"context"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DajanaD/comment-board/domain"
)

func TestWords(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewBlacklistCache(client)

	mock.ExpectExists(wordSetKey).SetVal(1)
	mock.ExpectSMembers(wordSetKey).SetVal([]string{"spam", "scam"})

	words, err := cache.Words(context.Background())

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"spam", "scam"}, words)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWords_ColdCache(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewBlacklistCache(client)

	mock.ExpectExists(wordSetKey).SetVal(0)

	_, err := cache.Words(context.Background())

	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdd(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewBlacklistCache(client)

	mock.ExpectSAdd(wordSetKey, "spam").SetVal(1)

	err := cache.Add(context.Background(), "spam")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemove(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewBlacklistCache(client)

	mock.ExpectSRem(wordSetKey, "spam").SetVal(1)

	err := cache.Remove(context.Background(), "spam")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplace(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewBlacklistCache(client)

	mock.ExpectTxPipeline()
	mock.ExpectDel(wordSetKey).SetVal(1)
	mock.ExpectSAdd(wordSetKey, "spam", "scam").SetVal(2)
	mock.ExpectTxPipelineExec()

	err := cache.Replace(context.Background(), []string{"spam", "scam"})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplace_Empty(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewBlacklistCache(client)

	mock.ExpectTxPipeline()
	mock.ExpectDel(wordSetKey).SetVal(1)
	mock.ExpectTxPipelineExec()

	err := cache.Replace(context.Background(), nil)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
