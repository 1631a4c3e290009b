package mysql

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/DajanaD/comment-board/domain"
)

func TestBlacklistWords(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewBlacklistRepository(gdb)

	rows := sqlmock.NewRows([]string{"word"}).
		AddRow("spam").
		AddRow("scam")
	mock.ExpectQuery("SELECT `word` FROM `black_list`").WillReturnRows(rows)

	words, err := repo.Words(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"spam", "scam"}, words)
}

func TestBlacklistGetByWord_NotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewBlacklistRepository(gdb)

	rows := sqlmock.NewRows([]string{"id", "word", "created_at"})
	mock.ExpectQuery("SELECT (.+) FROM `black_list`").WillReturnRows(rows)

	_, err := repo.GetByWord(context.Background(), "ghost")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBlacklistStore(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewBlacklistRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `black_list`").
		WillReturnResult(sqlmock.NewResult(4, 1))
	mock.ExpectCommit()

	w := domain.BlacklistWord{Word: "spam", CreatedAt: time.Now().UTC()}
	err := repo.Store(context.Background(), &w)

	require.NoError(t, err)
	assert.EqualValues(t, 4, w.ID)
}

func TestBlacklistDelete_NotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewBlacklistRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `black_list`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), "ghost")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
