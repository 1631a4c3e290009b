package mysql

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DajanaD/comment-board/domain"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

func TestCommentGetByID(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewCommentRepository(gdb)

	created := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "owner_id", "description", "status", "created_at"}).
		AddRow(3, 7, "hello", "CREATED", created)
	mock.ExpectQuery("SELECT (.+) FROM `comments`").WillReturnRows(rows)

	c, err := repo.GetByID(context.Background(), 3)

	require.NoError(t, err)
	assert.EqualValues(t, 3, c.ID)
	assert.EqualValues(t, 7, c.OwnerID)
	assert.Equal(t, domain.CommentCreated, c.Status)
	assert.Equal(t, created, c.CreatedAt)
}

func TestCommentGetByID_NotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewCommentRepository(gdb)

	rows := sqlmock.NewRows([]string{"id", "owner_id", "description", "status", "created_at"})
	mock.ExpectQuery("SELECT (.+) FROM `comments`").WillReturnRows(rows)

	_, err := repo.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCommentStore(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewCommentRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `comments`").
		WillReturnResult(sqlmock.NewResult(12, 1))
	mock.ExpectCommit()

	c := domain.Comment{
		OwnerID:     7,
		Description: "hello",
		Status:      domain.CommentCreated,
		CreatedAt:   time.Now().UTC(),
	}
	err := repo.Store(context.Background(), &c)

	require.NoError(t, err)
	assert.EqualValues(t, 12, c.ID)
}

func TestCommentUpdate(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewCommentRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `comments`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	c := domain.Comment{ID: 3, Description: "edited"}
	err := repo.Update(context.Background(), &c)

	require.NoError(t, err)
}

func TestCommentUpdate_NoRowChange(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewCommentRepository(gdb)

	// identical description: mysql reports zero affected rows, still not
	// an error
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `comments`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	c := domain.Comment{ID: 3, Description: "same as before"}
	err := repo.Update(context.Background(), &c)

	require.NoError(t, err)
}

func TestCommentDelete(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewCommentRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `comments`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), 3)

	require.NoError(t, err)
}

func TestCommentDelete_NotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewCommentRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `comments`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), 99)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCommentFetchByOwner(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewCommentRepository(gdb)

	rows := sqlmock.NewRows([]string{"id", "owner_id", "description", "status", "created_at"}).
		AddRow(1, 7, "first", "CREATED", time.Now()).
		AddRow(2, 7, "second", "BLOCKED", time.Now())
	mock.ExpectQuery("SELECT (.+) FROM `comments`").WillReturnRows(rows)

	comments, err := repo.FetchByOwner(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, domain.CommentBlocked, comments[1].Status)
}
