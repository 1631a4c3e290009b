package user

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/DajanaD/comment-board/domain"
)

type stubUserRepo struct {
	byID    map[int64]domain.User
	byEmail map[string]domain.User

	inserted *domain.User
	updated  *domain.User
}

func (s *stubUserRepo) GetByID(_ context.Context, id int64) (domain.User, error) {
	u, ok := s.byID[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (s *stubUserRepo) Insert(_ context.Context, u *domain.User) error {
	u.ID = 1
	s.inserted = u
	return nil
}

func (s *stubUserRepo) Update(_ context.Context, u *domain.User) error {
	s.updated = u
	return nil
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

const testSecret = "test-secret"

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestRegister(t *testing.T) {
	repo := &stubUserRepo{byEmail: map[string]domain.User{}}
	svc := NewService(repo, []byte(testSecret), time.Hour)

	err := svc.Register(context.Background(), "alice", "alice@example.com", "s3cretpass")

	require.NoError(t, err)
	require.NotNil(t, repo.inserted)
	assert.Equal(t, "alice@example.com", repo.inserted.Email)
	assert.True(t, repo.inserted.IsActive)
	// the stored password must be a hash, not the plaintext
	assert.NotEqual(t, "s3cretpass", repo.inserted.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.inserted.Password), []byte("s3cretpass")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &stubUserRepo{
		byEmail: map[string]domain.User{"alice@example.com": {ID: 1}},
	}
	svc := NewService(repo, []byte(testSecret), time.Hour)

	err := svc.Register(context.Background(), "alice", "alice@example.com", "s3cretpass")

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Nil(t, repo.inserted)
}

func TestLogin(t *testing.T) {
	repo := &stubUserRepo{
		byEmail: map[string]domain.User{
			"bob@example.com": {
				ID:       7,
				IsAdmin:  true,
				IsActive: true,
				Password: hash(t, "letmein12"),
			},
		},
	}
	svc := NewService(repo, []byte(testSecret), time.Hour)

	tokenStr, err := svc.Login(context.Background(), "bob@example.com", "letmein12")

	require.NoError(t, err)
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	claims := token.Claims.(jwt.MapClaims)
	assert.EqualValues(t, 7, claims["sub"])
	assert.Equal(t, true, claims["admin"])
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := &stubUserRepo{
		byEmail: map[string]domain.User{
			"bob@example.com": {ID: 7, IsActive: true, Password: hash(t, "letmein12")},
		},
	}
	svc := NewService(repo, []byte(testSecret), time.Hour)

	_, err := svc.Login(context.Background(), "bob@example.com", "wrong")

	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestLogin_InactiveUser(t *testing.T) {
	repo := &stubUserRepo{
		byEmail: map[string]domain.User{
			"bob@example.com": {ID: 7, IsActive: false, Password: hash(t, "letmein12")},
		},
	}
	svc := NewService(repo, []byte(testSecret), time.Hour)

	_, err := svc.Login(context.Background(), "bob@example.com", "letmein12")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewService(&stubUserRepo{byEmail: map[string]domain.User{}}, []byte(testSecret), time.Hour)

	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateAutoReply(t *testing.T) {
	repo := &stubUserRepo{
		byID: map[int64]domain.User{3: {ID: 3, Name: "carol"}},
	}
	svc := NewService(repo, []byte(testSecret), time.Hour)

	u, err := svc.UpdateAutoReply(context.Background(), 3, true, 120)

	require.NoError(t, err)
	assert.True(t, u.AutoReplyEnabled)
	assert.EqualValues(t, 120, u.AutoReplyDelaySeconds)
	assert.Equal(t, 2*time.Minute, u.AutoReplyDelay())
	require.NotNil(t, repo.updated)
}

func TestUpdateAutoReply_NegativeDelay(t *testing.T) {
	repo := &stubUserRepo{byID: map[int64]domain.User{3: {ID: 3}}}
	svc := NewService(repo, []byte(testSecret), time.Hour)

	_, err := svc.UpdateAutoReply(context.Background(), 3, true, -1)

	assert.ErrorIs(t, err, domain.ErrBadParamInput)
	assert.Nil(t, repo.updated)
}
