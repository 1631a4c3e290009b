package user

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/DajanaD/comment-board/domain"
)

type service struct {
	userRepo  domain.UserRepository
	jwtSecret []byte
	jwtTTL    time.Duration
}

var _ domain.UserUsecase = (*service)(nil)

func NewService(userRepo domain.UserRepository, jwtSecret []byte, jwtTTL time.Duration) *service {
	return &service{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		jwtTTL:    jwtTTL,
	}
}

func (s *service) Register(ctx context.Context, name, email, password string) error {
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return domain.ErrConflict
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	u := domain.User{
		Name:      name,
		Email:     email,
		Password:  string(hashed),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.userRepo.Insert(ctx, &u)
}

func (s *service) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if !u.IsActive {
		return "", domain.ErrForbidden
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", domain.ErrBadParamInput
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   u.ID,
		"admin": u.IsAdmin,
		"iat":   now.Unix(),
		"exp":   now.Add(s.jwtTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *service) GetByID(ctx context.Context, id int64) (domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateAutoReply sets the auto-reply preference. The delay is validated
// here, at the boundary; the scheduler itself accepts whatever it is given.
func (s *service) UpdateAutoReply(ctx context.Context, id int64, enabled bool, delaySeconds int64) (domain.User, error) {
	if delaySeconds < 0 {
		return domain.User{}, domain.ErrBadParamInput
	}

	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	u.AutoReplyEnabled = enabled
	u.AutoReplyDelaySeconds = delaySeconds
	u.UpdatedAt = time.Now().UTC()
	if err := s.userRepo.Update(ctx, &u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}
