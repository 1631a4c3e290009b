package comment

import (
	"context"
	"time"

	"github.com/DajanaD/comment-board/domain"
	"github.com/DajanaD/comment-board/internal/metrics"
	"github.com/DajanaD/comment-board/internal/moderation"
)

type service struct {
	commentRepo domain.CommentRepository
	userRepo    domain.UserRepository
	words       domain.WordProvider
	scheduler   domain.AutoReplyScheduler
}

var _ domain.CommentUsecase = (*service)(nil)
var _ domain.ReplyCreator = (*service)(nil)

func NewService(
	commentRepo domain.CommentRepository,
	userRepo domain.UserRepository,
	words domain.WordProvider,
	scheduler domain.AutoReplyScheduler,
) *service {
	return &service{
		commentRepo: commentRepo,
		userRepo:    userRepo,
		words:       words,
		scheduler:   scheduler,
	}
}

// Create runs the comment through moderation and persists it. The status is
// decided here, once, against the blacklist as it exists right now.
func (s *service) Create(ctx context.Context, c *domain.Comment) error {
	owner, err := s.userRepo.GetByID(ctx, c.OwnerID)
	if err != nil {
		return err
	}

	if err := s.create(ctx, c); err != nil {
		return err
	}

	if !c.Blocked() {
		s.scheduler.Schedule(*c, owner)
	}
	return nil
}

// CreateReply persists an auto-reply comment. Same moderation path as
// Create, but a reply never schedules another auto-reply.
func (s *service) CreateReply(ctx context.Context, c *domain.Comment) error {
	if _, err := s.userRepo.GetByID(ctx, c.OwnerID); err != nil {
		return err
	}
	return s.create(ctx, c)
}

func (s *service) create(ctx context.Context, c *domain.Comment) error {
	if len(c.Description) > domain.DescriptionMaxLen {
		return domain.ErrBadParamInput
	}

	words, err := s.words.Words(ctx)
	if err != nil {
		return err
	}

	c.Status = domain.CommentCreated
	if moderation.IsBlocked(c.Description, words) {
		c.Status = domain.CommentBlocked
	}
	c.CreatedAt = time.Now().UTC()

	if err := s.commentRepo.Store(ctx, c); err != nil {
		return err
	}

	metrics.CommentsModerated.WithLabelValues(string(c.Status)).Inc()
	return nil
}

func (s *service) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	return s.commentRepo.GetByID(ctx, id)
}

func (s *service) Fetch(ctx context.Context) ([]domain.Comment, error) {
	return s.commentRepo.Fetch(ctx)
}

func (s *service) FetchByOwner(ctx context.Context, ownerID int64) ([]domain.Comment, error) {
	if _, err := s.userRepo.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}
	return s.commentRepo.FetchByOwner(ctx, ownerID)
}

// Update replaces the description. The moderation status is fixed at
// creation and is not re-evaluated here, even if the new text would match
// the blacklist now.
func (s *service) Update(ctx context.Context, id int64, description string) (domain.Comment, error) {
	if len(description) > domain.DescriptionMaxLen {
		return domain.Comment{}, domain.ErrBadParamInput
	}

	existing, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Comment{}, err
	}

	existing.Description = description
	if err := s.commentRepo.Update(ctx, &existing); err != nil {
		return domain.Comment{}, err
	}
	return existing, nil
}

// Delete removes the comment and returns it, so callers can log or echo
// what was removed.
func (s *service) Delete(ctx context.Context, id int64) (domain.Comment, error) {
	existing, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Comment{}, err
	}
	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return domain.Comment{}, err
	}
	return existing, nil
}
