package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/DajanaD/comment-board/domain"
	"github.com/DajanaD/comment-board/internal/metrics"
)

const (
	queueSize = 1024

	// replyPrefix + quoted excerpt must fit DescriptionMaxLen.
	replyPrefix   = "[auto-reply] Thanks for your comment: "
	maxExcerptLen = 180
)

type ReplyTask struct {
	CommentID int64
	Delay     time.Duration
}

// autoReplyScheduler runs deferred auto-reply tasks. Each scheduled task
// waits its delay, re-checks that the triggering comment still exists and
// then creates the reply through the comment lifecycle. Task failures are
// logged and dropped; nothing flows back to the request that created the
// triggering comment.
type autoReplyScheduler struct {
	commentRepo domain.CommentRepository
	creator     domain.ReplyCreator

	ch chan ReplyTask
	wg sync.WaitGroup
}

var _ domain.AutoReplyScheduler = (*autoReplyScheduler)(nil)

func NewAutoReplyScheduler(commentRepo domain.CommentRepository) *autoReplyScheduler {
	return &autoReplyScheduler{
		commentRepo: commentRepo,
		ch:          make(chan ReplyTask, queueSize),
	}
}

// AttachCreator wires the comment service in after construction; the service
// itself depends on this scheduler, so the two cannot be built in one step.
// Must be called before Start.
func (s *autoReplyScheduler) AttachCreator(creator domain.ReplyCreator) {
	s.creator = creator
}

// Schedule enqueues an auto-reply task when the owner has the feature
// enabled. Never blocks: if the queue is full the task is dropped with a
// log line, the originating request is not affected.
func (s *autoReplyScheduler) Schedule(comment domain.Comment, owner domain.User) {
	if !owner.AutoReplyEnabled {
		return
	}

	select {
	case s.ch <- ReplyTask{CommentID: comment.ID, Delay: owner.AutoReplyDelay()}:
	default:
		logrus.Warnf("auto-reply queue is full, task for comment %d dropped", comment.ID)
		metrics.AutoRepliesDropped.Inc()
	}
}

func (s *autoReplyScheduler) Start(ctx context.Context) {
	logrus.Info("auto-reply scheduler started")
	for {
		select {
		case task := <-s.ch:
			s.wg.Add(1)
			go s.fire(ctx, task)
		case <-ctx.Done():
			logrus.Info("shutting down auto-reply scheduler, waiting for pending tasks...")
			s.wg.Wait()
			return
		}
	}
}

// fire waits out the delay and then performs the reply. All errors end here.
func (s *autoReplyScheduler) fire(ctx context.Context, task ReplyTask) {
	defer s.wg.Done()

	delay := task.Delay
	if delay < 0 {
		delay = 0
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	orig, err := s.commentRepo.GetByID(ctx, task.CommentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Deleted before the task fired. Not an error.
			logrus.Debugf("comment %d is gone, skipping auto-reply", task.CommentID)
		} else {
			logrus.Errorf("auto-reply for comment %d: fetch failed: %v", task.CommentID, err)
		}
		metrics.AutoRepliesSkipped.Inc()
		return
	}

	reply := domain.Comment{
		OwnerID:     orig.OwnerID,
		Description: ReplyText(orig.Description),
	}
	if err := s.creator.CreateReply(ctx, &reply); err != nil {
		logrus.Errorf("auto-reply for comment %d: create failed: %v", task.CommentID, err)
		metrics.AutoRepliesSkipped.Inc()
		return
	}

	metrics.AutoRepliesSent.Inc()
}

// ReplyText builds the fixed reply template around an excerpt of the
// original text, truncated so the result fits the description limit.
func ReplyText(original string) string {
	excerpt := truncate(original, maxExcerptLen)
	if excerpt != original {
		excerpt += "..."
	}
	// Escaping in %q can still push a pathological excerpt over the
	// description limit, so cut the final string too.
	return truncate(fmt.Sprintf("%s%q", replyPrefix, excerpt), domain.DescriptionMaxLen)
}

// truncate cuts s to at most n bytes without splitting a utf8 rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && s[n]&0xc0 == 0x80 {
		n--
	}
	return s[:n]
}
