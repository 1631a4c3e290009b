package domain

import "context"

// AutoReplyScheduler enqueues deferred auto-reply tasks. Scheduling is
// fire-and-forget: a failed or dropped task never reaches the request that
// created the triggering comment.
type AutoReplyScheduler interface {
	Start(ctx context.Context)

	// Schedule enqueues an auto-reply for comment if the owner has the
	// feature enabled. Never blocks.
	Schedule(comment Comment, owner User)
}

// ReplyCreator creates the follow-up comment when an auto-reply task fires.
// It runs the same moderation as a user-created comment but does not chain
// another auto-reply.
type ReplyCreator interface {
	CreateReply(ctx context.Context, c *Comment) error
}
