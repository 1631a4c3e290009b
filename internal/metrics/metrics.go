// Package metrics exposes Prometheus counters for the moderation core.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CommentsModerated counts comments by the moderation status assigned
	// at creation.
	CommentsModerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "comments_moderated_total",
			Help: "Total number of comments created, by moderation status",
		},
		[]string{"status"},
	)

	// AutoRepliesSent counts auto-reply comments successfully created.
	AutoRepliesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "auto_replies_sent_total",
			Help: "Total number of auto-reply comments created",
		},
	)

	// AutoRepliesSkipped counts auto-reply tasks that fired but created
	// nothing, either because the triggering comment was gone or the
	// reply could not be stored.
	AutoRepliesSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "auto_replies_skipped_total",
			Help: "Total number of auto-reply tasks that completed without a reply",
		},
	)

	// AutoRepliesDropped counts tasks rejected at enqueue time because the
	// scheduler queue was full.
	AutoRepliesDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "auto_replies_dropped_total",
			Help: "Total number of auto-reply tasks dropped at enqueue",
		},
	)
)
