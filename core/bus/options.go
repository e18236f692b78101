package bus

import (
	"log/slog"
	"time"
)

// QueueOption is a functional option for configuring a queue bus.
type QueueOption func(*queueOptions)

type queueOptions struct {
	logger *slog.Logger
}

// WithQueueLogger sets the logger for internal queue diagnostics.
func WithQueueLogger(logger *slog.Logger) QueueOption {
	return func(o *queueOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// TopicOption is a functional option for configuring a topic bus.
type TopicOption func(*topicOptions)

type topicOptions struct {
	logger        *slog.Logger
	retention     time.Duration
	sweepInterval time.Duration
}

// WithTopicLogger sets the logger for internal topic diagnostics.
func WithTopicLogger(logger *slog.Logger) TopicOption {
	return func(o *topicOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithRetentionWindow sets how long a message survives in the topic buffer,
// measured against the message's own timestamp. Default is 24 hours.
func WithRetentionWindow(d time.Duration) TopicOption {
	return func(o *topicOptions) {
		if d > 0 {
			o.retention = d
		}
	}
}

// WithSweepInterval sets how often the retention sweeper runs. Default is
// one hour.
func WithSweepInterval(d time.Duration) TopicOption {
	return func(o *topicOptions) {
		if d > 0 {
			o.sweepInterval = d
		}
	}
}
