package service

import (
	"context"
	"time"
)

// QueryAnswered records which topic a question resolved to. The question
// text itself is never published.
type QueryAnswered struct {
	SessionID  string
	Topic      string
	AnsweredAt time.Time
}

type EventPublisher interface {
	PublishQueryAnswered(ctx context.Context, evt QueryAnswered) error
}
