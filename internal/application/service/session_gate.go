package service

import "context"

// SessionGate holds the per-session "reply pending" flag. Acquire fails with
// an apperror conflict when the session is already pending.
type SessionGate interface {
	Acquire(ctx context.Context, sessionID string) error
	Release(ctx context.Context, sessionID string) error
}
