package persistence

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/taingy-srun/portfolio/internal/application/service"
	"github.com/taingy-srun/portfolio/pkg/apperror"
	"github.com/taingy-srun/portfolio/pkg/logger"
)

const pendingKeyPrefix = "chat:pending:"

type redisSessionGate struct {
	rdb    redis.Cmdable
	ttl    time.Duration
	logger logger.Logger
}

// NewRedisSessionGate shares pending flags across replicas. ttl bounds how
// long a flag survives a request that never released it.
func NewRedisSessionGate(rdb redis.Cmdable, ttl time.Duration, log logger.Logger) service.SessionGate {
	return &redisSessionGate{rdb: rdb, ttl: ttl, logger: log}
}

func pendingKey(sessionID string) string {
	return pendingKeyPrefix + sessionID
}

func (g *redisSessionGate) Acquire(ctx context.Context, sessionID string) error {
	ok, err := g.rdb.SetNX(ctx, pendingKey(sessionID), "1", g.ttl).Result()
	if err != nil {
		return apperror.NewInternal("failed to mark chat session pending", err)
	}
	if !ok {
		return apperror.NewBusy("chat session", sessionID)
	}
	return nil
}

func (g *redisSessionGate) Release(ctx context.Context, sessionID string) error {
	if err := g.rdb.Del(ctx, pendingKey(sessionID)).Err(); err != nil {
		g.logger.Warn("Failed to clear chat session flag", zap.String("session_id", sessionID), zap.Error(err))
		return apperror.NewInternal("failed to clear chat session", err)
	}
	return nil
}
