package main

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/taingy-srun/portfolio/adapters/event"
	"github.com/taingy-srun/portfolio/internal/application/usecase/analytics"
	"github.com/taingy-srun/portfolio/pkg/logger"
)

const (
	minFetchBackoff = 100 * time.Millisecond
	maxFetchBackoff = 10 * time.Second
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

// consume feeds chat events into stats until ctx ends (nil) or the reader
// is closed (its error). Other fetch errors back off and retry.
func consume(ctx context.Context, reader messageReader, stats *analytics.TopicStats, log logger.Logger) error {
	backoff := minFetchBackoff
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrClosedPipe) {
				return err
			}
			log.Error("Failed to read message from Kafka", err, zap.Duration("retry_in", backoff))
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(backoff):
			}
			backoff = min(backoff*2, maxFetchBackoff)
			continue
		}
		backoff = minFetchBackoff

		evt, err := event.DecodeQueryAnswered(msg)
		if err != nil {
			log.Warn("Skipping malformed chat event", zap.Error(err), zap.Int64("offset", msg.Offset))
		} else {
			stats.Record(evt)
		}
		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("Failed to commit message", err)
		}
	}
}
