package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/taingy-srun/portfolio/adapters/event"
	"github.com/taingy-srun/portfolio/internal/application/usecase/analytics"
	"github.com/taingy-srun/portfolio/internal/config"
	"github.com/taingy-srun/portfolio/pkg/logger"
)

const reportEvery = time.Minute

func main() {
	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()
	appLogger.Info("Starting Portfolio chat stats worker...")

	if len(cfg.Kafka.Brokers) == 0 {
		appLogger.Fatal("KAFKA_BROKERS is required for the worker", nil)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Kafka Consumer
	reader := event.NewChatEventsReader(cfg.Kafka.Brokers, cfg.Kafka.ChatTopic)
	defer reader.Close()

	stats := analytics.NewTopicStats()
	go report(ctx, stats, appLogger)

	appLogger.Info("Worker listening", zap.String("topic", reader.Config().Topic), zap.String("group", event.ChatStatsGroupID))

	if err := consume(ctx, reader, stats, appLogger); err != nil {
		appLogger.Error("Worker stopped on reader error", err, zap.Int("total", stats.Total()))
		return
	}
	appLogger.Info("Worker stopped", zap.Int("total", stats.Total()))
}

func report(ctx context.Context, stats *analytics.TopicStats, log logger.Logger) {
	ticker := time.NewTicker(reportEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snapshot := stats.Snapshot()
			fields := make([]zap.Field, 0, len(snapshot)+3)
			fields = append(fields,
				zap.Int("total", stats.Total()),
				zap.Int("sessions", stats.Sessions()),
				zap.Time("last_seen", stats.LastSeen()),
			)
			for _, tc := range snapshot {
				fields = append(fields, zap.Int(tc.Topic, tc.Count))
			}
			log.Info("Chat topic tally", fields...)
		}
	}
}
