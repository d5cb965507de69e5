package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/taingy-srun/portfolio/adapters/event"
	httpAdapter "github.com/taingy-srun/portfolio/adapters/http"
	"github.com/taingy-srun/portfolio/adapters/persistence"
	"github.com/taingy-srun/portfolio/internal/application/service"
	chatUC "github.com/taingy-srun/portfolio/internal/application/usecase/chat"
	profileUC "github.com/taingy-srun/portfolio/internal/application/usecase/profile"
	"github.com/taingy-srun/portfolio/internal/config"
	"github.com/taingy-srun/portfolio/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()
	appLogger.Info("Start Portfolio API Server...", zap.String("env", cfg.App.Env))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Resume, loaded once
	record, err := persistence.LoadResume(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot load resume", err, zap.String("source", cfg.Resume.Source))
	}

	// Session gate
	var gate service.SessionGate
	if cfg.Redis.Addr != "" {
		redisClient, err := persistence.NewRedisClient(ctx, cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Cannot connect Redis", err)
		}
		defer redisClient.Close()
		gate = persistence.NewRedisSessionGate(redisClient, cfg.Chat.PendingTTL, appLogger)
	} else {
		appLogger.Warn("REDIS_ADDR not set, chat sessions are tracked in memory")
		gate = persistence.NewMemorySessionGate()
	}

	// Event publisher
	var publisher service.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Cannot init Kafka", err)
		}
		defer kafkaClient.Close()
		publisher = kafkaClient
	} else {
		publisher = event.NewNoopPublisher()
	}

	// Use Cases
	responder := chatUC.NewResponder(record)
	chatUseCase := chatUC.NewChatUseCase(responder, gate, publisher, cfg.Chat.ReplyDelay, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(record)

	// HTTP
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpAdapter.NewRouter(httpAdapter.Handlers{
		Chat:    httpAdapter.NewChatHandler(chatUseCase, appLogger),
		Profile: httpAdapter.NewProfileHandler(profileUseCase, appLogger),
		Contact: httpAdapter.NewContactHandler(appLogger),
	}, httpAdapter.ErrorMiddleware(appLogger))

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port), zap.Strings("topics", responder.Topics()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server shutdown failed", err)
	}
}
