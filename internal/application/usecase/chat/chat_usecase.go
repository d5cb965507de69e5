package chat

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/taingy-srun/portfolio/internal/application/service"
	"github.com/taingy-srun/portfolio/internal/domain/conversation"
	"github.com/taingy-srun/portfolio/pkg/apperror"
	"github.com/taingy-srun/portfolio/pkg/logger"
)

const publishTimeout = 5 * time.Second

type ChatUseCase struct {
	responder  *Responder
	gate       service.SessionGate
	publisher  service.EventPublisher
	replyDelay time.Duration
	logger     logger.Logger
	now        func() time.Time
}

func NewChatUseCase(
	responder *Responder,
	gate service.SessionGate,
	publisher service.EventPublisher,
	replyDelay time.Duration,
	log logger.Logger,
) *ChatUseCase {
	return &ChatUseCase{
		responder:  responder,
		gate:       gate,
		publisher:  publisher,
		replyDelay: replyDelay,
		logger:     log,
		now:        time.Now,
	}
}

type ChatInput struct {
	SessionID string
	Query     string
}

type ChatOutput struct {
	SessionID string `json:"session_id"`
	Topic     string `json:"topic"`
	Response  string `json:"response"`
}

func (uc *ChatUseCase) Execute(ctx context.Context, input ChatInput) (*ChatOutput, error) {
	query, ok := conversation.NormalizeInput(input.Query)
	if !ok {
		return nil, apperror.NewInvalidInput("query must not be empty", nil)
	}
	if input.SessionID == "" {
		return nil, apperror.NewInvalidInput("session id is required", nil)
	}

	l := uc.logger.With(zap.String("session_id", input.SessionID))

	answer, err := uc.answer(ctx, l, input.SessionID, query)
	if err != nil {
		return nil, err
	}

	evt := service.QueryAnswered{
		SessionID:  input.SessionID,
		Topic:      answer.Topic,
		AnsweredAt: uc.now().UTC(),
	}
	go uc.publish(context.WithoutCancel(ctx), l, evt)

	return &ChatOutput{
		SessionID: input.SessionID,
		Topic:     answer.Topic,
		Response:  answer.Text,
	}, nil
}

// answer holds the session's pending flag only for the typing pause and the
// lookup itself.
func (uc *ChatUseCase) answer(ctx context.Context, l logger.Logger, sessionID, query string) (Answer, error) {
	if err := uc.gate.Acquire(ctx, sessionID); err != nil {
		l.Warn("Chat session refused query", zap.Error(err))
		return Answer{}, err
	}
	defer func() {
		// The request context may already be done; the flag must still clear.
		if err := uc.gate.Release(context.WithoutCancel(ctx), sessionID); err != nil {
			l.Error("Failed to release chat session", err)
		}
	}()

	if err := uc.wait(ctx); err != nil {
		l.Info("Chat query abandoned while typing", zap.Error(err))
		return Answer{}, apperror.NewInternal("chat request cancelled", err)
	}

	answer := uc.responder.Respond(query)
	l.Info("Chat query answered", zap.String("topic", answer.Topic), zap.Int("query_len", len(query)))
	return answer, nil
}

func (uc *ChatUseCase) publish(ctx context.Context, l logger.Logger, evt service.QueryAnswered) {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := uc.publisher.PublishQueryAnswered(ctx, evt); err != nil {
		l.Error("Failed to publish chat event", err, zap.String("topic", evt.Topic))
	}
}

// Suggestions returns the preset questions offered next to the input.
func (uc *ChatUseCase) Suggestions() []conversation.Suggestion {
	return conversation.Suggestions()
}

// wait is the typing-indicator pause between a question and its answer.
func (uc *ChatUseCase) wait(ctx context.Context) error {
	if uc.replyDelay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(uc.replyDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
