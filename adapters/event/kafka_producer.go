package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/taingy-srun/portfolio/internal/application/service"
	"github.com/taingy-srun/portfolio/internal/config"
	"github.com/taingy-srun/portfolio/pkg/logger"
)

const (
	DefaultChatTopic = "chat.events"

	EventTypeQueryAnswered = "query.answered"
)

type QueryAnsweredPayload struct {
	EventType  string    `json:"event_type"`
	SessionID  string    `json:"session_id"`
	Topic      string    `json:"topic"`
	AnsweredAt time.Time `json:"answered_at"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaProducerClient struct {
	ChatEventsWriter messageWriter
	logger           logger.Logger
}

var _ service.EventPublisher = (*KafkaProducerClient)(nil)

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}
	topic := cfg.Kafka.ChatTopic
	if topic == "" {
		topic = DefaultChatTopic
	}

	chatWriter := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		MaxAttempts:            3,
		AllowAutoTopicCreation: true,
	}

	log.Info("Initialize Kafka producer successfully.")

	return &KafkaProducerClient{ChatEventsWriter: chatWriter, logger: log}, nil
}

// PublishQueryAnswered keys messages by session so one visitor's events stay
// ordered within a partition.
func (c *KafkaProducerClient) PublishQueryAnswered(ctx context.Context, evt service.QueryAnswered) error {
	value, err := json.Marshal(QueryAnsweredPayload{
		EventType:  EventTypeQueryAnswered,
		SessionID:  evt.SessionID,
		Topic:      evt.Topic,
		AnsweredAt: evt.AnsweredAt,
	})
	if err != nil {
		return fmt.Errorf("marshal chat event: %w", err)
	}

	err = c.ChatEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(evt.SessionID),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("write chat event: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.ChatEventsWriter != nil {
		if err := c.ChatEventsWriter.Close(); err != nil {
			c.logger.Error("Failed to close Kafka producer", err)
			return
		}
	}
	c.logger.Info("Closed Kafka producer")
}
