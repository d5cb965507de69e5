package event

import (
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/taingy-srun/portfolio/internal/application/service"
)

const ChatStatsGroupID = "chat-stats-group"

func NewChatEventsReader(brokers []string, topic string) *kafka.Reader {
	if topic == "" {
		topic = DefaultChatTopic
	}
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  ChatStatsGroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
}

// DecodeQueryAnswered parses one chat.events message.
func DecodeQueryAnswered(msg kafka.Message) (service.QueryAnswered, error) {
	var payload QueryAnsweredPayload
	if err := json.Unmarshal(msg.Value, &payload); err != nil {
		return service.QueryAnswered{}, fmt.Errorf("unmarshal chat event: %w", err)
	}
	if payload.EventType != EventTypeQueryAnswered {
		return service.QueryAnswered{}, fmt.Errorf("unexpected chat event type %q", payload.EventType)
	}
	return service.QueryAnswered{
		SessionID:  payload.SessionID,
		Topic:      payload.Topic,
		AnsweredAt: payload.AnsweredAt,
	}, nil
}
