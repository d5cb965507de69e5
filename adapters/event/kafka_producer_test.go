package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taingy-srun/portfolio/internal/application/service"
	"github.com/taingy-srun/portfolio/internal/config"
	"github.com/taingy-srun/portfolio/pkg/logger"
)

type recordingWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublishQueryAnswered(t *testing.T) {
	w := &recordingWriter{}
	c := &KafkaProducerClient{ChatEventsWriter: w, logger: logger.NewNopLogger()}
	at := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	err := c.PublishQueryAnswered(context.Background(), service.QueryAnswered{SessionID: "s1", Topic: "skills", AnsweredAt: at})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "s1", string(w.msgs[0].Key))

	var payload QueryAnsweredPayload
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &payload))
	assert.Equal(t, QueryAnsweredPayload{EventType: EventTypeQueryAnswered, SessionID: "s1", Topic: "skills", AnsweredAt: at}, payload)

	c.Close()
	assert.True(t, w.closed)
}

func TestPublishQueryAnsweredWriteError(t *testing.T) {
	c := &KafkaProducerClient{ChatEventsWriter: &recordingWriter{err: errors.New("leader not available")}, logger: logger.NewNopLogger()}
	err := c.PublishQueryAnswered(context.Background(), service.QueryAnswered{SessionID: "s1", Topic: "skills"})
	assert.ErrorContains(t, err, "leader not available")
}

func TestNewKafkaProducerClientNeedsBrokers(t *testing.T) {
	_, err := NewKafkaProducerClient(config.Config{}, logger.NewNopLogger())
	assert.Error(t, err)
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, NewNoopPublisher().PublishQueryAnswered(context.Background(), service.QueryAnswered{}))
}

func TestDecodeQueryAnsweredRoundTrip(t *testing.T) {
	w := &recordingWriter{}
	c := &KafkaProducerClient{ChatEventsWriter: w, logger: logger.NewNopLogger()}
	evt := service.QueryAnswered{SessionID: "s9", Topic: "tech:java", AnsweredAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)}
	require.NoError(t, c.PublishQueryAnswered(context.Background(), evt))

	got, err := DecodeQueryAnswered(w.msgs[0])
	require.NoError(t, err)
	assert.Equal(t, evt, got)
}

func TestDecodeQueryAnsweredRejectsOtherEvents(t *testing.T) {
	_, err := DecodeQueryAnswered(kafka.Message{Value: []byte(`{"event_type":"post.created"}`)})
	assert.Error(t, err)

	_, err = DecodeQueryAnswered(kafka.Message{Value: []byte(`nope`)})
	assert.Error(t, err)
}
