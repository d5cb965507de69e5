package event

import (
	"context"

	"github.com/taingy-srun/portfolio/internal/application/service"
)

type noopPublisher struct{}

// NewNoopPublisher is wired when no Kafka brokers are configured.
func NewNoopPublisher() service.EventPublisher {
	return noopPublisher{}
}

func (noopPublisher) PublishQueryAnswered(context.Context, service.QueryAnswered) error {
	return nil
}
