// Package logpub writes domain events to the structured log. It is used when
// no message broker is configured.
package logpub

import (
	"context"
	"log/slog"

	interfaces "github.com/sheikh-saqib/transaction-balances-services/internal/interfaces"
)

type Publisher struct {
	logger *slog.Logger
}

func NewPublisher(logger *slog.Logger) *Publisher {
	return &Publisher{logger: logger}
}

func (p *Publisher) Publish(ctx context.Context, topic string, event any) error {
	p.logger.InfoContext(ctx, "event published", "topic", topic, "event", event)
	return nil
}

var _ interfaces.EventPublisher = (*Publisher)(nil)
