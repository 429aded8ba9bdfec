package events

import (
	"context"
	"repairhub/internal/domain/entities"
	"repairhub/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

// LogPublisher writes every lifecycle event as one structured log line.
type LogPublisher struct {
	log zerolog.Logger
}

var _ interfaces.IEventPublisher = (*LogPublisher)(nil)

func NewLogPublisher(logger zerolog.Logger) *LogPublisher {
	return &LogPublisher{log: logger.With().Str("component", "events").Logger()}
}

func (p *LogPublisher) Publish(_ context.Context, ev entities.LifecycleEvent) error {
	p.log.Info().
		Str("event_id", ev.ID).
		Str("kind", string(ev.Kind)).
		Str("request_id", ev.RequestID).
		Str("customer_id", ev.CustomerID).
		Str("technician_id", ev.TechnicianID).
		Str("state", string(ev.State)).
		Str("amount", ev.Amount.String()).
		Time("occurred_at", ev.OccurredAt).
		Msg("[events] lifecycle event")
	return nil
}
