package events

import (
	"context"
	"errors"
	"repairhub/internal/domain/entities"
	"repairhub/internal/usecase/interfaces"
)

// FanoutPublisher delivers each event to every publisher, in order. One
// failing publisher does not stop delivery to the others; their errors are
// joined.
type FanoutPublisher struct {
	publishers []interfaces.IEventPublisher
}

var _ interfaces.IEventPublisher = (*FanoutPublisher)(nil)

func NewFanoutPublisher(publishers ...interfaces.IEventPublisher) *FanoutPublisher {
	out := make([]interfaces.IEventPublisher, 0, len(publishers))
	for _, p := range publishers {
		if p != nil {
			out = append(out, p)
		}
	}
	return &FanoutPublisher{publishers: out}
}

func (f *FanoutPublisher) Publish(ctx context.Context, ev entities.LifecycleEvent) error {
	var errs []error
	for _, p := range f.publishers {
		if err := p.Publish(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
