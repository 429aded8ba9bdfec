package interfaces

import (
	"context"
	"repairhub/internal/domain/entities"
)

// IEventPublisher delivers lifecycle events to observers (notifications,
// analytics). It is called after a successful commit.
type IEventPublisher interface {
	Publish(ctx context.Context, event entities.LifecycleEvent) error
}
