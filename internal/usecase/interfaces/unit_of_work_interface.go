package interfaces

import (
	"context"
	"repairhub/internal/domain/entities"
)

// ChangeSet is everything one operation writes.
//
// Aggregates (request, wallets, stats) carry the version they were loaded
// with; zero means the row must not exist yet. Transactions and events are
// append-only.
type ChangeSet struct {
	Request      *entities.ServiceRequest
	Wallets      []entities.Wallet
	Transactions []entities.Transaction
	Stats        *entities.TechnicianStats
	Events       []entities.LifecycleEvent
}

// IUnitOfWork commits a ChangeSet atomically: either every write is applied
// and every aggregate version is incremented, or nothing is. A version that
// no longer matches the stored one fails the commit with an error wrapping
// entities.ErrConflict.
type IUnitOfWork interface {
	Commit(ctx context.Context, cs ChangeSet) error
}
