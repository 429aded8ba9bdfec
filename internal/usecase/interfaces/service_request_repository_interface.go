package interfaces

import (
	"context"
	"repairhub/internal/domain/entities"
)

// IServiceRequestRepository abstracts persistence for ServiceRequest.
//
// Lookups return a zero-value request (empty ID) when nothing is stored.
// Lifecycle mutations never go through this interface; they are committed
// with IUnitOfWork so that the request, wallets and ledger lines change
// together.
type IServiceRequestRepository interface {
	GetByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.ServiceRequest, error)
	Delete(ctx context.Context, id string, expectedVersion int64) error
}
