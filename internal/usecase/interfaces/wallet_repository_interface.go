package interfaces

import (
	"context"
	"repairhub/internal/domain/entities"
)

// IWalletRepository abstracts persistence for Wallet and its ledger.
//
// Create must fail with an error wrapping entities.ErrConflict when the owner
// already holds a wallet.
type IWalletRepository interface {
	Create(ctx context.Context, w entities.Wallet) (entities.Wallet, error)
	GetByID(ctx context.Context, id string) (entities.Wallet, error)
	GetByOwnerID(ctx context.Context, ownerID string) (entities.Wallet, error)
	ListTransactions(ctx context.Context, walletID string) ([]entities.Transaction, error)
}
