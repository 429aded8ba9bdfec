package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"repairhub/internal/domain/entities"
	"repairhub/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var (
	ErrWalletNotFound              = fmt.Errorf("wallet %w", entities.ErrNotFound)
	ErrWalletAlreadyExists         = fmt.Errorf("%w: wallet already exists for this user", entities.ErrConflict)
	ErrInvalidWalletID             = fmt.Errorf("%w: invalid wallet id", entities.ErrInvalidData)
	ErrPaymentNotApproved          = fmt.Errorf("%w: payment was not approved by the provider", entities.ErrInvalidData)
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
)

type LedgerResult struct {
	Wallet      entities.Wallet
	Transaction entities.Transaction
}

type TransferResult struct {
	From    entities.Wallet
	To      entities.Wallet
	Payment entities.Transaction
	Earning entities.Transaction
}

type ReconcileResult struct {
	Wallet           entities.Wallet
	LedgerTotal      decimal.Decimal
	TransactionCount int
	Consistent       bool
}

// IWalletUseCase exposes the wallet ledger.
//
// Every balance change appends its Transaction(s) and updates the cached
// balance in one commit, guarded by the wallet version.
type IWalletUseCase interface {
	CreateWallet(ctx context.Context, owner entities.Actor) (entities.Wallet, error)
	GetByID(ctx context.Context, id string) (entities.Wallet, error)
	GetByOwner(ctx context.Context, ownerID string) (entities.Wallet, error)
	Deposit(ctx context.Context, walletID string, amount decimal.Decimal, description string) (LedgerResult, error)
	Withdraw(ctx context.Context, walletID string, amount decimal.Decimal, description string) (LedgerResult, error)
	Transfer(ctx context.Context, fromWalletID, toWalletID string, amount decimal.Decimal, description string) (TransferResult, error)
	ListTransactions(ctx context.Context, walletID string) ([]entities.Transaction, error)
	Reconcile(ctx context.Context, walletID string) (ReconcileResult, error)
	TopUp(ctx context.Context, walletID string, amount decimal.Decimal, providerPayload json.RawMessage) (LedgerResult, error)
}

type WalletUseCase struct {
	wallets interfaces.IWalletRepository
	uow     interfaces.IUnitOfWork
	gateway interfaces.IPaymentGateway
	log     zerolog.Logger
	clock   func() time.Time
}

var _ IWalletUseCase = (*WalletUseCase)(nil)

func NewWalletUseCase(wallets interfaces.IWalletRepository, uow interfaces.IUnitOfWork, gateway interfaces.IPaymentGateway, logger zerolog.Logger) *WalletUseCase {
	return &WalletUseCase{
		wallets: wallets,
		uow:     uow,
		gateway: gateway,
		log:     logger.With().Str("component", "wallet").Logger(),
		clock:   time.Now,
	}
}

func (u *WalletUseCase) CreateWallet(ctx context.Context, owner entities.Actor) (entities.Wallet, error) {
	w, err := entities.NewWallet(uuid.NewString(), owner, u.clock())
	if err != nil {
		return entities.Wallet{}, err
	}

	// Enforce: 1 wallet per user.
	if existing, err := u.wallets.GetByOwnerID(ctx, owner.ID); err != nil {
		return entities.Wallet{}, err
	} else if existing.ID != "" {
		return entities.Wallet{}, ErrWalletAlreadyExists
	}

	created, err := u.wallets.Create(ctx, w)
	if err != nil {
		if errors.Is(err, entities.ErrConflict) {
			return entities.Wallet{}, ErrWalletAlreadyExists
		}
		u.log.Error().Err(err).Str("owner_id", owner.ID).Msg("[wallet][usecase] create failed")
		return entities.Wallet{}, err
	}
	u.log.Info().Str("wallet_id", created.ID).Str("owner_id", owner.ID).Msg("[wallet][usecase] wallet created")
	return created, nil
}

func (u *WalletUseCase) GetByID(ctx context.Context, id string) (entities.Wallet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Wallet{}, ErrInvalidWalletID
	}
	w, err := u.wallets.GetByID(ctx, id)
	if err != nil {
		return entities.Wallet{}, err
	}
	if w.ID == "" {
		return entities.Wallet{}, ErrWalletNotFound
	}
	return w, nil
}

func (u *WalletUseCase) GetByOwner(ctx context.Context, ownerID string) (entities.Wallet, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.Wallet{}, ErrInvalidWalletID
	}
	w, err := u.wallets.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return entities.Wallet{}, err
	}
	if w.ID == "" {
		return entities.Wallet{}, ErrWalletNotFound
	}
	return w, nil
}

func (u *WalletUseCase) Deposit(ctx context.Context, walletID string, amount decimal.Decimal, description string) (LedgerResult, error) {
	return u.post(ctx, walletID, "deposit", func(w *entities.Wallet, now time.Time) (entities.Transaction, error) {
		return w.Deposit(amount, description, now)
	})
}

func (u *WalletUseCase) Withdraw(ctx context.Context, walletID string, amount decimal.Decimal, description string) (LedgerResult, error) {
	return u.post(ctx, walletID, "withdraw", func(w *entities.Wallet, now time.Time) (entities.Transaction, error) {
		return w.Withdraw(amount, description, now)
	})
}

func (u *WalletUseCase) Transfer(ctx context.Context, fromWalletID, toWalletID string, amount decimal.Decimal, description string) (TransferResult, error) {
	from, err := u.GetByID(ctx, fromWalletID)
	if err != nil {
		return TransferResult{}, err
	}
	to, err := u.GetByID(ctx, toWalletID)
	if err != nil {
		return TransferResult{}, err
	}

	payment, earning, err := entities.Transfer(&from, &to, amount, description, u.clock())
	if err != nil {
		u.log.Warn().Err(err).Str("from_wallet_id", from.ID).Str("to_wallet_id", to.ID).Str("amount", amount.String()).Msg("[wallet][usecase] transfer refused")
		return TransferResult{}, err
	}

	cs := interfaces.ChangeSet{
		Wallets:      []entities.Wallet{from, to},
		Transactions: []entities.Transaction{payment, earning},
	}
	if err := u.uow.Commit(ctx, cs); err != nil {
		u.log.Warn().Err(err).Str("from_wallet_id", from.ID).Str("to_wallet_id", to.ID).Msg("[wallet][usecase] transfer commit failed")
		return TransferResult{}, err
	}
	from.Version++
	to.Version++

	u.log.Info().
		Str("from_wallet_id", from.ID).
		Str("to_wallet_id", to.ID).
		Str("amount", amount.String()).
		Msg("[wallet][usecase] transfer completed")
	return TransferResult{From: from, To: to, Payment: payment, Earning: earning}, nil
}

func (u *WalletUseCase) ListTransactions(ctx context.Context, walletID string) ([]entities.Transaction, error) {
	w, err := u.GetByID(ctx, walletID)
	if err != nil {
		return nil, err
	}
	return u.wallets.ListTransactions(ctx, w.ID)
}

// Reconcile recomputes the balance from the ledger. A mismatch is reported,
// not repaired.
func (u *WalletUseCase) Reconcile(ctx context.Context, walletID string) (ReconcileResult, error) {
	w, err := u.GetByID(ctx, walletID)
	if err != nil {
		return ReconcileResult{}, err
	}
	txs, err := u.wallets.ListTransactions(ctx, w.ID)
	if err != nil {
		return ReconcileResult{}, err
	}

	res := ReconcileResult{
		Wallet:           w,
		LedgerTotal:      entities.SumSigned(txs),
		TransactionCount: len(txs),
		Consistent:       true,
	}
	if err := entities.Reconcile(w, txs); err != nil {
		res.Consistent = false
		u.log.Warn().
			Str("wallet_id", w.ID).
			Str("balance", w.Balance.String()).
			Str("ledger_total", res.LedgerTotal.String()).
			Msg("[wallet][usecase] balance discrepancy detected")
	}
	return res, nil
}

// TopUp charges the external payment provider and deposits the captured
// amount. A charge that succeeds but cannot be committed is logged with the
// provider id for manual reconciliation; it is never retried here.
func (u *WalletUseCase) TopUp(ctx context.Context, walletID string, amount decimal.Decimal, providerPayload json.RawMessage) (LedgerResult, error) {
	if !amount.IsPositive() {
		return LedgerResult{}, entities.ErrInvalidAmount
	}
	if u.gateway == nil {
		return LedgerResult{}, ErrPaymentGatewayNotConfigured
	}
	w, err := u.GetByID(ctx, walletID)
	if err != nil {
		return LedgerResult{}, err
	}

	charge, err := u.gateway.CreatePayment(ctx, amount, fmt.Sprintf("Wallet top-up %s", w.ID), providerPayload)
	if err != nil {
		u.log.Warn().Err(err).Str("wallet_id", w.ID).Msg("[wallet][usecase] top-up charge failed")
		return LedgerResult{}, err
	}
	if !strings.EqualFold(charge.ProviderStatus, "approved") {
		u.log.Warn().Str("wallet_id", w.ID).Str("provider_payment_id", charge.ProviderPaymentID).Str("provider_status", charge.ProviderStatus).Msg("[wallet][usecase] top-up not approved")
		return LedgerResult{}, ErrPaymentNotApproved
	}

	captured := amount
	if charge.Amount.IsPositive() {
		captured = charge.Amount
	}
	res, err := u.post(ctx, w.ID, "top-up", func(w *entities.Wallet, now time.Time) (entities.Transaction, error) {
		return w.Deposit(captured, fmt.Sprintf("top-up via payment %s", charge.ProviderPaymentID), now)
	})
	if err != nil {
		u.log.Error().Err(err).Str("wallet_id", w.ID).Str("provider_payment_id", charge.ProviderPaymentID).Msg("[wallet][usecase] top-up captured but not credited")
		return LedgerResult{}, err
	}
	return res, nil
}

func (u *WalletUseCase) post(
	ctx context.Context,
	walletID string,
	op string,
	apply func(w *entities.Wallet, now time.Time) (entities.Transaction, error),
) (LedgerResult, error) {
	w, err := u.GetByID(ctx, walletID)
	if err != nil {
		return LedgerResult{}, err
	}

	tx, err := apply(&w, u.clock())
	if err != nil {
		u.log.Warn().Err(err).Str("wallet_id", w.ID).Str("op", op).Msg("[wallet][usecase] ledger operation refused")
		return LedgerResult{}, err
	}

	cs := interfaces.ChangeSet{Wallets: []entities.Wallet{w}, Transactions: []entities.Transaction{tx}}
	if err := u.uow.Commit(ctx, cs); err != nil {
		u.log.Warn().Err(err).Str("wallet_id", w.ID).Str("op", op).Msg("[wallet][usecase] ledger commit failed")
		return LedgerResult{}, err
	}
	w.Version++

	u.log.Info().
		Str("wallet_id", w.ID).
		Str("transaction_id", tx.ID).
		Str("op", op).
		Str("amount", tx.Amount.String()).
		Msg("[wallet][usecase] ledger operation completed")
	return LedgerResult{Wallet: w, Transaction: tx}, nil
}
