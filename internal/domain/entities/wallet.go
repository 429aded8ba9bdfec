package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet holds the non-negative balance of exactly one customer or
// technician. Balance is a cached projection of the wallet's transactions.
//
// Storage model (DynamoDB):
//   - PK: id
//   - guard item PK owner#<owner_id> enforces one wallet per user
type Wallet struct {
	ID        string          `json:"id"`
	OwnerID   string          `json:"owner_id"`
	OwnerRole Role            `json:"owner_role"`
	Balance   decimal.Decimal `json:"balance"`
	Version   int64           `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewWallet opens an empty wallet for owner. Administrators never own one.
func NewWallet(id string, owner Actor, now time.Time) (Wallet, error) {
	if owner.IsAdmin() {
		return Wallet{}, ErrAdminWallet
	}
	if strings.TrimSpace(owner.ID) == "" || (!owner.IsCustomer() && !owner.IsTechnician()) {
		return Wallet{}, fmt.Errorf("%w: wallet owner must be a customer or technician", ErrUnauthorized)
	}
	now = now.UTC()
	return Wallet{
		ID:        id,
		OwnerID:   owner.ID,
		OwnerRole: owner.Role,
		Balance:   decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (w *Wallet) Deposit(amount decimal.Decimal, description string, now time.Time) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, ErrInvalidAmount
	}
	tx := w.post(TransactionDeposit, amount, description, "", now)
	return tx, nil
}

func (w *Wallet) Withdraw(amount decimal.Decimal, description string, now time.Time) (Transaction, error) {
	if err := w.checkDebit(amount); err != nil {
		return Transaction{}, err
	}
	return w.post(TransactionWithdrawal, amount, description, "", now), nil
}

// Transfer moves amount from one wallet to another, returning the PAYMENT
// line of the source and the EARNING line of the destination. Neither wallet
// is modified when an error is returned.
func Transfer(from, to *Wallet, amount decimal.Decimal, description string, now time.Time) (Transaction, Transaction, error) {
	if from.ID == to.ID {
		return Transaction{}, Transaction{}, ErrSameWallet
	}
	if err := from.checkDebit(amount); err != nil {
		return Transaction{}, Transaction{}, err
	}
	debit := from.post(TransactionPayment, amount, description, to.ID, now)
	credit := to.post(TransactionEarning, amount, description, from.ID, now)
	return debit, credit, nil
}

// Reconcile verifies that the cached balance equals the signed sum of the
// wallet's transactions.
func Reconcile(w Wallet, txs []Transaction) error {
	sum := SumSigned(txs)
	if !sum.Equal(w.Balance) {
		return fmt.Errorf("%w: wallet %s balance %s does not match ledger total %s", ErrConflict, w.ID, w.Balance, sum)
	}
	return nil
}

func (w *Wallet) checkDebit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if w.Balance.Sub(amount).IsNegative() {
		return &InsufficientFundsError{WalletID: w.ID, Balance: w.Balance.String(), Requested: amount.String()}
	}
	return nil
}

func (w *Wallet) post(kind TransactionKind, amount decimal.Decimal, description, related string, now time.Time) Transaction {
	now = now.UTC()
	tx := Transaction{
		ID:              uuid.NewString(),
		WalletID:        w.ID,
		Amount:          amount,
		Kind:            kind,
		Timestamp:       now,
		Description:     strings.TrimSpace(description),
		RelatedWalletID: related,
	}
	w.Balance = w.Balance.Add(tx.Signed())
	w.UpdatedAt = now
	return tx
}
