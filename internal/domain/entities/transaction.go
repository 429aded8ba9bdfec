package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind classifies a ledger line.
type TransactionKind string

const (
	TransactionDeposit    TransactionKind = "DEPOSIT"
	TransactionWithdrawal TransactionKind = "WITHDRAWAL"
	TransactionPayment    TransactionKind = "PAYMENT"
	TransactionEarning    TransactionKind = "EARNING"
)

// Credit reports whether the kind increases the wallet balance.
func (k TransactionKind) Credit() bool {
	return k == TransactionDeposit || k == TransactionEarning
}

func (k TransactionKind) Valid() bool {
	switch k {
	case TransactionDeposit, TransactionWithdrawal, TransactionPayment, TransactionEarning:
		return true
	}
	return false
}

// Transaction is one immutable ledger line of a wallet. Amount is always
// positive; the sign comes from Kind.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (wallet_id-index): wallet_id, timestamp
type Transaction struct {
	ID               string          `json:"id"`
	WalletID         string          `json:"wallet_id"`
	Amount           decimal.Decimal `json:"amount"`
	Kind             TransactionKind `json:"kind"`
	Timestamp        time.Time       `json:"timestamp"`
	Description      string          `json:"description,omitempty"`
	RelatedWalletID  string          `json:"related_wallet_id,omitempty"`
	ServiceRequestID string          `json:"service_request_id,omitempty"`
}

// Signed returns Amount for credits and -Amount for debits.
func (t Transaction) Signed() decimal.Decimal {
	if t.Kind.Credit() {
		return t.Amount
	}
	return t.Amount.Neg()
}

// SumSigned adds up the signed amounts of txs.
func SumSigned(txs []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txs {
		total = total.Add(t.Signed())
	}
	return total
}
