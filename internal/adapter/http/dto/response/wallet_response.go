package response

import (
	"repairhub/internal/domain/entities"
	"repairhub/internal/usecase"
	"time"

	"github.com/shopspring/decimal"
)

type WalletResponse struct {
	ID        string          `json:"id"`
	OwnerID   string          `json:"owner_id"`
	OwnerRole string          `json:"owner_role"`
	Balance   decimal.Decimal `json:"balance"`
	Version   int64           `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type TransactionResponse struct {
	ID               string          `json:"id"`
	WalletID         string          `json:"wallet_id"`
	Kind             string          `json:"kind"`
	Amount           decimal.Decimal `json:"amount"`
	SignedAmount     decimal.Decimal `json:"signed_amount"`
	Timestamp        time.Time       `json:"timestamp"`
	Description      string          `json:"description,omitempty"`
	RelatedWalletID  string          `json:"related_wallet_id,omitempty"`
	ServiceRequestID string          `json:"service_request_id,omitempty"`
}

type LedgerResponse struct {
	Wallet      WalletResponse      `json:"wallet"`
	Transaction TransactionResponse `json:"transaction"`
}

type TransferResponse struct {
	From    WalletResponse      `json:"from"`
	To      WalletResponse      `json:"to"`
	Payment TransactionResponse `json:"payment"`
	Earning TransactionResponse `json:"earning"`
}

type ReconcileResponse struct {
	WalletID         string          `json:"wallet_id"`
	Balance          decimal.Decimal `json:"balance"`
	LedgerTotal      decimal.Decimal `json:"ledger_total"`
	TransactionCount int             `json:"transaction_count"`
	Consistent       bool            `json:"consistent"`
}

func FromWallet(w entities.Wallet) WalletResponse {
	return WalletResponse{
		ID:        w.ID,
		OwnerID:   w.OwnerID,
		OwnerRole: string(w.OwnerRole),
		Balance:   w.Balance,
		Version:   w.Version,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func FromTransaction(t entities.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:               t.ID,
		WalletID:         t.WalletID,
		Kind:             string(t.Kind),
		Amount:           t.Amount,
		SignedAmount:     t.Signed(),
		Timestamp:        t.Timestamp,
		Description:      t.Description,
		RelatedWalletID:  t.RelatedWalletID,
		ServiceRequestID: t.ServiceRequestID,
	}
}

func FromTransactions(txs []entities.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, t := range txs {
		out = append(out, FromTransaction(t))
	}
	return out
}

func FromLedgerResult(r usecase.LedgerResult) LedgerResponse {
	return LedgerResponse{Wallet: FromWallet(r.Wallet), Transaction: FromTransaction(r.Transaction)}
}

func FromTransferResult(r usecase.TransferResult) TransferResponse {
	return TransferResponse{
		From:    FromWallet(r.From),
		To:      FromWallet(r.To),
		Payment: FromTransaction(r.Payment),
		Earning: FromTransaction(r.Earning),
	}
}

func FromReconcileResult(r usecase.ReconcileResult) ReconcileResponse {
	return ReconcileResponse{
		WalletID:         r.Wallet.ID,
		Balance:          r.Wallet.Balance,
		LedgerTotal:      r.LedgerTotal,
		TransactionCount: r.TransactionCount,
		Consistent:       r.Consistent,
	}
}
