package request

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type AmountRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type TransferRequest struct {
	ToWalletID  string          `json:"to_wallet_id" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// TopUpRequest charges the caller's payment method. `mp_payload` is passed
// to Mercado Pago as-is (card token, payment method, payer).
type TopUpRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	MPPayload json.RawMessage `json:"mp_payload"`
}
