package interfaces

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// GatewayCharge is the provider's answer to a wallet top-up charge.
type GatewayCharge struct {
	ProviderPaymentID string
	ProviderStatus    string
	Amount            decimal.Decimal
	Response          json.RawMessage
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The wallet service uses it to charge a customer's payment method before
// crediting the captured amount to the wallet.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, amount decimal.Decimal, description string, requestPayload json.RawMessage) (GatewayCharge, error)
}
