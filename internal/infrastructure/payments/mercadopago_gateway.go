package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"repairhub/internal/usecase/interfaces"
	"strconv"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway charges wallet top-ups through Mercado Pago. In mock
// mode every charge is approved locally without calling the provider.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	log      zerolog.Logger
	clock    func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mock bool, logger zerolog.Logger) (*MercadoPagoGateway, error) {
	log := logger.With().Str("component", "payment-gateway").Logger()
	if mock {
		log.Info().Msg("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, log: log, clock: time.Now}, nil
	}

	if accessToken == "" {
		log.Warn().Msg("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error().Err(err).Msg("[payment][gateway] failed creating sdk config")
		return nil, err
	}
	log.Info().Msg("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), log: log, clock: time.Now}, nil
}

// CreatePayment charges amount. requestPayload carries the provider fields
// collected by the client (card token, payment method, payer); amount and
// description always override whatever the payload says.
func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, amount decimal.Decimal, description string, requestPayload json.RawMessage) (interfaces.GatewayCharge, error) {
	if g != nil && g.mockMode {
		return g.mockCharge(amount, description, requestPayload)
	}

	if g == nil || g.client == nil {
		return interfaces.GatewayCharge{}, ErrMercadoPagoGatewayNotConfigured
	}
	g.log.Info().Int("payload_len", len(requestPayload)).Str("amount", amount.String()).Msg("[payment][gateway] create start")

	var req payment.Request
	if len(requestPayload) > 0 {
		if err := json.Unmarshal(requestPayload, &req); err != nil {
			g.log.Warn().Err(err).Msg("[payment][gateway] payload unmarshal failed")
			return interfaces.GatewayCharge{}, err
		}
	}
	req.TransactionAmount = amount.InexactFloat64()
	req.Description = description

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.log.Error().Err(err).Msg("[payment][gateway] sdk create failed")
		return interfaces.GatewayCharge{}, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return interfaces.GatewayCharge{}, err
	}
	id := fmt.Sprintf("%d", resp.ID)
	g.log.Info().Str("provider_payment_id", id).Str("provider_status", resp.Status).Msg("[payment][gateway] create success")

	return interfaces.GatewayCharge{
		ProviderPaymentID: id,
		ProviderStatus:    resp.Status,
		Amount:            decimal.NewFromFloat(resp.TransactionAmount).Round(2),
		Response:          b,
	}, nil
}

func (g *MercadoPagoGateway) mockCharge(amount decimal.Decimal, description string, requestPayload json.RawMessage) (interfaces.GatewayCharge, error) {
	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	now := g.clock().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["transaction_amount"] = amount.String()
	resp["description"] = description
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = now.Format(time.RFC3339Nano)
	}

	b, err := json.Marshal(resp)
	if err != nil {
		g.log.Error().Err(err).Msg("[payment][gateway] mock response marshal failed")
		return interfaces.GatewayCharge{}, err
	}

	g.log.Info().Str("provider_payment_id", id).Msg("[payment][gateway] mock create success")
	return interfaces.GatewayCharge{
		ProviderPaymentID: id,
		ProviderStatus:    "approved",
		Amount:            amount,
		Response:          b,
	}, nil
}
