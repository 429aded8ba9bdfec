package usecase

import (
	"context"
	"fmt"
	"repairhub/internal/domain/entities"
	"repairhub/internal/usecase/interfaces"
	"time"

	"github.com/rs/zerolog"
)

var (
	ErrCustomerWalletNotFound   = fmt.Errorf("customer wallet %w", entities.ErrNotFound)
	ErrTechnicianWalletNotFound = fmt.Errorf("technician wallet %w", entities.ErrNotFound)
)

// AcceptedPayment is the result of accepting a paid estimate.
type AcceptedPayment struct {
	Request          entities.ServiceRequest
	CustomerWallet   entities.Wallet
	TechnicianWallet entities.Wallet
	Payment          entities.Transaction
	Earning          entities.Transaction
}

// IPaymentUseCase orchestrates "customer accepts a paid estimate".
type IPaymentUseCase interface {
	AcceptAndPay(ctx context.Context, actor entities.Actor, requestID string) (AcceptedPayment, error)
}

type PaymentUseCase struct {
	requests  interfaces.IServiceRequestRepository
	wallets   interfaces.IWalletRepository
	uow       interfaces.IUnitOfWork
	publisher interfaces.IEventPublisher
	log       zerolog.Logger
	clock     func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	requests interfaces.IServiceRequestRepository,
	wallets interfaces.IWalletRepository,
	uow interfaces.IUnitOfWork,
	publisher interfaces.IEventPublisher,
	logger zerolog.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{
		requests:  requests,
		wallets:   wallets,
		uow:       uow,
		publisher: publisher,
		log:       logger.With().Str("component", "payment").Logger(),
		clock:     time.Now,
	}
}

// AcceptAndPay accepts the estimate of requestID and transfers its cost from
// the customer's wallet to the technician's wallet. The request, both
// wallets, both ledger lines and the event are committed together.
func (u *PaymentUseCase) AcceptAndPay(ctx context.Context, actor entities.Actor, requestID string) (AcceptedPayment, error) {
	if !actor.IsCustomer() {
		return AcceptedPayment{}, ErrCustomerOnly
	}

	r, err := loadRequest(ctx, u.requests, requestID)
	if err != nil {
		return AcceptedPayment{}, err
	}
	u.log.Info().Str("request_id", r.ID).Str("state", string(r.State)).Msg("[payment][usecase] accept-and-pay start")

	now := u.clock()
	out, err := r.AcceptEstimate(actor.ID, now)
	if err != nil {
		u.log.Warn().Err(err).Str("request_id", r.ID).Msg("[payment][usecase] accept rejected")
		return AcceptedPayment{}, err
	}

	customerWallet, err := u.walletOf(ctx, r.CustomerID, ErrCustomerWalletNotFound)
	if err != nil {
		return AcceptedPayment{}, err
	}
	technicianWallet, err := u.walletOf(ctx, r.TechnicianID, ErrTechnicianWalletNotFound)
	if err != nil {
		return AcceptedPayment{}, err
	}

	cost := r.Estimate.Cost
	payment, earning, err := entities.Transfer(&customerWallet, &technicianWallet, cost, fmt.Sprintf("payment for service request %s", r.ID), now)
	if err != nil {
		u.log.Warn().Err(err).Str("request_id", r.ID).Str("wallet_id", customerWallet.ID).Str("cost", cost.String()).Msg("[payment][usecase] transfer refused")
		return AcceptedPayment{}, err
	}
	payment.ServiceRequestID = r.ID
	earning.ServiceRequestID = r.ID

	if err := r.CheckInvariants(); err != nil {
		return AcceptedPayment{}, err
	}

	cs := interfaces.ChangeSet{
		Request:      &r,
		Wallets:      []entities.Wallet{customerWallet, technicianWallet},
		Transactions: []entities.Transaction{payment, earning},
		Events:       []entities.LifecycleEvent{out.Event},
	}
	if err := u.uow.Commit(ctx, cs); err != nil {
		u.log.Warn().Err(err).Str("request_id", r.ID).Msg("[payment][usecase] commit failed")
		return AcceptedPayment{}, err
	}
	r.Version++
	customerWallet.Version++
	technicianWallet.Version++

	u.log.Info().
		Str("request_id", r.ID).
		Str("payment_id", payment.ID).
		Str("earning_id", earning.ID).
		Str("amount", cost.String()).
		Msg("[payment][usecase] accept-and-pay success")
	publishEvent(ctx, u.publisher, u.log, out.Event)

	return AcceptedPayment{
		Request:          r,
		CustomerWallet:   customerWallet,
		TechnicianWallet: technicianWallet,
		Payment:          payment,
		Earning:          earning,
	}, nil
}

func (u *PaymentUseCase) walletOf(ctx context.Context, ownerID string, notFound error) (entities.Wallet, error) {
	w, err := u.wallets.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return entities.Wallet{}, err
	}
	if w.ID == "" {
		return entities.Wallet{}, notFound
	}
	return w, nil
}
