package usecase

import (
	"context"
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
	ErrServiceRequestNotFound = fmt.Errorf("service request %w", entities.ErrNotFound)
	ErrInvalidRequestID       = fmt.Errorf("%w: invalid service request id", entities.ErrInvalidData)
	ErrCustomerOnly           = fmt.Errorf("%w: operation requires a customer", entities.ErrUnauthorized)
	ErrTechnicianOnly         = fmt.Errorf("%w: operation requires a technician", entities.ErrUnauthorized)
	ErrRequestNotVisible      = fmt.Errorf("%w: service request is not visible to this user", entities.ErrUnauthorized)
)

type CreateRequestInput struct {
	Item            entities.Item
	CouponCode      string
	PaymentMethodID string
}

type EstimateInput struct {
	Cost           decimal.Decimal
	CompletionDate time.Time
	Notes          string
}

type ReportInput struct {
	RepairDetails      string
	RepairSummary      string
	CompletionDateTime time.Time
}

// ILifecycleUseCase is the only entry point that mutates a ServiceRequest.
//
// Every lifecycle operation loads the request, checks the actor, runs the
// state transition, and commits the request together with its side effects
// (technician stats, wallet transfer, event) as one unit of work.
type ILifecycleUseCase interface {
	CreateRequest(ctx context.Context, actor entities.Actor, in CreateRequestInput) (entities.ServiceRequest, error)
	GetByID(ctx context.Context, actor entities.Actor, id string) (entities.ServiceRequest, error)
	ListByCustomer(ctx context.Context, actor entities.Actor) ([]entities.ServiceRequest, error)
	UpdateItem(ctx context.Context, actor entities.Actor, id string, item entities.Item) (entities.ServiceRequest, error)
	DeleteRequest(ctx context.Context, actor entities.Actor, id string) error

	ProvideEstimate(ctx context.Context, actor entities.Actor, id string, in EstimateInput) (entities.ServiceRequest, error)
	AcceptEstimate(ctx context.Context, actor entities.Actor, id string) (entities.ServiceRequest, error)
	RejectEstimate(ctx context.Context, actor entities.Actor, id string) (entities.ServiceRequest, error)
	StartService(ctx context.Context, actor entities.Actor, id string) (entities.ServiceRequest, error)
	CompleteService(ctx context.Context, actor entities.Actor, id string) (entities.ServiceRequest, error)
	CreateReport(ctx context.Context, actor entities.Actor, id string, in ReportInput) (entities.ServiceRequest, error)
}

type LifecycleUseCase struct {
	requests  interfaces.IServiceRequestRepository
	stats     interfaces.ITechnicianStatsRepository
	uow       interfaces.IUnitOfWork
	payments  IPaymentUseCase
	publisher interfaces.IEventPublisher
	log       zerolog.Logger
	clock     func() time.Time
}

var _ ILifecycleUseCase = (*LifecycleUseCase)(nil)

func NewLifecycleUseCase(
	requests interfaces.IServiceRequestRepository,
	stats interfaces.ITechnicianStatsRepository,
	uow interfaces.IUnitOfWork,
	payments IPaymentUseCase,
	publisher interfaces.IEventPublisher,
	logger zerolog.Logger,
) *LifecycleUseCase {
	return &LifecycleUseCase{
		requests:  requests,
		stats:     stats,
		uow:       uow,
		payments:  payments,
		publisher: publisher,
		log:       logger.With().Str("component", "lifecycle").Logger(),
		clock:     time.Now,
	}
}

func (u *LifecycleUseCase) CreateRequest(ctx context.Context, actor entities.Actor, in CreateRequestInput) (entities.ServiceRequest, error) {
	if !actor.IsCustomer() {
		return entities.ServiceRequest{}, ErrCustomerOnly
	}

	r, created, err := entities.NewServiceRequest(uuid.NewString(), actor.ID, in.Item, u.clock())
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	r.CouponCode = strings.TrimSpace(in.CouponCode)
	r.PaymentMethodID = strings.TrimSpace(in.PaymentMethodID)

	if err := u.uow.Commit(ctx, interfaces.ChangeSet{Request: &r, Events: []entities.LifecycleEvent{created}}); err != nil {
		u.log.Error().Err(err).Str("customer_id", actor.ID).Msg("[lifecycle][usecase] create request failed")
		return entities.ServiceRequest{}, err
	}
	r.Version++

	u.log.Info().Str("request_id", r.ID).Str("customer_id", r.CustomerID).Msg("[lifecycle][usecase] request created")
	u.publish(ctx, created)
	return r, nil
}

func (u *LifecycleUseCase) GetByID(ctx context.Context, actor entities.Actor, id string) (entities.ServiceRequest, error) {
	r, err := u.load(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if !visibleTo(r, actor) {
		return entities.ServiceRequest{}, ErrRequestNotVisible
	}
	return r, nil
}

// visibleTo lets technicians browse unclaimed pending requests so they can
// offer an estimate.
func visibleTo(r entities.ServiceRequest, actor entities.Actor) bool {
	switch actor.Role {
	case entities.RoleAdmin:
		return true
	case entities.RoleCustomer:
		return r.CustomerID == actor.ID
	case entities.RoleTechnician:
		return r.TechnicianID == actor.ID || (r.TechnicianID == "" && r.State == entities.StatePending)
	}
	return false
}

func (u *LifecycleUseCase) ListByCustomer(ctx context.Context, actor entities.Actor) ([]entities.ServiceRequest, error) {
	if !actor.IsCustomer() {
		return nil, ErrCustomerOnly
	}
	return u.requests.ListByCustomerID(ctx, actor.ID)
}

func (u *LifecycleUseCase) UpdateItem(ctx context.Context, actor entities.Actor, id string, item entities.Item) (entities.ServiceRequest, error) {
	r, err := u.load(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if err := r.UpdateItem(actor.ID, item, u.clock()); err != nil {
		return entities.ServiceRequest{}, err
	}
	if err := u.uow.Commit(ctx, interfaces.ChangeSet{Request: &r}); err != nil {
		u.log.Warn().Err(err).Str("request_id", r.ID).Msg("[lifecycle][usecase] update item failed")
		return entities.ServiceRequest{}, err
	}
	r.Version++
	return r, nil
}

func (u *LifecycleUseCase) DeleteRequest(ctx context.Context, actor entities.Actor, id string) error {
	r, err := u.load(ctx, id)
	if err != nil {
		return err
	}
	if err := r.EnsureEditableBy(actor.ID); err != nil {
		return err
	}
	if err := u.requests.Delete(ctx, r.ID, r.Version); err != nil {
		u.log.Warn().Err(err).Str("request_id", r.ID).Msg("[lifecycle][usecase] delete failed")
		return err
	}
	u.log.Info().Str("request_id", r.ID).Msg("[lifecycle][usecase] request deleted")
	return nil
}

func (u *LifecycleUseCase) ProvideEstimate(ctx context.Context, actor entities.Actor, id string, in EstimateInput) (entities.ServiceRequest, error) {
	if !actor.IsTechnician() {
		return entities.ServiceRequest{}, ErrTechnicianOnly
	}
	now := u.clock()
	estimate, err := entities.NewEstimate(in.Cost, in.CompletionDate, in.Notes, now)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	return u.run(ctx, entities.OpProvideEstimate, id, func(r *entities.ServiceRequest, now time.Time) (entities.Outcome, error) {
		return r.ProvideEstimate(estimate, actor.ID, now)
	})
}

// AcceptEstimate captures the payment: the estimate cost moves from the
// customer's wallet to the technician's wallet in the same commit that
// accepts the estimate.
func (u *LifecycleUseCase) AcceptEstimate(ctx context.Context, actor entities.Actor, id string) (entities.ServiceRequest, error) {
	if u.payments == nil {
		return entities.ServiceRequest{}, errors.New("payment coordinator not configured")
	}
	res, err := u.payments.AcceptAndPay(ctx, actor, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	return res.Request, nil
}

func (u *LifecycleUseCase) RejectEstimate(ctx context.Context, actor entities.Actor, id string) (entities.ServiceRequest, error) {
	if !actor.IsCustomer() {
		return entities.ServiceRequest{}, ErrCustomerOnly
	}
	return u.run(ctx, entities.OpRejectEstimate, id, func(r *entities.ServiceRequest, now time.Time) (entities.Outcome, error) {
		return r.RejectEstimate(actor.ID, now)
	})
}

func (u *LifecycleUseCase) StartService(ctx context.Context, actor entities.Actor, id string) (entities.ServiceRequest, error) {
	if !actor.IsTechnician() {
		return entities.ServiceRequest{}, ErrTechnicianOnly
	}
	return u.run(ctx, entities.OpStartService, id, func(r *entities.ServiceRequest, now time.Time) (entities.Outcome, error) {
		return r.StartService(actor.ID, now)
	})
}

func (u *LifecycleUseCase) CompleteService(ctx context.Context, actor entities.Actor, id string) (entities.ServiceRequest, error) {
	if !actor.IsTechnician() {
		return entities.ServiceRequest{}, ErrTechnicianOnly
	}
	return u.run(ctx, entities.OpCompleteService, id, func(r *entities.ServiceRequest, now time.Time) (entities.Outcome, error) {
		return r.CompleteService(actor.ID, now)
	})
}

func (u *LifecycleUseCase) CreateReport(ctx context.Context, actor entities.Actor, id string, in ReportInput) (entities.ServiceRequest, error) {
	if !actor.IsTechnician() {
		return entities.ServiceRequest{}, ErrTechnicianOnly
	}
	report, err := entities.NewReport(in.RepairDetails, in.RepairSummary, in.CompletionDateTime, u.clock())
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	return u.run(ctx, entities.OpCreateReport, id, func(r *entities.ServiceRequest, now time.Time) (entities.Outcome, error) {
		return r.CreateReport(report, actor.ID, now)
	})
}

// run is the single seam of every lifecycle transition: load, transition,
// collect effects, verify invariants, commit, publish.
func (u *LifecycleUseCase) run(
	ctx context.Context,
	op entities.Operation,
	id string,
	transition func(r *entities.ServiceRequest, now time.Time) (entities.Outcome, error),
) (entities.ServiceRequest, error) {
	r, err := u.load(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	now := u.clock()
	out, err := transition(&r, now)
	if err != nil {
		u.log.Warn().Err(err).Str("request_id", r.ID).Str("op", string(op)).Str("state", string(r.State)).Msg("[lifecycle][usecase] transition rejected")
		return entities.ServiceRequest{}, err
	}

	cs := interfaces.ChangeSet{Request: &r, Events: []entities.LifecycleEvent{out.Event}}
	for _, eff := range out.Effects {
		if eff.Kind != entities.EffectCreditTechnician {
			continue
		}
		stats, err := u.stats.GetByTechnicianID(ctx, r.TechnicianID)
		if err != nil {
			return entities.ServiceRequest{}, err
		}
		if stats.TechnicianID == "" {
			stats = entities.NewTechnicianStats(r.TechnicianID)
		}
		stats.RecordCompletion(eff.Amount, now)
		cs.Stats = &stats
	}

	if err := r.CheckInvariants(); err != nil {
		u.log.Error().Err(err).Str("request_id", r.ID).Str("op", string(op)).Msg("[lifecycle][usecase] invariant violated")
		return entities.ServiceRequest{}, err
	}

	if err := u.uow.Commit(ctx, cs); err != nil {
		u.log.Warn().Err(err).Str("request_id", r.ID).Str("op", string(op)).Msg("[lifecycle][usecase] commit failed")
		return entities.ServiceRequest{}, err
	}
	r.Version++

	u.log.Info().Str("request_id", r.ID).Str("op", string(op)).Str("state", string(r.State)).Msg("[lifecycle][usecase] transition committed")
	u.publish(ctx, out.Event)
	return r, nil
}

func (u *LifecycleUseCase) load(ctx context.Context, id string) (entities.ServiceRequest, error) {
	return loadRequest(ctx, u.requests, id)
}

func (u *LifecycleUseCase) publish(ctx context.Context, ev entities.LifecycleEvent) {
	publishEvent(ctx, u.publisher, u.log, ev)
}

func loadRequest(ctx context.Context, repo interfaces.IServiceRequestRepository, id string) (entities.ServiceRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceRequest{}, ErrInvalidRequestID
	}
	r, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if r.ID == "" {
		return entities.ServiceRequest{}, ErrServiceRequestNotFound
	}
	return r, nil
}

// publishEvent never fails the caller: the change is already committed and
// delivery belongs to the observers.
func publishEvent(ctx context.Context, p interfaces.IEventPublisher, log zerolog.Logger, ev entities.LifecycleEvent) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, ev); err != nil {
		log.Warn().Err(err).Str("event_id", ev.ID).Str("kind", string(ev.Kind)).Msg("[lifecycle][usecase] event publish failed")
	}
}
