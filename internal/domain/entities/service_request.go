package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Item is the thing being repaired. Its contents are opaque to the lifecycle.
type Item struct {
	Name      string `json:"name"`
	Condition string `json:"condition,omitempty"`
	Issue     string `json:"issue,omitempty"`
}

func (i Item) normalized() Item {
	return Item{
		Name:      strings.TrimSpace(i.Name),
		Condition: strings.TrimSpace(i.Condition),
		Issue:     strings.TrimSpace(i.Issue),
	}
}

// ServiceRequest is the aggregate root of a repair job.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//
// Version is the optimistic lock; a write only succeeds when the stored
// version still equals the one that was loaded.
type ServiceRequest struct {
	ID           string       `json:"id"`
	CustomerID   string       `json:"customer_id"`
	TechnicianID string       `json:"technician_id,omitempty"`
	Item         Item         `json:"item"`
	Estimate     *Estimate    `json:"estimate,omitempty"`
	Report       *Report      `json:"report,omitempty"`
	State        RequestState `json:"state"`

	// Opaque references resolved by other services.
	CouponCode      string `json:"coupon_code,omitempty"`
	PaymentMethodID string `json:"payment_method_id,omitempty"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Outcome is the result of a successful lifecycle operation.
type Outcome struct {
	Event   LifecycleEvent
	Effects []Effect
}

// NewServiceRequest creates a PENDING request owned by customerID.
func NewServiceRequest(id, customerID string, item Item, now time.Time) (ServiceRequest, LifecycleEvent, error) {
	item = item.normalized()
	if item.Name == "" {
		return ServiceRequest{}, LifecycleEvent{}, ErrInvalidItem
	}
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return ServiceRequest{}, LifecycleEvent{}, ErrNotRequestOwner
	}
	now = now.UTC()
	r := ServiceRequest{
		ID:         id,
		CustomerID: customerID,
		Item:       item,
		State:      StatePending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return r, newLifecycleEvent(EventRequestCreated, r, decimal.Zero, now), nil
}

func (r *ServiceRequest) ProvideEstimate(e Estimate, technicianID string, now time.Time) (Outcome, error) {
	if technicianID == "" || (r.TechnicianID != "" && r.TechnicianID != technicianID) {
		return Outcome{}, ErrNotAssignedTech
	}
	// a customer never services their own request
	if technicianID == r.CustomerID {
		return Outcome{}, ErrNotAssignedTech
	}
	res, err := Transition(r.State, OpProvideEstimate, r.input(&e, nil))
	if err != nil {
		return Outcome{}, err
	}
	if r.TechnicianID == "" {
		r.TechnicianID = technicianID
	}
	return r.apply(OpProvideEstimate, res, &e, nil, now), nil
}

func (r *ServiceRequest) AcceptEstimate(customerID string, now time.Time) (Outcome, error) {
	return r.customerTransition(OpAcceptEstimate, customerID, now)
}

func (r *ServiceRequest) RejectEstimate(customerID string, now time.Time) (Outcome, error) {
	return r.customerTransition(OpRejectEstimate, customerID, now)
}

func (r *ServiceRequest) StartService(technicianID string, now time.Time) (Outcome, error) {
	return r.technicianTransition(OpStartService, technicianID, nil, now)
}

// CompleteService moves the request to COMPLETED. The returned outcome
// carries an EffectCreditTechnician for the estimate cost.
func (r *ServiceRequest) CompleteService(technicianID string, now time.Time) (Outcome, error) {
	return r.technicianTransition(OpCompleteService, technicianID, nil, now)
}

// CreateReport attaches the single report of a completed request. The state
// does not change.
func (r *ServiceRequest) CreateReport(rep Report, technicianID string, now time.Time) (Outcome, error) {
	return r.technicianTransition(OpCreateReport, technicianID, &rep, now)
}

// UpdateItem lets the owning customer amend the item while the request is
// still pending or was rejected.
func (r *ServiceRequest) UpdateItem(customerID string, item Item, now time.Time) error {
	if err := r.EnsureEditableBy(customerID); err != nil {
		return err
	}
	item = item.normalized()
	if item.Name == "" {
		return ErrInvalidItem
	}
	r.Item = item
	r.UpdatedAt = now.UTC()
	return nil
}

// EnsureEditableBy checks the customer may update or delete the request.
func (r ServiceRequest) EnsureEditableBy(customerID string) error {
	if customerID != r.CustomerID {
		return ErrNotRequestOwner
	}
	if !r.State.Editable() {
		return ErrRequestNotEditable
	}
	return nil
}

// CheckInvariants verifies the structural rules that must hold at every
// observable point of the lifecycle.
func (r ServiceRequest) CheckInvariants() error {
	if !r.State.Valid() {
		return fmt.Errorf("request %s: unknown state %q", r.ID, r.State)
	}
	if r.State.RequiresEstimate() && r.Estimate == nil {
		return fmt.Errorf("request %s: state %s requires an estimate", r.ID, r.State)
	}
	if r.Report != nil && r.State != StateCompleted {
		return fmt.Errorf("request %s: report attached in state %s", r.ID, r.State)
	}
	if r.State.RequiresTechnician() && r.TechnicianID == "" {
		return fmt.Errorf("request %s: state %s requires a technician", r.ID, r.State)
	}
	if r.TechnicianID != "" && r.TechnicianID == r.CustomerID {
		return fmt.Errorf("request %s: technician is the customer", r.ID)
	}
	return nil
}

func (r *ServiceRequest) customerTransition(op Operation, customerID string, now time.Time) (Outcome, error) {
	if customerID != r.CustomerID {
		return Outcome{}, ErrNotRequestOwner
	}
	res, err := Transition(r.State, op, r.input(nil, nil))
	if err != nil {
		return Outcome{}, err
	}
	return r.apply(op, res, nil, nil, now), nil
}

func (r *ServiceRequest) technicianTransition(op Operation, technicianID string, rep *Report, now time.Time) (Outcome, error) {
	if technicianID == "" || technicianID != r.TechnicianID {
		return Outcome{}, ErrNotAssignedTech
	}
	res, err := Transition(r.State, op, r.input(nil, rep))
	if err != nil {
		return Outcome{}, err
	}
	return r.apply(op, res, nil, rep, now), nil
}

func (r ServiceRequest) input(proposed *Estimate, rep *Report) TransitionInput {
	return TransitionInput{
		Proposed:           proposed,
		Current:            r.Estimate,
		Report:             rep,
		ReportAttached:     r.Report != nil,
		TechnicianAssigned: r.TechnicianID != "",
	}
}

func (r *ServiceRequest) apply(op Operation, res TransitionResult, e *Estimate, rep *Report, now time.Time) Outcome {
	now = now.UTC()
	for _, eff := range res.Effects {
		switch eff.Kind {
		case EffectAttachEstimate:
			est := *e
			r.Estimate = &est
		case EffectAttachReport:
			attached := *rep
			r.Report = &attached
		}
	}
	r.State = res.To
	r.UpdatedAt = now

	amount := decimal.Zero
	if r.Estimate != nil {
		amount = r.Estimate.Cost
	}
	return Outcome{
		Event:   newLifecycleEvent(operationEvents[op], *r, amount, now),
		Effects: res.Effects,
	}
}
