package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RequestState is the lifecycle state of a ServiceRequest.
type RequestState string

const (
	StatePending    RequestState = "PENDING"
	StateEstimated  RequestState = "ESTIMATED"
	StateAccepted   RequestState = "ACCEPTED"
	StateInProgress RequestState = "IN_PROGRESS"
	StateCompleted  RequestState = "COMPLETED"
	StateRejected   RequestState = "REJECTED"
)

var RequestStates = []RequestState{
	StatePending,
	StateEstimated,
	StateAccepted,
	StateInProgress,
	StateCompleted,
	StateRejected,
}

func ParseRequestState(v string) (RequestState, error) {
	s := RequestState(strings.ToUpper(strings.TrimSpace(v)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: unknown request state %q", ErrInvalidData, v)
	}
	return s, nil
}

func (s RequestState) Valid() bool {
	for _, known := range RequestStates {
		if s == known {
			return true
		}
	}
	return false
}

// Terminal reports whether no further lifecycle transition can leave s.
func (s RequestState) Terminal() bool {
	return s == StateCompleted || s == StateRejected
}

// Editable reports whether the owning customer may still change or delete
// the request.
func (s RequestState) Editable() bool {
	return s == StatePending || s == StateRejected
}

// RequiresEstimate reports whether a request in s must carry an estimate.
func (s RequestState) RequiresEstimate() bool {
	switch s {
	case StateEstimated, StateAccepted, StateInProgress, StateCompleted:
		return true
	}
	return false
}

// RequiresTechnician reports whether a request in s must have an assigned
// technician.
func (s RequestState) RequiresTechnician() bool {
	switch s {
	case StateAccepted, StateInProgress, StateCompleted:
		return true
	}
	return false
}

// Operation is one of the six lifecycle operations.
type Operation string

const (
	OpProvideEstimate Operation = "provide_estimate"
	OpAcceptEstimate  Operation = "accept_estimate"
	OpRejectEstimate  Operation = "reject_estimate"
	OpStartService    Operation = "start_service"
	OpCompleteService Operation = "complete_service"
	OpCreateReport    Operation = "create_report"
)

var Operations = []Operation{
	OpProvideEstimate,
	OpAcceptEstimate,
	OpRejectEstimate,
	OpStartService,
	OpCompleteService,
	OpCreateReport,
}

// EffectKind names a side effect produced by a successful transition.
type EffectKind string

const (
	EffectAttachEstimate   EffectKind = "attach_estimate"
	EffectAttachReport     EffectKind = "attach_report"
	EffectCreditTechnician EffectKind = "credit_technician"
)

// Effect is applied by the caller of Transition. Amount is only set for
// EffectCreditTechnician.
type Effect struct {
	Kind   EffectKind
	Amount decimal.Decimal
}

// TransitionInput is everything Transition needs to know about the request
// besides its state.
type TransitionInput struct {
	// Proposed is the estimate offered by provide_estimate.
	Proposed *Estimate
	// Current is the estimate already attached to the request.
	Current *Estimate
	// Report is the report offered by create_report.
	Report             *Report
	ReportAttached     bool
	TechnicianAssigned bool
}

type TransitionResult struct {
	From    RequestState
	To      RequestState
	Effects []Effect
}

// Transition computes the outcome of applying op to a request in state. It
// performs no I/O and mutates nothing; the returned effects must be applied
// by the caller.
func Transition(state RequestState, op Operation, in TransitionInput) (TransitionResult, error) {
	illegal := func(reason string) (TransitionResult, error) {
		return TransitionResult{}, &TransitionError{State: state, Operation: op, Reason: reason}
	}
	to := func(next RequestState, effects ...Effect) (TransitionResult, error) {
		return TransitionResult{From: state, To: next, Effects: effects}, nil
	}

	if !state.Valid() {
		return illegal("unknown state")
	}

	switch op {
	case OpProvideEstimate:
		if state != StatePending && state != StateEstimated {
			return illegal("estimates can only be provided while pending or estimated")
		}
		if in.Proposed == nil || !in.Proposed.Valid() {
			return TransitionResult{}, ErrInvalidEstimate
		}
		return to(StateEstimated, Effect{Kind: EffectAttachEstimate})

	case OpAcceptEstimate, OpRejectEstimate:
		if state != StateEstimated {
			return illegal("only an estimated request can be accepted or rejected")
		}
		if in.Current == nil {
			return illegal("no estimate attached")
		}
		if op == OpAcceptEstimate {
			return to(StateAccepted)
		}
		return to(StateRejected)

	case OpStartService:
		if state != StateAccepted {
			return illegal("service can only start after the estimate is accepted")
		}
		if !in.TechnicianAssigned {
			return illegal("no technician assigned")
		}
		return to(StateInProgress)

	case OpCompleteService:
		if state != StateInProgress {
			return illegal("only a service in progress can be completed")
		}
		if !in.TechnicianAssigned {
			return illegal("no technician assigned")
		}
		if in.Current == nil {
			return illegal("no estimate attached")
		}
		return to(StateCompleted, Effect{Kind: EffectCreditTechnician, Amount: in.Current.Cost})

	case OpCreateReport:
		if state != StateCompleted {
			return illegal("reports can only be attached to completed requests")
		}
		if in.ReportAttached {
			return illegal("report already attached")
		}
		if in.Report == nil || !in.Report.Valid() {
			return TransitionResult{}, ErrInvalidReport
		}
		return to(StateCompleted, Effect{Kind: EffectAttachReport})
	}

	return illegal("unknown operation")
}

// AllowedOperations lists the operations whose state precondition holds in
// s. Data preconditions (valid estimate, assigned technician) are not
// considered.
func AllowedOperations(s RequestState) []Operation {
	switch s {
	case StatePending:
		return []Operation{OpProvideEstimate}
	case StateEstimated:
		return []Operation{OpProvideEstimate, OpAcceptEstimate, OpRejectEstimate}
	case StateAccepted:
		return []Operation{OpStartService}
	case StateInProgress:
		return []Operation{OpCompleteService}
	case StateCompleted:
		return []Operation{OpCreateReport}
	}
	return nil
}
