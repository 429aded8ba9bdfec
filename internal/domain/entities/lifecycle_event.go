package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EventKind string

const (
	EventRequestCreated   EventKind = "request.created"
	EventEstimateProvided EventKind = "estimate.provided"
	EventEstimateAccepted EventKind = "estimate.accepted"
	EventEstimateRejected EventKind = "estimate.rejected"
	EventServiceStarted   EventKind = "service.started"
	EventServiceCompleted EventKind = "service.completed"
	EventReportCreated    EventKind = "report.created"
)

// LifecycleEvent is emitted once per successful lifecycle operation. It is
// passed by value to observers; delivery is not the domain's concern.
type LifecycleEvent struct {
	ID           string          `json:"id"`
	Kind         EventKind       `json:"kind"`
	RequestID    string          `json:"request_id"`
	CustomerID   string          `json:"customer_id"`
	TechnicianID string          `json:"technician_id,omitempty"`
	State        RequestState    `json:"state"`
	Amount       decimal.Decimal `json:"amount"`
	OccurredAt   time.Time       `json:"occurred_at"`
}

func newLifecycleEvent(kind EventKind, r ServiceRequest, amount decimal.Decimal, at time.Time) LifecycleEvent {
	return LifecycleEvent{
		ID:           uuid.NewString(),
		Kind:         kind,
		RequestID:    r.ID,
		CustomerID:   r.CustomerID,
		TechnicianID: r.TechnicianID,
		State:        r.State,
		Amount:       amount,
		OccurredAt:   at.UTC(),
	}
}

var operationEvents = map[Operation]EventKind{
	OpProvideEstimate: EventEstimateProvided,
	OpAcceptEstimate:  EventEstimateAccepted,
	OpRejectEstimate:  EventEstimateRejected,
	OpStartService:    EventServiceStarted,
	OpCompleteService: EventServiceCompleted,
	OpCreateReport:    EventReportCreated,
}
