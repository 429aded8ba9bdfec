package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Estimate is the technician-proposed cost and completion date for a repair.
//
// It is a value object: once attached to a request that left the ESTIMATED
// state it is never replaced.
type Estimate struct {
	Cost           decimal.Decimal `json:"cost"`
	CompletionDate time.Time       `json:"completion_date"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// NewEstimate builds an Estimate, rejecting non-positive costs and completion
// dates earlier than the calendar day of now.
func NewEstimate(cost decimal.Decimal, completionDate time.Time, notes string, now time.Time) (Estimate, error) {
	e := Estimate{
		Cost:           cost,
		CompletionDate: completionDate.UTC(),
		Notes:          strings.TrimSpace(notes),
		CreatedAt:      now.UTC(),
	}
	if !e.Valid() {
		return Estimate{}, ErrInvalidEstimate
	}
	if startOfDay(e.CompletionDate).Before(startOfDay(now.UTC())) {
		return Estimate{}, ErrInvalidEstimate
	}
	return e, nil
}

// Valid reports whether the estimate has a positive cost and a completion date.
func (e Estimate) Valid() bool {
	return e.Cost.IsPositive() && !e.CompletionDate.IsZero()
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
