package request

import (
	"errors"
	"repairhub/internal/domain/entities"
	"repairhub/internal/usecase"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCompletionDate = errors.New("completion_date must be YYYY-MM-DD or RFC3339")
	ErrMissingCompletionTime = errors.New("completion_date_time is required")
)

type ItemRequest struct {
	Name      string `json:"name" binding:"required"`
	Condition string `json:"condition"`
	Issue     string `json:"issue"`
}

func (r ItemRequest) ToItem() entities.Item {
	return entities.Item{Name: r.Name, Condition: r.Condition, Issue: r.Issue}
}

type CreateServiceRequestRequest struct {
	Item            ItemRequest `json:"item" binding:"required"`
	CouponCode      string      `json:"coupon_code"`
	PaymentMethodID string      `json:"payment_method_id"`
}

func (r CreateServiceRequestRequest) ToInput() usecase.CreateRequestInput {
	return usecase.CreateRequestInput{
		Item:            r.Item.ToItem(),
		CouponCode:      r.CouponCode,
		PaymentMethodID: r.PaymentMethodID,
	}
}

// EstimateRequest is the technician's offer. cost accepts a JSON number or
// a decimal string.
type EstimateRequest struct {
	Cost           decimal.Decimal `json:"cost"`
	CompletionDate string          `json:"completion_date" binding:"required"`
	Notes          string          `json:"notes"`
}

func (r EstimateRequest) ToInput() (usecase.EstimateInput, error) {
	date, err := parseDate(r.CompletionDate)
	if err != nil {
		return usecase.EstimateInput{}, err
	}
	return usecase.EstimateInput{Cost: r.Cost, CompletionDate: date, Notes: r.Notes}, nil
}

type ReportRequest struct {
	RepairDetails      string    `json:"repair_details" binding:"required"`
	RepairSummary      string    `json:"repair_summary" binding:"required"`
	CompletionDateTime time.Time `json:"completion_date_time"`
}

func (r ReportRequest) ToInput() (usecase.ReportInput, error) {
	if r.CompletionDateTime.IsZero() {
		return usecase.ReportInput{}, ErrMissingCompletionTime
	}
	return usecase.ReportInput{
		RepairDetails:      r.RepairDetails,
		RepairSummary:      r.RepairSummary,
		CompletionDateTime: r.CompletionDateTime,
	}, nil
}

func parseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if d, err := time.Parse(time.DateOnly, v); err == nil {
		return d, nil
	}
	if d, err := time.Parse(time.RFC3339, v); err == nil {
		return d, nil
	}
	return time.Time{}, ErrInvalidCompletionDate
}
