package response

import (
	"repairhub/internal/domain/entities"
	"time"

	"github.com/shopspring/decimal"
)

type EstimateResponse struct {
	Cost           decimal.Decimal `json:"cost"`
	CompletionDate string          `json:"completion_date"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

type ReportResponse struct {
	RepairDetails      string    `json:"repair_details"`
	RepairSummary      string    `json:"repair_summary"`
	CompletionDateTime time.Time `json:"completion_date_time"`
	CreatedAt          time.Time `json:"created_at"`
}

type ItemResponse struct {
	Name      string `json:"name"`
	Condition string `json:"condition,omitempty"`
	Issue     string `json:"issue,omitempty"`
}

type ServiceRequestResponse struct {
	ID                string            `json:"id"`
	CustomerID        string            `json:"customer_id"`
	TechnicianID      string            `json:"technician_id,omitempty"`
	Item              ItemResponse      `json:"item"`
	State             string            `json:"state"`
	Estimate          *EstimateResponse `json:"estimate,omitempty"`
	Report            *ReportResponse   `json:"report,omitempty"`
	CouponCode        string            `json:"coupon_code,omitempty"`
	PaymentMethodID   string            `json:"payment_method_id,omitempty"`
	AllowedOperations []string          `json:"allowed_operations"`
	Version           int64             `json:"version"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

func FromServiceRequest(r entities.ServiceRequest) ServiceRequestResponse {
	res := ServiceRequestResponse{
		ID:           r.ID,
		CustomerID:   r.CustomerID,
		TechnicianID: r.TechnicianID,
		Item: ItemResponse{
			Name:      r.Item.Name,
			Condition: r.Item.Condition,
			Issue:     r.Item.Issue,
		},
		State:             string(r.State),
		CouponCode:        r.CouponCode,
		PaymentMethodID:   r.PaymentMethodID,
		AllowedOperations: make([]string, 0),
		Version:           r.Version,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
	for _, op := range entities.AllowedOperations(r.State) {
		res.AllowedOperations = append(res.AllowedOperations, string(op))
	}
	if e := r.Estimate; e != nil {
		res.Estimate = &EstimateResponse{
			Cost:           e.Cost,
			CompletionDate: e.CompletionDate.Format(time.DateOnly),
			Notes:          e.Notes,
			CreatedAt:      e.CreatedAt,
		}
	}
	if rep := r.Report; rep != nil {
		res.Report = &ReportResponse{
			RepairDetails:      rep.RepairDetails,
			RepairSummary:      rep.RepairSummary,
			CompletionDateTime: rep.CompletionDateTime,
			CreatedAt:          rep.CreatedAt,
		}
	}
	return res
}

func FromServiceRequests(rs []entities.ServiceRequest) []ServiceRequestResponse {
	out := make([]ServiceRequestResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromServiceRequest(r))
	}
	return out
}
