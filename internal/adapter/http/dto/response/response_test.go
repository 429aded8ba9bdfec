package response

import (
	"encoding/json"
	"testing"
	"time"

	"repairhub/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromServiceRequest(t *testing.T) {
	now := time.Now().UTC()
	r := entities.ServiceRequest{
		ID:           "req-1",
		CustomerID:   "cust-1",
		TechnicianID: "tech-1",
		Item:         entities.Item{Name: "Laptop"},
		State:        entities.StateEstimated,
		Estimate:     &entities.Estimate{Cost: decimal.RequireFromString("99.90"), CompletionDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), CreatedAt: now},
		Version:      2,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	res := FromServiceRequest(r)
	if res.State != "ESTIMATED" || res.Estimate == nil || res.Estimate.CompletionDate != "2026-07-01" || res.Report != nil {
		t.Fatalf("unexpected response: %+v", res)
	}
	if len(res.AllowedOperations) == 0 {
		t.Fatalf("expected allowed operations for ESTIMATED")
	}

	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(b, &body)
	if body["estimate"].(map[string]any)["cost"] != "99.9" {
		t.Fatalf("cost should be a decimal string, got %v", body["estimate"])
	}
}

func TestFromTransaction_SignedAmount(t *testing.T) {
	res := FromTransaction(entities.Transaction{ID: "t-1", Amount: decimal.NewFromInt(5), Kind: entities.TransactionPayment})
	if !res.SignedAmount.Equal(decimal.NewFromInt(-5)) || res.Kind != "PAYMENT" {
		t.Fatalf("unexpected response: %+v", res)
	}
	if got := FromTransactions(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}
