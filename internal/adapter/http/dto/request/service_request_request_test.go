package request

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestEstimateRequest_ToInput(t *testing.T) {
	in, err := EstimateRequest{Cost: decimal.RequireFromString("10.5"), CompletionDate: " 2026-12-01 ", Notes: "n"}.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !in.CompletionDate.Equal(time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)) || !in.Cost.Equal(decimal.RequireFromString("10.5")) {
		t.Fatalf("unexpected input: %+v", in)
	}

	in, err = EstimateRequest{CompletionDate: "2026-12-01T15:04:05-03:00"}.ToInput()
	if err != nil || in.CompletionDate.IsZero() {
		t.Fatalf("expected RFC3339 date to parse, got %+v %v", in, err)
	}

	if _, err := (EstimateRequest{CompletionDate: "next week"}).ToInput(); !errors.Is(err, ErrInvalidCompletionDate) {
		t.Fatalf("expected ErrInvalidCompletionDate, got %v", err)
	}
}

func TestReportRequest_ToInput(t *testing.T) {
	if _, err := (ReportRequest{RepairDetails: "d", RepairSummary: "s"}).ToInput(); !errors.Is(err, ErrMissingCompletionTime) {
		t.Fatalf("expected ErrMissingCompletionTime, got %v", err)
	}
	now := time.Now()
	in, err := ReportRequest{RepairDetails: "d", RepairSummary: "s", CompletionDateTime: now}.ToInput()
	if err != nil || !in.CompletionDateTime.Equal(now) {
		t.Fatalf("unexpected input: %+v %v", in, err)
	}
}

func TestCreateServiceRequestRequest_ToInput(t *testing.T) {
	in := CreateServiceRequestRequest{Item: ItemRequest{Name: "Laptop", Issue: "hinge"}, CouponCode: "C1"}.ToInput()
	if in.Item.Name != "Laptop" || in.Item.Issue != "hinge" || in.CouponCode != "C1" {
		t.Fatalf("unexpected input: %+v", in)
	}
}
