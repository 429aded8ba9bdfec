package repository

import (
	"errors"
	"fmt"
	"repairhub/internal/domain/entities"
	"time"

	"github.com/shopspring/decimal"
)

// ErrCorruptItem is returned when a stored attribute cannot be decoded.
// The item is never loaded with a zero value in its place.
var ErrCorruptItem = errors.New("corrupt stored item")

// estimateItem and the other items store money as decimal strings so no
// precision is lost.
type estimateItem struct {
	Cost           string `dynamodbav:"cost"`
	CompletionDate string `dynamodbav:"completion_date"`
	Notes          string `dynamodbav:"notes,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
}

type reportItem struct {
	RepairDetails      string `dynamodbav:"repair_details"`
	RepairSummary      string `dynamodbav:"repair_summary"`
	CompletionDateTime string `dynamodbav:"completion_date_time"`
	CreatedAt          string `dynamodbav:"created_at"`
}

type serviceRequestItem struct {
	ID              string        `dynamodbav:"id"`
	CustomerID      string        `dynamodbav:"customer_id"`
	TechnicianID    string        `dynamodbav:"technician_id,omitempty"`
	ItemName        string        `dynamodbav:"item_name"`
	ItemCondition   string        `dynamodbav:"item_condition,omitempty"`
	ItemIssue       string        `dynamodbav:"item_issue,omitempty"`
	Estimate        *estimateItem `dynamodbav:"estimate,omitempty"`
	Report          *reportItem   `dynamodbav:"report,omitempty"`
	State           string        `dynamodbav:"state"`
	CouponCode      string        `dynamodbav:"coupon_code,omitempty"`
	PaymentMethodID string        `dynamodbav:"payment_method_id,omitempty"`
	Version         int64         `dynamodbav:"version"`
	CreatedAt       string        `dynamodbav:"created_at"`
	UpdatedAt       string        `dynamodbav:"updated_at"`
}

func toServiceRequestItem(r entities.ServiceRequest) serviceRequestItem {
	it := serviceRequestItem{
		ID:              r.ID,
		CustomerID:      r.CustomerID,
		TechnicianID:    r.TechnicianID,
		ItemName:        r.Item.Name,
		ItemCondition:   r.Item.Condition,
		ItemIssue:       r.Item.Issue,
		State:           string(r.State),
		CouponCode:      r.CouponCode,
		PaymentMethodID: r.PaymentMethodID,
		Version:         r.Version,
		CreatedAt:       formatTime(r.CreatedAt),
		UpdatedAt:       formatTime(r.UpdatedAt),
	}
	if e := r.Estimate; e != nil {
		it.Estimate = &estimateItem{
			Cost:           e.Cost.String(),
			CompletionDate: formatTime(e.CompletionDate),
			Notes:          e.Notes,
			CreatedAt:      formatTime(e.CreatedAt),
		}
	}
	if rep := r.Report; rep != nil {
		it.Report = &reportItem{
			RepairDetails:      rep.RepairDetails,
			RepairSummary:      rep.RepairSummary,
			CompletionDateTime: formatTime(rep.CompletionDateTime),
			CreatedAt:          formatTime(rep.CreatedAt),
		}
	}
	return it
}

func fromServiceRequestItem(it serviceRequestItem) (entities.ServiceRequest, error) {
	d := itemDecoder{table: "service_requests", id: it.ID}
	r := entities.ServiceRequest{
		ID:           it.ID,
		CustomerID:   it.CustomerID,
		TechnicianID: it.TechnicianID,
		Item: entities.Item{
			Name:      it.ItemName,
			Condition: it.ItemCondition,
			Issue:     it.ItemIssue,
		},
		State:           entities.RequestState(it.State),
		CouponCode:      it.CouponCode,
		PaymentMethodID: it.PaymentMethodID,
		Version:         it.Version,
		CreatedAt:       d.instant("created_at", it.CreatedAt),
		UpdatedAt:       d.instant("updated_at", it.UpdatedAt),
	}
	if e := it.Estimate; e != nil {
		r.Estimate = &entities.Estimate{
			Cost:           d.money("estimate.cost", e.Cost),
			CompletionDate: d.instant("estimate.completion_date", e.CompletionDate),
			Notes:          e.Notes,
			CreatedAt:      d.instant("estimate.created_at", e.CreatedAt),
		}
	}
	if rep := it.Report; rep != nil {
		r.Report = &entities.Report{
			RepairDetails:      rep.RepairDetails,
			RepairSummary:      rep.RepairSummary,
			CompletionDateTime: d.instant("report.completion_date_time", rep.CompletionDateTime),
			CreatedAt:          d.instant("report.created_at", rep.CreatedAt),
		}
	}
	if d.err != nil {
		return entities.ServiceRequest{}, d.err
	}
	return r, nil
}

type walletItem struct {
	ID        string `dynamodbav:"id"`
	OwnerID   string `dynamodbav:"owner_id"`
	OwnerRole string `dynamodbav:"owner_role"`
	Balance   string `dynamodbav:"balance"`
	Version   int64  `dynamodbav:"version"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ownerGuardItem shares the wallets table; its key is owner#<owner_id>.
type ownerGuardItem struct {
	ID       string `dynamodbav:"id"`
	WalletID string `dynamodbav:"wallet_id"`
}

func ownerGuardKey(ownerID string) string {
	return "owner#" + ownerID
}

func toWalletItem(w entities.Wallet) walletItem {
	return walletItem{
		ID:        w.ID,
		OwnerID:   w.OwnerID,
		OwnerRole: string(w.OwnerRole),
		Balance:   w.Balance.String(),
		Version:   w.Version,
		CreatedAt: formatTime(w.CreatedAt),
		UpdatedAt: formatTime(w.UpdatedAt),
	}
}

func fromWalletItem(it walletItem) (entities.Wallet, error) {
	d := itemDecoder{table: "wallets", id: it.ID}
	w := entities.Wallet{
		ID:        it.ID,
		OwnerID:   it.OwnerID,
		OwnerRole: entities.Role(it.OwnerRole),
		Balance:   d.money("balance", it.Balance),
		Version:   it.Version,
		CreatedAt: d.instant("created_at", it.CreatedAt),
		UpdatedAt: d.instant("updated_at", it.UpdatedAt),
	}
	if d.err != nil {
		return entities.Wallet{}, d.err
	}
	return w, nil
}

type transactionItem struct {
	ID               string `dynamodbav:"id"`
	WalletID         string `dynamodbav:"wallet_id"`
	Amount           string `dynamodbav:"amount"`
	Kind             string `dynamodbav:"kind"`
	Timestamp        string `dynamodbav:"timestamp"`
	Description      string `dynamodbav:"description,omitempty"`
	RelatedWalletID  string `dynamodbav:"related_wallet_id,omitempty"`
	ServiceRequestID string `dynamodbav:"service_request_id,omitempty"`
}

func toTransactionItem(t entities.Transaction) transactionItem {
	return transactionItem{
		ID:               t.ID,
		WalletID:         t.WalletID,
		Amount:           t.Amount.String(),
		Kind:             string(t.Kind),
		Timestamp:        formatTime(t.Timestamp),
		Description:      t.Description,
		RelatedWalletID:  t.RelatedWalletID,
		ServiceRequestID: t.ServiceRequestID,
	}
}

func fromTransactionItem(it transactionItem) (entities.Transaction, error) {
	d := itemDecoder{table: "wallet_transactions", id: it.ID}
	t := entities.Transaction{
		ID:               it.ID,
		WalletID:         it.WalletID,
		Amount:           d.money("amount", it.Amount),
		Kind:             entities.TransactionKind(it.Kind),
		Timestamp:        d.instant("timestamp", it.Timestamp),
		Description:      it.Description,
		RelatedWalletID:  it.RelatedWalletID,
		ServiceRequestID: it.ServiceRequestID,
	}
	if d.err != nil {
		return entities.Transaction{}, d.err
	}
	return t, nil
}

type technicianStatsItem struct {
	TechnicianID  string `dynamodbav:"technician_id"`
	CompletedJobs int64  `dynamodbav:"completed_jobs"`
	TotalEarnings string `dynamodbav:"total_earnings"`
	Version       int64  `dynamodbav:"version"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

func toTechnicianStatsItem(s entities.TechnicianStats) technicianStatsItem {
	return technicianStatsItem{
		TechnicianID:  s.TechnicianID,
		CompletedJobs: s.CompletedJobs,
		TotalEarnings: s.TotalEarnings.String(),
		Version:       s.Version,
		UpdatedAt:     formatTime(s.UpdatedAt),
	}
}

func fromTechnicianStatsItem(it technicianStatsItem) (entities.TechnicianStats, error) {
	d := itemDecoder{table: "technician_stats", id: it.TechnicianID}
	st := entities.TechnicianStats{
		TechnicianID:  it.TechnicianID,
		CompletedJobs: it.CompletedJobs,
		TotalEarnings: d.money("total_earnings", it.TotalEarnings),
		Version:       it.Version,
		UpdatedAt:     d.instant("updated_at", it.UpdatedAt),
	}
	if d.err != nil {
		return entities.TechnicianStats{}, d.err
	}
	return st, nil
}

type lifecycleEventItem struct {
	ID           string `dynamodbav:"id"`
	Kind         string `dynamodbav:"kind"`
	RequestID    string `dynamodbav:"request_id"`
	CustomerID   string `dynamodbav:"customer_id"`
	TechnicianID string `dynamodbav:"technician_id,omitempty"`
	State        string `dynamodbav:"state"`
	Amount       string `dynamodbav:"amount"`
	OccurredAt   string `dynamodbav:"occurred_at"`
}

func toLifecycleEventItem(ev entities.LifecycleEvent) lifecycleEventItem {
	return lifecycleEventItem{
		ID:           ev.ID,
		Kind:         string(ev.Kind),
		RequestID:    ev.RequestID,
		CustomerID:   ev.CustomerID,
		TechnicianID: ev.TechnicianID,
		State:        string(ev.State),
		Amount:       ev.Amount.String(),
		OccurredAt:   formatTime(ev.OccurredAt),
	}
}

// itemDecoder keeps the first attribute that failed to decode.
type itemDecoder struct {
	table string
	id    string
	err   error
}

func (d *itemDecoder) fail(field, v string, err error) {
	if d.err == nil {
		d.err = fmt.Errorf("%w: %s %q attribute %s=%q: %v", ErrCorruptItem, d.table, d.id, field, v, err)
	}
}

// money requires a value; every writer stores at least "0".
func (d *itemDecoder) money(field, v string) decimal.Decimal {
	if v == "" {
		d.fail(field, v, errors.New("missing amount"))
		return decimal.Zero
	}
	n, err := decimal.NewFromString(v)
	if err != nil {
		d.fail(field, v, err)
		return decimal.Zero
	}
	return n
}

func (d *itemDecoder) instant(field, v string) time.Time {
	t, err := parseTime(v)
	if err != nil {
		d.fail(field, v, err)
	}
	return t
}
