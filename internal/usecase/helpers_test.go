package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"repairhub/internal/adapter/persistence/memory"
	"repairhub/internal/domain/entities"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var (
	customer   = entities.Actor{ID: "cust-1", Role: entities.RoleCustomer}
	technician = entities.Actor{ID: "tech-1", Role: entities.RoleTechnician}
	admin      = entities.Actor{ID: "admin-1", Role: entities.RoleAdmin}
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []entities.LifecycleEvent
}

func (p *recordingPublisher) Publish(_ context.Context, ev entities.LifecycleEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

func (p *recordingPublisher) kinds() []entities.EventKind {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]entities.EventKind, 0, len(p.events))
	for _, ev := range p.events {
		out = append(out, ev.Kind)
	}
	return out
}

type world struct {
	store     *memory.Store
	lifecycle *LifecycleUseCase
	payments  *PaymentUseCase
	wallets   *WalletUseCase
	published *recordingPublisher
}

func newWorld(t *testing.T) *world {
	t.Helper()
	store := memory.NewStore()
	pub := &recordingPublisher{}
	log := zerolog.Nop()
	payments := NewPaymentUseCase(store.ServiceRequests(), store.Wallets(), store, pub, log)
	return &world{
		store:     store,
		lifecycle: NewLifecycleUseCase(store.ServiceRequests(), store.TechnicianStats(), store, payments, pub, log),
		payments:  payments,
		wallets:   NewWalletUseCase(store.Wallets(), store, nil, log),
		published: pub,
	}
}

func (w *world) walletWith(t *testing.T, owner entities.Actor, balance string) entities.Wallet {
	t.Helper()
	ctx := context.Background()
	wallet, err := w.wallets.CreateWallet(ctx, owner)
	if err != nil {
		t.Fatalf("create wallet: %v", err)
	}
	amount := decimal.RequireFromString(balance)
	if amount.IsPositive() {
		res, err := w.wallets.Deposit(ctx, wallet.ID, amount, "seed")
		if err != nil {
			t.Fatalf("seed deposit: %v", err)
		}
		wallet = res.Wallet
	}
	return wallet
}

func (w *world) estimatedRequest(t *testing.T, cost string) entities.ServiceRequest {
	t.Helper()
	ctx := context.Background()
	r, err := w.lifecycle.CreateRequest(ctx, customer, CreateRequestInput{Item: entities.Item{Name: "Laptop", Issue: "no power"}})
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	r, err = w.lifecycle.ProvideEstimate(ctx, technician, r.ID, estimateInput(cost))
	if err != nil {
		t.Fatalf("provide estimate: %v", err)
	}
	return r
}

func estimateInput(cost string) EstimateInput {
	return EstimateInput{
		Cost:           decimal.RequireFromString(cost),
		CompletionDate: time.Now().AddDate(0, 0, 2),
		Notes:          "parts included",
	}
}

func balanceOf(t *testing.T, w *world, ownerID string) decimal.Decimal {
	t.Helper()
	wallet, err := w.wallets.GetByOwner(context.Background(), ownerID)
	if err != nil {
		t.Fatalf("wallet of %s: %v", ownerID, err)
	}
	return wallet.Balance
}
