// Package memory keeps every aggregate in process memory. It backs
// STORAGE_DRIVER=memory and the usecase tests, and applies the same
// optimistic version rules as the DynamoDB unit of work.
package memory

import (
	"context"
	"fmt"
	"repairhub/internal/domain/entities"
	"repairhub/internal/usecase/interfaces"
	"sort"
	"sync"
)

type Store struct {
	mu           sync.RWMutex
	requests     map[string]entities.ServiceRequest
	wallets      map[string]entities.Wallet
	owners       map[string]string
	transactions map[string]entities.Transaction
	stats        map[string]entities.TechnicianStats
	events       []entities.LifecycleEvent
}

// ServiceRequestRepository, WalletRepository and TechnicianStatsRepository
// are views over one Store.
type (
	ServiceRequestRepository  struct{ s *Store }
	WalletRepository          struct{ s *Store }
	TechnicianStatsRepository struct{ s *Store }
)

var (
	_ interfaces.IServiceRequestRepository  = ServiceRequestRepository{}
	_ interfaces.IWalletRepository          = WalletRepository{}
	_ interfaces.ITechnicianStatsRepository = TechnicianStatsRepository{}
	_ interfaces.IUnitOfWork                = (*Store)(nil)
)

func NewStore() *Store {
	return &Store{
		requests:     make(map[string]entities.ServiceRequest),
		wallets:      make(map[string]entities.Wallet),
		owners:       make(map[string]string),
		transactions: make(map[string]entities.Transaction),
		stats:        make(map[string]entities.TechnicianStats),
	}
}

func (s *Store) ServiceRequests() ServiceRequestRepository { return ServiceRequestRepository{s} }

func (s *Store) Wallets() WalletRepository { return WalletRepository{s} }

func (s *Store) TechnicianStats() TechnicianStatsRepository { return TechnicianStatsRepository{s} }

func (r ServiceRequestRepository) GetByID(_ context.Context, id string) (entities.ServiceRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneRequest(r.s.requests[id]), nil
}

func (r ServiceRequestRepository) ListByCustomerID(_ context.Context, customerID string) ([]entities.ServiceRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.ServiceRequest, 0)
	for _, req := range r.s.requests {
		if req.CustomerID == customerID {
			out = append(out, cloneRequest(req))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r ServiceRequestRepository) Delete(_ context.Context, id string, expectedVersion int64) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.requests[id]
	if !ok {
		return fmt.Errorf("service request %s %w", id, entities.ErrNotFound)
	}
	if cur.Version != expectedVersion {
		return versionConflict("service request", id, expectedVersion, cur.Version)
	}
	delete(s.requests, id)
	return nil
}

func (r WalletRepository) Create(_ context.Context, w entities.Wallet) (entities.Wallet, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.owners[w.OwnerID]; taken {
		return entities.Wallet{}, fmt.Errorf("%w: owner %s already has a wallet", entities.ErrConflict, w.OwnerID)
	}
	if _, exists := s.wallets[w.ID]; exists {
		return entities.Wallet{}, fmt.Errorf("%w: wallet %s already exists", entities.ErrConflict, w.ID)
	}
	w.Version = 1
	s.wallets[w.ID] = w
	s.owners[w.OwnerID] = w.ID
	return w, nil
}

func (r WalletRepository) GetByID(_ context.Context, id string) (entities.Wallet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.wallets[id], nil
}

func (r WalletRepository) GetByOwnerID(_ context.Context, ownerID string) (entities.Wallet, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.owners[ownerID]
	if !ok {
		return entities.Wallet{}, nil
	}
	return s.wallets[id], nil
}

func (r WalletRepository) ListTransactions(_ context.Context, walletID string) ([]entities.Transaction, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Transaction, 0)
	for _, t := range s.transactions {
		if t.WalletID == walletID {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (r TechnicianStatsRepository) GetByTechnicianID(_ context.Context, technicianID string) (entities.TechnicianStats, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.stats[technicianID], nil
}

// Events returns the committed lifecycle events in commit order.
func (s *Store) Events() []entities.LifecycleEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.LifecycleEvent(nil), s.events...)
}

// Commit validates every precondition before applying any write, so a
// failed commit leaves the store untouched.
func (s *Store) Commit(_ context.Context, cs interfaces.ChangeSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r := cs.Request; r != nil {
		cur, ok := s.requests[r.ID]
		if err := checkVersion("service request", r.ID, r.Version, cur.Version, ok); err != nil {
			return err
		}
	}
	seen := make(map[string]bool, len(cs.Wallets))
	for _, w := range cs.Wallets {
		if seen[w.ID] {
			return fmt.Errorf("%w: wallet %s written twice in one commit", entities.ErrConflict, w.ID)
		}
		seen[w.ID] = true
		cur, ok := s.wallets[w.ID]
		if err := checkVersion("wallet", w.ID, w.Version, cur.Version, ok); err != nil {
			return err
		}
		if !ok {
			if _, taken := s.owners[w.OwnerID]; taken {
				return fmt.Errorf("%w: owner %s already has a wallet", entities.ErrConflict, w.OwnerID)
			}
		}
	}
	if st := cs.Stats; st != nil {
		cur, ok := s.stats[st.TechnicianID]
		if err := checkVersion("technician stats", st.TechnicianID, st.Version, cur.Version, ok); err != nil {
			return err
		}
	}
	for _, t := range cs.Transactions {
		if _, dup := s.transactions[t.ID]; dup {
			return fmt.Errorf("%w: transaction %s already recorded", entities.ErrConflict, t.ID)
		}
	}

	if r := cs.Request; r != nil {
		next := cloneRequest(*r)
		next.Version++
		s.requests[next.ID] = next
	}
	for _, w := range cs.Wallets {
		w.Version++
		s.wallets[w.ID] = w
		s.owners[w.OwnerID] = w.ID
	}
	if st := cs.Stats; st != nil {
		next := *st
		next.Version++
		s.stats[next.TechnicianID] = next
	}
	for _, t := range cs.Transactions {
		s.transactions[t.ID] = t
	}
	s.events = append(s.events, cs.Events...)
	return nil
}

func checkVersion(kind, id string, expected, stored int64, exists bool) error {
	if expected == 0 {
		if exists {
			return fmt.Errorf("%w: %s %s already exists", entities.ErrConflict, kind, id)
		}
		return nil
	}
	if !exists {
		return versionConflict(kind, id, expected, 0)
	}
	if stored != expected {
		return versionConflict(kind, id, expected, stored)
	}
	return nil
}

func versionConflict(kind, id string, expected, stored int64) error {
	return fmt.Errorf("%w: %s %s changed (expected version %d, stored %d)", entities.ErrConflict, kind, id, expected, stored)
}

// cloneRequest copies the estimate and report so callers cannot alias
// stored state.
func cloneRequest(r entities.ServiceRequest) entities.ServiceRequest {
	if r.Estimate != nil {
		e := *r.Estimate
		r.Estimate = &e
	}
	if r.Report != nil {
		rep := *r.Report
		r.Report = &rep
	}
	return r
}
