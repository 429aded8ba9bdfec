package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// TechnicianStats tracks the jobs a technician completed and the earnings
// credited by completeService.
//
// The earnings counter is lifecycle bookkeeping; it is not a ledger balance.
type TechnicianStats struct {
	TechnicianID  string          `json:"technician_id"`
	CompletedJobs int64           `json:"completed_jobs"`
	TotalEarnings decimal.Decimal `json:"total_earnings"`
	Version       int64           `json:"version"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func NewTechnicianStats(technicianID string) TechnicianStats {
	return TechnicianStats{TechnicianID: technicianID, TotalEarnings: decimal.Zero}
}

func (s *TechnicianStats) RecordCompletion(amount decimal.Decimal, now time.Time) {
	s.CompletedJobs++
	s.TotalEarnings = s.TotalEarnings.Add(amount)
	s.UpdatedAt = now.UTC()
}
