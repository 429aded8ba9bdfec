package interfaces

import (
	"context"
	"repairhub/internal/domain/entities"
)

// ITechnicianStatsRepository returns the stats of a technician, or a zero
// value (empty TechnicianID) when none were recorded yet.
type ITechnicianStatsRepository interface {
	GetByTechnicianID(ctx context.Context, technicianID string) (entities.TechnicianStats, error)
}
