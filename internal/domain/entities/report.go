package entities

import (
	"strings"
	"time"
)

// Report is the technician's account of completed work.
type Report struct {
	RepairDetails      string    `json:"repair_details"`
	RepairSummary      string    `json:"repair_summary"`
	CompletionDateTime time.Time `json:"completion_date_time"`
	CreatedAt          time.Time `json:"created_at"`
}

func NewReport(details, summary string, completedAt, now time.Time) (Report, error) {
	r := Report{
		RepairDetails:      strings.TrimSpace(details),
		RepairSummary:      strings.TrimSpace(summary),
		CompletionDateTime: completedAt.UTC(),
		CreatedAt:          now.UTC(),
	}
	if !r.Valid() {
		return Report{}, ErrInvalidReport
	}
	return r, nil
}

func (r Report) Valid() bool {
	return strings.TrimSpace(r.RepairDetails) != "" &&
		strings.TrimSpace(r.RepairSummary) != "" &&
		!r.CompletionDateTime.IsZero()
}
