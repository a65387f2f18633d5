package memory

import (
	"context"
	"sync"

	"randlab/domain/core"
	"randlab/domain/randstat"
	"randlab/ports"
)

// ReportRepository keeps finished reports in memory. It backs the
// application when no DATABASE_URL is configured and the tests.
type ReportRepository struct {
	mu      sync.RWMutex
	reports map[core.ReportID]*randstat.Report
	order   []core.ReportID
}

// NewReportRepository creates an empty in-memory repository
func NewReportRepository() *ReportRepository {
	return &ReportRepository{
		reports: make(map[core.ReportID]*randstat.Report),
	}
}

// Save stores a report, most recent last
func (r *ReportRepository) Save(ctx context.Context, report *randstat.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.reports[report.ID]; !exists {
		r.order = append(r.order, report.ID)
	}
	r.reports[report.ID] = report
	return nil
}

// Get retrieves a report by ID
func (r *ReportRepository) Get(ctx context.Context, id core.ReportID) (*randstat.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	report, ok := r.reports[id]
	if !ok {
		return nil, core.ErrReportNotFound
	}
	return report, nil
}

// List returns the most recent reports, newest first
func (r *ReportRepository) List(ctx context.Context, limit int) ([]*randstat.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*randstat.Report, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, r.reports[r.order[i]])
	}
	return out, nil
}

var _ ports.ReportRepository = (*ReportRepository)(nil)
