package ports

import (
	"context"

	"randlab/domain/core"
	"randlab/domain/randstat"
)

// ReportRepository stores finished analysis reports for later retrieval.
// The statistical core never touches it; persistence is an outer-layer
// concern wired in by the entrypoints.
type ReportRepository interface {
	Save(ctx context.Context, report *randstat.Report) error
	Get(ctx context.Context, id core.ReportID) (*randstat.Report, error)
	List(ctx context.Context, limit int) ([]*randstat.Report, error)
}
