package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"randlab/domain/core"
	"randlab/domain/randstat"
	"randlab/ports"
)

// ReportRepositoryImpl implements ReportRepository for PostgreSQL
type ReportRepositoryImpl struct {
	db *sqlx.DB
}

// NewReportRepository creates a new PostgreSQL report repository
func NewReportRepository(db *sqlx.DB) ports.ReportRepository {
	return &ReportRepositoryImpl{db: db}
}

// EnsureSchema creates the report table when it does not exist yet
func (r *ReportRepositoryImpl) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS analysis_reports (
			id TEXT PRIMARY KEY,
			generator TEXT NOT NULL,
			domain_size INT NOT NULL,
			sample_size INT NOT NULL,
			seed BIGINT NOT NULL,
			results JSONB NOT NULL,
			started_at TIMESTAMPTZ NOT NULL,
			completed_at TIMESTAMPTZ NOT NULL
		)
	`)
	return err
}

// reportRow is the flat database representation of a report
type reportRow struct {
	ID          string    `db:"id"`
	Generator   string    `db:"generator"`
	DomainSize  int       `db:"domain_size"`
	SampleSize  int       `db:"sample_size"`
	Seed        int64     `db:"seed"`
	Results     []byte    `db:"results"`
	StartedAt   time.Time `db:"started_at"`
	CompletedAt time.Time `db:"completed_at"`
}

func (row *reportRow) toReport() (*randstat.Report, error) {
	var results []randstat.CheckResult
	if err := json.Unmarshal(row.Results, &results); err != nil {
		return nil, err
	}

	kind, err := randstat.ParseGeneratorKind(row.Generator)
	if err != nil {
		return nil, err
	}

	return &randstat.Report{
		ID:          core.ReportID(row.ID),
		Generator:   kind,
		GeneratorID: row.Generator,
		Config: randstat.TestConfig{
			DomainSize: row.DomainSize,
			SampleSize: row.SampleSize,
			Seed:       row.Seed,
		},
		Results:     results,
		StartedAt:   core.NewTimestamp(row.StartedAt),
		CompletedAt: core.NewTimestamp(row.CompletedAt),
	}, nil
}

// Save stores a finished report
func (r *ReportRepositoryImpl) Save(ctx context.Context, report *randstat.Report) error {
	results, err := json.Marshal(report.Results)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO analysis_reports (id, generator, domain_size, sample_size, seed, results, started_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING
	`, report.ID.String(), report.GeneratorID, report.Config.DomainSize, report.Config.SampleSize,
		report.Config.Seed, results, report.StartedAt.Time(), report.CompletedAt.Time())
	return err
}

// Get retrieves a report by ID
func (r *ReportRepositoryImpl) Get(ctx context.Context, id core.ReportID) (*randstat.Report, error) {
	var row reportRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, generator, domain_size, sample_size, seed, results, started_at, completed_at
		FROM analysis_reports
		WHERE id = $1
	`, id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrReportNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.toReport()
}

// List returns the most recent reports, newest first
func (r *ReportRepositoryImpl) List(ctx context.Context, limit int) ([]*randstat.Report, error) {
	query := `
		SELECT id, generator, domain_size, sample_size, seed, results, started_at, completed_at
		FROM analysis_reports
		ORDER BY started_at DESC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	var rows []reportRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	reports := make([]*randstat.Report, 0, len(rows))
	for i := range rows {
		report, err := rows[i].toReport()
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}
