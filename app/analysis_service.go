package app

import (
	"context"
	"sync"

	"randlab/adapters/random"
	"randlab/adapters/stats/checks"
	"randlab/domain/core"
	"randlab/domain/randstat"
	"randlab/internal"
	"randlab/ports"
)

// AnalysisService orchestrates one analysis session: validate the
// configuration, draw the sample, run the requested checks, assemble the
// report. Exactly one run may be in flight at a time; re-submission while a
// run is active is rejected, mirroring the disabled trigger of an
// interactive surface. Runs are not cancellable once started.
type AnalysisService struct {
	rng     ports.RNGPort
	reports ports.ReportRepository
	log     *internal.Logger

	mu      sync.Mutex
	running bool
}

// NewAnalysisService creates a new analysis service. The repository may be
// nil, in which case reports are returned to the caller only.
func NewAnalysisService(rng ports.RNGPort, reports ports.ReportRepository) *AnalysisService {
	return &AnalysisService{
		rng:     rng,
		reports: reports,
		log:     internal.DefaultLogger.Named("analysis"),
	}
}

// Run draws a fresh sample with the selected generator and executes either
// the single named check or, with an empty check name, the full battery.
func (s *AnalysisService) Run(ctx context.Context, kind randstat.GeneratorKind, cfg randstat.TestConfig, checkName string) (*randstat.Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.finish()

	gen, err := random.ForKind(kind)
	if err != nil {
		return nil, err
	}

	stream, err := s.rng.SeededStream(ctx, "sample", cfg.Seed)
	if err != nil {
		return nil, err
	}

	report := &randstat.Report{
		ID:          core.ReportID(core.NewID()),
		Generator:   kind,
		GeneratorID: kind.String(),
		Config:      cfg,
		StartedAt:   core.Now(),
	}

	s.log.Info("run %s: generator=%s N=%d size=%d seed=%d",
		report.ID, kind, cfg.DomainSize, cfg.SampleSize, cfg.Seed)

	sample := gen(stream, cfg.DomainSize, cfg.SampleSize)
	battery := checks.NewBattery(gen, s.rng)

	if checkName != "" {
		result, err := battery.Run(ctx, checkName, sample, cfg)
		if err != nil {
			return nil, err
		}
		report.Results = []randstat.CheckResult{result}
	} else {
		results, err := battery.RunAll(ctx, sample, cfg)
		if err != nil {
			return nil, err
		}
		report.Results = results
	}
	report.CompletedAt = core.Now()

	if s.reports != nil {
		if err := s.reports.Save(ctx, report); err != nil {
			// Persistence is best effort; the report is still returned.
			s.log.Warn("failed to persist report %s: %v", report.ID, err)
		}
	}
	return report, nil
}

// Checks lists the available check names.
func (s *AnalysisService) Checks() []string {
	return checks.NewBattery(random.RangeUniform, s.rng).List()
}

// begin claims the single run slot.
func (s *AnalysisService) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return core.ErrRunInProgress
	}
	s.running = true
	return nil
}

// finish releases the run slot.
func (s *AnalysisService) finish() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}
