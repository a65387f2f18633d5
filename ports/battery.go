package ports

import (
	"context"

	"randlab/domain/randstat"
)

// BatteryPort runs statistical checks over a generated sample
type BatteryPort interface {
	// Run executes the named check against the sample.
	Run(ctx context.Context, name string, sample randstat.Sample, cfg randstat.TestConfig) (randstat.CheckResult, error)

	// RunAll executes every check and returns results in registration order.
	RunAll(ctx context.Context, sample randstat.Sample, cfg randstat.TestConfig) ([]randstat.CheckResult, error)

	// List returns the names of all registered checks in execution order.
	List() []string
}
