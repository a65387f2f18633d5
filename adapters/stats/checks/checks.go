package checks

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"randlab/domain/core"
	"randlab/domain/randstat"
	"randlab/ports"
)

// Check is one statistical analysis over a generated sample. Checks are
// stateless with respect to the sample: every invocation owns its input and
// returns a self-contained result, so no locking is needed inside them.
type Check interface {
	Name() string
	Description() string
	Analyze(ctx context.Context, sample randstat.Sample, cfg randstat.TestConfig) randstat.CheckResult
}

// Battery bundles the six checks for one generator under test.
type Battery struct {
	checks []Check
}

// NewBattery creates the full check battery. The generator function is the
// one that produced the sample; the performance check re-invokes it, and the
// goodness-of-fit check draws its KS reference through the RNG port.
func NewBattery(gen ports.GeneratorFunc, rng ports.RNGPort) *Battery {
	return &Battery{
		checks: []Check{
			NewDistributionCheck(),
			NewMomentsCheck(),
			NewGoodnessOfFitCheck(rng),
			NewAutocorrelationCheck(),
			NewPerformanceCheck(gen, rng),
			NewEntropyCheck(),
		},
	}
}

// Run executes the named check against the sample.
func (b *Battery) Run(ctx context.Context, name string, sample randstat.Sample, cfg randstat.TestConfig) (randstat.CheckResult, error) {
	for _, check := range b.checks {
		if check.Name() == name {
			return check.Analyze(ctx, sample, cfg), nil
		}
	}
	return randstat.CheckResult{}, core.NewCheckNotFoundError(name)
}

// RunAll executes every check concurrently and returns results in
// registration order. Checks never mutate the sample, so they can share it.
// A cancelled context stops checks that have not started yet.
func (b *Battery) RunAll(ctx context.Context, sample randstat.Sample, cfg randstat.TestConfig) ([]randstat.CheckResult, error) {
	results := make([]randstat.CheckResult, len(b.checks))

	g, ctx := errgroup.WithContext(ctx)
	for i, check := range b.checks {
		i, check := i, check
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = check.Analyze(ctx, sample, cfg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// List returns the names of all registered checks in execution order.
func (b *Battery) List() []string {
	names := make([]string, len(b.checks))
	for i, check := range b.checks {
		names[i] = check.Name()
	}
	return names
}

var _ ports.BatteryPort = (*Battery)(nil)

// Shared numeric helpers

// pearson computes the Pearson correlation coefficient of two equal-length
// series. The bool result is false when the coefficient is undefined
// (fewer than two points, or zero variance on either side).
func pearson(x, y []float64) (float64, bool) {
	n := len(x)
	if n < 2 || n != len(y) {
		return 0, false
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += x[i]
		sumY += y[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx := x[i] - meanX
		dy := y[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0, false
	}
	return cov / math.Sqrt(varX*varY), true
}
