package checks

import (
	"context"
	"fmt"

	"randlab/domain/randstat"
)

// maxLag is the deepest lag of the autocorrelation series.
const maxLag = 10

// AutocorrelationCheck looks for serial dependence: the lag-1 Pearson
// correlation of the sample against itself shifted by one, the count of
// monotonic runs, and an autocorrelation-by-lag series for plotting.
type AutocorrelationCheck struct{}

// NewAutocorrelationCheck creates a new autocorrelation check
func NewAutocorrelationCheck() *AutocorrelationCheck {
	return &AutocorrelationCheck{}
}

// Name returns the check name
func (c *AutocorrelationCheck) Name() string {
	return "autocorrelation"
}

// Description returns a human-readable description
func (c *AutocorrelationCheck) Description() string {
	return "Lag-1 autocorrelation, monotonic run count and the ACF over lags 1-10"
}

// Analyze computes the scalar statistics and the lag series.
func (c *AutocorrelationCheck) Analyze(ctx context.Context, sample randstat.Sample, cfg randstat.TestConfig) randstat.CheckResult {
	data := sample.Float64s()
	n := len(data)

	result := randstat.CheckResult{
		CheckName:   c.Name(),
		Description: c.Description(),
		Metadata:    map[string]interface{}{},
	}

	acf1, defined := pearson(data[:max(n-1, 0)], data[min(1, n):])
	if defined {
		result.Text = append(result.Text, fmt.Sprintf("Lag-1 autocorrelation: %.4f", acf1))
		result.Metadata["lag1_autocorrelation"] = acf1
	} else {
		// Correlation is undefined on samples of length <= 1 or with
		// zero variance; report it rather than crash.
		result.Text = append(result.Text, "Lag-1 autocorrelation: undefined")
	}

	runs := runCount(sample)
	result.Text = append(result.Text, fmt.Sprintf("Run count: %d", runs))
	result.Metadata["run_count"] = runs

	for lag := 1; lag <= maxLag && n-lag >= 2; lag++ {
		coeff, ok := pearson(data[:n-lag], data[lag:])
		if !ok {
			break
		}
		result.Autocorr = append(result.Autocorr, randstat.LagPoint{Lag: lag, Coefficient: coeff})
	}

	return result
}

// runCount counts maximal monotonic runs: the first differences are reduced
// to signs, and every sign change between consecutive differences starts a
// new run. A sample without any difference is a single run.
func runCount(sample randstat.Sample) int {
	if sample.Len() == 0 {
		return 0
	}

	signs := make([]int, 0, sample.Len()-1)
	for i := 1; i < sample.Len(); i++ {
		delta := sample[i] - sample[i-1]
		switch {
		case delta > 0:
			signs = append(signs, 1)
		case delta < 0:
			signs = append(signs, -1)
		default:
			signs = append(signs, 0)
		}
	}

	runs := 1
	for i := 1; i < len(signs); i++ {
		if signs[i] != signs[i-1] {
			runs++
		}
	}
	return runs
}
