package randstat

import (
	"fmt"
	"strings"

	"randlab/domain/core"
)

// Sample is one generated integer sequence under test. Once generated it is
// never mutated; every element lies in [0, DomainSize).
type Sample []int

// Len returns the number of drawn values.
func (s Sample) Len() int { return len(s) }

// Float64s converts the sample to a float slice for numeric routines.
func (s Sample) Float64s() []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}
	return out
}

// Frequencies builds the zero-filled count-per-value table over [0, n).
// INVARIANT: the result always has exactly n entries summing to len(s),
// otherwise chi-square degrees of freedom are wrong downstream.
func (s Sample) Frequencies(n int) []int {
	counts := make([]int, n)
	for _, v := range s {
		if v >= 0 && v < n {
			counts[v]++
		}
	}
	return counts
}

// TestConfig holds the parameters of one analysis session.
type TestConfig struct {
	DomainSize int   `json:"domain_size"` // N: distinct outcomes, values drawn from [0, N)
	SampleSize int   `json:"sample_size"` // number of values to draw (> 0)
	Seed       int64 `json:"seed"`        // base seed for all derived random streams
}

// Validate rejects non-positive dimensions before any generation runs.
func (c TestConfig) Validate() error {
	if c.DomainSize <= 0 {
		return core.NewInvalidConfigError("domain_size", fmt.Sprintf("must be > 0, got %d", c.DomainSize))
	}
	if c.SampleSize <= 0 {
		return core.NewInvalidConfigError("sample_size", fmt.Sprintf("must be > 0, got %d", c.SampleSize))
	}
	return nil
}

// GeneratorKind selects one of the three reference samplers.
type GeneratorKind int

const (
	// ModuloUniform reduces a full-range draw modulo N, reproducing the
	// legacy rand()%N bias characteristics on purpose.
	ModuloUniform GeneratorKind = iota
	// RangeUniform draws directly from [0, N) and serves as the unbiased
	// reference.
	RangeUniform
	// ClippedNormal rounds and clamps a normal draw with mean (N-1)/2 and
	// sigma (N-1)/6 into [0, N-1].
	ClippedNormal
)

// String returns the canonical generator name.
func (k GeneratorKind) String() string {
	switch k {
	case ModuloUniform:
		return "modulo_uniform"
	case RangeUniform:
		return "range_uniform"
	case ClippedNormal:
		return "clipped_normal"
	default:
		return fmt.Sprintf("generator(%d)", int(k))
	}
}

// ParseGeneratorKind maps a user-supplied name to a GeneratorKind.
func ParseGeneratorKind(s string) (GeneratorKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "modulo_uniform", "modulo", "c_style":
		return ModuloUniform, nil
	case "range_uniform", "range", "uniform":
		return RangeUniform, nil
	case "clipped_normal", "normal":
		return ClippedNormal, nil
	default:
		return 0, core.NewUnknownGeneratorError(s)
	}
}

// Kinds lists all generator kinds in presentation order.
func Kinds() []GeneratorKind {
	return []GeneratorKind{ModuloUniform, RangeUniform, ClippedNormal}
}

// ============================================================================
// PLOT-READY SERIES
// ============================================================================

// BarPoint is one value/count pair of the frequency distribution.
type BarPoint struct {
	Value int `json:"value"`
	Count int `json:"count"`
}

// HistogramBin is one density-normalized bin of the interval histogram.
type HistogramBin struct {
	Left    float64 `json:"left"`
	Right   float64 `json:"right"`
	Density float64 `json:"density"`
}

// QQPoint is one theoretical/sample quantile coordinate pair.
type QQPoint struct {
	Theoretical float64 `json:"theoretical"`
	Sample      float64 `json:"sample"`
}

// LagPoint is one autocorrelation-by-lag coordinate.
type LagPoint struct {
	Lag         int     `json:"lag"`
	Coefficient float64 `json:"coefficient"`
}

// ============================================================================
// CHECK OUTPUT
// ============================================================================

// CheckResult is the outcome of one statistical check: formatted text lines
// plus zero or more plottable series. Results are ephemeral; each one is held
// only until superseded by the next run.
type CheckResult struct {
	CheckName   string                 `json:"check_name"`
	Description string                 `json:"description,omitempty"`
	Text        []string               `json:"text"`                   // Formatted statistic lines
	Frequencies []BarPoint             `json:"frequencies,omitempty"`  // value -> count bar data
	Intervals   []HistogramBin         `json:"intervals,omitempty"`    // inter-occurrence interval histogram
	UniformQQ   []QQPoint              `json:"uniform_qq,omitempty"`   // sample vs Uniform[0, N-1]
	NormalQQ    []QQPoint              `json:"normal_qq,omitempty"`    // sample vs Normal(mean, std)
	Autocorr    []LagPoint             `json:"autocorr,omitempty"`     // lags 1..10
	Metadata    map[string]interface{} `json:"metadata,omitempty"`     // raw scalar statistics
}

// Report bundles the results of one analysis session.
type Report struct {
	ID          core.ReportID  `json:"id"`
	Generator   GeneratorKind  `json:"-"`
	GeneratorID string         `json:"generator"`
	Config      TestConfig     `json:"config"`
	Results     []CheckResult  `json:"results"`
	StartedAt   core.Timestamp `json:"started_at"`
	CompletedAt core.Timestamp `json:"completed_at"`
}

// Result returns the named check result, if present.
func (r *Report) Result(name string) (CheckResult, bool) {
	for _, res := range r.Results {
		if res.CheckName == name {
			return res, true
		}
	}
	return CheckResult{}, false
}
