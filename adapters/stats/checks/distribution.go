package checks

import (
	"context"
	"fmt"

	"randlab/domain/randstat"
)

// intervalBins is the bin count of the inter-occurrence interval histogram.
const intervalBins = 30

// DistributionCheck examines how values and their repetitions spread across
// the domain: a frequency count per value and a histogram of the gaps
// between repeated occurrences of the same value.
type DistributionCheck struct{}

// NewDistributionCheck creates a new distribution check
func NewDistributionCheck() *DistributionCheck {
	return &DistributionCheck{}
}

// Name returns the check name
func (c *DistributionCheck) Name() string {
	return "distribution"
}

// Description returns a human-readable description
func (c *DistributionCheck) Description() string {
	return "Frequency distribution per value and inter-occurrence interval histogram"
}

// Analyze builds both plottable series.
func (c *DistributionCheck) Analyze(ctx context.Context, sample randstat.Sample, cfg randstat.TestConfig) randstat.CheckResult {
	n := cfg.DomainSize
	counts := sample.Frequencies(n)

	frequencies := make([]randstat.BarPoint, n)
	distinct := 0
	for value, count := range counts {
		frequencies[value] = randstat.BarPoint{Value: value, Count: count}
		if count > 0 {
			distinct++
		}
	}

	intervals := interOccurrenceIntervals(sample, n)

	result := randstat.CheckResult{
		CheckName:   c.Name(),
		Description: c.Description(),
		Frequencies: frequencies,
		Intervals:   densityHistogram(intervals, intervalBins),
		Text: []string{
			fmt.Sprintf("Observed %d of %d possible values", distinct, n),
			fmt.Sprintf("Collected %d inter-occurrence intervals", len(intervals)),
		},
		Metadata: map[string]interface{}{
			"distinct_values": distinct,
			"interval_count":  len(intervals),
		},
	}
	if len(intervals) == 0 {
		// Every value appeared at most once; an empty histogram is a
		// defined result, not a failure.
		result.Text = append(result.Text, "No value repeated; interval histogram is empty")
	}
	return result
}

// interOccurrenceIntervals collects, per value in ascending value order, the
// gaps between successive occurrence indices, concatenated into one series.
func interOccurrenceIntervals(sample randstat.Sample, n int) []float64 {
	positions := make([][]int, n)
	for idx, v := range sample {
		if v >= 0 && v < n {
			positions[v] = append(positions[v], idx)
		}
	}

	var intervals []float64
	for _, pos := range positions {
		for i := 1; i < len(pos); i++ {
			intervals = append(intervals, float64(pos[i]-pos[i-1]))
		}
	}
	return intervals
}

// densityHistogram bins the data into equal-width bins normalized so the
// total histogram area is 1. An empty input yields an empty histogram.
func densityHistogram(data []float64, bins int) []randstat.HistogramBin {
	if len(data) == 0 {
		return nil
	}

	lo, hi := data[0], data[0]
	for _, v := range data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	if lo == hi {
		// Single distinct interval length: one unit-width bin holding
		// all the mass.
		return []randstat.HistogramBin{{Left: lo - 0.5, Right: lo + 0.5, Density: 1.0}}
	}

	width := (hi - lo) / float64(bins)
	counts := make([]int, bins)
	for _, v := range data {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}

	total := float64(len(data))
	out := make([]randstat.HistogramBin, bins)
	for i, count := range counts {
		out[i] = randstat.HistogramBin{
			Left:    lo + float64(i)*width,
			Right:   lo + float64(i+1)*width,
			Density: float64(count) / (total * width),
		}
	}
	return out
}
