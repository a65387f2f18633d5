package checks

import (
	"context"
	"fmt"
	"math"

	"randlab/domain/randstat"
)

// EntropyCheck computes the Shannon entropy of the observed value
// frequencies in bits, reported next to the theoretical maximum log2(N).
// The ratio of the two is the de-facto randomness quality signal.
type EntropyCheck struct{}

// NewEntropyCheck creates a new entropy check
func NewEntropyCheck() *EntropyCheck {
	return &EntropyCheck{}
}

// Name returns the check name
func (c *EntropyCheck) Name() string {
	return "entropy"
}

// Description returns a human-readable description
func (c *EntropyCheck) Description() string {
	return "Shannon entropy of the observed frequencies against the log2(N) ceiling"
}

// Analyze computes the entropy.
func (c *EntropyCheck) Analyze(ctx context.Context, sample randstat.Sample, cfg randstat.TestConfig) randstat.CheckResult {
	entropy := shannonEntropy(sample, cfg.DomainSize)
	maxEntropy := math.Log2(float64(cfg.DomainSize))

	metadata := map[string]interface{}{
		"entropy":     entropy,
		"max_entropy": maxEntropy,
	}
	if maxEntropy > 0 {
		metadata["quality_ratio"] = entropy / maxEntropy
	}

	return randstat.CheckResult{
		CheckName:   c.Name(),
		Description: c.Description(),
		Text: []string{
			fmt.Sprintf("Shannon entropy: %.4f bits (theoretical max: %.4f)", entropy, maxEntropy),
		},
		Metadata: metadata,
	}
}

// shannonEntropy computes -sum(p * log2(p)) over observed values only;
// zero-frequency values are excluded before the log.
func shannonEntropy(sample randstat.Sample, n int) float64 {
	size := float64(sample.Len())
	if size == 0 {
		return 0
	}

	entropy := 0.0
	for _, count := range sample.Frequencies(n) {
		if count == 0 {
			continue
		}
		p := float64(count) / size
		entropy -= p * math.Log2(p)
	}
	return entropy
}
