package checks

import (
	"context"
	"fmt"
	"time"

	"randlab/domain/randstat"
	"randlab/ports"
)

// minElapsed floors the measured generation time so the throughput division
// cannot blow up on very fast generators.
const minElapsed = 1e-9 // seconds

// bytesPerElement is the dense in-memory footprint of one sample value.
const bytesPerElement = 8

// PerformanceCheck re-invokes the generator under test with the same
// (N, sample size) and measures generation wall-clock time and memory
// footprint. Only generation is timed; the original sample is untouched.
type PerformanceCheck struct {
	gen ports.GeneratorFunc
	rng ports.RNGPort
}

// NewPerformanceCheck creates a new performance check
func NewPerformanceCheck(gen ports.GeneratorFunc, rng ports.RNGPort) *PerformanceCheck {
	return &PerformanceCheck{gen: gen, rng: rng}
}

// Name returns the check name
func (c *PerformanceCheck) Name() string {
	return "performance"
}

// Description returns a human-readable description
func (c *PerformanceCheck) Description() string {
	return "Generation throughput and memory footprint of the selected generator"
}

// Analyze regenerates and measures.
func (c *PerformanceCheck) Analyze(ctx context.Context, sample randstat.Sample, cfg randstat.TestConfig) randstat.CheckResult {
	stream, err := c.rng.SeededStream(ctx, "performance", cfg.Seed)
	if err != nil {
		return randstat.CheckResult{
			CheckName:   c.Name(),
			Description: c.Description(),
			Text:        []string{"Performance test skipped: random stream unavailable"},
		}
	}

	start := time.Now()
	regenerated := c.gen(stream, cfg.DomainSize, cfg.SampleSize)
	elapsed := time.Since(start).Seconds()
	if elapsed < minElapsed {
		elapsed = minElapsed
	}

	throughput := int(float64(cfg.SampleSize) / elapsed)
	memKiB := float64(regenerated.Len()*bytesPerElement) / 1024

	return randstat.CheckResult{
		CheckName:   c.Name(),
		Description: c.Description(),
		Text: []string{
			fmt.Sprintf("Generation speed: %d samples/sec", throughput),
			fmt.Sprintf("Memory footprint: ~%.2f KB for %d samples", memKiB, cfg.SampleSize),
		},
		Metadata: map[string]interface{}{
			"duration_seconds": elapsed,
			"throughput":       throughput,
			"memory_kib":       memKiB,
		},
	}
}
