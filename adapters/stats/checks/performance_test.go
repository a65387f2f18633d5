package checks

import (
	"context"
	"math"
	"testing"

	"randlab/adapters/random"
	"randlab/domain/randstat"
)

func TestPerformanceCheck(t *testing.T) {
	check := NewPerformanceCheck(random.RangeUniform, random.NewSeededRNG())
	cfg := randstat.TestConfig{DomainSize: 100, SampleSize: 50000, Seed: 3}
	sample := drawSample(t, randstat.RangeUniform, cfg)

	result := check.Analyze(context.Background(), sample, cfg)

	throughput := result.Metadata["throughput"].(int)
	if throughput <= 0 {
		t.Errorf("Expected positive throughput, got %d", throughput)
	}

	// Dense representation: 8 bytes per element.
	memKiB := result.Metadata["memory_kib"].(float64)
	expected := float64(cfg.SampleSize*8) / 1024
	if math.Abs(memKiB-expected) > 1e-9 {
		t.Errorf("Expected %.2f KiB, got %.2f", expected, memKiB)
	}

	// The duration floor keeps throughput finite even for instant runs.
	duration := result.Metadata["duration_seconds"].(float64)
	if duration < minElapsed {
		t.Errorf("Duration %v below floor %v", duration, minElapsed)
	}
}

func TestPerformanceCheckLeavesSampleUntouched(t *testing.T) {
	check := NewPerformanceCheck(random.ModuloUniform, random.NewSeededRNG())
	cfg := randstat.TestConfig{DomainSize: 10, SampleSize: 1000, Seed: 4}
	sample := drawSample(t, randstat.ModuloUniform, cfg)

	before := make(randstat.Sample, len(sample))
	copy(before, sample)

	check.Analyze(context.Background(), sample, cfg)

	for i := range sample {
		if sample[i] != before[i] {
			t.Fatal("Performance check mutated the sample under test")
		}
	}
}
