package checks

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"randlab/adapters/random"
	"randlab/domain/core"
	"randlab/domain/randstat"
)

func testBattery() *Battery {
	return NewBattery(random.RangeUniform, random.NewSeededRNG())
}

func drawSample(t *testing.T, kind randstat.GeneratorKind, cfg randstat.TestConfig) randstat.Sample {
	t.Helper()
	gen, err := random.ForKind(kind)
	require.NoError(t, err)
	stream, err := random.NewSeededRNG().SeededStream(context.Background(), "sample", cfg.Seed)
	require.NoError(t, err)
	return gen(stream, cfg.DomainSize, cfg.SampleSize)
}

func TestBatteryRunAll(t *testing.T) {
	battery := testBattery()
	cfg := randstat.TestConfig{DomainSize: 10, SampleSize: 2000, Seed: 1}
	sample := drawSample(t, randstat.RangeUniform, cfg)

	results, err := battery.RunAll(context.Background(), sample, cfg)
	require.NoError(t, err)
	require.Len(t, results, 6)

	expected := []string{"distribution", "moments", "goodness_of_fit", "autocorrelation", "performance", "entropy"}
	assert.Equal(t, expected, battery.List())
	for i, result := range results {
		assert.Equal(t, expected[i], result.CheckName, "results must come back in registration order")
		assert.NotEmpty(t, result.Text, "every check reports at least one text line")
	}
}

func TestBatteryRunSingle(t *testing.T) {
	battery := testBattery()
	cfg := randstat.TestConfig{DomainSize: 8, SampleSize: 800, Seed: 2}
	sample := drawSample(t, randstat.RangeUniform, cfg)

	result, err := battery.Run(context.Background(), "entropy", sample, cfg)
	require.NoError(t, err)
	assert.Equal(t, "entropy", result.CheckName)
}

func TestBatteryRunAllCancelledContext(t *testing.T) {
	battery := testBattery()
	cfg := randstat.TestConfig{DomainSize: 8, SampleSize: 100, Seed: 2}
	sample := drawSample(t, randstat.RangeUniform, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := battery.RunAll(ctx, sample, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBatteryRunUnknownCheck(t *testing.T) {
	battery := testBattery()
	cfg := randstat.TestConfig{DomainSize: 8, SampleSize: 10, Seed: 2}

	_, err := battery.Run(context.Background(), "spectral", drawSample(t, randstat.RangeUniform, cfg), cfg)
	require.Error(t, err)
	assert.True(t, core.IsNotFoundError(err))
}

func TestPearsonPerfectCorrelation(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{1, 2, 3, 4, 5}

	r, ok := pearson(x, y)
	require.True(t, ok)
	assert.InDelta(t, 1.0, r, 1e-12)

	inv := []float64{5, 4, 3, 2, 1}
	r, ok = pearson(x, inv)
	require.True(t, ok)
	assert.InDelta(t, -1.0, r, 1e-12)
}

func TestPearsonUndefined(t *testing.T) {
	if _, ok := pearson([]float64{1}, []float64{2}); ok {
		t.Error("Expected undefined correlation for single-point series")
	}
	if _, ok := pearson([]float64{3, 3, 3}, []float64{1, 2, 3}); ok {
		t.Error("Expected undefined correlation for zero-variance series")
	}
	if r, ok := pearson([]float64{1, 2, 3}, []float64{1, 2, 3}); !ok || math.Abs(r-1) > 1e-12 {
		t.Errorf("Expected r=1 for identical series, got %v (defined=%v)", r, ok)
	}
}
