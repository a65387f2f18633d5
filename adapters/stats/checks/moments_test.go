package checks

import (
	"context"
	"math"
	"testing"

	"randlab/domain/randstat"
)

func TestMomentsKnownSample(t *testing.T) {
	check := NewMomentsCheck()
	sample := randstat.Sample{0, 1, 2, 3, 4, 5}
	cfg := randstat.TestConfig{DomainSize: 6, SampleSize: 6}

	result := check.Analyze(context.Background(), sample, cfg)

	mean := result.Metadata["mean"].(float64)
	variance := result.Metadata["variance"].(float64)
	skewness := result.Metadata["skewness"].(float64)

	if math.Abs(mean-2.5) > 1e-12 {
		t.Errorf("Expected mean 2.5, got %v", mean)
	}
	// Population variance of 0..5 is 35/12.
	if math.Abs(variance-35.0/12.0) > 1e-9 {
		t.Errorf("Expected variance %v, got %v", 35.0/12.0, variance)
	}
	// A symmetric sample has zero skewness.
	if math.Abs(skewness) > 1e-9 {
		t.Errorf("Expected zero skewness for symmetric sample, got %v", skewness)
	}
}

func TestMomentsZeroVariance(t *testing.T) {
	check := NewMomentsCheck()
	sample := randstat.Sample{3, 3, 3, 3}
	cfg := randstat.TestConfig{DomainSize: 5, SampleSize: 4}

	result := check.Analyze(context.Background(), sample, cfg)

	if result.Metadata["variance"].(float64) != 0 {
		t.Errorf("Expected zero variance, got %v", result.Metadata["variance"])
	}
	// The constant sample still produces a uniform QQ series, but no
	// normal one: the normal reference is undefined at sigma 0.
	if len(result.UniformQQ) == 0 {
		t.Error("Expected uniform QQ series")
	}
	if len(result.NormalQQ) != 0 {
		t.Errorf("Expected no normal QQ series for zero variance, got %d points", len(result.NormalQQ))
	}
}

func TestQQSeriesMonotonic(t *testing.T) {
	data := []float64{9, 1, 4, 7, 2, 5, 8, 0, 3, 6}
	uniformQQ, normalQQ := qqSeries(data, 10, 4.5, 2.87)

	if len(uniformQQ) != len(data) {
		t.Fatalf("Expected %d uniform QQ points, got %d", len(data), len(uniformQQ))
	}
	for i := 1; i < len(uniformQQ); i++ {
		if uniformQQ[i].Sample < uniformQQ[i-1].Sample {
			t.Error("Sample quantiles must be non-decreasing")
		}
		if uniformQQ[i].Theoretical < uniformQQ[i-1].Theoretical {
			t.Error("Uniform theoretical quantiles must be non-decreasing")
		}
	}
	for i := 1; i < len(normalQQ); i++ {
		if normalQQ[i].Theoretical < normalQQ[i-1].Theoretical {
			t.Error("Normal theoretical quantiles must be non-decreasing")
		}
	}
}

func TestQQSeriesStride(t *testing.T) {
	data := make([]float64, 5000)
	for i := range data {
		data[i] = float64(i % 100)
	}
	uniformQQ, _ := qqSeries(data, 100, 49.5, 28.9)

	if len(uniformQQ) > maxQQPoints+1 {
		t.Errorf("Expected at most ~%d QQ points, got %d", maxQQPoints, len(uniformQQ))
	}
}

func TestStandardizedMomentsExcessKurtosis(t *testing.T) {
	// A two-point symmetric distribution has skewness 0 and excess
	// kurtosis -2 (the minimum).
	data := []float64{0, 1, 0, 1, 0, 1, 0, 1}
	skewness, kurtosis := standardizedMoments(data, 0.5, 0.5)

	if math.Abs(skewness) > 1e-12 {
		t.Errorf("Expected zero skewness, got %v", skewness)
	}
	if math.Abs(kurtosis-(-2)) > 1e-12 {
		t.Errorf("Expected excess kurtosis -2, got %v", kurtosis)
	}
}
