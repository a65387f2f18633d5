package checks

import (
	"context"
	"math"
	"testing"

	"randlab/domain/randstat"
)

func TestDistributionCheckFrequencies(t *testing.T) {
	check := NewDistributionCheck()
	sample := randstat.Sample{0, 1, 1, 3, 3, 3}
	cfg := randstat.TestConfig{DomainSize: 5, SampleSize: 6}

	result := check.Analyze(context.Background(), sample, cfg)

	// Bar data must cover every value of the domain, zero-filled.
	if len(result.Frequencies) != 5 {
		t.Fatalf("Expected 5 frequency points, got %d", len(result.Frequencies))
	}
	expected := []int{1, 2, 0, 3, 0}
	total := 0
	for i, point := range result.Frequencies {
		if point.Value != i {
			t.Errorf("Point %d carries value %d", i, point.Value)
		}
		if point.Count != expected[i] {
			t.Errorf("Count for value %d: expected %d, got %d", i, expected[i], point.Count)
		}
		total += point.Count
	}
	if total != 6 {
		t.Errorf("Counts sum to %d, expected sample size 6", total)
	}
}

func TestInterOccurrenceIntervals(t *testing.T) {
	// Value 1 appears at indices 1, 2 (gap 1); value 3 at 3, 4, 5 (gaps 1, 1).
	sample := randstat.Sample{0, 1, 1, 3, 3, 3}
	intervals := interOccurrenceIntervals(sample, 5)

	if len(intervals) != 3 {
		t.Fatalf("Expected 3 intervals, got %d: %v", len(intervals), intervals)
	}
	for _, gap := range intervals {
		if gap != 1 {
			t.Errorf("Expected all gaps to be 1, got %v", intervals)
		}
	}
}

func TestDistributionCheckAllDistinct(t *testing.T) {
	check := NewDistributionCheck()
	sample := randstat.Sample{0, 1, 2, 3}
	cfg := randstat.TestConfig{DomainSize: 4, SampleSize: 4}

	result := check.Analyze(context.Background(), sample, cfg)

	// Every value appears once: no intervals, and the empty histogram must
	// be a defined result.
	if len(result.Intervals) != 0 {
		t.Errorf("Expected empty interval histogram, got %d bins", len(result.Intervals))
	}
	if len(result.Text) == 0 {
		t.Error("Expected explanatory text for the degenerate case")
	}
}

func TestDensityHistogramNormalization(t *testing.T) {
	data := []float64{1, 2, 2, 3, 3, 3, 4, 5, 9, 12, 15, 18, 21, 30}
	bins := densityHistogram(data, 30)

	if len(bins) != 30 {
		t.Fatalf("Expected 30 bins, got %d", len(bins))
	}

	// Density integrates to 1 over the histogram support.
	area := 0.0
	for _, bin := range bins {
		width := bin.Right - bin.Left
		if width <= 0 {
			t.Fatalf("Non-positive bin width: %+v", bin)
		}
		area += bin.Density * width
	}
	if math.Abs(area-1.0) > 1e-9 {
		t.Errorf("Histogram area = %v, expected 1.0", area)
	}
}

func TestDensityHistogramDegenerate(t *testing.T) {
	if bins := densityHistogram(nil, 30); bins != nil {
		t.Errorf("Expected nil histogram for empty input, got %v", bins)
	}

	bins := densityHistogram([]float64{4, 4, 4}, 30)
	if len(bins) != 1 {
		t.Fatalf("Expected a single bin for constant input, got %d", len(bins))
	}
	if bins[0].Density != 1.0 {
		t.Errorf("Expected unit density for constant input, got %v", bins[0].Density)
	}
}
