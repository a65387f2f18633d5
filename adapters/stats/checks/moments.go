package checks

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"randlab/domain/randstat"
)

// maxQQPoints caps the quantile series handed to the plot layer; beyond
// this the sorted sample is strided.
const maxQQPoints = 500

// MomentsCheck verifies the moment structure of the sample: mean, population
// variance, skewness and excess kurtosis, plus quantile-quantile coordinates
// against a uniform and a normal reference law.
type MomentsCheck struct{}

// NewMomentsCheck creates a new moments check
func NewMomentsCheck() *MomentsCheck {
	return &MomentsCheck{}
}

// Name returns the check name
func (c *MomentsCheck) Name() string {
	return "moments"
}

// Description returns a human-readable description
func (c *MomentsCheck) Description() string {
	return "Moment estimators and QQ plots against uniform and normal references"
}

// Analyze computes the four moments and both QQ series.
func (c *MomentsCheck) Analyze(ctx context.Context, sample randstat.Sample, cfg randstat.TestConfig) randstat.CheckResult {
	data := sample.Float64s()

	mean, err := stats.Mean(data)
	if err != nil {
		return randstat.CheckResult{
			CheckName:   c.Name(),
			Description: c.Description(),
			Text:        []string{"Moments undefined: empty sample"},
		}
	}
	variance, _ := stats.PopulationVariance(data)
	std := math.Sqrt(variance)

	skewness, kurtosis := standardizedMoments(data, mean, std)

	momentsLine := fmt.Sprintf("Moments: mean=%.2f, variance=%.2f, skewness=%.2f, kurtosis=%.2f",
		mean, variance, skewness, kurtosis)
	text := []string{momentsLine}
	if std == 0 {
		text = []string{
			fmt.Sprintf("Moments: mean=%.2f, variance=%.2f", mean, variance),
			"Skewness and kurtosis undefined: zero variance",
		}
	}

	uniformQQ, normalQQ := qqSeries(data, cfg.DomainSize, mean, std)

	return randstat.CheckResult{
		CheckName:   c.Name(),
		Description: c.Description(),
		Text:        text,
		UniformQQ:   uniformQQ,
		NormalQQ:    normalQQ,
		Metadata: map[string]interface{}{
			"mean":     mean,
			"variance": variance,
			"skewness": skewness,
			"kurtosis": kurtosis,
		},
	}
}

// standardizedMoments computes population skewness and excess kurtosis from
// the standardized third and fourth moments. Zero variance yields zeros.
func standardizedMoments(data []float64, mean, std float64) (skewness, kurtosis float64) {
	if std == 0 || len(data) == 0 {
		return 0, 0
	}

	n := float64(len(data))
	var m3, m4 float64
	for _, x := range data {
		d := (x - mean) / std
		d3 := d * d * d
		m3 += d3
		m4 += d3 * d
	}
	skewness = m3 / n
	kurtosis = m4/n - 3 // excess kurtosis
	return skewness, kurtosis
}

// qqSeries pairs the sorted sample against theoretical quantiles of
// Uniform[0, N-1] and Normal(mean, std) at midpoint plotting positions.
func qqSeries(data []float64, domainSize int, mean, std float64) (uniformQQ, normalQQ []randstat.QQPoint) {
	n := len(data)
	if n == 0 {
		return nil, nil
	}

	sorted := make([]float64, n)
	copy(sorted, data)
	sort.Float64s(sorted)

	uniform := distuv.Uniform{Min: 0, Max: float64(domainSize - 1)}
	var normal distuv.Normal
	if std > 0 {
		normal = distuv.Normal{Mu: mean, Sigma: std}
	}

	stride := 1
	if n > maxQQPoints {
		stride = n / maxQQPoints
	}

	for i := 0; i < n; i += stride {
		p := (float64(i) + 0.5) / float64(n)
		uniformQQ = append(uniformQQ, randstat.QQPoint{
			Theoretical: uniform.Quantile(p),
			Sample:      sorted[i],
		})
		if std > 0 {
			normalQQ = append(normalQQ, randstat.QQPoint{
				Theoretical: normal.Quantile(p),
				Sample:      sorted[i],
			})
		}
	}
	return uniformQQ, normalQQ
}
