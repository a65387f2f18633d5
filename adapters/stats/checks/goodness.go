package checks

import (
	"context"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"randlab/domain/randstat"
	"randlab/ports"
)

// GoodnessOfFitCheck compares the observed distribution against the flat
// uniform expectation twice over: a chi-square test on the per-value
// frequencies and a two-sample Kolmogorov-Smirnov test against a freshly
// drawn continuous-uniform reference sample. The two p-values are
// independent evidentiary signals and are never combined into one verdict.
type GoodnessOfFitCheck struct {
	rng ports.RNGPort
}

// NewGoodnessOfFitCheck creates a new goodness-of-fit check
func NewGoodnessOfFitCheck(rng ports.RNGPort) *GoodnessOfFitCheck {
	return &GoodnessOfFitCheck{rng: rng}
}

// Name returns the check name
func (c *GoodnessOfFitCheck) Name() string {
	return "goodness_of_fit"
}

// Description returns a human-readable description
func (c *GoodnessOfFitCheck) Description() string {
	return "Chi-square and two-sample Kolmogorov-Smirnov tests against a uniform law"
}

// Analyze computes both statistics.
func (c *GoodnessOfFitCheck) Analyze(ctx context.Context, sample randstat.Sample, cfg randstat.TestConfig) randstat.CheckResult {
	n := cfg.DomainSize
	size := sample.Len()

	chiSq, chiP := chiSquareUniform(sample.Frequencies(n), size)

	result := randstat.CheckResult{
		CheckName:   c.Name(),
		Description: c.Description(),
		Text: []string{
			fmt.Sprintf("Chi-square test: chi2=%.2f, p=%.4f", chiSq, chiP),
		},
		Metadata: map[string]interface{}{
			"chi_square":      chiSq,
			"chi_square_p":    chiP,
			"degrees_freedom": n - 1,
		},
	}

	stream, err := c.rng.SeededStream(ctx, "ks_reference", cfg.Seed)
	if err != nil {
		result.Text = append(result.Text, "KS test skipped: reference stream unavailable")
		return result
	}

	reference := make([]float64, size)
	for i := range reference {
		reference[i] = stream.Float64() * float64(n-1)
	}

	d, ksP := ksTwoSample(sample.Float64s(), reference)
	result.Text = append(result.Text, fmt.Sprintf("KS test: D=%.4f, p=%.4f", d, ksP))
	result.Metadata["ks_d"] = d
	result.Metadata["ks_p"] = ksP
	return result
}

// chiSquareUniform computes the chi-square statistic of the observed counts
// against a flat expectation of size/N per value, with N-1 degrees of
// freedom. A single-value domain has no freedom left; the fit is then exact.
func chiSquareUniform(observed []int, size int) (chiSq, pValue float64) {
	n := len(observed)
	if n < 2 || size == 0 {
		return 0, 1.0
	}

	expected := float64(size) / float64(n)
	for _, count := range observed {
		diff := float64(count) - expected
		chiSq += diff * diff / expected
	}

	dist := distuv.ChiSquared{K: float64(n - 1)}
	pValue = 1 - dist.CDF(chiSq)
	if pValue < 0 {
		pValue = 0
	}
	return chiSq, pValue
}

// ksTwoSample computes the two-sample KS statistic D and its asymptotic
// p-value.
func ksTwoSample(a, b []float64) (d, pValue float64) {
	na, nb := len(a), len(b)
	if na == 0 || nb == 0 {
		return 0, 1.0
	}

	as := make([]float64, na)
	bs := make([]float64, nb)
	copy(as, a)
	copy(bs, b)
	sort.Float64s(as)
	sort.Float64s(bs)

	var i, j int
	for i < na && j < nb {
		va, vb := as[i], bs[j]
		if va <= vb {
			i++
		}
		if vb <= va {
			j++
		}
		diff := math.Abs(float64(i)/float64(na) - float64(j)/float64(nb))
		if diff > d {
			d = diff
		}
	}

	en := math.Sqrt(float64(na) * float64(nb) / float64(na+nb))
	pValue = kolmogorovProb((en + 0.12 + 0.11/en) * d)
	return d, pValue
}

// kolmogorovProb evaluates the asymptotic Kolmogorov survival function
// Q(lambda) = 2 * sum_{j>=1} (-1)^(j-1) exp(-2 j^2 lambda^2), the standard
// series behind the two-sample KS p-value.
func kolmogorovProb(lambda float64) float64 {
	if lambda <= 0 {
		return 1.0
	}

	a2 := -2 * lambda * lambda
	fac := 2.0
	sum := 0.0
	termPrev := 0.0
	for j := 1; j <= 100; j++ {
		term := fac * math.Exp(a2*float64(j*j))
		sum += term
		if math.Abs(term) <= 0.001*termPrev || math.Abs(term) <= 1e-8*sum {
			if sum < 0 {
				return 0
			}
			if sum > 1 {
				return 1
			}
			return sum
		}
		fac = -fac
		termPrev = math.Abs(term)
	}
	// Series failed to converge; claim no significance.
	return 1.0
}
