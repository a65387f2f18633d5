package random

import (
	"math"
	"math/rand"

	"randlab/domain/core"
	"randlab/domain/randstat"
	"randlab/ports"
)

// ModuloUniform draws size values by reducing a full-range draw modulo n.
// This deliberately reproduces the legacy rand()%n sampling law: for
// non-power-of-two n a modulo-biased source shows slight non-uniformity,
// which is the behavior under test, not a defect. The underlying source is
// math/rand, so the bias characteristics differ from historical C rand().
func ModuloUniform(rng *rand.Rand, n, size int) randstat.Sample {
	sample := make(randstat.Sample, size)
	for i := range sample {
		sample[i] = int(rng.Int63() % int64(n))
	}
	return sample
}

// RangeUniform draws size values uniformly from [0, n) via a direct range
// draw. This is the unbiased reference sampler.
func RangeUniform(rng *rand.Rand, n, size int) randstat.Sample {
	sample := make(randstat.Sample, size)
	for i := range sample {
		sample[i] = rng.Intn(n)
	}
	return sample
}

// ClippedNormal draws size values from a normal law with mean (n-1)/2 and
// sigma (n-1)/6 (so +-3 sigma roughly spans the domain), rounds to nearest
// integer and clamps into [0, n-1]. Clamping concentrates the excess tail
// mass at the two boundary values.
func ClippedNormal(rng *rand.Rand, n, size int) randstat.Sample {
	mean := float64(n-1) / 2
	std := float64(n-1) / 6

	sample := make(randstat.Sample, size)
	for i := range sample {
		v := int(math.Round(rng.NormFloat64()*std + mean))
		if v < 0 {
			v = 0
		}
		if v > n-1 {
			v = n - 1
		}
		sample[i] = v
	}
	return sample
}

// generators is the closed strategy table mapping each kind to its sampler.
var generators = map[randstat.GeneratorKind]ports.GeneratorFunc{
	randstat.ModuloUniform: ModuloUniform,
	randstat.RangeUniform:  RangeUniform,
	randstat.ClippedNormal: ClippedNormal,
}

// ForKind resolves a generator kind to its sampling function.
func ForKind(kind randstat.GeneratorKind) (ports.GeneratorFunc, error) {
	gen, ok := generators[kind]
	if !ok {
		return nil, core.NewUnknownGeneratorError(kind.String())
	}
	return gen, nil
}
