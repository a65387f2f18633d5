package ports

import (
	"math/rand"

	"randlab/domain/randstat"
)

// GeneratorFunc produces a sample of exactly size values in [0, n) from the
// supplied random stream. Generators are pure functions of (n, size) and the
// stream; they hold no state of their own.
type GeneratorFunc func(rng *rand.Rand, n, size int) randstat.Sample
