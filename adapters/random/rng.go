package random

import (
	"context"
	"math/rand"

	"randlab/domain/core"
	"randlab/ports"
)

// SeededRNG implements ports.RNGPort with deterministic per-stream seeding.
// Each named stream derives its own seed from the base seed, so the sample
// stream, the KS reference stream and the performance stream stay
// independent yet reproducible.
type SeededRNG struct{}

// NewSeededRNG creates a new seeded RNG adapter
func NewSeededRNG() *SeededRNG {
	return &SeededRNG{}
}

// SeededStream creates a deterministic random number generator for a named operation
func (r *SeededRNG) SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return rand.New(rand.NewSource(core.StreamSeed(name, seed))), nil
}

var _ ports.RNGPort = (*SeededRNG)(nil)
