package core

import (
	"crypto/sha256"
	"encoding/binary"
)

// StreamSeed derives a deterministic sub-seed for a named random stream.
// The same (name, base) pair always yields the same seed, and distinct
// stream names yield independent seeds even under the same base seed.
func StreamSeed(name string, base int64) int64 {
	buf := make([]byte, 8, 8+len(name))
	binary.BigEndian.PutUint64(buf, uint64(base))
	buf = append(buf, name...)
	sum := sha256.Sum256(buf)
	return int64(binary.BigEndian.Uint64(sum[:8]))
}
