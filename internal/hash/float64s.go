package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Float64s computes the xxHash64 of one or more float64 sequences.
//
// Each value contributes its IEEE-754 bit pattern, and each sequence is
// prefixed by its length, so ([1,2],[3]) and ([1],[2,3]) hash differently.
// Identical inputs always produce identical digests.
func Float64s(seqs ...[]float64) uint64 {
	d := xxhash.New()

	var buf [8]byte
	for _, seq := range seqs {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(seq)))
		_, _ = d.Write(buf[:])
		for _, v := range seq {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = d.Write(buf[:])
		}
	}

	return d.Sum64()
}

