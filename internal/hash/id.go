package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Float64s computes an order-sensitive xxHash64 over the IEEE-754 bits of each column,
// in column order. Column lengths are mixed in so that ([1,2],[3]) and ([1],[2,3]) differ.
func Float64s(columns ...[]float64) uint64 {
	d := xxhash.New()

	var buf [8]byte
	for _, col := range columns {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(col)))
		_, _ = d.Write(buf[:])
		for _, v := range col {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = d.Write(buf[:])
		}
	}

	return d.Sum64()
}
