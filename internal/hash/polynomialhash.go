package hash

import "github.com/gostonefire/courseplanner/internal/conf"

// PolynomialHashAlgorithm - The internally used bucket selection algorithm. It is a polynomial rolling hash
// over the key bytes, h = (h * 31 + b) mod tableSize, reduced at every step.
// The accumulator is an uint32 and wraps around on overflow, which matters for table sizes above 2^32 / 31
// where the result differs from reducing an unbounded polynomial only once at the end.
type PolynomialHashAlgorithm struct {
	tableSize uint32
}

// NewPolynomialHashAlgorithm - Returns a pointer to a new PolynomialHashAlgorithm instance
func NewPolynomialHashAlgorithm(tableSize int64) *PolynomialHashAlgorithm {
	ha := &PolynomialHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of buckets, it must be within 1 and conf.MaxTableSize
func (P *PolynomialHashAlgorithm) SetTableSize(tableSize int64) {
	P.tableSize = uint32(tableSize)
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (P *PolynomialHashAlgorithm) HashFunc1(key []byte) int64 {
	var h uint32
	for _, b := range key {
		h = (h*conf.HashMultiplier + uint32(b)) % P.tableSize
	}
	return int64(h)
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (P *PolynomialHashAlgorithm) GetTableSize() int64 {
	return int64(P.tableSize)
}
