package hash

import "github.com/cespare/xxhash/v2"

// XXHashAlgorithm - Bucket selection using the 64 bit xxHash of the key reduced modulo the table size
type XXHashAlgorithm struct {
	tableSize uint64
}

// NewXXHashAlgorithm - Returns a pointer to a new XXHashAlgorithm instance
func NewXXHashAlgorithm(tableSize int64) *XXHashAlgorithm {
	return &XXHashAlgorithm{tableSize: uint64(tableSize)}
}

// SetTableSize - Sets the table size for the hash algorithm.
func (X *XXHashAlgorithm) SetTableSize(tableSize int64) {
	X.tableSize = uint64(tableSize)
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (X *XXHashAlgorithm) HashFunc1(key []byte) int64 {
	return int64(xxhash.Sum64(key) % X.tableSize)
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (X *XXHashAlgorithm) GetTableSize() int64 {
	return int64(X.tableSize)
}
