package hash

import (
	"fmt"
	"github.com/gostonefire/courseplanner/hashfunc"
)

// Names of the internally available hash algorithms
const (
	Polynomial = "polynomial"
	CRC32      = "crc32"
	XXHash     = "xxhash"
)

// NewHashAlgorithm - Returns a new instance of the internal hash algorithm with the given name.
//   - name is one of Polynomial, CRC32 or XXHash, an empty name selects Polynomial
//   - tableSize is the number of buckets to distribute over
func NewHashAlgorithm(name string, tableSize int64) (hashAlgorithm hashfunc.HashAlgorithm, err error) {
	switch name {
	case "", Polynomial:
		hashAlgorithm = NewPolynomialHashAlgorithm(tableSize)
	case CRC32:
		hashAlgorithm = NewCRC32HashAlgorithm(tableSize)
	case XXHash:
		hashAlgorithm = NewXXHashAlgorithm(tableSize)
	default:
		err = fmt.Errorf("unknown hash algorithm %q", name)
	}

	return
}

// IsKnown - Returns true if name refers to an internally available hash algorithm
func IsKnown(name string) bool {
	switch name {
	case Polynomial, CRC32, XXHash:
		return true
	}
	return false
}
