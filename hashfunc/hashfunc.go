package hashfunc

// HashAlgorithm - Interface that permits an implementation using the CourseHashMap to supply a custom bucket
// selection algorithm suited for its particular distribution of course numbers.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when creating a new course hash map. Hence, if a custom hash algorithm is supplied that
	// implements this interface and the instance is already having a table size, it will be overwritten by
	// the number of buckets that was supplied when creating the course hash map.
	//   - tableSize is the number of buckets the table will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will be reported as an error by GetBucketNo.
	HashFunc1(key []byte) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting
	// The table size never changes after SetTableSize, there is no rehashing.
	GetTableSize() int64
}
