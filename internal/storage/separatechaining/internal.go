package separatechaining

// bucketIndex - Returns the bucket a key is stored in. A custom hash algorithm returning a number outside
// the table is folded back into range so that Set and Get stay total.
func (S *SCTable) bucketIndex(key string) int64 {
	bucketNo := S.hashAlgorithm.HashFunc1([]byte(key)) % S.numberOfBuckets
	if bucketNo < 0 {
		bucketNo += S.numberOfBuckets
	}
	return bucketNo
}
