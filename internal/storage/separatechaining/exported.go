package separatechaining

import (
	"fmt"
	"github.com/gostonefire/courseplanner/hashfunc"
	"github.com/gostonefire/courseplanner/internal/conf"
	"github.com/gostonefire/courseplanner/internal/hash"
	"github.com/gostonefire/courseplanner/internal/model"
)

// SCTable - Represents an in memory implementation of the Separate Chaining Collision Resolution Technique.
// It has a fixed number of buckets where each bucket holds a chain of course records. A chain is kept in
// insertion order internally and is read from its tail, so the most recently inserted record is the chain head.
type SCTable struct {
	buckets           [][]model.Course
	numberOfBuckets   int64
	records           int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
}

// NewSCTable - Returns a pointer to a new instance of the Separate Chaining table implementation.
//   - crtConf is a model.CRTConf struct providing configuration parameters affecting the table
//
// It returns:
//   - scTable which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewSCTable(crtConf model.CRTConf) (scTable *SCTable, err error) {
	if crtConf.NumberOfBuckets <= 0 || crtConf.NumberOfBuckets > conf.MaxTableSize {
		err = fmt.Errorf("number of buckets must be between 1 and %d, got %d", conf.MaxTableSize, crtConf.NumberOfBuckets)
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if crtConf.HashAlgorithm == nil {
		crtConf.HashAlgorithm = hash.NewPolynomialHashAlgorithm(crtConf.NumberOfBuckets)
		internalAlg = true
	} else {
		crtConf.HashAlgorithm.SetTableSize(crtConf.NumberOfBuckets)
	}

	numberOfBuckets := crtConf.HashAlgorithm.GetTableSize()
	if numberOfBuckets <= 0 || numberOfBuckets > conf.MaxTableSize {
		err = fmt.Errorf("hash algorithm reports an invalid table size of %d", numberOfBuckets)
		return
	}

	scTable = &SCTable{
		buckets:           make([][]model.Course, numberOfBuckets),
		numberOfBuckets:   numberOfBuckets,
		hashAlgorithm:     crtConf.HashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from SCTable
func (S *SCTable) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		NumberOfBuckets:   S.numberOfBuckets,
		Records:           S.records,
		InternalAlgorithm: S.internalAlgorithm,
	}

	return
}

// GetHashAlgorithm - Returns the hash algorithm used to select buckets
func (S *SCTable) GetHashAlgorithm() hashfunc.HashAlgorithm {
	return S.hashAlgorithm
}

// BucketNo - Returns the bucket number as given by the hash algorithm for a key.
// It returns an error if the hash algorithm produces a number outside the table.
func (S *SCTable) BucketNo(key string) (bucketNo int64, err error) {
	bucketNo = S.hashAlgorithm.HashFunc1([]byte(key))
	if bucketNo < 0 || bucketNo >= S.numberOfBuckets {
		err = fmt.Errorf("bucket number %d from hash algorithm is outside permitted range", bucketNo)
	}

	return
}

// GetBucket - Returns an iterator over the chain of the given bucket, starting at the chain head
//   - bucketNo is the identifier of a bucket, the number can be retrieved by call to BucketNo
//
// It returns:
//   - chain is a ChainRecords iterator over the records in the bucket
//   - err is standard error
func (S *SCTable) GetBucket(bucketNo int64) (chain *ChainRecords, err error) {
	if bucketNo < 0 || bucketNo >= S.numberOfBuckets {
		err = fmt.Errorf("bucket number %d is outside table of %d buckets", bucketNo, S.numberOfBuckets)
		return
	}

	chain = newChainRecords(S.buckets[bucketNo])

	return
}

// Get - Gets the first record in chain order (most recently set) that has the given key.
//   - key is the course number to look for
//
// It returns:
//   - record is a copy of the matching record if found
//   - found is false if no record with the key exists
func (S *SCTable) Get(key string) (record model.Course, found bool) {
	chain := S.buckets[S.bucketIndex(key)]
	for i := len(chain) - 1; i >= 0; i-- {
		if chain[i].Number == key {
			record = chain[i].Clone()
			found = true
			return
		}
	}

	return
}

// Set - Adds a record as the head of the chain in the bucket its key hashes to.
// Existing records with the same key are left in place, so duplicates coexist.
//   - record is the record to add, a copy is stored
func (S *SCTable) Set(record model.Course) {
	idx := S.bucketIndex(record.Number)
	S.buckets[idx] = append(S.buckets[idx], record.Clone())
	S.records++
}

// Clear - Releases the chains in every bucket. The number of buckets stays the same.
func (S *SCTable) Clear() {
	for i := range S.buckets {
		S.buckets[i] = nil
	}
	S.records = 0
}
