package courseplanner

import (
	"fmt"
	"github.com/gostonefire/courseplanner/hashfunc"
	"github.com/gostonefire/courseplanner/internal/conf"
	"github.com/gostonefire/courseplanner/internal/model"
	"github.com/gostonefire/courseplanner/internal/storage/separatechaining"
)

// DefaultTableSize - Number of buckets used by NewDefaultCourseHashMap
const DefaultTableSize = conf.DefaultTableSize

// Course - A course record with number, title and prerequisites
type Course = model.Course

// TableManagement - Interface for any table management implementation
type TableManagement interface {
	Get(key string) (record model.Course, found bool)
	Set(record model.Course)
	Clear()
	BucketNo(key string) (bucketNo int64, err error)
	GetBucket(bucketNo int64) (chain *separatechaining.ChainRecords, err error)
	GetStorageParameters() (params model.StorageParameters)
	GetHashAlgorithm() hashfunc.HashAlgorithm
}

// HashMapInfo - Information structure containing some information about the hash map created
//   - NumberOfBuckets is the fixed number of buckets (chains) in the hash map
//   - InternalAlgorithm is true if the internal polynomial hash algorithm is in use
type HashMapInfo struct {
	NumberOfBuckets   int64
	InternalAlgorithm bool
}

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - UsedBuckets is the number of buckets holding at least one record
//   - LongestChain is the number of records in the longest chain
//   - LoadFactor is records divided by number of buckets
//   - BucketDistribution is the number of records stored in each available bucket
type HashMapStat struct {
	Records            int64
	UsedBuckets        int64
	LongestChain       int64
	LoadFactor         float64
	BucketDistribution []int64
}

// CourseHashMap - The main implementation struct
type CourseHashMap struct {
	tableManagement TableManagement
}

// NewCourseHashMap - Returns a new, empty course hash map with a fixed number of buckets.
// The number of buckets never changes, chains just grow when more records are inserted.
//   - tableSize is the number of buckets, it must be between 1 and 2^32 - 1
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface.
//
// It returns:
//   - courseHashMap is a pointer to a CourseHashMap struct
//   - hashMapInfo is a HashMapInfo struct containing some data regarding the hash map created.
//   - err is of type InvalidConfiguration if the hash map could not be created
func NewCourseHashMap(tableSize int64, hashAlgorithm hashfunc.HashAlgorithm) (
	courseHashMap *CourseHashMap,
	hashMapInfo HashMapInfo,
	err error,
) {
	// Check if tableSize is valid
	if tableSize <= 0 {
		err = InvalidConfiguration{msg: "table size must be a positive value higher than 0 (zero)"}
		return
	}
	if tableSize > conf.MaxTableSize {
		err = InvalidConfiguration{msg: fmt.Sprintf("table size can not be higher than %d", conf.MaxTableSize)}
		return
	}

	tm, err := separatechaining.NewSCTable(model.CRTConf{
		NumberOfBuckets: tableSize,
		HashAlgorithm:   hashAlgorithm,
	})
	if err != nil {
		err = InvalidConfiguration{msg: err.Error()}
		return
	}

	courseHashMap = &CourseHashMap{tableManagement: tm}
	hashMapInfo = courseHashMap.Info()

	return
}

// NewDefaultCourseHashMap - Returns a new, empty course hash map with DefaultTableSize buckets and the internal
// polynomial hash algorithm.
// It panics if the hash map can not be created, which only happens if DefaultTableSize is invalid.
func NewDefaultCourseHashMap() *CourseHashMap {
	courseHashMap, _, err := NewCourseHashMap(DefaultTableSize, nil)
	if err != nil {
		panic(err)
	}

	return courseHashMap
}

// Info - Returns information about the hash map
func (C *CourseHashMap) Info() (hashMapInfo HashMapInfo) {
	sp := C.tableManagement.GetStorageParameters()
	hashMapInfo = HashMapInfo{
		NumberOfBuckets:   sp.NumberOfBuckets,
		InternalAlgorithm: sp.InternalAlgorithm,
	}

	return
}

// CopyEmpty - Returns a new, empty hash map with the same number of buckets and hash algorithm.
// A custom hash algorithm instance is shared, the internal one is recreated.
func (C *CourseHashMap) CopyEmpty() (courseHashMap *CourseHashMap, err error) {
	sp := C.tableManagement.GetStorageParameters()

	var hashAlgorithm hashfunc.HashAlgorithm
	if !sp.InternalAlgorithm {
		hashAlgorithm = C.tableManagement.GetHashAlgorithm()
	}

	tm, err := separatechaining.NewSCTable(model.CRTConf{
		NumberOfBuckets: sp.NumberOfBuckets,
		HashAlgorithm:   hashAlgorithm,
	})
	if err != nil {
		err = fmt.Errorf("error while creating table: %w", err)
		return
	}

	courseHashMap = &CourseHashMap{tableManagement: tm}

	return
}

// Copy - Returns a deep copy of the hash map. The copy has the same number of buckets and hash algorithm, and every
// chain holds copies of the original records in the same order. Inserting into either map never affects the other.
func (C *CourseHashMap) Copy() (courseHashMap *CourseHashMap, err error) {
	courseHashMap, err = C.CopyEmpty()
	if err != nil {
		return
	}

	err = copyRecords(C.tableManagement, courseHashMap.tableManagement, courseHashMap.Info().NumberOfBuckets)
	if err != nil {
		courseHashMap = nil
	}

	return
}

// Assign - Replaces the contents of the hash map with a deep copy of other, including its number of buckets.
// The own records are released only once the copy is complete, if copying fails the hash map is left unchanged.
// Assigning a hash map to itself does nothing.
func (C *CourseHashMap) Assign(other *CourseHashMap) (err error) {
	if C == other {
		return
	}

	courseHashMap, err := other.Copy()
	if err != nil {
		return
	}

	C.Clear()
	C.tableManagement = courseHashMap.tableManagement

	return
}

// Clear - Releases every record in every bucket. It is safe to call on an already cleared hash map.
func (C *CourseHashMap) Clear() {
	C.tableManagement.Clear()
}

// copyRecords - Reads bucket by bucket and sets each chain in the target oldest record first, so that the
// chain order of the source is reproduced.
func copyRecords(from, to TableManagement, nBuckets int64) (err error) {
	var chain *separatechaining.ChainRecords
	var record model.Course
	for i := int64(0); i < nBuckets; i++ {
		chain, err = from.GetBucket(i)
		if err != nil {
			return
		}

		records := make([]model.Course, 0, chain.Len())
		for chain.HasNext() {
			record, err = chain.Next()
			if err != nil {
				return
			}
			records = append(records, record)
		}

		for j := len(records) - 1; j >= 0; j-- {
			to.Set(records[j])
		}
	}

	return
}
