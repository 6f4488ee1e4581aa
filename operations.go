package courseplanner

import (
	"fmt"
	"github.com/gostonefire/courseplanner/internal/model"
	"github.com/gostonefire/courseplanner/internal/storage/separatechaining"
)

// Insert - Adds a course as the head of the chain its course number hashes to.
// It never fails and never replaces anything, inserting a course number that is already present gives two
// coexisting records where the latest one is found by Search.
//   - course is the course to add, the hash map stores a copy
func (C *CourseHashMap) Insert(course Course) {
	C.tableManagement.Set(course)
}

// Search - Gets the most recently inserted course with the given course number.
//   - courseNumber is the exact course number to look for
//
// It returns:
//   - course is a copy of the matching course if found
//   - err is of type NoRecordFound if there is no course with that number
func (C *CourseHashMap) Search(courseNumber string) (course Course, err error) {
	course, found := C.tableManagement.Get(courseNumber)
	if !found {
		err = NoRecordFound{msg: fmt.Sprintf("course %s not found", courseNumber)}
	}

	return
}

// GetAllCourses - Returns a copy of every stored course, bucket by bucket in bucket number order, and within each
// bucket from the most recently inserted. Callers that need a stable order must sort the result.
func (C *CourseHashMap) GetAllCourses() (courses []Course, err error) {
	courses = make([]Course, 0, C.Len())
	var record model.Course

	err = C.walkBuckets(func(_ int64, chain *separatechaining.ChainRecords) (err error) {
		for chain.HasNext() {
			record, err = chain.Next()
			if err != nil {
				return
			}
			courses = append(courses, record)
		}
		return
	})

	return
}

// Len - Returns the number of stored records, duplicates included
func (C *CourseHashMap) Len() int64 {
	return C.tableManagement.GetStorageParameters().Records
}

// GetBucketNo - Returns which bucket number that the given course number results in
//   - courseNumber is the identifier of a course
func (C *CourseHashMap) GetBucketNo(courseNumber string) (bucketNo int64, err error) {
	bucketNo, err = C.tableManagement.BucketNo(courseNumber)
	if err != nil {
		err = fmt.Errorf("received bucket number from hash algorithm is outside permitted range: %w", err)
	}

	return
}

// Stat - Walks through the entire set of buckets and produce a HashMapStat struct with information.
// The HashMapStat.BucketDistribution slice has one entry per bucket which can be memory heavy for big tables.
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of records per bucket, false will set HashMapStat.BucketDistribution to nil.
func (C *CourseHashMap) Stat(includeDistribution bool) (hashMapStat *HashMapStat, err error) {
	var hms HashMapStat
	sp := C.tableManagement.GetStorageParameters()

	if includeDistribution {
		hms.BucketDistribution = make([]int64, sp.NumberOfBuckets)
	}

	err = C.walkBuckets(func(bucketNo int64, chain *separatechaining.ChainRecords) error {
		n := int64(chain.Len())
		if n == 0 {
			return nil
		}

		hms.Records += n
		hms.UsedBuckets++
		if n > hms.LongestChain {
			hms.LongestChain = n
		}
		if includeDistribution {
			hms.BucketDistribution[bucketNo] = n
		}
		return nil
	})
	if err != nil {
		return
	}

	hms.LoadFactor = float64(hms.Records) / float64(sp.NumberOfBuckets)
	hashMapStat = &hms

	return
}

// walkBuckets - Calls fn with a chain iterator for every bucket in bucket number order
func (C *CourseHashMap) walkBuckets(fn func(bucketNo int64, chain *separatechaining.ChainRecords) error) (err error) {
	var chain *separatechaining.ChainRecords
	nBuckets := C.tableManagement.GetStorageParameters().NumberOfBuckets
	for i := int64(0); i < nBuckets; i++ {
		chain, err = C.tableManagement.GetBucket(i)
		if err != nil {
			err = fmt.Errorf("error while getting bucket %d: %w", i, err)
			return
		}
		if err = fn(i, chain); err != nil {
			return
		}
	}

	return
}
