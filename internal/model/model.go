package model

import "github.com/gostonefire/courseplanner/hashfunc"

// Course - Represents one course record
//   - Number is the course number, used as key when hashing and searching
//   - Title is the course title
//   - Prerequisites is the ordered list of course numbers required before taking the course
type Course struct {
	Number        string
	Title         string
	Prerequisites []string
}

// Clone - Returns a copy of the course that shares no memory with the original
func (C Course) Clone() Course {
	c := Course{Number: C.Number, Title: C.Title}
	if C.Prerequisites != nil {
		c.Prerequisites = make([]string, len(C.Prerequisites))
		_ = copy(c.Prerequisites, C.Prerequisites)
	}

	return c
}

// StorageParameters - Represents parameters specific for any implementation of storage
type StorageParameters struct {
	NumberOfBuckets   int64
	Records           int64
	InternalAlgorithm bool
}

// CRTConf - Is a struct to be passed in the call to NewSCTable and contains configuration that affects
// table creation.
//   - NumberOfBuckets is the fixed number of buckets (chains) in the table
//   - HashAlgorithm is the hash function to use, nil selects the internal polynomial hash
type CRTConf struct {
	NumberOfBuckets int64
	HashAlgorithm   hashfunc.HashAlgorithm
}
