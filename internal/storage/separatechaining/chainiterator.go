package separatechaining

import (
	"fmt"
	"github.com/gostonefire/courseplanner/internal/model"
)

// ChainRecords - Is used to iterate over the records of one bucket chain, head first.
type ChainRecords struct {
	chain []model.Course
	next  int
}

// newChainRecords - Returns a pointer to a new ChainRecords struct
// The chain slice is kept in insertion order, so iteration starts at its last element.
func newChainRecords(chain []model.Course) *ChainRecords {
	return &ChainRecords{
		chain: chain,
		next:  len(chain) - 1,
	}
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (C *ChainRecords) HasNext() bool {
	return C.next >= 0
}

// Next - Returns a copy of the next record in the chain.
// It returns:
//   - record is the next record
//   - err is a standard error if there are no more records when calling this function
func (C *ChainRecords) Next() (record model.Course, err error) {
	if C.next < 0 {
		err = fmt.Errorf("no more records in chain")
		return
	}

	record = C.chain[C.next].Clone()
	C.next--

	return
}

// Len - Returns the total length of the chain, regardless of iteration progress
func (C *ChainRecords) Len() int {
	return len(C.chain)
}
