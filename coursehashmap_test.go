//go:build unit

package courseplanner

import (
	"github.com/google/go-cmp/cmp"
	"github.com/gostonefire/courseplanner/internal/hash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNewCourseHashMap(t *testing.T) {
	t.Run("creates an empty course hash map", func(t *testing.T) {
		// Execute
		chm, info, err := NewCourseHashMap(179, nil)

		// Check
		assert.NoError(t, err, "creates course hash map")
		assert.NotNil(t, chm.tableManagement, "table management is assigned")
		assert.Equal(t, int64(179), info.NumberOfBuckets, "correct number of buckets in info")
		assert.True(t, info.InternalAlgorithm, "has internal hash algorithm")

		courses, err := chm.GetAllCourses()
		assert.NoError(t, err)
		assert.Empty(t, courses, "empty enumeration")
	})

	t.Run("error of type InvalidConfiguration when table size is zero", func(t *testing.T) {
		// Execute
		chm, _, err := NewCourseHashMap(0, nil)

		// Check
		assert.ErrorIs(t, err, InvalidConfiguration{}, "get correct error")
		assert.Nil(t, chm, "no hash map returned")
	})

	t.Run("error when table size is negative or too big", func(t *testing.T) {
		_, _, err := NewCourseHashMap(-1, nil)
		assert.ErrorIs(t, err, InvalidConfiguration{})

		_, _, err = NewCourseHashMap(1<<32, nil)
		assert.ErrorIs(t, err, InvalidConfiguration{})
	})

	t.Run("accepts a custom hash algorithm", func(t *testing.T) {
		// Execute
		_, info, err := NewCourseHashMap(64, hash.NewXXHashAlgorithm(1))

		// Check
		assert.NoError(t, err)
		assert.Equal(t, int64(64), info.NumberOfBuckets, "table size given to algorithm")
		assert.False(t, info.InternalAlgorithm, "custom algorithm")
	})

	t.Run("default course hash map has 179 buckets", func(t *testing.T) {
		chm := NewDefaultCourseHashMap()
		assert.Equal(t, int64(179), chm.Info().NumberOfBuckets)
		assert.Equal(t, int64(0), chm.Len())
	})
}

func TestCourseHashMap_Copy(t *testing.T) {
	t.Run("copy is independent of the original", func(t *testing.T) {
		// Prepare
		original := NewDefaultCourseHashMap()
		original.Insert(Course{Number: "CS101", Title: "Intro to CS"})
		original.Insert(Course{Number: "CS201", Title: "Data Structures", Prerequisites: []string{"CS101"}})

		// Execute
		cp, err := original.Copy()
		require.NoError(t, err, "copies hash map")
		cp.Insert(Course{Number: "CS301", Title: "Algorithms"})
		original.Insert(Course{Number: "MATH201", Title: "Discrete Math"})

		// Check
		originalCourses, err := original.GetAllCourses()
		require.NoError(t, err)
		copyCourses, err := cp.GetAllCourses()
		require.NoError(t, err)

		assert.ElementsMatch(t, []string{"CS101", "CS201", "MATH201"}, numbers(originalCourses), "original unaffected by copy")
		assert.ElementsMatch(t, []string{"CS101", "CS201", "CS301"}, numbers(copyCourses), "copy unaffected by original")
		assert.Equal(t, original.Info(), cp.Info(), "same size and algorithm kind")
	})

	t.Run("copy keeps chain order so the latest duplicate still wins", func(t *testing.T) {
		// Prepare
		original, _, err := NewCourseHashMap(10, nil)
		require.NoError(t, err)
		original.Insert(Course{Number: "CSCI100", Title: "Old"})
		original.Insert(Course{Number: "MATH201", Title: "Discrete Math"})
		original.Insert(Course{Number: "CSCI100", Title: "New"})

		// Execute
		cp, err := original.Copy()
		require.NoError(t, err)

		// Check
		course, err := cp.Search("CSCI100")
		assert.NoError(t, err)
		assert.Equal(t, "New", course.Title, "most recent duplicate found in copy")

		originalCourses, _ := original.GetAllCourses()
		copyCourses, _ := cp.GetAllCourses()
		if diff := cmp.Diff(originalCourses, copyCourses); diff != "" {
			t.Errorf("copy enumerates differently (-original +copy):\n%s", diff)
		}
	})

	t.Run("copy shares a custom hash algorithm", func(t *testing.T) {
		// Prepare
		original, _, err := NewCourseHashMap(32, hash.NewCRC32HashAlgorithm(32))
		require.NoError(t, err)
		original.Insert(Course{Number: "CS101", Title: "Intro to CS"})

		// Execute
		cp, err := original.Copy()
		require.NoError(t, err)

		// Check
		originalBucket, _ := original.GetBucketNo("CS101")
		copyBucket, _ := cp.GetBucketNo("CS101")
		assert.Equal(t, originalBucket, copyBucket, "same bucket placement")
		assert.False(t, cp.Info().InternalAlgorithm)
	})
}

func TestCourseHashMap_Assign(t *testing.T) {
	t.Run("assign replaces contents and size", func(t *testing.T) {
		// Prepare
		target, _, err := NewCourseHashMap(10, nil)
		require.NoError(t, err)
		target.Insert(Course{Number: "OLD100", Title: "Gone"})

		source := NewDefaultCourseHashMap()
		source.Insert(Course{Number: "CS101", Title: "Intro to CS"})

		// Execute
		err = target.Assign(source)

		// Check
		assert.NoError(t, err)
		_, err = target.Search("OLD100")
		assert.ErrorIs(t, err, NoRecordFound{}, "previous records released")
		course, err := target.Search("CS101")
		assert.NoError(t, err)
		assert.Equal(t, "Intro to CS", course.Title)
		assert.Equal(t, int64(179), target.Info().NumberOfBuckets, "size taken from source")

		source.Insert(Course{Number: "CS201", Title: "Data Structures"})
		assert.Equal(t, int64(1), target.Len(), "deep copy, not shared")
	})

	t.Run("failed copy leaves the target unchanged", func(t *testing.T) {
		// Prepare
		target := NewDefaultCourseHashMap()
		target.Insert(Course{Number: "CS101", Title: "Intro to CS"})

		h := &breakableHash{}
		source, _, err := NewCourseHashMap(16, h)
		require.NoError(t, err)
		source.Insert(Course{Number: "MATH201", Title: "Discrete Math"})
		h.broken = true

		// Execute
		err = target.Assign(source)

		// Check
		assert.Error(t, err, "copy of source fails")
		course, err := target.Search("CS101")
		assert.NoError(t, err, "own records kept")
		assert.Equal(t, "Intro to CS", course.Title)
		assert.Equal(t, int64(1), target.Len())
		assert.Equal(t, int64(179), target.Info().NumberOfBuckets)
	})

	t.Run("self assignment is a no-op", func(t *testing.T) {
		// Prepare
		chm := NewDefaultCourseHashMap()
		chm.Insert(Course{Number: "CS101", Title: "Intro to CS"})

		// Execute
		err := chm.Assign(chm)

		// Check
		assert.NoError(t, err)
		assert.Equal(t, int64(1), chm.Len(), "records kept")
	})
}

func TestCourseHashMap_Clear(t *testing.T) {
	t.Run("clear releases everything and is repeatable", func(t *testing.T) {
		// Prepare
		chm := NewDefaultCourseHashMap()
		chm.Insert(Course{Number: "CS101", Title: "Intro to CS"})

		// Execute
		chm.Clear()
		chm.Clear()

		// Check
		courses, err := chm.GetAllCourses()
		assert.NoError(t, err)
		assert.Empty(t, courses)
		assert.Equal(t, int64(179), chm.Info().NumberOfBuckets, "buckets kept")
	})
}

// breakableHash - Hash algorithm that reports an invalid table size once broken, so no new table can use it
type breakableHash struct {
	tableSize int64
	broken    bool
}

func (B *breakableHash) SetTableSize(tableSize int64) { B.tableSize = tableSize }
func (B *breakableHash) HashFunc1(key []byte) int64 { return int64(len(key)) % B.tableSize }
func (B *breakableHash) GetTableSize() int64 {
	if B.broken {
		return 0
	}
	return B.tableSize
}

func numbers(courses []Course) []string {
	r := make([]string, len(courses))
	for i, c := range courses {
		r[i] = c.Number
	}
	return r
}
