//go:build stress

package test

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/gostonefire/courseplanner"
	"github.com/gostonefire/courseplanner/internal/hash"
	"github.com/gostonefire/courseplanner/internal/ingest"
	"github.com/gostonefire/courseplanner/internal/utils"
	"github.com/stretchr/testify/assert"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func createAndStoreTestdata(amount, offset int, fileName string) error {
	f, err := os.OpenFile(fileName, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	w := bufio.NewWriter(f)
	for i := offset; i < offset+amount; i++ {
		fields := []string{fmt.Sprintf("C%07d", i), fmt.Sprintf("Course title %d", rand.Int())}
		for p := rand.Intn(4); p > 0; p-- {
			fields = append(fields, fmt.Sprintf("C%07d", rand.Intn(offset+amount)))
		}
		_, err = fmt.Fprintln(w, strings.Join(fields, ", "))
		if err != nil {
			return err
		}
	}

	return w.Flush()
}

func getTestdata(fileName string, chm *courseplanner.CourseHashMap, shouldNotExist bool) error {
	f, err := os.OpenFile(fileName, os.O_RDONLY, 0644)
	if err != nil {
		return err
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	var line string
	var course courseplanner.Course
	fr := bufio.NewReader(f)

	for {
		line, err = fr.ReadString('\n')
		if errors.Is(err, io.EOF) {
			break
		}
		fields := utils.SplitFields(line)
		course, err = chm.Search(fields[0])
		if shouldNotExist {
			if err == nil {
				return fmt.Errorf("search should not find %s", fields[0])
			} else if !errors.Is(err, courseplanner.NoRecordFound{}) {
				return err
			}
		} else {
			if err != nil {
				return err
			}
			if course.Title != fields[1] || strings.Join(course.Prerequisites, ",") != strings.Join(utils.DropEmpty(fields[2:]), ",") {
				return fmt.Errorf("wrong record for %s", fields[0])
			}
		}
	}

	return nil
}

type TestCaseStressTest struct {
	hashName  string
	buckets   int64
	nTestdata int
}

func TestStress(t *testing.T) {
	t.Run("stress tests for all hash algorithms", func(t *testing.T) {
		// Prepare
		tests := []TestCaseStressTest{
			{hashName: hash.Polynomial, buckets: 179, nTestdata: 200000},
			{hashName: hash.CRC32, buckets: 100003, nTestdata: 200000},
			{hashName: hash.XXHash, buckets: 65536, nTestdata: 200000},
		}

		for _, test := range tests {
			t.Run(fmt.Sprintf("handles lots of courses, copies and assignments for %s", test.hashName), func(t *testing.T) {
				// Prepare test data
				dir := t.TempDir()
				testdata1 := filepath.Join(dir, "testdata_1.txt")
				testdata2 := filepath.Join(dir, "testdata_2.txt")
				rand.Seed(123)
				err := createAndStoreTestdata(test.nTestdata, 0, testdata1)
				assert.NoError(t, err, "create testdata 1")
				err = createAndStoreTestdata(test.nTestdata, test.nTestdata, testdata2)
				assert.NoError(t, err, "create testdata 2")

				// Prepare course hash map
				hashAlgorithm, err := hash.NewHashAlgorithm(test.hashName, test.buckets)
				assert.NoError(t, err, "create hash algorithm")
				chm, _, err := courseplanner.NewCourseHashMap(test.buckets, hashAlgorithm)
				assert.NoError(t, err, "create course hash map")

				// Load first set and keep a copy of it
				report, err := ingest.LoadCourseData(testdata1, chm)
				assert.NoError(t, err, "load test set 1")
				assert.Equal(t, test.nTestdata, report.Loaded, "every line of test set 1 loaded")

				cp, err := chm.Copy()
				assert.NoError(t, err, "copy course hash map")

				// Load second set into the original only
				report, err = ingest.LoadCourseData(testdata2, chm)
				assert.NoError(t, err, "load test set 2")
				assert.Equal(t, test.nTestdata, report.Loaded, "every line of test set 2 loaded")

				// Check both test sets
				err = getTestdata(testdata1, chm, false)
				assert.NoError(t, err, "search test set 1")
				err = getTestdata(testdata2, chm, false)
				assert.NoError(t, err, "search test set 2")
				err = getTestdata(testdata2, cp, true)
				assert.NoError(t, err, "search test set 2 in copy, should not exist")

				// Assign the copy back
				err = chm.Assign(cp)
				assert.NoError(t, err, "assign copy")
				err = getTestdata(testdata2, chm, true)
				assert.NoError(t, err, "search test set 2 after assign, should not exist")

				// Get stats
				stat, err := chm.Stat(true)
				assert.NoError(t, err, "get stat")
				assert.Equal(t, int64(test.nTestdata), stat.Records, "correct number of records")
				assert.Len(t, stat.BucketDistribution, int(test.buckets), "one entry per bucket")

				courses, err := chm.GetAllCourses()
				assert.NoError(t, err, "enumerate")
				assert.Len(t, courses, test.nTestdata, "every course enumerated")
			})
		}
	})
}
