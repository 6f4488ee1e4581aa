package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/gostonefire/courseplanner/internal/model"
	"github.com/gostonefire/courseplanner/internal/pkg/logger"
	"github.com/hashicorp/go-multierror"
	"io"
	"os"
	"strings"
)

// Reasons for rejecting a line
var (
	ErrInvalidFormat   = errors.New("invalid format")
	ErrEmptyField      = errors.New("empty course number or title")
	ErrDuplicateCourse = errors.New("duplicate course number")
	ErrUnableToOpen    = errors.New("unable to open file")
)

// CourseInserter - The part of a course hash map that ingestion needs
type CourseInserter interface {
	Insert(course model.Course)
}

// LineError - Describes a rejected line, ingestion continues with the next line
type LineError struct {
	Line         int
	CourseNumber string
	Reason       error
}

// Error - Renders the rejection the way it is reported to the user
func (L *LineError) Error() string {
	if errors.Is(L.Reason, ErrDuplicateCourse) {
		return fmt.Sprintf("Warning: Duplicate course number %s at line %d", L.CourseNumber, L.Line)
	}
	if errors.Is(L.Reason, ErrEmptyField) {
		return fmt.Sprintf("Error: Empty course number or title at line %d", L.Line)
	}
	return fmt.Sprintf("Error: Invalid format at line %d", L.Line)
}

// Unwrap - Gives access to the reason through errors.Is
func (L *LineError) Unwrap() error {
	return L.Reason
}

// Report - Outcome of one ingestion pass
//   - Lines is the number of physical lines read
//   - Loaded is the number of courses inserted
//   - Skipped is the number of rejected lines, blank lines are not counted
//   - Issues holds one *LineError per rejected line, nil when nothing was rejected
type Report struct {
	Lines   int
	Loaded  int
	Skipped int
	Issues  *multierror.Error
}

// LineErrors - Returns the rejected lines in the order they were read
func (R Report) LineErrors() (lineErrors []*LineError) {
	if R.Issues == nil {
		return
	}
	for _, err := range R.Issues.Errors {
		var le *LineError
		if errors.As(err, &le) {
			lineErrors = append(lineErrors, le)
		}
	}

	return
}

// LoadCourseData - Opens a course data file and loads every valid line into table.
//   - fileName is the path to a file with lines of the form number,title[,prerequisite]*
//   - table receives one Insert per accepted line
//
// It returns:
//   - report describes what was loaded and which lines were rejected
//   - err is only set if the file could not be opened or read
func LoadCourseData(fileName string, table CourseInserter) (report Report, err error) {
	f, err := os.Open(fileName)
	if err != nil {
		err = fmt.Errorf("%w %s: %w", ErrUnableToOpen, fileName, err)
		return
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	report, err = LoadCourses(f, table)
	if err != nil {
		err = fmt.Errorf("error while reading file %s: %w", fileName, err)
		return
	}

	logger.Info().Str("file", fileName).Int("loaded", report.Loaded).Int("skipped", report.Skipped).Msg("course data loaded")

	return
}

// LoadCourses - Reads course lines from r and loads every valid line into table.
// Rejected lines are collected in the report and do not stop ingestion. Lines have no length limit. Duplicate
// detection only covers course numbers seen earlier in the same call.
func LoadCourses(r io.Reader, table CourseInserter) (report Report, err error) {
	seen := make(map[string]struct{})
	reader := bufio.NewReader(r)

	var line string
	for {
		line, err = reader.ReadString('\n')
		if line == "" && err != nil {
			break
		}
		report.Lines++

		course, lineErr := parseLine(strings.TrimSuffix(line, "\n"))
		if lineErr == nil {
			if _, ok := seen[course.Number]; ok {
				lineErr = ErrDuplicateCourse
			}
		}

		switch {
		case errors.Is(lineErr, errBlankLine):
		case lineErr != nil:
			le := &LineError{Line: report.Lines, CourseNumber: course.Number, Reason: lineErr}
			logger.Warn().Int("line", le.Line).Str("course", le.CourseNumber).Err(le.Reason).Msg("line rejected")
			report.Issues = multierror.Append(report.Issues, le)
			report.Skipped++
		default:
			table.Insert(course)
			seen[course.Number] = struct{}{}
			report.Loaded++
		}

		if err != nil {
			break
		}
	}

	if errors.Is(err, io.EOF) {
		err = nil
	}

	return
}
