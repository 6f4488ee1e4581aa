package ingest

import (
	"errors"
	"github.com/gostonefire/courseplanner/internal/conf"
	"github.com/gostonefire/courseplanner/internal/model"
	"github.com/gostonefire/courseplanner/internal/utils"
	"strings"
)

var errBlankLine = errors.New("blank line")

// parseLine - Turns one line, without its line feed, into a course. A line ending right after the first
// separator has no title field at all and is ErrInvalidFormat, while a title of only whitespace is ErrEmptyField.
func parseLine(line string) (course model.Course, err error) {
	if utils.Trim(line) == "" {
		err = errBlankLine
		return
	}

	fields := utils.SplitFields(line)
	if len(fields) < 2 || len(fields) == 2 && strings.HasSuffix(line, conf.FieldSeparator) {
		err = ErrInvalidFormat
		return
	}

	course.Number = fields[0]
	course.Title = fields[1]
	if course.Number == "" || course.Title == "" {
		err = ErrEmptyField
		return
	}

	course.Prerequisites = utils.DropEmpty(fields[2:])

	return
}
