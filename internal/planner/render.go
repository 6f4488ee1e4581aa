package planner

import (
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/gostonefire/courseplanner"
	"github.com/gostonefire/courseplanner/internal/conf"
	"io"
	"sort"
	"strings"
)

var rule = strings.Repeat("-", conf.RuleWidth)

// SortedCourses - Returns every course of the table sorted by course number
func SortedCourses(table *courseplanner.CourseHashMap) (courses []courseplanner.Course, err error) {
	courses, err = table.GetAllCourses()
	if err != nil {
		return
	}

	sort.SliceStable(courses, func(i, j int) bool {
		return courses[i].Number < courses[j].Number
	})

	return
}

// PrintCourseList - Prints all courses sorted by course number, or a notice if there are none
func PrintCourseList(out io.Writer, table *courseplanner.CourseHashMap) (err error) {
	courses, err := SortedCourses(table)
	if err != nil {
		return
	}

	if len(courses) == 0 {
		_, err = fmt.Fprintln(out, "\nNo courses available.")
		return
	}

	var b strings.Builder
	b.WriteString("\nCourse List (Sorted Alphanumerically):\n")
	b.WriteString(rule + "\n")
	for _, c := range courses {
		fmt.Fprintf(&b, "%s: %s\n", c.Number, c.Title)
	}
	b.WriteString(rule + "\n")

	_, err = io.WriteString(out, b.String())

	return
}

// PrintCourseInfo - Prints number, title and prerequisites of one course, or a not found message
func PrintCourseInfo(out io.Writer, table *courseplanner.CourseHashMap, courseNumber string) (err error) {
	course, err := table.Search(courseNumber)
	if err != nil {
		_, err = fmt.Fprintf(out, "Course '%s' not found!\n", courseNumber)
		return
	}

	var b strings.Builder
	b.WriteString("\nCourse Details:\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Course Number: %s\n", course.Number)
	fmt.Fprintf(&b, "Course Title: %s\n", course.Title)
	b.WriteString("Prerequisites: ")
	if len(course.Prerequisites) == 0 {
		b.WriteString("None\n")
	} else {
		b.WriteString("\n")
		for _, p := range course.Prerequisites {
			fmt.Fprintf(&b, "  - %s\n", p)
		}
	}
	b.WriteString(rule + "\n")

	_, err = io.WriteString(out, b.String())

	return
}

// PrintStat - Prints bucket usage statistics of the table
func PrintStat(out io.Writer, table *courseplanner.CourseHashMap) (err error) {
	stat, err := table.Stat(false)
	if err != nil {
		return
	}
	info := table.Info()

	algorithm := "custom"
	if info.InternalAlgorithm {
		algorithm = "internal polynomial"
	}

	_, err = fmt.Fprintf(out,
		"Buckets: %s (%s hash)\nRecords: %s\nUsed buckets: %s\nLongest chain: %s\nLoad factor: %.3f\n",
		humanize.Comma(info.NumberOfBuckets),
		algorithm,
		humanize.Comma(stat.Records),
		humanize.Comma(stat.UsedBuckets),
		humanize.Comma(stat.LongestChain),
		stat.LoadFactor,
	)

	return
}
