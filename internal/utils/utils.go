package utils

import (
	"github.com/gostonefire/courseplanner/internal/conf"
	"strings"
)

// Trim - Removes leading and trailing spaces, tabs, carriage returns and newlines
func Trim(s string) string {
	return strings.Trim(s, conf.Whitespace)
}

// SplitFields - Splits a line on the field separator and trims every field
func SplitFields(line string) (fields []string) {
	parts := strings.Split(line, conf.FieldSeparator)
	fields = make([]string, len(parts))
	for i, p := range parts {
		fields[i] = Trim(p)
	}

	return
}

// DropEmpty - Returns the non-empty strings of a in their original order, nil if there are none
func DropEmpty(a []string) (b []string) {
	for _, s := range a {
		if s != "" {
			b = append(b, s)
		}
	}

	return
}
