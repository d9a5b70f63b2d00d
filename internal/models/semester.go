package models

import (
	"fmt"
	"strings"
)

// Semester enumerates the academic terms a course can be offered in.
type Semester string

const (
	SemesterFall    Semester = "FALL"
	SemesterInterim Semester = "INTERIM"
	SemesterWinter  Semester = "WINTER"
)

// ParseSemester resolves a semester from its enum name, case-insensitively.
func ParseSemester(raw string) (Semester, error) {
	switch Semester(strings.ToUpper(strings.TrimSpace(raw))) {
	case SemesterFall:
		return SemesterFall, nil
	case SemesterInterim:
		return SemesterInterim, nil
	case SemesterWinter:
		return SemesterWinter, nil
	default:
		return "", fmt.Errorf("unknown semester %q", raw)
	}
}

func (s Semester) String() string {
	return string(s)
}
