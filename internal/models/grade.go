package models

import (
	"fmt"
	"strings"
)

// Grade enumerates letter grades and their grade points. The scale runs
// S (10) down to F (0); E is the lowest passing grade.
type Grade string

const (
	GradeS Grade = "S"
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeE Grade = "E"
	GradeF Grade = "F"
)

var gradePoints = map[Grade]float64{
	GradeS: 10,
	GradeA: 9,
	GradeB: 8,
	GradeC: 7,
	GradeD: 6,
	GradeE: 5,
	GradeF: 0,
}

// ParseGrade resolves a grade from its enum name, case-insensitively.
func ParseGrade(raw string) (Grade, error) {
	g := Grade(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := gradePoints[g]; !ok {
		return "", fmt.Errorf("unknown grade %q", raw)
	}
	return g, nil
}

// Points returns the numeric grade point used for GPA arithmetic.
func (g Grade) Points() float64 {
	return gradePoints[g]
}

func (g Grade) String() string {
	return string(g)
}
