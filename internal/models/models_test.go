package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrade(t *testing.T) {
	grade, err := ParseGrade(" a ")
	require.NoError(t, err)
	assert.Equal(t, GradeA, grade)
	assert.Equal(t, 9.0, grade.Points())

	assert.Equal(t, 10.0, GradeS.Points())
	assert.Equal(t, 0.0, GradeF.Points())

	_, err = ParseGrade("X")
	require.Error(t, err)
}

func TestParseSemester(t *testing.T) {
	semester, err := ParseSemester("fall")
	require.NoError(t, err)
	assert.Equal(t, SemesterFall, semester)

	_, err = ParseSemester("SUMMER")
	require.Error(t, err)
}

func TestCourseBuilder(t *testing.T) {
	course := NewCourse("CSE0001", "Data Structures").
		Credits(4).
		Department("CSE").
		Semester(SemesterFall).
		Build()

	assert.Equal(t, "CSE0001", course.Code())
	assert.Equal(t, 4, course.Credits())
	assert.Nil(t, course.Instructor())
	assert.Equal(t, "Course: [CSE0001] Data Structures (4 credits)", course.String())
}

func TestEnrollmentSummary(t *testing.T) {
	student := NewStudent("Asha Rao", "asha@example.edu",
		time.Date(2005, 3, 14, 0, 0, 0, 0, time.UTC), "24BCE10001")
	course := NewCourse("CSE0001", "Data Structures").
		Credits(4).Department("CSE").Semester(SemesterFall).Build()

	enrollment, err := NewEnrollment(student, course)
	require.NoError(t, err)
	assert.NotEmpty(t, enrollment.ID())
	assert.Nil(t, enrollment.Grade())
	assert.Contains(t, enrollment.Summary(), "Data Structures (CSE0001)")
	assert.Contains(t, enrollment.Summary(), "Not Graded")

	enrollment.SetGrade(GradeS)
	assert.Contains(t, enrollment.Summary(), "Grade: S")

	_, err = NewEnrollment(nil, course)
	require.Error(t, err)
}

func TestStudentEnrollmentSequence(t *testing.T) {
	student := NewStudent("Asha Rao", "asha@example.edu",
		time.Date(2005, 3, 14, 0, 0, 0, 0, time.UTC), "24BCE10001")
	assert.True(t, student.Active())

	c1 := NewCourse("CSE0001", "A").Credits(3).Semester(SemesterFall).Build()
	c2 := NewCourse("CSE0002", "B").Credits(3).Semester(SemesterFall).Build()
	e1, err := NewEnrollment(student, c1)
	require.NoError(t, err)
	e2, err := NewEnrollment(student, c2)
	require.NoError(t, err)

	student.AddEnrollment(e1)
	student.AddEnrollment(e2)
	require.Len(t, student.Enrollments(), 2)
	assert.Same(t, e1, student.Enrollments()[0])

	student.RemoveEnrollment(e1)
	require.Len(t, student.Enrollments(), 1)
	assert.Same(t, e2, student.Enrollments()[0])
}
