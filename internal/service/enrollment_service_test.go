package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/ccrm/internal/models"
	appErrors "github.com/noah-isme/ccrm/pkg/errors"
)

func newStudent(t *testing.T) *models.Student {
	t.Helper()
	return models.NewStudent("Asha Rao", "asha@example.edu", time.Date(2005, 3, 14, 0, 0, 0, 0, time.UTC), "24BCE10001")
}

func newCourse(code, title string, credits int) *models.Course {
	return models.NewCourse(code, title).
		Credits(credits).
		Department("CSE").
		Semester(models.SemesterFall).
		Build()
}

func TestEnrollmentServiceEnrollDuplicate(t *testing.T) {
	svc := NewEnrollmentService(0, zap.NewNop())
	student := newStudent(t)
	course := newCourse("CSE0001", "Data Structures", 4)

	_, err := svc.Enroll(student, course)
	require.NoError(t, err)

	// Matching is by course code, not object identity.
	sameCode := newCourse("CSE0001", "Data Structures", 4)
	_, err = svc.Enroll(student, sameCode)
	require.ErrorIs(t, err, appErrors.ErrDuplicateEnrollment)
	assert.Len(t, student.Enrollments(), 1)
}

func TestEnrollmentServiceCreditLimit(t *testing.T) {
	svc := NewEnrollmentService(0, zap.NewNop())
	student := newStudent(t)

	for i, credits := range []int{10, 10, 7} {
		course := newCourse(fmt.Sprintf("CSE%04d", i+1), "Course", credits)
		_, err := svc.Enroll(student, course)
		require.NoError(t, err)
	}

	_, err := svc.Enroll(student, newCourse("CSE0009", "One Too Many", 4))
	require.ErrorIs(t, err, appErrors.ErrCreditLimitExceeded)

	// Failed enroll must leave prior state unchanged.
	assert.Len(t, student.Enrollments(), 3)
	total := 0
	for _, e := range student.Enrollments() {
		total += e.Course().Credits()
	}
	assert.Equal(t, 27, total)
}

func TestEnrollmentServiceConfigurableCeiling(t *testing.T) {
	svc := NewEnrollmentService(8, zap.NewNop())
	student := newStudent(t)

	_, err := svc.Enroll(student, newCourse("CSE0001", "A", 4))
	require.NoError(t, err)
	_, err = svc.Enroll(student, newCourse("CSE0002", "B", 4))
	require.NoError(t, err)
	_, err = svc.Enroll(student, newCourse("CSE0003", "C", 1))
	require.ErrorIs(t, err, appErrors.ErrCreditLimitExceeded)
}

func TestEnrollmentServiceUnenrollSoftFails(t *testing.T) {
	svc := NewEnrollmentService(0, zap.NewNop())
	student := newStudent(t)
	course := newCourse("CSE0001", "Data Structures", 4)

	assert.False(t, svc.Unenroll(student, course))

	_, err := svc.Enroll(student, course)
	require.NoError(t, err)
	assert.True(t, svc.Unenroll(student, course))
	assert.Empty(t, student.Enrollments())

	// A second unenroll is a benign no-op again.
	assert.False(t, svc.Unenroll(student, course))
}

func TestEnrollmentServiceAssignGradeHardFails(t *testing.T) {
	svc := NewEnrollmentService(0, zap.NewNop())
	student := newStudent(t)
	course := newCourse("CSE0001", "Data Structures", 4)

	err := svc.AssignGrade(student, course, models.GradeA)
	require.ErrorIs(t, err, appErrors.ErrNotEnrolled)

	_, err = svc.Enroll(student, course)
	require.NoError(t, err)
	require.NoError(t, svc.AssignGrade(student, course, models.GradeA))

	enrollment := student.Enrollments()[0]
	require.NotNil(t, enrollment.Grade())
	assert.Equal(t, models.GradeA, *enrollment.Grade())
}

func TestEnrollmentServiceCalculateGPA(t *testing.T) {
	svc := NewEnrollmentService(0, zap.NewNop())
	student := newStudent(t)

	assert.Equal(t, 0.0, svc.CalculateGPA(student))

	cse1 := newCourse("CSE0001", "Data Structures", 4)
	cse2 := newCourse("CSE0002", "Operating Systems", 4)
	_, err := svc.Enroll(student, cse1)
	require.NoError(t, err)
	_, err = svc.Enroll(student, cse2)
	require.NoError(t, err)

	// Only ungraded enrollments: still 0.0, not an error state.
	assert.Equal(t, 0.0, svc.CalculateGPA(student))

	// A carries 9 points; the ungraded course is excluded from both
	// numerator and denominator, so the GPA is 9*4/4 = 9.0.
	require.NoError(t, svc.AssignGrade(student, cse1, models.GradeA))
	assert.InDelta(t, 9.0, svc.CalculateGPA(student), 1e-9)

	require.NoError(t, svc.AssignGrade(student, cse2, models.GradeS))
	assert.InDelta(t, 9.5, svc.CalculateGPA(student), 1e-9)
}

func TestEnrollmentServiceTranscript(t *testing.T) {
	svc := NewEnrollmentService(0, zap.NewNop())
	student := newStudent(t)

	empty := svc.Transcript(student)
	assert.Contains(t, empty, "No courses enrolled.")
	assert.Contains(t, empty, "Cumulative GPA: 0.00")

	cse1 := newCourse("CSE0001", "Data Structures", 4)
	cse2 := newCourse("CSE0002", "Operating Systems", 4)
	_, err := svc.Enroll(student, cse1)
	require.NoError(t, err)
	_, err = svc.Enroll(student, cse2)
	require.NoError(t, err)
	require.NoError(t, svc.AssignGrade(student, cse1, models.GradeA))

	transcript := svc.Transcript(student)
	assert.Contains(t, transcript, "Student: Asha Rao (Reg No: 24BCE10001)")
	assert.Contains(t, transcript, "Data Structures (CSE0001)")
	assert.Contains(t, transcript, "Not Graded")
	assert.Contains(t, transcript, "Cumulative GPA: 9.00")

	// Lines follow enrollment insertion order.
	assert.Less(t,
		strings.Index(transcript, "CSE0001"),
		strings.Index(transcript, "CSE0002"))

	// Pure read: rendering twice yields identical output and no mutation.
	assert.Equal(t, transcript, svc.Transcript(student))
	assert.Len(t, student.Enrollments(), 2)
}
