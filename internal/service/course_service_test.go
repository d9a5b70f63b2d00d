package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/ccrm/internal/models"
	"github.com/noah-isme/ccrm/internal/store"
	appErrors "github.com/noah-isme/ccrm/pkg/errors"
)

func newCourseEnv() (*CourseService, *InstructorService) {
	courses := store.New[*models.Course]()
	instructors := store.New[*models.Instructor]()
	validate := NewValidator()
	return NewCourseService(courses, instructors, validate, zap.NewNop()),
		NewInstructorService(instructors, validate, zap.NewNop())
}

func validCourseRequest() AddCourseRequest {
	return AddCourseRequest{
		Code:       "CSE0001",
		Title:      "Data Structures",
		Credits:    4,
		Department: "CSE",
		Semester:   models.SemesterFall,
	}
}

func TestCourseServiceAdd(t *testing.T) {
	svc, _ := newCourseEnv()

	course, err := svc.Add(validCourseRequest())
	require.NoError(t, err)
	assert.Equal(t, "CSE0001", course.Code())
	assert.Equal(t, 4, course.Credits())
	assert.Nil(t, course.Instructor())

	found, err := svc.FindByCode("CSE0001")
	require.NoError(t, err)
	assert.Same(t, course, found)
}

func TestCourseServiceAddValidation(t *testing.T) {
	svc, _ := newCourseEnv()

	req := validCourseRequest()
	req.Code = "notacode"
	_, err := svc.Add(req)
	require.ErrorIs(t, err, appErrors.ErrValidation)

	req = validCourseRequest()
	req.Credits = 0
	_, err = svc.Add(req)
	require.ErrorIs(t, err, appErrors.ErrValidation)

	req = validCourseRequest()
	req.Semester = models.Semester("SUMMER")
	_, err = svc.Add(req)
	require.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestCourseServiceAssignInstructor(t *testing.T) {
	svc, instructors := newCourseEnv()

	course, err := svc.Add(validCourseRequest())
	require.NoError(t, err)

	instructor, err := instructors.Add(AddInstructorRequest{
		ID:          "i1",
		FullName:    "Prof. Mehta",
		Email:       "mehta@example.edu",
		DateOfBirth: time.Date(1980, 6, 1, 0, 0, 0, 0, time.UTC),
		EmployeeID:  "EMP001",
		Department:  "CSE",
	})
	require.NoError(t, err)

	require.NoError(t, svc.AssignInstructor("CSE0001", "EMP001"))
	assert.Same(t, instructor, course.Instructor())
	require.Len(t, instructor.AssignedCourses(), 1)
	assert.Same(t, course, instructor.AssignedCourses()[0])

	require.ErrorIs(t, svc.AssignInstructor("CSE9999", "EMP001"), appErrors.ErrNotFound)
	require.ErrorIs(t, svc.AssignInstructor("CSE0001", "EMP999"), appErrors.ErrNotFound)
}

func TestCourseServiceFilters(t *testing.T) {
	svc, _ := newCourseEnv()

	_, err := svc.Add(validCourseRequest())
	require.NoError(t, err)
	_, err = svc.Add(AddCourseRequest{
		Code:       "MAT0001",
		Title:      "Linear Algebra",
		Credits:    3,
		Department: "Mathematics",
		Semester:   models.SemesterWinter,
	})
	require.NoError(t, err)

	byDept := svc.ByDepartment("cse")
	require.Len(t, byDept, 1)
	assert.Equal(t, "CSE0001", byDept[0].Code())

	bySem := svc.BySemester(models.SemesterWinter)
	require.Len(t, bySem, 1)
	assert.Equal(t, "MAT0001", bySem[0].Code())

	assert.Empty(t, svc.BySemester(models.SemesterInterim))
}
