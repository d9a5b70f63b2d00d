package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Enrollment links one student to one course, optionally graded. The
// student and course references and the creation timestamp are fixed at
// construction; the grade is the only mutable field. Enrollments are
// created and destroyed exclusively by the enrollment service.
type Enrollment struct {
	id         string
	student    *Student
	course     *Course
	grade      *Grade
	enrolledAt time.Time
}

// NewEnrollment creates an ungraded enrollment stamped with the current time.
func NewEnrollment(student *Student, course *Course) (*Enrollment, error) {
	if student == nil || course == nil {
		return nil, fmt.Errorf("enrollment requires both a student and a course")
	}
	return &Enrollment{
		id:         uuid.NewString(),
		student:    student,
		course:     course,
		enrolledAt: time.Now(),
	}, nil
}

// ID returns the enrollment identifier.
func (e *Enrollment) ID() string {
	return e.id
}

// Student returns the enrolled student.
func (e *Enrollment) Student() *Student {
	return e.student
}

// Course returns the enrolled course.
func (e *Enrollment) Course() *Course {
	return e.course
}

// Grade returns the assigned grade, or nil while ungraded.
func (e *Enrollment) Grade() *Grade {
	return e.grade
}

// SetGrade assigns the grade.
func (e *Enrollment) SetGrade(g Grade) {
	e.grade = &g
}

// EnrolledAt returns the immutable creation timestamp.
func (e *Enrollment) EnrolledAt() time.Time {
	return e.enrolledAt
}

// Summary renders the single transcript line for this enrollment.
func (e *Enrollment) Summary() string {
	gradeText := "Not Graded"
	if e.grade != nil {
		gradeText = e.grade.String()
	}
	return fmt.Sprintf("Course: %-25s | Grade: %-12s | Credits: %d | Enrolled on: %s",
		fmt.Sprintf("%s (%s)", e.course.Title(), e.course.Code()),
		gradeText,
		e.course.Credits(),
		e.enrolledAt.Format("2006-01-02"),
	)
}
