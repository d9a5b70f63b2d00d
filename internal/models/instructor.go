package models

import (
	"fmt"
	"time"
)

// Instructor represents a member of the teaching staff. The employee id
// is the unique key. The assigned course list is derived convenience
// state; the authoritative link is Course -> Instructor.
type Instructor struct {
	Person
	ID         string
	EmployeeID string
	Department string

	assigned []*Course
}

// NewInstructor constructs an instructor with no assigned courses.
func NewInstructor(id, fullName, email string, dateOfBirth time.Time, employeeID, department string) *Instructor {
	return &Instructor{
		Person:     Person{FullName: fullName, Email: email, DateOfBirth: dateOfBirth},
		ID:         id,
		EmployeeID: employeeID,
		Department: department,
	}
}

// AssignCourse records a course on the derived assignment list.
func (i *Instructor) AssignCourse(c *Course) {
	i.assigned = append(i.assigned, c)
}

// AssignedCourses returns a copy of the derived course list.
func (i *Instructor) AssignedCourses() []*Course {
	out := make([]*Course, len(i.assigned))
	copy(out, i.assigned)
	return out
}

// ProfileDetails implements ProfileProvider.
func (i *Instructor) ProfileDetails() string {
	return fmt.Sprintf("Instructor: %s (ID: %s, Dept: %s)", i.FullName, i.EmployeeID, i.Department)
}

func (i *Instructor) String() string {
	return i.FullName
}
