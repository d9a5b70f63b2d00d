package models

import (
	"fmt"
	"time"
)

// Student represents a learner registered in the institution. The
// registration number is the unique key and never changes once assigned.
// The enrollment sequence keeps insertion order; it is owned exclusively
// by the student and mutated only through the enrollment service.
type Student struct {
	Person
	regNo       string
	active      bool
	enrollments []*Enrollment
}

// NewStudent constructs an active student with no enrollments.
func NewStudent(fullName, email string, dateOfBirth time.Time, regNo string) *Student {
	return &Student{
		Person: Person{FullName: fullName, Email: email, DateOfBirth: dateOfBirth},
		regNo:  regNo,
		active: true,
	}
}

// RegNo returns the immutable registration number.
func (s *Student) RegNo() string {
	return s.regNo
}

// Active reports whether the student may enroll in new courses.
func (s *Student) Active() bool {
	return s.active
}

// SetActive toggles the active flag.
func (s *Student) SetActive(active bool) {
	s.active = active
}

// Enrollments returns a copy of the enrollment sequence in insertion order.
func (s *Student) Enrollments() []*Enrollment {
	out := make([]*Enrollment, len(s.enrollments))
	copy(out, s.enrollments)
	return out
}

// AddEnrollment appends an enrollment to the sequence.
func (s *Student) AddEnrollment(e *Enrollment) {
	s.enrollments = append(s.enrollments, e)
}

// RemoveEnrollment drops the enrollment from the sequence. Removal is
// physical; there is no tombstoning.
func (s *Student) RemoveEnrollment(e *Enrollment) {
	for i, cur := range s.enrollments {
		if cur == e {
			s.enrollments = append(s.enrollments[:i], s.enrollments[i+1:]...)
			return
		}
	}
}

// ProfileDetails implements ProfileProvider.
func (s *Student) ProfileDetails() string {
	return fmt.Sprintf("Student: %s (Reg No: %s)", s.FullName, s.regNo)
}

func (s *Student) String() string {
	return s.ProfileDetails()
}
