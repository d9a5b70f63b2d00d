package models

import "fmt"

// Course is a unit of study identified by its code. All fields except the
// owning instructor are fixed at construction through CourseBuilder; only
// the instructor reference may be set afterwards.
type Course struct {
	code       string
	title      string
	credits    int
	department string
	semester   Semester
	instructor *Instructor
}

// Code returns the unique course code.
func (c *Course) Code() string {
	return c.code
}

// Title returns the course title.
func (c *Course) Title() string {
	return c.title
}

// Credits returns the credit count.
func (c *Course) Credits() int {
	return c.credits
}

// Department returns the owning department.
func (c *Course) Department() string {
	return c.department
}

// Semester returns the term the course runs in.
func (c *Course) Semester() Semester {
	return c.semester
}

// Instructor returns the owning instructor, or nil when unassigned.
func (c *Course) Instructor() *Instructor {
	return c.instructor
}

// SetInstructor sets the owning instructor. This is the only mutable field.
func (c *Course) SetInstructor(i *Instructor) {
	c.instructor = i
}

func (c *Course) String() string {
	return fmt.Sprintf("Course: [%s] %s (%d credits)", c.code, c.title, c.credits)
}

// CourseBuilder assembles the immutable fields of a Course.
type CourseBuilder struct {
	course Course
}

// NewCourse starts a builder for the given code and title.
func NewCourse(code, title string) *CourseBuilder {
	return &CourseBuilder{course: Course{code: code, title: title}}
}

// Credits sets the credit count.
func (b *CourseBuilder) Credits(credits int) *CourseBuilder {
	b.course.credits = credits
	return b
}

// Department sets the owning department.
func (b *CourseBuilder) Department(department string) *CourseBuilder {
	b.course.department = department
	return b
}

// Semester sets the term the course runs in.
func (b *CourseBuilder) Semester(semester Semester) *CourseBuilder {
	b.course.semester = semester
	return b
}

// Instructor sets the initial owning instructor.
func (b *CourseBuilder) Instructor(i *Instructor) *CourseBuilder {
	b.course.instructor = i
	return b
}

// Build finalises the course.
func (b *CourseBuilder) Build() *Course {
	c := b.course
	return &c
}
