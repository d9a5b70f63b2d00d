package service

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/ccrm/internal/models"
	"github.com/noah-isme/ccrm/internal/store"
	appErrors "github.com/noah-isme/ccrm/pkg/errors"
)

// AddCourseRequest describes course creation input.
type AddCourseRequest struct {
	Code       string          `validate:"required,coursecode"`
	Title      string          `validate:"required"`
	Credits    int             `validate:"gte=1,lte=10"`
	Department string          `validate:"required"`
	Semester   models.Semester `validate:"required,oneof=FALL INTERIM WINTER"`
}

// CourseService manages the course table and the course-instructor link.
type CourseService struct {
	courses     *store.Store[*models.Course]
	instructors *store.Store[*models.Instructor]
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewCourseService constructs CourseService.
func NewCourseService(courses *store.Store[*models.Course], instructors *store.Store[*models.Instructor], validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{courses: courses, instructors: instructors, validator: validate, logger: logger}
}

// Add validates the request and stores a new course keyed by code.
func (s *CourseService) Add(req AddCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid course data")
	}
	course := models.NewCourse(req.Code, req.Title).
		Credits(req.Credits).
		Department(req.Department).
		Semester(req.Semester).
		Build()
	s.courses.Put(course.Code(), course)
	return course, nil
}

// Save stores an already-constructed course. Used by the import path.
func (s *CourseService) Save(course *models.Course) {
	if course == nil || course.Code() == "" {
		s.logger.Warn("ignoring course with no code")
		return
	}
	s.courses.Put(course.Code(), course)
}

// FindByCode looks up a course by its code.
func (s *CourseService) FindByCode(code string) (*models.Course, error) {
	course, ok := s.courses.Get(code)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	return course, nil
}

// List returns all courses in insertion order.
func (s *CourseService) List() []*models.Course {
	return s.courses.Values()
}

// ByDepartment returns courses in the department, matched case-insensitively.
func (s *CourseService) ByDepartment(department string) []*models.Course {
	var out []*models.Course
	for _, course := range s.courses.Values() {
		if strings.EqualFold(course.Department(), department) {
			out = append(out, course)
		}
	}
	return out
}

// BySemester returns courses offered in the given semester.
func (s *CourseService) BySemester(semester models.Semester) []*models.Course {
	var out []*models.Course
	for _, course := range s.courses.Values() {
		if course.Semester() == semester {
			out = append(out, course)
		}
	}
	return out
}

// AssignInstructor sets the authoritative Course -> Instructor link and
// records the derived back-reference on the instructor.
func (s *CourseService) AssignInstructor(code, employeeID string) error {
	course, ok := s.courses.Get(code)
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	instructor, ok := s.instructors.Get(employeeID)
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "instructor not found")
	}
	course.SetInstructor(instructor)
	instructor.AssignCourse(course)
	s.logger.Info("instructor assigned",
		zap.String("course", code),
		zap.String("employee_id", employeeID))
	return nil
}
