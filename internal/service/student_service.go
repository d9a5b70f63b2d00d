package service

import (
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/ccrm/internal/models"
	"github.com/noah-isme/ccrm/internal/store"
	appErrors "github.com/noah-isme/ccrm/pkg/errors"
)

// AddStudentRequest describes student creation input.
type AddStudentRequest struct {
	FullName    string    `validate:"required"`
	Email       string    `validate:"required,email"`
	DateOfBirth time.Time `validate:"required,notfuture"`
	RegNo       string    `validate:"required,regno"`
}

// UpdateStudentRequest carries the mutable student fields. Empty fields
// are left unchanged; the registration number cannot be updated.
type UpdateStudentRequest struct {
	FullName string
	Email    string `validate:"omitempty,email"`
}

// StudentService manages the student table.
type StudentService struct {
	students  *store.Store[*models.Student]
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs StudentService.
func NewStudentService(students *store.Store[*models.Student], validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{students: students, validator: validate, logger: logger}
}

// Add validates the request and stores a new active student. Adding an
// existing registration number replaces the stored entity, matching the
// store's overwrite-on-same-key contract.
func (s *StudentService) Add(req AddStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid student data")
	}
	if _, exists := s.students.Get(req.RegNo); exists {
		s.logger.Warn("replacing existing student", zap.String("reg_no", req.RegNo))
	}
	student := models.NewStudent(req.FullName, req.Email, req.DateOfBirth, req.RegNo)
	s.students.Put(student.RegNo(), student)
	return student, nil
}

// Save stores an already-constructed student under its registration
// number. Used by the import path, which builds entities directly.
func (s *StudentService) Save(student *models.Student) {
	if student == nil || student.RegNo() == "" {
		s.logger.Warn("ignoring student with no registration number")
		return
	}
	s.students.Put(student.RegNo(), student)
}

// FindByRegNo looks up a student by registration number.
func (s *StudentService) FindByRegNo(regNo string) (*models.Student, error) {
	student, ok := s.students.Get(regNo)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return student, nil
}

// List returns all students in insertion order.
func (s *StudentService) List() []*models.Student {
	return s.students.Values()
}

// Update applies the mutable profile fields to an existing student.
func (s *StudentService) Update(regNo string, req UpdateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid student data")
	}
	student, err := s.FindByRegNo(regNo)
	if err != nil {
		return nil, err
	}
	if req.FullName != "" {
		student.FullName = req.FullName
	}
	if req.Email != "" {
		student.Email = req.Email
	}
	return student, nil
}

// Deactivate clears the active flag. Existing enrollments are untouched;
// only new enrollments are blocked.
func (s *StudentService) Deactivate(regNo string) error {
	student, err := s.FindByRegNo(regNo)
	if err != nil {
		return err
	}
	student.SetActive(false)
	s.logger.Info("student deactivated", zap.String("reg_no", regNo))
	return nil
}
