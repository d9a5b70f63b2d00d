package service

import (
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/ccrm/internal/models"
	"github.com/noah-isme/ccrm/internal/store"
	appErrors "github.com/noah-isme/ccrm/pkg/errors"
)

// AddInstructorRequest describes instructor creation input.
type AddInstructorRequest struct {
	ID          string    `validate:"required"`
	FullName    string    `validate:"required"`
	Email       string    `validate:"required,email"`
	DateOfBirth time.Time `validate:"required,notfuture"`
	EmployeeID  string    `validate:"required,empid"`
	Department  string    `validate:"required"`
}

// InstructorService manages the instructor table.
type InstructorService struct {
	instructors *store.Store[*models.Instructor]
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewInstructorService constructs InstructorService.
func NewInstructorService(instructors *store.Store[*models.Instructor], validate *validator.Validate, logger *zap.Logger) *InstructorService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InstructorService{instructors: instructors, validator: validate, logger: logger}
}

// Add validates the request and stores a new instructor keyed by employee id.
func (s *InstructorService) Add(req AddInstructorRequest) (*models.Instructor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid instructor data")
	}
	instructor := models.NewInstructor(req.ID, req.FullName, req.Email, req.DateOfBirth, req.EmployeeID, req.Department)
	s.instructors.Put(instructor.EmployeeID, instructor)
	return instructor, nil
}

// Save stores an already-constructed instructor. Used by the import path.
func (s *InstructorService) Save(instructor *models.Instructor) {
	if instructor == nil || instructor.EmployeeID == "" {
		s.logger.Warn("ignoring instructor with no employee id")
		return
	}
	s.instructors.Put(instructor.EmployeeID, instructor)
}

// FindByEmployeeID looks up an instructor by employee id.
func (s *InstructorService) FindByEmployeeID(employeeID string) (*models.Instructor, error) {
	instructor, ok := s.instructors.Get(employeeID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "instructor not found")
	}
	return instructor, nil
}

// List returns all instructors in insertion order.
func (s *InstructorService) List() []*models.Instructor {
	return s.instructors.Values()
}
