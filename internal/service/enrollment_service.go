package service

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/ccrm/internal/models"
	appErrors "github.com/noah-isme/ccrm/pkg/errors"
)

// DefaultMaxCredits is the ceiling on summed course credits a student may
// carry concurrently. The sum spans every attached enrollment regardless
// of semester.
const DefaultMaxCredits = 27

// EnrollmentService enforces the enrollment business rules. Duplicate and
// credit checks are re-derived from the student's live enrollment state on
// every call; nothing is cached.
//
// The failure contract is deliberately asymmetric: Unenroll treats a
// missing enrollment as a benign no-op, while AssignGrade treats it as a
// caller error and fails with NOT_ENROLLED.
type EnrollmentService struct {
	maxCredits int
	logger     *zap.Logger
}

// NewEnrollmentService constructs EnrollmentService. A non-positive
// maxCredits falls back to DefaultMaxCredits.
func NewEnrollmentService(maxCredits int, logger *zap.Logger) *EnrollmentService {
	if maxCredits <= 0 {
		maxCredits = DefaultMaxCredits
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{maxCredits: maxCredits, logger: logger}
}

// MaxCredits returns the configured credit ceiling.
func (s *EnrollmentService) MaxCredits() int {
	return s.maxCredits
}

// Enroll creates an enrollment and appends it to the student's sequence.
// It fails with DUPLICATE_ENROLLMENT when the student already holds an
// enrollment for the course code, and with CREDIT_LIMIT_EXCEEDED when the
// candidate's credits would push the student's total past the ceiling.
// On failure the student's state is left unchanged.
func (s *EnrollmentService) Enroll(student *models.Student, course *models.Course) (*models.Enrollment, error) {
	if s.findEnrollment(student, course.Code()) != nil {
		return nil, appErrors.Clone(appErrors.ErrDuplicateEnrollment,
			fmt.Sprintf("%s is already enrolled in %s", student.FullName, course.Title()))
	}

	current := s.currentCredits(student)
	if current+course.Credits() > s.maxCredits {
		return nil, appErrors.Clone(appErrors.ErrCreditLimitExceeded,
			fmt.Sprintf("enrollment failed: max credit limit of %d would be exceeded", s.maxCredits))
	}

	enrollment, err := models.NewEnrollment(student, course)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to create enrollment")
	}
	student.AddEnrollment(enrollment)
	s.logger.Info("student enrolled",
		zap.String("reg_no", student.RegNo()),
		zap.String("course", course.Code()))
	return enrollment, nil
}

// Unenroll removes the first enrollment matching the course code from the
// student's sequence. It reports false, without error, when no match
// exists: unenrolling from a course you are not in is a benign no-op.
func (s *EnrollmentService) Unenroll(student *models.Student, course *models.Course) bool {
	enrollment := s.findEnrollment(student, course.Code())
	if enrollment == nil {
		s.logger.Warn("unenroll ignored, student not enrolled",
			zap.String("reg_no", student.RegNo()),
			zap.String("course", course.Code()))
		return false
	}
	student.RemoveEnrollment(enrollment)
	s.logger.Info("student unenrolled",
		zap.String("reg_no", student.RegNo()),
		zap.String("course", course.Code()))
	return true
}

// AssignGrade sets the grade on the enrollment matching the course code.
// Unlike Unenroll it fails with NOT_ENROLLED on a missing match, since
// grading a non-existent enrollment is a caller error.
func (s *EnrollmentService) AssignGrade(student *models.Student, course *models.Course, grade models.Grade) error {
	enrollment := s.findEnrollment(student, course.Code())
	if enrollment == nil {
		return appErrors.Clone(appErrors.ErrNotEnrolled, "student is not enrolled in this course")
	}
	enrollment.SetGrade(grade)
	return nil
}

// CalculateGPA returns the credit-weighted grade-point average over the
// student's graded enrollments. Ungraded enrollments are excluded from
// both numerator and denominator. A student with no graded enrollments
// has a GPA of 0.0 by definition.
func (s *EnrollmentService) CalculateGPA(student *models.Student) float64 {
	var totalPoints float64
	var totalCredits int
	for _, e := range student.Enrollments() {
		if e.Grade() == nil {
			continue
		}
		totalPoints += e.Grade().Points() * float64(e.Course().Credits())
		totalCredits += e.Course().Credits()
	}
	if totalCredits == 0 {
		return 0.0
	}
	return totalPoints / float64(totalCredits)
}

// Transcript renders the student's transcript: profile header, one line
// per enrollment in insertion order, then the cumulative GPA to two
// decimal places. It is a pure read.
func (s *EnrollmentService) Transcript(student *models.Student) string {
	var b strings.Builder
	b.WriteString("--- TRANSCRIPT ---\n")
	b.WriteString(student.ProfileDetails())
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", 50))
	b.WriteString("\n")

	enrollments := student.Enrollments()
	if len(enrollments) == 0 {
		b.WriteString("No courses enrolled.\n")
	} else {
		for _, e := range enrollments {
			b.WriteString(e.Summary())
			b.WriteString("\n")
		}
	}

	b.WriteString(strings.Repeat("-", 50))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Cumulative GPA: %.2f\n", s.CalculateGPA(student)))
	b.WriteString("--- END OF TRANSCRIPT ---")
	return b.String()
}

// findEnrollment matches by course code equality, not object identity.
func (s *EnrollmentService) findEnrollment(student *models.Student, code string) *models.Enrollment {
	for _, e := range student.Enrollments() {
		if e.Course().Code() == code {
			return e
		}
	}
	return nil
}

func (s *EnrollmentService) currentCredits(student *models.Student) int {
	total := 0
	for _, e := range student.Enrollments() {
		total += e.Course().Credits()
	}
	return total
}
