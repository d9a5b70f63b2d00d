package flatfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/ccrm/internal/models"
	"github.com/noah-isme/ccrm/internal/store"
)

// Exporter serialises entity collections into the data directory. Every
// export truncates and rewrites its file in full; exports are never
// additive.
type Exporter struct {
	dataDir string
	logger  *zap.Logger
}

// NewExporter constructs an Exporter rooted at dataDir.
func NewExporter(dataDir string, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{dataDir: dataDir, logger: logger}
}

// ExportAll writes every collection. Individual failures are logged and
// do not stop the remaining exports.
func (e *Exporter) ExportAll(reg *store.Registry) {
	if err := e.ExportStudents(reg.Students.Values()); err != nil {
		e.logger.Error("failed to export students", zap.Error(err))
	}
	if err := e.ExportInstructors(reg.Instructors.Values()); err != nil {
		e.logger.Error("failed to export instructors", zap.Error(err))
	}
	if err := e.ExportCourses(reg.Courses.Values()); err != nil {
		e.logger.Error("failed to export courses", zap.Error(err))
	}
	if err := e.ExportEnrollments(reg.Students.Values()); err != nil {
		e.logger.Error("failed to export enrollments", zap.Error(err))
	}
}

// ExportStudents writes students.csv:
// fullName,email,dateOfBirth,regNo,activeFlag.
func (e *Exporter) ExportStudents(students []*models.Student) error {
	records := make([][]string, 0, len(students))
	for _, s := range students {
		records = append(records, []string{
			s.FullName,
			s.Email,
			s.DateOfBirth.Format(DateLayout),
			s.RegNo(),
			strconv.FormatBool(s.Active()),
		})
	}
	return e.writeFile(studentsFile, records)
}

// ExportInstructors writes instructors.csv:
// id,fullName,email,dateOfBirth,employeeId,department.
func (e *Exporter) ExportInstructors(instructors []*models.Instructor) error {
	records := make([][]string, 0, len(instructors))
	for _, i := range instructors {
		records = append(records, []string{
			i.ID,
			i.FullName,
			i.Email,
			i.DateOfBirth.Format(DateLayout),
			i.EmployeeID,
			i.Department,
		})
	}
	return e.writeFile(instructorsFile, records)
}

// ExportCourses writes courses.csv:
// code,title,credits,department,semester,instructorEmployeeId. An
// unassigned instructor is written as the sentinel.
func (e *Exporter) ExportCourses(courses []*models.Course) error {
	records := make([][]string, 0, len(courses))
	for _, c := range courses {
		instructorID := Sentinel
		if c.Instructor() != nil {
			instructorID = c.Instructor().EmployeeID
		}
		records = append(records, []string{
			c.Code(),
			c.Title(),
			strconv.Itoa(c.Credits()),
			c.Department(),
			c.Semester().String(),
			instructorID,
		})
	}
	return e.writeFile(coursesFile, records)
}

// ExportEnrollments writes enrollments.csv: studentRegNo,courseCode,grade.
// An ungraded enrollment carries the sentinel. Rows follow store order,
// then each student's enrollment insertion order.
func (e *Exporter) ExportEnrollments(students []*models.Student) error {
	var records [][]string
	for _, s := range students {
		for _, enrollment := range s.Enrollments() {
			grade := Sentinel
			if enrollment.Grade() != nil {
				grade = enrollment.Grade().String()
			}
			records = append(records, []string{
				s.RegNo(),
				enrollment.Course().Code(),
				grade,
			})
		}
	}
	return e.writeFile(enrollmentsFile, records)
}

// writeFile validates and writes all records, truncating any existing
// file. A field containing the delimiter rejects the whole write before
// anything touches disk; the format has no escaping, so such a row could
// never be read back correctly.
func (e *Exporter) writeFile(name string, records [][]string) error {
	for _, record := range records {
		for _, field := range record {
			if strings.Contains(field, Delimiter) {
				return fmt.Errorf("refusing to write %s: field %q contains the %q delimiter", name, field, Delimiter)
			}
		}
	}

	if err := os.MkdirAll(e.dataDir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	var b strings.Builder
	for _, record := range records {
		b.WriteString(strings.Join(record, Delimiter))
		b.WriteString("\n")
	}

	path := filepath.Join(e.dataDir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	e.logger.Info("exported", zap.String("file", name), zap.Int("records", len(records)))
	return nil
}
