package flatfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/ccrm/internal/models"
	"github.com/noah-isme/ccrm/internal/service"
)

// Importer reads the flat files back into the record store and
// reconstructs cross-entity references from their textual foreign keys
// (registration number, course code, employee id).
//
// Each line is parsed independently: a malformed line is skipped with a
// warning and never aborts the rest of its file. The files are user
// editable, so partial best-effort recovery beats fail-fast.
type Importer struct {
	dataDir     string
	students    *service.StudentService
	instructors *service.InstructorService
	courses     *service.CourseService
	enrollments *service.EnrollmentService
	logger      *zap.Logger
}

// NewImporter constructs an Importer rooted at dataDir.
func NewImporter(
	dataDir string,
	students *service.StudentService,
	instructors *service.InstructorService,
	courses *service.CourseService,
	enrollments *service.EnrollmentService,
	logger *zap.Logger,
) *Importer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Importer{
		dataDir:     dataDir,
		students:    students,
		instructors: instructors,
		courses:     courses,
		enrollments: enrollments,
		logger:      logger,
	}
}

// ImportAll loads every collection in dependency order: students and
// instructors first, then courses (which resolve instructors), then
// enrollments (which resolve both students and courses). Per-file
// failures are logged and do not stop the sequence.
func (im *Importer) ImportAll() {
	if err := im.ImportStudents(); err != nil {
		im.logger.Error("failed to import students", zap.Error(err))
	}
	if err := im.ImportInstructors(); err != nil {
		im.logger.Error("failed to import instructors", zap.Error(err))
	}
	if err := im.ImportCourses(); err != nil {
		im.logger.Error("failed to import courses", zap.Error(err))
	}
	if err := im.ImportEnrollments(); err != nil {
		im.logger.Error("failed to import enrollments", zap.Error(err))
	}
}

// ImportStudents loads students.csv. The trailing active flag is optional
// and defaults to true, so files written by the older four-column schema
// stay loadable.
func (im *Importer) ImportStudents() error {
	return im.eachLine(studentsFile, func(line string, fields []string) {
		if len(fields) < 4 {
			im.skip(studentsFile, line, "expected at least 4 fields")
			return
		}
		dob, err := time.Parse(DateLayout, fields[2])
		if err != nil {
			im.skip(studentsFile, line, "invalid date of birth")
			return
		}
		student := models.NewStudent(fields[0], fields[1], dob, fields[3])
		if len(fields) > 4 {
			active, err := strconv.ParseBool(fields[4])
			if err != nil {
				im.skip(studentsFile, line, "invalid active flag")
				return
			}
			student.SetActive(active)
		}
		im.students.Save(student)
	})
}

// ImportInstructors loads instructors.csv.
func (im *Importer) ImportInstructors() error {
	return im.eachLine(instructorsFile, func(line string, fields []string) {
		if len(fields) < 6 {
			im.skip(instructorsFile, line, "expected 6 fields")
			return
		}
		dob, err := time.Parse(DateLayout, fields[3])
		if err != nil {
			im.skip(instructorsFile, line, "invalid date of birth")
			return
		}
		im.instructors.Save(models.NewInstructor(fields[0], fields[1], fields[2], dob, fields[4], fields[5]))
	})
}

// ImportCourses loads courses.csv, resolving the instructor reference by
// employee id. A reference to an unknown instructor leaves the course
// unassigned rather than failing the line.
func (im *Importer) ImportCourses() error {
	return im.eachLine(coursesFile, func(line string, fields []string) {
		if len(fields) < 5 {
			im.skip(coursesFile, line, "expected at least 5 fields")
			return
		}
		credits, err := strconv.Atoi(fields[2])
		if err != nil {
			im.skip(coursesFile, line, "invalid credits")
			return
		}
		semester, err := models.ParseSemester(fields[4])
		if err != nil {
			im.skip(coursesFile, line, "invalid semester")
			return
		}
		course := models.NewCourse(fields[0], fields[1]).
			Credits(credits).
			Department(fields[3]).
			Semester(semester).
			Build()

		if len(fields) > 5 && !isSentinel(fields[5]) {
			if instructor, err := im.instructors.FindByEmployeeID(fields[5]); err == nil {
				course.SetInstructor(instructor)
				instructor.AssignCourse(course)
			} else {
				im.logger.Warn("course references unknown instructor, left unassigned",
					zap.String("course", fields[0]),
					zap.String("employee_id", fields[5]))
			}
		}
		im.courses.Save(course)
	})
}

// ImportEnrollments loads enrollments.csv, re-applying the enroll rule
// per row. Rule rejections (typically duplicates on reload) are swallowed
// so that re-importing over a populated store is idempotent. A grade
// field past the sentinel is assigned after the enroll attempt.
func (im *Importer) ImportEnrollments() error {
	return im.eachLine(enrollmentsFile, func(line string, fields []string) {
		if len(fields) < 3 {
			im.skip(enrollmentsFile, line, "expected 3 fields")
			return
		}
		student, err := im.students.FindByRegNo(fields[0])
		if err != nil {
			im.skip(enrollmentsFile, line, "unknown student")
			return
		}
		course, err := im.courses.FindByCode(fields[1])
		if err != nil {
			im.skip(enrollmentsFile, line, "unknown course")
			return
		}

		// Expected to fail on an already-applied row; reload must
		// stay silent about it.
		if _, err := im.enrollments.Enroll(student, course); err != nil {
			im.logger.Debug("enrollment row already applied or rejected",
				zap.String("reg_no", fields[0]),
				zap.String("course", fields[1]),
				zap.Error(err))
		}

		if !isSentinel(fields[2]) {
			grade, err := models.ParseGrade(fields[2])
			if err != nil {
				im.skip(enrollmentsFile, line, "invalid grade")
				return
			}
			if err := im.enrollments.AssignGrade(student, course, grade); err != nil {
				im.logger.Warn("could not assign imported grade",
					zap.String("reg_no", fields[0]),
					zap.String("course", fields[1]),
					zap.Error(err))
			}
		}
	})
}

// eachLine streams the named file line by line. A missing file means "no
// data of this type yet" and is not an error.
func (im *Importer) eachLine(name string, handle func(line string, fields []string)) error {
	path := filepath.Join(im.dataDir, name)
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		handle(line, strings.Split(line, Delimiter))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	return nil
}

func (im *Importer) skip(file, line, reason string) {
	im.logger.Warn("skipping malformed line",
		zap.String("file", file),
		zap.String("reason", reason),
		zap.String("line", line))
}

func isSentinel(field string) bool {
	return strings.EqualFold(strings.TrimSpace(field), Sentinel)
}
