// Package cli implements the interactive menu front end. The loop is
// strictly sequential: every command runs to completion before the next
// prompt is read.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/ccrm/internal/backup"
	"github.com/noah-isme/ccrm/internal/flatfile"
	"github.com/noah-isme/ccrm/internal/models"
	"github.com/noah-isme/ccrm/internal/service"
	"github.com/noah-isme/ccrm/internal/store"
	appErrors "github.com/noah-isme/ccrm/pkg/errors"
)

// App wires the services behind the menu loop.
type App struct {
	in  *bufio.Reader
	out io.Writer
	eof bool

	registry    *store.Registry
	students    *service.StudentService
	instructors *service.InstructorService
	courses     *service.CourseService
	enrollments *service.EnrollmentService
	reports     *service.ReportService
	backups     *backup.Service
	importer    *flatfile.Importer
	exporter    *flatfile.Exporter
	logger      *zap.Logger
}

// New constructs the App over the given reader/writer pair.
func New(
	in io.Reader,
	out io.Writer,
	registry *store.Registry,
	students *service.StudentService,
	instructors *service.InstructorService,
	courses *service.CourseService,
	enrollments *service.EnrollmentService,
	reports *service.ReportService,
	backups *backup.Service,
	importer *flatfile.Importer,
	exporter *flatfile.Exporter,
	logger *zap.Logger,
) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		in:          bufio.NewReader(in),
		out:         out,
		registry:    registry,
		students:    students,
		instructors: instructors,
		courses:     courses,
		enrollments: enrollments,
		reports:     reports,
		backups:     backups,
		importer:    importer,
		exporter:    exporter,
		logger:      logger,
	}
}

// Run loads the data files, serves the main menu until exit, then saves
// everything back.
func (a *App) Run() {
	a.printf("Welcome to the Campus Course & Records Manager!\n")
	a.printf("Loading data from files...\n")
	a.importer.ImportAll()
	if a.registry.Students.Len() == 0 && a.registry.Courses.Len() == 0 {
		a.printf("No data found. You can add new students and courses.\n")
	}

	for {
		a.printf("\n--- MAIN MENU ---\n")
		a.printf("1. Student Management\n")
		a.printf("2. Instructor Management\n")
		a.printf("3. Course Management\n")
		a.printf("4. Enrollment & Grades\n")
		a.printf("5. File Utilities\n")
		a.printf("9. Save and Exit\n")

		choice := a.prompt("Enter your choice: ")
		// A closed input stream must still reach the save path, otherwise a
		// piped session would loop on the menu forever and lose its data.
		if a.eof {
			a.printf("\nInput closed.\n")
			a.saveAndExit()
			return
		}
		switch choice {
		case "1":
			a.studentMenu()
		case "2":
			a.instructorMenu()
		case "3":
			a.courseMenu()
		case "4":
			a.enrollmentMenu()
		case "5":
			a.fileMenu()
		case "9":
			a.saveAndExit()
			return
		default:
			a.printf("Invalid choice. Please try again.\n")
		}
	}
}

func (a *App) saveAndExit() {
	a.printf("Saving all data to files...\n")
	a.exporter.ExportAll(a.registry)
	a.printf("Thank you for using CCRM. Goodbye!\n")
}

func (a *App) studentMenu() {
	for {
		a.printf("\n-- Student Management --\n")
		a.printf("1. Add New Student\n")
		a.printf("2. List All Students\n")
		a.printf("3. Find Student by Registration Number\n")
		a.printf("4. Update Student Details\n")
		a.printf("5. Deactivate Student\n")
		a.printf("9. Back to Main Menu\n")

		choice := a.prompt("Enter your choice: ")
		if a.eof {
			return
		}
		switch choice {
		case "1":
			a.addStudent()
		case "2":
			a.listStudents()
		case "3":
			a.findStudent()
		case "4":
			a.updateStudent()
		case "5":
			a.deactivateStudent()
		case "9":
			return
		default:
			a.printf("Invalid choice.\n")
		}
	}
}

func (a *App) instructorMenu() {
	for {
		a.printf("\n-- Instructor Management --\n")
		a.printf("1. Add New Instructor\n")
		a.printf("2. List All Instructors\n")
		a.printf("9. Back to Main Menu\n")

		choice := a.prompt("Enter your choice: ")
		if a.eof {
			return
		}
		switch choice {
		case "1":
			a.addInstructor()
		case "2":
			a.listInstructors()
		case "9":
			return
		default:
			a.printf("Invalid choice.\n")
		}
	}
}

func (a *App) courseMenu() {
	for {
		a.printf("\n-- Course Management --\n")
		a.printf("1. Add New Course\n")
		a.printf("2. List All Courses (with Instructors)\n")
		a.printf("3. Assign Instructor to Course\n")
		a.printf("4. Search Courses by Department\n")
		a.printf("9. Back to Main Menu\n")

		choice := a.prompt("Enter your choice: ")
		if a.eof {
			return
		}
		switch choice {
		case "1":
			a.addCourse()
		case "2":
			a.listCourses()
		case "3":
			a.assignInstructor()
		case "4":
			a.searchCourses()
		case "9":
			return
		default:
			a.printf("Invalid choice.\n")
		}
	}
}

func (a *App) enrollmentMenu() {
	for {
		a.printf("\n-- Enrollment & Grades --\n")
		a.printf("1. Enroll Student in Course\n")
		a.printf("2. Unenroll Student from Course\n")
		a.printf("3. Assign Grade\n")
		a.printf("4. Print Student Transcript\n")
		a.printf("9. Back to Main Menu\n")

		choice := a.prompt("Enter your choice: ")
		if a.eof {
			return
		}
		switch choice {
		case "1":
			a.enrollStudent()
		case "2":
			a.unenrollStudent()
		case "3":
			a.assignGrade()
		case "4":
			a.printTranscript()
		case "9":
			return
		default:
			a.printf("Invalid choice.\n")
		}
	}
}

func (a *App) fileMenu() {
	a.printf("\n-- File Utilities --\n")
	a.printf("1. Create Backup of Current Data\n")
	a.printf("2. Show Backup Directory Size\n")
	a.printf("3. Export Student Transcript as PDF\n")
	a.printf("4. Export GPA Summary as CSV\n")
	a.printf("5. Export GPA Summary as PDF\n")

	switch a.prompt("Enter your choice: ") {
	case "1":
		a.printf("Saving all data to files...\n")
		a.exporter.ExportAll(a.registry)
		path, err := a.backups.Run()
		if err != nil {
			a.errorf("Backup failed: %v", err)
			return
		}
		a.printf("Backup successful. Created at: %s\n", path)
	case "2":
		size := a.backups.DirectorySize(a.backups.Dir())
		a.printf("Total size of backup directory: %d bytes\n", size)
	case "3":
		a.exportTranscriptPDF()
	case "4":
		path, err := a.reports.GPASummaryCSV()
		if err != nil {
			a.errorf("Export failed: %s", appErrors.FromError(err).Message)
			return
		}
		a.printf("GPA summary written to %s\n", path)
	case "5":
		path, err := a.reports.GPASummaryPDF()
		if err != nil {
			a.errorf("Export failed: %s", appErrors.FromError(err).Message)
			return
		}
		a.printf("GPA summary written to %s\n", path)
	default:
		a.printf("Invalid choice.\n")
	}
}

func (a *App) addStudent() {
	name := a.prompt("Full name: ")
	email := a.prompt("Email: ")
	dob, ok := a.promptDate("Date of birth (dd-MM-yyyy): ")
	if !ok {
		return
	}
	regNo := strings.ToUpper(a.prompt("Registration number (e.g., 24BCE10001): "))

	_, err := a.students.Add(service.AddStudentRequest{
		FullName:    name,
		Email:       email,
		DateOfBirth: dob,
		RegNo:       regNo,
	})
	if err != nil {
		a.errorf("Error: %v", err)
		return
	}
	a.printf("Student '%s' added successfully.\n", name)
}

func (a *App) listStudents() {
	students := a.students.List()
	if len(students) == 0 {
		a.printf("No students registered.\n")
		return
	}
	for _, s := range students {
		status := "active"
		if !s.Active() {
			status = "inactive"
		}
		a.printf("%s [%s]\n", s.ProfileDetails(), status)
	}
}

func (a *App) findStudent() {
	student, err := a.students.FindByRegNo(strings.ToUpper(a.prompt("Registration number: ")))
	if err != nil {
		a.errorf("Error: %s", appErrors.FromError(err).Message)
		return
	}
	a.printf("%s\n", student.ProfileDetails())
	a.printf("Email: %s | Date of birth: %s\n", student.Email, student.DateOfBirth.Format("02-01-2006"))
}

func (a *App) updateStudent() {
	regNo := strings.ToUpper(a.prompt("Registration number: "))
	name := a.prompt("New full name (blank to keep): ")
	email := a.prompt("New email (blank to keep): ")

	_, err := a.students.Update(regNo, service.UpdateStudentRequest{FullName: name, Email: email})
	if err != nil {
		a.errorf("Error: %s", appErrors.FromError(err).Message)
		return
	}
	a.printf("Student updated.\n")
}

func (a *App) deactivateStudent() {
	regNo := strings.ToUpper(a.prompt("Registration number: "))
	if err := a.students.Deactivate(regNo); err != nil {
		a.errorf("Error: %s", appErrors.FromError(err).Message)
		return
	}
	a.printf("Student %s deactivated.\n", regNo)
}

func (a *App) addInstructor() {
	id := a.prompt("Instructor id: ")
	name := a.prompt("Full name: ")
	email := a.prompt("Email: ")
	dob, ok := a.promptDate("Date of birth (dd-MM-yyyy): ")
	if !ok {
		return
	}
	employeeID := strings.ToUpper(a.prompt("Employee id (e.g., EMP001): "))
	department := a.prompt("Department: ")

	_, err := a.instructors.Add(service.AddInstructorRequest{
		ID:          id,
		FullName:    name,
		Email:       email,
		DateOfBirth: dob,
		EmployeeID:  employeeID,
		Department:  department,
	})
	if err != nil {
		a.errorf("Error: %v", err)
		return
	}
	a.printf("Instructor '%s' added successfully.\n", name)
}

func (a *App) listInstructors() {
	instructors := a.instructors.List()
	if len(instructors) == 0 {
		a.printf("No instructors registered.\n")
		return
	}
	for _, i := range instructors {
		a.printf("%s\n", i.ProfileDetails())
	}
}

func (a *App) addCourse() {
	code := strings.ToUpper(a.prompt("Course code (e.g., CSE0001): "))
	title := a.prompt("Title: ")
	credits, ok := a.promptInt("Credits: ")
	if !ok {
		return
	}
	department := a.prompt("Department: ")
	semester, err := models.ParseSemester(a.prompt("Semester (FALL/INTERIM/WINTER): "))
	if err != nil {
		a.errorf("Error: %v", err)
		return
	}

	_, err = a.courses.Add(service.AddCourseRequest{
		Code:       code,
		Title:      title,
		Credits:    credits,
		Department: department,
		Semester:   semester,
	})
	if err != nil {
		a.errorf("Error: %v", err)
		return
	}
	a.printf("Course '%s' added successfully.\n", title)
}

func (a *App) listCourses() {
	courses := a.courses.List()
	if len(courses) == 0 {
		a.printf("No courses available.\n")
		return
	}
	for _, c := range courses {
		instructor := "Unassigned"
		if c.Instructor() != nil {
			instructor = c.Instructor().FullName
		}
		a.printf("%s | Semester: %s | Instructor: %s\n", c, c.Semester(), instructor)
	}
}

func (a *App) assignInstructor() {
	code := strings.ToUpper(a.prompt("Course code: "))
	employeeID := strings.ToUpper(a.prompt("Instructor employee id: "))
	if err := a.courses.AssignInstructor(code, employeeID); err != nil {
		a.errorf("Error: %s", appErrors.FromError(err).Message)
		return
	}
	a.printf("Instructor assigned.\n")
}

func (a *App) searchCourses() {
	department := a.prompt("Department: ")
	matches := a.courses.ByDepartment(department)
	if len(matches) == 0 {
		a.printf("No courses found for department '%s'.\n", department)
		return
	}
	for _, c := range matches {
		a.printf("%s\n", c)
	}
}

func (a *App) enrollStudent() {
	student, course, ok := a.promptEnrollmentPair()
	if !ok {
		return
	}
	// Re-validated here at the interactive boundary; the engine itself
	// accepts historical enrollments for deactivated students on reload.
	if !student.Active() {
		a.errorf("Error: %s", appErrors.ErrInactiveStudent.Message)
		return
	}
	if _, err := a.enrollments.Enroll(student, course); err != nil {
		a.errorf("Error: %s", appErrors.FromError(err).Message)
		return
	}
	a.printf("Successfully enrolled %s in %s.\n", student.FullName, course.Title())
}

func (a *App) unenrollStudent() {
	student, course, ok := a.promptEnrollmentPair()
	if !ok {
		return
	}
	if !a.enrollments.Unenroll(student, course) {
		a.printf("Student is not enrolled in that course.\n")
		return
	}
	a.printf("Successfully unenrolled %s from %s.\n", student.FullName, course.Title())
}

func (a *App) assignGrade() {
	student, course, ok := a.promptEnrollmentPair()
	if !ok {
		return
	}
	grade, err := models.ParseGrade(a.prompt("Grade (S/A/B/C/D/E/F): "))
	if err != nil {
		a.errorf("Error: %v", err)
		return
	}
	if err := a.enrollments.AssignGrade(student, course, grade); err != nil {
		a.errorf("Error: %s", appErrors.FromError(err).Message)
		return
	}
	a.printf("Grade %s assigned.\n", grade)
}

func (a *App) printTranscript() {
	student, err := a.students.FindByRegNo(strings.ToUpper(a.prompt("Registration number: ")))
	if err != nil {
		a.errorf("Error: %s", appErrors.FromError(err).Message)
		return
	}
	a.printf("\n%s\n", a.enrollments.Transcript(student))
}

func (a *App) exportTranscriptPDF() {
	student, err := a.students.FindByRegNo(strings.ToUpper(a.prompt("Registration number: ")))
	if err != nil {
		a.errorf("Error: %s", appErrors.FromError(err).Message)
		return
	}
	path, err := a.reports.TranscriptPDF(student)
	if err != nil {
		a.errorf("Export failed: %s", appErrors.FromError(err).Message)
		return
	}
	a.printf("Transcript written to %s\n", path)
}

func (a *App) promptEnrollmentPair() (*models.Student, *models.Course, bool) {
	student, err := a.students.FindByRegNo(strings.ToUpper(a.prompt("Student registration number: ")))
	if err != nil {
		a.errorf("Error: %s", appErrors.FromError(err).Message)
		return nil, nil, false
	}
	course, err := a.courses.FindByCode(strings.ToUpper(a.prompt("Course code: ")))
	if err != nil {
		a.errorf("Error: %s", appErrors.FromError(err).Message)
		return nil, nil, false
	}
	return student, course, true
}

func (a *App) prompt(label string) string {
	a.printf("%s", label)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		a.eof = true
		return ""
	}
	return strings.TrimSpace(line)
}

func (a *App) promptDate(label string) (time.Time, bool) {
	raw := a.prompt(label)
	date, err := time.Parse("02-01-2006", raw)
	if err != nil {
		a.errorf("Error: invalid date format, please use dd-MM-yyyy.")
		return time.Time{}, false
	}
	return date, true
}

func (a *App) promptInt(label string) (int, bool) {
	raw := a.prompt(label)
	value, err := strconv.Atoi(raw)
	if err != nil {
		a.errorf("Error: invalid number '%s'.", raw)
		return 0, false
	}
	return value, true
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) errorf(format string, args ...any) {
	fmt.Fprintf(a.out, format+"\n", args...)
}
