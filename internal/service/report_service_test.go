package service

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/ccrm/internal/models"
	"github.com/noah-isme/ccrm/internal/store"
)

func newReportEnv(t *testing.T) (*ReportService, *store.Store[*models.Student], *EnrollmentService) {
	t.Helper()
	students := store.New[*models.Student]()
	engine := NewEnrollmentService(0, zap.NewNop())
	return NewReportService(students, engine, t.TempDir(), zap.NewNop()), students, engine
}

func TestReportServiceGPASummaryCSV(t *testing.T) {
	svc, students, engine := newReportEnv(t)

	asha := newStudent(t)
	students.Put(asha.RegNo(), asha)
	course := newCourse("CSE0001", "Data Structures", 4)
	_, err := engine.Enroll(asha, course)
	require.NoError(t, err)
	require.NoError(t, engine.AssignGrade(asha, course, models.GradeA))

	path, err := svc.GPASummaryCSV()
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "reg_no,full_name,active,enrollments,credits,gpa", lines[0])
	assert.Equal(t, "24BCE10001,Asha Rao,true,1,4,9.00", lines[1])
}

func TestReportServiceGPASummaryPDF(t *testing.T) {
	svc, students, engine := newReportEnv(t)

	asha := newStudent(t)
	students.Put(asha.RegNo(), asha)
	course := newCourse("CSE0001", "Data Structures", 4)
	_, err := engine.Enroll(asha, course)
	require.NoError(t, err)

	path, err := svc.GPASummaryPDF()
	require.NoError(t, err)
	assert.Contains(t, path, "gpa_summary.pdf")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestReportServiceTranscriptPDF(t *testing.T) {
	svc, students, engine := newReportEnv(t)

	asha := newStudent(t)
	students.Put(asha.RegNo(), asha)
	_, err := engine.Enroll(asha, newCourse("CSE0001", "Data Structures", 4))
	require.NoError(t, err)

	path, err := svc.TranscriptPDF(asha)
	require.NoError(t, err)
	assert.Contains(t, path, "transcript_24BCE10001.pdf")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}
