package service

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/noah-isme/ccrm/internal/models"
	"github.com/noah-isme/ccrm/internal/store"
	appErrors "github.com/noah-isme/ccrm/pkg/errors"
	"github.com/noah-isme/ccrm/pkg/export"
)

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	RenderDocument(title, subtitle string, lines []string, footer string) ([]byte, error)
	RenderTable(data export.Dataset, title string) ([]byte, error)
}

// ReportService renders presentational exports (transcript PDFs and the
// institution-wide GPA summary CSV) under the reports storage directory.
// Unlike the flat files these are one-way artifacts, never read back.
type ReportService struct {
	students   *store.Store[*models.Student]
	engine     *EnrollmentService
	storageDir string
	csv        csvRenderer
	pdf        pdfRenderer
	logger     *zap.Logger
}

// NewReportService constructs a ReportService.
func NewReportService(students *store.Store[*models.Student], engine *EnrollmentService, storageDir string, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		students:   students,
		engine:     engine,
		storageDir: storageDir,
		csv:        export.NewCSVExporter(),
		pdf:        export.NewPDFExporter(),
		logger:     logger,
	}
}

// TranscriptPDF renders the student's transcript as a PDF and returns the
// written file path.
func (s *ReportService) TranscriptPDF(student *models.Student) (string, error) {
	lines := make([]string, 0, len(student.Enrollments()))
	for _, e := range student.Enrollments() {
		lines = append(lines, e.Summary())
	}
	if len(lines) == 0 {
		lines = append(lines, "No courses enrolled.")
	}
	footer := fmt.Sprintf("Cumulative GPA: %.2f", s.engine.CalculateGPA(student))

	payload, err := s.pdf.RenderDocument("Academic Transcript", student.ProfileDetails(), lines, footer)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to render transcript pdf")
	}
	return s.write(fmt.Sprintf("transcript_%s.pdf", student.RegNo()), payload)
}

// GPASummaryCSV renders one row per student with enrollment count, credit
// load and GPA, in store insertion order, and returns the file path.
func (s *ReportService) GPASummaryCSV() (string, error) {
	payload, err := s.csv.Render(s.gpaSummaryDataset())
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to render gpa summary")
	}
	return s.write("gpa_summary.csv", payload)
}

// GPASummaryPDF renders the same summary as a printable table.
func (s *ReportService) GPASummaryPDF() (string, error) {
	payload, err := s.pdf.RenderTable(s.gpaSummaryDataset(), "GPA Summary")
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to render gpa summary pdf")
	}
	return s.write("gpa_summary.pdf", payload)
}

func (s *ReportService) gpaSummaryDataset() export.Dataset {
	dataset := export.Dataset{
		Headers: []string{"reg_no", "full_name", "active", "enrollments", "credits", "gpa"},
	}
	for _, student := range s.students.Values() {
		credits := 0
		for _, e := range student.Enrollments() {
			credits += e.Course().Credits()
		}
		dataset.Rows = append(dataset.Rows, []string{
			student.RegNo(),
			student.FullName,
			fmt.Sprintf("%t", student.Active()),
			fmt.Sprintf("%d", len(student.Enrollments())),
			fmt.Sprintf("%d", credits),
			fmt.Sprintf("%.2f", s.engine.CalculateGPA(student)),
		})
	}
	return dataset
}

func (s *ReportService) write(name string, payload []byte) (string, error) {
	if err := os.MkdirAll(s.storageDir, 0o755); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to prepare reports directory")
	}
	path := filepath.Join(s.storageDir, name)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to write report")
	}
	s.logger.Info("report written", zap.String("path", path))
	return path, nil
}
