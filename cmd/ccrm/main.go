package main

import (
	"log"
	"os"

	"github.com/noah-isme/ccrm/internal/backup"
	"github.com/noah-isme/ccrm/internal/cli"
	"github.com/noah-isme/ccrm/internal/flatfile"
	"github.com/noah-isme/ccrm/internal/service"
	"github.com/noah-isme/ccrm/internal/store"
	"github.com/noah-isme/ccrm/pkg/config"
	"github.com/noah-isme/ccrm/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	registry := store.NewRegistry()
	validate := service.NewValidator()

	students := service.NewStudentService(registry.Students, validate, logr)
	instructors := service.NewInstructorService(registry.Instructors, validate, logr)
	courses := service.NewCourseService(registry.Courses, registry.Instructors, validate, logr)
	enrollments := service.NewEnrollmentService(cfg.Enrollment.MaxCredits, logr)
	reports := service.NewReportService(registry.Students, enrollments, cfg.Reports.StorageDir, logr)

	importer := flatfile.NewImporter(cfg.Data.Dir, students, instructors, courses, enrollments, logr)
	exporter := flatfile.NewExporter(cfg.Data.Dir, logr)
	backups := backup.NewService(cfg.Data.Dir, cfg.Data.BackupDir, logr)

	app := cli.New(os.Stdin, os.Stdout, registry, students, instructors, courses, enrollments, reports, backups, importer, exporter, logr)
	app.Run()
}
