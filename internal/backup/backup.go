// Package backup copies the flat-file data directory into timestamped
// snapshot folders and answers recursive size queries over them.
package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Service performs data-directory backups.
type Service struct {
	dataDir   string
	backupDir string
	logger    *zap.Logger
}

// NewService constructs a backup Service.
func NewService(dataDir, backupDir string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{dataDir: dataDir, backupDir: backupDir, logger: logger}
}

// Dir returns the root backup directory.
func (s *Service) Dir() string {
	return s.backupDir
}

// Run copies the whole data directory into a new timestamped folder under
// the backup directory and returns the snapshot path. A missing data
// directory means there is nothing to back up.
func (s *Service) Run() (string, error) {
	if _, err := os.Stat(s.dataDir); os.IsNotExist(err) {
		return "", fmt.Errorf("data directory %s does not exist, nothing to back up", s.dataDir)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	target := filepath.Join(s.backupDir, timestamp)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", fmt.Errorf("create backup directory: %w", err)
	}

	err := filepath.WalkDir(s.dataDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(s.dataDir, path)
		if err != nil {
			return err
		}
		dest := filepath.Join(target, rel)
		if d.IsDir() {
			return os.MkdirAll(dest, 0o755)
		}
		return copyFile(path, dest)
	})
	if err != nil {
		return "", fmt.Errorf("backup walk: %w", err)
	}

	s.logger.Info("backup created", zap.String("path", target))
	return target, nil
}

// DirectorySize recursively sums the sizes of all regular files under
// path. A missing or non-directory path has size zero.
func (s *Service) DirectorySize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return 0
	}

	var size int64
	err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			s.logger.Warn("cannot read file size", zap.String("path", p), zap.Error(err))
			return nil
		}
		size += fi.Size()
		return nil
	})
	if err != nil {
		s.logger.Warn("error walking directory", zap.String("path", path), zap.Error(err))
	}
	return size
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return out.Close()
}
