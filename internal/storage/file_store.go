package storage

import (
	"fmt"

	"github.com/spf13/afero"

	"excel-to-astro/internal/report"
	"excel-to-astro/pkg/fsutils"
)

// FileStore writes generated content through an afero filesystem.
type FileStore struct {
	fs       afero.Fs
	reporter *report.Reporter
	written  int
}

// NewFileStore creates a store writing to fs.
func NewFileStore(fs afero.Fs, reporter *report.Reporter) *FileStore {
	return &FileStore{fs: fs, reporter: reporter}
}

// WriteFile writes content to path, creating parent directories.
func (s *FileStore) WriteFile(path string, content []byte) error {
	if err := fsutils.WriteToFile(s.fs, path, content); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	s.written++
	s.reporter.Debug("Created: %s", path)
	return nil
}

// CleanDir removes the directory tree at path.
func (s *FileStore) CleanDir(path string) error {
	if err := fsutils.CleanDir(s.fs, path); err != nil {
		return fmt.Errorf("failed to clean directory %s: %w", path, err)
	}
	s.reporter.Info("Cleaned directory: %s", path)
	return nil
}

// Written returns the number of files written so far.
func (s *FileStore) Written() int { return s.written }
