package storage

import "excel-to-astro/internal/report"

// DryRunStore logs every intended write without touching the
// filesystem. Content is still fully computed by the caller, which is
// what makes dry runs a faithful preview.
type DryRunStore struct {
	reporter *report.Reporter
	written  int
}

// NewDryRunStore creates a logging-only store.
func NewDryRunStore(reporter *report.Reporter) *DryRunStore {
	return &DryRunStore{reporter: reporter}
}

// WriteFile records the intended write and drops the content.
func (s *DryRunStore) WriteFile(path string, content []byte) error {
	s.written++
	s.reporter.Info("[DRY RUN] Would write: %s (%d bytes)", path, len(content))
	return nil
}

// CleanDir logs the clean that a live run would perform.
func (s *DryRunStore) CleanDir(path string) error {
	s.reporter.Info("[DRY RUN] Would clean directory: %s", path)
	return nil
}

// Written returns the number of files a live run would have written.
func (s *DryRunStore) Written() int { return s.written }
