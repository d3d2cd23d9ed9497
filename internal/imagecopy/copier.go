// Package imagecopy mirrors the spreadsheet's referenced images from
// the source tree into the public images directory, preserving
// relative paths. Copies are byte-for-byte; nothing is resized or
// re-encoded.
package imagecopy

import (
	"path/filepath"

	"github.com/spf13/afero"

	"excel-to-astro/internal/model"
	"excel-to-astro/internal/normalize"
	"excel-to-astro/internal/report"
	"excel-to-astro/pkg/fsutils"
)

// Stats counts the outcomes of one copy pass.
type Stats struct {
	Copied  int
	Skipped int
	Missing int
	Failed  int
}

// Copier copies images between a source and destination base directory.
type Copier struct {
	fs        afero.Fs
	sourceDir string
	destDir   string
	reporter  *report.Reporter
	stats     Stats
}

// New creates a Copier rooted at sourceDir and destDir.
func New(fs afero.Fs, sourceDir, destDir string, reporter *report.Reporter) *Copier {
	return &Copier{fs: fs, sourceDir: sourceDir, destDir: destDir, reporter: reporter}
}

// CopyImage copies one file. A missing source or a failed copy is
// counted and logged, never fatal. An existing destination is skipped
// unless overwrite is set.
func (c *Copier) CopyImage(sourcePath, destPath string, overwrite bool) bool {
	if !fsutils.FileExists(c.fs, sourcePath) {
		c.stats.Missing++
		c.reporter.Warning("Source image not found: %s", sourcePath)
		return false
	}

	if !overwrite && fsutils.FileExists(c.fs, destPath) {
		c.stats.Skipped++
		c.reporter.Debug("Skipped (already exists): %s", filepath.Base(destPath))
		return true
	}

	if err := fsutils.CopyFile(c.fs, sourcePath, destPath); err != nil {
		c.stats.Failed++
		c.reporter.Error("Failed to copy %s: %v", sourcePath, err)
		return false
	}
	c.stats.Copied++
	c.reporter.Debug("Copied: %s", filepath.Base(sourcePath))
	return true
}

// CopyCollectionImages copies every image directly under one
// collection folder.
func (c *Copier) CopyCollectionImages(folder string, overwrite, dryRun bool) {
	sourceDir := filepath.Join(c.sourceDir, folder)
	destDir := filepath.Join(c.destDir, folder)

	if !fsutils.DirExists(c.fs, sourceDir) {
		c.reporter.Warning("Source folder not found: %s", sourceDir)
		return
	}

	files, err := fsutils.ListImages(c.fs, sourceDir)
	if err != nil {
		c.reporter.Error("Failed to process folder %s: %v", folder, err)
		return
	}

	if dryRun {
		c.reporter.Info("[DRY RUN] Would copy %d images from %s/", len(files), folder)
		return
	}

	c.reporter.Info("Copying %d images from %s/", len(files), folder)
	for _, file := range files {
		c.CopyImage(filepath.Join(sourceDir, file), filepath.Join(destDir, file), overwrite)
	}
}

// CopyGeneralImages copies the img-sheet rows: standalone images not
// tied to a collection folder.
func (c *Copier) CopyGeneralImages(rows []model.ImgRow, overwrite, dryRun bool) {
	if len(rows) == 0 {
		c.reporter.Info("No general purpose images to copy")
		return
	}

	c.reporter.Info("Copying general purpose images:")
	for _, row := range rows {
		if row.ImgFolder == "" || row.Filename == "" {
			c.reporter.Warning("Skipping row with missing imgfolder or filename")
			continue
		}

		folder := normalize.FolderPathAll(row.ImgFolder)
		if dryRun {
			c.reporter.Info("[DRY RUN] Would copy: %s/%s", folder, row.Filename)
			continue
		}
		c.CopyImage(
			filepath.Join(c.sourceDir, folder, row.Filename),
			filepath.Join(c.destDir, folder, row.Filename),
			overwrite,
		)
	}
}

// CopyAll runs the full copy pass: the distinct collection folders,
// then the general-purpose rows.
func (c *Copier) CopyAll(collections []model.CollectionRow, imgRows []model.ImgRow, overwrite, dryRun bool) Stats {
	c.reporter.Info("Starting image copy process...")

	seen := make(map[string]bool)
	for _, col := range collections {
		if col.ImgFolder == "" || seen[col.ImgFolder] {
			continue
		}
		seen[col.ImgFolder] = true
		c.CopyCollectionImages(col.ImgFolder, overwrite, dryRun)
	}

	c.CopyGeneralImages(imgRows, overwrite, dryRun)

	if !dryRun {
		c.reporter.Success("Image copy complete: %d copied, %d skipped", c.stats.Copied, c.stats.Skipped)
		if c.stats.Missing > 0 {
			c.reporter.Warning("%d images not found", c.stats.Missing)
		}
		if c.stats.Failed > 0 {
			c.reporter.Error("%d images failed", c.stats.Failed)
		}
	}
	return c.stats
}

// Stats returns the counters accumulated so far.
func (c *Copier) Stats() Stats { return c.stats }
