// Package fsutils wraps the filesystem operations the generator needs.
// Everything goes through an afero.Fs so tests (and the dry-run probe)
// can run against an in-memory filesystem.
package fsutils

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// imageExtensions are the file types the image copier will pick up
// from a collection folder.
var imageExtensions = map[string]bool{
	".webp": true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// CreateDir creates a directory (and parents) if it doesn't exist.
func CreateDir(fs afero.Fs, path string) error {
	return fs.MkdirAll(path, 0o755)
}

// WriteToFile writes content to a file, creating parent directories
// and overwriting any existing file.
func WriteToFile(fs afero.Fs, path string, content []byte) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %q: %w", path, err)
	}
	return afero.WriteFile(fs, path, content, 0o644)
}

// FileExists checks if a path exists and is a regular file.
func FileExists(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists checks if a path exists and is a directory.
func DirExists(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// CopyFile copies a single file from src to dst byte for byte,
// creating dst's parent directories. It overwrites dst if it exists.
func CopyFile(fs afero.Fs, src, dst string) error {
	srcFile, err := fs.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file %q: %w", src, err)
	}
	defer srcFile.Close()

	if err := fs.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %q: %w", dst, err)
	}

	dstFile, err := fs.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination file %q: %w", dst, err)
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return fmt.Errorf("failed to copy data from %q to %q: %w", src, dst, err)
	}
	return nil
}

// CleanDir removes a directory tree. A missing directory is not an
// error.
func CleanDir(fs afero.Fs, path string) error {
	return fs.RemoveAll(path)
}

// ListImages returns the image filenames directly under dir, in
// directory order.
func ListImages(fs afero.Fs, dir string) ([]string, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %q: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			files = append(files, entry.Name())
		}
	}
	return files, nil
}
