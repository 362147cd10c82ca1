// Package archive provides library-level archive extraction for the
// corpus bootstrap, keeping process-spawning concerns out of callers.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Extractor extracts an archive file into a destination directory
type Extractor interface {
	Extract(archivePath, destDir string) error
}

// ZipExtractor extracts zip archives using the standard zip reader
type ZipExtractor struct{}

// NewZipExtractor creates a new zip extractor
func NewZipExtractor() *ZipExtractor {
	return &ZipExtractor{}
}

// Extract unpacks archivePath into destDir, creating destDir if needed.
// Entries that would escape destDir are rejected.
func (e *ZipExtractor) Extract(archivePath, destDir string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("failed to open archive %s: %w", archivePath, err)
	}
	defer reader.Close()

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("failed to create extraction directory: %w", err)
	}

	for _, file := range reader.File {
		if err := e.extractFile(file, destDir); err != nil {
			return err
		}
	}

	return nil
}

// extractFile writes a single archive entry under destDir
func (e *ZipExtractor) extractFile(file *zip.File, destDir string) error {
	target := filepath.Join(destDir, filepath.Clean(file.Name))
	if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return fmt.Errorf("archive entry %q escapes extraction directory", file.Name)
	}

	if file.FileInfo().IsDir() {
		return os.MkdirAll(target, 0o755)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", file.Name, err)
	}

	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("failed to open archive entry %s: %w", file.Name, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, file.Mode())
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", target, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}

	return nil
}
