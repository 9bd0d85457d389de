// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive normalizes notification dates and writes the renamed PDF.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// rawDateLayout parses day/month/year with one- or two-digit day and month.
const rawDateLayout = "2/1/2006"

// separators maps the tolerated raw-date separators to the canonical one.
var separators = strings.NewReplacer("-", "/", ".", "/")

// NormalizeDate converts a raw DD/MM/YYYY date, tolerating "-" and "."
// separators, to YYYY-MM-DD. Out-of-range components such as "13/13/2024"
// are errors; the caller must treat them as fatal before anything is
// written to disk.
func NormalizeDate(raw string) (string, error) {
	t, err := time.Parse(rawDateLayout, separators.Replace(raw))
	if err != nil {
		return "", fmt.Errorf("date %q cannot be standardized to DD/MM/YYYY: %w", raw, err)
	}
	return t.Format("2006-01-02"), nil
}

// Filename builds the archive name from a normalized date and a sanitized
// subject.
func Filename(datePrefix, subject string) string {
	return fmt.Sprintf("%s_%s.pdf", datePrefix, subject)
}

// Save writes data to dir/filename, creating dir if absent. The write goes
// through a temp file renamed into place so a failed write never leaves a
// partial PDF behind. Returns the final path.
func Save(dir, filename string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, filename)

	tmpFile, err := os.CreateTemp(dir, ".archive-*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := tmpFile.Write(data)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("writing %s: %w", filename, writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("renaming temp file: %w", err)
	}
	return path, nil
}
