// =============================================================================
// 7 Aromas Production Planner - File Manager Utility
// =============================================================================
//
// File-handling helpers for the process command:
//   - output-name generation from the configured format string
//   - directory management
//   - input archival after successful processing
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EnsureDir creates the directory (and parents) if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// BuildOutputName expands the configured name format for one input file.
// Supported placeholders: {name} (input base name without extension),
// {timestamp} (YYYYMMDD_HHMMSS), {uuid}. The caller appends the artifact
// extension.
func BuildOutputName(format, inputPath string, now time.Time) string {
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	name := format
	name = strings.ReplaceAll(name, "{name}", base)
	name = strings.ReplaceAll(name, "{timestamp}", now.Format("20060102_150405"))
	name = strings.ReplaceAll(name, "{uuid}", uuid.New().String())
	return name
}

// ArchiveFile moves a processed input into the archive directory. A name
// collision gets a numeric suffix rather than overwriting the earlier file.
func ArchiveFile(path, archiveDir string) (string, error) {
	if err := EnsureDir(archiveDir); err != nil {
		return "", err
	}

	base := filepath.Base(path)
	target := filepath.Join(archiveDir, base)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	for i := 1; ; i++ {
		if _, err := os.Stat(target); os.IsNotExist(err) {
			break
		}
		target = filepath.Join(archiveDir, fmt.Sprintf("%s_%d%s", stem, i, ext))
	}

	if err := os.Rename(path, target); err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", path, err)
	}
	return target, nil
}
