// =============================================================================
// Order Print Pipeline - File Manager Utility
// =============================================================================
//
// File management utilities for the pipeline:
//   - Directory management
//   - Input archival (moving processed order sheets)
//
// ARCHIVAL STRATEGY:
//   - Input files are moved to the archive directory after a successful run
//   - Failed inputs remain in place so the operator can fix and re-submit
//   - Name collisions in the archive get a timestamp+uuid suffix; archives
//     accumulate for months and operators re-export under the same name
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EnsureDir creates a directory (and parents) if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// FileExists reports whether a path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ArchiveFile moves a processed input file into the archive directory.
//
// PARAMETERS:
//   - path: The input file to archive.
//   - archiveDir: The archive directory (created if missing).
//
// RETURNS:
//   - The archived file's new path.
//   - An error if the file cannot be moved.
func ArchiveFile(path, archiveDir string) (string, error) {
	if err := EnsureDir(archiveDir); err != nil {
		return "", err
	}

	dest := filepath.Join(archiveDir, filepath.Base(path))
	if FileExists(dest) {
		dest = collisionName(archiveDir, filepath.Base(path))
	}

	if err := os.Rename(path, dest); err != nil {
		// Rename fails across filesystems; fall back to copy+remove.
		if copyErr := copyFile(path, dest); copyErr != nil {
			return "", fmt.Errorf("failed to archive %s: %w", path, err)
		}
		if err := os.Remove(path); err != nil {
			return "", fmt.Errorf("failed to remove original %s: %w", path, err)
		}
	}

	return dest, nil
}

// collisionName builds a unique archive name for an already-taken base name.
func collisionName(dir, base string) string {
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	suffix := fmt.Sprintf("%s_%s", time.Now().Format("20060102_150405"), uuid.NewString()[:8])
	return filepath.Join(dir, fmt.Sprintf("%s_%s%s", stem, suffix, ext))
}

// copyFile copies src to dst, preserving contents only.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}

	return out.Sync()
}
