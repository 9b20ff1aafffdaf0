// ABOUTME: Keeps a copy of a plugin README before it is regenerated
// ABOUTME: Backups are named <plugin>-README.md inside the configured directory
package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// EnsureBackupDir creates the backup directory if it doesn't exist
func EnsureBackupDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// Path returns where the README of plugin is backed up inside dir
func Path(dir, plugin string) string {
	return filepath.Join(dir, plugin+"-README.md")
}

// SaveReadme copies readmePath into dir, replacing any earlier backup of the
// same plugin. Returns the path to the backup file.
func SaveReadme(dir, plugin, readmePath string) (string, error) {
	if err := EnsureBackupDir(dir); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	backupPath := Path(dir, plugin)

	// Copy the file
	src, err := os.Open(readmePath)
	if err != nil {
		return "", fmt.Errorf("failed to open README: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(backupPath)
	if err != nil {
		return "", fmt.Errorf("failed to create backup file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to copy README: %w", err)
	}

	return backupPath, nil
}
