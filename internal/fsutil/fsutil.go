// Package fsutil provides file and path utility functions for applications.
//
// This package focuses on platform-agnostic ways to handle application paths
// and sanitize filenames, adhering to Go's best practices for clarity, error
// handling, and maintainability.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const defaultDirPermissions = 0o750

// File extension constants.
const (
	extHTM  = ".htm"
	extHTML = ".html"
	extJSON = ".json"
	extMD   = ".md"
	extTXT  = ".txt"
	extXML  = ".xml"
)

const errFmtFailedToCreateDir = "failed to create directory %s: %w"

// EnsureDir ensures a directory exists at the given path, creating it if it doesn't.
func EnsureDir(path string) error {
	_, statErr := os.Stat(path)
	if os.IsNotExist(statErr) {
		// MkdirAll is used to create parent directories as needed.
		mkdirErr := os.MkdirAll(path, defaultDirPermissions)
		if mkdirErr != nil {
			return fmt.Errorf(
				errFmtFailedToCreateDir,
				path,
				mkdirErr,
			)
		}
	}

	return nil
}

// IsValidTextFile checks if a filename has a common text or markup file extension.
func IsValidTextFile(filename string) bool {
	ext := filepath.Ext(filename)
	switch ext {
	case extTXT, extMD, extJSON, extXML, extHTML, extHTM:
		return true
	default:
		return false
	}
}

// GetFileExtension returns the file extension without the leading dot.
func GetFileExtension(filename string) string {
	return strings.TrimPrefix(filepath.Ext(filename), ".")
}

// SanitizeFilename removes or replaces characters that are invalid in most filesystems.
func SanitizeFilename(filename string) string {
	// Create a replacer for improved performance and readability over a manual loop.
	replacer := strings.NewReplacer(
		"<", "_",
		">", "_",
		":", "_",
		"\"", "_",
		"/", "_",
		"\\", "_",
		"|", "_",
		"?", "_",
		"*", "_",
	)

	return replacer.Replace(filename)
}
