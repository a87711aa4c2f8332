package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FastqExtensions are the accepted (lower-case) input suffixes.
var FastqExtensions = []string{".fastq", ".fq"}

// HasFastqExtension reports whether path ends in a recognised FASTQ suffix, ignoring case.
func HasFastqExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range FastqExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// EnsureDir creates dir (and parents) if missing. Existing directories are fine;
// an existing non-directory at dir is an error.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("failed to stat directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	return nil
}

// RemoveIfExists deletes path, treating a missing file as success.
func RemoveIfExists(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
