package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultSource is the script the tools read when no path is given.
const DefaultSource = "test.txt"

func GetPathInfo(relPath string) (fullPath string, parentDir string, err error) {
	// Convert to absolute path (resolves ../../ and cleans the path)
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}

	// Get the directory containing the file
	parentDir = filepath.Dir(fullPath)

	return fullPath, parentDir, nil
}

// ReadSource resolves relPath (DefaultSource when empty) and returns its
// absolute path and contents.
func ReadSource(relPath string) (fullPath string, src string, err error) {
	if relPath == "" {
		relPath = DefaultSource
	}
	fullPath, _, err = GetPathInfo(relPath)
	if err != nil {
		return "", "", fmt.Errorf("resolve %q: %w", relPath, err)
	}
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return fullPath, "", fmt.Errorf("read source: %w", err)
	}
	return fullPath, string(data), nil
}
