package util

import (
	"errors"
	"path/filepath"
	"strings"
)

// SanitizeFileName strips directories from an uploaded name and rejects
// traversal patterns.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "\\", "/")
	s = filepath.Base(s)
	if s == "" || s == "." || s == "/" {
		return "", errors.New("invalid file name")
	}
	return s, nil
}
