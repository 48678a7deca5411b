package util

import (
	"errors"
	"strings"
)

var errBadFileName = errors.New("invalid file name")

var separatorReplacer = strings.NewReplacer("/", "_", "\\", "_")

// SanitizeFileName flattens path separators out of a client-supplied file name
// and rejects traversal attempts outright.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errBadFileName
	}
	cleaned := separatorReplacer.Replace(strings.TrimSpace(name))
	if cleaned == "" {
		return "", errBadFileName
	}
	return cleaned, nil
}
