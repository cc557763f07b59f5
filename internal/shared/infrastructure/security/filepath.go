// Package security validates user-supplied file paths for import and export.
package security

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrEmptyPath      = errors.New("file path cannot be empty")
	ErrForbiddenChars = errors.New("file path contains forbidden character")
)

// forbiddenChars are shell metacharacters never expected in a bundle path.
const forbiddenChars = ";&|$`(){}<>!\n\r"

// ValidateFilePath cleans path, makes it absolute and resolves symlinks
// when the file exists.
func ValidateFilePath(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}
	if i := strings.IndexAny(path, forbiddenChars); i >= 0 {
		return "", fmt.Errorf("%w %q: %s", ErrForbiddenChars, path[i], path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve file path: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return abs, nil
		}
		return "", fmt.Errorf("failed to resolve file path: %w", err)
	}
	return resolved, nil
}

// SafeOpen opens an existing file for reading after validating its path.
func SafeOpen(path string) (*os.File, error) {
	clean, err := ValidateFilePath(path)
	if err != nil {
		return nil, err
	}
	// #nosec G304 - path is validated above
	return os.Open(clean)
}

// SafeCreate creates or truncates a file after validating its path. The
// parent directory must already exist.
func SafeCreate(path string) (*os.File, error) {
	clean, err := ValidateFilePath(path)
	if err != nil {
		return nil, err
	}
	// #nosec G304 - path is validated above
	return os.OpenFile(clean, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
}
