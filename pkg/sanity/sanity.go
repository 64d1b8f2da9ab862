// SPDX-License-Identifier: Apache-2.0

package sanity

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joomcode/errorx"
)

var (
	filenamePattern   = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
	identifierPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)
	modelNamePattern  = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._:-]*$`)
)

// SanitizePath cleans the provided path and rejects parent-directory
// traversal. It returns the cleaned path on success.
func SanitizePath(p string) (string, error) {
	if p == "" {
		return "", errorx.IllegalArgument.New("path cannot be empty")
	}

	cleaned := filepath.Clean(p)
	for _, part := range strings.Split(filepath.ToSlash(cleaned), "/") {
		if part == ".." {
			return "", errorx.IllegalArgument.New("path must not contain parent directory traversal: %s", p)
		}
	}

	return cleaned, nil
}

// Filename validates that the given name is a plain file name without any
// path separators. It returns the name on success.
func Filename(name string) (string, error) {
	if name == "" {
		return "", errorx.IllegalArgument.New("file name cannot be empty")
	}

	if !filenamePattern.MatchString(name) {
		return "", errorx.IllegalArgument.New("invalid file name: %s", name)
	}

	return name, nil
}

// ValidateIdentifier validates simple identifiers (directory names,
// service names and similar).
func ValidateIdentifier(s string) error {
	if s == "" {
		return errorx.IllegalArgument.New("identifier cannot be empty")
	}

	if !identifierPattern.MatchString(s) {
		return errorx.IllegalArgument.New("invalid identifier: %s", s)
	}

	return nil
}

// ValidateModelName validates an Ollama style model reference such as
// "llama3.1:8b" or "qwen2.5vl:7b".
func ValidateModelName(s string) error {
	if s == "" {
		return errorx.IllegalArgument.New("model name cannot be empty")
	}

	if !modelNamePattern.MatchString(s) {
		return errorx.IllegalArgument.New("invalid model name: %s", s)
	}

	return nil
}
