// SPDX-License-Identifier: Apache-2.0

package fsx

import (
	"os"
)

// Manager abstracts the file system operations used by the installer so
// that callers can be tested against a temp directory or a fake.
type Manager interface {
	// PathExists determines if the source path exists. This method does not follow symlinks.
	PathExists(path string) (os.FileInfo, bool, error)
	// IsRegularFile returns true if the path is a regular file; otherwise, false is returned.
	IsRegularFile(path string) bool
	// IsDirectory returns true if the path is a directory; otherwise, false is returned.
	IsDirectory(path string) bool
	// CreateDirectory creates a directory at the path specified by the path argument.
	// If the path argument refers to an existing directory, then no action is taken and no error is returned.
	// If the path argument refers to an existing file, then an error is returned.
	// If the path argument refers to a non-existent parent path, then an error is returned unless
	// the recursive argument is true.
	CreateDirectory(path string, recursive bool) error
	// CopyFile copies a single file. The src argument must reference an existing file.
	// If the dst argument refers to an existing file, then the existing file will be replaced if the
	// overwrite argument is true; otherwise, an error will be returned.
	CopyFile(src string, dst string, overwrite bool) error
	// WriteFile writes the provided content to the path, replacing any existing file.
	WriteFile(path string, content []byte) error
	// ReadFile reads the file at the path. A negative limit reads the whole file,
	// otherwise at most limit bytes are returned.
	ReadFile(path string, limit int64) ([]byte, error)
	// RemoveAll removes the path and any children it contains.
	RemoveAll(path string) error
	// WritePermissions changes the permission bits of the path.
	WritePermissions(path string, perm os.FileMode) error
}

// NewManager returns the default file system manager backed by the OS.
func NewManager() (Manager, error) {
	return &osManager{}, nil
}
