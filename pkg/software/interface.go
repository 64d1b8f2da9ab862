// SPDX-License-Identifier: Apache-2.0

package software

import (
	"context"
	"os"

	"github.com/bluet/syspkg"
)

// Package manages a single system package through the platform package manager.
type Package interface {
	Name() string
	Install() (*syspkg.PackageInfo, error)
	Uninstall() (*syspkg.PackageInfo, error)
	Info() (*syspkg.PackageInfo, error)
	IsInstalled() bool
}

// VersionDetectionSpec describes how to obtain and parse a program's version.
type VersionDetectionSpec struct {
	// Arguments is the space separated argument list passed to the program (e.g. "--version").
	Arguments string
	// Regex extracts the version string from the program output.
	Regex string
}

// ExecutableSpec describes an executable the installer needs to locate.
type ExecutableSpec struct {
	// Name is the executable name as found on PATH (e.g. "python3", "ollama").
	Name string
	// DefaultLocation is checked before PATH resolution when set.
	DefaultLocation string
	// VersionInfo describes how to detect the program version.
	VersionInfo VersionDetectionSpec
}

// ProgramInfo exposes details of a located executable.
type ProgramInfo interface {
	GetPath() string
	GetVersion() string
	GetHash() string
	GetFileMode() os.FileMode
	IsExecAny() bool
}

// ProgramDetector locates executables and determines their versions.
type ProgramDetector interface {
	DetectExecutablePath(name string) (string, error)
	DetectProgramVersion(path string, versionInfo VersionDetectionSpec) (string, error)
	GetProgramInfo(ctx context.Context, spec ExecutableSpec) (ProgramInfo, error)
}
