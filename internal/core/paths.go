// SPDX-License-Identifier: Apache-2.0

package core

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

const (
	DefaultFilePerm os.FileMode = 0o644
	DefaultDirPerm  os.FileMode = 0o755
	ExecutablePerm  os.FileMode = 0o755
)

var (
	mu         sync.RWMutex
	projectDir = "."
)

func init() {
	if wd, err := os.Getwd(); err == nil {
		projectDir = wd
	}
}

// SetProjectDir overrides the project directory all other paths derive from.
func SetProjectDir(dir string) {
	mu.Lock()
	defer mu.Unlock()
	projectDir = dir
}

// ProjectDir returns the assistant project directory.
func ProjectDir() string {
	mu.RLock()
	defer mu.RUnlock()
	return projectDir
}

// VenvDir returns the Python virtual environment directory.
func VenvDir() string {
	return filepath.Join(ProjectDir(), "venv")
}

// ModelsDir returns the directory holding downloaded speech model artifacts.
func ModelsDir() string {
	return filepath.Join(ProjectDir(), "models")
}

// RequirementsFile returns the default Python requirements file location.
func RequirementsFile() string {
	return filepath.Join(ProjectDir(), "requirements.txt")
}

// RunScriptPath returns the generated launcher script location.
func RunScriptPath() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(ProjectDir(), "run.bat")
	}
	return filepath.Join(ProjectDir(), "run.sh")
}

// StateDir returns the directory holding install state markers.
func StateDir() string {
	return filepath.Join(ProjectDir(), ".ravenctl", "state")
}

// LogsDir returns the directory holding installer log files.
func LogsDir() string {
	return filepath.Join(ProjectDir(), ".ravenctl", "logs")
}

// DiagnosticsDir returns the directory holding saved workflow reports.
func DiagnosticsDir() string {
	return filepath.Join(ProjectDir(), ".ravenctl", "diagnostics")
}

// LocksDir returns the directory holding process lock files.
func LocksDir() string {
	return filepath.Join(ProjectDir(), ".ravenctl")
}
