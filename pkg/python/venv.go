// SPDX-License-Identifier: Apache-2.0

package python

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/joomcode/errorx"
	"github.com/rs/zerolog"

	"github.com/raven-assistant/ravenctl/pkg/logx"
)

// runCommand executes an external program with inherited output streams.
// It is a package variable so tests can intercept subprocess invocations.
var runCommand = func(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// Venv manages a Python virtual environment on disk.
type Venv struct {
	dir    string
	logger *zerolog.Logger
}

// NewVenv returns a Venv rooted at the given directory. The directory does
// not need to exist yet.
func NewVenv(dir string) *Venv {
	return &Venv{
		dir:    dir,
		logger: logx.As(),
	}
}

// Dir returns the virtual environment root directory.
func (v *Venv) Dir() string {
	return v.dir
}

// BinDir returns the directory holding the environment's executables.
// Windows virtual environments use "Scripts" instead of "bin".
func (v *Venv) BinDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(v.dir, "Scripts")
	}
	return filepath.Join(v.dir, "bin")
}

// PythonPath returns the interpreter inside the virtual environment.
func (v *Venv) PythonPath() string {
	name := "python"
	if runtime.GOOS == "windows" {
		name = "python.exe"
	}
	return filepath.Join(v.BinDir(), name)
}

// Exists reports whether the virtual environment has already been created.
func (v *Venv) Exists() bool {
	info, err := os.Stat(v.PythonPath())
	return err == nil && info.Mode().IsRegular()
}

// Create builds the virtual environment using the given base interpreter.
func (v *Venv) Create(ctx context.Context, interpreterPath string) error {
	v.logger.Info().Str("dir", v.dir).Str("interpreter", interpreterPath).Msg("Creating virtual environment")

	err := runCommand(ctx, os.Stdout, os.Stderr, interpreterPath, "-m", "venv", v.dir)
	if err != nil {
		return errorx.ExternalError.Wrap(err, "failed to create virtual environment at %q", v.dir)
	}

	return nil
}

// UpgradePip upgrades pip inside the virtual environment.
func (v *Venv) UpgradePip(ctx context.Context) error {
	v.logger.Info().Str("dir", v.dir).Msg("Upgrading pip")

	err := runCommand(ctx, os.Stdout, os.Stderr, v.PythonPath(), "-m", "pip", "install", "--upgrade", "pip")
	if err != nil {
		return errorx.ExternalError.Wrap(err, "failed to upgrade pip in %q", v.dir)
	}

	return nil
}

// InstallRequirements installs the dependencies listed in the requirements file
// into the virtual environment. Downloading and building wheels can take a
// while, so the subprocess output is left visible to the user.
func (v *Venv) InstallRequirements(ctx context.Context, requirementsPath string) error {
	if _, err := os.Stat(requirementsPath); err != nil {
		return errorx.IllegalArgument.Wrap(err, "requirements file not found: %q", requirementsPath)
	}

	v.logger.Info().Str("requirements", requirementsPath).Msg("Installing Python dependencies")

	err := runCommand(ctx, os.Stdout, os.Stderr, v.PythonPath(), "-m", "pip", "install", "-r", requirementsPath)
	if err != nil {
		return errorx.ExternalError.Wrap(err, "failed to install requirements from %q", requirementsPath)
	}

	return nil
}
