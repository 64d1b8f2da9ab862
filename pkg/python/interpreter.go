// SPDX-License-Identifier: Apache-2.0

package python

import (
	"context"

	"github.com/Masterminds/semver/v3"
	"github.com/joomcode/errorx"

	"github.com/raven-assistant/ravenctl/pkg/software"
)

// MinPythonVersion is the minimum interpreter version required by the assistant runtime.
const MinPythonVersion = "3.8.0"

// interpreterCandidates are tried in order when resolving the interpreter on PATH.
var interpreterCandidates = []string{"python3", "python"}

var versionSpec = software.VersionDetectionSpec{
	Arguments: "--version",
	Regex:     `[0-9]+\.[0-9]+(\.[0-9]+)?`,
}

// Interpreter describes a resolved Python interpreter.
type Interpreter struct {
	Path    string
	Version *semver.Version
}

// MeetsMinimum reports whether the interpreter satisfies MinPythonVersion.
func (i *Interpreter) MeetsMinimum() bool {
	return !i.Version.LessThan(semver.MustParse(MinPythonVersion))
}

// FindInterpreter locates a Python 3 interpreter on PATH. Candidates are tried
// in order and the first one that resolves and reports a parseable version wins.
// The caller is responsible for checking MeetsMinimum.
func FindInterpreter(ctx context.Context, detector software.ProgramDetector) (*Interpreter, error) {
	var lastErr error

	for _, candidate := range interpreterCandidates {
		info, err := detector.GetProgramInfo(ctx, software.ExecutableSpec{
			Name:        candidate,
			VersionInfo: versionSpec,
		})
		if err != nil {
			lastErr = err
			continue
		}

		version, err := semver.NewVersion(info.GetVersion())
		if err != nil {
			lastErr = errorx.IllegalFormat.Wrap(err, "failed to parse interpreter version %q at %q",
				info.GetVersion(), info.GetPath())
			continue
		}

		// python2 installations also answer to "python"
		if version.Major() < 3 {
			lastErr = errorx.IllegalState.New("interpreter at %q is Python %s, Python 3 is required",
				info.GetPath(), version.String())
			continue
		}

		return &Interpreter{
			Path:    info.GetPath(),
			Version: version,
		}, nil
	}

	if lastErr == nil {
		lastErr = errorx.IllegalState.New("no interpreter candidates configured")
	}

	return nil, errorx.IllegalState.Wrap(lastErr, "no Python 3 interpreter found on PATH (tried %v)",
		interpreterCandidates)
}
