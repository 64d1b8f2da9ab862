// SPDX-License-Identifier: Apache-2.0

package software

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/joomcode/errorx"
	"github.com/rs/zerolog"
)

var nolog = zerolog.Nop()

// NewProgramDetector returns the PATH-based ProgramDetector. It works on
// linux, darwin and windows (where PATHEXT resolves python -> python.exe).
func NewProgramDetector(logger *zerolog.Logger) ProgramDetector {
	if logger == nil {
		logger = &nolog
	}

	return &pathProgramDetector{
		logger: logger,
	}
}

// pathProgramDetector resolves executables through the process PATH.
type pathProgramDetector struct {
	logger *zerolog.Logger
}

func (pd *pathProgramDetector) DetectExecutablePath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", NewProgramNotFoundError(err, name)
	}

	return path, nil
}

func (pd *pathProgramDetector) computeProgramHash(path string) ([32]byte, error) {
	hash := [32]byte{}

	b, err := os.ReadFile(path)
	if err != nil {
		return hash, errorx.ExternalError.Wrap(err, "failed to compute sha256 of the program at %q", path)
	}

	hash = sha256.Sum256(b)
	return hash, nil
}

func (pd *pathProgramDetector) DetectProgramVersion(path string, versionInfo VersionDetectionSpec) (string, error) {
	args := strings.Split(versionInfo.Arguments, " ")
	cmd := exec.Command(path, args...)
	verStr, err := cmd.Output()
	if err != nil {
		return "", errorx.ExternalError.Wrap(err, "failed to get program version info args: %q", versionInfo.Arguments)
	}

	reg, err := regexp.Compile(versionInfo.Regex)
	if err != nil {
		return "", errorx.IllegalFormat.Wrap(err, "failed to parse version regex: %q", versionInfo.Regex)
	}

	return reg.FindString(string(verStr)), nil
}

func (pd *pathProgramDetector) GetProgramInfo(ctx context.Context, spec ExecutableSpec) (ProgramInfo, error) {
	var err error
	var statInfo os.FileInfo
	var path string

	pd.logger.Debug().
		Str("name", spec.Name).
		Msg("Scan Software: Checking Software State")

	if spec.DefaultLocation == "" {
		// attempt path resolution if default location was not present
		path, err = pd.DetectExecutablePath(spec.Name)
		if err != nil {
			return nil, err
		}
	} else {
		// try to get info of the executable at the default location
		path = spec.DefaultLocation
		statInfo, err = os.Stat(path)
		if err != nil {
			// attempt path resolution if default location was not accessible
			path, err = pd.DetectExecutablePath(spec.Name)
			if err != nil {
				return nil, err
			}
		}
	}

	// get info of the executable at the path
	if statInfo == nil {
		statInfo, err = os.Stat(path)
		if err != nil {
			return nil, errorx.ExternalError.Wrap(err, "failed to access the program at %q", path)
		}
	}

	// obtain actual hash of executable
	hash, err := pd.computeProgramHash(path)
	if err != nil {
		return nil, err
	}

	// get version of the executable
	version, err := pd.DetectProgramVersion(path, spec.VersionInfo)
	if err != nil {
		return nil, err
	}

	info := &programInfo{
		path:       path,
		mode:       statInfo.Mode(),
		version:    version,
		sha256Hash: fmt.Sprintf("%x", hash),
	}

	pd.logger.Debug().
		Str("name", spec.Name).
		Str("path", info.GetPath()).
		Str("hash", info.GetHash()).
		Str("version", info.GetVersion()).
		Msg("Software State: Identified program details")

	return info, nil
}
