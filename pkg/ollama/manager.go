// SPDX-License-Identifier: Apache-2.0

package ollama

import (
	"context"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/joomcode/errorx"
	"github.com/rs/zerolog"

	"github.com/raven-assistant/ravenctl/pkg/detect"
	"github.com/raven-assistant/ravenctl/pkg/logx"
	"github.com/raven-assistant/ravenctl/pkg/sanity"
	"github.com/raven-assistant/ravenctl/pkg/software"
	"github.com/raven-assistant/ravenctl/pkg/systemd"
)

const (
	// ServiceName is the systemd unit managing the Ollama daemon on Linux.
	ServiceName = "ollama"

	// DefaultPullTimeout bounds a single model pull. Large models on slow
	// links can legitimately take close to an hour.
	DefaultPullTimeout = time.Hour

	linuxInstallScriptURL = "https://ollama.com/install.sh"

	// serveStartupDelay gives a detached `ollama serve` time to bind its port.
	serveStartupDelay = 2 * time.Second
)

var versionSpec = software.VersionDetectionSpec{
	Arguments: "--version",
	Regex:     `[0-9]+\.[0-9]+\.[0-9]+`,
}

// Subprocess seams, package variables so tests can intercept invocations.
var (
	runCommand = func(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error {
		cmd := exec.CommandContext(ctx, name, args...)
		cmd.Stdout = stdout
		cmd.Stderr = stderr
		return cmd.Run()
	}

	outputCommand = func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return exec.CommandContext(ctx, name, args...).Output()
	}

	systemdUnitActive = func(ctx context.Context, name string) (bool, error) {
		return systemd.IsServiceRunning(ctx, name)
	}

	startDetached = func(name string, args ...string) error {
		cmd := exec.Command(name, args...)
		cmd.Stdout = nil
		cmd.Stderr = nil
		if err := cmd.Start(); err != nil {
			return err
		}
		// the daemon keeps running after the installer exits
		return cmd.Process.Release()
	}
)

// Manager installs the Ollama runtime, manages its service and pulls models.
type Manager struct {
	detector    software.ProgramDetector
	logger      *zerolog.Logger
	pullTimeout time.Duration
}

type ManagerOption = func(m *Manager)

// WithDetector allows injecting a program detector instance.
func WithDetector(d software.ProgramDetector) ManagerOption {
	return func(m *Manager) {
		if d != nil {
			m.detector = d
		}
	}
}

// WithPullTimeout overrides the per-model pull timeout.
func WithPullTimeout(timeout time.Duration) ManagerOption {
	return func(m *Manager) {
		if timeout > 0 {
			m.pullTimeout = timeout
		}
	}
}

// WithLogger allows injecting a logger instance.
func WithLogger(logger *zerolog.Logger) ManagerOption {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewManager returns a Manager with default settings.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		detector:    software.NewProgramDetector(nil),
		logger:      logx.As(),
		pullTimeout: DefaultPullTimeout,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// IsInstalled reports whether the ollama executable is reachable on PATH.
func (m *Manager) IsInstalled() bool {
	_, err := m.detector.DetectExecutablePath("ollama")
	return err == nil
}

// Version returns the installed Ollama version.
func (m *Manager) Version(ctx context.Context) (string, error) {
	info, err := m.detector.GetProgramInfo(ctx, software.ExecutableSpec{
		Name:        "ollama",
		VersionInfo: versionSpec,
	})
	if err != nil {
		return "", err
	}

	return info.GetVersion(), nil
}

// Install installs the Ollama runtime for the detected platform.
// On Linux the official install script is used, on macOS Homebrew.
func (m *Manager) Install(ctx context.Context, osInfo *detect.OSInfo) error {
	switch osInfo.Type {
	case detect.OSTypeLinux:
		m.logger.Info().Str("url", linuxInstallScriptURL).Msg("Installing Ollama via install script")
		err := runCommand(ctx, os.Stdout, os.Stderr, "sh", "-c",
			"curl -fsSL "+linuxInstallScriptURL+" | sh")
		if err != nil {
			return software.NewInstallationError(err, "ollama")
		}
		return nil

	case detect.OSTypeDarwin:
		m.logger.Info().Msg("Installing Ollama via Homebrew")
		err := runCommand(ctx, os.Stdout, os.Stderr, "brew", "install", "ollama")
		if err != nil {
			return software.NewInstallationError(err, "ollama")
		}
		return nil

	default:
		return errorx.UnsupportedOperation.New(
			"automatic Ollama installation is not supported on %s, download it from https://ollama.com/download",
			osInfo.Type)
	}
}

// ServiceRunning reports whether the Ollama daemon is up. On Linux the
// systemd unit state is authoritative; elsewhere, or when systemd is not
// reachable, `ollama list` serves as the probe since it only succeeds when
// the daemon answers.
func (m *Manager) ServiceRunning(ctx context.Context) bool {
	if runtime.GOOS == detect.OSTypeLinux {
		active, err := systemdUnitActive(ctx, ServiceName)
		if err == nil {
			return active
		}
		m.logger.Debug().Err(err).Msg("systemd unit state unavailable, probing the daemon directly")
	}

	_, err := outputCommand(ctx, "ollama", "list")
	return err == nil
}

// StartService starts the Ollama daemon. On Linux the systemd unit is enabled
// and restarted; on macOS `ollama serve` is started detached since Homebrew
// installations have no service manager integration by default.
func (m *Manager) StartService(ctx context.Context, osInfo *detect.OSInfo) error {
	switch osInfo.Type {
	case detect.OSTypeLinux:
		if err := systemd.EnableService(ctx, ServiceName); err != nil {
			// the install script usually enables the unit already
			m.logger.Warn().Err(err).Msg("Failed to enable Ollama service")
		}
		return systemd.RestartService(ctx, ServiceName)

	case detect.OSTypeDarwin:
		if err := startDetached("ollama", "serve"); err != nil {
			return errorx.ExternalError.Wrap(err, "failed to start ollama serve")
		}

		select {
		case <-time.After(serveStartupDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
		return nil

	default:
		return errorx.UnsupportedOperation.New("starting the Ollama service is not supported on %s", osInfo.Type)
	}
}

// ListModels returns the model names known to the local Ollama daemon.
func (m *Manager) ListModels(ctx context.Context) ([]string, error) {
	output, err := outputCommand(ctx, "ollama", "list")
	if err != nil {
		return nil, errorx.ExternalError.Wrap(err, "failed to list Ollama models, is the service running?")
	}

	return parseModelList(string(output)), nil
}

// parseModelList extracts model names from `ollama list` output. The first
// column holds the name, the header row is skipped.
func parseModelList(output string) []string {
	var models []string

	for i, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if i == 0 && strings.EqualFold(fields[0], "NAME") {
			continue
		}
		models = append(models, fields[0])
	}

	return models
}

// MissingModels returns the required models not present locally.
func (m *Manager) MissingModels(ctx context.Context, required []string) ([]string, error) {
	installed, err := m.ListModels(ctx)
	if err != nil {
		return nil, err
	}

	present := make(map[string]struct{}, len(installed))
	for _, name := range installed {
		present[name] = struct{}{}
	}

	var missing []string
	for _, name := range required {
		if _, found := present[name]; !found {
			missing = append(missing, name)
		}
	}

	return missing, nil
}

// Pull downloads the named model through the Ollama daemon. The operation is
// bounded by the manager's pull timeout.
func (m *Manager) Pull(ctx context.Context, model string) error {
	if err := sanity.ValidateModelName(model); err != nil {
		return err
	}

	pullCtx, cancel := context.WithTimeout(ctx, m.pullTimeout)
	defer cancel()

	m.logger.Info().Str("model", model).Msg("Pulling Ollama model")

	if err := runCommand(pullCtx, os.Stdout, os.Stderr, "ollama", "pull", model); err != nil {
		return errorx.ExternalError.Wrap(err, "failed to pull Ollama model %q", model)
	}

	return nil
}
