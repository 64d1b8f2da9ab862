// SPDX-License-Identifier: Apache-2.0

package whisper

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/raven-assistant/ravenctl/pkg/logx"
	"github.com/raven-assistant/ravenctl/pkg/software"
)

// Manager downloads Whisper model artifacts into a local models directory.
type Manager struct {
	modelsDir  string
	downloader *software.Downloader
	logger     *zerolog.Logger
}

type ManagerOption = func(m *Manager)

// WithDownloader allows injecting a custom downloader instance.
func WithDownloader(d *software.Downloader) ManagerOption {
	return func(m *Manager) {
		if d != nil {
			m.downloader = d
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

// NewManager returns a Manager storing model artifacts under modelsDir.
func NewManager(modelsDir string, opts ...ManagerOption) *Manager {
	m := &Manager{
		modelsDir:  modelsDir,
		downloader: software.NewDownloader(),
		logger:     logx.As(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// ModelPath returns the on-disk location of the named model artifact.
func (m *Manager) ModelPath(model *Model) string {
	return filepath.Join(m.modelsDir, model.Filename())
}

// IsDownloaded reports whether the model artifact is present and passes
// checksum verification. A corrupt artifact counts as not downloaded.
func (m *Manager) IsDownloaded(model *Model) bool {
	path := m.ModelPath(model)
	if _, err := os.Stat(path); err != nil {
		return false
	}

	return m.downloader.VerifyChecksum(path, model.SHA256, "sha256") == nil
}

// Download fetches the named model artifact unless a verified copy already
// exists. The artifact is downloaded to a temporary file and moved into place
// only after its checksum has been verified.
func (m *Manager) Download(ctx context.Context, name string) error {
	model, err := LookupModel(name)
	if err != nil {
		return err
	}

	if m.IsDownloaded(model) {
		m.logger.Info().Str("model", name).Msg("Whisper model already downloaded")
		return nil
	}

	url, err := model.URL()
	if err != nil {
		return err
	}

	if err = os.MkdirAll(m.modelsDir, 0o755); err != nil {
		return software.NewDownloadError(err, url, 0)
	}

	dest := m.ModelPath(model)
	tmp := dest + ".partial"

	m.logger.Info().Str("model", name).Str("url", url).Msg("Downloading Whisper model")

	if err = m.downloader.Download(ctx, url, tmp); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	if err = m.downloader.VerifyChecksum(tmp, model.SHA256, "sha256"); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	if err = os.Rename(tmp, dest); err != nil {
		_ = os.Remove(tmp)
		return software.NewDownloadError(err, url, 0)
	}

	m.logger.Info().Str("model", name).Str("path", dest).Msg("Whisper model ready")
	return nil
}
