// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func resetConfig(t *testing.T) {
	t.Helper()
	orig := globalConfig
	t.Cleanup(func() { globalConfig = orig })
}

func TestDefaults(t *testing.T) {
	cfg := Get()
	require.Equal(t, "medium", cfg.Installer.WhisperModel)
	require.Equal(t, []string{"llama3.1:8b", "qwen2.5vl:7b"}, cfg.Installer.OllamaModels)
	require.True(t, cfg.Log.ConsoleLogging)
}

func TestInitialize_FromFile(t *testing.T) {
	resetConfig(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `log:
  level: info
  consoleLogging: true
installer:
  projectDir: /opt/raven
  whisperModel: small
  ollamaModels:
    - llama3.1:8b
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	require.NoError(t, Initialize(path))

	cfg := Get()
	require.Equal(t, "/opt/raven", cfg.Installer.ProjectDir)
	require.Equal(t, "small", cfg.Installer.WhisperModel)
	require.Equal(t, []string{"llama3.1:8b"}, cfg.Installer.OllamaModels)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestInitialize_MissingFile(t *testing.T) {
	resetConfig(t)

	err := Initialize(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestInitialize_EmptyPathKeepsDefaults(t *testing.T) {
	resetConfig(t)

	require.NoError(t, Initialize(""))
	require.Equal(t, "medium", Get().Installer.WhisperModel)
}

func TestInstallerConfig_Validate(t *testing.T) {
	valid := InstallerConfig{
		ProjectDir:   "/opt/raven",
		WhisperModel: "medium",
		OllamaModels: []string{"llama3.1:8b"},
	}
	require.NoError(t, valid.Validate())

	bad := valid
	bad.ProjectDir = "../escape"
	require.Error(t, bad.Validate())

	bad = valid
	bad.WhisperModel = "bad model"
	require.Error(t, bad.Validate())

	bad = valid
	bad.OllamaModels = []string{"ok", "not ok"}
	require.Error(t, bad.Validate())
}

func TestOverrideInstallerConfig(t *testing.T) {
	resetConfig(t)

	OverrideInstallerConfig(InstallerConfig{ProjectDir: "/srv/raven", AssumeYes: true})
	cfg := Get()
	require.Equal(t, "/srv/raven", cfg.Installer.ProjectDir)
	require.True(t, cfg.Installer.AssumeYes)

	// empty values leave current settings untouched
	OverrideInstallerConfig(InstallerConfig{})
	require.Equal(t, "/srv/raven", Get().Installer.ProjectDir)
	require.Equal(t, "medium", Get().Installer.WhisperModel)
}
