// SPDX-License-Identifier: Apache-2.0

package workflows

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/raven-assistant/ravenctl/internal/config"
)

func testInstallerConfig() config.InstallerConfig {
	return config.InstallerConfig{
		WhisperModel: "medium",
		OllamaModels: []string{"llama3.1:8b", "qwen2.5vl:7b"},
	}
}

func TestNewInstallWorkflow_NativeBuilds(t *testing.T) {
	t.Parallel()

	b, err := NewInstallWorkflow(testInstallerConfig())
	require.NoError(t, err)

	wf, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, "install", wf.Id())
}

func TestNewInstallWorkflow_DelegateBuilds(t *testing.T) {
	t.Parallel()

	cfg := testInstallerConfig()
	cfg.Delegate = "install.py"

	b, err := NewInstallWorkflow(cfg)
	require.NoError(t, err)

	wf, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, "install-delegate", wf.Id())
}

func TestNewCheckWorkflow_Builds(t *testing.T) {
	t.Parallel()

	wf, err := NewCheckWorkflow(testInstallerConfig()).Build()
	require.NoError(t, err)
	require.Equal(t, "check", wf.Id())
}

func TestNewUninstallWorkflow_Builds(t *testing.T) {
	t.Parallel()

	b, err := NewUninstallWorkflow()
	require.NoError(t, err)

	wf, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, "uninstall", wf.Id())
}

func TestUsageInstructions(t *testing.T) {
	t.Parallel()

	text := UsageInstructions([]string{"llama3.1:8b", "qwen2.5vl:7b"})
	require.Contains(t, text, "HOW TO USE R.A.V.E.N.")
	require.Contains(t, text, "llama3.1:8b")
	require.Contains(t, text, "qwen2.5vl:7b")
	require.Contains(t, text, "ravenctl check")
}
