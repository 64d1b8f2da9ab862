// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"testing"

	"github.com/automa-saga/automa"
	"github.com/stretchr/testify/require"

	"github.com/raven-assistant/ravenctl/pkg/detect"
	"github.com/raven-assistant/ravenctl/pkg/ollama"
)

func TestInstallOllama_AlreadyInstalled(t *testing.T) {
	useTempProjectDir(t)

	detector := &fakeDetector{programs: map[string]*fakeProgramInfo{
		"ollama": {path: "/usr/local/bin/ollama", version: "0.5.7"},
	}}
	manager := ollama.NewManager(ollama.WithDetector(detector))
	osInfo := &detect.OSInfo{Type: detect.OSTypeLinux, Flavor: detect.OSFlavorLinuxUbuntu}

	report := buildAndExecute(t, InstallOllama(manager, osInfo))

	require.Equal(t, automa.StatusSuccess, report.Status)
	require.NoError(t, report.Error)
	// install state is only recorded when this step performed the install
	require.False(t, installStateExists(OllamaComponent))
}
