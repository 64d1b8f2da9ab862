// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/automa-saga/automa"
	"github.com/stretchr/testify/require"

	"github.com/raven-assistant/ravenctl/internal/core"
	"github.com/raven-assistant/ravenctl/pkg/fsx"
)

func TestRemoveVenv(t *testing.T) {
	dir := useTempProjectDir(t)

	writeFakeVenv(t, core.VenvDir())
	recordInstallState(VenvComponent, "3.11.2")

	fileManager, err := fsx.NewManager()
	require.NoError(t, err)

	report := buildAndExecute(t, RemoveVenv(fileManager))
	require.Equal(t, automa.StatusSuccess, report.Status)
	require.NoDirExists(t, filepath.Join(dir, "venv"))
	require.False(t, installStateExists(VenvComponent))

	// second run is a no-op
	report = buildAndExecute(t, RemoveVenv(fileManager))
	require.Equal(t, automa.StatusSuccess, report.Status)
}

func TestRemoveRunScripts(t *testing.T) {
	dir := useTempProjectDir(t)

	runSh := filepath.Join(dir, "run.sh")
	runBat := filepath.Join(dir, "run.bat")
	require.NoError(t, os.WriteFile(runSh, []byte("#!/bin/bash\n"), 0o755))
	require.NoError(t, os.WriteFile(runBat, []byte("@echo off\r\n"), 0o644))

	fileManager, err := fsx.NewManager()
	require.NoError(t, err)

	report := buildAndExecute(t, RemoveRunScripts(fileManager))
	require.Equal(t, automa.StatusSuccess, report.Status)
	require.NoFileExists(t, runSh)
	require.NoFileExists(t, runBat)
}

func TestRemoveModels(t *testing.T) {
	useTempProjectDir(t)

	require.NoError(t, os.MkdirAll(core.ModelsDir(), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(core.ModelsDir(), "medium.pt"), []byte("weights"), 0o644))

	fileManager, err := fsx.NewManager()
	require.NoError(t, err)

	report := buildAndExecute(t, RemoveModels(fileManager))
	require.Equal(t, automa.StatusSuccess, report.Status)
	require.NoDirExists(t, core.ModelsDir())
}
