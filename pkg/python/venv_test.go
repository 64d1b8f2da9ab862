// SPDX-License-Identifier: Apache-2.0

package python

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	name string
	args []string
}

func interceptRunCommand(t *testing.T, err error) *[]recordedCall {
	t.Helper()

	var calls []recordedCall
	orig := runCommand
	runCommand = func(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error {
		calls = append(calls, recordedCall{name: name, args: args})
		return err
	}
	t.Cleanup(func() { runCommand = orig })

	return &calls
}

func TestVenv_BinDir(t *testing.T) {
	v := NewVenv(filepath.Join("project", "venv"))

	if runtime.GOOS == "windows" {
		require.Equal(t, filepath.Join("project", "venv", "Scripts"), v.BinDir())
	} else {
		require.Equal(t, filepath.Join("project", "venv", "bin"), v.BinDir())
	}
}

func TestVenv_Create(t *testing.T) {
	calls := interceptRunCommand(t, nil)

	v := NewVenv("/tmp/raven/venv")
	require.NoError(t, v.Create(context.Background(), "/usr/bin/python3"))

	require.Len(t, *calls, 1)
	require.Equal(t, "/usr/bin/python3", (*calls)[0].name)
	require.Equal(t, []string{"-m", "venv", "/tmp/raven/venv"}, (*calls)[0].args)
}

func TestVenv_UpgradePip(t *testing.T) {
	calls := interceptRunCommand(t, nil)

	v := NewVenv("/tmp/raven/venv")
	require.NoError(t, v.UpgradePip(context.Background()))

	require.Len(t, *calls, 1)
	require.Equal(t, v.PythonPath(), (*calls)[0].name)
	require.Equal(t, []string{"-m", "pip", "install", "--upgrade", "pip"}, (*calls)[0].args)
}

func TestVenv_InstallRequirements(t *testing.T) {
	calls := interceptRunCommand(t, nil)

	reqs := filepath.Join(t.TempDir(), "requirements.txt")
	require.NoError(t, os.WriteFile(reqs, []byte("openai-whisper\n"), 0o644))

	v := NewVenv("/tmp/raven/venv")
	require.NoError(t, v.InstallRequirements(context.Background(), reqs))

	require.Len(t, *calls, 1)
	require.Equal(t, []string{"-m", "pip", "install", "-r", reqs}, (*calls)[0].args)
}

func TestVenv_InstallRequirementsMissingFile(t *testing.T) {
	calls := interceptRunCommand(t, nil)

	v := NewVenv("/tmp/raven/venv")
	err := v.InstallRequirements(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	require.Empty(t, *calls)
}

func TestVenv_Exists(t *testing.T) {
	dir := t.TempDir()
	v := NewVenv(dir)
	require.False(t, v.Exists())

	require.NoError(t, os.MkdirAll(v.BinDir(), 0o755))
	require.NoError(t, os.WriteFile(v.PythonPath(), []byte("#!/bin/sh\n"), 0o755))
	require.True(t, v.Exists())
}
