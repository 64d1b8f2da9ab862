// SPDX-License-Identifier: Apache-2.0

package fsx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOsManager_CreateDirectory(t *testing.T) {
	t.Parallel()

	m, err := NewManager()
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	require.Error(t, m.CreateDirectory(dir, false))
	require.NoError(t, m.CreateDirectory(dir, true))
	require.True(t, m.IsDirectory(dir))

	// idempotent
	require.NoError(t, m.CreateDirectory(dir, false))

	file := filepath.Join(dir, "file")
	require.NoError(t, m.WriteFile(file, []byte("x")))
	require.Error(t, m.CreateDirectory(file, false))
}

func TestOsManager_CopyFile(t *testing.T) {
	t.Parallel()

	m, err := NewManager()
	require.NoError(t, err)

	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	require.NoError(t, m.WriteFile(src, []byte("hello")))

	require.NoError(t, m.CopyFile(src, dst, false))
	data, err := m.ReadFile(dst, -1)
	require.NoError(t, err)
	require.Equal(t, "hello", string(data))

	require.Error(t, m.CopyFile(src, dst, false))
	require.NoError(t, m.CopyFile(src, dst, true))
}

func TestOsManager_ReadFileLimit(t *testing.T) {
	t.Parallel()

	m, err := NewManager()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "data")
	require.NoError(t, m.WriteFile(path, []byte("0123456789")))

	data, err := m.ReadFile(path, 4)
	require.NoError(t, err)
	require.Equal(t, "0123", string(data))
}

func TestOsManager_WritePermissions(t *testing.T) {
	t.Parallel()

	m, err := NewManager()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "run.sh")
	require.NoError(t, m.WriteFile(path, []byte("#!/bin/bash\n")))
	require.NoError(t, m.WritePermissions(path, 0o755))

	info, ok, err := m.PathExists(path)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}
