// SPDX-License-Identifier: Apache-2.0

package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/raven-assistant/ravenctl/internal/core"
	"github.com/raven-assistant/ravenctl/pkg/fsx"
)

func TestManager_StateLifecycle(t *testing.T) {
	core.SetProjectDir(t.TempDir())
	t.Cleanup(func() { core.SetProjectDir(".") })

	fm, err := fsx.NewManager()
	require.NoError(t, err)
	m := NewManager(fm)

	exists, err := m.Exists("venv", TypeInstalled)
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, m.RecordState("venv", TypeInstalled, "3.11.2"))

	exists, err = m.Exists("venv", TypeInstalled)
	require.NoError(t, err)
	require.True(t, exists)

	// other state types stay independent
	exists, err = m.Exists("venv", TypeConfigured)
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, m.RemoveState("venv", TypeInstalled))
	exists, err = m.Exists("venv", TypeInstalled)
	require.NoError(t, err)
	require.False(t, exists)
}
