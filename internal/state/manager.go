// SPDX-License-Identifier: Apache-2.0

package state

import (
	"fmt"
	"path"

	"github.com/joomcode/errorx"

	"github.com/raven-assistant/ravenctl/internal/core"
	"github.com/raven-assistant/ravenctl/pkg/fsx"
)

// Type represents the type of state being managed
type Type string

const (
	// TypeInstalled indicates software installation state
	TypeInstalled Type = "installed"
	// TypeConfigured indicates software configuration state
	TypeConfigured Type = "configured"
)

// Manager handles state persistence for installation and configuration steps.
// Completed steps leave a marker file so a re-run can skip work that is
// already done.
type Manager struct {
	fileManager fsx.Manager
}

// NewManager creates a new state manager
func NewManager(fileManager fsx.Manager) *Manager {
	return &Manager{
		fileManager: fileManager,
	}
}

// getStatePath returns the path to the state file for a given component and state type
func (m *Manager) getStatePath(componentName string, stateType Type) string {
	return path.Join(core.StateDir(), fmt.Sprintf("%s.%s", componentName, stateType))
}

// Exists checks if the state file exists for the given component and state type
func (m *Manager) Exists(componentName string, stateType Type) (bool, error) {
	statePath := m.getStatePath(componentName, stateType)
	_, exists, err := m.fileManager.PathExists(statePath)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// RecordState creates a state file for the given component and state type
func (m *Manager) RecordState(componentName string, stateType Type, version string) error {
	if err := m.fileManager.CreateDirectory(core.StateDir(), true); err != nil {
		return errorx.IllegalState.Wrap(err, "failed to create state directory")
	}

	statePath := m.getStatePath(componentName, stateType)
	content := []byte(fmt.Sprintf("%s at version %s\n", stateType, version))

	err := m.fileManager.WriteFile(statePath, content)
	if err != nil {
		return errorx.IllegalState.Wrap(err, "failed to create state file for type %s", stateType)
	}

	return nil
}

// RemoveState removes the state file for the given component and state type
func (m *Manager) RemoveState(componentName string, stateType Type) error {
	statePath := m.getStatePath(componentName, stateType)
	return m.fileManager.RemoveAll(statePath)
}
