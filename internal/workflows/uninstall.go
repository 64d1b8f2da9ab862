// SPDX-License-Identifier: Apache-2.0

package workflows

import (
	"github.com/automa-saga/automa"

	"github.com/raven-assistant/ravenctl/internal/workflows/steps"
	"github.com/raven-assistant/ravenctl/pkg/fsx"
)

// NewUninstallWorkflow builds the workflow removing everything the installer
// created: the virtual environment, downloaded models, launcher scripts and
// install state. System packages and the Ollama runtime are left alone since
// other applications may depend on them.
func NewUninstallWorkflow() (automa.Builder, error) {
	fileManager, err := fsx.NewManager()
	if err != nil {
		return nil, err
	}

	return automa.NewWorkflowBuilder().
		WithId("uninstall").
		Steps(
			steps.RemoveVenv(fileManager),
			steps.RemoveModels(fileManager),
			steps.RemoveRunScripts(fileManager),
			steps.RemoveInstallState(fileManager),
		), nil
}
