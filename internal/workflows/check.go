// SPDX-License-Identifier: Apache-2.0

package workflows

import (
	"github.com/automa-saga/automa"

	"github.com/raven-assistant/ravenctl/internal/config"
	"github.com/raven-assistant/ravenctl/internal/core"
	"github.com/raven-assistant/ravenctl/internal/workflows/steps"
	"github.com/raven-assistant/ravenctl/pkg/ollama"
	"github.com/raven-assistant/ravenctl/pkg/python"
	"github.com/raven-assistant/ravenctl/pkg/whisper"
)

// NewCheckWorkflow builds the troubleshooting workflow. Each check collects
// its finding and succeeds; the final step fails when any issue was found so
// the command exits non-zero.
func NewCheckWorkflow(cfg config.InstallerConfig) automa.Builder {
	venv := python.NewVenv(core.VenvDir())
	whisperManager := whisper.NewManager(core.ModelsDir())
	ollamaManager := ollama.NewManager()

	findings := &steps.Findings{}

	return automa.NewWorkflowBuilder().
		WithId("check").
		Steps(
			steps.CheckVenvPresent(venv, findings),
			steps.CheckVenvPip(venv, findings),
			steps.CheckOllamaInstalled(ollamaManager, findings),
			steps.CheckOllamaRunning(ollamaManager, findings),
			steps.CheckOllamaModels(ollamaManager, cfg.OllamaModels, findings),
			steps.CheckWhisperModel(whisperManager, cfg.WhisperModel, findings),
			steps.SummarizeFindings(findings),
		)
}
