// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"fmt"
	"strings"

	"github.com/automa-saga/automa"

	"github.com/raven-assistant/ravenctl/internal/workflows/notify"
	"github.com/raven-assistant/ravenctl/pkg/detect"
	"github.com/raven-assistant/ravenctl/pkg/logx"
	"github.com/raven-assistant/ravenctl/pkg/ollama"
)

const (
	installOllamaStepId    = "install-ollama"
	startOllamaStepId      = "start-ollama-service"
	pullOllamaModelsStepId = "pull-ollama-models"

	// OllamaComponent names the Ollama runtime in install state markers.
	OllamaComponent = "ollama"
)

// InstallOllama installs the Ollama runtime when it is not already on PATH.
// The assistant cannot run without it, but installation can always be done
// manually, so failure is a warning with download instructions.
func InstallOllama(manager *ollama.Manager, osInfo *detect.OSInfo) automa.Builder {
	return automa.NewStepBuilder().
		WithId(installOllamaStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			if manager.IsInstalled() {
				version, err := manager.Version(ctx)
				if err == nil {
					logx.As().Info().Str("version", version).Msg("Ollama is already installed")
				} else {
					logx.As().Info().Msg("Ollama is already installed")
				}
				return automa.SuccessReport(stp)
			}

			if err := manager.Install(ctx, osInfo); err != nil {
				return warningReport(stp, err,
					"Ollama installation failed. Please install manually.",
					"Download from: https://ollama.com/download")
			}

			version, _ := manager.Version(ctx)
			recordInstallState(OllamaComponent, version)
			return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
				"version": version,
			}))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Checking Ollama installation")
			return ctx, nil
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report, "Ollama installation step completed")
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report, "Ollama installation step failed")
		})
}

// StartOllamaService ensures the Ollama daemon is running. Model pulls later
// in the workflow need the daemon; if it cannot be started the pulls will
// produce their own warnings, so this step warns and continues.
func StartOllamaService(manager *ollama.Manager, osInfo *detect.OSInfo) automa.Builder {
	return automa.NewStepBuilder().
		WithId(startOllamaStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			if manager.ServiceRunning(ctx) {
				logx.As().Info().Msg("Ollama service is already running")
				return automa.SuccessReport(stp)
			}

			if err := manager.StartService(ctx, osInfo); err != nil {
				return warningReport(stp, err,
					"Failed to start the Ollama service, continuing",
					"Start it manually:",
					"  Linux: sudo systemctl start ollama",
					"  macOS: ollama serve",
					"  Windows: start Ollama from the Start Menu")
			}

			return automa.SuccessReport(stp)
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Starting Ollama service")
			return ctx, nil
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report, "Ollama service step completed")
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report, "Ollama service step failed")
		})
}

// PullOllamaModels pulls every required model that is not yet present locally.
// Large models can take a long time on slow links; each failed pull is logged
// with a manual hint and the remaining models are still attempted.
func PullOllamaModels(manager *ollama.Manager, required []string) automa.Builder {
	return automa.NewStepBuilder().
		WithId(pullOllamaModelsStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			missing, err := manager.MissingModels(ctx, required)
			if err != nil {
				return warningReport(stp, err,
					"Could not list installed Ollama models, is the service running?",
					fmt.Sprintf("Pull the required models manually: ollama pull %s",
						strings.Join(required, " && ollama pull ")))
			}

			if len(missing) == 0 {
				logx.As().Info().Strs("models", required).Msg("All required models are already installed")
				return automa.SuccessReport(stp)
			}

			logx.As().Info().
				Strs("missing", missing).
				Msg("Pulling missing models, this may take a while depending on your connection")

			var failed []string
			for _, model := range missing {
				if err := manager.Pull(ctx, model); err != nil {
					logx.As().Warn().Err(err).Str("model", model).
						Msgf("Failed to pull model, try manually: ollama pull %s", model)
					failed = append(failed, model)
				}
			}

			meta := map[string]string{
				"requested": strings.Join(missing, ","),
			}
			if len(failed) > 0 {
				meta["warning"] = fmt.Sprintf("failed to pull models: %s", strings.Join(failed, ", "))
				meta["hints"] = fmt.Sprintf("Try manually: ollama pull %s", strings.Join(failed, " && ollama pull "))
			}

			return automa.SuccessReport(stp, automa.WithMetadata(meta))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Checking required models: %s", strings.Join(required, ", "))
			return ctx, nil
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report, "Model pull step completed")
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report, "Model pull step failed")
		})
}
